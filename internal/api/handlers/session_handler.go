package handlers

import (
	"tams-dashboard/internal/dto"
	"tams-dashboard/internal/service"
	"tams-dashboard/pkg/auth"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type SessionHandler struct {
	sessions   *service.SessionStore
	jwtManager *auth.JWTManager
	logger     *zap.Logger
}

func NewSessionHandler(sessions *service.SessionStore, jwtManager *auth.JWTManager, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{
		sessions:   sessions,
		jwtManager: jwtManager,
		logger:     logger,
	}
}

// CreateSession godoc
// @Summary Open a dashboard session
// @Description Issue a session token. Each session has its own analysis state and in-flight guard.
// @Tags sessions
// @Produce json
// @Success 201 {object} dto.SessionResponse
// @Failure 500 {object} map[string]string
// @Router /api/v1/sessions [post]
func (h *SessionHandler) CreateSession(c *fiber.Ctx) error {
	sess := h.sessions.Create()

	token, err := h.jwtManager.GenerateToken(sess.ID)
	if err != nil {
		h.logger.Error("Failed to issue session token", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create session",
		})
	}

	h.logger.Debug("Session created", zap.String("session_id", sess.ID))

	return c.Status(fiber.StatusCreated).JSON(dto.SessionResponse{
		SessionID: sess.ID,
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int64(h.jwtManager.GetTokenDuration().Seconds()),
	})
}
