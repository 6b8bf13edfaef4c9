package middleware

import (
	"strings"

	"tams-dashboard/pkg/auth"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const SessionIDKey = "sessionID"

// SessionMiddleware resolves the bearer token into a dashboard session id.
func SessionMiddleware(jwtManager *auth.JWTManager, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Get(fiber.HeaderAuthorization)
		if token == "" {
			logger.Debug("Missing session token", zap.String("path", c.Path()))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Session token required",
			})
		}

		token = strings.TrimPrefix(token, "Bearer ")

		claims, err := jwtManager.ValidateToken(token)
		if err != nil {
			logger.Warn("Invalid session token", zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired session token",
			})
		}

		c.Locals(SessionIDKey, claims.SessionID)

		return c.Next()
	}
}

// SessionID returns the id stored by SessionMiddleware, or "".
func SessionID(c *fiber.Ctx) string {
	id, _ := c.Locals(SessionIDKey).(string)
	return id
}
