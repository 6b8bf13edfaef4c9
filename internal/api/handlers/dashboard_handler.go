package handlers

import (
	"tams-dashboard/internal/service"
	"tams-dashboard/pkg/middleware"
	"tams-dashboard/pkg/tamsclient"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
	logger           *zap.Logger
}

func NewDashboardHandler(dashboardService *service.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// ListAgents godoc
// @Summary List agents
// @Tags dashboard
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.AgentCard
// @Failure 401 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/v1/dashboard/agents [get]
func (h *DashboardHandler) ListAgents(c *fiber.Ctx) error {
	cards, err := h.dashboardService.ListAgentCards(c.UserContext())
	if err != nil {
		h.logger.Error("Failed to list agents", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Failed to list agents",
		})
	}

	return c.JSON(cards)
}

// RunSmokeTest godoc
// @Summary Run the TAMS smoke test
// @Description Always 200. Check the ok flag for the outcome.
// @Tags dashboard
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.SmokeTestView
// @Failure 401 {object} map[string]string
// @Router /api/v1/dashboard/smoke-test [post]
func (h *DashboardHandler) RunSmokeTest(c *fiber.Ctx) error {
	return c.JSON(h.dashboardService.RunSmokeTest(c.UserContext(), middleware.SessionID(c)))
}

// SystemStatus godoc
// @Summary TAMS system status
// @Tags dashboard
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.SystemStatusView
// @Failure 401 {object} map[string]string
// @Router /api/v1/dashboard/system [get]
func (h *DashboardHandler) SystemStatus(c *fiber.Ctx) error {
	return c.JSON(h.dashboardService.SystemStatus(c.UserContext()))
}

// AgentStatus godoc
// @Summary TAMS agent status
// @Tags dashboard
// @Produce json
// @Security Bearer
// @Success 200 {object} models.AgentStatus
// @Failure 401 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/v1/dashboard/tams/agent/status [get]
func (h *DashboardHandler) AgentStatus(c *fiber.Ctx) error {
	status, err := h.dashboardService.AgentStatus(c.UserContext())
	if err != nil {
		return h.upstreamError(c, "Failed to get agent status", err)
	}
	return c.JSON(status)
}

// ExecutionHistory godoc
// @Summary TAMS agent execution history
// @Tags dashboard
// @Produce json
// @Security Bearer
// @Success 200 {object} models.ExecutionHistory
// @Failure 401 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /api/v1/dashboard/tams/agent/history [get]
func (h *DashboardHandler) ExecutionHistory(c *fiber.Ctx) error {
	history, err := h.dashboardService.ExecutionHistory(c.UserContext())
	if err != nil {
		return h.upstreamError(c, "Failed to get execution history", err)
	}
	return c.JSON(history)
}

func (h *DashboardHandler) upstreamError(c *fiber.Ctx, msg string, err error) error {
	h.logger.Error(msg, zap.Error(err))
	return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
		"error": msg,
		"kind":  string(tamsclient.KindOf(err)),
	})
}
