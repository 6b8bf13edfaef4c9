package handlers

import (
	"errors"

	"tams-dashboard/internal/dto"
	"tams-dashboard/internal/models"
	"tams-dashboard/internal/service"
	"tams-dashboard/pkg/middleware"
	"tams-dashboard/pkg/tamsclient"
	"tams-dashboard/pkg/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AnalysisHandler struct {
	analysisService *service.AnalysisService
	logger          *zap.Logger
}

func NewAnalysisHandler(analysisService *service.AnalysisService, logger *zap.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: analysisService,
		logger:          logger,
	}
}

// GetForm godoc
// @Summary Get the analysis form
// @Description Default alert values, or the last alert submitted in this session
// @Tags analysis
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.AnalysisForm
// @Failure 401 {object} map[string]string
// @Router /api/v1/dashboard/analysis/form [get]
func (h *AnalysisHandler) GetForm(c *fiber.Ctx) error {
	return c.JSON(h.analysisService.DefaultForm(middleware.SessionID(c)))
}

// SubmitAnalysis godoc
// @Summary Analyze a transaction alert
// @Description Validate the alert and run it through the TAMS analysis pipeline
// @Tags analysis
// @Accept json
// @Produce json
// @Param request body models.AlertRequest true "Transaction alert"
// @Security Bearer
// @Success 200 {object} dto.AnalysisView
// @Failure 400 {object} dto.SubmitError
// @Failure 401 {object} map[string]string
// @Failure 409 {object} dto.SubmitError
// @Failure 502 {object} dto.SubmitError
// @Router /api/v1/dashboard/analysis [post]
func (h *AnalysisHandler) SubmitAnalysis(c *fiber.Ctx) error {
	var req models.AlertRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.SubmitError{
			Error: "Invalid request body",
		})
	}

	view, err := h.analysisService.Submit(c.UserContext(), middleware.SessionID(c), &req)
	if err != nil {
		return h.submitError(c, err)
	}

	return c.JSON(view)
}

func (h *AnalysisHandler) submitError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		var fields validation.ValidationErrors
		errors.As(err, &fields)
		return c.Status(fiber.StatusBadRequest).JSON(dto.SubmitError{
			Error:  "Invalid alert",
			Fields: fields,
		})
	case errors.Is(err, service.ErrSubmissionInProgress):
		return c.Status(fiber.StatusConflict).JSON(dto.SubmitError{
			Error: "Analysis already in progress",
			Kind:  "busy",
		})
	case service.IsUpstreamError(err):
		return c.Status(fiber.StatusBadGateway).JSON(dto.SubmitError{
			Error:  "Analysis failed",
			Kind:   string(tamsclient.KindOf(err)),
			Status: tamsclient.StatusCode(err),
		})
	}

	h.logger.Error("Analysis submission failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(dto.SubmitError{
		Error: "Analysis failed",
	})
}

// GetAnalysis godoc
// @Summary Get the current analysis
// @Description Last successful analysis for this session
// @Tags analysis
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.AnalysisView
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/dashboard/analysis [get]
func (h *AnalysisHandler) GetAnalysis(c *fiber.Ctx) error {
	view, err := h.analysisService.Current(middleware.SessionID(c))
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) || errors.Is(err, service.ErrNoResult) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "No analysis available",
			})
		}
		h.logger.Error("Failed to get analysis", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to get analysis",
		})
	}

	return c.JSON(view)
}
