package handler

import (
	"omr-studio/internal/domain"
	"omr-studio/internal/dto"
	"omr-studio/internal/logger"
	"omr-studio/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type TemplateHandler struct {
	templateService service.TemplateService
}

func NewTemplateHandler(templateService service.TemplateService) *TemplateHandler {
	return &TemplateHandler{templateService: templateService}
}

// GenerateLayout builds a bubble-grid layout from a layout configuration.
// @Summary Generate Answer Grid Layout
// @Description Generates bubble positions, anchor labels and an OMR region block for the given grid configuration.
// @Tags template
// @Accept json
// @Produce json
// @Param request body dto.GenerateLayoutRequest true "Grid configuration"
// @Success 200 {object} dto.GenerateLayoutResponse
// @Failure 400 {object} middleware.ErrorResponse "Invalid configuration"
// @Failure 500 {object} middleware.ErrorResponse "Internal server error"
// @Router /template/layout [post]
func (h *TemplateHandler) GenerateLayout(c *fiber.Ctx) error {
	var req dto.GenerateLayoutRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Get().Warn("Failed to parse layout request body", zap.Error(err))
		return domain.NewInvalidInputError("invalid request body")
	}

	resp, err := h.templateService.GenerateLayout(req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ValidateLayout checks a layout configuration without generating anything.
// @Summary Validate Grid Configuration
// @Description Reports configuration errors and layout warnings for a grid configuration. Always returns 200; validity is in the payload.
// @Tags template
// @Accept json
// @Produce json
// @Param request body dto.GenerateLayoutRequest true "Grid configuration"
// @Success 200 {object} dto.ValidateLayoutResponse
// @Failure 400 {object} middleware.ErrorResponse "Malformed request body"
// @Router /template/layout/validate [post]
func (h *TemplateHandler) ValidateLayout(c *fiber.Ctx) error {
	var req dto.GenerateLayoutRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Get().Warn("Failed to parse layout request body", zap.Error(err))
		return domain.NewInvalidInputError("invalid request body")
	}
	return c.JSON(h.templateService.ValidateLayoutConfig(req))
}

// ValidateTemplate checks template elements against an exam standards profile.
// @Summary Validate Template Elements
// @Description Validates each region and positioning marker against the standards profile for the given exam type.
// @Tags template
// @Accept json
// @Produce json
// @Param request body dto.TemplateElementsRequest true "Template elements"
// @Success 200 {object} dto.ValidateTemplateResponse
// @Failure 400 {object} middleware.ErrorResponse "Malformed request body"
// @Router /template/validate [post]
func (h *TemplateHandler) ValidateTemplate(c *fiber.Ctx) error {
	var req dto.TemplateElementsRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Get().Warn("Failed to parse template elements body", zap.Error(err))
		return domain.NewInvalidInputError("invalid request body")
	}
	return c.JSON(h.templateService.ValidateTemplate(req))
}

// ScoreTemplate produces a weighted quality report for template elements.
// @Summary Score Template Quality
// @Description Scores bubble sizes, spacing, margins, marker placement and print contrast against the standards profile and returns a weighted report with a quality tier.
// @Tags template
// @Accept json
// @Produce json
// @Param request body dto.TemplateElementsRequest true "Template elements"
// @Success 200 {object} dto.ScoreTemplateResponse
// @Failure 400 {object} middleware.ErrorResponse "Malformed request body"
// @Router /template/score [post]
func (h *TemplateHandler) ScoreTemplate(c *fiber.Ctx) error {
	var req dto.TemplateElementsRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Get().Warn("Failed to parse template elements body", zap.Error(err))
		return domain.NewInvalidInputError("invalid request body")
	}
	return c.JSON(h.templateService.ScoreTemplate(req))
}
