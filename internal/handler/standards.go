package handler

import (
	"omr-studio/internal/middleware"
	"omr-studio/internal/service"

	"github.com/gofiber/fiber/v2"
)

type StandardsHandler struct {
	templateService service.TemplateService
}

func NewStandardsHandler(templateService service.TemplateService) *StandardsHandler {
	return &StandardsHandler{templateService: templateService}
}

// GetStandards returns the standards profile for an exam type.
// @Summary Get Exam Standards Profile
// @Description Returns the OMR standards profile for the given exam type. With a positive dpi the profile lengths are converted from millimeters to pixels.
// @Tags standards
// @Produce json
// @Param exam_type query string false "Exam type (default profile when omitted)"
// @Param dpi query int false "Target print resolution; 0 keeps millimeters"
// @Success 200 {object} dto.StandardsResponse
// @Failure 400 {object} middleware.ErrorResponse "Invalid exam type or dpi"
// @Router /standards [get]
func (h *StandardsHandler) GetStandards(c *fiber.Ctx) error {
	examType, _ := c.Locals(middleware.ExamTypeKey).(string)
	dpi, _ := c.Locals(middleware.DPIKey).(int)
	return c.JSON(h.templateService.GetStandards(examType, dpi))
}

// ListStandards returns the exam types with a registered profile.
// @Summary List Exam Types
// @Description Returns the sorted list of exam types that have a standards profile registered.
// @Tags standards
// @Produce json
// @Success 200 {object} dto.StandardsNamesResponse
// @Router /standards/names [get]
func (h *StandardsHandler) ListStandards(c *fiber.Ctx) error {
	return c.JSON(h.templateService.ListStandards())
}
