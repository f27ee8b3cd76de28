package handler

import (
	"omr-studio/internal/domain"
	"omr-studio/internal/dto"
	"omr-studio/internal/logger"
	"omr-studio/internal/middleware"
	"omr-studio/internal/service"
	"omr-studio/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type SessionHandler struct {
	sessionService service.SessionService
	validator      *validation.Validator
}

func NewSessionHandler(sessionService service.SessionService) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
		validator:      validation.NewValidator(),
	}
}

// sessionIDFromContext prefers the ID the validation middleware already
// checked and falls back to the raw path parameter.
func sessionIDFromContext(c *fiber.Ctx) string {
	if id, ok := c.Locals(middleware.SessionIDKey).(string); ok && id != "" {
		return id
	}
	return c.Params("id")
}

func parsePoint(c *fiber.Ctx) (dto.PointRequest, error) {
	var p dto.PointRequest
	if err := c.BodyParser(&p); err != nil {
		logger.Get().Warn("Failed to parse point body", zap.String("path", c.Path()), zap.Error(err))
		return p, domain.NewInvalidInputError("invalid request body")
	}
	return p, nil
}

// Create opens a new editing session or resumes a cached one.
// @Summary Create Editing Session
// @Description Creates an editing session for the given image. When a session ID with a cached snapshot is supplied, the session is rebuilt from the snapshot instead.
// @Tags sessions
// @Accept json
// @Produce json
// @Param request body dto.CreateSessionRequest true "Image dimensions and optional session ID"
// @Success 201 {object} dto.SessionStateResponse
// @Failure 400 {object} middleware.ErrorResponse "Invalid image size or scale"
// @Failure 500 {object} middleware.ErrorResponse "Internal server error"
// @Router /sessions [post]
func (h *SessionHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Get().Warn("Failed to parse session create body", zap.Error(err))
		return domain.NewInvalidInputError("invalid request body")
	}
	if req.SessionID != "" {
		if errs := h.validator.ValidateSessionID(req.SessionID); len(errs) > 0 {
			return errs
		}
	}

	resp, err := h.sessionService.Create(c.Context(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Get returns the current state of a session.
// @Summary Get Session State
// @Description Returns the regions, selection, preview and history flags of an editing session. Reading counts as activity for idle sweeping.
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionStateResponse
// @Failure 400 {object} middleware.ValidationErrorResponse "Invalid session ID"
// @Failure 404 {object} middleware.ErrorResponse "Session not found"
// @Router /sessions/{id} [get]
func (h *SessionHandler) Get(c *fiber.Ctx) error {
	resp, err := h.sessionService.Get(c.Context(), sessionIDFromContext(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// BeginDraw starts a drag rectangle at a display-space point.
// @Summary Begin Drawing
// @Description Anchors a new region rectangle at the given display-space point.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.PointRequest true "Anchor point in display space"
// @Success 200 {object} dto.SessionStateResponse
// @Failure 404 {object} middleware.ErrorResponse "Session not found"
// @Router /sessions/{id}/draw/begin [post]
func (h *SessionHandler) BeginDraw(c *fiber.Ctx) error {
	p, err := parsePoint(c)
	if err != nil {
		return err
	}
	resp, err := h.sessionService.BeginDraw(c.Context(), sessionIDFromContext(c), p)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// UpdateDraw moves the free corner of the drag rectangle.
// @Summary Update Drawing
// @Description Updates the drag preview to span from the anchor to the given point. Ignored when no drag is active.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.PointRequest true "Current cursor point in display space"
// @Success 200 {object} dto.SessionStateResponse
// @Failure 404 {object} middleware.ErrorResponse "Session not found"
// @Router /sessions/{id}/draw/update [post]
func (h *SessionHandler) UpdateDraw(c *fiber.Ctx) error {
	p, err := parsePoint(c)
	if err != nil {
		return err
	}
	resp, err := h.sessionService.UpdateDraw(c.Context(), sessionIDFromContext(c), p)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// EndDraw finishes the drag and creates a region when it is large enough.
// @Summary End Drawing
// @Description Completes the drag. Rectangles at least 10x10 in image space become regions with the session defaults; smaller ones are discarded as accidental clicks.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.PointRequest true "Release point in display space"
// @Success 200 {object} dto.EndDrawResponse
// @Failure 404 {object} middleware.ErrorResponse "Session not found"
// @Router /sessions/{id}/draw/end [post]
func (h *SessionHandler) EndDraw(c *fiber.Ctx) error {
	p, err := parsePoint(c)
	if err != nil {
		return err
	}
	resp, err := h.sessionService.EndDraw(c.Context(), sessionIDFromContext(c), p)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Select picks the topmost region under a display-space point.
// @Summary Select Region
// @Description Selects the last-created region whose rectangle contains the point, or clears the selection when none does.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.PointRequest true "Hit-test point in display space"
// @Success 200 {object} dto.SelectResponse
// @Failure 404 {object} middleware.ErrorResponse "Session not found"
// @Router /sessions/{id}/select [post]
func (h *SessionHandler) Select(c *fiber.Ctx) error {
	p, err := parsePoint(c)
	if err != nil {
		return err
	}
	resp, err := h.sessionService.Select(c.Context(), sessionIDFromContext(c), p)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// DeleteSelected removes the selected region and renumbers the rest.
// @Summary Delete Selected Region
// @Description Deletes the currently selected region. Remaining choice regions are renumbered in creation order.
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.DeleteSelectedResponse
// @Failure 404 {object} middleware.ErrorResponse "Session not found"
// @Router /sessions/{id}/selection [delete]
func (h *SessionHandler) DeleteSelected(c *fiber.Ctx) error {
	resp, err := h.sessionService.DeleteSelected(c.Context(), sessionIDFromContext(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// BatchGenerate creates a grid of question regions in one step.
// @Summary Batch Generate Regions
// @Description Creates rows x columns question regions from a start point with uniform size and spacing, as a single undoable operation.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.BatchGenerateRequest true "Grid parameters in image space"
// @Success 200 {object} dto.SessionStateResponse
// @Failure 400 {object} middleware.ErrorResponse "Invalid grid parameters"
// @Failure 404 {object} middleware.ErrorResponse "Session not found"
// @Router /sessions/{id}/batch [post]
func (h *SessionHandler) BatchGenerate(c *fiber.Ctx) error {
	var req dto.BatchGenerateRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Get().Warn("Failed to parse batch body", zap.Error(err))
		return domain.NewInvalidInputError("invalid request body")
	}
	resp, err := h.sessionService.BatchGenerate(c.Context(), sessionIDFromContext(c), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Undo reverts the most recent region edit.
// @Summary Undo
// @Description Restores the region set to the state before the last edit. Applied is false when there is nothing to undo.
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.HistoryOpResponse
// @Failure 404 {object} middleware.ErrorResponse "Session not found"
// @Router /sessions/{id}/undo [post]
func (h *SessionHandler) Undo(c *fiber.Ctx) error {
	resp, err := h.sessionService.Undo(c.Context(), sessionIDFromContext(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Redo reapplies the last undone region edit.
// @Summary Redo
// @Description Reapplies the edit most recently reverted by undo. Applied is false when there is nothing to redo.
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.HistoryOpResponse
// @Failure 404 {object} middleware.ErrorResponse "Session not found"
// @Router /sessions/{id}/redo [post]
func (h *SessionHandler) Redo(c *fiber.Ctx) error {
	resp, err := h.sessionService.Redo(c.Context(), sessionIDFromContext(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// UpdateScale changes the display scale of the session.
// @Summary Update Display Scale
// @Description Sets the display-space zoom factor. Stored regions keep their image-space coordinates.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.UpdateScaleRequest true "New display scale"
// @Success 200 {object} dto.SessionStateResponse
// @Failure 400 {object} middleware.ErrorResponse "Scale not positive"
// @Failure 404 {object} middleware.ErrorResponse "Session not found"
// @Router /sessions/{id}/scale [put]
func (h *SessionHandler) UpdateScale(c *fiber.Ctx) error {
	var req dto.UpdateScaleRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Get().Warn("Failed to parse scale body", zap.Error(err))
		return domain.NewInvalidInputError("invalid request body")
	}
	resp, err := h.sessionService.UpdateScale(c.Context(), sessionIDFromContext(c), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// UpdateDefaults changes the properties applied to newly drawn regions.
// @Summary Update Region Defaults
// @Description Sets the question type, option count and option layout used for regions drawn afterwards. Existing regions are unchanged.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.UpdateDefaultsRequest true "New region defaults"
// @Success 200 {object} dto.SessionStateResponse
// @Failure 404 {object} middleware.ErrorResponse "Session not found"
// @Router /sessions/{id}/defaults [put]
func (h *SessionHandler) UpdateDefaults(c *fiber.Ctx) error {
	var req dto.UpdateDefaultsRequest
	if err := c.BodyParser(&req); err != nil {
		logger.Get().Warn("Failed to parse defaults body", zap.Error(err))
		return domain.NewInvalidInputError("invalid request body")
	}
	resp, err := h.sessionService.UpdateDefaults(c.Context(), sessionIDFromContext(c), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Export returns the session regions as an OMR processing config.
// @Summary Export Session
// @Description Returns the regions in image space together with the OMR config block built from them.
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.ExportResponse
// @Failure 404 {object} middleware.ErrorResponse "Session not found"
// @Router /sessions/{id}/export [get]
func (h *SessionHandler) Export(c *fiber.Ctx) error {
	resp, err := h.sessionService.Export(c.Context(), sessionIDFromContext(c))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Close discards a session and its cached snapshot.
// @Summary Close Session
// @Description Removes the session from the store and deletes its resume snapshot.
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} middleware.ErrorResponse "Session not found"
// @Router /sessions/{id} [delete]
func (h *SessionHandler) Close(c *fiber.Ctx) error {
	id := sessionIDFromContext(c)
	if err := h.sessionService.Close(c.Context(), id); err != nil {
		return err
	}
	logger.Get().Info("Session closed", zap.String("sessionID", id))
	return c.JSON(dto.MessageResponse{Message: "session closed"})
}
