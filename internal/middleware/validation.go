package middleware

import (
	"omr-studio/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// Context keys for values stored by the validation middleware.
const (
	SessionIDKey = "validated_session_id"
	ExamTypeKey  = "validated_exam_type"
	DPIKey       = "validated_dpi"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware() *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validation.NewValidator(),
	}
}

// ValidateSessionID validates the session id path parameter
func (vm *ValidationMiddleware) ValidateSessionID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Params("id")

		if errs := vm.validator.ValidateSessionID(sessionID); len(errs) > 0 {
			return errs // This will be handled by ErrorHandler middleware
		}

		// Store validated value in context for handlers to use
		c.Locals(SessionIDKey, sessionID)
		return c.Next()
	}
}

// ValidateStandardsParams validates the exam_type and dpi query parameters
func (vm *ValidationMiddleware) ValidateStandardsParams() fiber.Handler {
	return func(c *fiber.Ctx) error {
		examType := c.Query("exam_type")
		dpi := c.QueryInt("dpi", 0)

		if errs := vm.validator.ValidateStandardsParams(examType, dpi); len(errs) > 0 {
			return errs
		}

		c.Locals(ExamTypeKey, examType)
		c.Locals(DPIKey, dpi)
		return c.Next()
	}
}
