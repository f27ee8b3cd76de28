package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	ErrInternal     ErrorCode = "INTERNAL_ERROR"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrValidation   ErrorCode = "VALIDATION_ERROR"

	// Template specific errors
	ErrInvalidLayoutConfig ErrorCode = "INVALID_LAYOUT_CONFIG"
	ErrInvalidBatchConfig  ErrorCode = "INVALID_BATCH_CONFIG"
	ErrSessionNotFound     ErrorCode = "SESSION_NOT_FOUND"
	ErrInvalidScale        ErrorCode = "INVALID_SCALE"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Helper functions for common errors
func NewNotFoundError(message string) *DomainError {
	return NewError(ErrNotFound, message, nil)
}

func NewInvalidInputError(message string) *DomainError {
	return NewError(ErrInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(ErrInternal, message, err)
}

// NewLayoutConfigError wraps the validation findings of a rejected layout config.
func NewLayoutConfigError(result ConfigValidation) *DomainError {
	return NewError(ErrInvalidLayoutConfig, fmt.Sprintf("invalid layout config: %s", result.Summary()), nil)
}

func NewBatchConfigError(message string) *DomainError {
	return NewError(ErrInvalidBatchConfig, message, nil)
}

func NewSessionNotFoundError(sessionID string) *DomainError {
	return NewError(ErrSessionNotFound, fmt.Sprintf("Session not found with ID: %s", sessionID), nil)
}

func NewInvalidScaleError(scale float64) *DomainError {
	return NewError(ErrInvalidScale, fmt.Sprintf("Display scale must be positive, got %g", scale), nil)
}
