package validation

import (
	"regexp"
	"strings"

	"omr-studio/internal/domain"
)

// maxDPI is the highest print resolution the scaler accepts. Anything above
// consumer flatbed range is a typo, not a real request.
const maxDPI = 4800

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateSessionID validates an editor session identifier
func (v *Validator) ValidateSessionID(sessionID string) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if strings.TrimSpace(sessionID) == "" {
		errs = append(errs, domain.NewMissingFieldError("session_id"))
	} else if !isValidULID(sessionID) {
		errs = append(errs, domain.NewInvalidFormatError("session_id", sessionID))
	}

	return errs
}

// ValidateExamType validates the exam type parameter used to pick a standards profile
func (v *Validator) ValidateExamType(examType string) domain.ValidationErrors {
	var errs domain.ValidationErrors

	if strings.TrimSpace(examType) == "" {
		return errs // blank falls back to the default profile
	}

	if !isValidExamType(examType) {
		errs = append(errs, domain.NewInvalidFormatError("exam_type", examType))
	}

	return errs
}

// ValidateStandardsParams validates the combined standards lookup parameters
func (v *Validator) ValidateStandardsParams(examType string, dpi int) domain.ValidationErrors {
	errs := v.ValidateExamType(examType)

	// dpi 0 means "leave the profile in millimeters"
	if dpi < 0 || dpi > maxDPI {
		errs = append(errs, domain.NewOutOfRangeError("dpi", dpi, 0, maxDPI))
	}

	return errs
}

// Helper functions for validation

// isValidULID checks if the string is a valid ULID format
func isValidULID(s string) bool {
	// ULID is 26 characters long, base32 encoded
	if len(s) != 26 {
		return false
	}
	// Check if all characters are valid base32 (Crockford's Base32)
	validULID := regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)
	return validULID.MatchString(s)
}

// isValidExamType checks if the exam type format is valid
func isValidExamType(s string) bool {
	// Allow alphanumeric, hyphens, and underscores, 1-50 characters
	if len(s) == 0 || len(s) > 50 {
		return false
	}
	validExamType := regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	return validExamType.MatchString(s)
}
