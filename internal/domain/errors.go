package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity or request fails validation.
	// More specific validation errors wrap it.
	ErrValidation = errors.New("validation failed")

	// ErrTitleRequired is returned when a task title is missing altogether.
	ErrTitleRequired = fmt.Errorf("%w: title is required", ErrValidation)

	// ErrTitleEmpty is returned when a task title contains only whitespace.
	ErrTitleEmpty = fmt.Errorf("%w: title is empty", ErrValidation)

	// ErrInvalidID is returned when a task ID is missing or not an integer.
	ErrInvalidID = fmt.Errorf("%w: invalid ID", ErrValidation)
)

// ValidationError describes a single invalid field.
type ValidationError struct {
	Field   string // The offending field (e.g., "title", "id")
	Message string // Human-readable description
	Err     error  // One of the sentinel errors above
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap returns the wrapped sentinel to support errors.Is.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}
