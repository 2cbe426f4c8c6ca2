package posts

import (
	"errors"
	"fmt"
)

// Sentinel errors for post operations
var (
	// ErrPostNotFound is returned when a post id doesn't resolve to a row
	ErrPostNotFound = errors.New("post not found")

	// ErrNotAuthorized is returned when the viewer lacks permission for the
	// target post (edit is owner-only; delete is owner-or-admin)
	ErrNotAuthorized = errors.New("not authorized")
)

// ValidationError represents a validation error with field context
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error (%s): %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// IsValidationError checks if error is a validation error
func IsValidationError(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}
