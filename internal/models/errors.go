package models

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a referenced address does not exist.
	ErrNotFound = errors.New("address not found")
	// ErrStoreUnavailable is returned when the address store could not serve a request.
	ErrStoreUnavailable = errors.New("address store unavailable")
	// ErrValidation is matched by every ValidationError.
	ErrValidation = errors.New("validation failed")
)

// ValidationError reports an input value outside of its domain.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// Is makes errors.Is(err, ErrValidation) hold for any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
