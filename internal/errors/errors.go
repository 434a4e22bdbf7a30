// Package errors defines the error kinds shared across the lawncare service.
package errors

import (
	stderrors "errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when a calculation input fails its
	// finiteness or positivity precondition.
	ErrInvalidInput = stderrors.New("invalid input")

	// ErrNotFound is returned when a stored invoice does not exist.
	ErrNotFound = stderrors.New("not found")
)

// ValidationError describes a request field that failed validation.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// NewValidationError creates a validation error for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Unwrap lets errors.Is(err, ErrInvalidInput) match validation failures.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}
