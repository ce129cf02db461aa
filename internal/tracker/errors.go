package tracker

import (
	"errors"
	"fmt"
)

// ValidationError represents a construction-time validation failure.
//
// Validation runs once, when an entity is created. Later field updates
// do not re-run validation (see Engine.UpdateUser / Engine.UpdateTask),
// so a ValidationError always points at the create call that produced it.
//
// Missing entities are NOT errors: id-keyed operations report an unknown
// id with a plain false/nil return, and callers treat that as a normal
// outcome.
type ValidationError struct {
	// Code identifies the validation failure category.
	Code ValidationCode

	// Field names the offending entity field ("name", "email", "title").
	Field string

	// Message is a human-readable description.
	Message string
}

// ValidationCode categorizes validation failures.
type ValidationCode string

const (
	// ErrCodeEmptyName indicates a user name that is empty after trimming.
	ErrCodeEmptyName ValidationCode = "EMPTY_NAME"

	// ErrCodeEmptyEmail indicates a user email that is empty after trimming.
	ErrCodeEmptyEmail ValidationCode = "EMPTY_EMAIL"

	// ErrCodeInvalidEmail indicates a user email without an "@".
	ErrCodeInvalidEmail ValidationCode = "INVALID_EMAIL"

	// ErrCodeEmptyTitle indicates a task title that is empty after trimming.
	ErrCodeEmptyTitle ValidationCode = "EMPTY_TITLE"
)

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (field=%s)", e.Code, e.Message, e.Field)
}

// IsValidationError returns true if the error is a ValidationError.
// Uses errors.As to handle wrapped errors.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// newValidationError creates a ValidationError for a single field.
func newValidationError(code ValidationCode, field, message string) *ValidationError {
	return &ValidationError{
		Code:    code,
		Field:   field,
		Message: message,
	}
}
