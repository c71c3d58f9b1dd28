package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations.
var (
	// ErrNotFound indicates that a requested entity was not found
	ErrNotFound = errors.New("entity not found")

	// ErrConflict indicates that a write would violate a uniqueness or
	// referential rule (duplicate slug, category still in use, ...).
	ErrConflict = errors.New("already exists")

	// ErrInvalidInput indicates that the provided input is invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrValidationFailed indicates that validation checks have failed
	ErrValidationFailed = errors.New("validation failed")
)

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Is reports ErrValidationFailed as matching so callers can use errors.Is
// without caring about the concrete field.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// kindError carries a user-facing message while matching one of the
// sentinel kinds above through errors.Is.
type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Is(target error) bool { return target == e.kind }

// NotFoundError returns an error with message msg that matches ErrNotFound.
func NotFoundError(msg string) error {
	return &kindError{kind: ErrNotFound, msg: msg}
}

// ConflictError returns an error with message msg that matches ErrConflict.
func ConflictError(msg string) error {
	return &kindError{kind: ErrConflict, msg: msg}
}
