package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrConflict      = errors.New("conflict")
)

// Practice engine errors.
var (
	// ErrNoItemsAvailable is returned when the vocabulary source yields no nouns.
	// A session must not start in that case.
	ErrNoItemsAvailable = errors.New("no vocabulary items available")

	// ErrDuplicateAnswer means a second record was produced for a question that
	// already has one. It is fatal to the session.
	ErrDuplicateAnswer = errors.New("duplicate answer")

	// ErrEmptySession means scoring was attempted with zero answer records.
	ErrEmptySession = errors.New("empty session")

	// ErrQuestionClosed is returned when an answer arrives after the question
	// was already closed by a timeout.
	ErrQuestionClosed = errors.New("question already closed")

	// ErrSessionNotActive is returned for answer submissions to a session that
	// has already completed, failed or been abandoned.
	ErrSessionNotActive = errors.New("session not active")

	// ErrPersistence marks any failed write to the session store.
	ErrPersistence = errors.New("persistence error")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// PersistenceError wraps a failed session-store operation.
// errors.Is matches both ErrPersistence and the underlying cause.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() []error { return []error{ErrPersistence, e.Err} }

// NewPersistenceError wraps err as a PersistenceError for the given operation.
func NewPersistenceError(op string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Err: err}
}
