// Package shared contains common domain types, errors, and events that are
// used across all domain packages.
package shared

import (
	"errors"
	"fmt"
)

// Base domain errors that can be used for error checking with errors.Is().
var (
	// Entity errors
	ErrNotFound      = errors.New("entity not found")
	ErrAlreadyExists = errors.New("entity already exists")

	// Input errors
	ErrValidation    = errors.New("validation error")
	ErrInvalidFormat = errors.New("invalid command format")
	ErrInvalidIndex  = errors.New("invalid index")
	ErrIndexOverflow = errors.New("index overflow")

	// Command grammar errors
	ErrDuplicatePrefix = errors.New("duplicate prefix")
	ErrNotEdited       = errors.New("nothing to edit")
	ErrUnknownCommand  = errors.New("unknown command")

	// Persistence boundary errors
	ErrMissingField = errors.New("missing field")
	ErrConstraint   = errors.New("constraint violated")
)

// DomainError represents a domain-specific error with context. The Message is
// the exact text shown to the user; callers surface it verbatim.
type DomainError struct {
	Domain  string // e.g. "person", "roster", "parser"
	Op      string // operation that failed, e.g. "Add", "ParseIndex"
	Kind    error  // base error for errors.Is() checking
	Message string // user-visible message
	Err     error  // underlying error (optional)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	return e.Message
}

// Unwrap returns the underlying error for errors.Unwrap().
func (e *DomainError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

// Is implements errors.Is() matching against both Kind and the wrapped error.
func (e *DomainError) Is(target error) bool {
	if e.Kind != nil && errors.Is(e.Kind, target) {
		return true
	}
	if e.Err != nil && errors.Is(e.Err, target) {
		return true
	}
	return false
}

// NewDomainError creates a new domain error.
func NewDomainError(domain, op string, kind error, message string) *DomainError {
	return &DomainError{Domain: domain, Op: op, Kind: kind, Message: message}
}

// WrapError wraps an existing error with domain context.
func WrapError(domain, op string, kind error, message string, err error) *DomainError {
	return &DomainError{Domain: domain, Op: op, Kind: kind, Message: message, Err: err}
}

// ValidationError reports that a single field's content violates its
// constraint. Message carries the field's full constraint text.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Message
}

// Is matches ValidationError against ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError creates a validation error for the named field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// MissingFieldError reports that a required field is absent from a stored
// roster record.
type MissingFieldError struct {
	Field string
}

// Error implements the error interface.
func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("Person's %s field is missing!", e.Field)
}

// Is matches MissingFieldError against ErrMissingField.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// Roster domain errors. The messages are surfaced to the user as-is.
var (
	ErrPersonNotFound = NewDomainError("roster", "Find", ErrNotFound,
		"The person index provided is invalid")
	ErrDuplicatePerson = NewDomainError("roster", "Add", ErrAlreadyExists,
		"This person already exists in the roster")
)

// IsNotFound checks if the error is a "not found" error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAlreadyExists checks if the error is an "already exists" error.
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}

// IsValidation checks if the error is a field validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
