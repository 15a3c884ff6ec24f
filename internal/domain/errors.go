package domain

import (
	"errors"
	"net/http"
)

// HTTPError defines errors that can be mapped to HTTP status codes.
type HTTPError interface {
	error
	StatusCode() int
}

// Domain error types implementing HTTPError interface
type (
	// NotFoundError indicates an id is absent from its collection
	NotFoundError struct {
		Resource string
		ID       string
	}

	// ValidationError indicates invalid input
	ValidationError struct {
		Message string
	}

	// UnauthorizedError indicates authentication failure
	UnauthorizedError struct {
		Message string
	}

	// InvariantViolationError indicates an operation was rejected because it
	// would leave the store inconsistent (e.g. no current workspace).
	InvariantViolationError struct {
		Message string
	}
)

// Sentinel errors - use with errors.Is()
var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
	ErrInvariantViolation = errors.New("invariant violation")
	ErrUnauthorized       = errors.New("unauthorized")
)

// NewNotFound builds a NotFoundError for the given resource kind and id
func NewNotFound(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// NewValidation builds a ValidationError prefixed with ErrValidation's text
func NewValidation(detail string) *ValidationError {
	return &ValidationError{Message: ErrValidation.Error() + ": " + detail}
}

// Error implementations
func (e *NotFoundError) Error() string {
	return e.Resource + " " + e.ID + ": " + ErrNotFound.Error()
}
func (e *ValidationError) Error() string { return e.Message }
func (e *UnauthorizedError) Error() string { return e.Message }
func (e *InvariantViolationError) Error() string { return e.Message }

// StatusCode implementations (HTTPError interface)
func (e *NotFoundError) StatusCode() int { return http.StatusNotFound }
func (e *ValidationError) StatusCode() int { return http.StatusBadRequest }
func (e *UnauthorizedError) StatusCode() int { return http.StatusUnauthorized }
func (e *InvariantViolationError) StatusCode() int { return http.StatusConflict }

// Is allows errors.Is() to match typed errors against their sentinels
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
func (e *UnauthorizedError) Is(target error) bool { return target == ErrUnauthorized }
func (e *InvariantViolationError) Is(target error) bool { return target == ErrInvariantViolation }
