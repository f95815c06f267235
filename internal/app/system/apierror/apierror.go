// Package apierror defines the error taxonomy shared by workflows, stores,
// and handlers. Workflows return these; the httpjson package maps them to
// HTTP status codes at the edge so nothing below the handler layer knows
// about HTTP.
package apierror

import (
	"errors"
	"fmt"
)

// Sentinel categories. Use errors.Is against these to classify an error.
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrDuplicate    = errors.New("duplicate")
	ErrCapacity     = errors.New("capacity exceeded")
	ErrInvalidState = errors.New("invalid state")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")
)

// Error carries a category sentinel plus a human-readable message that is
// safe to return to clients.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// NotFound reports that the named resource does not exist.
func NotFound(resource string) *Error {
	return &Error{Kind: ErrNotFound, Message: resource + " not found"}
}

// Validation reports a missing or malformed field.
func Validation(msg string) *Error {
	return &Error{Kind: ErrValidation, Message: msg}
}

// Validationf is Validation with formatting.
func Validationf(format string, args ...any) *Error {
	return &Error{Kind: ErrValidation, Message: fmt.Sprintf(format, args...)}
}

// Duplicate reports a uniqueness conflict (email, registration number,
// repeated project application).
func Duplicate(msg string) *Error {
	return &Error{Kind: ErrDuplicate, Message: msg}
}

// Capacity reports that a project has no open volunteer slots.
func Capacity(msg string) *Error {
	return &Error{Kind: ErrCapacity, Message: msg}
}

// InvalidState reports an operation against a record whose status does not
// allow it (applying to a Closed project, re-approving an Approved NGO).
func InvalidState(msg string) *Error {
	return &Error{Kind: ErrInvalidState, Message: msg}
}

// Forbidden reports a role or ownership mismatch.
func Forbidden(msg string) *Error {
	return &Error{Kind: ErrForbidden, Message: msg}
}

// Unauthorized reports a missing or invalid credential.
func Unauthorized(msg string) *Error {
	return &Error{Kind: ErrUnauthorized, Message: msg}
}
