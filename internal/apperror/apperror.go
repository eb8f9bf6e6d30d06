// Package apperror defines the closed set of failure kinds surfaced by the API
// and their mapping to HTTP status codes.
package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies a failure.
type Kind int

const (
	// KindUnexpected is anything not deliberately raised by a handler or service.
	KindUnexpected Kind = iota
	// KindValidation is bad or missing client input.
	KindValidation
	// KindAuthentication is missing or invalid credentials or token.
	KindAuthentication
	// KindNotFound is a resource that does not exist or is not visible to the caller.
	KindNotFound
	// KindConflict is a uniqueness violation such as a taken username.
	KindConflict
)

// String returns the kind name used in logs.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuthentication:
		return "authentication"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindUnexpected:
		return "unexpected"
	}
	return "unexpected"
}

// Status maps a kind to its HTTP status code.
func (k Kind) Status() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnexpected:
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}

// UnexpectedMessage is the only message clients see for unexpected failures.
const UnexpectedMessage = "an unexpected error occurred"

// Error is a failure with a client-safe message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation returns a 400 error with the given message.
func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Message: msg}
}

// Authentication returns a 401 error with the given message.
func Authentication(msg string) *Error {
	return &Error{Kind: KindAuthentication, Message: msg}
}

// NotFound returns a 404 error with the given message.
func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// Conflict returns a 409 error with the given message.
func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

// Unexpected wraps an internal failure. Its cause is never shown to clients.
func Unexpected(err error) *Error {
	return &Error{Kind: KindUnexpected, Message: UnexpectedMessage, Err: err}
}

// From classifies any error. Errors that are not *Error become unexpected.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Unexpected(err)
}

// PublicMessage returns the message safe to send to clients.
func (e *Error) PublicMessage() string {
	if e.Kind == KindUnexpected {
		return UnexpectedMessage
	}
	return e.Message
}
