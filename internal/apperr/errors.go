package apperr

import (
	"errors"
	"fmt"
)

// Type classifies an application error.
type Type string

const (
	Validation            Type = "VALIDATION_ERROR"
	DuplicateEmail        Type = "DUPLICATE_EMAIL"
	InvalidCredentials    Type = "INVALID_CREDENTIALS"
	NoActiveSession       Type = "NO_ACTIVE_SESSION"
	NotFoundError         Type = "NOT_FOUND"
	Persistence           Type = "PERSISTENCE_ERROR"
	CapabilityUnavailable Type = "CAPABILITY_UNAVAILABLE"
)

// Error is a structured application error carrying a Type the caller can branch on.
type Error struct {
	Type    Type
	Message string
	Detail  string
	Raw     error
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *Error) Unwrap() error { return e.Raw }

// New creates an Error of the given type.
func New(t Type, message, detail string) *Error {
	return &Error{Type: t, Message: message, Detail: detail}
}

// Wrap attaches application context to a raw error. Returns nil for a nil error.
func Wrap(err error, t Type, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{Type: t, Message: message, Detail: err.Error(), Raw: err}
}

// IsType reports whether err is (or wraps) an Error of type t.
func IsType(err error, t Type) bool {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Type == t
	}
	return false
}

// TypeOf returns the Type of err, or "" when err carries no Error.
func TypeOf(err error) Type {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Type
	}
	return ""
}

// Helpers for the common cases.

func NotFound(entity string, id any) *Error {
	return &Error{
		Type:    NotFoundError,
		Message: fmt.Sprintf("%s not found", entity),
		Detail:  fmt.Sprintf("id: %v", id),
	}
}

func ValidationFailed(message, detail string) *Error {
	return &Error{Type: Validation, Message: message, Detail: detail}
}

func AuthenticationFailed(message string) *Error {
	return &Error{Type: InvalidCredentials, Message: message}
}

func SessionRequired() *Error {
	return &Error{Type: NoActiveSession, Message: "no active session"}
}

func PersistenceFailed(err error) *Error {
	return Wrap(err, Persistence, "persisting data failed")
}
