package domain

import (
	"errors"
	"fmt"
)

// Class labels a failure so callers can pick retry and messaging behavior
type Class string

const (
	// ClassBadRequest is a caller error; never retried, remote services
	// are never contacted.
	ClassBadRequest Class = "bad_request"
	// ClassQuotaExceeded is a remote rate limit; transient, the caller may
	// retry later.
	ClassQuotaExceeded Class = "quota_exceeded"
	// ClassServiceMisconfigured is an operator error (missing or rejected
	// credentials); not retried.
	ClassServiceMisconfigured Class = "service_misconfigured"
	// ClassServiceUnavailable is any other transient remote failure.
	ClassServiceUnavailable Class = "service_unavailable"
	// ClassStoreFailure wraps a persistence error; always surfaced.
	ClassStoreFailure Class = "store_failure"
)

// Error is a classified failure carrying its original cause
type Error struct {
	Class   Class
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Class, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Class, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// NewError creates a classified error wrapping cause
func NewError(class Class, message string, cause error) *Error {
	return &Error{Class: class, Message: message, Cause: cause}
}

// BadRequest creates a caller-error with a formatted message
func BadRequest(format string, args ...any) *Error {
	return &Error{Class: ClassBadRequest, Message: fmt.Sprintf(format, args...)}
}

// StoreFailure wraps a persistence error
func StoreFailure(cause error) *Error {
	return &Error{Class: ClassStoreFailure, Message: "store operation failed", Cause: cause}
}

// ClassOf returns the classification of err, or "" for unclassified errors
func ClassOf(err error) Class {
	var e *Error
	if errors.As(err, &e) {
		return e.Class
	}
	return ""
}

// IsClass reports whether err carries the given classification
func IsClass(err error, class Class) bool {
	return ClassOf(err) == class
}
