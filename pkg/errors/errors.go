package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a typed failure that knows how it should surface over HTTP.
// Two errors with the same Code match under errors.Is.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports whether target carries the same code.
func (e *Error) Is(target error) bool {
	var t *Error
	if e == nil || !errors.As(target, &t) || t == nil {
		return false
	}
	return e.Code == t.Code
}

// With returns a copy of e wrapping cause. An empty message keeps e's.
func (e *Error) With(cause error, message string) *Error {
	clone := Clone(e, message)
	if clone != nil {
		clone.Err = cause
	}
	return clone
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

var (
	ErrNotFound     = New("NOT_FOUND", http.StatusNotFound, "resource not found")
	ErrValidation   = New("VALIDATION_ERROR", http.StatusBadRequest, "validation failed")
	ErrUnauthorized = New("UNAUTHORIZED", http.StatusUnauthorized, "unauthorized")
	ErrInternal     = New("INTERNAL_ERROR", http.StatusInternalServerError, "internal server error")
	ErrCacheMiss    = New("CACHE_MISS", http.StatusNotFound, "cache miss")

	// ErrSubmissionInFlight refuses a lead trigger while one is already pending.
	ErrSubmissionInFlight = New("SUBMISSION_IN_FLIGHT", http.StatusConflict, "a submission is already in progress")

	// Backend failures. The site never passes these through as-is: events
	// fall back and lead attempts turn them into an outcome message.
	ErrBackendStatus    = New("BACKEND_STATUS", http.StatusBadGateway, "backend returned an unsuccessful status")
	ErrBackendTransport = New("BACKEND_UNREACHABLE", http.StatusBadGateway, "backend could not be reached")
	ErrMalformedPayload = New("MALFORMED_PAYLOAD", http.StatusBadGateway, "backend payload could not be used")
)

// FromError normalises any error into an *Error. Untyped errors become
// ErrInternal with the cause kept for logging only.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return ErrInternal.With(err, "")
}

// Clone returns a copy of err, optionally with a new message.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}
