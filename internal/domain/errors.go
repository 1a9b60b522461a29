package domain

import (
	"errors"
	"fmt"
)

var (
	ErrMissingCredential = errors.New("API key is required")
	ErrInvalidInput      = errors.New("invalid input")
	ErrProviderFailure   = errors.New("provider failure")
)

// ValidationError reports caller input that violates a declared constraint.
// It is always raised before any outbound call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// Invalid builds a ValidationError for field.
func Invalid(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// ExternalAPIError wraps a transport failure or non-2xx answer from the
// image vendor. StatusCode is zero when no response was received.
type ExternalAPIError struct {
	Operation  string
	Endpoint   string
	StatusCode int
	Message    string
	Err        error
}

func (e *ExternalAPIError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s failed: %d %s", e.Operation, e.StatusCode, msg)
	}
	return fmt.Sprintf("%s failed: %s", e.Operation, msg)
}

func (e *ExternalAPIError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrProviderFailure}
	}
	return []error{ErrProviderFailure, e.Err}
}
