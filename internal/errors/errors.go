// Package errors provides shared error types that map to both CLI exit codes
// and HTTP status codes, so the CLI, the terminal form and the API report
// input problems the same way.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// Kind represents the category of an error, which determines both the
// CLI exit code and HTTP status code.
type Kind int

const (
	// KindInvalidArgs represents invalid flags or enum values.
	// CLI exit code: 2, HTTP status: 400 Bad Request
	KindInvalidArgs Kind = iota

	// KindMissingBaseTimestamp means no usable target date/time was given.
	// CLI exit code: 3, HTTP status: 400 Bad Request
	KindMissingBaseTimestamp

	// KindInvalidAmount means the amount is missing, non-numeric, negative
	// or too large to represent.
	// CLI exit code: 4, HTTP status: 400 Bad Request
	KindInvalidAmount

	// KindInternal represents an unexpected failure (config, I/O).
	// CLI exit code: 5, HTTP status: 500 Internal Server Error
	KindInternal

	// KindGeneral represents a general error that doesn't fit other categories.
	// CLI exit code: 1, HTTP status: 500 Internal Server Error
	KindGeneral
)

// String returns a human-readable name for the error kind.
func (k Kind) String() string {
	switch k {
	case KindInvalidArgs:
		return "InvalidArgs"
	case KindMissingBaseTimestamp:
		return "MissingBaseTimestamp"
	case KindInvalidAmount:
		return "InvalidAmount"
	case KindInternal:
		return "Internal"
	case KindGeneral:
		return "General"
	default:
		return "Unknown"
	}
}

// IsValidation reports whether the kind is an input validation failure that
// the user can fix and resubmit.
func (k Kind) IsValidation() bool {
	switch k {
	case KindInvalidArgs, KindMissingBaseTimestamp, KindInvalidAmount:
		return true
	}
	return false
}

// Error represents a structured error with kind, message, cause, and optional details.
type Error struct {
	Kind       Kind
	Message    string
	Cause      error
	Details    map[string]interface{}
	Suggestion string // Optional suggestion for resolving the error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause, enabling errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// CLIExitCode returns the appropriate CLI exit code for this error.
func (e *Error) CLIExitCode() int {
	switch e.Kind {
	case KindInvalidArgs:
		return 2
	case KindMissingBaseTimestamp:
		return 3
	case KindInvalidAmount:
		return 4
	case KindInternal:
		return 5
	default:
		return 1
	}
}

// HTTPStatus returns the appropriate HTTP status code for this error.
func (e *Error) HTTPStatus() int {
	if e.Kind.IsValidation() {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// WithDetails adds details to the error and returns it for chaining.
func (e *Error) WithDetails(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithSuggestion adds a suggestion to the error and returns it for chaining.
func (e *Error) WithSuggestion(suggestion string) *Error {
	e.Suggestion = suggestion
	return e
}

// Constructor functions

// InvalidArgs creates an error for invalid arguments.
func InvalidArgs(format string, args ...interface{}) *Error {
	return &Error{
		Kind:    KindInvalidArgs,
		Message: fmt.Sprintf(format, args...),
	}
}

// MissingBaseTimestamp creates an error for an absent or unparseable target.
func MissingBaseTimestamp(format string, args ...interface{}) *Error {
	return &Error{
		Kind:    KindMissingBaseTimestamp,
		Message: fmt.Sprintf(format, args...),
	}
}

// InvalidAmount creates an error for a rejected amount.
func InvalidAmount(format string, args ...interface{}) *Error {
	return &Error{
		Kind:    KindInvalidAmount,
		Message: fmt.Sprintf(format, args...),
	}
}

// Internal creates an error for internal failures.
func Internal(format string, args ...interface{}) *Error {
	return &Error{
		Kind:    KindInternal,
		Message: fmt.Sprintf(format, args...),
	}
}

// General creates a general error.
func General(format string, args ...interface{}) *Error {
	return &Error{
		Kind:    KindGeneral,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an existing error with a specific kind and message.
func Wrap(err error, kind Kind, format string, args ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Cause:   err,
	}
}

// WrapInternal wraps an error as an internal error.
func WrapInternal(err error, format string, args ...interface{}) *Error {
	return Wrap(err, KindInternal, format, args...)
}

// Helper functions for extracting error information

// As returns the *Error in err's chain, if any.
func As(err error) (*Error, bool) {
	var e *Error
	if stderrors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// GetKind extracts the Kind from an error, returning KindGeneral if the
// chain holds no *Error.
func GetKind(err error) Kind {
	if e, ok := As(err); ok {
		return e.Kind
	}
	return KindGeneral
}

// GetCLIExitCode extracts the CLI exit code from an error.
func GetCLIExitCode(err error) int {
	if e, ok := As(err); ok {
		return e.CLIExitCode()
	}
	return 1 // General error
}

// GetHTTPStatus extracts the HTTP status code from an error.
func GetHTTPStatus(err error) int {
	if e, ok := As(err); ok {
		return e.HTTPStatus()
	}
	return http.StatusInternalServerError
}

// Is returns true if the error is of the specified kind.
func Is(err error, kind Kind) bool {
	if e, ok := As(err); ok {
		return e.Kind == kind
	}
	return false
}
