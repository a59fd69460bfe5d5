// Package errors provides error types with actionable suggestions for artisan.
// Every failure that crosses the API boundary is mapped onto one of the Kind
// sentinels so callers can branch with errors.Is.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Common sentinel errors for use with errors.Is().
var (
	// ErrTransport indicates the storefront service could not be reached or failed.
	ErrTransport = errors.New("service unavailable")
	// ErrUnauthorized indicates bad credentials or an expired session.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound indicates a referenced cart, item or order does not exist.
	ErrNotFound = errors.New("not found")
	// ErrValidation indicates a malformed request.
	ErrValidation = errors.New("validation error")
	// ErrConfig indicates a configuration error.
	ErrConfig = errors.New("configuration error")
	// ErrSession indicates the local session file could not be read or written.
	ErrSession = errors.New("session error")
	// ErrTimeout indicates a timeout or cancellation.
	ErrTimeout = errors.New("timeout error")
)

// AppError is the base error type for artisan errors.
// It wraps an underlying error and provides additional context.
type AppError struct {
	// Kind is the category of error (e.g., ErrTransport, ErrNotFound).
	Kind error
	// Message is the human-readable error message.
	Message string
	// Suggestion provides actionable advice for resolving the error.
	Suggestion string
	// Cause is the underlying error that caused this error.
	Cause error
	// Details provides additional context (e.g., status code, item id).
	Details map[string]string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *AppError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return e.Kind
}

// Is reports whether the error's Kind matches the target.
func (e *AppError) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

// Format returns a formatted error message with details and suggestion.
func (e *AppError) Format() string {
	var sb strings.Builder

	sb.WriteString("Error: ")
	sb.WriteString(e.Error())
	sb.WriteString("\n")

	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteString("\nDetails:\n")
		for _, k := range keys {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", k, e.Details[k]))
		}
	}

	if e.Suggestion != "" {
		sb.WriteString("\n💡 Suggestion: ")
		sb.WriteString(e.Suggestion)
		sb.WriteString("\n")
	}

	return sb.String()
}

// WithDetails adds details to the error.
func (e *AppError) WithDetails(key, value string) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying cause of the error.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// New creates a new AppError with the given kind and message.
func New(kind error, message string) *AppError {
	return &AppError{
		Kind:    kind,
		Message: message,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(err error, kind error, message string) *AppError {
	return &AppError{
		Kind:    kind,
		Message: message,
		Cause:   err,
	}
}

// WithSuggestion creates a new error with a suggestion.
func WithSuggestion(kind error, message, suggestion string) *AppError {
	return &AppError{
		Kind:       kind,
		Message:    message,
		Suggestion: suggestion,
	}
}

// Message returns the short user-facing message of err, without the cause chain.
// Non-AppError values return err.Error().
func Message(err error) string {
	if err == nil {
		return ""
	}
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Message
	}
	return err.Error()
}
