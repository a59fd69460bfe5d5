// Package errors provides error types for artisan.
// This file contains transport and timeout-related errors.
package errors

import (
	"fmt"
	"time"
)

// Transport-related error constructors.

// ServiceUnavailable creates an error for an unreachable or failing storefront service.
func ServiceUnavailable(host string, cause error) *AppError {
	err := &AppError{
		Kind:    ErrTransport,
		Message: "storefront service unavailable",
		Cause:   cause,
		Suggestion: `Check that the storefront API is running and reachable:

  1. Verify api.base_url in ~/.artisan/config.yaml
  2. Try: curl -I <base_url>/items
  3. Override for one run: ARTISAN_API_BASE_URL=http://host:8080/api artisan

Press r to retry.`,
	}
	if host != "" {
		err.Details = map[string]string{"host": host}
	}
	return err
}

// ServerError creates an error for a 5xx response.
func ServerError(status int, message string) *AppError {
	if message == "" {
		message = fmt.Sprintf("server returned status %d", status)
	}
	return &AppError{
		Kind:    ErrTransport,
		Message: message,
		Details: map[string]string{
			"status": fmt.Sprintf("%d", status),
		},
		Suggestion: "The storefront service failed to handle the request. Try again in a moment.",
	}
}

// CircuitOpen creates an error returned while the client refuses to call a failing service.
func CircuitOpen(name string, cooldown time.Duration) *AppError {
	return &AppError{
		Kind:    ErrTransport,
		Message: "storefront service is failing, requests paused",
		Details: map[string]string{
			"breaker":  name,
			"cooldown": cooldown.Round(time.Second).String(),
		},
		Suggestion: fmt.Sprintf("Requests resume automatically after %v.", cooldown.Round(time.Second)),
	}
}

// Timeout-related error constructors.

// OperationTimeout creates a generic timeout error.
func OperationTimeout(operation string, elapsed time.Duration) *AppError {
	return &AppError{
		Kind:    ErrTimeout,
		Message: fmt.Sprintf("%s timed out after %v", operation, elapsed.Round(time.Millisecond)),
		Details: map[string]string{
			"operation": operation,
			"elapsed":   elapsed.Round(time.Millisecond).String(),
		},
		Suggestion: "Increase api.timeout in ~/.artisan/config.yaml or try again later.",
	}
}

// ContextCancelled creates an error for cancelled operations.
func ContextCancelled(operation string) *AppError {
	return &AppError{
		Kind:    ErrTimeout,
		Message: fmt.Sprintf("%s was cancelled", operation),
		Details: map[string]string{
			"operation": operation,
		},
	}
}

// Helper functions for error detection.

// IsRetryable returns true if the error is likely transient and retrying may succeed.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	return Is(err, ErrTransport) || Is(err, ErrTimeout)
}

// IsUserError returns true if the error is caused by user input or setup
// rather than by the service.
func IsUserError(err error) bool {
	if err == nil {
		return false
	}
	return Is(err, ErrConfig) || Is(err, ErrUnauthorized) || Is(err, ErrValidation)
}
