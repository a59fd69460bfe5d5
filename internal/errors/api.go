// Package errors provides error types for artisan.
// This file contains errors reported by the storefront API.
package errors

import (
	"errors"
	"fmt"
)

// Is is errors.Is, re-exported so callers importing this package need not
// alias the standard library.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is errors.As, re-exported for the same reason as Is.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Unauthorized creates an error for rejected credentials.
func Unauthorized(message string) *AppError {
	if message == "" {
		message = "invalid username or password"
	}
	return &AppError{
		Kind:       ErrUnauthorized,
		Message:    message,
		Suggestion: "Log in again with: artisan login --username <name>",
	}
}

// SessionExpired creates an error for a token the server no longer accepts.
func SessionExpired() *AppError {
	return &AppError{
		Kind:       ErrUnauthorized,
		Message:    "session expired",
		Suggestion: "Log in again with: artisan login --username <name>",
	}
}

// NotLoggedIn creates an error for commands that need a session when none is stored.
func NotLoggedIn() *AppError {
	return &AppError{
		Kind:       ErrUnauthorized,
		Message:    "not logged in",
		Suggestion: "Log in first with: artisan login --username <name>",
	}
}

// NotFound creates an error for a missing cart, item or order.
func NotFound(resource, id, message string) *AppError {
	if message == "" {
		message = resource + " not found"
	}
	err := &AppError{
		Kind:    ErrNotFound,
		Message: message,
		Details: map[string]string{
			"resource": resource,
		},
	}
	if id != "" {
		err.Details["id"] = id
	}
	return err
}

// Resource returns the resource recorded on a NotFound error, or "".
func Resource(err error) string {
	var ae *AppError
	if errors.As(err, &ae) && ae.Details != nil {
		return ae.Details["resource"]
	}
	return ""
}

// Validation creates an error for a request the server or client rejected as malformed.
func Validation(message string) *AppError {
	return &AppError{
		Kind:    ErrValidation,
		Message: message,
	}
}

// InvalidQuantity creates an error for a non-positive cart quantity.
func InvalidQuantity(qty int) *AppError {
	return &AppError{
		Kind:    ErrValidation,
		Message: fmt.Sprintf("quantity must be at least 1, got %d", qty),
		Details: map[string]string{
			"quantity": fmt.Sprintf("%d", qty),
		},
	}
}

// EmptyCart creates an error for a checkout attempted with nothing in the cart.
func EmptyCart() *AppError {
	return &AppError{
		Kind:       ErrValidation,
		Message:    "cart is empty",
		Suggestion: "Add items with: artisan cart add <item-id>",
	}
}
