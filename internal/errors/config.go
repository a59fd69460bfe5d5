// Package errors provides error types for artisan.
// This file contains configuration and session-related errors.
package errors

import (
	"fmt"
	"strings"
)

// Configuration-related error constructors.

// ConfigParseError creates an error for YAML parsing failures.
func ConfigParseError(configPath string, parseErr error) *AppError {
	return &AppError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("failed to parse configuration: %s", configPath),
		Cause:   parseErr,
		Details: map[string]string{
			"path": configPath,
		},
		Suggestion: `Check your config.yaml for syntax errors:
  1. Ensure proper YAML indentation (use spaces, not tabs)
  2. Check for missing colons or quotes
  3. Regenerate defaults with: artisan init --force`,
	}
}

// ConfigValidationError creates an error for invalid configuration values.
func ConfigValidationError(field, message string, validOptions []string) *AppError {
	suggestion := fmt.Sprintf("Fix the %q field in ~/.artisan/config.yaml", field)
	if len(validOptions) > 0 {
		suggestion += fmt.Sprintf("\n  Valid options: %s", strings.Join(validOptions, ", "))
	}

	return &AppError{
		Kind:    ErrConfig,
		Message: fmt.Sprintf("invalid configuration: %s", message),
		Details: map[string]string{
			"field": field,
		},
		Suggestion: suggestion,
	}
}

// Session-related error constructors.

// SessionUnreadable creates an error for a corrupt or unreadable session file.
func SessionUnreadable(path string, cause error) *AppError {
	return &AppError{
		Kind:    ErrSession,
		Message: "failed to read session",
		Cause:   cause,
		Details: map[string]string{
			"path": path,
		},
		Suggestion: "Run 'artisan logout' to discard the session file, then log in again.",
	}
}

// SessionUnwritable creates an error for a session file that could not be saved.
func SessionUnwritable(path string, cause error) *AppError {
	return &AppError{
		Kind:    ErrSession,
		Message: "failed to save session",
		Cause:   cause,
		Details: map[string]string{
			"path": path,
		},
		Suggestion: "Check permissions on the session directory or set session.file in the config.",
	}
}
