package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestServiceUnavailable(t *testing.T) {
	cause := errors.New("connection refused")
	err := ServiceUnavailable("localhost:8080", cause)

	if !errors.Is(err, ErrTransport) {
		t.Error("ServiceUnavailable should return ErrTransport")
	}
	if !errors.Is(err.Cause, cause) {
		t.Error("Should wrap the cause")
	}
	if err.Details["host"] != "localhost:8080" {
		t.Error("Should include host in details")
	}
	if !strings.Contains(err.Suggestion, "base_url") {
		t.Error("Suggestion should mention the base_url setting")
	}
}

func TestServiceUnavailable_NoHost(t *testing.T) {
	err := ServiceUnavailable("", nil)

	if err.Details != nil {
		t.Error("Should not include details when host is empty")
	}
}

func TestServerError(t *testing.T) {
	err := ServerError(503, "")

	if !errors.Is(err, ErrTransport) {
		t.Error("ServerError should return ErrTransport")
	}
	if !strings.Contains(err.Message, "503") {
		t.Errorf("Message should include status, got %q", err.Message)
	}
}

func TestCircuitOpen(t *testing.T) {
	err := CircuitOpen("storefront", 30*time.Second)

	if !errors.Is(err, ErrTransport) {
		t.Error("CircuitOpen should return ErrTransport")
	}
	if !strings.Contains(err.Suggestion, "30s") {
		t.Error("Suggestion should include the cooldown")
	}
}

func TestOperationTimeout(t *testing.T) {
	err := OperationTimeout("list items", 1500*time.Millisecond)

	if !errors.Is(err, ErrTimeout) {
		t.Error("OperationTimeout should return ErrTimeout")
	}
	if !strings.Contains(err.Message, "list items") {
		t.Error("Message should include operation name")
	}
	if err.Details["operation"] != "list items" {
		t.Error("Details should include operation")
	}
}

func TestContextCancelled(t *testing.T) {
	err := ContextCancelled("checkout")

	if !errors.Is(err, ErrTimeout) {
		t.Error("ContextCancelled should return ErrTimeout")
	}
	if !strings.Contains(err.Message, "cancelled") {
		t.Error("Message should indicate cancellation")
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
		{
			name:     "transport error",
			err:      &AppError{Kind: ErrTransport, Message: "down"},
			expected: true,
		},
		{
			name:     "timeout error",
			err:      &AppError{Kind: ErrTimeout, Message: "timeout"},
			expected: true,
		},
		{
			name:     "wrapped transport error",
			err:      fmt.Errorf("load items: %w", ServiceUnavailable("", nil)),
			expected: true,
		},
		{
			name:     "unauthorized",
			err:      &AppError{Kind: ErrUnauthorized, Message: "auth"},
			expected: false,
		},
		{
			name:     "not found",
			err:      NotFound("cart", "", ""),
			expected: false,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.expected {
				t.Errorf("IsRetryable() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsUserError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "config error",
			err:      &AppError{Kind: ErrConfig, Message: "config"},
			expected: true,
		},
		{
			name:     "unauthorized",
			err:      Unauthorized(""),
			expected: true,
		},
		{
			name:     "validation",
			err:      InvalidQuantity(0),
			expected: true,
		},
		{
			name:     "transport error",
			err:      ServiceUnavailable("", nil),
			expected: false,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsUserError(tt.err); got != tt.expected {
				t.Errorf("IsUserError() = %v, want %v", got, tt.expected)
			}
		})
	}
}
