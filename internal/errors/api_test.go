package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestUnauthorized(t *testing.T) {
	err := Unauthorized("")
	if !errors.Is(err, ErrUnauthorized) {
		t.Error("Unauthorized should return ErrUnauthorized")
	}
	if err.Message != "invalid username or password" {
		t.Errorf("unexpected default message %q", err.Message)
	}

	custom := Unauthorized("account locked")
	if custom.Message != "account locked" {
		t.Errorf("Message = %q, want custom message", custom.Message)
	}
}

func TestSessionExpiredAndNotLoggedIn(t *testing.T) {
	for _, err := range []*AppError{SessionExpired(), NotLoggedIn()} {
		if !errors.Is(err, ErrUnauthorized) {
			t.Errorf("%q should be ErrUnauthorized", err.Message)
		}
		if !strings.Contains(err.Suggestion, "artisan login") {
			t.Errorf("%q should suggest logging in", err.Message)
		}
	}
}

func TestNotFound(t *testing.T) {
	err := NotFound("item", "42", "")

	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFound should return ErrNotFound")
	}
	if err.Message != "item not found" {
		t.Errorf("Message = %q, want default message", err.Message)
	}
	if err.Details["id"] != "42" {
		t.Error("Details should include id")
	}

	noID := NotFound("cart", "", "Cart not found")
	if _, ok := noID.Details["id"]; ok {
		t.Error("Details should omit empty id")
	}
	if noID.Message != "Cart not found" {
		t.Errorf("Message = %q, want server message", noID.Message)
	}
}

func TestResource(t *testing.T) {
	wrapped := fmt.Errorf("get cart: %w", NotFound("cart", "", ""))
	if got := Resource(wrapped); got != "cart" {
		t.Errorf("Resource() = %q, want cart", got)
	}
	if got := Resource(errors.New("plain")); got != "" {
		t.Errorf("Resource() = %q, want empty", got)
	}
	if got := Resource(Validation("bad")); got != "" {
		t.Errorf("Resource() = %q, want empty for errors without details", got)
	}
}

func TestValidationConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{"validation", Validation("item_id is required"), "item_id is required"},
		{"invalid quantity", InvalidQuantity(-2), "quantity must be at least 1, got -2"},
		{"empty cart", EmptyCart(), "cart is empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, ErrValidation) {
				t.Error("should return ErrValidation")
			}
			if tt.err.Message != tt.want {
				t.Errorf("Message = %q, want %q", tt.err.Message, tt.want)
			}
		})
	}
}
