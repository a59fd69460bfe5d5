package components

import (
	"strings"
	"testing"
)

func TestNewButton(t *testing.T) {
	btn := NewButton("submit", "Log in")
	if btn.ID() != "submit" {
		t.Errorf("ID() = %q, want %q", btn.ID(), "submit")
	}
	if btn.Label() != "Log in" {
		t.Errorf("Label() = %q, want %q", btn.Label(), "Log in")
	}
	if btn.Focused() || btn.Disabled() {
		t.Error("new button should be unfocused and enabled")
	}
}

func TestButtonActivation(t *testing.T) {
	tests := []struct {
		name     string
		focused  bool
		disabled bool
		key      string
		want     bool
	}{
		{"enter when focused", true, false, "enter", true},
		{"space when focused", true, false, " ", true},
		{"other key", true, false, "x", false},
		{"unfocused", false, false, "enter", false},
		{"disabled", true, true, "enter", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			btn := NewButton("b", "Go")
			if tt.focused {
				btn.Focus()
			}
			btn.SetDisabled(tt.disabled)
			_, _, activated := btn.Update(key(tt.key))
			if activated != tt.want {
				t.Errorf("activated = %v, want %v", activated, tt.want)
			}
		})
	}
}

func TestButtonView(t *testing.T) {
	btn := NewButton("b", "Place order")
	for _, style := range []ButtonStyle{ButtonStylePrimary, ButtonStyleSecondary, ButtonStyleDanger} {
		btn.SetStyle(style)
		if !strings.Contains(btn.View(), "Place order") {
			t.Errorf("style %d: view should contain the label", style)
		}
	}

	btn.SetLabel("Remove")
	btn.SetDisabled(true)
	if !strings.Contains(btn.View(), "Remove") {
		t.Error("disabled view should contain the label")
	}
}
