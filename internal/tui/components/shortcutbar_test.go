package components

import (
	"strings"
	"testing"
)

func TestShortcutBar_View(t *testing.T) {
	tests := []struct {
		name      string
		shortcuts []ShortcutDef
		want      []string
	}{
		{"empty", nil, nil},
		{"form", FormShortcuts, []string{"Tab:next field", "Enter:submit", "Esc:quit"}},
		{"cart", CartShortcuts, []string{"+:add one", "d:remove", "o:checkout"}},
		{"products", ProductShortcuts, []string{"/:search", "c:category", "s:sort"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := NewShortcutBar(tt.shortcuts...).View()
			if len(tt.shortcuts) == 0 && view != "" {
				t.Errorf("expected empty view, got %q", view)
			}
			for _, want := range tt.want {
				if !strings.Contains(view, want) {
					t.Errorf("expected %q in %q", want, view)
				}
			}
		})
	}
}

func TestShortcutBar_Centered(t *testing.T) {
	bar := NewShortcutBar(OrderShortcuts...)
	bar.SetCentered(true)
	bar.SetWidth(80)

	view := bar.View()
	if !strings.Contains(view, "Enter:details") {
		t.Errorf("missing shortcut in %q", view)
	}
	if !strings.HasPrefix(view, " ") {
		t.Errorf("centered bar should be padded, got %q", view)
	}
}
