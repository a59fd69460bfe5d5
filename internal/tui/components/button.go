package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/artisan/internal/tui/styles"
)

// ButtonStyle represents the visual style of a button.
type ButtonStyle int

const (
	// ButtonStylePrimary is the default button style.
	ButtonStylePrimary ButtonStyle = iota
	// ButtonStyleSecondary is a less prominent button style.
	ButtonStyleSecondary
	// ButtonStyleDanger is for destructive actions.
	ButtonStyleDanger
)

// Button is a form button activated with enter or space.
type Button struct {
	label    string
	focused  bool
	disabled bool
	id       string
	style    ButtonStyle
}

// NewButton creates a new Button component.
func NewButton(id, label string) *Button {
	return &Button{
		label: label,
		id:    id,
		style: ButtonStylePrimary,
	}
}

// ID returns the component's unique identifier.
func (b *Button) ID() string {
	return b.id
}

// Focus focuses the button.
func (b *Button) Focus() tea.Cmd {
	b.focused = true
	return nil
}

// Blur removes focus from the button.
func (b *Button) Blur() {
	b.focused = false
}

// Focused returns whether the button is focused.
func (b *Button) Focused() bool {
	return b.focused
}

// SetStyle sets the button style.
func (b *Button) SetStyle(style ButtonStyle) {
	b.style = style
}

// SetLabel sets the button label.
func (b *Button) SetLabel(label string) {
	b.label = label
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// SetDisabled disables activation, e.g. while a login request is in flight.
func (b *Button) SetDisabled(disabled bool) {
	b.disabled = disabled
}

// Disabled reports whether the button ignores activation.
func (b *Button) Disabled() bool {
	return b.disabled
}

// Update handles messages for the button.
// Returns true if the button was activated.
func (b *Button) Update(msg tea.Msg) (*Button, tea.Cmd, bool) {
	if !b.focused || b.disabled {
		return b, nil, false
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter", " ":
			return b, nil, true
		}
	}
	return b, nil, false
}

// View renders the button.
func (b *Button) View() string {
	if b.disabled {
		return styles.ButtonSecondaryUnfocusedStyle.Render(b.label)
	}
	return b.lookStyle().Render(b.label)
}

func (b *Button) lookStyle() lipgloss.Style {
	switch b.style {
	case ButtonStyleSecondary:
		if b.focused {
			return styles.ButtonSecondaryStyle
		}
		return styles.ButtonSecondaryUnfocusedStyle
	case ButtonStyleDanger:
		if b.focused {
			return styles.ButtonDangerStyle
		}
		return styles.ButtonDangerUnfocusedStyle
	default:
		if b.focused {
			return styles.ButtonPrimaryStyle
		}
		return styles.ButtonPrimaryUnfocusedStyle
	}
}
