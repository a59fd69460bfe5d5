package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wexinc/artisan/internal/tui/styles"
)

// TextInput wraps the bubbles textinput so it can live in a Form.
type TextInput struct {
	model   textinput.Model
	label   string
	focused bool
	width   int
	id      string
}

// NewTextInput creates a new TextInput component.
func NewTextInput(id, label string) *TextInput {
	ti := textinput.New()
	ti.CharLimit = 128
	ti.Width = 30

	return &TextInput{
		model: ti,
		label: label,
		id:    id,
	}
}

// NewPasswordInput creates a TextInput whose value is echoed as bullets.
func NewPasswordInput(id, label string) *TextInput {
	t := NewTextInput(id, label)
	t.model.EchoMode = textinput.EchoPassword
	t.model.EchoCharacter = '•'
	return t
}

// ID returns the component's unique identifier.
func (t *TextInput) ID() string {
	return t.id
}

// Focus focuses the text input.
func (t *TextInput) Focus() tea.Cmd {
	t.focused = true
	return t.model.Focus()
}

// Blur removes focus from the text input.
func (t *TextInput) Blur() {
	t.focused = false
	t.model.Blur()
}

// Focused returns whether the text input is focused.
func (t *TextInput) Focused() bool {
	return t.focused
}

// SetValue sets the text input value.
func (t *TextInput) SetValue(value string) {
	t.model.SetValue(value)
}

// Value returns the current text input value.
func (t *TextInput) Value() string {
	return t.model.Value()
}

// IsPassword reports whether the input masks its value.
func (t *TextInput) IsPassword() bool {
	return t.model.EchoMode == textinput.EchoPassword
}

// SetPlaceholder sets the placeholder text.
func (t *TextInput) SetPlaceholder(placeholder string) {
	t.model.Placeholder = placeholder
}

// SetWidth sets the total width including the label.
func (t *TextInput) SetWidth(width int) {
	t.width = width
	t.model.Width = max(width-len(t.label)-5, 10)
}

// Update handles messages for the text input.
func (t *TextInput) Update(msg tea.Msg) (*TextInput, tea.Cmd) {
	if !t.focused {
		return t, nil
	}

	var cmd tea.Cmd
	t.model, cmd = t.model.Update(msg)
	return t, cmd
}

// View renders the text input.
func (t *TextInput) View() string {
	labelStyle := styles.FormLabelStyle
	inputStyle := styles.FormInputStyle
	if t.focused {
		labelStyle = styles.FormLabelFocusedStyle
		inputStyle = styles.FormInputFocusedStyle
	}
	return labelStyle.Render(t.label+": ") + inputStyle.Render(t.model.View())
}

// Reset clears the text input value.
func (t *TextInput) Reset() {
	t.model.Reset()
}
