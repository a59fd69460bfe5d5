// Package components provides reusable TUI components for artisan.
package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wexinc/artisan/internal/tui/styles"
)

// FormField is the interface that all form fields must implement.
type FormField interface {
	ID() string
	Focus() tea.Cmd
	Blur()
	Focused() bool
	View() string
}

// FormSubmittedMsg is sent when a form is submitted.
type FormSubmittedMsg struct {
	FormID string
	Values map[string]string
}

// FormCanceledMsg is sent when a form is canceled.
type FormCanceledMsg struct {
	FormID string
}

// Form is a container for form fields with tab navigation.
type Form struct {
	id         string
	title      string
	fields     []FormField
	focusIndex int
	width      int
	showHelp   bool
}

// NewForm creates a new Form container.
func NewForm(id, title string) *Form {
	return &Form{
		id:       id,
		title:    title,
		showHelp: true,
	}
}

// ID returns the form's unique identifier.
func (f *Form) ID() string {
	return f.id
}

// AddFields adds fields to the form in tab order.
func (f *Form) AddFields(fields ...FormField) {
	f.fields = append(f.fields, fields...)
}

// SetWidth sets the form width and resizes text inputs.
func (f *Form) SetWidth(width int) {
	f.width = width
	for _, field := range f.fields {
		if ti, ok := field.(*TextInput); ok {
			ti.SetWidth(min(width-4, 60))
		}
	}
}

// SetShowHelp sets whether to show help text.
func (f *Form) SetShowHelp(show bool) {
	f.showHelp = show
}

// FocusIndex returns the current focus index.
func (f *Form) FocusIndex() int {
	return f.focusIndex
}

// FocusedField returns the currently focused field, or nil if none.
func (f *Form) FocusedField() FormField {
	if f.focusIndex >= 0 && f.focusIndex < len(f.fields) {
		return f.fields[f.focusIndex]
	}
	return nil
}

// GetField returns a field by ID.
func (f *Form) GetField(id string) FormField {
	for _, field := range f.fields {
		if field.ID() == id {
			return field
		}
	}
	return nil
}

// Values returns the current value of every text input keyed by field ID.
func (f *Form) Values() map[string]string {
	values := make(map[string]string)
	for _, field := range f.fields {
		if ti, ok := field.(*TextInput); ok {
			values[ti.ID()] = ti.Value()
		}
	}
	return values
}

// Focus focuses the first field.
func (f *Form) Focus() tea.Cmd {
	return f.FocusField(0)
}

// Blur blurs all fields in the form.
func (f *Form) Blur() {
	for _, field := range f.fields {
		field.Blur()
	}
}

// NextField moves focus to the next field, wrapping around.
func (f *Form) NextField() tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	return f.FocusField((f.focusIndex + 1) % len(f.fields))
}

// PrevField moves focus to the previous field, wrapping around.
func (f *Form) PrevField() tea.Cmd {
	if len(f.fields) == 0 {
		return nil
	}
	return f.FocusField((f.focusIndex - 1 + len(f.fields)) % len(f.fields))
}

// FocusField focuses a specific field by index.
func (f *Form) FocusField(index int) tea.Cmd {
	if index < 0 || index >= len(f.fields) {
		return nil
	}
	if current := f.FocusedField(); current != nil {
		current.Blur()
	}
	f.focusIndex = index
	return f.fields[index].Focus()
}

// Reset clears every text input and focuses the first field.
func (f *Form) Reset() tea.Cmd {
	for _, field := range f.fields {
		if ti, ok := field.(*TextInput); ok {
			ti.Reset()
		}
	}
	f.Blur()
	return f.Focus()
}

func (f *Form) submit() tea.Cmd {
	id, values := f.id, f.Values()
	return func() tea.Msg {
		return FormSubmittedMsg{FormID: id, Values: values}
	}
}

// Update handles Tab/Shift+Tab navigation and delegates other messages to
// the focused field. Enter on the last text input submits the form, enter
// on an earlier one advances focus.
func (f *Form) Update(msg tea.Msg) (*Form, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			return f, f.NextField()
		case "shift+tab", "up":
			return f, f.PrevField()
		case "esc":
			id := f.id
			return f, func() tea.Msg {
				return FormCanceledMsg{FormID: id}
			}
		}
	}

	switch field := f.FocusedField().(type) {
	case *TextInput:
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" {
			if f.lastTextInput() == f.focusIndex {
				return f, f.submit()
			}
			return f, f.NextField()
		}
		_, cmd := field.Update(msg)
		return f, cmd
	case *Button:
		_, cmd, activated := field.Update(msg)
		if activated {
			return f, tea.Batch(cmd, f.submit())
		}
		return f, cmd
	}
	return f, nil
}

func (f *Form) lastTextInput() int {
	last := -1
	for i, field := range f.fields {
		if _, ok := field.(*TextInput); ok {
			last = i
		}
	}
	return last
}

// View renders the form.
func (f *Form) View() string {
	var b strings.Builder

	if f.title != "" {
		b.WriteString(styles.FormTitleStyle.Render(f.title))
		b.WriteString("\n\n")
	}

	for i, field := range f.fields {
		b.WriteString("  ")
		b.WriteString(field.View())
		if i < len(f.fields)-1 {
			b.WriteString("\n")
		}
	}

	if f.showHelp {
		b.WriteString("\n\n  ")
		b.WriteString(NewShortcutBar(FormShortcuts...).View())
	}

	return b.String()
}
