package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/artisan/internal/tui/styles"
)

// StatusBarData contains the data to display in the status bar.
type StatusBarData struct {
	Username  string
	Loading   bool
	Message   string        // Optional status message
	Shortcuts []ShortcutDef // Shortcuts for the current page
}

// StatusBar shows the signed-in user, load state and page shortcuts.
type StatusBar struct {
	data  StatusBarData
	width int
}

// NewStatusBar creates a new StatusBar component.
func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

// SetData updates the status bar data.
func (s *StatusBar) SetData(data StatusBarData) {
	s.data = data
}

// SetUsername sets the signed-in user. Empty means signed out.
func (s *StatusBar) SetUsername(name string) {
	s.data.Username = name
}

// SetLoading marks whether a request is in flight.
func (s *StatusBar) SetLoading(loading bool) {
	s.data.Loading = loading
}

// SetMessage sets an optional status message.
func (s *StatusBar) SetMessage(message string) {
	s.data.Message = message
}

// SetShortcuts replaces the shortcuts shown on the right.
func (s *StatusBar) SetShortcuts(shortcuts []ShortcutDef) {
	s.data.Shortcuts = shortcuts
}

// SetWidth sets the width of the status bar.
func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// View renders the status bar.
func (s *StatusBar) View() string {
	sep := lipgloss.NewStyle().
		Foreground(styles.Muted).
		Render(" │ ")

	left := s.renderUser()
	if s.data.Loading {
		left += sep + lipgloss.NewStyle().Foreground(styles.Secondary).Render("◐ Loading")
	}
	if s.data.Message != "" {
		msgStyle := lipgloss.NewStyle().
			Foreground(styles.MutedLight).
			Italic(true)
		left += sep + msgStyle.Render(s.data.Message)
	}

	right := ""
	if len(s.data.Shortcuts) > 0 {
		right = NewShortcutBar(s.data.Shortcuts...).View()
	}

	containerStyle := lipgloss.NewStyle().
		Background(styles.Background).
		Padding(0, 1)

	if s.width > 0 {
		containerStyle = containerStyle.Width(s.width)
		padding := s.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
		if padding > 0 {
			return containerStyle.Render(left + strings.Repeat(" ", padding) + right)
		}
	}

	return containerStyle.Render(left + "  " + right)
}

func (s *StatusBar) renderUser() string {
	if s.data.Username == "" {
		return lipgloss.NewStyle().Foreground(styles.Muted).Render("○ Signed out")
	}
	return lipgloss.NewStyle().Foreground(styles.Success).Render("● " + s.data.Username)
}
