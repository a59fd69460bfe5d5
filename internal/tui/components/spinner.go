package components

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/artisan/internal/tui/styles"
)

// Spinner shows an animated indicator while requests are in flight.
type Spinner struct {
	spinner   spinner.Model
	label     string
	startTime time.Time
	active    bool
}

// NewSpinner creates a new Spinner component with default styling.
func NewSpinner() *Spinner {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Secondary)
	return &Spinner{spinner: s}
}

// Start activates the spinner with label and returns the first tick.
func (s *Spinner) Start(label string) tea.Cmd {
	s.label = label
	if s.active {
		return nil
	}
	s.active = true
	s.startTime = time.Now()
	return s.spinner.Tick
}

// Stop deactivates the spinner. Pending ticks are ignored afterwards.
func (s *Spinner) Stop() {
	s.active = false
	s.label = ""
}

// Active reports whether the spinner is running.
func (s *Spinner) Active() bool {
	return s.active
}

// Label returns the current label.
func (s *Spinner) Label() string {
	return s.label
}

// Elapsed returns the time since Start, or zero when stopped.
func (s *Spinner) Elapsed() time.Duration {
	if !s.active {
		return 0
	}
	return time.Since(s.startTime)
}

// Update advances the animation. Ticks are dropped while stopped so the
// tick loop ends.
func (s *Spinner) Update(msg tea.Msg) tea.Cmd {
	if !s.active {
		return nil
	}
	var cmd tea.Cmd
	s.spinner, cmd = s.spinner.Update(msg)
	return cmd
}

// View renders the spinner and its label, with elapsed seconds after the
// first second.
func (s *Spinner) View() string {
	if !s.active {
		return ""
	}
	line := fmt.Sprintf("%s %s", s.spinner.View(), lipgloss.NewStyle().Foreground(styles.Foreground).Render(s.label))
	if elapsed := s.Elapsed(); elapsed >= time.Second {
		line += " " + styles.MutedTextStyle.Render(fmt.Sprintf("(%ds)", int(elapsed.Seconds())))
	}
	return line
}
