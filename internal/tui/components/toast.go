package components

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wexinc/artisan/internal/tui/styles"
)

// ToastKind selects the toast color.
type ToastKind int

const (
	ToastInfo ToastKind = iota
	ToastSuccess
	ToastError
)

// ToastExpiredMsg is sent when the toast with ID should be dismissed.
type ToastExpiredMsg struct {
	ID int
}

// Toast is a single transient notification. A newer toast replaces the
// current one, and only the expiry of the newest toast dismisses it.
type Toast struct {
	id       int
	kind     ToastKind
	text     string
	visible  bool
	duration time.Duration
}

// NewToast creates a Toast that dismisses itself after duration.
func NewToast(duration time.Duration) *Toast {
	if duration <= 0 {
		duration = 4 * time.Second
	}
	return &Toast{duration: duration}
}

// Show displays text and returns the command that expires it.
func (t *Toast) Show(kind ToastKind, text string) tea.Cmd {
	t.id++
	t.kind = kind
	t.text = text
	t.visible = true
	id := t.id
	return tea.Tick(t.duration, func(time.Time) tea.Msg {
		return ToastExpiredMsg{ID: id}
	})
}

// Expire hides the toast if id is still the current one.
func (t *Toast) Expire(id int) {
	if id == t.id {
		t.visible = false
	}
}

// Visible reports whether a toast is showing.
func (t *Toast) Visible() bool {
	return t.visible
}

// Text returns the current toast text.
func (t *Toast) Text() string {
	return t.text
}

// Kind returns the current toast kind.
func (t *Toast) Kind() ToastKind {
	return t.kind
}

// Duration returns the auto-dismiss delay.
func (t *Toast) Duration() time.Duration {
	return t.duration
}

// View renders the toast or nothing.
func (t *Toast) View() string {
	if !t.visible {
		return ""
	}
	switch t.kind {
	case ToastSuccess:
		return styles.ToastSuccessStyle.Render("✓ " + t.text)
	case ToastError:
		return styles.ToastErrorStyle.Render("✗ " + t.text)
	default:
		return styles.ToastInfoStyle.Render(t.text)
	}
}
