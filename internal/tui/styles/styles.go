// Package styles provides Lip Gloss styles for the artisan TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette for the TUI.
var (
	Primary     = lipgloss.Color("#B45309") // Terracotta
	Secondary   = lipgloss.Color("#0EA5E9") // Sky
	Success     = lipgloss.Color("#10B981") // Green
	Warning     = lipgloss.Color("#F59E0B") // Amber
	Error       = lipgloss.Color("#EF4444") // Red
	Muted       = lipgloss.Color("#6B7280") // Gray
	MutedLight  = lipgloss.Color("#9CA3AF") // Light Gray
	Background  = lipgloss.Color("#1C1917") // Stone
	Foreground  = lipgloss.Color("#FAFAF9") // White
	BorderColor = lipgloss.Color("#44403C") // Border Stone
)

// Header styles.
var (
	// HeaderLabelStyle is for header labels.
	HeaderLabelStyle = lipgloss.NewStyle().
				Foreground(MutedLight)

	// HeaderValueStyle is for header values.
	HeaderValueStyle = lipgloss.NewStyle().
				Foreground(Foreground).
				Bold(true)

	// TitleStyle is for the application title.
	TitleStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Background(Primary).
			Bold(true).
			Padding(0, 1)

	// TabStyle is an inactive page tab.
	TabStyle = lipgloss.NewStyle().
			Foreground(MutedLight).
			Padding(0, 1)

	// ActiveTabStyle is the tab of the current page.
	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(Background).
			Background(Secondary).
			Bold(true).
			Padding(0, 1)

	// BadgeStyle is the cart item count badge.
	BadgeStyle = lipgloss.NewStyle().
			Foreground(Background).
			Background(Warning).
			Bold(true).
			Padding(0, 1)
)

// Catalog styles.
var (
	// PriceStyle renders money amounts.
	PriceStyle = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	// CategoryStyle renders category labels.
	CategoryStyle = lipgloss.NewStyle().
			Foreground(Secondary)

	// RatingStyle renders star ratings.
	RatingStyle = lipgloss.NewStyle().
			Foreground(Warning)

	// OutOfStockStyle marks unavailable items.
	OutOfStockStyle = lipgloss.NewStyle().
			Foreground(Error).
			Italic(true)

	// SelectedRowStyle highlights the row under the cursor.
	SelectedRowStyle = lipgloss.NewStyle().
				Background(BorderColor).
				Bold(true)

	// CardStyle is a product card in grid view.
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	// SelectedCardStyle is the card under the cursor.
	SelectedCardStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(Primary).
				Padding(0, 1)
)

// Order status styles.
var (
	// StatusCompleted is the completed order icon.
	StatusCompleted = lipgloss.NewStyle().
			Foreground(Success).
			Render("✓")

	// StatusPending is the pending order icon.
	StatusPending = lipgloss.NewStyle().
			Foreground(Warning).
			Render("○")

	// StatusUnknown is shown for statuses the client does not know.
	StatusUnknown = lipgloss.NewStyle().
			Foreground(Muted).
			Render("?")
)

// Box styles.
var (
	// BoxStyle is a standard box with border.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	// FocusedBoxStyle is a box that's currently focused.
	FocusedBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)
)

// Text styles.
var (
	// MutedTextStyle is for de-emphasized text.
	MutedTextStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// ErrorTextStyle is for error messages.
	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(Error)

	// SuccessTextStyle is for success messages.
	SuccessTextStyle = lipgloss.NewStyle().
				Foreground(Success)

	// WarningTextStyle is for warning messages.
	WarningTextStyle = lipgloss.NewStyle().
				Foreground(Warning)
)

// Toast styles.
var (
	// ToastInfoStyle is a neutral notification.
	ToastInfoStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Background(Secondary).
			Padding(0, 1)

	// ToastSuccessStyle is a success notification.
	ToastSuccessStyle = lipgloss.NewStyle().
				Foreground(Background).
				Background(Success).
				Padding(0, 1)

	// ToastErrorStyle is an error notification.
	ToastErrorStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Background(Error).
			Padding(0, 1)
)

// Status bar styles.
var (
	// StatusBarStyle is the main status bar container.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(MutedLight).
			Padding(0, 1)

	// KeyStyle is for keyboard shortcut keys.
	KeyStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	// HelpStyle is for help text.
	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted)
)

// Form component styles.
var (
	// FormTitleStyle is for form titles.
	FormTitleStyle = lipgloss.NewStyle().
			Foreground(Foreground).
			Bold(true).
			Padding(0, 1)

	// FormLabelStyle is for form field labels.
	FormLabelStyle = lipgloss.NewStyle().
			Foreground(MutedLight)

	// FormLabelFocusedStyle is for focused form field labels.
	FormLabelFocusedStyle = lipgloss.NewStyle().
				Foreground(Secondary).
				Bold(true)

	// FormInputStyle is for form text inputs (unfocused).
	FormInputStyle = lipgloss.NewStyle().
			Foreground(MutedLight).
			Padding(0, 1)

	// FormInputFocusedStyle is for focused form text inputs.
	FormInputFocusedStyle = lipgloss.NewStyle().
				Foreground(Foreground).
				Background(Background).
				Padding(0, 1)

	// ButtonPrimaryStyle is for primary buttons (focused).
	ButtonPrimaryStyle = lipgloss.NewStyle().
				Foreground(Background).
				Background(Primary).
				Bold(true).
				Padding(0, 2)

	// ButtonPrimaryUnfocusedStyle is for primary buttons (unfocused).
	ButtonPrimaryUnfocusedStyle = lipgloss.NewStyle().
					Foreground(Primary).
					Border(lipgloss.NormalBorder()).
					BorderForeground(Primary).
					Padding(0, 1)

	// ButtonSecondaryStyle is for secondary buttons (focused).
	ButtonSecondaryStyle = lipgloss.NewStyle().
				Foreground(Background).
				Background(Secondary).
				Bold(true).
				Padding(0, 2)

	// ButtonSecondaryUnfocusedStyle is for secondary buttons (unfocused).
	ButtonSecondaryUnfocusedStyle = lipgloss.NewStyle().
					Foreground(MutedLight).
					Border(lipgloss.NormalBorder()).
					BorderForeground(Muted).
					Padding(0, 1)

	// ButtonDangerStyle is for danger buttons (focused).
	ButtonDangerStyle = lipgloss.NewStyle().
				Foreground(Foreground).
				Background(Error).
				Bold(true).
				Padding(0, 2)

	// ButtonDangerUnfocusedStyle is for danger buttons (unfocused).
	ButtonDangerUnfocusedStyle = lipgloss.NewStyle().
					Foreground(Error).
					Border(lipgloss.NormalBorder()).
					BorderForeground(Error).
					Padding(0, 1)
)
