package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/artisan/internal/tui/styles"
)

// Tab is one navigable page in the header.
type Tab struct {
	Key   string
	Title string
}

// HeaderData contains the data to display in the header.
type HeaderData struct {
	Tabs      []Tab
	Active    int
	CartCount int
	CartTotal string
}

// Header shows the page tabs and the cart badge.
type Header struct {
	data  HeaderData
	width int
}

// NewHeader creates a new Header component.
func NewHeader() *Header {
	return &Header{data: HeaderData{Active: -1}}
}

// SetData updates the header data.
func (h *Header) SetData(data HeaderData) {
	h.data = data
}

// SetTabs sets the page tabs.
func (h *Header) SetTabs(tabs []Tab) {
	h.data.Tabs = tabs
}

// SetActive highlights the tab at index. -1 highlights none.
func (h *Header) SetActive(index int) {
	h.data.Active = index
}

// SetCart updates the cart badge.
func (h *Header) SetCart(count int, total string) {
	h.data.CartCount = count
	h.data.CartTotal = total
}

// SetWidth sets the width for the header.
func (h *Header) SetWidth(width int) {
	h.width = width
}

// View renders the header.
func (h *Header) View() string {
	left := styles.TitleStyle.Render("ARTISAN")
	for i, tab := range h.data.Tabs {
		label := fmt.Sprintf("%s %s", tab.Key, tab.Title)
		if i == h.data.Active {
			left += " " + styles.ActiveTabStyle.Render(label)
		} else {
			left += " " + styles.TabStyle.Render(label)
		}
	}

	right := styles.HeaderLabelStyle.Render("Cart ") + styles.BadgeStyle.Render(fmt.Sprintf("%d", h.data.CartCount))
	if h.data.CartTotal != "" {
		right += " " + styles.HeaderValueStyle.Render(h.data.CartTotal)
	}

	if h.width > 0 {
		gap := h.width - lipgloss.Width(left) - lipgloss.Width(right)
		if gap > 0 {
			return lipgloss.NewStyle().Width(h.width).Render(left + lipgloss.NewStyle().Width(gap).Render("") + right)
		}
	}
	return left + "  " + right
}
