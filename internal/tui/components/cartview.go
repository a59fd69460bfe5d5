package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/artisan/internal/catalog"
	"github.com/wexinc/artisan/internal/render"
	"github.com/wexinc/artisan/internal/tui/styles"
)

// CartView lists cart lines with their subtotals and the cart total.
type CartView struct {
	cart     *catalog.Cart
	selected int
	width    int
}

// NewCartView creates an empty CartView.
func NewCartView() *CartView {
	return &CartView{}
}

// SetCart replaces the displayed cart. A nil cart is shown as empty.
func (c *CartView) SetCart(cart *catalog.Cart) {
	c.cart = cart
	c.selected = min(c.selected, max(len(c.lines())-1, 0))
}

// SetWidth sets the render width.
func (c *CartView) SetWidth(width int) {
	c.width = width
}

func (c *CartView) lines() []catalog.CartLine {
	if c.cart == nil {
		return nil
	}
	return c.cart.Items
}

// Empty reports whether there is nothing to check out.
func (c *CartView) Empty() bool {
	return len(c.lines()) == 0
}

// Selected returns the cursor index.
func (c *CartView) Selected() int {
	return c.selected
}

// SelectedLine returns the line under the cursor, or nil if empty.
func (c *CartView) SelectedLine() *catalog.CartLine {
	lines := c.lines()
	if c.selected < 0 || c.selected >= len(lines) {
		return nil
	}
	return &lines[c.selected]
}

// Update handles keyboard navigation.
func (c *CartView) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "up", "k":
		if c.selected > 0 {
			c.selected--
		}
	case "down", "j":
		if c.selected < len(c.lines())-1 {
			c.selected++
		}
	}
	return nil
}

// View renders the cart.
func (c *CartView) View() string {
	lines := c.lines()
	if len(lines) == 0 {
		return lipgloss.NewStyle().
			Foreground(styles.Muted).
			Italic(true).
			Padding(1, 2).
			Render("Your cart is empty. Press 1 to browse products.")
	}

	var b strings.Builder
	for i, line := range lines {
		cursor := "  "
		rowStyle := lipgloss.NewStyle()
		if i == c.selected {
			cursor = lipgloss.NewStyle().Foreground(styles.Secondary).Bold(true).Render("▶ ")
			rowStyle = styles.SelectedRowStyle
		}
		if c.width > 0 {
			rowStyle = rowStyle.Width(c.width)
		}
		name := lipgloss.NewStyle().Width(30).Render(truncateString(line.Item.Name, 29))
		qty := lipgloss.NewStyle().Width(12).Render(fmt.Sprintf("%d × %s", line.Quantity, render.Money(line.Price)))
		subtotal := styles.PriceStyle.Width(12).Align(lipgloss.Right).Render(render.Money(catalog.LineSubtotal(line)))
		b.WriteString(rowStyle.Render(cursor + name + " " + qty + " " + subtotal))
		b.WriteString("\n")
	}

	count := catalog.CartCount(c.cart)
	total := fmt.Sprintf("Total (%d %s): %s", count, pluralItems(count), render.Money(catalog.CartTotal(c.cart)))
	b.WriteString("\n  ")
	b.WriteString(styles.HeaderValueStyle.Render(total))
	return b.String()
}

func pluralItems(n int) string {
	if n == 1 {
		return "item"
	}
	return "items"
}
