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

// OrderList shows past orders. Enter expands the selected order's lines.
type OrderList struct {
	orders   []catalog.Order
	selected int
	expanded map[uint]bool
	width    int
}

// NewOrderList creates an empty OrderList.
func NewOrderList() *OrderList {
	return &OrderList{expanded: make(map[uint]bool)}
}

// SetOrders replaces the displayed orders.
func (o *OrderList) SetOrders(orders []catalog.Order) {
	o.orders = orders
	o.selected = min(o.selected, max(len(orders)-1, 0))
}

// SetWidth sets the render width.
func (o *OrderList) SetWidth(width int) {
	o.width = width
}

// Selected returns the cursor index.
func (o *OrderList) Selected() int {
	return o.selected
}

// Expanded reports whether the order with id shows its lines.
func (o *OrderList) Expanded(id uint) bool {
	return o.expanded[id]
}

// Toggle expands or collapses the selected order.
func (o *OrderList) Toggle() {
	if o.selected < len(o.orders) {
		id := o.orders[o.selected].ID
		o.expanded[id] = !o.expanded[id]
	}
}

// Update handles keyboard navigation and expansion.
func (o *OrderList) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "up", "k":
		if o.selected > 0 {
			o.selected--
		}
	case "down", "j":
		if o.selected < len(o.orders)-1 {
			o.selected++
		}
	case "enter", " ":
		o.Toggle()
	}
	return nil
}

// View renders the orders.
func (o *OrderList) View() string {
	if len(o.orders) == 0 {
		return lipgloss.NewStyle().
			Foreground(styles.Muted).
			Italic(true).
			Padding(1, 2).
			Render("No orders yet")
	}

	var b strings.Builder
	for i, order := range o.orders {
		cursor := "  "
		rowStyle := lipgloss.NewStyle()
		if i == o.selected {
			cursor = lipgloss.NewStyle().Foreground(styles.Secondary).Bold(true).Render("▶ ")
			rowStyle = styles.SelectedRowStyle
		}
		if o.width > 0 {
			rowStyle = rowStyle.Width(o.width)
		}
		line := fmt.Sprintf("%s%s Order #%-6d %s  %-10s %s",
			cursor,
			statusIcon(order.Status),
			order.ID,
			order.CreatedAt.Local().Format("2006-01-02 15:04"),
			string(order.Status),
			styles.PriceStyle.Render(render.Money(order.Total)),
		)
		b.WriteString(rowStyle.Render(line))
		b.WriteString("\n")

		if o.expanded[order.ID] {
			for _, cl := range order.Cart.Items {
				detail := fmt.Sprintf("      %d × %s @ %s", cl.Quantity, cl.Item.Name, render.Money(cl.Price))
				b.WriteString(styles.MutedTextStyle.Render(detail))
				b.WriteString("\n")
			}
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func statusIcon(status catalog.OrderStatus) string {
	switch status {
	case catalog.OrderCompleted:
		return styles.StatusCompleted
	case catalog.OrderPending:
		return styles.StatusPending
	default:
		return styles.StatusUnknown
	}
}
