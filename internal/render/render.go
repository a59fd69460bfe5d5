// Package render writes storefront data for the non-interactive commands,
// either as human-readable tables or as JSON.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"

	"github.com/wexinc/artisan/internal/api"
	"github.com/wexinc/artisan/internal/catalog"
)

// Format defines the output format for headless commands.
type Format string

const (
	// FormatText is the default human-readable output.
	FormatText Format = "text"
	// FormatJSON produces structured JSON output.
	FormatJSON Format = "json"
)

// ParseFormat parses an --output flag value.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return FormatText, fmt.Errorf("unknown output format %q (want text or json)", s)
	}
}

// Money formats an amount as dollars with two decimals.
func Money(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// Renderer writes results in one format.
type Renderer struct {
	w      io.Writer
	format Format
}

// New creates a renderer writing to w.
func New(w io.Writer, format Format) *Renderer {
	return &Renderer{w: w, format: format}
}

// ItemsOutput is the JSON shape of an item listing.
type ItemsOutput struct {
	Items   []catalog.Item         `json:"items"`
	Visible int                    `json:"visible"`
	Total   int                    `json:"total"`
	Filter  catalog.FilterCriteria `json:"filter"`
}

// CartOutput is the JSON shape of a cart.
type CartOutput struct {
	Cart  *catalog.Cart   `json:"cart"`
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}

// OrdersOutput is the JSON shape of the order history.
type OrdersOutput struct {
	Orders []catalog.Order `json:"orders"`
}

// MessageOutput is the JSON shape of a plain status message.
type MessageOutput struct {
	Message string `json:"message"`
}

func (r *Renderer) json(v any) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

// Items writes the filtered item list. total is the unfiltered catalog size.
func (r *Renderer) Items(visible []catalog.Item, total int, criteria catalog.FilterCriteria) error {
	if r.format == FormatJSON {
		if visible == nil {
			visible = []catalog.Item{}
		}
		return r.json(ItemsOutput{Items: visible, Visible: len(visible), Total: total, Filter: criteria})
	}

	if len(visible) == 0 {
		_, err := fmt.Fprintln(r.w, "No products found")
		return err
	}

	t := newTable("ID", "NAME", "CATEGORY", "PRICE", "RATING", "STOCK")
	for _, item := range visible {
		stock := "in stock"
		if !item.InStock {
			stock = "out of stock"
		}
		t.Row(
			strconv.FormatUint(uint64(item.ID), 10),
			item.Name,
			string(item.Category),
			Money(item.Price),
			fmt.Sprintf("%.1f (%d)", item.Rating, item.Reviews),
			stock,
		)
	}
	_, err := fmt.Fprintf(r.w, "%s\n%s\n", t.String(), catalog.Summary(len(visible), total))
	return err
}

// Cart writes the cart with per-line subtotals. A nil cart is empty.
func (r *Renderer) Cart(cart *catalog.Cart) error {
	count, total := catalog.CartCount(cart), catalog.CartTotal(cart)
	if r.format == FormatJSON {
		return r.json(CartOutput{Cart: cart, Count: count, Total: total})
	}

	if count == 0 {
		_, err := fmt.Fprintln(r.w, "Your cart is empty")
		return err
	}

	t := newTable("ITEM", "NAME", "QTY", "PRICE", "SUBTOTAL")
	for _, line := range cart.Items {
		t.Row(
			strconv.FormatUint(uint64(line.ItemID), 10),
			line.Item.Name,
			strconv.Itoa(line.Quantity),
			Money(line.Price),
			Money(catalog.LineSubtotal(line)),
		)
	}
	noun := "items"
	if count == 1 {
		noun = "item"
	}
	_, err := fmt.Fprintf(r.w, "%s\nTotal (%d %s): %s\n", t.String(), count, noun, Money(total))
	return err
}

// Checkout writes the result of a successful checkout.
func (r *Renderer) Checkout(res api.CheckoutResult) error {
	if r.format == FormatJSON {
		return r.json(res)
	}
	_, err := fmt.Fprintln(r.w, CheckoutMessage(res))
	return err
}

// CheckoutMessage is the confirmation shown after placing an order.
func CheckoutMessage(res api.CheckoutResult) string {
	return fmt.Sprintf("Order #%d created with total: %s", res.OrderID, Money(res.Total))
}

// Orders writes the order history, newest first as returned by the server.
func (r *Renderer) Orders(orders []catalog.Order) error {
	if r.format == FormatJSON {
		if orders == nil {
			orders = []catalog.Order{}
		}
		return r.json(OrdersOutput{Orders: orders})
	}

	if len(orders) == 0 {
		_, err := fmt.Fprintln(r.w, "No orders yet")
		return err
	}

	t := newTable("ORDER", "DATE", "STATUS", "ITEMS", "TOTAL")
	for _, o := range orders {
		date := "-"
		if !o.CreatedAt.IsZero() {
			date = o.CreatedAt.Local().Format("2006-01-02 15:04")
		}
		t.Row(
			"#"+strconv.FormatUint(uint64(o.ID), 10),
			date,
			string(o.Status),
			strconv.Itoa(catalog.CartCount(&o.Cart)),
			Money(o.Total),
		)
	}
	_, err := fmt.Fprintln(r.w, t.String())
	return err
}

// Message writes a plain status message.
func (r *Renderer) Message(msg string) error {
	if r.format == FormatJSON {
		return r.json(MessageOutput{Message: msg})
	}
	_, err := fmt.Fprintln(r.w, msg)
	return err
}
