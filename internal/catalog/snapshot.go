package catalog

import (
	"github.com/shopspring/decimal"
)

// Snapshot is the complete state a storefront view is computed from. It is a
// value: each update produces a new Snapshot and the derived View is always
// recomputed from scratch.
type Snapshot struct {
	Items    []Item
	Cart     *Cart
	Orders   []Order
	Criteria FilterCriteria
}

// View is the derived, render-ready data for a Snapshot.
type View struct {
	Visible   []Item
	Total     int
	CartCount int
	CartTotal decimal.Decimal
}

// NewSnapshot returns an empty snapshot with the given criteria.
func NewSnapshot(criteria FilterCriteria) Snapshot {
	return Snapshot{Criteria: criteria}
}

// WithItems returns a copy of s holding items.
func (s Snapshot) WithItems(items []Item) Snapshot {
	s.Items = items
	return s
}

// WithCart returns a copy of s holding cart. A nil cart is the empty-cart state.
func (s Snapshot) WithCart(cart *Cart) Snapshot {
	s.Cart = cart
	return s
}

// WithOrders returns a copy of s holding orders.
func (s Snapshot) WithOrders(orders []Order) Snapshot {
	s.Orders = orders
	return s
}

// WithCriteria returns a copy of s holding criteria.
func (s Snapshot) WithCriteria(criteria FilterCriteria) Snapshot {
	s.Criteria = criteria
	return s
}

// CartLines returns the lines of the current cart, or nil.
func (s Snapshot) CartLines() []CartLine {
	if s.Cart == nil {
		return nil
	}
	return s.Cart.Items
}

// View computes the visible item list and cart figures.
func (s Snapshot) View() View {
	return View{
		Visible:   FilterAndSort(s.Items, s.Criteria),
		Total:     len(s.Items),
		CartCount: CartCount(s.Cart),
		CartTotal: CartTotal(s.Cart),
	}
}
