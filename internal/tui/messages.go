package tui

import (
	"github.com/wexinc/artisan/internal/api"
	"github.com/wexinc/artisan/internal/catalog"
	"github.com/wexinc/artisan/internal/fetch"
)

// ItemsLoadedMsg carries the result of a catalog fetch.
type ItemsLoadedMsg struct {
	Ticket fetch.Ticket
	Items  []catalog.Item
	Err    error
}

// CartLoadedMsg carries the result of a cart fetch or cart mutation. A nil
// Cart with no error means the user has no cart yet.
type CartLoadedMsg struct {
	Ticket fetch.Ticket
	Cart   *catalog.Cart
	Err    error
	// Added names the item when the message answers an add-to-cart.
	Added string
}

// OrdersLoadedMsg carries the result of an order history fetch.
type OrdersLoadedMsg struct {
	Ticket fetch.Ticket
	Orders []catalog.Order
	Err    error
}

// LoginResultMsg is sent when a login attempt finishes.
type LoginResultMsg struct {
	Username string
	Token    string
	Err      error
}

// RemovedMsg is sent when a cart line removal finishes.
type RemovedMsg struct {
	Message string
	Err     error
}

// CheckoutDoneMsg is sent when checkout finishes.
type CheckoutDoneMsg struct {
	Result api.CheckoutResult
	Err    error
}

// ErrorMsg reports an error that is not tied to a request.
type ErrorMsg struct {
	Err error
}
