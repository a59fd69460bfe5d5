package tui

import (
	"context"

	"github.com/wexinc/artisan/internal/api"
	"github.com/wexinc/artisan/internal/catalog"
	"github.com/wexinc/artisan/internal/session"
)

// Service is the storefront API as used by the TUI. *api.Client implements it.
type Service interface {
	Login(ctx context.Context, username, password string) (string, error)
	ListItems(ctx context.Context) ([]catalog.Item, error)
	LoadCart(ctx context.Context) (*catalog.Cart, error)
	AddToCart(ctx context.Context, itemID uint, qty int) (*catalog.Cart, error)
	RemoveFromCart(ctx context.Context, itemID uint) (string, error)
	Checkout(ctx context.Context) (api.CheckoutResult, error)
	ListOrders(ctx context.Context) ([]catalog.Order, error)
	SetToken(token string)
	ClearToken()
}

// SessionStore persists the login across runs. *session.Store implements it.
type SessionStore interface {
	Save(sess *session.Session) error
	Clear() error
}

var (
	_ Service      = (*api.Client)(nil)
	_ SessionStore = (*session.Store)(nil)
)
