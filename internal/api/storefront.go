package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/wexinc/artisan/internal/catalog"
	apperrors "github.com/wexinc/artisan/internal/errors"
)

// CheckoutResult is the server's answer to a successful checkout.
type CheckoutResult struct {
	OrderID uint            `json:"order_id"`
	Total   decimal.Decimal `json:"total"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type itemsResponse struct {
	Items []catalog.Item `json:"items"`
}

type cartResponse struct {
	Cart catalog.Cart `json:"cart"`
}

type addToCartRequest struct {
	ItemID   uint `json:"item_id"`
	Quantity int  `json:"quantity"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type ordersResponse struct {
	Orders []catalog.Order `json:"orders"`
}

// Login exchanges credentials for a token. On success the token is also
// installed on the client.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", apperrors.Validation("username and password are required")
	}

	var out loginResponse
	err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/login",
		body:   loginRequest{Username: username, Password: password},
		result: &out,
		login:  true,
	})
	if err != nil {
		return "", err
	}
	if out.Token == "" {
		return "", apperrors.ServerError(http.StatusOK, "login response did not contain a token")
	}

	c.SetToken(out.Token)
	c.log.Info("logged in", "username", username)
	return out.Token, nil
}

// ListItems returns the full catalog.
func (c *Client) ListItems(ctx context.Context) ([]catalog.Item, error) {
	var out itemsResponse
	if err := c.do(ctx, call{method: http.MethodGet, path: "/items", resource: "items", result: &out}); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// GetCart returns the active cart. A user who never added anything has no
// cart and gets a NotFound error.
func (c *Client) GetCart(ctx context.Context) (*catalog.Cart, error) {
	var out cartResponse
	if err := c.do(ctx, call{method: http.MethodGet, path: "/cart", resource: "cart", result: &out}); err != nil {
		return nil, err
	}
	return &out.Cart, nil
}

// LoadCart is GetCart for display: a missing cart is the empty-cart state
// and yields nil without error. Every other failure is returned unchanged.
func (c *Client) LoadCart(ctx context.Context) (*catalog.Cart, error) {
	cart, err := c.GetCart(ctx)
	if apperrors.Is(err, apperrors.ErrNotFound) && apperrors.Resource(err) == "cart" {
		return nil, nil
	}
	return cart, err
}

// AddToCart adds qty units of an item and returns the updated cart.
func (c *Client) AddToCart(ctx context.Context, itemID uint, qty int) (*catalog.Cart, error) {
	if err := catalog.ValidateQuantity(qty); err != nil {
		return nil, err
	}

	var out cartResponse
	err := c.do(ctx, call{
		method:   http.MethodPost,
		path:     "/cart/add",
		resource: "item",
		id:       strconv.FormatUint(uint64(itemID), 10),
		body:     addToCartRequest{ItemID: itemID, Quantity: qty},
		result:   &out,
	})
	if err != nil {
		return nil, err
	}
	return &out.Cart, nil
}

// RemoveFromCart removes the line for itemID and returns the server's message.
func (c *Client) RemoveFromCart(ctx context.Context, itemID uint) (string, error) {
	id := strconv.FormatUint(uint64(itemID), 10)
	var out messageResponse
	err := c.do(ctx, call{
		method:   http.MethodDelete,
		path:     "/cart/remove/" + id,
		resource: "cart item",
		id:       id,
		result:   &out,
	})
	if err != nil {
		return "", err
	}
	return out.Message, nil
}

// Checkout turns the active cart into an order.
func (c *Client) Checkout(ctx context.Context) (CheckoutResult, error) {
	var out CheckoutResult
	err := c.do(ctx, call{method: http.MethodPost, path: "/orders", resource: "cart", result: &out})
	if err != nil {
		return CheckoutResult{}, err
	}
	c.log.Info("order created", "order_id", out.OrderID, "total", out.Total.StringFixed(2))
	return out, nil
}

// ListOrders returns the order history of the current user.
func (c *Client) ListOrders(ctx context.Context) ([]catalog.Order, error) {
	var out ordersResponse
	if err := c.do(ctx, call{method: http.MethodGet, path: "/orders", resource: "orders", result: &out}); err != nil {
		return nil, err
	}
	return out.Orders, nil
}
