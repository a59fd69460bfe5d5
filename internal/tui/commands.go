package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wexinc/artisan/internal/fetch"
	"github.com/wexinc/artisan/internal/logging"
	"github.com/wexinc/artisan/internal/tui/components"
)

// Every command below captures what it needs while Update runs and touches
// no model state from the goroutine bubbletea runs it on.

func (m *Model) requestContext() context.Context {
	return logging.WithPage(m.ctx, m.page.String())
}

func (m *Model) startRequest(label string) tea.Cmd {
	m.inflight++
	m.statusBar.SetLoading(true)
	return m.spinner.Start(label)
}

func (m *Model) finishRequest() {
	m.inflight = max(m.inflight-1, 0)
	if m.inflight == 0 {
		m.spinner.Stop()
		m.statusBar.SetLoading(false)
	}
}

func (m *Model) loadItems() tea.Cmd {
	t := m.seq.Next(fetch.KindItems)
	svc, ctx := m.svc, m.requestContext()
	return tea.Batch(m.startRequest("Loading products"), func() tea.Msg {
		items, err := svc.ListItems(ctx)
		return ItemsLoadedMsg{Ticket: t, Items: items, Err: err}
	})
}

func (m *Model) loadCart() tea.Cmd {
	t := m.seq.Next(fetch.KindCart)
	svc, ctx := m.svc, m.requestContext()
	return tea.Batch(m.startRequest("Loading cart"), func() tea.Msg {
		cart, err := svc.LoadCart(ctx)
		return CartLoadedMsg{Ticket: t, Cart: cart, Err: err}
	})
}

func (m *Model) loadOrders() tea.Cmd {
	t := m.seq.Next(fetch.KindOrders)
	svc, ctx := m.svc, m.requestContext()
	return tea.Batch(m.startRequest("Loading orders"), func() tea.Msg {
		orders, err := svc.ListOrders(ctx)
		return OrdersLoadedMsg{Ticket: t, Orders: orders, Err: err}
	})
}

// addToCart adds one unit. The updated cart in the response competes with
// cart fetches under the same ticket kind.
func (m *Model) addToCart(itemID uint, name string) tea.Cmd {
	t := m.seq.Next(fetch.KindCart)
	svc, ctx := m.svc, m.requestContext()
	m.log.Debug("adding to cart", "item_id", itemID)
	return tea.Batch(m.startRequest("Adding "+name), func() tea.Msg {
		cart, err := svc.AddToCart(ctx, itemID, 1)
		return CartLoadedMsg{Ticket: t, Cart: cart, Err: err, Added: name}
	})
}

func (m *Model) removeLine(itemID uint) tea.Cmd {
	svc, ctx := m.svc, m.requestContext()
	m.log.Debug("removing from cart", "item_id", itemID)
	return tea.Batch(m.startRequest("Removing item"), func() tea.Msg {
		message, err := svc.RemoveFromCart(ctx, itemID)
		return RemovedMsg{Message: message, Err: err}
	})
}

func (m *Model) checkout() tea.Cmd {
	svc, ctx := m.svc, m.requestContext()
	return tea.Batch(m.startRequest("Placing order"), func() tea.Msg {
		res, err := svc.Checkout(ctx)
		return CheckoutDoneMsg{Result: res, Err: err}
	})
}

// submitLogin validates the form locally and starts the login request.
func (m *Model) submitLogin(values map[string]string) tea.Cmd {
	if m.loggingIn {
		return nil
	}
	username := strings.TrimSpace(values[fieldUsername])
	password := values[fieldPassword]
	if username == "" || password == "" {
		return m.toast.Show(components.ToastError, "Username and password are required")
	}

	m.loggingIn = true
	m.loginButton.SetDisabled(true)
	svc, ctx := m.svc, m.requestContext()
	return tea.Batch(m.startRequest("Signing in"), func() tea.Msg {
		token, err := svc.Login(ctx, username, password)
		return LoginResultMsg{Username: username, Token: token, Err: err}
	})
}
