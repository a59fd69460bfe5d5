// Package tui provides the interactive terminal storefront for artisan.
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wexinc/artisan/internal/catalog"
	apperrors "github.com/wexinc/artisan/internal/errors"
	"github.com/wexinc/artisan/internal/fetch"
	"github.com/wexinc/artisan/internal/logging"
	"github.com/wexinc/artisan/internal/render"
	"github.com/wexinc/artisan/internal/session"
	"github.com/wexinc/artisan/internal/tui/components"
	"github.com/wexinc/artisan/internal/tui/styles"
)

// Page is one screen of the storefront.
type Page int

const (
	PageLogin Page = iota
	PageProducts
	PageCart
	PageOrders
)

// String returns the page name used in logs.
func (p Page) String() string {
	switch p {
	case PageProducts:
		return "products"
	case PageCart:
		return "cart"
	case PageOrders:
		return "orders"
	default:
		return "login"
	}
}

var pageTabs = []components.Tab{
	{Key: "1", Title: "Products"},
	{Key: "2", Title: "Cart"},
	{Key: "3", Title: "Orders"},
}

// Form field IDs of the login form.
const (
	fieldUsername = "username"
	fieldPassword = "password"
)

// retryHint is appended to toasts for failures that may go away on refresh.
const retryHint = " (press r to retry)"

// Options configures a Model.
type Options struct {
	Service  Service
	Sessions SessionStore
	// Session is the stored login. When valid the TUI starts on the
	// products page instead of the login form.
	Session       *session.Session
	Criteria      catalog.FilterCriteria
	ToastDuration time.Duration
	Logger        *logging.Logger
}

// Model is the main TUI model.
type Model struct {
	svc      Service
	sessions SessionStore
	log      *logging.Logger
	seq      *fetch.Sequencer

	ctx    context.Context
	cancel context.CancelFunc

	// Components
	header      *components.Header
	statusBar   *components.StatusBar
	loginForm   *components.Form
	loginButton *components.Button
	search      *components.TextInput
	itemList    *components.ItemList
	cartView    *components.CartView
	orderList   *components.OrderList
	helpOverlay *components.HelpOverlay
	confirmDlg  *components.ConfirmDialog
	toast       *components.Toast
	spinner     *components.Spinner

	// State
	page      Page
	snapshot  catalog.Snapshot
	username  string
	searching bool
	loggingIn bool
	inflight  int
	quitting  bool

	// Dimensions
	width  int
	height int
}

// New creates a new TUI model.
func New(opts Options) *Model {
	log := opts.Logger
	if log == nil {
		log = logging.Global()
	}
	criteria := opts.Criteria
	if criteria.Sort == "" {
		criteria = catalog.DefaultCriteria()
	}

	ctx, cancel := context.WithCancel(context.Background())
	m := &Model{
		svc:         opts.Service,
		sessions:    opts.Sessions,
		log:         log.With("component", "tui"),
		seq:         fetch.NewSequencer(),
		ctx:         ctx,
		cancel:      cancel,
		header:      components.NewHeader(),
		statusBar:   components.NewStatusBar(),
		search:      components.NewTextInput("search", "Search"),
		itemList:    components.NewItemList(),
		cartView:    components.NewCartView(),
		orderList:   components.NewOrderList(),
		helpOverlay: components.NewHelpOverlay(),
		confirmDlg:  components.NewConfirmDialog(),
		toast:       components.NewToast(opts.ToastDuration),
		spinner:     components.NewSpinner(),
		page:        PageLogin,
		snapshot:    catalog.NewSnapshot(criteria),
	}
	m.header.SetTabs(pageTabs)
	m.search.SetPlaceholder("name or description")

	username := components.NewTextInput(fieldUsername, "Username")
	password := components.NewPasswordInput(fieldPassword, "Password")
	m.loginButton = components.NewButton("submit", "Log in")
	m.loginForm = components.NewForm("login", "Sign in to ArtisanCraft")
	m.loginForm.AddFields(username, password, m.loginButton)

	if opts.Session.Valid() {
		m.username = opts.Session.Username
		m.svc.SetToken(opts.Session.Token)
		m.page = PageProducts
	}
	m.refresh()
	return m
}

// Init starts the first fetches, or focuses the login form.
func (m *Model) Init() tea.Cmd {
	if m.page == PageLogin {
		return m.loginForm.Focus()
	}
	return tea.Batch(m.loadItems(), m.loadCart())
}

// Page returns the current page.
func (m *Model) Page() Page {
	return m.page
}

// Snapshot returns the state the current view is computed from.
func (m *Model) Snapshot() catalog.Snapshot {
	return m.snapshot
}

// Update handles incoming messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case spinner.TickMsg:
		return m, m.spinner.Update(msg)

	case components.ToastExpiredMsg:
		m.toast.Expire(msg.ID)
		return m, nil

	case components.FormSubmittedMsg:
		return m, m.submitLogin(msg.Values)

	case components.FormCanceledMsg:
		return m.quit()

	case components.ConfirmYesMsg:
		return m.handleConfirmYes(msg)

	case components.ConfirmNoMsg, components.HelpClosedMsg:
		return m, nil

	case LoginResultMsg:
		return m.handleLoginResult(msg)

	case ItemsLoadedMsg:
		m.finishRequest()
		if !m.accept(msg.Ticket) {
			return m, nil
		}
		if msg.Err != nil {
			return m, m.handleError(msg.Err, "load products")
		}
		m.snapshot = m.snapshot.WithItems(msg.Items)
		m.refresh()
		return m, nil

	case CartLoadedMsg:
		return m.handleCartLoaded(msg)

	case OrdersLoadedMsg:
		m.finishRequest()
		if !m.accept(msg.Ticket) {
			return m, nil
		}
		if msg.Err != nil {
			return m, m.handleError(msg.Err, "load orders")
		}
		m.snapshot = m.snapshot.WithOrders(msg.Orders)
		m.refresh()
		return m, nil

	case RemovedMsg:
		m.finishRequest()
		if msg.Err != nil {
			return m, m.handleError(msg.Err, "remove from cart")
		}
		text := msg.Message
		if text == "" {
			text = "Removed from cart"
		}
		return m, tea.Batch(m.toast.Show(components.ToastSuccess, text), m.loadCart())

	case CheckoutDoneMsg:
		return m.handleCheckoutDone(msg)

	case ErrorMsg:
		return m, m.handleError(msg.Err, "")
	}

	// Cursor blink and other input housekeeping.
	if m.page == PageLogin {
		_, cmd := m.loginForm.Update(msg)
		return m, cmd
	}
	if m.searching {
		_, cmd := m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

// accept reports whether t is still the latest ticket of its kind.
func (m *Model) accept(t fetch.Ticket) bool {
	if m.seq.Accept(t) {
		return true
	}
	m.log.Debug("discarding stale response", "kind", string(t.Kind), "seq", t.Seq)
	return false
}

func (m *Model) handleCartLoaded(msg CartLoadedMsg) (tea.Model, tea.Cmd) {
	m.finishRequest()
	if !m.accept(msg.Ticket) {
		// An add is the user's own action and nothing newer answers it.
		// A newer cart fetch may have been answered before it landed, so
		// fetch once more. After a sign-out the result is simply dropped.
		if msg.Added == "" || m.page == PageLogin {
			return m, nil
		}
		if msg.Err != nil {
			cmd := m.handleError(msg.Err, "add to cart")
			if m.page == PageLogin {
				return m, cmd
			}
			return m, tea.Batch(cmd, m.loadCart())
		}
		return m, tea.Batch(m.toast.Show(components.ToastSuccess, "Added "+msg.Added+" to cart"), m.loadCart())
	}
	if msg.Err != nil {
		operation := "load cart"
		if msg.Added != "" {
			operation = "add to cart"
		}
		return m, m.handleError(msg.Err, operation)
	}
	m.snapshot = m.snapshot.WithCart(msg.Cart)
	m.refresh()
	if msg.Added != "" {
		return m, m.toast.Show(components.ToastSuccess, "Added "+msg.Added+" to cart")
	}
	return m, nil
}

func (m *Model) handleCheckoutDone(msg CheckoutDoneMsg) (tea.Model, tea.Cmd) {
	m.finishRequest()
	if msg.Err != nil {
		return m, m.handleError(msg.Err, "checkout")
	}
	m.log.Info("order placed", "order_id", msg.Result.OrderID, "total", msg.Result.Total.String())

	// The server empties the cart on checkout. Issuing a ticket drops any
	// cart response still in flight.
	m.seq.Next(fetch.KindCart)
	m.snapshot = m.snapshot.WithCart(nil)
	m.page = PageOrders
	m.refresh()
	return m, tea.Batch(
		m.toast.Show(components.ToastSuccess, render.CheckoutMessage(msg.Result)),
		m.loadOrders(),
	)
}

func (m *Model) handleLoginResult(msg LoginResultMsg) (tea.Model, tea.Cmd) {
	m.finishRequest()
	m.loggingIn = false
	m.loginButton.SetDisabled(false)
	if msg.Err != nil {
		m.log.Warn("login failed", "username", msg.Username, "error", msg.Err)
		return m, m.toast.Show(components.ToastError, apperrors.Message(msg.Err))
	}

	m.username = msg.Username
	if m.sessions != nil {
		sess := &session.Session{Token: msg.Token, Username: msg.Username, LoggedIn: time.Now()}
		if err := m.sessions.Save(sess); err != nil {
			m.log.Warn("could not save session", "error", err)
		}
	}
	m.log.Info("logged in", "username", msg.Username)

	m.loginForm.Blur()
	m.page = PageProducts
	m.refresh()
	return m, tea.Batch(
		m.toast.Show(components.ToastSuccess, "Welcome, "+msg.Username),
		m.loadItems(),
		m.loadCart(),
	)
}

func (m *Model) handleConfirmYes(msg components.ConfirmYesMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case components.ConfirmActionRemove:
		return m, m.removeLine(msg.Subject)
	case components.ConfirmActionCheckout:
		return m, m.checkout()
	case components.ConfirmActionLogout:
		cmd := m.signOut()
		return m, tea.Batch(cmd, m.toast.Show(components.ToastInfo, "Logged out"))
	}
	return m, nil
}

// handleError shows err as a toast. A rejected session outside the login
// page signs the user out.
func (m *Model) handleError(err error, operation string) tea.Cmd {
	if err == nil {
		return nil
	}
	if apperrors.Is(err, context.Canceled) {
		return nil
	}
	if apperrors.Is(err, apperrors.ErrUnauthorized) && m.page != PageLogin {
		m.log.Warn("session rejected", "operation", operation, "error", err)
		cmd := m.signOut()
		return tea.Batch(cmd, m.toast.Show(components.ToastError, apperrors.Message(err)+", please log in again"))
	}
	text := apperrors.Message(err)
	if apperrors.IsUserError(err) {
		m.log.Warn("request rejected", "operation", operation, "error", err)
	} else {
		m.log.Error("request failed", "operation", operation, "error", err)
	}
	if apperrors.IsRetryable(err) {
		text += retryHint
	}
	return m.toast.Show(components.ToastError, text)
}

// signOut forgets the token and every fetched resource and returns to the
// login form. Responses still in flight are discarded.
func (m *Model) signOut() tea.Cmd {
	m.svc.ClearToken()
	if m.sessions != nil {
		if err := m.sessions.Clear(); err != nil {
			m.log.Warn("could not clear session", "error", err)
		}
	}
	m.seq.Invalidate()
	m.snapshot = catalog.NewSnapshot(m.snapshot.Criteria)
	m.username = ""
	m.searching = false
	m.page = PageLogin
	m.confirmDlg.Hide()
	m.refresh()
	return m.loginForm.Reset()
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.cancel()
	return m, tea.Quit
}

// handleKeyPress handles keyboard input.
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	// Overlays take all input while visible.
	if m.confirmDlg.IsVisible() {
		return m, m.confirmDlg.Update(msg)
	}
	if m.helpOverlay.IsVisible() {
		return m, m.helpOverlay.Update(msg)
	}

	if m.page == PageLogin {
		_, cmd := m.loginForm.Update(msg)
		return m, cmd
	}
	if m.searching {
		return m.handleSearchKey(msg)
	}

	switch msg.String() {
	case "q":
		return m.quit()
	case "?":
		m.helpOverlay.Toggle()
		return m, nil
	case "1":
		return m, m.switchPage(PageProducts)
	case "2":
		return m, m.switchPage(PageCart)
	case "3":
		return m, m.switchPage(PageOrders)
	case "L":
		m.confirmDlg.ShowLogout()
		return m, nil
	}

	switch m.page {
	case PageProducts:
		return m.handleProductsKey(msg)
	case PageCart:
		return m.handleCartKey(msg)
	case PageOrders:
		if msg.String() == "r" {
			return m, m.loadOrders()
		}
		return m, m.orderList.Update(msg)
	}
	return m, nil
}

func (m *Model) handleProductsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	criteria := m.snapshot.Criteria
	switch msg.String() {
	case "/":
		m.searching = true
		m.search.SetValue(criteria.Search)
		m.refresh()
		return m, m.search.Focus()
	case "c":
		criteria.Category = catalog.NextCategory(criteria.Category)
	case "s":
		criteria.Sort = catalog.NextSortKey(criteria.Sort)
	case "v":
		if criteria.View == catalog.ViewList {
			criteria.View = catalog.ViewGrid
		} else {
			criteria.View = catalog.ViewList
		}
	case "enter", "a":
		item := m.itemList.SelectedItem()
		if item == nil {
			return m, nil
		}
		return m, m.addToCart(item.ID, item.Name)
	case "r":
		return m, m.loadItems()
	default:
		return m, m.itemList.Update(msg)
	}
	m.setCriteria(criteria)
	return m, nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.search.Blur()
		m.refresh()
		return m, nil
	case "esc":
		m.searching = false
		m.search.Reset()
		m.search.Blur()
		criteria := m.snapshot.Criteria
		criteria.Search = ""
		m.setCriteria(criteria)
		return m, nil
	}

	_, cmd := m.search.Update(msg)
	criteria := m.snapshot.Criteria
	criteria.Search = m.search.Value()
	m.setCriteria(criteria)
	return m, cmd
}

func (m *Model) handleCartKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "+", "=":
		if line := m.cartView.SelectedLine(); line != nil {
			return m, m.addToCart(line.ItemID, line.Item.Name)
		}
		return m, nil
	case "d", "x", "delete":
		if line := m.cartView.SelectedLine(); line != nil {
			m.confirmDlg.ShowRemove(line.ItemID, line.Item.Name)
		}
		return m, nil
	case "o":
		if m.cartView.Empty() {
			return m, m.toast.Show(components.ToastError, apperrors.EmptyCart().Message)
		}
		view := m.snapshot.View()
		m.confirmDlg.ShowCheckout(view.CartCount, render.Money(view.CartTotal))
		return m, nil
	case "r":
		return m, m.loadCart()
	}
	return m, m.cartView.Update(msg)
}

// switchPage shows p and refreshes the data it displays.
func (m *Model) switchPage(p Page) tea.Cmd {
	if m.page == p {
		return nil
	}
	m.page = p
	m.refresh()
	switch p {
	case PageProducts:
		if len(m.snapshot.Items) == 0 {
			return m.loadItems()
		}
	case PageCart:
		return m.loadCart()
	case PageOrders:
		return m.loadOrders()
	}
	return nil
}

func (m *Model) setCriteria(criteria catalog.FilterCriteria) {
	m.snapshot = m.snapshot.WithCriteria(criteria)
	m.refresh()
}

// refresh pushes the snapshot's derived view into the components.
func (m *Model) refresh() {
	view := m.snapshot.View()

	m.itemList.SetMode(m.snapshot.Criteria.View)
	m.itemList.SetItems(view.Visible)
	m.cartView.SetCart(m.snapshot.Cart)
	m.orderList.SetOrders(m.snapshot.Orders)

	if m.page == PageLogin {
		m.header.SetActive(-1)
		m.header.SetCart(0, "")
	} else {
		m.header.SetActive(int(m.page) - 1)
		m.header.SetCart(view.CartCount, render.Money(view.CartTotal))
	}

	m.statusBar.SetUsername(m.username)
	m.statusBar.SetLoading(m.inflight > 0)
	switch {
	case m.page == PageLogin:
		m.statusBar.SetShortcuts(components.FormShortcuts)
	case m.searching:
		m.statusBar.SetShortcuts(components.SearchShortcuts)
	case m.page == PageProducts:
		m.statusBar.SetShortcuts(components.ProductShortcuts)
	case m.page == PageCart:
		m.statusBar.SetShortcuts(components.CartShortcuts)
	default:
		m.statusBar.SetShortcuts(components.OrderShortcuts)
	}
}

// chromeHeight is the number of lines outside the page body.
const chromeHeight = 9

func (m *Model) resize() {
	m.header.SetWidth(m.width)
	m.statusBar.SetWidth(m.width)
	m.loginForm.SetWidth(m.width)
	m.search.SetWidth(min(m.width/2, 50))
	m.itemList.SetSize(m.width, m.height-chromeHeight)
	m.cartView.SetWidth(m.width)
	m.orderList.SetWidth(m.width)
	m.helpOverlay.SetSize(min(m.width, 60), m.height)
	m.confirmDlg.SetSize(min(m.width, 50))
}

// View renders the TUI.
func (m *Model) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder
	b.WriteString(m.header.View())
	b.WriteString("\n")
	b.WriteString(m.divider())

	switch m.page {
	case PageLogin:
		b.WriteString(m.viewLogin())
	case PageProducts:
		b.WriteString(m.viewProducts())
	case PageCart:
		b.WriteString(styles.FormTitleStyle.Render("Your Cart"))
		b.WriteString("\n\n")
		b.WriteString(m.cartView.View())
	case PageOrders:
		b.WriteString(styles.FormTitleStyle.Render("Order History"))
		b.WriteString("\n\n")
		b.WriteString(m.orderList.View())
	}
	b.WriteString("\n\n")

	if m.spinner.Active() {
		b.WriteString(m.spinner.View())
		b.WriteString("\n")
	}
	if m.toast.Visible() {
		b.WriteString(m.toast.View())
		b.WriteString("\n")
	}
	b.WriteString(m.statusBar.View())

	view := b.String()
	if m.helpOverlay.IsVisible() {
		view = m.renderOverlay(view, m.helpOverlay.View())
	}
	if m.confirmDlg.IsVisible() {
		view = m.renderOverlay(view, m.confirmDlg.View())
	}
	return view
}

func (m *Model) viewLogin() string {
	view := m.loginForm.View()
	if m.loggingIn {
		view += "\n\n  " + styles.MutedTextStyle.Render("Signing in…")
	}
	return view
}

func (m *Model) viewProducts() string {
	criteria := m.snapshot.Criteria
	sep := styles.MutedTextStyle.Render(" │ ")

	search := m.search.View()
	if !m.searching {
		value := criteria.Search
		if value == "" {
			value = "(none)"
		}
		search = styles.HeaderLabelStyle.Render("Search: ") + styles.HeaderValueStyle.Render(value)
	}
	toolbar := search + sep +
		styles.HeaderLabelStyle.Render("Category: ") + styles.CategoryStyle.Render(criteria.Category.String()) + sep +
		styles.HeaderLabelStyle.Render("Sort: ") + styles.HeaderValueStyle.Render(criteria.Sort.Label()) + sep +
		styles.HeaderLabelStyle.Render("View: ") + styles.HeaderValueStyle.Render(string(criteria.View))

	view := m.snapshot.View()
	footer := styles.MutedTextStyle.Render(catalog.Summary(len(view.Visible), view.Total))
	return toolbar + "\n\n" + m.itemList.View() + "\n\n" + footer
}

func (m *Model) divider() string {
	if m.width <= 0 {
		return "\n"
	}
	return lipgloss.NewStyle().
		Foreground(styles.BorderColor).
		Render(strings.Repeat("─", m.width)) + "\n"
}

// renderOverlay centers overlay over the screen.
func (m *Model) renderOverlay(base, overlay string) string {
	if overlay == "" {
		return base
	}
	if m.width == 0 || m.height == 0 {
		return base + "\n" + overlay
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, overlay)
}

// Run starts the TUI and blocks until the user quits.
func Run(opts Options) error {
	m := New(opts)
	defer m.cancel()
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
