package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/wexinc/artisan/internal/errors"
	"github.com/wexinc/artisan/internal/logging"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, configure ...func(*Options)) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	opts := Options{
		BaseURL:    srv.URL + "/api",
		Timeout:    2 * time.Second,
		RetryCount: 0,
		RetryWait:  time.Millisecond,
		Breaker: BreakerOptions{
			MaxRequests:         1,
			Timeout:             time.Minute,
			ConsecutiveFailures: 100,
		},
		Logger: logging.NewNoop(),
	}
	for _, fn := range configure {
		fn(&opts)
	}
	return New(opts)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestLogin_SetsTokenAndHeaders(t *testing.T) {
	var authHeader, requestID string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/login":
			var body loginRequest
			_ = json.NewDecoder(r.Body).Decode(&body)
			if body.Username != "admin" || body.Password != "artisan123" {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid credentials"})
				return
			}
			writeJSON(w, http.StatusOK, map[string]string{"token": "tok-1"})
		case "/api/items":
			authHeader = r.Header.Get("Authorization")
			requestID = r.Header.Get(HeaderRequestID)
			writeJSON(w, http.StatusOK, map[string]any{"items": []any{}})
		}
	})

	token, err := client.Login(context.Background(), "admin", "artisan123")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if token != "tok-1" || client.Token() != "tok-1" {
		t.Errorf("token = %q, client token = %q", token, client.Token())
	}

	if _, err := client.ListItems(context.Background()); err != nil {
		t.Fatalf("ListItems() error = %v", err)
	}
	if authHeader != "Bearer tok-1" {
		t.Errorf("Authorization = %q", authHeader)
	}
	if _, err := uuid.Parse(requestID); err != nil {
		t.Errorf("X-Request-ID %q is not a UUID", requestID)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid credentials"})
	})

	_, err := client.Login(context.Background(), "admin", "wrong")
	if !apperrors.Is(err, apperrors.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if apperrors.Message(err) != "Invalid credentials" {
		t.Errorf("message = %q", apperrors.Message(err))
	}
	if client.Token() != "" {
		t.Error("failed login must not set a token")
	}
}

func TestLogin_RequiresCredentials(t *testing.T) {
	var hits atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) { hits.Add(1) })

	_, err := client.Login(context.Background(), "", "x")
	if !apperrors.Is(err, apperrors.ErrValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
	if hits.Load() != 0 {
		t.Error("no request should be sent")
	}
}

func TestUnauthorizedMapping(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid token"})
	})

	_, err := client.ListOrders(context.Background())
	if !apperrors.Is(err, apperrors.ErrUnauthorized) || apperrors.Message(err) != "not logged in" {
		t.Errorf("without token: %v", err)
	}

	client.SetToken("stale")
	_, err = client.ListOrders(context.Background())
	if !apperrors.Is(err, apperrors.ErrUnauthorized) || apperrors.Message(err) != "session expired" {
		t.Errorf("with token: %v", err)
	}

	client.ClearToken()
	if client.Token() != "" {
		t.Error("ClearToken should forget the token")
	}
}

func TestListItems_DecodesCatalog(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[
			{"id":1,"name":"Vintage Leather Backpack","category":"Fashion & Accessories","price":189.99,"rating":4.8,"reviews":124,"in_stock":true},
			{"id":2,"name":"Organic Herbal Tea Collection","category":"Food & Beverages","price":24.99,"rating":4.9,"reviews":89,"in_stock":false}
		]}`))
	})

	items, err := client.ListItems(context.Background())
	if err != nil {
		t.Fatalf("ListItems() error = %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("len = %d", len(items))
	}
	if items[0].Price.StringFixed(2) != "189.99" || !items[0].InStock || items[1].InStock {
		t.Errorf("unexpected items %+v", items)
	}
	if items[1].Category != "Food & Beverages" || items[0].Reviews != 124 {
		t.Errorf("unexpected items %+v", items)
	}
}

func TestGetCart_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Cart not found"})
	})

	_, err := client.GetCart(context.Background())
	if !apperrors.Is(err, apperrors.ErrNotFound) || apperrors.Resource(err) != "cart" {
		t.Errorf("expected cart not found, got %v", err)
	}

	cart, err := client.LoadCart(context.Background())
	if err != nil || cart != nil {
		t.Errorf("LoadCart() = %v, %v; want nil, nil", cart, err)
	}
}

func TestLoadCart_SurfacesOtherFailures(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "database unavailable"})
	})

	cart, err := client.LoadCart(context.Background())
	if err == nil || cart != nil {
		t.Fatalf("LoadCart() = %v, %v; want error", cart, err)
	}
	if !apperrors.Is(err, apperrors.ErrTransport) {
		t.Errorf("expected transport error, got %v", err)
	}
}

func TestLoadCart_ReturnsCart(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"cart":{"id":3,"user_id":1,"items":[{"id":9,"item_id":2,"quantity":2,"price":24.99}]}}`))
	})

	cart, err := client.LoadCart(context.Background())
	if err != nil || cart == nil {
		t.Fatalf("LoadCart() = %v, %v", cart, err)
	}
	if cart.ID != 3 || len(cart.Items) != 1 || cart.Items[0].Quantity != 2 {
		t.Errorf("unexpected cart %+v", cart)
	}
}

func TestAddToCart(t *testing.T) {
	var got addToCartRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/cart/add" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"cart":{"id":1,"items":[{"item_id":4,"quantity":2,"price":79.99}]}}`))
	})

	cart, err := client.AddToCart(context.Background(), 4, 2)
	if err != nil {
		t.Fatalf("AddToCart() error = %v", err)
	}
	if got.ItemID != 4 || got.Quantity != 2 {
		t.Errorf("request body = %+v", got)
	}
	if len(cart.Items) != 1 || cart.Items[0].Price.StringFixed(2) != "79.99" {
		t.Errorf("unexpected cart %+v", cart)
	}
}

func TestAddToCart_RejectsQuantityLocally(t *testing.T) {
	var hits atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) { hits.Add(1) })

	for _, qty := range []int{0, -3} {
		_, err := client.AddToCart(context.Background(), 1, qty)
		if !apperrors.Is(err, apperrors.ErrValidation) {
			t.Errorf("qty %d: expected validation error, got %v", qty, err)
		}
	}
	if hits.Load() != 0 {
		t.Errorf("server received %d requests, want 0", hits.Load())
	}
}

func TestAddToCart_UnknownItem(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Item not found"})
	})

	_, err := client.AddToCart(context.Background(), 99, 1)
	if !apperrors.Is(err, apperrors.ErrNotFound) || apperrors.Resource(err) != "item" {
		t.Errorf("expected item not found, got %v", err)
	}
}

func TestRemoveFromCart(t *testing.T) {
	var path, method string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		path, method = r.URL.Path, r.Method
		writeJSON(w, http.StatusOK, map[string]string{"message": "Item removed from cart"})
	})

	msg, err := client.RemoveFromCart(context.Background(), 7)
	if err != nil {
		t.Fatalf("RemoveFromCart() error = %v", err)
	}
	if method != http.MethodDelete || path != "/api/cart/remove/7" {
		t.Errorf("request = %s %s", method, path)
	}
	if msg != "Item removed from cart" {
		t.Errorf("message = %q", msg)
	}
}

func TestCheckout(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"order_id":12,"total":104.97}`))
	})

	res, err := client.Checkout(context.Background())
	if err != nil {
		t.Fatalf("Checkout() error = %v", err)
	}
	if res.OrderID != 12 || res.Total.StringFixed(2) != "104.97" {
		t.Errorf("result = %+v", res)
	}
}

func TestCheckout_EmptyCart(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Cart is empty"})
	})

	_, err := client.Checkout(context.Background())
	if !apperrors.Is(err, apperrors.ErrValidation) || apperrors.Message(err) != "Cart is empty" {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestListOrders(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"orders":[{"id":5,"status":"pending","total":45,"created_at":"2024-03-01T10:00:00Z",
			"cart":{"id":2,"items":[{"item_id":1,"quantity":3,"price":15}]}}]}`))
	})

	orders, err := client.ListOrders(context.Background())
	if err != nil {
		t.Fatalf("ListOrders() error = %v", err)
	}
	if len(orders) != 1 || orders[0].ID != 5 || orders[0].Status != "pending" {
		t.Fatalf("unexpected orders %+v", orders)
	}
	if orders[0].CreatedAt.Year() != 2024 || len(orders[0].Cart.Items) != 1 {
		t.Errorf("unexpected order %+v", orders[0])
	}
}

func TestRetry_OnlyIdempotentRequests(t *testing.T) {
	var gets, posts atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			gets.Add(1)
		} else {
			posts.Add(1)
		}
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "overloaded"})
	}, func(o *Options) { o.RetryCount = 2 })

	if _, err := client.ListItems(context.Background()); !apperrors.Is(err, apperrors.ErrTransport) {
		t.Errorf("ListItems: expected transport error, got %v", err)
	}
	if gets.Load() != 3 {
		t.Errorf("GET attempts = %d, want 3", gets.Load())
	}

	if _, err := client.Checkout(context.Background()); err == nil {
		t.Error("Checkout: expected error")
	}
	if posts.Load() != 1 {
		t.Errorf("POST attempts = %d, want 1", posts.Load())
	}
}

func TestRetry_RecoversFromTransientFailure(t *testing.T) {
	var hits atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			writeJSON(w, http.StatusBadGateway, map[string]string{"error": "bad gateway"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"orders": []any{}})
	}, func(o *Options) { o.RetryCount = 1 })

	if _, err := client.ListOrders(context.Background()); err != nil {
		t.Errorf("ListOrders() error = %v", err)
	}
}

func TestBreaker_OpensOnServerFailures(t *testing.T) {
	var hits atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "boom"})
	}, func(o *Options) { o.Breaker.ConsecutiveFailures = 2 })

	for i := 0; i < 2; i++ {
		_, _ = client.ListItems(context.Background())
	}
	if client.BreakerState() != "open" {
		t.Fatalf("breaker state = %s, want open", client.BreakerState())
	}

	_, err := client.ListItems(context.Background())
	if !apperrors.Is(err, apperrors.ErrTransport) || !strings.Contains(err.Error(), "paused") {
		t.Errorf("expected circuit open error, got %v", err)
	}
	if hits.Load() != 2 {
		t.Errorf("server hits = %d, want 2", hits.Load())
	}
}

func TestBreaker_IgnoresClientErrors(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Cart not found"})
	}, func(o *Options) { o.Breaker.ConsecutiveFailures = 2 })

	for i := 0; i < 5; i++ {
		_, _ = client.LoadCart(context.Background())
	}
	if client.BreakerState() != "closed" {
		t.Errorf("breaker state = %s, want closed", client.BreakerState())
	}
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	client := New(Options{BaseURL: base, RetryWait: time.Millisecond, Logger: logging.NewNoop()})
	_, err := client.ListItems(context.Background())
	if !apperrors.Is(err, apperrors.ErrTransport) {
		t.Errorf("expected transport error, got %v", err)
	}
	if !apperrors.IsRetryable(err) {
		t.Error("transport failure should be retryable")
	}
}

func TestCancelledContext(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"items": []any{}})
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.ListItems(ctx)
	if !apperrors.Is(err, apperrors.ErrTimeout) || !apperrors.Is(err, context.Canceled) {
		t.Errorf("expected cancellation error, got %v", err)
	}
	if client.BreakerState() != "closed" {
		t.Error("cancellation must not count against the breaker")
	}
}

func TestNew_Defaults(t *testing.T) {
	client := New(Options{Logger: logging.NewNoop()})
	if client.host != "localhost:8080" {
		t.Errorf("host = %q", client.host)
	}
	if client.cooldown != DefaultOptions().Breaker.Timeout {
		t.Errorf("cooldown = %v", client.cooldown)
	}
}
