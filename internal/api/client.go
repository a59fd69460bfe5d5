// Package api is the HTTP client for the storefront REST API.
package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/sony/gobreaker"

	apperrors "github.com/wexinc/artisan/internal/errors"
	"github.com/wexinc/artisan/internal/logging"
)

// HeaderRequestID carries the per-call correlation ID.
const HeaderRequestID = "X-Request-ID"

// DefaultBaseURL is the storefront API root used when none is configured.
const DefaultBaseURL = "http://localhost:8080/api"

// BreakerOptions configures the circuit breaker around API calls.
type BreakerOptions struct {
	// MaxRequests is the number of trial calls allowed while half-open.
	MaxRequests uint32
	// Interval is the cyclic period after which closed-state counts reset. Zero never resets.
	Interval time.Duration
	// Timeout is how long the breaker stays open before trying again.
	Timeout time.Duration
	// ConsecutiveFailures trips the breaker.
	ConsecutiveFailures uint32
}

// Options configures a Client.
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	RetryCount int
	RetryWait  time.Duration
	Breaker    BreakerOptions
	Logger     *logging.Logger
}

// DefaultOptions returns options for a local storefront.
func DefaultOptions() Options {
	return Options{
		BaseURL:    DefaultBaseURL,
		Timeout:    10 * time.Second,
		RetryCount: 2,
		RetryWait:  500 * time.Millisecond,
		Breaker: BreakerOptions{
			MaxRequests:         1,
			Interval:            time.Minute,
			Timeout:             30 * time.Second,
			ConsecutiveFailures: 5,
		},
	}
}

// Client talks to the storefront API. It is safe for concurrent use.
type Client struct {
	http     *resty.Client
	breaker  *gobreaker.CircuitBreaker
	cooldown time.Duration
	host     string
	log      *logging.Logger

	mu    sync.RWMutex
	token string
}

// New creates a client. Zero-valued options fall back to DefaultOptions.
func New(opts Options) *Client {
	def := DefaultOptions()
	if opts.BaseURL == "" {
		opts.BaseURL = def.BaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = def.Timeout
	}
	if opts.RetryCount < 0 {
		opts.RetryCount = 0
	}
	if opts.Breaker.ConsecutiveFailures == 0 {
		opts.Breaker.ConsecutiveFailures = def.Breaker.ConsecutiveFailures
	}
	if opts.Breaker.Timeout <= 0 {
		opts.Breaker.Timeout = def.Breaker.Timeout
	}
	if opts.Logger == nil {
		opts.Logger = logging.Global()
	}

	c := &Client{
		cooldown: opts.Breaker.Timeout,
		log:      opts.Logger.With("component", "api"),
	}
	if u, err := url.Parse(opts.BaseURL); err == nil {
		c.host = u.Host
	}

	c.http = resty.New().
		SetBaseURL(opts.BaseURL).
		SetTimeout(opts.Timeout).
		SetHeader("Accept", "application/json").
		SetRetryCount(opts.RetryCount).
		SetRetryWaitTime(opts.RetryWait).
		SetRetryMaxWaitTime(4 * opts.RetryWait).
		AddRetryCondition(retryIdempotent).
		SetLogger(c.log.Printf())

	failures := opts.Breaker.ConsecutiveFailures
	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "storefront",
		MaxRequests: opts.Breaker.MaxRequests,
		Interval:    opts.Breaker.Interval,
		Timeout:     opts.Breaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		IsSuccessful: countsAsSuccess,
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.log.Warn("circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
		},
	})

	return c
}

// retryIdempotent retries GETs that failed in transport or with a 5xx.
// Mutating calls are never retried.
func retryIdempotent(resp *resty.Response, err error) bool {
	if resp == nil || resp.Request == nil || resp.Request.Method != http.MethodGet {
		return false
	}
	if err != nil {
		return !errors.Is(err, context.Canceled)
	}
	return resp.StatusCode() >= http.StatusInternalServerError
}

// countsAsSuccess keeps client-side outcomes such as 4xx responses and
// cancellations from tripping the breaker.
func countsAsSuccess(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return true
	}
	return !apperrors.Is(err, apperrors.ErrTransport) && !apperrors.Is(err, apperrors.ErrTimeout)
}

// SetToken sets the bearer token sent with every request. An empty token
// stops sending the Authorization header.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// ClearToken forgets the bearer token.
func (c *Client) ClearToken() {
	c.SetToken("")
}

// Token returns the current bearer token.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// BreakerState reports the circuit breaker state, e.g. "closed" or "open".
func (c *Client) BreakerState() string {
	return c.breaker.State().String()
}

// call describes one API request.
type call struct {
	method   string
	path     string
	resource string
	id       string
	body     any
	result   any
	login    bool
}

type errorBody struct {
	Error string `json:"error"`
}

func (c *Client) do(ctx context.Context, rc call) error {
	requestID := uuid.NewString()
	ctx = logging.WithRequestID(ctx, requestID)
	log := c.log.WithContext(ctx)

	_, err := c.breaker.Execute(func() (any, error) {
		var apiErr errorBody
		req := c.http.R().
			SetContext(ctx).
			SetHeader(HeaderRequestID, requestID).
			SetError(&apiErr)
		if token := c.Token(); token != "" && !rc.login {
			req.SetAuthToken(token)
		}
		if rc.body != nil {
			req.SetBody(rc.body)
		}
		if rc.result != nil {
			req.SetResult(rc.result)
		}

		log.Debug("request", "method", rc.method, "path", rc.path)
		resp, err := req.Execute(rc.method, rc.path)
		if err != nil {
			log.Debug("request failed", "method", rc.method, "path", rc.path, "error", err)
			return nil, c.transportError(rc, err)
		}

		log.Debug("response", "method", rc.method, "path", rc.path,
			"status", resp.StatusCode(), "duration", resp.Time())
		if resp.IsError() {
			return nil, c.statusError(rc, resp.StatusCode(), apiErr.Error)
		}
		return nil, nil
	})

	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		log.Warn("request rejected by circuit breaker", "method", rc.method, "path", rc.path)
		return apperrors.CircuitOpen("storefront", c.cooldown).WithCause(err)
	case err != nil:
		return err
	}
	return nil
}

func (c *Client) transportError(rc call, err error) error {
	operation := rc.method + " " + rc.path
	var netErr net.Error
	switch {
	case errors.Is(err, context.Canceled):
		return apperrors.ContextCancelled(operation).WithCause(err)
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr) && netErr.Timeout():
		return apperrors.OperationTimeout(operation, c.http.GetClient().Timeout).WithCause(err)
	default:
		return apperrors.ServiceUnavailable(c.host, err)
	}
}

func (c *Client) statusError(rc call, status int, message string) error {
	switch {
	case status == http.StatusUnauthorized:
		if rc.login {
			return apperrors.Unauthorized(message)
		}
		if c.Token() == "" {
			return apperrors.NotLoggedIn()
		}
		return apperrors.SessionExpired()
	case status == http.StatusNotFound:
		return apperrors.NotFound(rc.resource, rc.id, message)
	case status == http.StatusBadRequest, status == http.StatusUnprocessableEntity, status == http.StatusConflict:
		if message == "" {
			message = "request rejected by the server"
		}
		return apperrors.Validation(message)
	case status >= http.StatusInternalServerError:
		return apperrors.ServerError(status, message)
	default:
		if message == "" {
			message = http.StatusText(status)
		}
		return apperrors.Validation(message).WithDetails("status", strconv.Itoa(status))
	}
}
