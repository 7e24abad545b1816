package storefront

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"shopgrip/internal/domain"
	"shopgrip/internal/logging"
)

// RequestIDHeader carries the per-request correlation id
const RequestIDHeader = "X-Request-ID"

// maxBodyBytes bounds a decoded response body
const maxBodyBytes = 4 << 20

// Searcher runs predictive searches against the store
type Searcher interface {
	PredictiveSearch(ctx context.Context, q PredictiveQuery) (*PredictiveSearchResponse, error)
}

// CartFetcher loads a cart by id
type CartFetcher interface {
	Cart(ctx context.Context, id string) (*domain.Cart, error)
}

// StatusError is returned when the store answers with a non-2xx status
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("storefront: %s returned status %d", e.URL, e.Code)
}

// Client talks to the storefront HTTP API
type Client struct {
	baseURL    *url.URL
	searchPath string
	httpClient *http.Client
	logger     *zap.Logger
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithSearchPath overrides the predictive search path
func WithSearchPath(p string) Option {
	return func(c *Client) { c.searchPath = p }
}

// WithLogger attaches a logger
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = logging.OrNop(l) }
}

// NewClient creates a client for the store at endpoint
func NewClient(endpoint string, opts ...Option) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid endpoint %q: scheme and host are required", endpoint)
	}

	c := &Client{
		baseURL:    u,
		searchPath: "/api/predictive-search",
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// PredictiveSearch issues one GET to the search endpoint
func (c *Client) PredictiveSearch(ctx context.Context, q PredictiveQuery) (*PredictiveSearchResponse, error) {
	params := url.Values{}
	params.Set("q", q.Q)
	params.Set("limit", strconv.Itoa(q.Limit))
	params.Set("predictive", strconv.FormatBool(q.Predictive))

	var resp PredictiveSearchResponse
	if err := c.getJSON(ctx, c.searchPath, params, &resp); err != nil {
		return nil, fmt.Errorf("predictive search %q: %w", q.Q, err)
	}
	return &resp, nil
}

// Cart loads the cart with the given id
func (c *Client) Cart(ctx context.Context, id string) (*domain.Cart, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("cart id is required")
	}

	var cart domain.Cart
	if err := c.getJSON(ctx, "/api/carts/"+url.PathEscape(id), nil, &cart); err != nil {
		return nil, fmt.Errorf("load cart %q: %w", id, err)
	}
	return &cart, nil
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	u := c.baseURL.JoinPath(path)
	if params != nil {
		u.RawQuery = params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, reqID)

	start := time.Now()
	res, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("storefront request failed",
			zap.String("request_id", reqID),
			zap.String("url", u.String()),
			zap.Error(err))
		return err
	}
	defer res.Body.Close()

	c.logger.Debug("storefront request",
		zap.String("request_id", reqID),
		zap.String("url", u.String()),
		zap.Int("status", res.StatusCode),
		zap.Duration("duration", time.Since(start)))

	if res.StatusCode < 200 || res.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, maxBodyBytes))
		return &StatusError{Code: res.StatusCode, URL: u.String()}
	}

	if err := json.NewDecoder(io.LimitReader(res.Body, maxBodyBytes)).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
