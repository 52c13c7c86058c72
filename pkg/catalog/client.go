package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	appErrors "github.com/aaravmahajanofficial/storefront/internal/errors"
	"github.com/cenkalti/backoff/v4"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	DefaultTimeout         = 10 * time.Second
	DefaultMaxRetries      = 3
	DefaultInitialInterval = 250 * time.Millisecond
	DefaultMaxInterval     = 2 * time.Second

	maxErrorBody = 64 << 10
)

// Cache is the subset of a response cache the client needs.
type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// Observer is told about every logical call once retries are exhausted.
type Observer func(endpoint, outcome string, duration time.Duration)

// Client talks to the catalog REST API. It is safe for concurrent use.
type Client struct {
	baseURL         *url.URL
	httpClient      *http.Client
	zeroPolicy      ZeroPolicy
	maxRetries      int
	initialInterval time.Duration
	maxInterval     time.Duration
	cache           Cache
	observer        Observer
	logger          *slog.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the default instrumented client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

func WithZeroPolicy(p ZeroPolicy) Option {
	return func(c *Client) { c.zeroPolicy = p }
}

// WithRetry bounds automatic retries of network and 5xx failures.
func WithRetry(maxRetries int, initial, maxInterval time.Duration) Option {
	return func(c *Client) {
		c.maxRetries = max(maxRetries, 0)
		if initial > 0 {
			c.initialInterval = initial
		}
		if maxInterval > 0 {
			c.maxInterval = maxInterval
		}
	}
}

func WithCache(cache Cache) Option {
	return func(c *Client) { c.cache = cache }
}

func WithObserver(o Observer) Option {
	return func(c *Client) { c.observer = o }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

func NewClient(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid catalog base url: %w", err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid catalog base url %q: scheme must be http or https", baseURL)
	}

	c := &Client{
		baseURL: u,
		httpClient: &http.Client{
			Timeout:   DefaultTimeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		zeroPolicy:      ZeroPolicyKeep,
		maxRetries:      DefaultMaxRetries,
		initialInterval: DefaultInitialInterval,
		maxInterval:     DefaultMaxInterval,
		logger:          slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

func (c *Client) ZeroPolicy() ZeroPolicy {
	return c.zeroPolicy
}

// get fetches path into out, retrying transient failures with exponential
// backoff.
func (c *Client) get(ctx context.Context, endpoint, path string, q url.Values, out any) error {
	start := time.Now()

	target := *c.baseURL
	target.Path = c.baseURL.Path + path
	target.RawQuery = q.Encode()

	logger := c.logger.With(slog.String("endpoint", endpoint), slog.String("url", target.String()))

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.initialInterval
	b.MaxInterval = c.maxInterval
	b.MaxElapsedTime = 0

	attempt := 0
	operation := func() error {
		attempt++

		return c.do(ctx, target.String(), out)
	}

	notify := func(err error, wait time.Duration) {
		logger.Warn("Catalog request failed, retrying",
			slog.Int("attempt", attempt),
			slog.Duration("backoff", wait),
			slog.String("error", err.Error()))
	}

	err := backoff.RetryNotify(operation,
		backoff.WithContext(backoff.WithMaxRetries(b, uint64(c.maxRetries)), ctx),
		notify)

	outcome := "ok"
	if err != nil {
		outcome = strings.ToLower(appErrors.Code(err))
		if ctx.Err() != nil {
			outcome = "canceled"
		}

		logger.Debug("Catalog request failed", slog.Int("attempts", attempt), slog.String("error", err.Error()))
	}

	if c.observer != nil {
		c.observer(endpoint, outcome, time.Since(start))
	}

	return err
}

func (c *Client) do(ctx context.Context, target string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return backoff.Permanent(appErrors.InternalError("Failed to build catalog request").WithError(err))
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return backoff.Permanent(ctx.Err())
		}

		return appErrors.NetworkError("Catalog API is unreachable").WithError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return backoff.Permanent(appErrors.ServerError("Catalog API returned an invalid response").WithError(err))
		}

		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	appErr := classify(resp.StatusCode, body)
	if appErr.Code == appErrors.ErrCodeServer {
		return appErr
	}

	return backoff.Permanent(appErr)
}

// classify maps an unsuccessful status to the error taxonomy.
func classify(status int, body []byte) *appErrors.AppError {
	detail := errorDetail(body)
	cause := fmt.Errorf("catalog API responded %d", status)

	switch {
	case status == http.StatusNotFound:
		return appErrors.NotFoundError("The requested resource was not found").WithDetail(detail).WithError(cause)
	case status == http.StatusUnprocessableEntity:
		return appErrors.ValidationError("The catalog API rejected the request parameters").WithDetail(detail).WithError(cause)
	case status >= 400 && status < 500:
		return appErrors.BadRequestError("The catalog API rejected the request").WithDetail(detail).WithError(cause)
	default:
		return appErrors.ServerError("The catalog API failed to respond").WithDetail(detail).WithError(cause)
	}
}

// errorDetail extracts the "detail" field of an error body. It is either a
// string or a list of {msg} objects.
func errorDetail(body []byte) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}

	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(payload.Detail, &s); err == nil {
		return s
	}

	var items []struct {
		Msg string `json:"msg"`
	}

	if err := json.Unmarshal(payload.Detail, &items); err == nil {
		msgs := make([]string, 0, len(items))
		for _, item := range items {
			if item.Msg != "" {
				msgs = append(msgs, item.Msg)
			}
		}

		return strings.Join(msgs, "; ")
	}

	return ""
}

// cached serves key from the cache when possible and fills it on a miss.
// Cache failures only cost a remote call.
func cached[T any](ctx context.Context, c *Client, key string, ttl time.Duration, fetch func() (T, error)) (T, error) {
	if c.cache != nil {
		var v T

		found, err := c.cache.Get(ctx, key, &v)
		if err != nil {
			c.logger.Warn("Catalog cache read failed", slog.String("key", key), slog.String("error", err.Error()))
		}

		if found {
			return v, nil
		}
	}

	v, err := fetch()
	if err != nil {
		return v, err
	}

	if c.cache != nil {
		if err := c.cache.Set(ctx, key, v, ttl); err != nil {
			c.logger.Warn("Catalog cache write failed", slog.String("key", key), slog.String("error", err.Error()))
		}
	}

	return v, nil
}

func idPath(prefix string, id int64) string {
	return prefix + "/" + strconv.FormatInt(id, 10)
}

// IsCanceled reports whether err came from the caller abandoning the request.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
