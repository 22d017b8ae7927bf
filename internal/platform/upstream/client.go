// Package upstream is the HTTP client for the device monitoring API.
//
// Every call goes through a circuit breaker and a bounded exponential retry.
// 404 answers are reported as ErrNotFound and count as successes for the
// breaker; other 4xx answers are not retried.
package upstream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"

	"device-status-service/internal/platform/logging"
	"device-status-service/internal/platform/metrics"
)

var ErrNotFound = errors.New("upstream: not found")

// StatusError is a non-2xx answer other than 404.
type StatusError struct {
	Endpoint string
	Code     int
	Body     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream %s: status %d: %s", e.Endpoint, e.Code, e.Body)
}

type Config struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries uint64
	RetryWait  time.Duration // first backoff interval

	BreakerName        string
	BreakerMinRequests uint32
	BreakerFailRatio   float64
	BreakerOpenTimeout time.Duration
}

type Client struct {
	base       *url.URL
	http       *http.Client
	cb         *gobreaker.CircuitBreaker[[]byte]
	maxRetries uint64
	retryWait  time.Duration
}

const maxErrorBody = 512

func New(cfg Config) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid upstream base url %q", cfg.BaseURL)
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.RetryWait <= 0 {
		cfg.RetryWait = 200 * time.Millisecond
	}
	if cfg.BreakerName == "" {
		cfg.BreakerName = "monitoring-api"
	}
	if cfg.BreakerMinRequests == 0 {
		cfg.BreakerMinRequests = 10
	}
	if cfg.BreakerFailRatio <= 0 {
		cfg.BreakerFailRatio = 0.6
	}
	if cfg.BreakerOpenTimeout <= 0 {
		cfg.BreakerOpenTimeout = time.Minute
	}

	metrics.CircuitBreakerState.WithLabelValues(cfg.BreakerName).Set(0)

	cb := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        cfg.BreakerName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     cfg.BreakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.BreakerMinRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			return ratio >= cfg.BreakerFailRatio
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrNotFound) || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state change")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateValue(to))
		},
	})

	return &Client{
		base:       base,
		http:       &http.Client{Timeout: cfg.Timeout},
		cb:         cb,
		maxRetries: cfg.MaxRetries,
		retryWait:  cfg.RetryWait,
	}, nil
}

// GetJSON issues GET {base}/{path}?{query} and decodes the JSON body into
// out. endpoint is a low-cardinality label used for metrics and errors.
func (c *Client) GetJSON(ctx context.Context, endpoint, path string, query url.Values, out any) error {
	u := c.base.JoinPath(path)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	start := time.Now()
	body, err := c.cb.Execute(func() ([]byte, error) {
		return c.getWithRetry(ctx, endpoint, u.String())
	})

	switch {
	case err == nil:
		metrics.RecordUpstream(endpoint, "success", time.Since(start))
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.RecordUpstream(endpoint, "rejected", time.Since(start))
		return fmt.Errorf("upstream %s: %w", endpoint, err)
	case errors.Is(err, ErrNotFound):
		metrics.RecordUpstream(endpoint, "not_found", time.Since(start))
		return err
	default:
		metrics.RecordUpstream(endpoint, "failure", time.Since(start))
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("upstream %s: decode: %w", endpoint, err)
	}
	return nil
}

func (c *Client) getWithRetry(ctx context.Context, endpoint, rawURL string) ([]byte, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.retryWait

	var body []byte
	op := func() error {
		var err error
		body, err = c.get(ctx, endpoint, rawURL)
		return err
	}

	notify := func(err error, wait time.Duration) {
		logging.Ctx(ctx).Debug().Err(err).Str("endpoint", endpoint).Dur("wait", wait).Msg("retrying upstream call")
	}

	err := backoff.RetryNotify(op, backoff.WithContext(backoff.WithMaxRetries(b, c.maxRetries), ctx), notify)
	if err != nil {
		return nil, err
	}
	return body, nil
}

func (c *Client) get(ctx context.Context, endpoint, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	req.Header.Set("Accept", "application/json")
	if id := logging.RequestIDFromContext(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, backoff.Permanent(ctx.Err())
		}
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, backoff.Permanent(ErrNotFound)
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return body, nil
	}

	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	serr := &StatusError{Endpoint: endpoint, Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	if resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
		return nil, backoff.Permanent(serr)
	}
	return nil, serr
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateOpen:
		return 1
	case gobreaker.StateHalfOpen:
		return 2
	default:
		return 0
	}
}
