package sparql

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lblod/vendor-login-service/pkg/api"
	"github.com/lblod/vendor-login-service/pkg/observability"
)

// SudoClient executes SPARQL queries and updates against the endpoint
// with elevated privileges. Every request carries the mu-auth-sudo header
// so the store bypasses per-graph access control, plus a fresh mu-call-id
// for request correlation across the stack.
type SudoClient struct {
	httpClient *http.Client
	endpoint   string
	logger     *slog.Logger
}

// Option configures a SudoClient.
type Option func(*SudoClient)

// WithTimeout sets the per-call HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *SudoClient) { c.httpClient.Timeout = d }
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *SudoClient) { c.logger = l }
}

// NewSudoClient creates a privileged client for the given SPARQL endpoint.
func NewSudoClient(endpoint string, opts ...Option) *SudoClient {
	c := &SudoClient{
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		endpoint: strings.TrimRight(endpoint, "/"),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Query executes a read query and parses the SPARQL JSON results.
func (c *SudoClient) Query(ctx context.Context, query string) (*ResultSet, error) {
	body, err := c.send(ctx, "query", query)
	if err != nil {
		return nil, err
	}
	var results ResultSet
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, api.NewStoreUnavailableError(fmt.Sprintf("The triple store returned an unreadable result: %s", err))
	}
	return &results, nil
}

// Update executes a write query. The response body is discarded; any
// non-2xx status or transport failure surfaces as a store error.
func (c *SudoClient) Update(ctx context.Context, update string) error {
	_, err := c.send(ctx, "update", update)
	return err
}

func (c *SudoClient) send(ctx context.Context, operation, text string) ([]byte, error) {
	start := time.Now()

	form := url.Values{}
	form.Set(operation, text)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, api.NewStoreUnavailableError(fmt.Sprintf("The store request could not be created: %s", err))
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/sparql-results+json")
	req.Header.Set("mu-auth-sudo", "true")
	req.Header.Set("mu-call-id", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe(ctx, operation, "error", start, err)
		return nil, api.NewStoreUnavailableError(fmt.Sprintf("The triple store could not be reached: %s", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.observe(ctx, operation, "error", start, err)
		return nil, api.NewStoreUnavailableError(fmt.Sprintf("The triple store response could not be read: %s", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := fmt.Errorf("endpoint returned status %d", resp.StatusCode)
		c.observe(ctx, operation, "error", start, statusErr)
		return nil, api.NewStoreUnavailableError(fmt.Sprintf("The triple store rejected the %s with status %d", operation, resp.StatusCode))
	}

	c.observe(ctx, operation, "ok", start, nil)
	return body, nil
}

func (c *SudoClient) observe(ctx context.Context, operation, outcome string, start time.Time, err error) {
	duration := time.Since(start)
	observability.StoreRequestsTotal.WithLabelValues(operation, outcome).Inc()
	observability.StoreRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())

	attrs := []slog.Attr{
		slog.String("operation", operation),
		slog.Duration("duration", duration),
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		c.logger.LogAttrs(ctx, slog.LevelError, "store request failed", attrs...)
	} else {
		c.logger.LogAttrs(ctx, slog.LevelDebug, "store request completed", attrs...)
	}
}
