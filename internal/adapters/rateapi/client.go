package rateapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/SscSPs/moneyswap/internal/apperrors"
	portssvc "github.com/SscSPs/moneyswap/internal/core/ports/services"
	"github.com/SscSPs/moneyswap/internal/platform/metrics"
)

const (
	endpointLatest  = "latest"
	endpointHistory = "history"

	// maxBodyBytes bounds how much of a provider response is read.
	maxBodyBytes = 4 << 20
)

// Client talks to the latest-rates service and the historical-rates service.
// It never retries; retry policy belongs to the caller.
type Client struct {
	latestURL  string
	historyURL string
	httpClient *http.Client
	metrics    *metrics.ConversionMetrics
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithMetrics records upstream latency on m.
func WithMetrics(m *metrics.ConversionMetrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient creates a Client. timeout bounds every request, including body reads.
func NewClient(latestURL, historyURL string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		latestURL:  latestURL,
		historyURL: historyURL,
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ portssvc.RateProvider = (*Client)(nil)

// get issues a GET and returns the body of a 2xx response. Every failure is
// reported as apperrors.ErrTransport.
func (c *Client) get(ctx context.Context, endpoint, rawURL string) ([]byte, error) {
	start := time.Now()
	status := "error"
	defer func() {
		c.metrics.ObserveProviderRequest(endpoint, status, time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building %s request: %w", apperrors.ErrTransport, endpoint, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s request: %w", apperrors.ErrTransport, endpoint, err)
	}
	defer resp.Body.Close()
	status = strconv.Itoa(resp.StatusCode)

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s response: %w", apperrors.ErrTransport, endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %s returned status %d", apperrors.ErrTransport, endpoint, resp.StatusCode)
	}
	return body, nil
}
