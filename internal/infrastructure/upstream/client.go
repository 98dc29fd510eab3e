// Package upstream implements the gateway to the external country/city
// lookup service. It is read-only pass-through: payloads are decoded and
// handed back untouched, and every non-success outcome is remapped to
// domain.ErrUpstreamUnavailable.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/eventservice/user-directory/internal/api/metrics"
	"github.com/eventservice/user-directory/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

// Client forwards lookups to the country/city service.
type Client struct {
	baseURL string
	http    *http.Client
	logger  zerolog.Logger
}

// NewClient builds a Client for the service rooted at baseURL
// (e.g. http://localhost:8081/api/country-city-service/v1).
func NewClient(baseURL string, timeout time.Duration, logger zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// Countries lists all countries known to the upstream service.
func (c *Client) Countries(ctx context.Context) ([]domain.Country, error) {
	var out []domain.Country
	if err := c.get(ctx, "countries", "/countries", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Cities lists the cities of the given country.
func (c *Client) Cities(ctx context.Context, countryID string) ([]domain.City, error) {
	var out []domain.City
	if err := c.get(ctx, "cities", "/cities/"+url.PathEscape(countryID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// get performs one upstream round-trip and decodes the JSON body into dst.
func (c *Client) get(ctx context.Context, endpoint, path string, dst any) error {
	start := time.Now()
	err := c.doGet(ctx, path, dst)
	metrics.UpstreamRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, "error").Inc()
		c.logger.Warn().Err(err).Str("endpoint", endpoint).Msg("upstream lookup failed")
		return err
	}
	metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, "success").Inc()
	return nil
}

func (c *Client) doGet(ctx context.Context, path string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: build request: %v", domain.ErrUpstreamUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: unexpected status %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: decode response: %v", domain.ErrUpstreamUnavailable, err)
	}
	return nil
}
