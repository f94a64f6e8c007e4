// =============================================================================
// IFSC Enricher - Region Lookup Service
// =============================================================================
//
// This module searches a Nominatim-compatible geocoding endpoint for banks in
// a free-text region:
//
//   GET <endpoint>?q=bank+in+<region>&format=json&addressdetails=1
//
// Nominatim requires an identifying User-Agent and allows at most one
// request per second; the client sends the former and paces itself to the
// latter. A failed request is reported once and never retried.
//
// =============================================================================

package region

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/time/rate"

	"github.com/ginjaninja78/ifsc-enricher/internal/logging"
	"github.com/ginjaninja78/ifsc-enricher/internal/types"
)

const serviceName = "geocode"

// Client queries the geocoding service.
type Client struct {
	endpoint   string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     logging.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithRateLimit paces searches to at most rps per second; rps <= 0 disables
// pacing.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient returns a Client for the search endpoint.
func NewClient(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint:   endpoint,
		httpClient: http.DefaultClient,
		limiter:    rate.NewLimiter(rate.Inf, 1),
		logger:     logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchURL builds the query URL for region. Spaces in the query are
// encoded as '+', so the query reads bank+in+<region>.
func (c *Client) SearchURL(region string) string {
	params := url.Values{}
	params.Set("q", "bank in "+region)
	params.Set("format", "json")
	params.Set("addressdetails", "1")

	sep := "?"
	if strings.Contains(c.endpoint, "?") {
		sep = "&"
	}
	return c.endpoint + sep + params.Encode()
}

// Search returns the bank points of interest the service found in region.
// No results is not an error. Failures are *types.LookupError.
func (c *Client) Search(ctx context.Context, region string) ([]types.Place, error) {
	fail := func(status int, err error) ([]types.Place, error) {
		return nil, &types.LookupError{Service: serviceName, Subject: region, StatusCode: status, Err: err}
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return fail(0, err)
	}

	reqURL := c.SearchURL(region)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fail(0, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	c.logger.Debug("GET %s", reqURL)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fail(0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fail(resp.StatusCode, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}

	var places []types.Place
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return fail(resp.StatusCode, fmt.Errorf("failed to decode response: %w", err))
	}

	c.logger.Debug("%d place(s) found for %q", len(places), region)
	return places, nil
}
