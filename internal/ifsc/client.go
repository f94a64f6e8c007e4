package ifsc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/time/rate"

	"github.com/ginjaninja78/ifsc-enricher/internal/logging"
	"github.com/ginjaninja78/ifsc-enricher/internal/types"
)

const serviceName = "ifsc"

// Client fetches branch details from an IFSC lookup API that serves
// GET <baseURL>/<IFSC> as JSON.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     logging.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) { c.userAgent = ua }
}

// WithRateLimit paces requests to at most rps per second. rps <= 0 disables
// pacing.
func WithRateLimit(rps float64) ClientOption {
	return func(c *Client) { c.limiter = newLimiter(rps) }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l logging.Logger) ClientOption {
	return func(c *Client) { c.logger = l }
}

// NewClient returns a Client for the API at baseURL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
		limiter:    newLimiter(0),
		logger:     logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func newLimiter(rps float64) *rate.Limiter {
	if rps <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Limit(rps), 1)
}

// FetchDetails looks up the bank and branch for code. Callers should only
// pass codes that Validate accepted. Every failure is a *types.LookupError;
// nothing is retried.
func (c *Client) FetchDetails(ctx context.Context, code string) (types.Details, error) {
	code = Canonical(code)
	fail := func(status int, err error) (types.Details, error) {
		return types.Details{}, &types.LookupError{Service: serviceName, Subject: code, StatusCode: status, Err: err}
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return fail(0, err)
	}

	reqURL := c.baseURL + "/" + url.PathEscape(code)
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

	var details types.Details
	if err := json.NewDecoder(resp.Body).Decode(&details); err != nil {
		return fail(resp.StatusCode, fmt.Errorf("failed to decode response: %w", err))
	}
	if details.Institution == "" {
		return fail(resp.StatusCode, errors.New("response has no BANK field"))
	}

	return details, nil
}
