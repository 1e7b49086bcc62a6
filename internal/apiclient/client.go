// Package apiclient is the single chokepoint for all HTTP calls to the
// OpenPersona backend. It attaches bearer-token auth, serializes JSON
// bodies, normalizes the backend's error envelope, and broadcasts on the
// auth-event bus when a request comes back 401.
//
// There are no retries, no backoff, and no circuit breaking: every failure
// propagates to the caller, which decides whether to surface or swallow it.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"

	"github.com/openpersona/console/internal/authevents"
)

// TokenSource supplies the current bearer token. An empty string means no
// Authorization header is sent.
type TokenSource interface {
	Token() string
}

// TokenSourceFunc adapts a plain function to a TokenSource.
type TokenSourceFunc func() string

func (f TokenSourceFunc) Token() string { return f() }

// Client talks to the OpenPersona backend. All endpoint groups hang off it.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	bus        *authevents.Bus
	logger     *slog.Logger

	Diagnostics *DiagnosticsService
	Auth        *AuthService
	Profile     *ProfileService
	Dashboards  *DashboardService
	Templates   *TemplateService
	Files       *FileService
	Resume      *ResumeService
	Portfolio   *PortfolioService
	Support     *SupportService
	Agent       *AgentService
	Billing     *BillingService
	Admin       *AdminService
	Public      *PublicService
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTokenSource sets where the bearer token comes from.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// WithBus sets the auth-event bus that receives unauthorized broadcasts.
// Defaults to the process-wide bus.
func WithBus(bus *authevents.Bus) Option {
	return func(c *Client) { c.bus = bus }
}

// WithTimeout sets an overall per-request timeout. The original client set
// none, so zero (no timeout) is the default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// New creates a Client for the backend at baseURL.
func New(baseURL string, opts ...Option) *Client {
	// The backend also sets session cookies alongside the bearer token;
	// a jar is the credentials-include analog.
	jar, _ := cookiejar.New(nil)

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Jar: jar},
		tokens:     TokenSourceFunc(func() string { return "" }),
		bus:        authevents.Default(),
		logger:     slog.Default().With("component", "apiclient"),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.Diagnostics = &DiagnosticsService{client: c}
	c.Auth = &AuthService{client: c}
	c.Profile = &ProfileService{client: c}
	c.Dashboards = &DashboardService{client: c}
	c.Templates = &TemplateService{client: c}
	c.Files = &FileService{client: c}
	c.Resume = &ResumeService{client: c}
	c.Portfolio = &PortfolioService{client: c}
	c.Support = &SupportService{client: c}
	c.Agent = &AgentService{client: c}
	c.Billing = &BillingService{client: c}
	c.Admin = &AdminService{client: c}
	c.Public = &PublicService{client: c}
	return c
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// do runs one JSON request/response cycle. A nil in sends no body; a nil out
// discards the response body. HTTP 204 and unparsable success bodies both
// yield a zero out, mirroring the original client's safeJson behavior.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.setAuthHeader(req)

	return c.send(req, out)
}

// send executes a prepared request and decodes the response.
func (c *Client) send(req *http.Request, out any) error {
	res, err := c.httpClient.Do(req)
	if err != nil {
		// Transport-level failure (backend down, DNS, canceled context).
		return fmt.Errorf("calling %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("reading response from %s: %w", req.URL.Path, err)
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		apiErr := newAPIError(res.StatusCode, data)
		if res.StatusCode == http.StatusUnauthorized && c.bus != nil {
			c.bus.EmitUnauthorized()
		}
		return apiErr
	}

	if res.StatusCode == http.StatusNoContent || len(data) == 0 || out == nil {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		// An unparsable success body is treated as an empty one, matching
		// the original client.
		c.logger.Debug("Discarding unparsable response body", "path", req.URL.Path, "error", err)
	}
	return nil
}

// setAuthHeader attaches the bearer token when one is present.
func (c *Client) setAuthHeader(req *http.Request) {
	if c.tokens == nil {
		return
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// get fetches path into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// getRaw fetches path and returns the raw JSON body, for endpoints whose
// collection shape must be normalized before decoding.
func (c *Client) getRaw(ctx context.Context, path string) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.get(ctx, path, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}
