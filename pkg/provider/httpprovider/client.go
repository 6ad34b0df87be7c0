package httpprovider

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rhuss/mathsolver/pkg/debug"
	"github.com/rhuss/mathsolver/pkg/observability"
	"github.com/rhuss/mathsolver/pkg/provider"
)

// maxResponseBytes bounds how much of a success body is read.
const maxResponseBytes = 4 << 20

// Dialect captures the per-backend differences of an HTTP provider.
type Dialect interface {
	// BuildRequest creates the outbound request for question. apiKey is
	// never empty when BuildRequest is called.
	BuildRequest(ctx context.Context, baseURL, apiKey, question string) (*http.Request, error)

	// IsOK reports whether status is the backend's success status.
	IsOK(status int) bool

	// Extract turns a success body for question into a Result. It returns
	// MalformedPayload for undecodable bodies or in-body errors and
	// EmptyResponse when the expected text is missing.
	Extract(question string, body []byte) provider.Result
}

// Config holds the settings shared by all HTTP providers.
type Config struct {
	// Name identifies the provider in logs, metrics and outcomes.
	Name string

	// BaseURL is the backend root URL (e.g., "https://api.example.com").
	BaseURL string

	// APIKey is the backend credential. Empty means not configured.
	APIKey string

	// Label, when set, prefixes successful answers as "### <Label>\n".
	Label string

	// Timeout for each HTTP request. Defaults to 60s.
	Timeout time.Duration

	// HTTPClient overrides the client built from Timeout.
	HTTPClient *http.Client
}

// Client performs a single provider attempt over HTTP. It implements
// provider.Provider and is safe for concurrent use.
type Client struct {
	cfg        Config
	dialect    Dialect
	httpClient *http.Client
}

// Ensure Client implements provider.Provider at compile time.
var _ provider.Provider = (*Client)(nil)

// New creates a Client for the given dialect.
func New(cfg Config, dialect Dialect) *Client {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Timeout == 0 {
		cfg.Timeout = 60 * time.Second
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		cfg:        cfg,
		dialect:    dialect,
		httpClient: httpClient,
	}
}

// Name returns the provider identifier.
func (c *Client) Name() string {
	return c.cfg.Name
}

// Configured reports whether a credential is present.
func (c *Client) Configured() bool {
	return c.cfg.APIKey != ""
}

// Attempt sends one request for question and classifies the outcome.
func (c *Client) Attempt(ctx context.Context, question string) provider.Result {
	if !c.Configured() {
		return c.fail(provider.NotConfigured("no API key configured"))
	}

	req, err := c.dialect.BuildRequest(ctx, c.cfg.BaseURL, c.cfg.APIKey, question)
	if err != nil {
		return c.fail(provider.TransportError(c.redactError(err)))
	}

	debug.Log("providers", "request", "provider", c.cfg.Name, "method", req.Method, "url", c.redact(req.URL.String()))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		observability.ProviderRequestsTotal.WithLabelValues(c.cfg.Name, "error").Inc()
		return c.fail(provider.TransportError(c.redactError(err)))
	}
	defer resp.Body.Close()

	observability.ProviderRequestsTotal.WithLabelValues(c.cfg.Name, strconv.Itoa(resp.StatusCode)).Inc()

	if !c.dialect.IsOK(resp.StatusCode) {
		return c.fail(provider.NonOKStatus(resp.StatusCode, c.redact(ReadErrorSnippet(resp.Body))))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return c.fail(provider.TransportError(c.redactError(err)))
	}
	if len(body) > maxResponseBytes {
		return c.fail(provider.MalformedPayload(fmt.Sprintf("response body exceeds %d bytes", maxResponseBytes)))
	}

	if debug.TraceIsEnabled("providers") {
		debug.Trace("providers", "response body", "provider", c.cfg.Name, "body", string(body))
	}

	result := c.dialect.Extract(question, body)
	if !result.OK() {
		return c.fail(result)
	}
	if strings.TrimSpace(result.Text) == "" {
		return c.fail(provider.EmptyResponse("extracted text is blank"))
	}

	text := result.Text
	if c.cfg.Label != "" {
		text = "### " + c.cfg.Label + "\n" + text
	}

	debug.Log("providers", "provider answered", "provider", c.cfg.Name, "length", len(text))
	return provider.Success(text)
}

// Close releases idle connections.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// fail records the failure detail for the providers debug category and
// returns r unchanged. The engine logs the attempt itself.
func (c *Client) fail(r provider.Result) provider.Result {
	debug.Log("providers", "attempt failed",
		"provider", c.cfg.Name,
		"reason", string(r.Failure.Kind),
		"status", r.Failure.StatusCode,
		"detail", r.Failure.Detail,
	)
	return r
}

// redact removes the credential from s. Some backends take the key as a
// query parameter, so it can appear in URLs embedded in net/http errors.
func (c *Client) redact(s string) string {
	if c.cfg.APIKey == "" {
		return s
	}
	s = strings.ReplaceAll(s, c.cfg.APIKey, "REDACTED")
	if escaped := url.QueryEscape(c.cfg.APIKey); escaped != c.cfg.APIKey {
		s = strings.ReplaceAll(s, escaped, "REDACTED")
	}
	return s
}

func (c *Client) redactError(err error) error {
	return errors.New(c.redact(err.Error()))
}
