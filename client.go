// Package bioapis provides thin HTTP clients for public chemistry and
// structural-biology web services: PubChem, RCSB PDB, DrugBank, LIPID MAPS,
// PDBe, and the Amber GeoStd mirror.
//
// The root package holds the shared HTTP client, the tagged request error
// type, and a helper for opening service pages in a web browser. Each
// service lives in its own subpackage and embeds or wraps Client.
package bioapis

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const (
	// DefaultTimeout is the global request timeout. All services here
	// serve small payloads; anything slower is treated as a failure.
	DefaultTimeout = 5 * time.Second

	// DefaultMaxResponseBytes is the maximum response body size (50 MB).
	// Map files are the largest payloads we pull.
	DefaultMaxResponseBytes int64 = 50 * 1024 * 1024

	// DefaultUserAgent identifies this library to the remote services.
	DefaultUserAgent = "bio-apis (github.com/David-OConnor/bio-apis)"
)

// Client is the shared HTTP client used by every service package. It adds
// a request timeout, an optional rate limiter, and a response size guard
// on top of net/http.
//
// HTTP status codes are not treated as errors: a 404 or 500 response still
// returns its body, and only transport-level failures (connection, DNS,
// timeout) surface as errors. Callers that parse JSON get a decode error
// when a server returns an HTML or plain-text error page instead.
type Client struct {
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	UserAgent  string
	MaxBytes   int64
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.HTTPClient = hc }
}

// WithTimeout overrides the default request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.HTTPClient.Timeout = d }
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.UserAgent = ua }
}

// WithRateLimit caps outbound requests at rps requests per second.
func WithRateLimit(rps float64) Option {
	return func(c *Client) { c.Limiter = rate.NewLimiter(rate.Limit(rps), 1) }
}

// WithMaxResponseBytes sets the maximum allowed response body size.
func WithMaxResponseBytes(n int64) Option {
	return func(c *Client) { c.MaxBytes = n }
}

// NewClient creates a shared client with the given options.
func NewClient(opts ...Option) *Client {
	c := &Client{
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
		UserAgent:  DefaultUserAgent,
		MaxBytes:   DefaultMaxResponseBytes,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) do(ctx context.Context, method, url string, body io.Reader) (*http.Response, error) {
	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return nil, Transport(fmt.Errorf("rate limit wait: %w", err))
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, Transport(fmt.Errorf("creating request: %w", err))
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, Transport(fmt.Errorf("%s %s: %w", method, url, err))
	}
	return resp, nil
}

// readAll reads r up to the size guard.
func (c *Client) readAll(url string, r io.Reader) ([]byte, error) {
	b, err := io.ReadAll(io.LimitReader(r, c.MaxBytes+1))
	if err != nil {
		return nil, Transport(fmt.Errorf("reading response from %s: %w", url, err))
	}
	if int64(len(b)) > c.MaxBytes {
		return nil, LocalIO(fmt.Errorf("response from %s exceeds %d bytes", url, c.MaxBytes))
	}
	return b, nil
}

// Get issues a GET request and returns the response body for any HTTP
// status, including 4xx/5xx.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	resp, err := c.do(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return c.readAll(url, resp.Body)
}

// GetString is Get with the body returned as a string.
func (c *Client) GetString(ctx context.Context, url string) (string, error) {
	b, err := c.Get(ctx, url)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// GetGzip issues a GET request for a gzip-compressed resource and returns
// the decompressed body.
func (c *Client) GetGzip(ctx context.Context, url string) ([]byte, error) {
	resp, err := c.do(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	gz, err := gzip.NewReader(resp.Body)
	if err != nil {
		return nil, LocalIO(fmt.Errorf("decompressing response from %s: %w", url, err))
	}
	defer gz.Close()

	b, err := io.ReadAll(io.LimitReader(gz, c.MaxBytes+1))
	if err != nil {
		return nil, LocalIO(fmt.Errorf("decompressing response from %s: %w", url, err))
	}
	if int64(len(b)) > c.MaxBytes {
		return nil, LocalIO(fmt.Errorf("response from %s exceeds %d bytes", url, c.MaxBytes))
	}
	return b, nil
}

// PostJSON issues a POST request with payload marshaled as a JSON body,
// and returns the response body for any HTTP status.
func (c *Client) PostJSON(ctx context.Context, url string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, Decode(fmt.Errorf("encoding request payload: %w", err))
	}

	resp, err := c.do(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return c.readAll(url, resp.Body)
}

// Head issues a HEAD request and reports whether the resource exists.
// Any status other than 200 yields false; only transport failures error.
func (c *Client) Head(ctx context.Context, url string) (bool, error) {
	resp, err := c.do(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false, err
	}
	resp.Body.Close()

	return resp.StatusCode == http.StatusOK, nil
}
