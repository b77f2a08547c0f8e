package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"artgallery/internal/catalog"
)

const (
	defaultTimeout  = 15 * time.Second
	defaultMaxBytes = 8 << 20
)

// Client fetches the catalog document from a fixed URL.
type Client struct {
	url        string
	userAgent  string
	maxBytes   int64
	timeout    time.Duration
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout sets the overall request timeout on the default HTTP client.
// It has no effect on a client supplied through WithHTTPClient.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithUserAgent sets the User-Agent request header.
func WithUserAgent(agent string) Option {
	return func(c *Client) {
		c.userAgent = strings.TrimSpace(agent)
	}
}

// WithMaxBytes caps the accepted response body size.
func WithMaxBytes(limit int64) Option {
	return func(c *Client) {
		if limit > 0 {
			c.maxBytes = limit
		}
	}
}

// New creates a catalog client for rawURL.
func New(rawURL string, opts ...Option) (*Client, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, errors.New("catalog url required")
	}
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse catalog url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("catalog url %q: scheme must be http or https", rawURL)
	}
	client := &Client{
		url:      parsed.String(),
		maxBytes: defaultMaxBytes,
		timeout:  defaultTimeout,
	}
	for _, opt := range opts {
		opt(client)
	}
	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: client.timeout}
	}
	return client, nil
}

// URL returns the catalog location this client fetches.
func (c *Client) URL() string {
	return c.url
}

// Fetch performs one GET of the catalog and decodes it.
func (c *Client) Fetch(ctx context.Context) (catalog.Catalog, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return catalog.Catalog{}, &NetworkError{URL: c.url, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return catalog.Catalog{}, &NetworkError{URL: c.url, Err: fmt.Errorf("execute request (latency=%v): %w", latency, err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return catalog.Catalog{}, &NetworkError{
			URL:        c.url,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %s (latency=%v)", resp.Status, latency),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes+1))
	if err != nil {
		return catalog.Catalog{}, &NetworkError{URL: c.url, StatusCode: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}
	if int64(len(body)) > c.maxBytes {
		return catalog.Catalog{}, &NetworkError{
			URL:        c.url,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("body exceeds %d bytes", c.maxBytes),
		}
	}

	return catalog.Decode(body)
}
