package gutendex

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultUserAgent = "Literalura/1.0"

// Client fetches search results from the Gutendex API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets a timeout on the underlying HTTP client. Zero keeps the
// client default, which never times out.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// NewClient creates a Gutendex client rooted at baseURL (e.g. https://gutendex.com).
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{},
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchURL builds the search URL for term. The term is fully percent-encoded
// with spaces as %20.
func (c *Client) SearchURL(term string) string {
	return fmt.Sprintf("%s/books/?search=%s", c.baseURL, encodeTerm(term))
}

// Search runs a title search and returns the raw response body.
// Any transport error or non-2xx status is returned as an error.
func (c *Client) Search(ctx context.Context, term string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.SearchURL(term), nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("search books: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", &StatusError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	return string(body), nil
}

func encodeTerm(term string) string {
	return strings.ReplaceAll(url.QueryEscape(term), "+", "%20")
}
