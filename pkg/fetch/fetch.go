// Package fetch is the single outbound HTTP boundary for page retrieval.
// Every helper returns an error for non-2xx statuses, timeouts and transport
// failures; callers decide how to degrade.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// Browser-like headers keep the cheap bot checks of search engines and
	// corporate sites from rejecting us outright.
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/116.0.0.0 Safari/537.36"
	acceptHeader     = "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8"
	acceptLanguage   = "ko-KR,ko;q=0.9,en-US;q=0.8,en;q=0.7"

	// PageTimeout bounds a full page GET, HeadTimeout a redirect-resolving
	// HEAD probe.
	PageTimeout = 10 * time.Second
	HeadTimeout = 5 * time.Second
)

// Client issues GETs with a browser header set and resolves redirect
// wrappers with HEAD requests. The zero value is not usable; construct with
// New.
type Client struct {
	http *http.Client
	head *http.Client
}

// New creates a fetch client with the given page timeout (PageTimeout when
// zero).
func New(timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = PageTimeout
	}
	return &Client{
		http: &http.Client{Timeout: timeout},
		head: &http.Client{Timeout: HeadTimeout},
	}
}

// Get fetches url and returns the body. Any non-2xx status is an error.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	setBrowserHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("request %s: unexpected status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body of %s: %w", url, err)
	}
	return body, nil
}

// ResolveRedirect issues a HEAD request following redirects and returns the
// final URL. Used to unwrap search-engine redirect links.
func (c *Client) ResolveRedirect(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	setBrowserHeaders(req)

	resp, err := c.head.Do(req)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", url, err)
	}
	defer resp.Body.Close()

	return resp.Request.URL.String(), nil
}

func setBrowserHeaders(req *http.Request) {
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("Accept-Language", acceptLanguage)
	req.Header.Set("Connection", "keep-alive")
}
