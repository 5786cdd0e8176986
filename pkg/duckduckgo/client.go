// Package duckduckgo is the free search source: it scrapes the DuckDuckGo
// HTML results page, so it works without any API key.
package duckduckgo

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/iWorld-y/company_radar/pkg/fetch"
	"github.com/iWorld-y/company_radar/pkg/model"
	"github.com/iWorld-y/company_radar/pkg/search"
)

const defaultBaseURL = "https://html.duckduckgo.com/html/"

// Client scrapes the DuckDuckGo HTML SERP.
type Client struct {
	baseURL string
	fetcher *fetch.Client
	ext     *extractor
}

// NewClient creates a DuckDuckGo client. baseURL and timeout (seconds) fall
// back to sensible defaults when zero.
func NewClient(baseURL string, timeout int) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	fetcher := fetch.New(time.Duration(timeout) * time.Second)

	origin := ""
	if u, err := url.Parse(baseURL); err == nil {
		origin = u.Scheme + "://" + u.Host
	}

	return &Client{
		baseURL: baseURL,
		fetcher: fetcher,
		ext:     &extractor{origin: origin, resolver: fetcher},
	}
}

// Ensure Client implements search.Source
var _ search.Source = (*Client)(nil)

// Name implements search.Source.
func (c *Client) Name() string { return "duckduckgo" }

// Search implements search.Source by fetching the result page for the
// computed query and running the extractor over it.
func (c *Client) Search(ctx context.Context, req *search.Request) (model.ResultSet, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	q := u.Query()
	q.Set("q", req.Query)
	u.RawQuery = q.Encode()

	body, err := c.fetcher.Get(ctx, u.String())
	if err != nil {
		return nil, fmt.Errorf("fetch result page: %w", err)
	}

	return c.ext.extract(ctx, body, req.MaxResults, req.Topic == search.TopicNews)
}
