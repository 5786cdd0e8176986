// Package serpapi is the paid search source, backed by the SerpAPI Google
// endpoint.
package serpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/iWorld-y/company_radar/pkg/model"
	"github.com/iWorld-y/company_radar/pkg/search"
)

const defaultBaseURL = "https://serpapi.com/search"

// Client calls the SerpAPI search endpoint.
type Client struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewClient creates a SerpAPI client.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Ensure Client implements search.Source
var _ search.Source = (*Client)(nil)

// Name implements search.Source.
func (c *Client) Name() string { return "serpapi" }

// searchResponse covers the two result arrays we read from SerpAPI. Organic
// entries come from plain Google searches, news entries from tbm=nws
// searches and carry a date.
type searchResponse struct {
	OrganicResults []resultEntry `json:"organic_results"`
	NewsResults    []resultEntry `json:"news_results"`
}

type resultEntry struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	Link    string `json:"link"`
	Date    string `json:"date"`
}

// Search implements search.Source. News-topic requests use the Google news
// vertical and keep the entry date; general requests read organic results.
func (c *Client) Search(ctx context.Context, req *search.Request) (model.ResultSet, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	q := u.Query()
	q.Set("q", req.Query)
	q.Set("api_key", c.apiKey)
	q.Set("engine", "google")
	q.Set("hl", "ko")
	q.Set("gl", "kr")
	if req.Topic == search.TopicNews {
		q.Set("tbm", "nws")
	}
	u.RawQuery = q.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	res, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("read body failed: %w", err)
	}

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("serpapi error (status %d): %s", res.StatusCode, string(body))
	}

	var resp searchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("unmarshal response failed: %w", err)
	}

	entries := resp.OrganicResults
	news := req.Topic == search.TopicNews
	if news {
		entries = resp.NewsResults
	}

	var results model.ResultSet
	for _, e := range entries {
		if len(results) >= req.MaxResults {
			break
		}
		r := model.SearchResult{
			Title:   e.Title,
			Snippet: e.Snippet,
			Link:    e.Link,
		}
		if news {
			r.Date = e.Date
		}
		results = append(results, r)
	}
	return results, nil
}
