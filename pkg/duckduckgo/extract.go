package duckduckgo

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/iWorld-y/company_radar/pkg/model"
)

// LinkResolver unwraps redirect-wrapper URLs by following redirects.
// *fetch.Client satisfies it.
type LinkResolver interface {
	ResolveRedirect(ctx context.Context, url string) (string, error)
}

// The DuckDuckGo HTML endpoint has shipped several markups over time, so the
// extractor guesses: ordered block strategies, most specific first, and the
// first one with at least one candidate wins. Strategies are never merged.
type blockStrategy struct {
	name string
	find func(doc *goquery.Document) *goquery.Selection
}

var blockStrategies = []blockStrategy{
	{"result", func(doc *goquery.Document) *goquery.Selection { return doc.Find("div.result") }},
	{"web-result", func(doc *goquery.Document) *goquery.Selection { return doc.Find("div.web-result") }},
	{"class-contains-result", func(doc *goquery.Document) *goquery.Selection { return doc.Find(`div[class*="result"]`) }},
}

// Per-block element patterns, tried in order, first match wins. The bare "a"
// entries are the permissive last resorts.
var (
	titlePatterns   = []string{"a.result__a", "a.result-link", "h2.result__title", "a"}
	snippetPatterns = []string{"a.result__snippet", "div.result__snippet", "span.result__snippet", "p.result__snippet"}
	datePatterns    = []string{"span.result__date", "time"}
)

// extractor turns one SERP document into a ResultSet.
type extractor struct {
	// origin is the scheme://host of the result page, used to absolutize
	// relative hrefs and redirect wrappers.
	origin   string
	resolver LinkResolver
}

// extract walks candidate blocks until maxResults have been accepted. A
// candidate that yields no usable title is skipped; nothing aborts the
// batch.
func (e *extractor) extract(ctx context.Context, htmlBody []byte, maxResults int, news bool) (model.ResultSet, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(htmlBody))
	if err != nil {
		return nil, fmt.Errorf("parse result page: %w", err)
	}

	var blocks *goquery.Selection
	for _, st := range blockStrategies {
		if s := st.find(doc); s.Length() > 0 {
			blocks = s
			break
		}
	}
	if blocks == nil {
		return nil, nil
	}

	var results model.ResultSet
	blocks.EachWithBreak(func(_ int, block *goquery.Selection) bool {
		if len(results) >= maxResults {
			return false
		}
		if r, ok := e.extractOne(ctx, block, news); ok {
			results = append(results, r)
		}
		return true
	})
	return results, nil
}

func (e *extractor) extractOne(ctx context.Context, block *goquery.Selection, news bool) (model.SearchResult, bool) {
	var title, href string
	for _, pattern := range titlePatterns {
		el := block.Find(pattern).First()
		if el.Length() == 0 {
			continue
		}
		title = strings.TrimSpace(el.Text())
		href, _ = el.Attr("href")
		break
	}
	if title == "" {
		return model.SearchResult{}, false
	}

	r := model.SearchResult{
		Title: title,
		Link:  e.normalizeLink(ctx, href),
	}

	for _, pattern := range snippetPatterns {
		el := block.Find(pattern).First()
		if el.Length() > 0 {
			r.Snippet = strings.TrimSpace(el.Text())
			break
		}
	}

	if news {
		for _, pattern := range datePatterns {
			el := block.Find(pattern).First()
			if el.Length() > 0 {
				r.Date = strings.TrimSpace(el.Text())
				break
			}
		}
	}

	return r, true
}

// normalizeLink makes hrefs absolute. Redirect wrappers (/l/?...) are
// resolved with a HEAD request; when resolution fails the wrapped absolute
// link is kept; the link is best-effort, never a hard failure.
func (e *extractor) normalizeLink(ctx context.Context, href string) string {
	switch {
	case href == "":
		return ""
	case strings.HasPrefix(href, "/l/?"):
		wrapped := e.origin + href
		if e.resolver != nil {
			if final, err := e.resolver.ResolveRedirect(ctx, wrapped); err == nil && final != "" {
				return final
			}
		}
		return wrapped
	case strings.Contains(href, "duckduckgo.com/l/?"):
		if e.resolver != nil {
			if final, err := e.resolver.ResolveRedirect(ctx, href); err == nil && final != "" {
				return final
			}
		}
		return href
	case !strings.HasPrefix(href, "http"):
		return e.origin + href
	default:
		return href
	}
}
