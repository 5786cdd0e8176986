// Package website reads a company homepage into a capped plain-text excerpt.
// Homepage content is optional context for the summarizer, never a hard
// dependency: every failure path returns ok=false instead of an error.
package website

import (
	"bytes"
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"github.com/iWorld-y/company_radar/pkg/fetch"
	"github.com/iWorld-y/company_radar/pkg/logger"
)

// maxContentLength caps the excerpt handed to the summarizer.
const maxContentLength = 5000

// Reader fetches and cleans homepage content.
type Reader struct {
	fetcher *fetch.Client
}

// NewReader creates a homepage reader with the default page timeout.
func NewReader() *Reader {
	return &Reader{fetcher: fetch.New(fetch.PageTimeout)}
}

// Read returns up to maxContentLength characters of visible page text.
// Readability extraction is tried first; pages it cannot handle fall back to
// stripping non-content markup and collecting what remains.
func (r *Reader) Read(ctx context.Context, rawURL string) (string, bool) {
	body, err := r.fetcher.Get(ctx, rawURL)
	if err != nil {
		logger.Log.Warnf("웹사이트 크롤링 오류 [%s]: %v", rawURL, err)
		return "", false
	}

	pageURL, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}

	if article, err := readability.FromReader(bytes.NewReader(body), pageURL); err == nil {
		if text := collapseWhitespace(article.TextContent); text != "" {
			return truncate(text), true
		}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		logger.Log.Warnf("웹사이트 파싱 오류 [%s]: %v", rawURL, err)
		return "", false
	}
	doc.Find("script, style, nav, footer, header").Remove()

	text := collapseWhitespace(doc.Find("body").Text())
	if text == "" {
		return "", false
	}
	return truncate(text), true
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncate slices by rune so a multi-byte Hangul character is never split.
func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= maxContentLength {
		return s
	}
	return string(runes[:maxContentLength])
}
