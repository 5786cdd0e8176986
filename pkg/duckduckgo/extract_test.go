package duckduckgo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeResolver struct {
	resolved string
	err      error
	gotURL   string
}

func (f *fakeResolver) ResolveRedirect(_ context.Context, url string) (string, error) {
	f.gotURL = url
	return f.resolved, f.err
}

const serpFixture = `<html><body>
<div class="serp">
  <div class="result">
    <a class="result__a" href="https://alpha.example.com/about">알파 주식회사 소개</a>
    <a class="result__snippet">알파는 소프트웨어 개발 전문 기업입니다.</a>
  </div>
  <div class="result">
    <a class="result__a" href="/about">베타 회사 채용</a>
    <div class="result__snippet">베타의 인재상을 소개합니다.</div>
  </div>
  <div class="result">
    <span>제목 없는 블록</span>
  </div>
  <div class="result">
    <a class="result__a" href="/l/?kh=1&amp;uddg=https%3A%2F%2Fgamma.example.com">감마 뉴스</a>
    <span class="result__snippet">감마의 최근 소식.</span>
    <span class="result__date">2024-05-01</span>
  </div>
</div>
</body></html>`

func TestExtractStrategyA(t *testing.T) {
	ext := &extractor{origin: "https://duckduckgo.com", resolver: &fakeResolver{err: errors.New("no network")}}

	results, err := ext.extract(context.Background(), []byte(serpFixture), 5, false)
	require.NoError(t, err)
	// four candidate blocks, one skipped for having no title
	require.Len(t, results, 3)
	for _, r := range results {
		require.NotEmpty(t, r.Title)
	}

	require.Equal(t, "알파 주식회사 소개", results[0].Title)
	require.Equal(t, "알파는 소프트웨어 개발 전문 기업입니다.", results[0].Snippet)
	require.Equal(t, "https://alpha.example.com/about", results[0].Link)

	// relative href gets the source domain prefixed
	require.Equal(t, "https://duckduckgo.com/about", results[1].Link)

	// no date field outside news mode
	require.Empty(t, results[2].Date)
}

func TestExtractNewsModeKeepsDate(t *testing.T) {
	ext := &extractor{origin: "https://duckduckgo.com", resolver: &fakeResolver{err: errors.New("no network")}}

	results, err := ext.extract(context.Background(), []byte(serpFixture), 5, true)
	require.NoError(t, err)
	require.Len(t, results, 3)
	require.Equal(t, "2024-05-01", results[2].Date)
	require.Empty(t, results[0].Date)
}

func TestExtractWrappedLinkKeptOnResolveFailure(t *testing.T) {
	resolver := &fakeResolver{err: errors.New("timeout")}
	ext := &extractor{origin: "https://duckduckgo.com", resolver: resolver}

	results, err := ext.extract(context.Background(), []byte(serpFixture), 5, false)
	require.NoError(t, err)
	link := results[2].Link
	require.True(t, strings.HasPrefix(link, "https://duckduckgo.com/l/?"), "got %q", link)
	require.Equal(t, link, resolver.gotURL)
}

func TestExtractWrappedLinkResolved(t *testing.T) {
	resolver := &fakeResolver{resolved: "https://gamma.example.com/news"}
	ext := &extractor{origin: "https://duckduckgo.com", resolver: resolver}

	results, err := ext.extract(context.Background(), []byte(serpFixture), 5, false)
	require.NoError(t, err)
	require.Equal(t, "https://gamma.example.com/news", results[2].Link)
}

func TestExtractFallsBackToPermissiveStrategy(t *testing.T) {
	// no div.result / div.web-result blocks, only a class containing "result"
	fixture := `<html><body>
	<div class="links_result">
	  <a href="https://delta.example.com">델타 시스템</a>
	  <p class="result__snippet">델타는 보안 솔루션 회사입니다.</p>
	</div>
	<div class="links_result">
	  <a href="https://epsilon.example.com">엡실론</a>
	</div>
	</body></html>`

	ext := &extractor{origin: "https://duckduckgo.com"}
	results, err := ext.extract(context.Background(), []byte(fixture), 5, false)
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, "델타 시스템", results[0].Title)
	require.Equal(t, "델타는 보안 솔루션 회사입니다.", results[0].Snippet)
}

func TestExtractStopsAtMaxResults(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("<html><body>")
	for i := 0; i < 7; i++ {
		fmt.Fprintf(&sb, `<div class="result"><a class="result__a" href="https://example.com/%d">결과 %d</a></div>`, i, i)
	}
	sb.WriteString("</body></html>")

	ext := &extractor{origin: "https://duckduckgo.com"}
	results, err := ext.extract(context.Background(), []byte(sb.String()), 5, false)
	require.NoError(t, err)
	require.Len(t, results, 5)
}

func TestExtractEmptyDocument(t *testing.T) {
	ext := &extractor{origin: "https://duckduckgo.com"}
	results, err := ext.extract(context.Background(), []byte("<html><body></body></html>"), 5, false)
	require.NoError(t, err)
	require.Empty(t, results)
}
