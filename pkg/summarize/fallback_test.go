package summarize

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/company_radar/pkg/model"
)

// 2 general results + 1 dated news result, none matching a talent keyword.
var fallbackFixture = model.ResultSet{
	{Title: "알파 주식회사 소개", Snippet: "소프트웨어 개발 전문 기업", Link: "https://alpha.example.com"},
	{Title: "알파 기술 블로그", Snippet: "개발 문화 이야기", Link: "https://blog.alpha.example.com"},
	{Title: "알파, 신제품 발표", Snippet: "차세대 플랫폼 공개", Link: "https://news.example.com/1", Date: "2024-05-01"},
}

func TestFallbackOverviewContainsGeneralTitles(t *testing.T) {
	r := &FallbackRenderer{}
	out := r.Overview(context.Background(), "알파", fallbackFixture, "")

	require.Contains(t, out, "=== 알파 회사 개요 ===")
	require.Contains(t, out, "알파 주식회사 소개")
	require.Contains(t, out, "알파 기술 블로그")
	require.Contains(t, out, "링크: https://alpha.example.com")
}

func TestFallbackOverviewEmptyInputs(t *testing.T) {
	r := &FallbackRenderer{}
	out := r.Overview(context.Background(), "알파", nil, "")
	require.Contains(t, out, "검색 결과를 찾을 수 없습니다")
}

func TestFallbackOverviewSitePreviewTruncated(t *testing.T) {
	long := make([]rune, 0, 3000)
	for i := 0; i < 3000; i++ {
		long = append(long, '가')
	}

	r := &FallbackRenderer{}
	out := r.Overview(context.Background(), "알파", nil, string(long))
	require.Contains(t, out, "【회사 홈페이지 내용】")
	require.Contains(t, out, "... (내용이 길어 일부만 표시됩니다)")
}

func TestFallbackTalentHintWhenNoKeywordMatches(t *testing.T) {
	r := &FallbackRenderer{}
	out := r.TalentProfile(context.Background(), "알파", fallbackFixture, "")

	require.Contains(t, out, "=== 알파 인재상 ===")
	require.Contains(t, out, "인재상 관련 검색 결과를 찾을 수 없습니다")
	require.Contains(t, out, "💡 팁:")
}

func TestFallbackTalentListsKeywordMatches(t *testing.T) {
	results := append(model.ResultSet{
		{Title: "알파 채용 공고", Snippet: "함께할 인재를 찾습니다", Link: "https://alpha.example.com/jobs"},
	}, fallbackFixture...)

	r := &FallbackRenderer{}
	out := r.TalentProfile(context.Background(), "알파", results, "")
	require.Contains(t, out, "【인재상 관련 검색 결과】")
	require.Contains(t, out, "알파 채용 공고")
	require.NotContains(t, out, "💡 팁:")
}

func TestFallbackVisionUsesDatedNews(t *testing.T) {
	r := &FallbackRenderer{}
	out := r.RecentVision(context.Background(), "알파", fallbackFixture)

	require.Contains(t, out, "=== 알파 최근 비전 및 전략 ===")
	require.Contains(t, out, "【최근 뉴스/기사】")
	require.Contains(t, out, "[2024-05-01] 알파, 신제품 발표")
	// general results do not leak into the news branch
	require.NotContains(t, out, "알파 기술 블로그")
}

func TestFallbackVisionFallsBackToGeneralResults(t *testing.T) {
	results := model.ResultSet{
		{Title: "알파 주식회사 소개", Snippet: "소프트웨어 개발 전문 기업"},
	}

	r := &FallbackRenderer{}
	out := r.RecentVision(context.Background(), "알파", results)
	require.Contains(t, out, "최근 비전/전략 관련 정보를 찾을 수 없습니다")
	require.Contains(t, out, "【일반 검색 결과】")
	require.Contains(t, out, "알파 주식회사 소개")
}

func TestFallbackRenderersAreDeterministic(t *testing.T) {
	r := &FallbackRenderer{}
	ctx := context.Background()

	require.Equal(t,
		r.Overview(ctx, "알파", fallbackFixture, "홈페이지 내용"),
		r.Overview(ctx, "알파", fallbackFixture, "홈페이지 내용"))
	require.Equal(t,
		r.TalentProfile(ctx, "알파", fallbackFixture, ""),
		r.TalentProfile(ctx, "알파", fallbackFixture, ""))
	require.Equal(t,
		r.RecentVision(ctx, "알파", fallbackFixture),
		r.RecentVision(ctx, "알파", fallbackFixture))
}
