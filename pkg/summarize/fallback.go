package summarize

import (
	"context"
	"fmt"
	"strings"

	"github.com/iWorld-y/company_radar/pkg/classify"
	"github.com/iWorld-y/company_radar/pkg/model"
)

// FallbackRenderer renders sections without any model call: header, numbered
// title/snippet/link entries, closing hint when a subset is empty. Output is
// a pure function of its inputs.
type FallbackRenderer struct{}

// Ensure FallbackRenderer implements Renderer
var _ Renderer = (*FallbackRenderer)(nil)

// Overview lists the top general results and a homepage preview.
func (f *FallbackRenderer) Overview(_ context.Context, companyName string, results model.ResultSet, siteContent string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "=== %s 회사 개요 ===\n\n", companyName)

	if len(results) == 0 && siteContent == "" {
		sb.WriteString("검색 결과를 찾을 수 없습니다. 회사 홈페이지 URL을 입력하시면 더 많은 정보를 얻을 수 있습니다.")
		return sb.String()
	}

	if len(results) > 0 {
		sb.WriteString("【검색 결과】\n\n")
		writeEntries(&sb, topN(results, 5), false)
	}

	if siteContent != "" {
		sb.WriteString("\n【회사 홈페이지 내용】\n\n")
		preview := truncateRunes(siteContent, 2000)
		if len([]rune(siteContent)) > 2000 {
			preview += "... (내용이 길어 일부만 표시됩니다)"
		}
		sb.WriteString(preview)
	}

	return sb.String()
}

// TalentProfile lists talent-keyword matches and any hiring-related homepage
// text, with a hint when neither exists.
func (f *FallbackRenderer) TalentProfile(_ context.Context, companyName string, results model.ResultSet, siteContent string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "=== %s 인재상 ===\n\n", companyName)

	talent := classify.Filter(results, classify.CategoryTalent)
	if len(talent) > 0 {
		sb.WriteString("【인재상 관련 검색 결과】\n\n")
		writeEntries(&sb, topN(talent, 5), false)
	} else {
		sb.WriteString("인재상 관련 검색 결과를 찾을 수 없습니다.\n\n")
	}

	siteRelevant := siteContent != "" &&
		(strings.Contains(siteContent, "인재상") || strings.Contains(siteContent, "채용"))
	if siteRelevant {
		sb.WriteString("\n【홈페이지 인재상 관련 내용】\n\n")
		var talentLines []string
		for _, line := range strings.Split(siteContent, "\n") {
			if strings.Contains(line, "인재상") || strings.Contains(line, "채용") || strings.Contains(line, "인재") {
				talentLines = append(talentLines, line)
			}
		}
		if len(talentLines) > 0 {
			if len(talentLines) > 10 {
				talentLines = talentLines[:10]
			}
			sb.WriteString(strings.Join(talentLines, "\n"))
		} else {
			sb.WriteString(truncateRunes(siteContent, 1000))
		}
	}

	if len(talent) == 0 && !siteRelevant {
		sb.WriteString("\n💡 팁: 회사 홈페이지의 채용 페이지나 인재상 페이지 URL을 입력하시면 더 정확한 정보를 얻을 수 있습니다.")
	}

	return sb.String()
}

// RecentVision lists dated news results, falling back to vision-keyword
// matches and then to plain general results.
func (f *FallbackRenderer) RecentVision(_ context.Context, companyName string, results model.ResultSet) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "=== %s 최근 비전 및 전략 ===\n\n", companyName)

	news := classify.Filter(results, classify.CategoryNews)
	if len(news) > 0 {
		sb.WriteString("【최근 뉴스/기사】\n\n")
		writeEntries(&sb, topN(news, 5), true)
		return sb.String()
	}

	vision := classify.Filter(results, classify.CategoryVision)
	if len(vision) > 0 {
		sb.WriteString("【비전/전략 관련 정보】\n\n")
		writeEntries(&sb, topN(vision, 5), false)
		return sb.String()
	}

	sb.WriteString("최근 비전/전략 관련 정보를 찾을 수 없습니다.\n\n")
	if len(results) > 0 {
		sb.WriteString("【일반 검색 결과】\n\n")
		writeEntries(&sb, topN(results, 3), false)
	}
	return sb.String()
}

// writeEntries renders numbered result blocks. Missing snippet/link fields
// are simply omitted; withDate prefixes the title with the (possibly
// unknown) publication date.
func writeEntries(sb *strings.Builder, results model.ResultSet, withDate bool) {
	for i, r := range results {
		if withDate {
			date := r.Date
			if date == "" {
				date = "날짜 미상"
			}
			fmt.Fprintf(sb, "%d. [%s] %s\n", i+1, date, r.Title)
		} else {
			fmt.Fprintf(sb, "%d. %s\n", i+1, r.Title)
		}
		if r.Snippet != "" {
			fmt.Fprintf(sb, "   %s\n", r.Snippet)
		}
		if r.Link != "" {
			fmt.Fprintf(sb, "   링크: %s\n", r.Link)
		}
		sb.WriteString("\n")
	}
}
