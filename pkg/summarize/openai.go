package summarize

import (
	"context"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"golang.org/x/time/rate"

	"github.com/iWorld-y/company_radar/pkg/classify"
	"github.com/iWorld-y/company_radar/pkg/logger"
	"github.com/iWorld-y/company_radar/pkg/model"
)

// ChatModel is the slice of the eino chat model the renderer needs.
// *openai.ChatModel satisfies it.
type ChatModel interface {
	Generate(ctx context.Context, input []*schema.Message, opts ...einomodel.Option) (*schema.Message, error)
}

const samplingTemperature float32 = 0.7

// Per-section output budgets.
const (
	overviewMaxTokens = 1000
	talentMaxTokens   = 800
	visionMaxTokens   = 1000
)

// ModelRenderer builds a section-specific Korean prompt from the collected
// results and asks the chat model for the section text. Call failures become
// categorized diagnostic strings (errors.go); callers never see an error
// from this path.
type ModelRenderer struct {
	cm      ChatModel
	limiter *rate.Limiter
}

// NewModelRenderer wraps a chat model. limiter may be nil.
func NewModelRenderer(cm ChatModel, limiter *rate.Limiter) *ModelRenderer {
	return &ModelRenderer{cm: cm, limiter: limiter}
}

// Ensure ModelRenderer implements Renderer
var _ Renderer = (*ModelRenderer)(nil)

// Overview summarizes the company from the top general results plus homepage
// content.
func (m *ModelRenderer) Overview(ctx context.Context, companyName string, results model.ResultSet, siteContent string) string {
	var info strings.Builder
	fmt.Fprintf(&info, "회사 이름: %s\n\n", companyName)

	if len(results) > 0 {
		info.WriteString("검색 결과:\n")
		for i, r := range topN(results, 5) {
			fmt.Fprintf(&info, "%d. %s\n   %s\n\n", i+1, r.Title, r.Snippet)
		}
	}
	if siteContent != "" {
		fmt.Fprintf(&info, "\n회사 홈페이지 내용 (일부):\n%s\n", truncateRunes(siteContent, 2000))
	}

	prompt := fmt.Sprintf(`다음 정보를 바탕으로 %s의 회사 개요를 한국어로 작성해주세요.
회사 개요에는 다음 내용이 포함되어야 합니다:
- 회사의 주요 사업 분야
- 회사의 규모와 위치
- 회사의 주요 제품/서비스
- 회사의 특징이나 강점

정보:
%s

회사 개요를 3-5문단으로 작성해주세요. 객관적이고 정확한 정보만 포함해주세요.`, companyName, info.String())

	return m.generate(ctx, "당신은 회사 정보를 분석하고 요약하는 전문가입니다.", prompt, "회사 개요", overviewMaxTokens)
}

// TalentProfile summarizes the hiring profile from talent-classified results
// and hiring-related homepage content.
func (m *ModelRenderer) TalentProfile(ctx context.Context, companyName string, results model.ResultSet, siteContent string) string {
	var info strings.Builder
	fmt.Fprintf(&info, "회사 이름: %s\n\n", companyName)

	talent := classify.Filter(results, classify.CategoryTalent)
	if len(talent) > 0 {
		info.WriteString("인재상 관련 정보:\n")
		for _, r := range topN(talent, 3) {
			fmt.Fprintf(&info, "- %s: %s\n", r.Title, r.Snippet)
		}
	}
	if siteContent != "" && (strings.Contains(siteContent, "인재상") || strings.Contains(siteContent, "채용")) {
		fmt.Fprintf(&info, "\n홈페이지 인재상 관련 내용:\n%s\n", truncateRunes(siteContent, 1500))
	}

	prompt := fmt.Sprintf(`다음 정보를 바탕으로 %s의 인재상과 인재상 키워드를 한국어로 작성해주세요.
인재상에는 다음 내용이 포함되어야 합니다:
- 회사가 선호하는 인재의 특성
- 인재상 키워드 (3-5개)
- 회사가 중시하는 가치관이나 역량

정보:
%s

인재상을 2-4문단으로 작성하고, 마지막에 "인재상 키워드: [키워드1, 키워드2, ...]" 형식으로 정리해주세요.`, companyName, info.String())

	return m.generate(ctx, "당신은 회사 인재상을 분석하는 전문가입니다.", prompt, "인재상", talentMaxTokens)
}

// RecentVision summarizes the recent vision and strategy from dated news
// results, or vision-keyword results when no news is available.
func (m *ModelRenderer) RecentVision(ctx context.Context, companyName string, results model.ResultSet) string {
	var info strings.Builder
	fmt.Fprintf(&info, "회사 이름: %s\n\n", companyName)

	news := classify.Filter(results, classify.CategoryNews)
	if len(news) > 0 {
		info.WriteString("최근 뉴스/기사:\n")
		for _, r := range topN(news, 5) {
			date := r.Date
			if date == "" {
				date = "날짜 미상"
			}
			fmt.Fprintf(&info, "- [%s] %s\n  %s\n\n", date, r.Title, r.Snippet)
		}
	} else if vision := classify.Filter(results, classify.CategoryVision); len(vision) > 0 {
		info.WriteString("비전/전략 관련 정보:\n")
		for _, r := range topN(vision, 3) {
			fmt.Fprintf(&info, "- %s: %s\n", r.Title, r.Snippet)
		}
	}

	prompt := fmt.Sprintf(`다음 정보를 바탕으로 %s의 최근 비전과 전략을 한국어로 작성해주세요.
최근 비전에는 다음 내용이 포함되어야 합니다:
- 회사의 최근 발표된 비전이나 목표
- 중장기 전략 방향
- 최근 주요 이슈나 변화

정보:
%s

최근 비전을 3-5문단으로 작성해주세요. 최근 뉴스나 기사를 기반으로 한 구체적인 내용을 포함해주세요.`, companyName, info.String())

	return m.generate(ctx, "당신은 회사 비전과 전략을 분석하는 전문가입니다.", prompt, "최근 비전", visionMaxTokens)
}

func (m *ModelRenderer) generate(ctx context.Context, systemRole, prompt, sectionName string, maxTokens int) string {
	if m.limiter != nil {
		if err := m.limiter.Wait(ctx); err != nil {
			return formatModelError(err, sectionName)
		}
	}

	messages := []*schema.Message{
		{Role: schema.System, Content: systemRole},
		{Role: schema.User, Content: prompt},
	}

	resp, err := m.cm.Generate(ctx, messages,
		einomodel.WithTemperature(samplingTemperature),
		einomodel.WithMaxTokens(maxTokens),
	)
	if err != nil {
		logger.Log.Errorf("%s 생성 실패: %v", sectionName, err)
		return formatModelError(err, sectionName)
	}

	return strings.TrimSpace(resp.Content)
}
