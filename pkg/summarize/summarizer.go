// Package summarize assembles the whole pipeline: aggregated search,
// optional homepage reading, keyword classification and section rendering.
package summarize

import (
	"context"
	"errors"
	"fmt"
	"strings"

	einoopenai "github.com/cloudwego/eino-ext/components/model/openai"
	"golang.org/x/time/rate"

	"github.com/iWorld-y/company_radar/pkg/config"
	"github.com/iWorld-y/company_radar/pkg/logger"
	"github.com/iWorld-y/company_radar/pkg/model"
	"github.com/iWorld-y/company_radar/pkg/search"
	"github.com/iWorld-y/company_radar/pkg/search/factory"
	"github.com/iWorld-y/company_radar/pkg/website"
)

// ErrEmptyCompanyName rejects a request before any I/O happens. It is the
// only error Summarize can return.
var ErrEmptyCompanyName = errors.New("회사 이름은 필수입니다")

// Searcher collects the result set for one company. *search.Aggregator
// satisfies it.
type Searcher interface {
	Search(ctx context.Context, companyName string) model.ResultSet
}

// SiteReader reads optional homepage content. *website.Reader satisfies it.
type SiteReader interface {
	Read(ctx context.Context, url string) (string, bool)
}

// CompanySummarizer produces the three company sections. All strategy
// decisions (search source, renderer variant) were made at construction;
// per-request state is limited to the ResultSet built for that request.
type CompanySummarizer struct {
	searcher Searcher
	site     SiteReader
	renderer Renderer
}

// New wires a summarizer from its parts.
func New(searcher Searcher, site SiteReader, renderer Renderer) *CompanySummarizer {
	return &CompanySummarizer{searcher: searcher, site: site, renderer: renderer}
}

// NewFromConfig builds the production summarizer: search source by SerpAPI
// key presence, model renderer when an OpenAI key is configured, fallback
// formatting otherwise.
func NewFromConfig(ctx context.Context, cfg *config.Config) (*CompanySummarizer, error) {
	source, err := factory.NewSource(cfg)
	if err != nil {
		return nil, fmt.Errorf("검색 소스 초기화 실패: %w", err)
	}

	var renderer Renderer = &FallbackRenderer{}
	if cfg.LLM.APIKey != "" {
		cm, err := einoopenai.NewChatModel(ctx, &einoopenai.ChatModelConfig{
			BaseURL: cfg.LLM.BaseURL,
			APIKey:  cfg.LLM.APIKey,
			Model:   cfg.LLM.Model,
		})
		if err != nil {
			return nil, fmt.Errorf("LLM 초기화 실패: %w", err)
		}
		renderer = NewModelRenderer(cm, rate.NewLimiter(rate.Limit(1), 1))
		logger.Log.Infof("요약 모드: OpenAI 모델 사용 (%s)", cfg.LLM.Model)
	} else {
		logger.Log.Info("요약 모드: OpenAI 키 없음, 검색 결과 포맷팅 사용")
	}

	return New(search.NewAggregator(source), website.NewReader(), renderer), nil
}

// Summarize runs one full request. companyURL may be empty. Apart from the
// empty-name rejection no failure escapes: every pipeline problem has
// already been converted into empty data or inline diagnostic text, so the
// three-field result is always returned.
func (s *CompanySummarizer) Summarize(ctx context.Context, companyName, companyURL string) (model.CompanySummaryResult, error) {
	companyName = strings.TrimSpace(companyName)
	if companyName == "" {
		return model.CompanySummaryResult{}, ErrEmptyCompanyName
	}

	results := s.searcher.Search(ctx, companyName)

	var siteContent string
	if companyURL != "" {
		if text, ok := s.site.Read(ctx, companyURL); ok {
			siteContent = text
		}
	}

	return model.CompanySummaryResult{
		Overview:      s.renderer.Overview(ctx, companyName, results, siteContent),
		TalentProfile: s.renderer.TalentProfile(ctx, companyName, results, siteContent),
		RecentVision:  s.renderer.RecentVision(ctx, companyName, results),
	}, nil
}
