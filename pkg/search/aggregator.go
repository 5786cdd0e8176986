package search

import (
	"context"
	"fmt"

	"github.com/iWorld-y/company_radar/pkg/logger"
	"github.com/iWorld-y/company_radar/pkg/model"
)

const (
	generalQueryLimit = 5
	newsQueryLimit    = 3
)

// Aggregator runs the two company queries against one source and merges the
// results into a single ordered set: general results first, then news
// results. A failing query is logged and contributes nothing; the other
// query still runs. Nothing is deduplicated or capped here.
type Aggregator struct {
	source Source
}

// NewAggregator wraps the given source.
func NewAggregator(source Source) *Aggregator {
	return &Aggregator{source: source}
}

// Search collects general and news results for the named company.
func (a *Aggregator) Search(ctx context.Context, companyName string) model.ResultSet {
	var results model.ResultSet

	logger.Log.Infof("[검색 시작] 회사명: %s (source=%s)", companyName, a.source.Name())

	general := &Request{
		Query:      fmt.Sprintf("%s 회사 소개 인재상", companyName),
		Topic:      TopicGeneral,
		MaxResults: generalQueryLimit,
	}
	if rs, err := a.source.Search(ctx, general); err != nil {
		logger.Log.Errorf("일반 검색 실패 [%s]: %v", companyName, err)
	} else {
		logger.Log.Infof("일반 검색 성공: %d개의 결과 수집", len(rs))
		results = append(results, rs...)
	}

	news := &Request{
		Query:      fmt.Sprintf("%s 최근 뉴스 비전 전략", companyName),
		Topic:      TopicNews,
		MaxResults: newsQueryLimit,
	}
	if rs, err := a.source.Search(ctx, news); err != nil {
		logger.Log.Errorf("뉴스 검색 실패 [%s]: %v", companyName, err)
	} else {
		logger.Log.Infof("뉴스 검색 성공: %d개의 결과 수집", len(rs))
		results = append(results, rs...)
	}

	logger.Log.Infof("[검색 완료] 총 %d개의 결과 수집됨", len(results))
	return results
}
