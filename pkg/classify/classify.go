// Package classify partitions a result set into the subsets feeding each
// output section. Classification is a flat keyword-membership test over
// title+snippet text: boolean substring containment, no stemming, no
// scoring, order preserved. Keyword sets are data so categories stay easy to
// extend and test.
package classify

import (
	"strings"

	"github.com/iWorld-y/company_radar/pkg/model"
)

// Category names one of the three section filters.
type Category string

const (
	CategoryTalent Category = "talent"
	CategoryNews   Category = "news"
	CategoryVision Category = "vision"
)

var (
	// TalentKeywords marks hiring / talent-profile results.
	TalentKeywords = []string{"인재상", "채용", "인재", "인사", "인재관"}
	// newsTitleMarkers mark news-like titles for results without a date.
	newsTitleMarkers = []string{"뉴스", "기사"}
	// VisionKeywords marks vision / strategy results, used when the news
	// subset came up empty.
	VisionKeywords = []string{"비전", "전략", "목표", "방향", "미래"}
)

// Filter returns the subset of results matching the category. The input
// order is preserved and duplicates are not resolved.
func Filter(results model.ResultSet, category Category) model.ResultSet {
	var out model.ResultSet
	for _, r := range results {
		if matches(r, category) {
			out = append(out, r)
		}
	}
	return out
}

func matches(r model.SearchResult, category Category) bool {
	haystack := strings.ToLower(r.Title + r.Snippet)
	switch category {
	case CategoryTalent:
		return containsAny(haystack, TalentKeywords)
	case CategoryNews:
		if r.Date != "" {
			return true
		}
		return containsAny(strings.ToLower(r.Title), newsTitleMarkers)
	case CategoryVision:
		return containsAny(haystack, VisionKeywords)
	default:
		return false
	}
}

func containsAny(haystack string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(haystack, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
