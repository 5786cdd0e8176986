package summarize

import (
	"context"

	"github.com/iWorld-y/company_radar/pkg/model"
)

// Renderer produces the text of one section. Two implementations exist:
// ModelRenderer (chat model) and FallbackRenderer (deterministic formatting
// of the raw results). The variant is chosen once at construction and held
// immutably; it is never re-evaluated per request. Both return plain text
// only; a failed model call yields a diagnostic string, not an error.
type Renderer interface {
	Overview(ctx context.Context, companyName string, results model.ResultSet, siteContent string) string
	TalentProfile(ctx context.Context, companyName string, results model.ResultSet, siteContent string) string
	RecentVision(ctx context.Context, companyName string, results model.ResultSet) string
}

func topN(results model.ResultSet, n int) model.ResultSet {
	if len(results) > n {
		return results[:n]
	}
	return results
}

// truncateRunes cuts at a rune boundary so Hangul text stays intact.
func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
