// Package factory selects the search source from configuration, once, at
// construction time.
package factory

import (
	"fmt"

	"github.com/iWorld-y/company_radar/pkg/config"
	"github.com/iWorld-y/company_radar/pkg/duckduckgo"
	"github.com/iWorld-y/company_radar/pkg/search"
	"github.com/iWorld-y/company_radar/pkg/serpapi"
)

// NewSource picks the search source. With no explicit provider the SerpAPI
// key decides: key present means the paid API, otherwise the free DuckDuckGo
// scrape. The scrape path needs no credentials, so this never fails in auto
// mode.
func NewSource(cfg *config.Config) (search.Source, error) {
	provider := cfg.Search.Provider
	if provider == "" {
		if cfg.Search.SerpAPI.APIKey != "" {
			provider = "serpapi"
		} else {
			provider = "duckduckgo"
		}
	}

	switch provider {
	case "serpapi":
		if cfg.Search.SerpAPI.APIKey == "" {
			return nil, fmt.Errorf("serpapi api key is missing")
		}
		return serpapi.NewClient(cfg.Search.SerpAPI.APIKey), nil

	case "duckduckgo":
		return duckduckgo.NewClient(cfg.Search.DuckDuckGo.BaseURL, cfg.Search.DuckDuckGo.Timeout), nil

	default:
		return nil, fmt.Errorf("unknown search provider: %s", provider)
	}
}
