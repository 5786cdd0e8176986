package factory

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iWorld-y/company_radar/pkg/config"
	"github.com/iWorld-y/company_radar/pkg/duckduckgo"
	"github.com/iWorld-y/company_radar/pkg/serpapi"
)

func TestAutoSelectsSerpAPIWhenKeyPresent(t *testing.T) {
	cfg := &config.Config{}
	cfg.Search.SerpAPI.APIKey = "key"

	src, err := NewSource(cfg)
	require.NoError(t, err)
	require.IsType(t, &serpapi.Client{}, src)
}

func TestAutoFallsBackToDuckDuckGo(t *testing.T) {
	src, err := NewSource(&config.Config{})
	require.NoError(t, err)
	require.IsType(t, &duckduckgo.Client{}, src)
}

func TestExplicitSerpAPIWithoutKey(t *testing.T) {
	cfg := &config.Config{}
	cfg.Search.Provider = "serpapi"

	_, err := NewSource(cfg)
	require.Error(t, err)
}

func TestUnknownProvider(t *testing.T) {
	cfg := &config.Config{}
	cfg.Search.Provider = "bing"

	_, err := NewSource(cfg)
	require.Error(t, err)
}
