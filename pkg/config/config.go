package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds everything loaded at startup. All credentials are optional:
// without an LLM key the summarizer falls back to deterministic formatting,
// and without a SerpAPI key the free DuckDuckGo scrape is used.
type Config struct {
	LLM    LLMConfig    `yaml:"llm"`
	Search SearchConfig `yaml:"search"`
	Log    LogConfig    `yaml:"log"`
}

// LLMConfig configures the chat model used for section summaries.
type LLMConfig struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
}

// SearchConfig selects and configures the search source.
type SearchConfig struct {
	// Provider forces a source ("serpapi" or "duckduckgo"). Empty means
	// auto: serpapi when a key is present, duckduckgo otherwise.
	Provider   string           `yaml:"provider"`
	SerpAPI    SerpAPIConfig    `yaml:"serpapi"`
	DuckDuckGo DuckDuckGoConfig `yaml:"duckduckgo"`
}

// SerpAPIConfig configures the paid search API.
type SerpAPIConfig struct {
	APIKey string `yaml:"api_key"`
}

// DuckDuckGoConfig configures the free HTML-scraped source.
type DuckDuckGoConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout int    `yaml:"timeout"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Load reads the YAML config at path and applies environment overrides.
// A missing file is not an error; the tool can run from environment
// variables alone.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// defaults + environment only
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv("SERPAPI_KEY"); v != "" {
		c.Search.SerpAPI.APIKey = v
	}
}

func (c *Config) applyDefaults() {
	if c.LLM.Model == "" {
		c.LLM.Model = "gpt-4o-mini"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}
