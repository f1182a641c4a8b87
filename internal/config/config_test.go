package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	// Empty values count as unset.
	for _, key := range []string{envPort, envDataSource, envBdlBaseURL, envBdlOddsURL, envBdlTimeout, envOpenAIModel, envOpenAIMaxTokens, envMetricsOn} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.DataSource != defaultDataSource {
		t.Fatalf("expected default data source, got %s", cfg.DataSource)
	}
	if cfg.Balldontlie.BaseURL != defaultBdlBaseURL {
		t.Fatalf("unexpected base url: %s", cfg.Balldontlie.BaseURL)
	}
	if cfg.Balldontlie.OddsURL != defaultBdlOddsURL {
		t.Fatalf("unexpected odds url: %s", cfg.Balldontlie.OddsURL)
	}
	if cfg.Balldontlie.Timeout != defaultBdlTimeout {
		t.Fatalf("unexpected timeout: %v", cfg.Balldontlie.Timeout)
	}
	if cfg.OpenAI.Model != defaultOpenAIModel {
		t.Fatalf("unexpected model: %s", cfg.OpenAI.Model)
	}
	if cfg.OpenAI.MaxTokens != defaultOpenAIMaxTokens {
		t.Fatalf("unexpected max tokens: %d", cfg.OpenAI.MaxTokens)
	}
	if !cfg.Metrics.Enabled {
		t.Fatal("expected metrics enabled by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "9999")
	t.Setenv(envDataSource, "fixture")
	t.Setenv(envBdlAPIKey, "bdl-key")
	t.Setenv(envBdlTimeout, "5s")
	t.Setenv(envOpenAIKey, "openai-key")
	t.Setenv(envOpenAIModel, "gpt-4o-mini")
	t.Setenv(envOpenAIMaxTokens, "500")

	cfg := Load()

	if cfg.Port != "9999" {
		t.Fatalf("expected overridden port, got %s", cfg.Port)
	}
	if cfg.DataSource != "fixture" {
		t.Fatalf("expected fixture source, got %s", cfg.DataSource)
	}
	if cfg.Balldontlie.APIKey != "bdl-key" {
		t.Fatalf("unexpected api key: %s", cfg.Balldontlie.APIKey)
	}
	if cfg.Balldontlie.Timeout != 5*time.Second {
		t.Fatalf("unexpected timeout: %v", cfg.Balldontlie.Timeout)
	}
	if cfg.OpenAI.APIKey != "openai-key" || cfg.OpenAI.Model != "gpt-4o-mini" || cfg.OpenAI.MaxTokens != 500 {
		t.Fatalf("unexpected openai config: %+v", cfg.OpenAI)
	}
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv(envOpenAIMaxTokens, "not-a-number")
	t.Setenv(envBdlTimeout, "soon")

	cfg := Load()

	if cfg.OpenAI.MaxTokens != defaultOpenAIMaxTokens {
		t.Fatalf("expected default max tokens on parse failure, got %d", cfg.OpenAI.MaxTokens)
	}
	if cfg.Balldontlie.Timeout != defaultBdlTimeout {
		t.Fatalf("expected default timeout on parse failure, got %v", cfg.Balldontlie.Timeout)
	}
}

func TestValidateRequiresOpenAIKey(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate(); !errors.Is(err, ErrMissingOpenAIKey) {
		t.Fatalf("expected missing-key error, got %v", err)
	}

	cfg.OpenAI.APIKey = "present"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}
