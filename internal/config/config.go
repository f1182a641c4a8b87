package config

import "errors"

// Config holds runtime configuration for the server.
type Config struct {
	Port        string
	DataSource  string
	Balldontlie BalldontlieConfig
	OpenAI      OpenAIConfig
	Metrics     MetricsConfig
}

// ErrMissingOpenAIKey is returned when the LLM credential is absent.
// The service cannot generate narratives without it, so startup must fail.
var ErrMissingOpenAIKey = errors.New("config: OPENAI_API_KEY is required")

// Load reads configuration from environment variables with sensible defaults.
// Call LoadEnvFiles first if .env files should be honored.
func Load() Config {
	return Config{
		Port:        envOrDefault(envPort, defaultPort),
		DataSource:  envOrDefault(envDataSource, defaultDataSource),
		Balldontlie: loadBalldontlie(),
		OpenAI:      loadOpenAI(),
		Metrics:     loadMetrics(),
	}
}

// Validate checks invariants that should stop the process at startup.
// A missing sports-data key is allowed (requests degrade to unauthenticated);
// a missing LLM key is fatal.
func (c Config) Validate() error {
	if c.OpenAI.APIKey == "" {
		return ErrMissingOpenAIKey
	}
	return nil
}
