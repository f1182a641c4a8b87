package config

import "time"

const (
	envBdlBaseURL = "BALLDONTLIE_BASE_URL"
	envBdlOddsURL = "BALLDONTLIE_ODDS_URL"
	envBdlAPIKey  = "BALLDONTLIE_API_KEY"
	envBdlTimeout = "BALLDONTLIE_TIMEOUT"

	defaultBdlBaseURL = "https://api.balldontlie.io/v1"
	defaultBdlOddsURL = "https://api.balldontlie.io/nba/v2"
	defaultBdlTimeout = 30 * time.Second
)

// BalldontlieConfig controls how we talk to the balldontlie API.
type BalldontlieConfig struct {
	BaseURL string
	OddsURL string
	APIKey  string
	Timeout time.Duration
}

func loadBalldontlie() BalldontlieConfig {
	return BalldontlieConfig{
		BaseURL: envOrDefault(envBdlBaseURL, defaultBdlBaseURL),
		OddsURL: envOrDefault(envBdlOddsURL, defaultBdlOddsURL),
		APIKey:  envOrDefault(envBdlAPIKey, ""),
		Timeout: durationEnvOrDefault(envBdlTimeout, defaultBdlTimeout),
	}
}
