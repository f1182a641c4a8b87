package server

import (
	"log/slog"
	"strings"

	"gambling-buddy-service/internal/config"
	"gambling-buddy-service/internal/logging"
	"gambling-buddy-service/internal/metrics"
	"gambling-buddy-service/internal/providers"
	"gambling-buddy-service/internal/providers/balldontlie"
	"gambling-buddy-service/internal/providers/fixture"
)

// selectSource picks the sports-data backend by configured name. Unrecognized
// names fall back to the live balldontlie client after a warning.
func selectSource(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) providers.DataSource {
	name := strings.ToLower(strings.TrimSpace(cfg.DataSource))
	switch name {
	case "fixture":
		return fixture.New()
	case "", "balldontlie":
	default:
		logging.Warn(logger, "unknown data source, using balldontlie", logging.FieldProvider, name)
	}

	return balldontlie.NewClient(balldontlie.Config{
		BaseURL: cfg.Balldontlie.BaseURL,
		OddsURL: cfg.Balldontlie.OddsURL,
		APIKey:  cfg.Balldontlie.APIKey,
		Timeout: cfg.Balldontlie.Timeout,
		Metrics: recorder,
	})
}
