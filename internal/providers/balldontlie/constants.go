package balldontlie

import "time"

const (
	sourceName = "balldontlie"

	defaultBaseURL     = "https://api.balldontlie.io/v1"
	defaultOddsURL     = "https://api.balldontlie.io/nba/v2"
	defaultPerPage     = 25
	defaultHTTPTimeout = 30 * time.Second
)
