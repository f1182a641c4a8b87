package stats

import (
	"gambling-buddy-service/internal/domain/games"
	"gambling-buddy-service/internal/domain/players"
)

// StatLine is one player's recorded box-score statistics for one game.
// Percentage fields are pointers because the upstream API reports null when a
// player attempted no shots of that kind; aggregation treats nil as zero.
type StatLine struct {
	ID       int            `json:"id"`
	Player   players.Player `json:"player"`
	Game     games.Game     `json:"game"`
	Points   int            `json:"points"`
	Rebounds int            `json:"rebounds"`
	Assists  int            `json:"assists"`
	FgPct    *float64       `json:"fgPct"`
	Fg3Pct   *float64       `json:"fg3Pct"`
	FtPct    *float64       `json:"ftPct"`
}
