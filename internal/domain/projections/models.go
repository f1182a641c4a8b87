package projections

// Stat keys present in every projection's Averages map.
const (
	StatPoints   = "pts"
	StatRebounds = "reb"
	StatAssists  = "ast"
	StatFgPct    = "fg_pct"
	StatFg3Pct   = "fg3_pct"
	StatFtPct    = "ft_pct"
)

// StatKeys lists the fixed schema of a projection, in display order.
var StatKeys = []string{StatPoints, StatRebounds, StatAssists, StatFgPct, StatFg3Pct, StatFtPct}

// Projection is a derived rolling average over a player's most recent games.
// Values are rounded to 2 decimal places. Never persisted; recomputed per request.
type Projection struct {
	PlayerName string             `json:"playerName"`
	Team       string             `json:"team"`
	Games      int                `json:"games"`
	Averages   map[string]float64 `json:"averages"`
}
