package games

// LineupEntry is one player's slot in a game lineup.
type LineupEntry struct {
	ID       int    `json:"id"`
	GameID   int    `json:"gameId"`
	TeamID   int    `json:"teamId"`
	PlayerID int    `json:"playerId"`
	Position string `json:"position"`
	Starter  bool   `json:"starter"`
}
