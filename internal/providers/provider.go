package providers

import (
	"context"

	domaingames "gambling-buddy-service/internal/domain/games"
	"gambling-buddy-service/internal/domain/odds"
	"gambling-buddy-service/internal/domain/players"
	"gambling-buddy-service/internal/domain/stats"
	"gambling-buddy-service/internal/domain/teams"
)

// Meta carries pagination state from upstream list responses.
// NextPage is zero when there are no further pages.
type Meta struct {
	NextPage int
}

// PlayerQuery filters a player listing. Zero-valued fields are omitted.
type PlayerQuery struct {
	Search  string
	TeamIDs []int
	Page    int
	PerPage int
}

// GameQuery filters a game listing. Zero-valued fields are omitted.
type GameQuery struct {
	Dates   []string
	Seasons []int
	TeamIDs []int
	Page    int
	PerPage int
}

// StatQuery filters a stat-line listing. Zero-valued fields are omitted.
type StatQuery struct {
	PlayerIDs []int
	GameIDs   []int
	Seasons   []int
	Page      int
	PerPage   int
}

// LineupQuery filters a lineup listing.
type LineupQuery struct {
	GameIDs []int
	Page    int
	PerPage int
}

// PlayerSource fetches normalized players.
type PlayerSource interface {
	ListPlayers(ctx context.Context, query PlayerQuery) ([]players.Player, Meta, error)
	GetPlayer(ctx context.Context, id int) (players.Player, error)
}

// TeamSource fetches normalized teams. The upstream team catalog fits in a
// single page, so ListTeams is unpaginated.
type TeamSource interface {
	ListTeams(ctx context.Context) ([]teams.Team, error)
	GetTeam(ctx context.Context, id int) (teams.Team, error)
}

// GameSource fetches normalized games.
type GameSource interface {
	ListGames(ctx context.Context, query GameQuery) ([]domaingames.Game, Meta, error)
	GetGame(ctx context.Context, id int) (domaingames.Game, error)
}

// StatSource fetches normalized box-score stat lines.
type StatSource interface {
	ListStats(ctx context.Context, query StatQuery) ([]stats.StatLine, Meta, error)
	ListLineups(ctx context.Context, query LineupQuery) ([]domaingames.LineupEntry, Meta, error)
}

// OddsSource fetches per-vendor moneyline quotes.
type OddsSource interface {
	ListOdds(ctx context.Context, dates []string) ([]odds.Quote, error)
}

// DataSource combines all data-source capabilities.
type DataSource interface {
	PlayerSource
	TeamSource
	GameSource
	StatSource
	OddsSource
}
