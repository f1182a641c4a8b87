package roster

import (
	"context"
	"log/slog"
	"strings"

	"gambling-buddy-service/internal/domain/players"
	"gambling-buddy-service/internal/domain/teams"
	"gambling-buddy-service/internal/logging"
	"gambling-buddy-service/internal/providers"
)

const searchPerPage = 25

// Catalog is the slice of the data source the resolver needs.
type Catalog interface {
	ListPlayers(ctx context.Context, query providers.PlayerQuery) ([]players.Player, providers.Meta, error)
	ListTeams(ctx context.Context) ([]teams.Team, error)
}

// Resolver turns free-text player and team names into canonical records.
type Resolver struct {
	catalog Catalog
	logger  *slog.Logger
}

// NewResolver constructs a Resolver with the provided catalog.
func NewResolver(catalog Catalog, logger *slog.Logger) *Resolver {
	return &Resolver{
		catalog: catalog,
		logger:  logger,
	}
}

// PlayerResult reports how a player lookup ended.
type PlayerResult struct {
	Player  players.Player
	Outcome Outcome
	Err     error
}

// Found reports whether the lookup produced a player.
func (r PlayerResult) Found() bool {
	return r.Outcome == OutcomeFound
}

// TeamResult reports how a team lookup ended.
type TeamResult struct {
	Team    teams.Team
	Outcome Outcome
	Err     error
}

// Found reports whether the lookup produced a team.
func (r TeamResult) Found() bool {
	return r.Outcome == OutcomeFound
}

// ResolvePlayer resolves a free-text player name.
//
// A name without whitespace is searched as-is and the first result wins, even
// when several players share the surname. A name with whitespace is split into
// first name and remainder; the search uses only the last-name portion (the
// upstream full-text search misses on full names), and candidates must then
// match both name parts case-insensitively.
//
// Upstream failures come back as OutcomeFailed so callers can tell an outage
// from a genuinely unknown player, though most treat the two alike.
func (r *Resolver) ResolvePlayer(ctx context.Context, name string) PlayerResult {
	name = strings.TrimSpace(name)
	if name == "" {
		return PlayerResult{Outcome: OutcomeAbsent}
	}

	if !strings.Contains(name, " ") {
		candidates, _, err := r.catalog.ListPlayers(ctx, providers.PlayerQuery{Search: name, PerPage: searchPerPage})
		if err != nil {
			logging.Warn(r.logger, "player search failed", logging.FieldPlayer, name, "error", err)
			return PlayerResult{Outcome: OutcomeFailed, Err: err}
		}
		if len(candidates) == 0 {
			return PlayerResult{Outcome: OutcomeAbsent}
		}
		return PlayerResult{Player: candidates[0], Outcome: OutcomeFound}
	}

	parts := strings.SplitN(name, " ", 2)
	firstName, lastName := parts[0], strings.TrimSpace(parts[1])

	candidates, _, err := r.catalog.ListPlayers(ctx, providers.PlayerQuery{Search: lastName, PerPage: searchPerPage})
	if err != nil {
		logging.Warn(r.logger, "player search failed", logging.FieldPlayer, name, "error", err)
		return PlayerResult{Outcome: OutcomeFailed, Err: err}
	}

	for _, p := range candidates {
		if strings.EqualFold(p.FirstName, firstName) && strings.EqualFold(p.LastName, lastName) {
			return PlayerResult{Player: p, Outcome: OutcomeFound}
		}
	}
	return PlayerResult{Outcome: OutcomeAbsent}
}

// ResolveTeam resolves a free-text team name against the full catalog,
// returning the first team whose full name contains the input
// case-insensitively.
func (r *Resolver) ResolveTeam(ctx context.Context, name string) TeamResult {
	name = strings.TrimSpace(name)
	if name == "" {
		return TeamResult{Outcome: OutcomeAbsent}
	}

	catalog, err := r.catalog.ListTeams(ctx)
	if err != nil {
		logging.Warn(r.logger, "team catalog fetch failed", logging.FieldTeam, name, "error", err)
		return TeamResult{Outcome: OutcomeFailed, Err: err}
	}

	needle := strings.ToLower(name)
	for _, t := range catalog {
		if strings.Contains(strings.ToLower(t.FullName), needle) {
			return TeamResult{Team: t, Outcome: OutcomeFound}
		}
	}
	return TeamResult{Outcome: OutcomeAbsent}
}
