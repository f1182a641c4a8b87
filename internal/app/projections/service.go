package projections

import (
	"context"
	"log/slog"
	"math"
	"sort"

	"gambling-buddy-service/internal/app/roster"
	domainprojections "gambling-buddy-service/internal/domain/projections"
	"gambling-buddy-service/internal/domain/stats"
	"gambling-buddy-service/internal/logging"
	"gambling-buddy-service/internal/providers"
)

const (
	// DefaultLastN is the rolling window when a request does not specify one.
	DefaultLastN = 5

	// fetchPerPage over-fetches stat lines before client-side truncation so a
	// recency window is always available.
	fetchPerPage = 50
)

// StatSource is the slice of the data source the projection engine needs.
type StatSource interface {
	ListStats(ctx context.Context, query providers.StatQuery) ([]stats.StatLine, providers.Meta, error)
}

// Service computes rolling-average projections over a player's recent games.
type Service struct {
	resolver *roster.Resolver
	source   StatSource
	logger   *slog.Logger
}

// NewService constructs a projection Service.
func NewService(resolver *roster.Resolver, source StatSource, logger *slog.Logger) *Service {
	return &Service{
		resolver: resolver,
		source:   source,
		logger:   logger,
	}
}

// Result reports how a projection computation ended.
type Result struct {
	Projection domainprojections.Projection
	Outcome    roster.Outcome
	Err        error
}

// Found reports whether a projection was produced.
func (r Result) Found() bool {
	return r.Outcome == roster.OutcomeFound
}

// Compute resolves the player, fetches up to 50 most recent stat lines, keeps
// the lastN most recent by game date, and averages each statistic over the
// kept lines. Nil percentage fields contribute zero to the sum but still count
// in the denominator. When lastN exceeds the available lines, the average
// covers whatever is available; zero lines means no data.
func (s *Service) Compute(ctx context.Context, playerName string, lastN int) Result {
	if lastN <= 0 {
		lastN = DefaultLastN
	}

	resolved := s.resolver.ResolvePlayer(ctx, playerName)
	if !resolved.Found() {
		return Result{Outcome: resolved.Outcome, Err: resolved.Err}
	}
	player := resolved.Player

	lines, _, err := s.source.ListStats(ctx, providers.StatQuery{
		PlayerIDs: []int{player.ID},
		PerPage:   fetchPerPage,
	})
	if err != nil {
		logging.Warn(s.logger, "stat fetch failed", logging.FieldPlayer, playerName, "error", err)
		return Result{Outcome: roster.OutcomeFailed, Err: err}
	}
	if len(lines) == 0 {
		return Result{Outcome: roster.OutcomeAbsent}
	}

	// ISO-8601 dates compare correctly as strings.
	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Game.Date > lines[j].Game.Date
	})
	if len(lines) > lastN {
		lines = lines[:lastN]
	}

	totals := map[string]float64{}
	for _, line := range lines {
		totals[domainprojections.StatPoints] += float64(line.Points)
		totals[domainprojections.StatRebounds] += float64(line.Rebounds)
		totals[domainprojections.StatAssists] += float64(line.Assists)
		totals[domainprojections.StatFgPct] += pctOrZero(line.FgPct)
		totals[domainprojections.StatFg3Pct] += pctOrZero(line.Fg3Pct)
		totals[domainprojections.StatFtPct] += pctOrZero(line.FtPct)
	}

	count := float64(len(lines))
	averages := make(map[string]float64, len(totals))
	for stat, total := range totals {
		averages[stat] = round2(total / count)
	}

	return Result{
		Projection: domainprojections.Projection{
			PlayerName: player.FullName(),
			Team:       player.Team.FullName,
			Games:      len(lines),
			Averages:   averages,
		},
		Outcome: roster.OutcomeFound,
	}
}

func pctOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
