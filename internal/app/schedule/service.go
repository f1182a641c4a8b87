package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"gambling-buddy-service/internal/app/roster"
	domaingames "gambling-buddy-service/internal/domain/games"
	"gambling-buddy-service/internal/domain/teams"
	"gambling-buddy-service/internal/logging"
	"gambling-buddy-service/internal/providers"
	"gambling-buddy-service/internal/timeutil"
)

const (
	// windowDays is the forward window scanned for a team's next game.
	windowDays = 7

	listPerPage = 100
)

// GameSource is the slice of the data source the schedule lookup needs.
type GameSource interface {
	ListGames(ctx context.Context, query providers.GameQuery) ([]domaingames.Game, providers.Meta, error)
}

// Service answers "when does this team play next" and "what games are on".
type Service struct {
	resolver *roster.Resolver
	source   GameSource
	logger   *slog.Logger
	now      func() time.Time
}

// NewService constructs a schedule Service.
func NewService(resolver *roster.Resolver, source GameSource, logger *slog.Logger) *Service {
	return &Service{
		resolver: resolver,
		source:   source,
		logger:   logger,
		now:      time.Now,
	}
}

// NextGameStatus distinguishes the ways a next-game lookup can end.
type NextGameStatus int

const (
	NextGameOK NextGameStatus = iota
	NextGameTeamNotFound
	NextGameNoneUpcoming
	NextGameLookupFailed
)

// NextGameResult carries the lookup outcome. Team is set for every status
// except NextGameTeamNotFound and NextGameLookupFailed.
type NextGameResult struct {
	Status NextGameStatus
	Team   teams.Team
	Game   domaingames.Game
	Err    error
}

// NextGame resolves the team and returns its earliest game inside the forward
// window. A team that resolves but has no games in the window yields
// NextGameNoneUpcoming, deliberately distinct from NextGameTeamNotFound.
func (s *Service) NextGame(ctx context.Context, teamName string) NextGameResult {
	resolved := s.resolver.ResolveTeam(ctx, teamName)
	if !resolved.Found() {
		if resolved.Outcome == roster.OutcomeFailed {
			return NextGameResult{Status: NextGameLookupFailed, Err: resolved.Err}
		}
		return NextGameResult{Status: NextGameTeamNotFound}
	}
	team := resolved.Team

	dates := timeutil.ForwardWindow(s.now(), windowDays)
	games, _, err := s.source.ListGames(ctx, providers.GameQuery{
		TeamIDs: []int{team.ID},
		Dates:   dates,
		PerPage: listPerPage,
	})
	if err != nil {
		logging.Warn(s.logger, "schedule fetch failed", logging.FieldTeam, team.FullName, "error", err)
		return NextGameResult{Status: NextGameLookupFailed, Team: team, Err: err}
	}
	if len(games) == 0 {
		return NextGameResult{Status: NextGameNoneUpcoming, Team: team}
	}

	sort.SliceStable(games, func(i, j int) bool {
		return games[i].Date < games[j].Date
	})
	return NextGameResult{Status: NextGameOK, Team: team, Game: games[0]}
}

// Summary formats a one-line next-game sentence, naming the opponent and
// whether the team plays at home or away. Only meaningful for NextGameOK.
func (r NextGameResult) Summary() string {
	opponent := r.Game.VisitorTeam
	location := "home"
	if r.Game.HomeTeam.ID != r.Team.ID {
		opponent = r.Game.HomeTeam
		location = "away"
	}
	return fmt.Sprintf("Next game: %s vs %s on %s (%s).", r.Team.FullName, opponent.FullName, r.Game.Day(), location)
}

// Describe collapses all non-success statuses into a could-not-find message
// rather than leaking a structured result.
func (s *Service) Describe(ctx context.Context, teamName string) string {
	result := s.NextGame(ctx, teamName)
	if result.Status != NextGameOK {
		return fmt.Sprintf("Could not find next game for: %s", teamName)
	}
	return result.Summary()
}

// GamesForWhen returns all league games for "today" or the coming week,
// following pagination to exhaustion and sorting ascending by date.
// Fetch failures propagate; there is no cached fallback.
func (s *Service) GamesForWhen(ctx context.Context, when string) ([]domaingames.Game, error) {
	dates := s.datesForWhen(when)

	var all []domaingames.Game
	page := 1
	for {
		games, meta, err := s.source.ListGames(ctx, providers.GameQuery{
			Dates:   dates,
			Page:    page,
			PerPage: listPerPage,
		})
		if err != nil {
			return nil, err
		}
		all = append(all, games...)

		if meta.NextPage == 0 {
			break
		}
		page = meta.NextPage
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Date < all[j].Date
	})
	return all, nil
}

// datesForWhen maps a loose phrase to a date list: anything mentioning
// "today" means today only, everything else means the next 7 days.
func (s *Service) datesForWhen(when string) []string {
	w := strings.ToLower(strings.TrimSpace(when))
	if strings.Contains(w, "today") {
		return []string{timeutil.FormatDate(s.now())}
	}
	return timeutil.ForwardWindow(s.now(), windowDays)
}
