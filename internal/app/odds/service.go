package odds

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	domaingames "gambling-buddy-service/internal/domain/games"
	domainodds "gambling-buddy-service/internal/domain/odds"
	"gambling-buddy-service/internal/logging"
	"gambling-buddy-service/internal/oddsmath"
	"gambling-buddy-service/internal/providers"
	"gambling-buddy-service/internal/timeutil"
)

const listPerPage = 100

// BestLine is a vendor's best moneyline for one side of a game.
// OK is false when no vendor priced that side.
type BestLine struct {
	Vendor string
	Odds   int
	OK     bool
}

// BestMoneyline returns the vendor and moneyline with the highest numeric
// value for the requested side, skipping quotes that do not price it.
// "Highest numeric value" is a modeling simplification carried from the
// source: it does not invert stake direction for favorites.
func BestMoneyline(quotes []domainodds.Quote, side domainodds.Side) BestLine {
	best := BestLine{}
	for _, q := range quotes {
		line := q.Moneyline(side)
		if line == nil {
			continue
		}
		if !best.OK || *line > best.Odds {
			best = BestLine{Vendor: q.Vendor, Odds: *line, OK: true}
		}
	}
	return best
}

// Source is the slice of the data source the comparator needs.
type Source interface {
	ListGames(ctx context.Context, query providers.GameQuery) ([]domaingames.Game, providers.Meta, error)
	ListOdds(ctx context.Context, dates []string) ([]domainodds.Quote, error)
}

// Service compares moneylines across vendors for a day's games.
type Service struct {
	source Source
	logger *slog.Logger
	now    func() time.Time
}

// NewService constructs an odds Service.
func NewService(source Source, logger *slog.Logger) *Service {
	return &Service{
		source: source,
		logger: logger,
		now:    time.Now,
	}
}

// EdgeReport renders a plain-text comparison of the best moneyline per side
// for each of the date's games, with implied probabilities and a naive
// edge = max(0, 1 - combined implied probability). Not an arbitrage finder.
func (s *Service) EdgeReport(ctx context.Context, date string) (string, error) {
	if date == "" {
		date = timeutil.FormatDate(s.now())
	}

	games, _, err := s.source.ListGames(ctx, providers.GameQuery{Dates: []string{date}, PerPage: listPerPage})
	if err != nil {
		return "", err
	}
	gamesByID := make(map[int]domaingames.Game, len(games))
	for _, g := range games {
		gamesByID[g.ID] = g
	}

	quotes, err := s.source.ListOdds(ctx, []string{date})
	if err != nil {
		return "", err
	}

	quotesByGame := make(map[int][]domainodds.Quote)
	for _, q := range quotes {
		quotesByGame[q.GameID] = append(quotesByGame[q.GameID], q)
	}

	gameIDs := make([]int, 0, len(quotesByGame))
	for id := range quotesByGame {
		if _, ok := gamesByID[id]; ok {
			gameIDs = append(gameIDs, id)
		}
	}
	sort.Ints(gameIDs)

	var b strings.Builder
	fmt.Fprintf(&b, "Odds comparison for %s\n", date)

	matched := 0
	for _, id := range gameIDs {
		game := gamesByID[id]
		gameQuotes := quotesByGame[id]

		home := BestMoneyline(gameQuotes, domainodds.SideHome)
		away := BestMoneyline(gameQuotes, domainodds.SideAway)
		if !home.OK || !away.OK {
			continue
		}

		homeProb, err := oddsmath.AmericanToImpliedProbability(home.Odds)
		if err != nil {
			logging.Warn(s.logger, "skipping game with invalid odds", "game_id", id, "error", err)
			continue
		}
		awayProb, err := oddsmath.AmericanToImpliedProbability(away.Odds)
		if err != nil {
			logging.Warn(s.logger, "skipping game with invalid odds", "game_id", id, "error", err)
			continue
		}

		edge := 1 - (homeProb + awayProb)
		if edge < 0 {
			edge = 0
		}

		matched++
		fmt.Fprintf(&b, "\n%s @ %s\n", game.VisitorTeam.Abbreviation, game.HomeTeam.Abbreviation)
		fmt.Fprintf(&b, "%s: %+d at %s (%.1f%%)\n", game.HomeTeam.Abbreviation, home.Odds, home.Vendor, homeProb*100)
		fmt.Fprintf(&b, "%s: %+d at %s (%.1f%%)\n", game.VisitorTeam.Abbreviation, away.Odds, away.Vendor, awayProb*100)
		fmt.Fprintf(&b, "Potential edge: %.1f%%\n", edge*100)
	}

	if matched == 0 {
		return fmt.Sprintf("No odds available for %s.", date), nil
	}
	return strings.TrimRight(b.String(), "\n"), nil
}
