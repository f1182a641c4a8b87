package fixture

import (
	"context"
	"strings"
	"time"

	domaingames "gambling-buddy-service/internal/domain/games"
	"gambling-buddy-service/internal/domain/odds"
	"gambling-buddy-service/internal/domain/players"
	"gambling-buddy-service/internal/domain/stats"
	"gambling-buddy-service/internal/domain/teams"
	"gambling-buddy-service/internal/providers"
	"gambling-buddy-service/internal/timeutil"
)

// Source returns a static data set useful for local testing and bootstrapping
// without an upstream API key.
type Source struct {
	now func() time.Time
}

// New creates a fixture source with a time source.
func New() *Source {
	return &Source{
		now: time.Now,
	}
}

var _ providers.DataSource = (*Source)(nil)

func fixtureTeams() []teams.Team {
	return []teams.Team{
		{ID: 1, Name: "Celtics", FullName: "Boston Celtics", Abbreviation: "BOS", City: "Boston", Conference: "East", Division: "Atlantic"},
		{ID: 2, Name: "Lakers", FullName: "Los Angeles Lakers", Abbreviation: "LAL", City: "Los Angeles", Conference: "West", Division: "Pacific"},
		{ID: 3, Name: "Warriors", FullName: "Golden State Warriors", Abbreviation: "GSW", City: "San Francisco", Conference: "West", Division: "Pacific"},
		{ID: 4, Name: "Heat", FullName: "Miami Heat", Abbreviation: "MIA", City: "Miami", Conference: "East", Division: "Southeast"},
	}
}

func fixturePlayers() []players.Player {
	all := fixtureTeams()
	return []players.Player{
		{ID: 101, FirstName: "Jane", LastName: "Doe", Position: "G", Team: all[0]},
		{ID: 102, FirstName: "John", LastName: "Smith", Position: "F", Team: all[1]},
		{ID: 103, FirstName: "Jim", LastName: "Smith", Position: "C", Team: all[2]},
	}
}

// ListPlayers filters the static players by the search term, matching either
// name part case-insensitively.
func (s *Source) ListPlayers(ctx context.Context, query providers.PlayerQuery) ([]players.Player, providers.Meta, error) {
	_ = ctx
	result := make([]players.Player, 0)
	needle := strings.ToLower(query.Search)
	for _, p := range fixturePlayers() {
		if needle == "" ||
			strings.Contains(strings.ToLower(p.FirstName), needle) ||
			strings.Contains(strings.ToLower(p.LastName), needle) {
			result = append(result, p)
		}
	}
	return result, providers.Meta{}, nil
}

// GetPlayer returns the static player with the given id.
func (s *Source) GetPlayer(ctx context.Context, id int) (players.Player, error) {
	_ = ctx
	for _, p := range fixturePlayers() {
		if p.ID == id {
			return p, nil
		}
	}
	return players.Player{}, &providers.APIError{Source: "fixture", StatusCode: 404, Body: "player not found"}
}

// ListTeams returns the static team catalog.
func (s *Source) ListTeams(ctx context.Context) ([]teams.Team, error) {
	_ = ctx
	return fixtureTeams(), nil
}

// GetTeam returns the static team with the given id.
func (s *Source) GetTeam(ctx context.Context, id int) (teams.Team, error) {
	_ = ctx
	for _, t := range fixtureTeams() {
		if t.ID == id {
			return t, nil
		}
	}
	return teams.Team{}, &providers.APIError{Source: "fixture", StatusCode: 404, Body: "team not found"}
}

// ListGames returns two deterministic upcoming games, filtered by team ids
// when the query provides them.
func (s *Source) ListGames(ctx context.Context, query providers.GameQuery) ([]domaingames.Game, providers.Meta, error) {
	_ = ctx
	all := fixtureTeams()
	today := s.now()

	candidates := []domaingames.Game{
		{
			ID:          1001,
			Date:        timeutil.FormatDate(today.AddDate(0, 0, 1)),
			Status:      "Scheduled",
			Season:      timeutil.CurrentSeason(today),
			HomeTeam:    all[0],
			VisitorTeam: all[1],
		},
		{
			ID:          1002,
			Date:        timeutil.FormatDate(today.AddDate(0, 0, 3)),
			Status:      "Scheduled",
			Season:      timeutil.CurrentSeason(today),
			HomeTeam:    all[2],
			VisitorTeam: all[3],
		},
	}

	result := make([]domaingames.Game, 0, len(candidates))
	for _, g := range candidates {
		if len(query.TeamIDs) > 0 && !containsTeam(query.TeamIDs, g) {
			continue
		}
		if len(query.Dates) > 0 && !containsString(query.Dates, g.Day()) {
			continue
		}
		result = append(result, g)
	}
	return result, providers.Meta{}, nil
}

// GetGame returns the static game with the given id.
func (s *Source) GetGame(ctx context.Context, id int) (domaingames.Game, error) {
	games, _, err := s.ListGames(ctx, providers.GameQuery{})
	if err != nil {
		return domaingames.Game{}, err
	}
	for _, g := range games {
		if g.ID == id {
			return g, nil
		}
	}
	return domaingames.Game{}, &providers.APIError{Source: "fixture", StatusCode: 404, Body: "game not found"}
}

// ListStats returns five recent stat lines per requested player, newest last
// so callers exercise their own ordering.
func (s *Source) ListStats(ctx context.Context, query providers.StatQuery) ([]stats.StatLine, providers.Meta, error) {
	_ = ctx
	points := []int{24, 31, 18, 27, 22}
	fg := []float64{0.48, 0.52, 0.41, 0.5, 0.44}

	result := make([]stats.StatLine, 0)
	for _, playerID := range query.PlayerIDs {
		player, err := s.GetPlayer(ctx, playerID)
		if err != nil {
			continue
		}
		for i := range points {
			pct := fg[i]
			line := stats.StatLine{
				ID:       playerID*10 + i,
				Player:   player,
				Points:   points[i],
				Rebounds: 5 + i,
				Assists:  4 + i%3,
				FgPct:    &pct,
				Game: domaingames.Game{
					ID:   2000 + i,
					Date: timeutil.FormatDate(s.now().AddDate(0, 0, -(len(points) - i))),
				},
			}
			result = append(result, line)
		}
	}
	return result, providers.Meta{}, nil
}

// ListLineups returns starters for the static games.
func (s *Source) ListLineups(ctx context.Context, query providers.LineupQuery) ([]domaingames.LineupEntry, providers.Meta, error) {
	_ = ctx
	result := make([]domaingames.LineupEntry, 0)
	for _, gameID := range query.GameIDs {
		for i, p := range fixturePlayers() {
			result = append(result, domaingames.LineupEntry{
				ID:       gameID*10 + i,
				GameID:   gameID,
				TeamID:   p.Team.ID,
				PlayerID: p.ID,
				Position: p.Position,
				Starter:  true,
			})
		}
	}
	return result, providers.Meta{}, nil
}

// ListOdds returns two vendors' quotes for the first static game.
func (s *Source) ListOdds(ctx context.Context, dates []string) ([]odds.Quote, error) {
	_ = ctx
	_ = dates
	homeA, awayA := -150, 130
	homeB, awayB := -145, 125
	return []odds.Quote{
		{Vendor: "BookA", GameID: 1001, MoneylineHome: &homeA, MoneylineAway: &awayA},
		{Vendor: "BookB", GameID: 1001, MoneylineHome: &homeB, MoneylineAway: &awayB},
	}, nil
}

func containsTeam(ids []int, g domaingames.Game) bool {
	for _, id := range ids {
		if g.HomeTeam.ID == id || g.VisitorTeam.ID == id {
			return true
		}
	}
	return false
}

func containsString(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
