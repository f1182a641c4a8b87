package testutil

import (
	"context"
	"errors"

	domaingames "gambling-buddy-service/internal/domain/games"
	"gambling-buddy-service/internal/domain/odds"
	"gambling-buddy-service/internal/domain/players"
	"gambling-buddy-service/internal/domain/stats"
	"gambling-buddy-service/internal/domain/teams"
	"gambling-buddy-service/internal/providers"
)

// ErrNotStubbed is returned by StubSource methods without an override.
var ErrNotStubbed = errors.New("testutil: method not stubbed")

// StubSource implements providers.DataSource with overridable functions.
// Methods without an override return ErrNotStubbed so tests fail loudly when
// they hit an unexpected call.
type StubSource struct {
	ListPlayersFn func(ctx context.Context, query providers.PlayerQuery) ([]players.Player, providers.Meta, error)
	GetPlayerFn   func(ctx context.Context, id int) (players.Player, error)
	ListTeamsFn   func(ctx context.Context) ([]teams.Team, error)
	GetTeamFn     func(ctx context.Context, id int) (teams.Team, error)
	ListGamesFn   func(ctx context.Context, query providers.GameQuery) ([]domaingames.Game, providers.Meta, error)
	GetGameFn     func(ctx context.Context, id int) (domaingames.Game, error)
	ListStatsFn   func(ctx context.Context, query providers.StatQuery) ([]stats.StatLine, providers.Meta, error)
	ListLineupsFn func(ctx context.Context, query providers.LineupQuery) ([]domaingames.LineupEntry, providers.Meta, error)
	ListOddsFn    func(ctx context.Context, dates []string) ([]odds.Quote, error)
}

func (s *StubSource) ListPlayers(ctx context.Context, query providers.PlayerQuery) ([]players.Player, providers.Meta, error) {
	if s.ListPlayersFn == nil {
		return nil, providers.Meta{}, ErrNotStubbed
	}
	return s.ListPlayersFn(ctx, query)
}

func (s *StubSource) GetPlayer(ctx context.Context, id int) (players.Player, error) {
	if s.GetPlayerFn == nil {
		return players.Player{}, ErrNotStubbed
	}
	return s.GetPlayerFn(ctx, id)
}

func (s *StubSource) ListTeams(ctx context.Context) ([]teams.Team, error) {
	if s.ListTeamsFn == nil {
		return nil, ErrNotStubbed
	}
	return s.ListTeamsFn(ctx)
}

func (s *StubSource) GetTeam(ctx context.Context, id int) (teams.Team, error) {
	if s.GetTeamFn == nil {
		return teams.Team{}, ErrNotStubbed
	}
	return s.GetTeamFn(ctx, id)
}

func (s *StubSource) ListGames(ctx context.Context, query providers.GameQuery) ([]domaingames.Game, providers.Meta, error) {
	if s.ListGamesFn == nil {
		return nil, providers.Meta{}, ErrNotStubbed
	}
	return s.ListGamesFn(ctx, query)
}

func (s *StubSource) GetGame(ctx context.Context, id int) (domaingames.Game, error) {
	if s.GetGameFn == nil {
		return domaingames.Game{}, ErrNotStubbed
	}
	return s.GetGameFn(ctx, id)
}

func (s *StubSource) ListStats(ctx context.Context, query providers.StatQuery) ([]stats.StatLine, providers.Meta, error) {
	if s.ListStatsFn == nil {
		return nil, providers.Meta{}, ErrNotStubbed
	}
	return s.ListStatsFn(ctx, query)
}

func (s *StubSource) ListLineups(ctx context.Context, query providers.LineupQuery) ([]domaingames.LineupEntry, providers.Meta, error) {
	if s.ListLineupsFn == nil {
		return nil, providers.Meta{}, ErrNotStubbed
	}
	return s.ListLineupsFn(ctx, query)
}

func (s *StubSource) ListOdds(ctx context.Context, dates []string) ([]odds.Quote, error) {
	if s.ListOddsFn == nil {
		return nil, ErrNotStubbed
	}
	return s.ListOddsFn(ctx, dates)
}
