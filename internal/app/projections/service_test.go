package projections

import (
	"context"
	"errors"
	"testing"

	"gambling-buddy-service/internal/app/roster"
	domaingames "gambling-buddy-service/internal/domain/games"
	domainprojections "gambling-buddy-service/internal/domain/projections"
	"gambling-buddy-service/internal/domain/players"
	"gambling-buddy-service/internal/domain/stats"
	"gambling-buddy-service/internal/domain/teams"
	"gambling-buddy-service/internal/providers"
	"gambling-buddy-service/internal/testutil"
)

func newService(source *testutil.StubSource) *Service {
	logger, _ := testutil.NewBufferLogger()
	if source.ListPlayersFn == nil {
		source.ListPlayersFn = func(ctx context.Context, query providers.PlayerQuery) ([]players.Player, providers.Meta, error) {
			return []players.Player{
				{ID: 7, FirstName: "Jane", LastName: "Doe", Team: teams.Team{FullName: "Boston Celtics"}},
			}, providers.Meta{}, nil
		}
	}
	resolver := roster.NewResolver(source, logger)
	return NewService(resolver, source, logger)
}

func statLine(points int, date string) stats.StatLine {
	return stats.StatLine{
		Points: points,
		Game:   domaingames.Game{Date: date},
	}
}

func TestComputeKeepsMostRecentGames(t *testing.T) {
	// Oldest to newest: 10, 20, 30, 40, 50. With lastN=3 only the newest
	// three (50, 40, 30) should count.
	source := &testutil.StubSource{
		ListStatsFn: func(ctx context.Context, query providers.StatQuery) ([]stats.StatLine, providers.Meta, error) {
			return []stats.StatLine{
				statLine(10, "2024-01-01"),
				statLine(20, "2024-01-03"),
				statLine(30, "2024-01-05"),
				statLine(40, "2024-01-07"),
				statLine(50, "2024-01-09"),
			}, providers.Meta{}, nil
		},
	}
	svc := newService(source)

	result := svc.Compute(context.Background(), "Jane Doe", 3)
	if !result.Found() {
		t.Fatalf("expected projection, got outcome %s", result.Outcome)
	}
	if got := result.Projection.Averages[domainprojections.StatPoints]; got != 40.0 {
		t.Fatalf("expected 40.0 points average, got %v", got)
	}
	if result.Projection.Games != 3 {
		t.Fatalf("expected 3 games counted, got %d", result.Projection.Games)
	}
}

func TestComputeNilPercentagesCountAsZero(t *testing.T) {
	half := 0.5
	source := &testutil.StubSource{
		ListStatsFn: func(ctx context.Context, query providers.StatQuery) ([]stats.StatLine, providers.Meta, error) {
			a := statLine(20, "2024-01-01")
			a.FgPct = &half
			b := statLine(10, "2024-01-02")
			// b.FgPct stays nil: no attempts that game.
			return []stats.StatLine{a, b}, providers.Meta{}, nil
		},
	}
	svc := newService(source)

	result := svc.Compute(context.Background(), "Jane Doe", 5)
	if !result.Found() {
		t.Fatalf("expected projection, got outcome %s", result.Outcome)
	}
	if got := result.Projection.Averages[domainprojections.StatFgPct]; got != 0.25 {
		t.Fatalf("expected 0.25 fg_pct average, got %v", got)
	}
}

func TestComputeWindowLargerThanHistory(t *testing.T) {
	source := &testutil.StubSource{
		ListStatsFn: func(ctx context.Context, query providers.StatQuery) ([]stats.StatLine, providers.Meta, error) {
			return []stats.StatLine{
				statLine(12, "2024-01-01"),
				statLine(18, "2024-01-02"),
			}, providers.Meta{}, nil
		},
	}
	svc := newService(source)

	result := svc.Compute(context.Background(), "Jane Doe", 10)
	if !result.Found() {
		t.Fatalf("expected projection, got outcome %s", result.Outcome)
	}
	if got := result.Projection.Averages[domainprojections.StatPoints]; got != 15.0 {
		t.Fatalf("expected 15.0 average over 2 games, got %v", got)
	}
	if result.Projection.Games != 2 {
		t.Fatalf("expected 2 games counted, got %d", result.Projection.Games)
	}
}

func TestComputeDefaultsWindow(t *testing.T) {
	var captured providers.StatQuery
	source := &testutil.StubSource{
		ListStatsFn: func(ctx context.Context, query providers.StatQuery) ([]stats.StatLine, providers.Meta, error) {
			captured = query
			lines := make([]stats.StatLine, 8)
			for i := range lines {
				lines[i] = statLine(10, "2024-01-0"+string(rune('1'+i)))
			}
			return lines, providers.Meta{}, nil
		},
	}
	svc := newService(source)

	result := svc.Compute(context.Background(), "Jane Doe", 0)
	if !result.Found() {
		t.Fatalf("expected projection, got outcome %s", result.Outcome)
	}
	if result.Projection.Games != DefaultLastN {
		t.Fatalf("expected default window of %d, got %d", DefaultLastN, result.Projection.Games)
	}
	if captured.PerPage != fetchPerPage {
		t.Fatalf("expected per_page %d, got %d", fetchPerPage, captured.PerPage)
	}
}

func TestComputeNoGamesIsAbsent(t *testing.T) {
	source := &testutil.StubSource{
		ListStatsFn: func(ctx context.Context, query providers.StatQuery) ([]stats.StatLine, providers.Meta, error) {
			return nil, providers.Meta{}, nil
		},
	}
	svc := newService(source)

	result := svc.Compute(context.Background(), "Jane Doe", 5)
	if result.Outcome != roster.OutcomeAbsent {
		t.Fatalf("expected absent, got %s", result.Outcome)
	}
}

func TestComputeStatFetchErrorIsFailed(t *testing.T) {
	upstream := errors.New("boom")
	source := &testutil.StubSource{
		ListStatsFn: func(ctx context.Context, query providers.StatQuery) ([]stats.StatLine, providers.Meta, error) {
			return nil, providers.Meta{}, upstream
		},
	}
	svc := newService(source)

	result := svc.Compute(context.Background(), "Jane Doe", 5)
	if result.Outcome != roster.OutcomeFailed {
		t.Fatalf("expected failed, got %s", result.Outcome)
	}
	if !errors.Is(result.Err, upstream) {
		t.Fatalf("expected upstream error, got %v", result.Err)
	}
}

func TestComputeUnknownPlayerPassesThrough(t *testing.T) {
	source := &testutil.StubSource{
		ListPlayersFn: func(ctx context.Context, query providers.PlayerQuery) ([]players.Player, providers.Meta, error) {
			return nil, providers.Meta{}, nil
		},
	}
	svc := newService(source)

	result := svc.Compute(context.Background(), "Nobody", 5)
	if result.Outcome != roster.OutcomeAbsent {
		t.Fatalf("expected absent, got %s", result.Outcome)
	}
}
