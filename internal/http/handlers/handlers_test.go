package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gambling-buddy-service/internal/app/narrative"
	"gambling-buddy-service/internal/app/odds"
	"gambling-buddy-service/internal/app/projections"
	"gambling-buddy-service/internal/app/roster"
	"gambling-buddy-service/internal/app/schedule"
	"gambling-buddy-service/internal/providers/fixture"
	"gambling-buddy-service/internal/testutil"
	"gambling-buddy-service/internal/timeutil"
)

type stubGenerator struct {
	system string
	user   string
	reply  string
	err    error
	calls  int
}

func (g *stubGenerator) Generate(ctx context.Context, system, user string, maxTokens int) (string, error) {
	g.calls++
	g.system = system
	g.user = user
	if g.err != nil {
		return "", g.err
	}
	return g.reply, nil
}

func newTestHandler(gen narrative.Generator) *Handler {
	logger, _ := testutil.NewBufferLogger()
	source := fixture.New()
	resolver := roster.NewResolver(source, logger)
	projSvc := projections.NewService(resolver, source, logger)
	schedSvc := schedule.NewService(resolver, source, logger)
	narrativeSvc := narrative.NewService(gen, projSvc, schedSvc, 0, logger)
	oddsSvc := odds.NewService(source, logger)
	return NewHandler(narrativeSvc, oddsSvc, logger)
}

func postJSON(t *testing.T, handlerFn http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	rr := httptest.NewRecorder()
	handlerFn(rr, req)
	return rr
}

func decodeContent(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp contentResponse
	testutil.DecodeJSON(t, rr, &resp)
	return resp.Content
}

func TestHealth(t *testing.T) {
	h := newTestHandler(&stubGenerator{})
	rr := testutil.Serve(http.HandlerFunc(h.Health), http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp map[string]bool
	testutil.DecodeJSON(t, rr, &resp)
	if !resp["ok"] {
		t.Fatalf("expected ok true, got %v", resp)
	}
}

func TestGenericChat(t *testing.T) {
	gen := &stubGenerator{reply: "here you go"}
	h := newTestHandler(gen)

	rr := postJSON(t, h.GenericChat, "/generic_chat", `{"sport":"NFL","message":"parlay ideas?"}`)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if got := decodeContent(t, rr); got != "here you go" {
		t.Fatalf("unexpected content: %q", got)
	}
	if gen.user != "parlay ideas?" {
		t.Fatalf("unexpected prompt: %q", gen.user)
	}
	if !strings.Contains(gen.system, "NFL") {
		t.Fatalf("expected NFL persona, got:\n%s", gen.system)
	}
}

func TestGenericChatBadBody(t *testing.T) {
	h := newTestHandler(&stubGenerator{})
	rr := postJSON(t, h.GenericChat, "/generic_chat", `{not json`)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestGenericChatGeneratorFailure(t *testing.T) {
	h := newTestHandler(&stubGenerator{err: errors.New("model unavailable")})
	rr := postJSON(t, h.GenericChat, "/generic_chat", `{"sport":"NBA","message":"hi"}`)
	testutil.AssertStatus(t, rr, http.StatusInternalServerError)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if !strings.Contains(resp["error"], "model unavailable") {
		t.Fatalf("expected cause in error, got %v", resp)
	}
}

func TestMatchupNonBasketballFallsBack(t *testing.T) {
	gen := &stubGenerator{reply: "hockey take"}
	h := newTestHandler(gen)

	rr := postJSON(t, h.Matchup, "/matchup", `{"sport":"NHL","p1":"Player One","p2":"Player Two"}`)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if got := decodeContent(t, rr); got != "hockey take" {
		t.Fatalf("unexpected content: %q", got)
	}
	if gen.user != "Player One vs Player Two matchup" {
		t.Fatalf("unexpected fallback prompt: %q", gen.user)
	}
}

func TestMatchupDefaultsToBasketball(t *testing.T) {
	gen := &stubGenerator{reply: "comparison"}
	h := newTestHandler(gen)

	rr := postJSON(t, h.Matchup, "/matchup", `{"p1":"Jane Doe","p2":"John Smith"}`)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if got := decodeContent(t, rr); got != "comparison" {
		t.Fatalf("unexpected content: %q", got)
	}
	if !strings.Contains(gen.user, "Player A: Jane Doe") || !strings.Contains(gen.user, "Player B: John Smith") {
		t.Fatalf("expected comparison prompt, got:\n%s", gen.user)
	}
}

func TestPerformance(t *testing.T) {
	gen := &stubGenerator{reply: "hot streak"}
	h := newTestHandler(gen)

	rr := postJSON(t, h.Performance, "/performance", `{"sport":"NBA","player":"Jane Doe"}`)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if got := decodeContent(t, rr); got != "hot streak" {
		t.Fatalf("unexpected content: %q", got)
	}
	// last_n omitted: the window defaults to 5.
	if !strings.Contains(gen.user, "last 5 games") {
		t.Fatalf("expected default window in prompt, got:\n%s", gen.user)
	}
}

func TestPerformanceUnknownPlayer(t *testing.T) {
	gen := &stubGenerator{}
	h := newTestHandler(gen)

	rr := postJSON(t, h.Performance, "/performance", `{"sport":"NBA","player":"Nobody Nowhere"}`)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if got := decodeContent(t, rr); got != "❌ Player not found." {
		t.Fatalf("unexpected content: %q", got)
	}
	if gen.calls != 0 {
		t.Fatal("expected no model call")
	}
}

func TestTeamNextGame(t *testing.T) {
	h := newTestHandler(&stubGenerator{})

	rr := postJSON(t, h.TeamNextGame, "/team_next_game", `{"sport":"NBA","team":"Celtics"}`)
	testutil.AssertStatus(t, rr, http.StatusOK)
	got := decodeContent(t, rr)
	if !strings.HasPrefix(got, "🏟️ Next game: Boston Celtics vs Los Angeles Lakers on ") {
		t.Fatalf("unexpected content: %q", got)
	}
}

func TestOverUnder(t *testing.T) {
	h := newTestHandler(&stubGenerator{})

	// Fixture averages 24.4 points over the last 5 games.
	rr := postJSON(t, h.OverUnder, "/over_under", `{"sport":"NBA","player":"Jane Doe","target":20.5}`)
	testutil.AssertStatus(t, rr, http.StatusOK)
	got := decodeContent(t, rr)
	if !strings.Contains(got, "more likely") {
		t.Fatalf("expected more likely, got:\n%s", got)
	}

	rr = postJSON(t, h.OverUnder, "/over_under", `{"sport":"NBA","player":"Jane Doe","target":30}`)
	if got := decodeContent(t, rr); !strings.Contains(got, "less likely") {
		t.Fatalf("expected less likely, got:\n%s", got)
	}
}

func TestGamesThisWeek(t *testing.T) {
	h := newTestHandler(&stubGenerator{})

	rr := postJSON(t, h.Games, "/games", `{"sport":"NBA","when":"this week"}`)
	testutil.AssertStatus(t, rr, http.StatusOK)
	got := decodeContent(t, rr)
	if !strings.HasPrefix(got, "🏀 NBA Games (this week)") {
		t.Fatalf("unexpected header: %q", got)
	}
	if !strings.Contains(got, "• Los Angeles Lakers @ Boston Celtics") {
		t.Fatalf("expected fixture game bullet, got:\n%s", got)
	}
}

func TestGamesNonBasketballFallsBack(t *testing.T) {
	gen := &stubGenerator{reply: "soccer slate"}
	h := newTestHandler(gen)

	rr := postJSON(t, h.Games, "/games", `{"sport":"MLS"}`)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if gen.user != "MLS games this week" {
		t.Fatalf("unexpected fallback prompt: %q", gen.user)
	}
}

func TestEdges(t *testing.T) {
	h := newTestHandler(&stubGenerator{})

	// The fixture schedules its first game tomorrow.
	tomorrow := timeutil.FormatDate(time.Now().AddDate(0, 0, 1))
	rr := postJSON(t, h.Edges, "/edges", `{"sport":"NBA","date":"`+tomorrow+`"}`)
	testutil.AssertStatus(t, rr, http.StatusOK)
	got := decodeContent(t, rr)
	if !strings.Contains(got, "LAL @ BOS") {
		t.Fatalf("expected matchup line, got:\n%s", got)
	}
	if !strings.Contains(got, "BOS: -145 at BookB") {
		t.Fatalf("expected best home line, got:\n%s", got)
	}
}
