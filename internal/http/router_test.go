package http

import (
	"context"
	nethttp "net/http"
	"strings"
	"testing"

	"gambling-buddy-service/internal/app/narrative"
	"gambling-buddy-service/internal/app/odds"
	"gambling-buddy-service/internal/app/projections"
	"gambling-buddy-service/internal/app/roster"
	"gambling-buddy-service/internal/app/schedule"
	"gambling-buddy-service/internal/http/handlers"
	"gambling-buddy-service/internal/metrics"
	"gambling-buddy-service/internal/providers/fixture"
	"gambling-buddy-service/internal/testutil"
)

type staticGenerator struct {
	reply string
}

func (g staticGenerator) Generate(ctx context.Context, system, user string, maxTokens int) (string, error) {
	return g.reply, nil
}

func newTestRouter(gen narrative.Generator, recorder *metrics.Recorder) nethttp.Handler {
	logger, _ := testutil.NewBufferLogger()
	source := fixture.New()
	resolver := roster.NewResolver(source, logger)
	projSvc := projections.NewService(resolver, source, logger)
	schedSvc := schedule.NewService(resolver, source, logger)
	narrativeSvc := narrative.NewService(gen, projSvc, schedSvc, 0, logger)
	oddsSvc := odds.NewService(source, logger)
	h := handlers.NewHandler(narrativeSvc, oddsSvc, logger)
	return NewRouter(h, logger, recorder)
}

func TestRouterHealth(t *testing.T) {
	router := newTestRouter(staticGenerator{}, nil)

	rr := testutil.Serve(router, nethttp.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusOK)

	var resp map[string]bool
	testutil.DecodeJSON(t, rr, &resp)
	if !resp["ok"] {
		t.Fatalf("expected ok true, got %v", resp)
	}
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected request id header")
	}
}

func TestRouterRoutesChatEndpoints(t *testing.T) {
	router := newTestRouter(staticGenerator{reply: "an answer"}, nil)

	body := strings.NewReader(`{"sport":"NBA","message":"hello"}`)
	rr := testutil.Serve(router, nethttp.MethodPost, "/generic_chat", body)
	testutil.AssertStatus(t, rr, nethttp.StatusOK)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["content"] != "an answer" {
		t.Fatalf("unexpected content: %v", resp)
	}
}

func TestRouterUnknownRoute(t *testing.T) {
	router := newTestRouter(staticGenerator{}, nil)

	rr := testutil.Serve(router, nethttp.MethodGet, "/nope", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusNotFound)
}

func TestRouterMethodNotAllowed(t *testing.T) {
	router := newTestRouter(staticGenerator{}, nil)

	rr := testutil.Serve(router, nethttp.MethodGet, "/matchup", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusMethodNotAllowed)
}

func TestRouterWithRecorder(t *testing.T) {
	recorder := metrics.NewRecorder()
	router := newTestRouter(staticGenerator{}, recorder)

	rr := testutil.Serve(router, nethttp.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, nethttp.StatusOK)
}
