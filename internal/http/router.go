package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"gambling-buddy-service/internal/http/handlers"
	"gambling-buddy-service/internal/http/middleware"
	"gambling-buddy-service/internal/metrics"
)

// NewRouter assembles the HTTP surface: one health probe plus the chat
// endpoints the frontend posts to.
func NewRouter(h *handlers.Handler, logger *slog.Logger, recorder *metrics.Recorder) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:3001"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.Logging(logger, recorder))

	r.Get("/health", h.Health)
	r.Post("/generic_chat", h.GenericChat)
	r.Post("/matchup", h.Matchup)
	r.Post("/performance", h.Performance)
	r.Post("/team_next_game", h.TeamNextGame)
	r.Post("/over_under", h.OverUnder)
	r.Post("/games", h.Games)
	r.Post("/edges", h.Edges)

	return r
}
