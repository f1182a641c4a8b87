package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"gambling-buddy-service/internal/app/narrative"
	"gambling-buddy-service/internal/app/odds"
)

const defaultSport = "NBA"

// Handler wires HTTP routes to the chat and odds services.
type Handler struct {
	narrative *narrative.Service
	odds      *odds.Service
	logger    *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(narrativeSvc *narrative.Service, oddsSvc *odds.Service, logger *slog.Logger) *Handler {
	return &Handler{
		narrative: narrativeSvc,
		odds:      oddsSvc,
		logger:    logger,
	}
}

type genericRequest struct {
	Sport   string `json:"sport"`
	Message string `json:"message"`
}

type matchupRequest struct {
	Sport string `json:"sport"`
	P1    string `json:"p1"`
	P2    string `json:"p2"`
	LastN int    `json:"last_n"`
}

type performanceRequest struct {
	Sport  string `json:"sport"`
	Player string `json:"player"`
	LastN  int    `json:"last_n"`
}

type teamRequest struct {
	Sport string `json:"sport"`
	Team  string `json:"team"`
}

type overUnderRequest struct {
	Sport  string  `json:"sport"`
	Player string  `json:"player"`
	Target float64 `json:"target"`
	LastN  int     `json:"last_n"`
}

type gamesRequest struct {
	Sport string `json:"sport"`
	When  string `json:"when"`
}

type edgesRequest struct {
	Sport string `json:"sport"`
	Date  string `json:"date"`
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true}, h.logger)
}

// GenericChat answers a free-form question for any sport.
func (h *Handler) GenericChat(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	var req genericRequest
	if !decodeJSON(w, r, &req, logger) {
		return
	}

	content, err := h.narrative.GenericChat(r.Context(), req.Message, req.Sport)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error(), logger)
		return
	}
	writeContent(w, content, logger)
}

// Matchup compares two players. Non-basketball sports fall back to generic chat.
func (h *Handler) Matchup(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	var req matchupRequest
	if !decodeJSON(w, r, &req, logger) {
		return
	}

	if sportOrDefault(req.Sport) != defaultSport {
		h.fallback(w, r, fmt.Sprintf("%s vs %s matchup", req.P1, req.P2), req.Sport, logger)
		return
	}

	content, err := h.narrative.ComparePlayers(r.Context(), req.P1, req.P2, req.LastN)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error(), logger)
		return
	}
	writeContent(w, content, logger)
}

// Performance summarizes a player's recent games.
func (h *Handler) Performance(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	var req performanceRequest
	if !decodeJSON(w, r, &req, logger) {
		return
	}

	if sportOrDefault(req.Sport) != defaultSport {
		h.fallback(w, r, req.Player, req.Sport, logger)
		return
	}

	content, err := h.narrative.PlayerPerformance(r.Context(), req.Player, req.LastN)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error(), logger)
		return
	}
	writeContent(w, content, logger)
}

// TeamNextGame reports a team's next scheduled game.
func (h *Handler) TeamNextGame(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	var req teamRequest
	if !decodeJSON(w, r, &req, logger) {
		return
	}

	if sportOrDefault(req.Sport) != defaultSport {
		h.fallback(w, r, req.Team, req.Sport, logger)
		return
	}

	writeContent(w, h.narrative.TeamNextGame(r.Context(), req.Team), logger)
}

// OverUnder checks a points target against a player's recent average.
func (h *Handler) OverUnder(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	var req overUnderRequest
	if !decodeJSON(w, r, &req, logger) {
		return
	}

	if sportOrDefault(req.Sport) != defaultSport {
		target := strconv.FormatFloat(req.Target, 'f', -1, 64)
		h.fallback(w, r, fmt.Sprintf("%s over/under %s", req.Player, target), req.Sport, logger)
		return
	}

	writeContent(w, h.narrative.OverUnder(r.Context(), req.Player, req.Target, req.LastN), logger)
}

// Games lists scheduled games for today or the coming week.
func (h *Handler) Games(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	var req gamesRequest
	if !decodeJSON(w, r, &req, logger) {
		return
	}

	if sportOrDefault(req.Sport) != defaultSport {
		when := req.When
		if when == "" {
			when = "this week"
		}
		h.fallback(w, r, fmt.Sprintf("%s games %s", req.Sport, when), req.Sport, logger)
		return
	}

	content, err := h.narrative.GamesList(r.Context(), req.When)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error(), logger)
		return
	}
	writeContent(w, content, logger)
}

// Edges compares vendor moneylines for a day's games.
func (h *Handler) Edges(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	var req edgesRequest
	if !decodeJSON(w, r, &req, logger) {
		return
	}

	if sportOrDefault(req.Sport) != defaultSport {
		h.fallback(w, r, fmt.Sprintf("%s odds %s", req.Sport, req.Date), req.Sport, logger)
		return
	}

	content, err := h.odds.EdgeReport(r.Context(), req.Date)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error(), logger)
		return
	}
	writeContent(w, content, logger)
}

// fallback routes a request for an unsupported sport through generic chat.
func (h *Handler) fallback(w http.ResponseWriter, r *http.Request, message, sport string, logger *slog.Logger) {
	content, err := h.narrative.GenericChat(r.Context(), message, sport)
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err.Error(), logger)
		return
	}
	writeContent(w, content, logger)
}

func sportOrDefault(sport string) string {
	if sport == "" {
		return defaultSport
	}
	return sport
}
