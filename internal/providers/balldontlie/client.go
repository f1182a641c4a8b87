package balldontlie

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	domaingames "gambling-buddy-service/internal/domain/games"
	"gambling-buddy-service/internal/domain/odds"
	"gambling-buddy-service/internal/domain/players"
	"gambling-buddy-service/internal/domain/stats"
	"gambling-buddy-service/internal/domain/teams"
	"gambling-buddy-service/internal/metrics"
	"gambling-buddy-service/internal/providers"
)

// Config controls how the client reaches the upstream API.
type Config struct {
	BaseURL    string
	OddsURL    string
	APIKey     string
	HTTPClient *http.Client
	Timeout    time.Duration
	Metrics    *metrics.Recorder
}

// Client fetches players, teams, games, stats and odds from the balldontlie
// API and maps them to domain models. It performs no retries; failures
// propagate to the caller as *providers.APIError.
type Client struct {
	baseURL    string
	oddsURL    string
	apiKey     string
	httpClient httpDoer
	metrics    *metrics.Recorder
}

// NewClient constructs a balldontlie client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL, defaultBaseURL),
		oddsURL:    normalizeBaseURL(cfg.OddsURL, defaultOddsURL),
		apiKey:     cfg.APIKey,
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		metrics:    cfg.Metrics,
	}
}

var _ providers.DataSource = (*Client)(nil)

// ListPlayers searches the active-player catalog.
func (c *Client) ListPlayers(ctx context.Context, query providers.PlayerQuery) ([]players.Player, providers.Meta, error) {
	params := pageParams(query.Page, query.PerPage)
	if query.Search != "" {
		params.Set("search", query.Search)
	}
	addIntValues(params, "team_ids[]", query.TeamIDs)

	var payload playersResponse
	if err := c.getJSON(ctx, c.baseURL, "/players/active", params, &payload); err != nil {
		return nil, providers.Meta{}, err
	}

	result := make([]players.Player, 0, len(payload.Data))
	for _, p := range payload.Data {
		result = append(result, mapPlayer(p))
	}
	return result, providers.Meta{NextPage: payload.Meta.NextPage}, nil
}

// GetPlayer fetches a single player by id.
func (c *Client) GetPlayer(ctx context.Context, id int) (players.Player, error) {
	var payload playerItemResponse
	if err := c.getJSON(ctx, c.baseURL, "/players/"+strconv.Itoa(id), nil, &payload); err != nil {
		return players.Player{}, err
	}
	return mapPlayer(payload.Data), nil
}

// ListTeams fetches the full team catalog. The upstream returns all teams in
// one page, so no pagination parameters are sent.
func (c *Client) ListTeams(ctx context.Context) ([]teams.Team, error) {
	var payload teamsResponse
	if err := c.getJSON(ctx, c.baseURL, "/teams", nil, &payload); err != nil {
		return nil, err
	}

	result := make([]teams.Team, 0, len(payload.Data))
	for _, t := range payload.Data {
		result = append(result, mapTeam(t))
	}
	return result, nil
}

// GetTeam fetches a single team by id.
func (c *Client) GetTeam(ctx context.Context, id int) (teams.Team, error) {
	var payload teamItemResponse
	if err := c.getJSON(ctx, c.baseURL, "/teams/"+strconv.Itoa(id), nil, &payload); err != nil {
		return teams.Team{}, err
	}
	return mapTeam(payload.Data), nil
}

// ListGames fetches games matching the query filters.
func (c *Client) ListGames(ctx context.Context, query providers.GameQuery) ([]domaingames.Game, providers.Meta, error) {
	params := pageParams(query.Page, query.PerPage)
	addStringValues(params, "dates[]", query.Dates)
	addIntValues(params, "seasons[]", query.Seasons)
	addIntValues(params, "team_ids[]", query.TeamIDs)

	var payload gamesResponse
	if err := c.getJSON(ctx, c.baseURL, "/games", params, &payload); err != nil {
		return nil, providers.Meta{}, err
	}

	result := make([]domaingames.Game, 0, len(payload.Data))
	for _, g := range payload.Data {
		result = append(result, mapGame(g))
	}
	return result, providers.Meta{NextPage: payload.Meta.NextPage}, nil
}

// GetGame fetches a single game by id.
func (c *Client) GetGame(ctx context.Context, id int) (domaingames.Game, error) {
	var payload gameItemResponse
	if err := c.getJSON(ctx, c.baseURL, "/games/"+strconv.Itoa(id), nil, &payload); err != nil {
		return domaingames.Game{}, err
	}
	return mapGame(payload.Data), nil
}

// ListStats fetches box-score stat lines matching the query filters.
func (c *Client) ListStats(ctx context.Context, query providers.StatQuery) ([]stats.StatLine, providers.Meta, error) {
	params := pageParams(query.Page, query.PerPage)
	addIntValues(params, "player_ids[]", query.PlayerIDs)
	addIntValues(params, "game_ids[]", query.GameIDs)
	addIntValues(params, "seasons[]", query.Seasons)

	var payload statsResponse
	if err := c.getJSON(ctx, c.baseURL, "/stats", params, &payload); err != nil {
		return nil, providers.Meta{}, err
	}

	result := make([]stats.StatLine, 0, len(payload.Data))
	for _, s := range payload.Data {
		result = append(result, mapStat(s))
	}
	return result, providers.Meta{NextPage: payload.Meta.NextPage}, nil
}

// ListLineups fetches lineup entries for the given games.
func (c *Client) ListLineups(ctx context.Context, query providers.LineupQuery) ([]domaingames.LineupEntry, providers.Meta, error) {
	params := pageParams(query.Page, query.PerPage)
	addIntValues(params, "game_ids[]", query.GameIDs)

	var payload lineupsResponse
	if err := c.getJSON(ctx, c.baseURL, "/lineups", params, &payload); err != nil {
		return nil, providers.Meta{}, err
	}

	result := make([]domaingames.LineupEntry, 0, len(payload.Data))
	for _, l := range payload.Data {
		result = append(result, mapLineup(l))
	}
	return result, providers.Meta{NextPage: payload.Meta.NextPage}, nil
}

// ListOdds fetches per-vendor moneyline quotes for the given dates. Odds live
// under a different base path than the rest of the API.
func (c *Client) ListOdds(ctx context.Context, dates []string) ([]odds.Quote, error) {
	params := url.Values{}
	addStringValues(params, "dates[]", dates)

	var payload oddsResponse
	if err := c.getJSON(ctx, c.oddsURL, "/odds", params, &payload); err != nil {
		return nil, err
	}

	result := make([]odds.Quote, 0, len(payload.Data))
	for _, q := range payload.Data {
		result = append(result, mapQuote(q))
	}
	return result, nil
}

func (c *Client) getJSON(ctx context.Context, base, path string, params url.Values, out any) error {
	start := time.Now()
	err := c.doGet(ctx, base, path, params, out)
	c.metrics.RecordProviderAttempt(sourceName, time.Since(start), err)
	return err
}

func (c *Client) doGet(ctx context.Context, base, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+path, nil)
	if err != nil {
		return err
	}
	if len(params) > 0 {
		req.URL.RawQuery = params.Encode()
	}
	// balldontlie expects the bare key in the Authorization header.
	if c.apiKey != "" {
		req.Header.Set("Authorization", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &providers.APIError{Source: sourceName, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &providers.APIError{
			Source:     sourceName,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func pageParams(page, perPage int) url.Values {
	params := url.Values{}
	params.Set("page", strconv.Itoa(resolvePage(page)))
	params.Set("per_page", strconv.Itoa(resolvePerPage(perPage)))
	return params
}

func addStringValues(params url.Values, key string, values []string) {
	for _, v := range values {
		params.Add(key, v)
	}
}

func addIntValues(params url.Values, key string, values []int) {
	for _, v := range values {
		params.Add(key, strconv.Itoa(v))
	}
}
