package narrative

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"gambling-buddy-service/internal/app/projections"
	"gambling-buddy-service/internal/app/schedule"
	domaingames "gambling-buddy-service/internal/domain/games"
	domainprojections "gambling-buddy-service/internal/domain/projections"
	"gambling-buddy-service/internal/logging"
)

const (
	// defaultMaxTokens bounds a single completion when no budget is configured.
	defaultMaxTokens = 900

	// matchupHeadroom widens the budget for head-to-head answers, which embed
	// two stat blocks and two schedule lines.
	matchupHeadroom = 50
)

// Generator produces a completion for a system/user prompt pair.
type Generator interface {
	Generate(ctx context.Context, system, user string, maxTokens int) (string, error)
}

// Service turns projections and schedules into chat-ready answers, some via
// the language model and some rendered deterministically.
type Service struct {
	generator   Generator
	projections *projections.Service
	schedule    *schedule.Service
	maxTokens   int
	logger      *slog.Logger
}

// NewService constructs a narrative Service. maxTokens bounds each completion;
// values <= 0 fall back to the default budget.
func NewService(generator Generator, proj *projections.Service, sched *schedule.Service, maxTokens int, logger *slog.Logger) *Service {
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}
	return &Service{
		generator:   generator,
		projections: proj,
		schedule:    sched,
		maxTokens:   maxTokens,
		logger:      logger,
	}
}

// GenericChat answers a free-form question in the given sport's persona.
func (s *Service) GenericChat(ctx context.Context, message, sport string) (string, error) {
	if sport == "" {
		sport = "Sports"
	}
	system := fmt.Sprintf(`
You are "Gambling Buddy" for %s.
Your job: answer the user in a clean, structured way, and ask 1-2 clarifying questions if needed.
Avoid wall-of-text. Make it easy to scan.
%s%s`, sport, noDisclaimerRule, styleGuide)
	return s.generator.Generate(ctx, system, message, s.maxTokens)
}

// PlayerPerformance summarizes a player's recent averages through the model.
// An unresolvable player yields a not-found message, not an error, matching
// how the chat surface presents it.
func (s *Service) PlayerPerformance(ctx context.Context, playerName string, lastN int) (string, error) {
	if lastN <= 0 {
		lastN = projections.DefaultLastN
	}

	result := s.projections.Compute(ctx, playerName, lastN)
	if !result.Found() {
		return "❌ Player not found.", nil
	}
	proj := result.Projection

	prompt := fmt.Sprintf(`
Summarize recent performance for %s (%s).

Averages over last %d games:
PTS: %s
REB: %s
AST: %s
FG%%: %s
`,
		proj.PlayerName, proj.Team, lastN,
		formatAvg(proj.Averages[domainprojections.StatPoints]),
		formatAvg(proj.Averages[domainprojections.StatRebounds]),
		formatAvg(proj.Averages[domainprojections.StatAssists]),
		formatAvg(proj.Averages[domainprojections.StatFgPct]),
	)

	return s.generator.Generate(ctx, performanceSystem, prompt, s.maxTokens)
}

// ComparePlayers builds a head-to-head props comparison through the model,
// embedding each player's recent averages and next game.
func (s *Service) ComparePlayers(ctx context.Context, p1, p2 string, lastN int) (string, error) {
	if lastN <= 0 {
		lastN = projections.DefaultLastN
	}

	a := s.projections.Compute(ctx, p1, lastN)
	b := s.projections.Compute(ctx, p2, lastN)
	if !a.Found() || !b.Found() {
		return "❌ Could not compare players (one or both not found).", nil
	}

	aNext := s.schedule.Describe(ctx, a.Projection.Team)
	bNext := s.schedule.Describe(ctx, b.Projection.Team)

	prompt := fmt.Sprintf(`
Compare these players for betting/props:

Player A: %s (%s)
Recent (last %d): %s
Next game: %s

Player B: %s (%s)
Recent (last %d): %s
Next game: %s

Give:
1) Quick take (1-2 lines)
2) Key differences (bullets)
3) Lean + why (state uncertainty in normal language, but NO disclaimer line)
4) “If you only remember 1 thing…”
`,
		a.Projection.PlayerName, a.Projection.Team, lastN, statLine(a.Projection), aNext,
		b.Projection.PlayerName, b.Projection.Team, lastN, statLine(b.Projection), bNext,
	)

	return s.generator.Generate(ctx, matchupSystem, prompt, s.maxTokens+matchupHeadroom)
}

// TeamNextGame renders a team's next game deterministically, no model call.
func (s *Service) TeamNextGame(ctx context.Context, teamName string) string {
	result := s.schedule.NextGame(ctx, teamName)
	if result.Status != schedule.NextGameOK {
		return fmt.Sprintf("❌ Could not find next game for: %s", teamName)
	}
	return "🏟️ " + result.Summary()
}

// OverUnder is a deterministic quick check of a points target against the
// player's recent scoring average. It is not a probability model.
func (s *Service) OverUnder(ctx context.Context, playerName string, target float64, lastN int) string {
	if lastN <= 0 {
		lastN = projections.DefaultLastN
	}

	result := s.projections.Compute(ctx, playerName, lastN)
	if !result.Found() {
		return "❌ Player not found."
	}

	avg := result.Projection.Averages[domainprojections.StatPoints]
	likely := "less likely"
	if avg >= target {
		likely = "more likely"
	}

	return fmt.Sprintf(
		"🎯 Quick check:\n• %s recent avg (last %d): %s PTS\n• Target: %s\n➡️ That makes it %s they go over (based only on recent averages).",
		result.Projection.PlayerName, lastN, formatAvg(avg), formatAvg(target), likely,
	)
}

// GamesList renders the day's or week's games grouped by date. Fetch failures
// propagate so the caller can report them.
func (s *Service) GamesList(ctx context.Context, when string) (string, error) {
	if when == "" {
		when = "this week"
	}

	games, err := s.schedule.GamesForWhen(ctx, when)
	if err != nil {
		logging.Warn(s.logger, "games listing failed", "when", when, "error", err)
		return "", err
	}
	if len(games) == 0 {
		return fmt.Sprintf("🏀 NBA Games (%s)\n❌ No games found.", when), nil
	}

	grouped := map[string][]domaingames.Game{}
	for _, g := range games {
		day := g.Day()
		grouped[day] = append(grouped[day], g)
	}
	days := make([]string, 0, len(grouped))
	for day := range grouped {
		days = append(days, day)
	}
	sort.Strings(days)

	var lines []string
	lines = append(lines, fmt.Sprintf("🏀 NBA Games (%s)", when), "")
	for _, day := range days {
		lines = append(lines, fmt.Sprintf("📅 %s", day))
		for _, g := range grouped[day] {
			lines = append(lines, fmt.Sprintf("• %s @ %s", g.VisitorTeam.FullName, g.HomeTeam.FullName))
		}
		lines = append(lines, "")
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

func statLine(p domainprojections.Projection) string {
	return fmt.Sprintf("PTS: %s, REB: %s, AST: %s, FG%%: %s",
		formatAvg(p.Averages[domainprojections.StatPoints]),
		formatAvg(p.Averages[domainprojections.StatRebounds]),
		formatAvg(p.Averages[domainprojections.StatAssists]),
		formatAvg(p.Averages[domainprojections.StatFgPct]),
	)
}

// formatAvg renders an average without trailing zeros, so 25.40 prints as 25.4.
func formatAvg(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
