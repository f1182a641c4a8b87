package games

import (
	"gambling-buddy-service/internal/domain/teams"
	"gambling-buddy-service/internal/timeutil"
)

// Game is the canonical game shape used by the service.
// Date is the upstream ISO-8601 string, sometimes with a time component.
type Game struct {
	ID           int        `json:"id"`
	Date         string     `json:"date"`
	Status       string     `json:"status"`
	Season       int        `json:"season"`
	Postseason   bool       `json:"postseason"`
	HomeTeam     teams.Team `json:"homeTeam"`
	VisitorTeam  teams.Team `json:"visitorTeam"`
	HomeScore    int        `json:"homeScore"`
	VisitorScore int        `json:"visitorScore"`
}

// Day returns the calendar date portion of the game's date.
func (g Game) Day() string {
	return timeutil.DateOnly(g.Date)
}
