package players

import "gambling-buddy-service/internal/domain/teams"

// Player represents the normalized player shape (balldontlie-aligned).
type Player struct {
	ID        int        `json:"id"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Position  string     `json:"position"`
	Team      teams.Team `json:"team"`
}

// FullName joins first and last name for display.
func (p Player) FullName() string {
	return p.FirstName + " " + p.LastName
}
