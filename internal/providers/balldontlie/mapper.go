package balldontlie

import (
	domaingames "gambling-buddy-service/internal/domain/games"
	"gambling-buddy-service/internal/domain/odds"
	"gambling-buddy-service/internal/domain/players"
	"gambling-buddy-service/internal/domain/stats"
	"gambling-buddy-service/internal/domain/teams"
)

func mapTeam(t teamResponse) teams.Team {
	return teams.Team{
		ID:           t.ID,
		Name:         t.Name,
		FullName:     t.FullName,
		Abbreviation: t.Abbreviation,
		City:         t.City,
		Conference:   t.Conference,
		Division:     t.Division,
	}
}

func mapPlayer(p playerResponse) players.Player {
	return players.Player{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Position:  p.Position,
		Team:      mapTeam(p.Team),
	}
}

func mapGame(g gameResponse) domaingames.Game {
	return domaingames.Game{
		ID:           g.ID,
		Date:         g.Date,
		Status:       g.Status,
		Season:       g.Season,
		Postseason:   g.Postseason,
		HomeTeam:     mapTeam(g.HomeTeam),
		VisitorTeam:  mapTeam(g.VisitorTeam),
		HomeScore:    g.HomeTeamScore,
		VisitorScore: g.VisitorTeamScore,
	}
}

func mapStatGame(g statGameResponse) domaingames.Game {
	return domaingames.Game{
		ID:           g.ID,
		Date:         g.Date,
		Season:       g.Season,
		Postseason:   g.Postseason,
		HomeTeam:     teams.Team{ID: g.HomeTeamID},
		VisitorTeam:  teams.Team{ID: g.VisitorTeamID},
		HomeScore:    g.HomeTeamScore,
		VisitorScore: g.VisitorTeamScore,
	}
}

func mapStat(s statResponse) stats.StatLine {
	return stats.StatLine{
		ID:       s.ID,
		Player:   mapPlayer(s.Player),
		Game:     mapStatGame(s.Game),
		Points:   s.Pts,
		Rebounds: s.Reb,
		Assists:  s.Ast,
		FgPct:    s.FgPct,
		Fg3Pct:   s.Fg3Pct,
		FtPct:    s.FtPct,
	}
}

func mapLineup(l lineupResponse) domaingames.LineupEntry {
	return domaingames.LineupEntry{
		ID:       l.ID,
		GameID:   l.GameID,
		TeamID:   l.TeamID,
		PlayerID: l.PlayerID,
		Position: l.Position,
		Starter:  l.Starter,
	}
}

func mapQuote(q oddsQuoteResponse) odds.Quote {
	return odds.Quote{
		Vendor:        q.Vendor,
		GameID:        q.GameID,
		MoneylineHome: q.MoneylineHome,
		MoneylineAway: q.MoneylineAway,
	}
}
