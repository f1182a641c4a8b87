package balldontlie

type metaResponse struct {
	NextPage   int `json:"next_page"`
	PerPage    int `json:"per_page"`
	TotalPages int `json:"total_pages"`
}

type teamResponse struct {
	ID           int    `json:"id"`
	Abbreviation string `json:"abbreviation"`
	City         string `json:"city"`
	Conference   string `json:"conference"`
	Division     string `json:"division"`
	FullName     string `json:"full_name"`
	Name         string `json:"name"`
}

type teamsResponse struct {
	Data []teamResponse `json:"data"`
}

type teamItemResponse struct {
	Data teamResponse `json:"data"`
}

type playerResponse struct {
	ID        int          `json:"id"`
	FirstName string       `json:"first_name"`
	LastName  string       `json:"last_name"`
	Position  string       `json:"position"`
	Team      teamResponse `json:"team"`
}

type playersResponse struct {
	Data []playerResponse `json:"data"`
	Meta metaResponse     `json:"meta"`
}

type playerItemResponse struct {
	Data playerResponse `json:"data"`
}

type gameResponse struct {
	ID               int          `json:"id"`
	Date             string       `json:"date"`
	Status           string       `json:"status"`
	Season           int          `json:"season"`
	Postseason       bool         `json:"postseason"`
	HomeTeam         teamResponse `json:"home_team"`
	VisitorTeam      teamResponse `json:"visitor_team"`
	HomeTeamScore    int          `json:"home_team_score"`
	VisitorTeamScore int          `json:"visitor_team_score"`
}

type gamesResponse struct {
	Data []gameResponse `json:"data"`
	Meta metaResponse   `json:"meta"`
}

type gameItemResponse struct {
	Data gameResponse `json:"data"`
}

// statGameResponse is the slimmer game object embedded in stat lines: team
// references arrive as bare ids rather than nested team objects.
type statGameResponse struct {
	ID               int    `json:"id"`
	Date             string `json:"date"`
	Season           int    `json:"season"`
	Postseason       bool   `json:"postseason"`
	HomeTeamID       int    `json:"home_team_id"`
	VisitorTeamID    int    `json:"visitor_team_id"`
	HomeTeamScore    int    `json:"home_team_score"`
	VisitorTeamScore int    `json:"visitor_team_score"`
}

type statResponse struct {
	ID     int              `json:"id"`
	Pts    int              `json:"pts"`
	Reb    int              `json:"reb"`
	Ast    int              `json:"ast"`
	FgPct  *float64         `json:"fg_pct"`
	Fg3Pct *float64         `json:"fg3_pct"`
	FtPct  *float64         `json:"ft_pct"`
	Player playerResponse   `json:"player"`
	Game   statGameResponse `json:"game"`
}

type statsResponse struct {
	Data []statResponse `json:"data"`
	Meta metaResponse   `json:"meta"`
}

type lineupResponse struct {
	ID       int    `json:"id"`
	GameID   int    `json:"game_id"`
	TeamID   int    `json:"team_id"`
	PlayerID int    `json:"player_id"`
	Position string `json:"position"`
	Starter  bool   `json:"starter"`
}

type lineupsResponse struct {
	Data []lineupResponse `json:"data"`
	Meta metaResponse     `json:"meta"`
}

type oddsQuoteResponse struct {
	Vendor        string `json:"vendor"`
	GameID        int    `json:"game_id"`
	MoneylineHome *int   `json:"moneyline_home_odds"`
	MoneylineAway *int   `json:"moneyline_away_odds"`
}

type oddsResponse struct {
	Data []oddsQuoteResponse `json:"data"`
}
