package odds

// Side identifies which team a moneyline prices.
type Side string

const (
	SideHome Side = "home"
	SideAway Side = "away"
)

// Quote holds one vendor's moneylines for one game. Moneylines are pointers
// because vendors do not always price both sides.
type Quote struct {
	Vendor        string `json:"vendor"`
	GameID        int    `json:"gameId"`
	MoneylineHome *int   `json:"moneylineHome"`
	MoneylineAway *int   `json:"moneylineAway"`
}

// Moneyline returns the quote's line for the requested side.
func (q Quote) Moneyline(side Side) *int {
	if side == SideHome {
		return q.MoneylineHome
	}
	return q.MoneylineAway
}
