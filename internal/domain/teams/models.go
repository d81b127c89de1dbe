package teams

// Standing is one team's row in a conference table.
type Standing struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Abbreviation  string  `json:"abbreviation"`
	Logo          *string `json:"logo"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Streak        float64 `json:"streak"`
	GamesBack     float64 `json:"gamesBack"`
	PointsPerGame float64 `json:"pointsPerGame"`
	PointsAllowed float64 `json:"pointsAllowed"`
	PointDiff     float64 `json:"pointDiff"`
}

// Standings holds both conference tables, each sorted by wins.
type Standings struct {
	Eastern []Standing `json:"eastern"`
	Western []Standing `json:"western"`
}
