package games

// Snapshot is one game from the scoreboard, flattened. Home and away are
// resolved once during normalization.
type Snapshot struct {
	ID               string  `json:"id"`
	HomeTeam         string  `json:"homeTeam"`
	HomeAbbreviation string  `json:"homeAbbreviation"`
	HomeLogo         string  `json:"homeLogo"`
	AwayTeam         string  `json:"awayTeam"`
	AwayAbbreviation string  `json:"awayAbbreviation"`
	AwayLogo         string  `json:"awayLogo"`
	HomeScore        string  `json:"homeScore"`
	AwayScore        string  `json:"awayScore"`
	HomeLeader       *string `json:"homeLeader,omitempty"`
	AwayLeader       *string `json:"awayLeader,omitempty"`
	HomeLeaderImg    *string `json:"homeLeaderImg,omitempty"`
	AwayLeaderImg    *string `json:"awayLeaderImg,omitempty"`
	Arena            *string `json:"arena,omitempty"`
	Quarter          *int    `json:"quarter,omitempty"`
	Time             *string `json:"time,omitempty"`
	ScheduledTime    *string `json:"scheduledTime,omitempty"`
}

// ScoreUpdate is the payload published to subscribers.
type ScoreUpdate struct {
	Games     []Snapshot `json:"games"`
	Timestamp string     `json:"timestamp"`
}

// NewScoreUpdate builds a ScoreUpdate payload, never carrying a nil game list.
func NewScoreUpdate(games []Snapshot, timestamp string) ScoreUpdate {
	if games == nil {
		games = []Snapshot{}
	}
	return ScoreUpdate{
		Games:     games,
		Timestamp: timestamp,
	}
}

// HomeAway tags which side a team played on.
type HomeAway string

const (
	Home HomeAway = "home"
	Away HomeAway = "away"
)

// RecentGame is one completed game from a team's schedule, from that team's point of view.
type RecentGame struct {
	ID                   string   `json:"id"`
	Won                  bool     `json:"won"`
	Opponent             string   `json:"opponent"`
	OpponentAbbreviation string   `json:"opponentAbbreviation"`
	Score                string   `json:"score"`
	Date                 string   `json:"date"`
	HomeAway             HomeAway `json:"homeAway"`
}
