package scores

import (
	"time"

	"github.com/cockroachdb/errors"

	"github.com/preston-bernstein/nba-dashboard-service/internal/domain"
	"github.com/preston-bernstein/nba-dashboard-service/internal/domain/games"
	"github.com/preston-bernstein/nba-dashboard-service/internal/providers/espn"
	"github.com/preston-bernstein/nba-dashboard-service/internal/timeutil"
)

// DefaultRecentLimit is how many completed games RecentGames returns.
const DefaultRecentLimit = 5

// RecentGames returns the team's last limit completed games, newest first,
// from the team's point of view. Dates render in loc.
func RecentGames(schedule *espn.Schedule, teamID string, limit int, loc *time.Location) ([]games.RecentGame, error) {
	if schedule == nil {
		return nil, errors.Mark(errors.New("schedule payload is empty"), domain.ErrMalformedPayload)
	}
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	completed := make([]espn.Event, 0, len(schedule.Events))
	for _, event := range schedule.Events {
		if isCompleted(event) {
			completed = append(completed, event)
		}
	}
	if len(completed) > limit {
		completed = completed[len(completed)-limit:]
	}

	out := make([]games.RecentGame, 0, len(completed))
	for i := len(completed) - 1; i >= 0; i-- {
		game, err := recentGame(completed[i], teamID, loc)
		if err != nil {
			return nil, err
		}
		out = append(out, game)
	}
	return out, nil
}

func isCompleted(event espn.Event) bool {
	if len(event.Competitions) == 0 {
		return false
	}
	st := event.Competitions[0].Status
	return st != nil && st.Type != nil && st.Type.Completed != nil && *st.Type.Completed
}

func recentGame(event espn.Event, teamID string, loc *time.Location) (games.RecentGame, error) {
	var home, away *espn.Competitor
	competitors := event.Competitions[0].Competitors
	for i := range competitors {
		switch competitors[i].HomeAway {
		case string(games.Home):
			home = &competitors[i]
		case string(games.Away):
			away = &competitors[i]
		}
	}
	if home == nil || away == nil {
		return games.RecentGame{}, errors.Mark(
			errors.Newf("schedule event %q is missing a home or away competitor", event.ID),
			domain.ErrMalformedPayload,
		)
	}

	side := games.Away
	team, opponent := away, home
	if competitorID(home) == teamID {
		side = games.Home
		team, opponent = home, away
	}

	game := games.RecentGame{
		ID:       event.ID,
		Won:      team.Winner != nil && *team.Winner,
		Score:    team.Score.Or(espn.DefaultScore) + "-" + opponent.Score.Or(espn.DefaultScore),
		HomeAway: side,
	}
	if opponent.Team != nil {
		game.Opponent = opponent.Team.DisplayName
		game.OpponentAbbreviation = opponent.Team.Abbreviation
	}
	if played, err := timeutil.ParseTimestamp(event.Date); err == nil {
		game.Date = timeutil.FormatShortDate(played, loc)
	}
	return game, nil
}

func competitorID(c *espn.Competitor) string {
	if c.ID != "" {
		return c.ID
	}
	if c.Team != nil {
		return c.Team.ID
	}
	return ""
}
