package scores

import (
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/preston-bernstein/nba-dashboard-service/internal/domain"
	"github.com/preston-bernstein/nba-dashboard-service/internal/domain/games"
	"github.com/preston-bernstein/nba-dashboard-service/internal/providers/espn"
)

// Normalize flattens a scoreboard into one snapshot per event, in upstream
// order. Missing optional fields are defaulted or left nil; only a missing
// events list or an event without a competition fails the whole payload.
func Normalize(board *espn.Scoreboard, diag *espn.Diagnostics) ([]games.Snapshot, error) {
	if board == nil || board.Events == nil {
		return nil, errors.Mark(errors.New("scoreboard has no events list"), domain.ErrMalformedPayload)
	}

	out := make([]games.Snapshot, 0, len(board.Events))
	for i, event := range board.Events {
		if len(event.Competitions) == 0 {
			return nil, errors.Mark(
				errors.Newf("scoreboard event %d (id %q) has no competition", i, event.ID),
				domain.ErrMalformedPayload,
			)
		}
		out = append(out, normalizeEvent(event, diag))
	}
	return out, nil
}

func normalizeEvent(event espn.Event, diag *espn.Diagnostics) games.Snapshot {
	comp := event.Competitions[0]
	prefix := "events[" + event.ID + "]."
	home, away := resolveSides(comp.Competitors, diag, prefix)

	snap := games.Snapshot{
		ID:        event.ID,
		HomeScore: home.Score.Or(espn.DefaultScore),
		AwayScore: away.Score.Or(espn.DefaultScore),
	}
	if home.Team != nil {
		snap.HomeTeam = home.Team.DisplayName
		snap.HomeAbbreviation = home.Team.Abbreviation
		snap.HomeLogo = teamLogo(home.Team)
	} else {
		diag.Missing(prefix + "home.team")
	}
	if away.Team != nil {
		snap.AwayTeam = away.Team.DisplayName
		snap.AwayAbbreviation = away.Team.Abbreviation
		snap.AwayLogo = teamLogo(away.Team)
	} else {
		diag.Missing(prefix + "away.team")
	}

	snap.HomeLeader, snap.HomeLeaderImg = topLeader(home)
	snap.AwayLeader, snap.AwayLeaderImg = topLeader(away)

	if comp.Venue != nil {
		snap.Arena = comp.Venue.FullName
	}
	if st := comp.Status; st != nil {
		snap.Quarter = st.Period
		snap.Time = st.DisplayClock
		if st.Type != nil {
			snap.ScheduledTime = st.Type.ShortDetail
		}
	}
	return snap
}

// resolveSides picks competitors by their homeAway tag, falling back to
// position 0 for home and 1 for away when a tag is missing.
func resolveSides(competitors []espn.Competitor, diag *espn.Diagnostics, prefix string) (home, away espn.Competitor) {
	homeIdx, awayIdx := -1, -1
	for i, c := range competitors {
		switch c.HomeAway {
		case string(games.Home):
			if homeIdx < 0 {
				homeIdx = i
			}
		case string(games.Away):
			if awayIdx < 0 {
				awayIdx = i
			}
		}
	}
	if homeIdx < 0 {
		diag.Missing(prefix + "competitors.homeAway=home")
		homeIdx = fallbackIndex(0, awayIdx)
	}
	if awayIdx < 0 {
		diag.Missing(prefix + "competitors.homeAway=away")
		awayIdx = fallbackIndex(1, homeIdx)
	}
	if homeIdx < len(competitors) {
		home = competitors[homeIdx]
	} else {
		diag.Missing(prefix + "competitors[" + strconv.Itoa(homeIdx) + "]")
	}
	if awayIdx < len(competitors) {
		away = competitors[awayIdx]
	} else {
		diag.Missing(prefix + "competitors[" + strconv.Itoa(awayIdx) + "]")
	}
	return home, away
}

// fallbackIndex returns preferred unless the other side already took it.
func fallbackIndex(preferred, taken int) int {
	if preferred != taken {
		return preferred
	}
	return 1 - preferred
}

func topLeader(c espn.Competitor) (name *string, img *string) {
	if len(c.Leaders) == 0 || len(c.Leaders[0].Leaders) == 0 {
		return nil, nil
	}
	athlete := c.Leaders[0].Leaders[0].Athlete
	if athlete == nil {
		return nil, nil
	}
	if athlete.DisplayName != "" {
		n := athlete.DisplayName
		name = &n
	}
	if athlete.Headshot.Href != "" {
		h := athlete.Headshot.Href
		img = &h
	}
	return name, img
}

func teamLogo(t *espn.Team) string {
	if t.Logo != "" {
		return t.Logo
	}
	if len(t.Logos) > 0 {
		return t.Logos[0].Href
	}
	return ""
}
