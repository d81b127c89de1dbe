package scores

import (
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/nba-dashboard-service/internal/domain"
	"github.com/preston-bernstein/nba-dashboard-service/internal/domain/games"
	"github.com/preston-bernstein/nba-dashboard-service/internal/providers/espn"
	"github.com/preston-bernstein/nba-dashboard-service/internal/testutil"
)

func warriorsGame(id, date string, completed, warriorsHome, warriorsWon bool, gsScore, oppScore any) testutil.ScheduleGame {
	g := testutil.ScheduleGame{ID: id, Date: date, Completed: completed}
	if warriorsHome {
		g.HomeID, g.HomeName, g.HomeAbbr, g.HomeScore = "9", "Golden State Warriors", "GS", gsScore
		g.AwayID, g.AwayName, g.AwayAbbr, g.AwayScore = "13", "Los Angeles Lakers", "LAL", oppScore
		g.HomeWinner = warriorsWon
	} else {
		g.HomeID, g.HomeName, g.HomeAbbr, g.HomeScore = "2", "Boston Celtics", "BOS", oppScore
		g.AwayID, g.AwayName, g.AwayAbbr, g.AwayScore = "9", "Golden State Warriors", "GS", gsScore
		g.HomeWinner = !warriorsWon
	}
	return g
}

func decodeSchedule(t *testing.T, raw string) *espn.Schedule {
	t.Helper()
	var s espn.Schedule
	require.NoError(t, sonic.UnmarshalString(raw, &s))
	return &s
}

func TestRecentGamesReturnsLastFiveCompletedNewestFirst(t *testing.T) {
	raw := testutil.ScheduleJSON(
		warriorsGame("1", "2024-01-01T03:00Z", true, true, true, "110", "100"),
		warriorsGame("2", "2024-01-03T03:00Z", true, false, false, "98", "105"),
		warriorsGame("3", "2024-01-05T03:00Z", true, true, true, 120, 101),
		warriorsGame("4", "2024-01-07T03:00Z", true, false, true, map[string]any{"value": 99.0, "displayValue": "99"}, map[string]any{"value": 97.0, "displayValue": "97"}),
		warriorsGame("5", "2024-01-09T03:00Z", true, true, false, "101", "111"),
		warriorsGame("6", "2024-01-11T03:00Z", true, true, true, "130", "90"),
		warriorsGame("7", "2024-01-13T03:00Z", false, true, false, nil, nil),
	)

	got, err := RecentGames(decodeSchedule(t, raw), "9", 5, time.UTC)

	require.NoError(t, err)
	require.Len(t, got, 5)
	ids := []string{got[0].ID, got[1].ID, got[2].ID, got[3].ID, got[4].ID}
	assert.Equal(t, []string{"6", "5", "4", "3", "2"}, ids)

	assert.Equal(t, games.RecentGame{
		ID:                   "6",
		Won:                  true,
		Opponent:             "Los Angeles Lakers",
		OpponentAbbreviation: "LAL",
		Score:                "130-90",
		Date:                 "Jan 11",
		HomeAway:             games.Home,
	}, got[0])

	away := got[2]
	assert.Equal(t, "4", away.ID)
	assert.Equal(t, games.Away, away.HomeAway)
	assert.True(t, away.Won)
	assert.Equal(t, "Boston Celtics", away.Opponent)
	assert.Equal(t, "99-97", away.Score)

	assert.Equal(t, "120-101", got[3].Score)
	assert.False(t, got[4].Won)
}

func TestRecentGamesUsesLocationForDates(t *testing.T) {
	raw := testutil.ScheduleJSON(warriorsGame("1", "2024-01-03T00:30Z", true, true, true, "1", "0"))
	eastern := time.FixedZone("EST", -5*60*60)

	got, err := RecentGames(decodeSchedule(t, raw), "9", 5, eastern)

	require.NoError(t, err)
	assert.Equal(t, "Jan 2", got[0].Date)
}

func TestRecentGamesEmptyWhenNothingCompleted(t *testing.T) {
	raw := testutil.ScheduleJSON(warriorsGame("1", "2024-01-01T03:00Z", false, true, false, nil, nil))

	got, err := RecentGames(decodeSchedule(t, raw), "9", 0, time.UTC)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRecentGamesRejectsMissingSide(t *testing.T) {
	raw := `{"events":[{"id":"1","competitions":[{"status":{"type":{"completed":true}},"competitors":[{"id":"9","homeAway":"home"}]}]}]}`

	_, err := RecentGames(decodeSchedule(t, raw), "9", 5, time.UTC)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMalformedPayload))
}
