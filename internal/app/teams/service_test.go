package teams

import (
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/nba-dashboard-service/internal/domain"
	"github.com/preston-bernstein/nba-dashboard-service/internal/domain/games"
	"github.com/preston-bernstein/nba-dashboard-service/internal/providers/espn"
	"github.com/preston-bernstein/nba-dashboard-service/internal/testutil"
)

func TestStandingsFetchesBothConferences(t *testing.T) {
	fake := testutil.NewFakeESPN(t)
	fake.SetStandings(espn.EasternGroup, testutil.StandingsJSON(
		[]testutil.StandingTeam{{ID: "2", Name: "Boston Celtics", Wins: 45}},
		[]testutil.StandingTeam{{ID: "5", Name: "Cleveland Cavaliers", Wins: 50, PointsFor: "115.2", Differential: "+6.1"}},
	))
	fake.SetStandings(espn.WesternGroup, testutil.StandingsJSON(
		[]testutil.StandingTeam{{ID: "9", Name: "Golden State Warriors", Wins: 40, Streak: -2}},
	))
	svc := NewService(fake.Client(), time.UTC, nil)

	got, err := svc.Standings(context.Background())
	require.NoError(t, err)
	require.Len(t, got.Eastern, 2)
	assert.Equal(t, "Cleveland Cavaliers", got.Eastern[0].Name)
	assert.Equal(t, 115.2, got.Eastern[0].PointsPerGame)
	assert.Equal(t, 6.1, got.Eastern[0].PointDiff)
	assert.Equal(t, "Boston Celtics", got.Eastern[1].Name)
	require.Len(t, got.Western, 1)
	assert.Equal(t, 0.0, got.Western[0].Streak)
	assert.Equal(t, 1, fake.Calls("standings:5"))
	assert.Equal(t, 1, fake.Calls("standings:6"))
}

func TestStandingsFailsWhenEitherConferenceFails(t *testing.T) {
	fake := testutil.NewFakeESPN(t)
	fake.SetStandings(espn.EasternGroup, testutil.StandingsJSON())
	svc := NewService(fake.Client(), time.UTC, nil)

	_, err := svc.Standings(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestRecentGames(t *testing.T) {
	fake := testutil.NewFakeESPN(t)
	fake.SetSchedule(9, testutil.ScheduleJSON(
		testutil.ScheduleGame{ID: "1", Date: "2024-01-05T03:00Z", Completed: true, HomeID: "9", HomeName: "Golden State Warriors", HomeAbbr: "GS", HomeScore: "110", AwayID: "13", AwayName: "Los Angeles Lakers", AwayAbbr: "LAL", AwayScore: "101", HomeWinner: true},
		testutil.ScheduleGame{ID: "2", Date: "2024-01-08T00:30Z", Completed: true, HomeID: "2", HomeName: "Boston Celtics", HomeAbbr: "BOS", HomeScore: 120, AwayID: "9", AwayName: "Golden State Warriors", AwayAbbr: "GS", AwayScore: 99, HomeWinner: true},
		testutil.ScheduleGame{ID: "3", Date: "2024-01-10T03:00Z", HomeID: "9", AwayID: "5"},
	))
	svc := NewService(fake.Client(), time.UTC, nil)
	svc.now = testutil.NewClock(testutil.MustParseRFC3339("2024-01-10T00:00:00Z")).Now

	got, err := svc.RecentGames(context.Background(), "9")
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "2", got[0].ID)
	assert.False(t, got[0].Won)
	assert.Equal(t, "Boston Celtics", got[0].Opponent)
	assert.Equal(t, "99-120", got[0].Score)
	assert.Equal(t, games.Away, got[0].HomeAway)

	assert.Equal(t, "1", got[1].ID)
	assert.True(t, got[1].Won)
	assert.Equal(t, "110-101", got[1].Score)
	assert.Equal(t, "Jan 5", got[1].Date)
}

func TestRecentGamesRejectsBadTeamID(t *testing.T) {
	fake := testutil.NewFakeESPN(t)
	svc := NewService(fake.Client(), time.UTC, nil)

	for _, id := range []string{"abc", "", "-3", "0"} {
		_, err := svc.RecentGames(context.Background(), id)
		require.Error(t, err, id)
		assert.True(t, errors.Is(err, domain.ErrInvalidInput), id)
	}
	assert.Equal(t, 0, fake.Calls("schedule:abc"))
}
