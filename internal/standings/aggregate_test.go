package standings

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/nba-dashboard-service/internal/providers/espn"
	"github.com/preston-bernstein/nba-dashboard-service/internal/testutil"
)

func decode(t *testing.T, raw string) *espn.StandingsResponse {
	t.Helper()
	var resp espn.StandingsResponse
	require.NoError(t, sonic.UnmarshalString(raw, &resp))
	return &resp
}

func TestConferenceSortsByWinsAcrossDivisions(t *testing.T) {
	raw := testutil.StandingsJSON(
		[]testutil.StandingTeam{
			{ID: "2", Name: "Boston Celtics", Abbreviation: "BOS", Wins: 45, Losses: 20, Logo: "https://img/bos.png"},
		},
		[]testutil.StandingTeam{
			{ID: "5", Name: "Cleveland Cavaliers", Abbreviation: "CLE", Wins: 50, Losses: 15},
		},
	)

	got := Conference(decode(t, raw), nil)

	require.Len(t, got, 2)
	assert.Equal(t, "CLE", got[0].Abbreviation)
	assert.Equal(t, 50, got[0].Wins)
	assert.Equal(t, "BOS", got[1].Abbreviation)
	assert.Nil(t, got[0].Logo)
	require.NotNil(t, got[1].Logo)
	assert.Equal(t, "https://img/bos.png", *got[1].Logo)
}

func TestConferenceKeepsUpstreamOrderOnTies(t *testing.T) {
	raw := testutil.StandingsJSON(
		[]testutil.StandingTeam{
			{ID: "1", Name: "First", Wins: 30},
			{ID: "2", Name: "Second", Wins: 40},
			{ID: "3", Name: "Third", Wins: 30},
		},
		[]testutil.StandingTeam{
			{ID: "4", Name: "Fourth", Wins: 30},
		},
	)

	got := Conference(decode(t, raw), nil)

	ids := []string{got[0].ID, got[1].ID, got[2].ID, got[3].ID}
	assert.Equal(t, []string{"2", "1", "3", "4"}, ids)
}

func TestMapEntryReadsAndDefaultsStats(t *testing.T) {
	raw := testutil.StandingsJSON([]testutil.StandingTeam{
		{
			ID: "9", Name: "Golden State Warriors", Abbreviation: "GS",
			Wins: 46, Losses: 36, Streak: -2, GamesBack: 11.5,
			PointsFor: "117.8", PointsAgainst: "115.2", Differential: "+2.6",
		},
		{ID: "13", Name: "Los Angeles Lakers", Abbreviation: "LAL", Wins: 47, Losses: 35, Streak: 3},
	})

	got := Conference(decode(t, raw), nil)

	lakers, warriors := got[0], got[1]
	assert.Equal(t, 3.0, lakers.Streak)
	assert.Equal(t, 0.0, lakers.GamesBack)
	assert.Equal(t, 0.0, lakers.PointsPerGame)
	assert.Equal(t, 0.0, lakers.PointDiff)

	assert.Equal(t, 0.0, warriors.Streak, "losing streaks clamp to zero")
	assert.Equal(t, 11.5, warriors.GamesBack)
	assert.Equal(t, 117.8, warriors.PointsPerGame)
	assert.Equal(t, 115.2, warriors.PointsAllowed)
	assert.Equal(t, 2.6, warriors.PointDiff)
	assert.Equal(t, 36, warriors.Losses)
}

func TestAggregateHandlesMissingChildren(t *testing.T) {
	var diag espn.Diagnostics
	got := Aggregate(decode(t, `{}`), decode(t, `{"children":[{"name":"Pacific"}]}`), &diag)

	assert.Empty(t, got.Eastern)
	assert.Empty(t, got.Western)
	assert.Contains(t, diag.Paths(), "children")
	assert.Contains(t, diag.Paths(), "children[Pacific].standings")
}

func TestParseDisplay(t *testing.T) {
	display := map[string]string{"a": "+5.5", "b": "-3", "c": "n/a"}
	assert.Equal(t, 5.5, parseDisplay(display, "a"))
	assert.Equal(t, -3.0, parseDisplay(display, "b"))
	assert.Equal(t, 0.0, parseDisplay(display, "c"))
	assert.Equal(t, 0.0, parseDisplay(display, "missing"))
}
