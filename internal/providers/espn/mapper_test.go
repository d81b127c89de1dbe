package espn

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapRosterPreservesOrderAndDefaultsTeam(t *testing.T) {
	raw := `{"athletes":[
		{"id":"3","displayName":"Zed","headshot":{"href":"https://img/3.png"}},
		{"id":"1","displayName":"Amy"},
		{"displayName":"No Id"}
	]}`
	var r Roster
	require.NoError(t, sonic.UnmarshalString(raw, &r))

	var diag Diagnostics
	got := MapRoster(&r, &diag)

	require.Len(t, got, 2)
	assert.Equal(t, "3", got[0].ID)
	assert.Equal(t, "1", got[1].ID)
	assert.Equal(t, UnknownTeam, got[0].Team)
	assert.Equal(t, "https://img/3.png", got[0].Headshot)
	assert.Empty(t, got[1].Headshot)
	assert.Contains(t, diag.Paths(), "team.displayName")
	assert.Contains(t, diag.Paths(), "athletes[2].id")
}

func TestMapRosterHandlesNil(t *testing.T) {
	var diag Diagnostics
	assert.Empty(t, MapRoster(nil, &diag))
	assert.False(t, diag.Empty())
}

func TestMapAthleteDetailLeavesMissingStatsAbsent(t *testing.T) {
	raw := `{"athlete":{
		"displayName":"Stephen Curry",
		"headshot":{"href":"https://img/curry.png"},
		"position":{"displayName":"Point Guard"},
		"team":{"displayName":"Golden State Warriors"},
		"statsSummary":{"statistics":[
			{"name":"avgPoints","displayValue":"26.4"},
			{"name":"avgRebounds","displayValue":"4.5"},
			{"name":"avgAssists","displayValue":"5.1"}
		]}
	}}`
	var resp AthleteResponse
	require.NoError(t, sonic.UnmarshalString(raw, &resp))

	var diag Diagnostics
	detail := MapAthleteDetail(&resp, &diag)

	assert.Equal(t, "Stephen Curry", detail.Name)
	assert.Equal(t, "Golden State Warriors", detail.Team)
	assert.Equal(t, "Point Guard", detail.Position)
	assert.Equal(t, "https://img/curry.png", detail.Headshot)
	require.NotNil(t, detail.AvgPoints)
	assert.Equal(t, "26.4", *detail.AvgPoints)
	require.NotNil(t, detail.AvgAssists)
	assert.Equal(t, "5.1", *detail.AvgAssists)
	assert.Nil(t, detail.FieldGoalPct)
	assert.Equal(t, []string{"athlete.statsSummary.statistics.fieldGoalPct"}, diag.Paths())
}

func TestMapAthleteDetailDefaultsEverything(t *testing.T) {
	var diag Diagnostics
	detail := MapAthleteDetail(&AthleteResponse{Athlete: &Athlete{}}, &diag)

	assert.Equal(t, UnknownName, detail.Name)
	assert.Equal(t, FreeAgent, detail.Team)
	assert.Equal(t, UnknownPosition, detail.Position)
	assert.Empty(t, detail.Headshot)
	assert.Nil(t, detail.AvgPoints)
	assert.Nil(t, detail.AvgRebounds)

	empty := MapAthleteDetail(nil, &diag)
	assert.Equal(t, UnknownName, empty.Name)
}

func TestTeamIDsSortsAndSkipsInvalid(t *testing.T) {
	raw := `{"sports":[{"leagues":[{"teams":[
		{"team":{"id":"10"}},{"team":{"id":"2"}},{"team":{"id":"x"}},{"team":{"id":"2"}},{"team":{"id":"1"}}
	]}]}]}`
	var resp TeamsResponse
	require.NoError(t, sonic.UnmarshalString(raw, &resp))

	assert.Equal(t, []int{1, 2, 10}, TeamIDs(&resp))
	assert.Nil(t, TeamIDs(nil))
}
