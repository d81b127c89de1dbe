package testutil

import (
	"github.com/bytedance/sonic"
)

// RosterAthlete is one athlete in a roster fixture.
type RosterAthlete struct {
	ID       string
	Name     string
	Headshot string
}

// RosterJSON renders a team roster payload. An empty team omits the team block.
func RosterJSON(team string, athletes ...RosterAthlete) string {
	list := make([]map[string]any, 0, len(athletes))
	for _, a := range athletes {
		entry := map[string]any{
			"id":          a.ID,
			"displayName": a.Name,
			"position":    map[string]any{"displayName": "Guard"},
		}
		if a.Headshot != "" {
			entry["headshot"] = map[string]any{"href": a.Headshot}
		}
		list = append(list, entry)
	}
	payload := map[string]any{"athletes": list}
	if team != "" {
		payload["team"] = map[string]any{"displayName": team}
	}
	return mustMarshal(payload)
}

// AthleteJSON renders an athlete detail payload with the given stat displayValues.
func AthleteJSON(name, team, position, headshot string, stats map[string]string) string {
	statistics := make([]map[string]any, 0, len(stats))
	for _, key := range []string{"avgPoints", "avgRebounds", "avgAssists", "fieldGoalPct", "gamesPlayed"} {
		if v, ok := stats[key]; ok {
			statistics = append(statistics, map[string]any{"name": key, "displayValue": v})
		}
	}
	athlete := map[string]any{
		"displayName":  name,
		"headshot":     map[string]any{"href": headshot},
		"position":     map[string]any{"displayName": position},
		"statsSummary": map[string]any{"statistics": statistics},
	}
	if team != "" {
		athlete["team"] = map[string]any{"displayName": team}
	}
	return mustMarshal(map[string]any{"athlete": athlete})
}

// StandingTeam is one row in a standings fixture.
type StandingTeam struct {
	ID            string
	Name          string
	Abbreviation  string
	Logo          string
	Wins          float64
	Losses        float64
	Streak        float64
	GamesBack     float64
	PointsFor     string
	PointsAgainst string
	Differential  string
}

// StandingsJSON renders a conference payload with one division per argument.
func StandingsJSON(divisions ...[]StandingTeam) string {
	children := make([]map[string]any, 0, len(divisions))
	for _, division := range divisions {
		entries := make([]map[string]any, 0, len(division))
		for _, team := range division {
			teamBlock := map[string]any{
				"id":           team.ID,
				"displayName":  team.Name,
				"abbreviation": team.Abbreviation,
			}
			if team.Logo != "" {
				teamBlock["logos"] = []map[string]any{{"href": team.Logo}}
			}
			stats := []map[string]any{
				{"name": "wins", "value": team.Wins},
				{"name": "losses", "value": team.Losses},
				{"name": "streak", "value": team.Streak},
				{"name": "gamesBack", "value": team.GamesBack},
			}
			if team.PointsFor != "" {
				stats = append(stats, map[string]any{"name": "avgPointsFor", "displayValue": team.PointsFor})
			}
			if team.PointsAgainst != "" {
				stats = append(stats, map[string]any{"name": "avgPointsAgainst", "displayValue": team.PointsAgainst})
			}
			if team.Differential != "" {
				stats = append(stats, map[string]any{"name": "differential", "displayValue": team.Differential})
			}
			entries = append(entries, map[string]any{"team": teamBlock, "stats": stats})
		}
		children = append(children, map[string]any{
			"name":      "Division",
			"standings": map[string]any{"entries": entries},
		})
	}
	return mustMarshal(map[string]any{"children": children})
}

// TeamsJSON renders a teams listing containing the given ids.
func TeamsJSON(ids ...string) string {
	teams := make([]map[string]any, 0, len(ids))
	for _, id := range ids {
		teams = append(teams, map[string]any{"team": map[string]any{"id": id}})
	}
	return mustMarshal(map[string]any{
		"sports": []map[string]any{{
			"leagues": []map[string]any{{"teams": teams}},
		}},
	})
}

// ScheduleGame is one event in a team schedule fixture. Scores are passed
// through untouched so callers can exercise string, number and object forms.
type ScheduleGame struct {
	ID         string
	Date       string
	Completed  bool
	HomeID     string
	HomeName   string
	HomeAbbr   string
	HomeScore  any
	AwayID     string
	AwayName   string
	AwayAbbr   string
	AwayScore  any
	HomeWinner bool
}

// ScheduleJSON renders a team schedule payload.
func ScheduleJSON(games ...ScheduleGame) string {
	events := make([]map[string]any, 0, len(games))
	for _, g := range games {
		events = append(events, map[string]any{
			"id":   g.ID,
			"date": g.Date,
			"competitions": []map[string]any{{
				"status": map[string]any{"type": map[string]any{"completed": g.Completed}},
				"competitors": []map[string]any{
					{
						"id":       g.HomeID,
						"homeAway": "home",
						"score":    g.HomeScore,
						"winner":   g.Completed && g.HomeWinner,
						"team":     map[string]any{"id": g.HomeID, "displayName": g.HomeName, "abbreviation": g.HomeAbbr},
					},
					{
						"id":       g.AwayID,
						"homeAway": "away",
						"score":    g.AwayScore,
						"winner":   g.Completed && !g.HomeWinner,
						"team":     map[string]any{"id": g.AwayID, "displayName": g.AwayName, "abbreviation": g.AwayAbbr},
					},
				},
			}},
		})
	}
	return mustMarshal(map[string]any{"events": events})
}

// SampleScoreboardJSON has one live game with explicit home/away tags (away
// listed first) and one scheduled game with no tags, scores or leaders.
const SampleScoreboardJSON = `{
  "events": [
    {
      "id": "401585001",
      "competitions": [
        {
          "venue": {"fullName": "Chase Center"},
          "status": {"period": 3, "displayClock": "5:32", "type": {"shortDetail": "3rd - 5:32", "completed": false, "state": "in"}},
          "competitors": [
            {
              "id": "13",
              "homeAway": "away",
              "score": "88",
              "team": {"id": "13", "displayName": "Los Angeles Lakers", "abbreviation": "LAL", "logo": "https://a.espncdn.com/lal.png"},
              "leaders": [{"leaders": [{"athlete": {"displayName": "LeBron James", "headshot": "https://a.espncdn.com/lebron.png"}}]}]
            },
            {
              "id": "9",
              "homeAway": "home",
              "score": "92",
              "team": {"id": "9", "displayName": "Golden State Warriors", "abbreviation": "GS", "logo": "https://a.espncdn.com/gs.png"},
              "leaders": [{"leaders": [{"athlete": {"displayName": "Stephen Curry", "headshot": "https://a.espncdn.com/curry.png"}}]}]
            }
          ]
        }
      ]
    },
    {
      "id": "401585002",
      "competitions": [
        {
          "status": {"type": {"shortDetail": "1/2 - 7:30 PM EST"}},
          "competitors": [
            {"team": {"displayName": "Boston Celtics", "abbreviation": "BOS", "logo": "https://a.espncdn.com/bos.png"}},
            {"team": {"displayName": "New York Knicks", "abbreviation": "NY", "logo": "https://a.espncdn.com/ny.png"}}
          ]
        }
      ]
    }
  ]
}`

func mustMarshal(v any) string {
	out, err := sonic.MarshalString(v)
	if err != nil {
		panic(err)
	}
	return out
}
