package standings

import (
	"sort"
	"strconv"
	"strings"

	"github.com/preston-bernstein/nba-dashboard-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-dashboard-service/internal/providers/espn"
)

// Statistic names read from a standings entry.
const (
	statWins          = "wins"
	statLosses        = "losses"
	statStreak        = "streak"
	statGamesBack     = "gamesBack"
	statPointsFor     = "avgPointsFor"
	statPointsAgainst = "avgPointsAgainst"
	statDifferential  = "differential"
)

// Aggregate flattens both conference payloads and sorts each by wins,
// descending. Ties keep upstream order.
func Aggregate(eastern, western *espn.StandingsResponse, diag *espn.Diagnostics) teams.Standings {
	return teams.Standings{
		Eastern: Conference(eastern, diag),
		Western: Conference(western, diag),
	}
}

// Conference flattens every division's entries into one table sorted by wins.
func Conference(resp *espn.StandingsResponse, diag *espn.Diagnostics) []teams.Standing {
	entries := flatten(resp, diag)
	out := make([]teams.Standing, 0, len(entries))
	for _, entry := range entries {
		out = append(out, mapEntry(entry, diag))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Wins > out[j].Wins
	})
	return out
}

func flatten(resp *espn.StandingsResponse, diag *espn.Diagnostics) []espn.StandingEntry {
	if resp == nil || resp.Children == nil {
		diag.Missing("children")
		return nil
	}
	var entries []espn.StandingEntry
	for _, division := range resp.Children {
		if division.Standings == nil {
			diag.Missing("children[" + division.Name + "].standings")
			continue
		}
		entries = append(entries, division.Standings.Entries...)
	}
	return entries
}

func mapEntry(entry espn.StandingEntry, diag *espn.Diagnostics) teams.Standing {
	var row teams.Standing
	if t := entry.Team; t != nil {
		row.ID = t.ID
		row.Name = t.DisplayName
		row.Abbreviation = t.Abbreviation
		if len(t.Logos) > 0 && t.Logos[0].Href != "" {
			logo := t.Logos[0].Href
			row.Logo = &logo
		}
	} else {
		diag.Missing("entries.team")
	}

	values := make(map[string]float64, len(entry.Stats))
	display := make(map[string]string, len(entry.Stats))
	for _, s := range entry.Stats {
		if s.Value != nil {
			values[s.Name] = *s.Value
		}
		display[s.Name] = s.DisplayValue
	}

	row.Wins = int(values[statWins])
	row.Losses = int(values[statLosses])
	row.Streak = positive(values[statStreak])
	row.GamesBack = positive(values[statGamesBack])
	row.PointsPerGame = parseDisplay(display, statPointsFor)
	row.PointsAllowed = parseDisplay(display, statPointsAgainst)
	row.PointDiff = parseDisplay(display, statDifferential)
	return row
}

func positive(v float64) float64 {
	if v > 0 {
		return v
	}
	return 0
}

// parseDisplay reads a displayValue such as "+5.2" or "114.3", defaulting to 0.
func parseDisplay(display map[string]string, name string) float64 {
	raw, ok := display[name]
	if !ok {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimPrefix(strings.TrimSpace(raw), "+"), 64)
	if err != nil {
		return 0
	}
	return v
}
