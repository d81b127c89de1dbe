package espn

import (
	"sort"
	"strconv"

	"github.com/preston-bernstein/nba-dashboard-service/internal/domain/players"
)

// Statistic names read from an athlete's stats summary.
const (
	StatAvgPoints    = "avgPoints"
	StatAvgRebounds  = "avgRebounds"
	StatAvgAssists   = "avgAssists"
	StatFieldGoalPct = "fieldGoalPct"
)

// MapRoster flattens one team roster into index entries, preserving roster order.
func MapRoster(r *Roster, diag *Diagnostics) []players.Summary {
	if r == nil {
		diag.Missing("roster")
		return nil
	}

	team := UnknownTeam
	if r.Team != nil && r.Team.DisplayName != "" {
		team = r.Team.DisplayName
	} else {
		diag.Missing("team.displayName")
	}
	if r.Athletes == nil {
		diag.Missing("athletes")
	}

	out := make([]players.Summary, 0, len(r.Athletes))
	for i, a := range r.Athletes {
		if a.ID == "" {
			diag.Missing("athletes[" + strconv.Itoa(i) + "].id")
			continue
		}
		if a.Headshot.Href == "" {
			diag.Missing("athletes[" + strconv.Itoa(i) + "].headshot")
		}
		out = append(out, players.Summary{
			ID:          a.ID,
			DisplayName: a.DisplayName,
			Team:        team,
			Headshot:    a.Headshot.Href,
		})
	}
	return out
}

// MapAthleteDetail extracts a player profile. Statistics upstream did not
// report stay nil.
func MapAthleteDetail(resp *AthleteResponse, diag *Diagnostics) players.Detail {
	detail := players.Detail{
		Name:     UnknownName,
		Team:     FreeAgent,
		Position: UnknownPosition,
	}
	if resp == nil || resp.Athlete == nil {
		diag.Missing("athlete")
		return detail
	}
	a := resp.Athlete

	if a.DisplayName != nil && *a.DisplayName != "" {
		detail.Name = *a.DisplayName
	} else {
		diag.Missing("athlete.displayName")
	}
	if a.Team != nil && a.Team.DisplayName != "" {
		detail.Team = a.Team.DisplayName
	}
	detail.Headshot = a.Headshot.Href
	if a.Position != nil && a.Position.DisplayName != "" {
		detail.Position = a.Position.DisplayName
	} else {
		diag.Missing("athlete.position.displayName")
	}

	var stats []Statistic
	if a.StatsSummary != nil {
		stats = a.StatsSummary.Statistics
	} else {
		diag.Missing("athlete.statsSummary")
	}
	detail.AvgPoints = findStat(stats, StatAvgPoints, diag)
	detail.AvgRebounds = findStat(stats, StatAvgRebounds, diag)
	detail.AvgAssists = findStat(stats, StatAvgAssists, diag)
	detail.FieldGoalPct = findStat(stats, StatFieldGoalPct, diag)
	return detail
}

func findStat(stats []Statistic, name string, diag *Diagnostics) *string {
	for _, s := range stats {
		if s.Name == name && s.DisplayValue != nil {
			v := *s.DisplayValue
			return &v
		}
	}
	diag.Missing("athlete.statsSummary.statistics." + name)
	return nil
}

// TeamIDs returns the numeric team ids in the teams listing, ascending and
// de-duplicated. Non-numeric ids are skipped.
func TeamIDs(resp *TeamsResponse) []int {
	if resp == nil {
		return nil
	}
	seen := make(map[int]struct{})
	var ids []int
	for _, sport := range resp.Sports {
		for _, league := range sport.Leagues {
			for _, entry := range league.Teams {
				id, err := strconv.Atoi(entry.Team.ID)
				if err != nil || id <= 0 {
					continue
				}
				if _, dup := seen[id]; dup {
					continue
				}
				seen[id] = struct{}{}
				ids = append(ids, id)
			}
		}
	}
	sort.Ints(ids)
	return ids
}
