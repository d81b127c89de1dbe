package espn

import (
	"fmt"
	"net/url"
	"strings"
)

// Endpoints builds upstream URLs from configurable base URLs.
type Endpoints struct {
	SiteBaseURL      string
	CommonBaseURL    string
	StandingsBaseURL string
}

// NewEndpoints trims trailing slashes and fills empty bases with defaults.
func NewEndpoints(site, common, standings string) Endpoints {
	return Endpoints{
		SiteBaseURL:      normalizeBaseURL(site, DefaultSiteBaseURL),
		CommonBaseURL:    normalizeBaseURL(common, DefaultCommonBaseURL),
		StandingsBaseURL: normalizeBaseURL(standings, DefaultStandingsBaseURL),
	}
}

func normalizeBaseURL(raw, fallback string) string {
	if raw == "" {
		raw = fallback
	}
	return strings.TrimSuffix(raw, "/")
}

func (e Endpoints) Scoreboard() string {
	return e.SiteBaseURL + "/scoreboard"
}

func (e Endpoints) Teams() string {
	return e.SiteBaseURL + "/teams"
}

func (e Endpoints) Roster(teamID int) string {
	return fmt.Sprintf("%s/teams/%d/roster", e.SiteBaseURL, teamID)
}

func (e Endpoints) Schedule(teamID int, season int) string {
	return fmt.Sprintf("%s/teams/%d/schedule?season=%d", e.SiteBaseURL, teamID, season)
}

func (e Endpoints) Athlete(id string) string {
	return e.CommonBaseURL + "/athletes/" + url.PathEscape(id)
}

func (e Endpoints) Standings(group int) string {
	return fmt.Sprintf("%s/standings?group=%d", e.StandingsBaseURL, group)
}
