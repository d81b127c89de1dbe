package espn

// Raw upstream payloads. Only the fields we read are declared; pointers and
// nil slices mark what upstream left out.

type Scoreboard struct {
	Events []Event `json:"events"`
}

// Schedule is a team's season schedule; its events share the scoreboard shape.
type Schedule struct {
	Events []Event `json:"events"`
}

type Event struct {
	ID           string        `json:"id"`
	Date         string        `json:"date"`
	Competitions []Competition `json:"competitions"`
}

type Competition struct {
	Competitors []Competitor `json:"competitors"`
	Venue       *Venue       `json:"venue"`
	Status      *Status      `json:"status"`
}

type Competitor struct {
	ID       string        `json:"id"`
	HomeAway string        `json:"homeAway"`
	Score    Score         `json:"score"`
	Winner   *bool         `json:"winner"`
	Team     *Team         `json:"team"`
	Leaders  []LeaderGroup `json:"leaders"`
}

type Team struct {
	ID           string `json:"id"`
	DisplayName  string `json:"displayName"`
	Abbreviation string `json:"abbreviation"`
	Logo         string `json:"logo"`
	Logos        []Logo `json:"logos"`
}

type Logo struct {
	Href string `json:"href"`
}

type LeaderGroup struct {
	Leaders []Leader `json:"leaders"`
}

type Leader struct {
	Athlete *LeaderAthlete `json:"athlete"`
}

type LeaderAthlete struct {
	DisplayName string   `json:"displayName"`
	Headshot    Headshot `json:"headshot"`
}

type Venue struct {
	FullName *string `json:"fullName"`
}

type Status struct {
	Period       *int        `json:"period"`
	DisplayClock *string     `json:"displayClock"`
	Type         *StatusType `json:"type"`
}

type StatusType struct {
	ShortDetail *string `json:"shortDetail"`
	Completed   *bool   `json:"completed"`
	State       string  `json:"state"`
}

type Roster struct {
	Team     *RosterTeam     `json:"team"`
	Athletes []RosterAthlete `json:"athletes"`
}

type RosterTeam struct {
	DisplayName string `json:"displayName"`
}

type RosterAthlete struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"displayName"`
	Headshot    Headshot  `json:"headshot"`
	Position    *Position `json:"position"`
}

type Position struct {
	DisplayName string `json:"displayName"`
}

type AthleteResponse struct {
	Athlete *Athlete `json:"athlete"`
}

type Athlete struct {
	DisplayName  *string       `json:"displayName"`
	Headshot     Headshot      `json:"headshot"`
	Position     *Position     `json:"position"`
	Team         *RosterTeam   `json:"team"`
	StatsSummary *StatsSummary `json:"statsSummary"`
}

type StatsSummary struct {
	Statistics []Statistic `json:"statistics"`
}

type Statistic struct {
	Name         string  `json:"name"`
	DisplayValue *string `json:"displayValue"`
}

type StandingsResponse struct {
	Children []Division `json:"children"`
}

type Division struct {
	Name      string             `json:"name"`
	Standings *DivisionStandings `json:"standings"`
}

type DivisionStandings struct {
	Entries []StandingEntry `json:"entries"`
}

type StandingEntry struct {
	Team  *Team          `json:"team"`
	Stats []StandingStat `json:"stats"`
}

type StandingStat struct {
	Name         string   `json:"name"`
	Value        *float64 `json:"value"`
	DisplayValue string   `json:"displayValue"`
}

type TeamsResponse struct {
	Sports []struct {
		Leagues []struct {
			Teams []struct {
				Team Team `json:"team"`
			} `json:"teams"`
		} `json:"leagues"`
	} `json:"sports"`
}
