package espn

// Name identifies this upstream in logs and metrics.
const Name = "espn"

const (
	DefaultSiteBaseURL      = "https://site.api.espn.com/apis/site/v2/sports/basketball/nba"
	DefaultCommonBaseURL    = "https://site.api.espn.com/apis/common/v3/sports/basketball/nba"
	DefaultStandingsBaseURL = "https://site.api.espn.com/apis/v2/sports/basketball/nba"
)

// Standings group ids for each conference.
const (
	EasternGroup = 5
	WesternGroup = 6
)

// Defaults applied when upstream omits a field.
const (
	UnknownTeam     = "Unknown Team"
	UnknownName     = "Unknown"
	UnknownPosition = "Unknown"
	FreeAgent       = "Free Agent"
	DefaultScore    = "0"
)
