package players

// Summary is one roster entry in the master player index.
type Summary struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Team        string `json:"team"`
	Headshot    string `json:"headshot"`
}

// Detail is the normalized athlete profile. Statistic fields are nil when
// upstream did not report them.
type Detail struct {
	Name         string  `json:"name"`
	Team         string  `json:"team"`
	Headshot     string  `json:"headshot"`
	Position     string  `json:"position"`
	AvgPoints    *string `json:"avgPoints,omitempty"`
	AvgRebounds  *string `json:"avgRebounds,omitempty"`
	AvgAssists   *string `json:"avgAssists,omitempty"`
	FieldGoalPct *string `json:"fieldGoalPct,omitempty"`
}

// Source reports where a Detail was served from.
type Source string

const (
	SourceCache Source = "cache"
	SourceAPI   Source = "api"
)

// Lookup is the result of a detail lookup.
type Lookup struct {
	Player Detail `json:"player"`
	Source Source `json:"source"`
}

// IndexResponse is the payload returned by the player index endpoint.
type IndexResponse struct {
	Results []Summary `json:"results"`
}

// NewIndexResponse never returns a nil slice so the payload encodes as [].
func NewIndexResponse(results []Summary) IndexResponse {
	if results == nil {
		results = []Summary{}
	}
	return IndexResponse{Results: results}
}
