package timeutil

import (
	"strings"
	"time"
)

// ShortDateLayout renders dates the way the dashboard shows them, e.g. "Jan 2".
const ShortDateLayout = "Jan 2"

// DefaultLeagueTimezone is where game dates are anchored.
const DefaultLeagueTimezone = "America/New_York"

// FormatShortDate renders t in loc as "Jan 2".
func FormatShortDate(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(ShortDateLayout)
}

// upstream timestamps sometimes drop the seconds ("2024-01-02T00:30Z")
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05Z0700",
}

// ParseTimestamp accepts RFC3339 with or without seconds.
func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// SeasonYear returns the season label upstream expects: a season that tips
// off in October is named after the year it ends.
func SeasonYear(now time.Time) int {
	if now.Month() >= time.October {
		return now.Year() + 1
	}
	return now.Year()
}

// LoadLocation resolves name, returning UTC when it is empty or unknown.
func LoadLocation(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
