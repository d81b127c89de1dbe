package teams

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestStandingJSONTags(t *testing.T) {
	type fieldCheck struct {
		name string
		tag  string
	}
	standingType := reflect.TypeOf(Standing{})
	fields := []fieldCheck{
		{"ID", "id"},
		{"Name", "name"},
		{"Abbreviation", "abbreviation"},
		{"Logo", "logo"},
		{"Wins", "wins"},
		{"Losses", "losses"},
		{"Streak", "streak"},
		{"GamesBack", "gamesBack"},
		{"PointsPerGame", "pointsPerGame"},
		{"PointsAllowed", "pointsAllowed"},
		{"PointDiff", "pointDiff"},
	}
	for _, fc := range fields {
		f, ok := standingType.FieldByName(fc.name)
		if !ok {
			t.Fatalf("missing field %s", fc.name)
		}
		if tag := f.Tag.Get("json"); tag != fc.tag {
			t.Fatalf("field %s expected tag %s, got %s", fc.name, fc.tag, tag)
		}
	}
}

func TestStandingWithoutLogoEncodesNull(t *testing.T) {
	body, err := json.Marshal(Standing{ID: "9", Name: "Golden State Warriors"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(body), `"logo":null`) {
		t.Fatalf("expected null logo, got %s", body)
	}
}
