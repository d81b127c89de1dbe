package testutil

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/preston-bernstein/nba-dashboard-service/internal/providers/espn"
	"github.com/preston-bernstein/nba-dashboard-service/internal/upstream"
)

// FakeESPN serves canned ESPN payloads. Routes without a configured body
// answer 404; failures configured per team answer with that status.
type FakeESPN struct {
	Server *httptest.Server

	mu         sync.Mutex
	scoreboard string
	teams      string
	rosters    map[int]string
	failing    map[int]int
	schedules  map[int]string
	athletes   map[string]string
	standings  map[int]string
	calls      map[string]int
}

// NewFakeESPN starts a fake upstream that is closed when the test ends.
func NewFakeESPN(t *testing.T) *FakeESPN {
	t.Helper()
	f := &FakeESPN{
		rosters:   make(map[int]string),
		failing:   make(map[int]int),
		schedules: make(map[int]string),
		athletes:  make(map[string]string),
		standings: make(map[int]string),
		calls:     make(map[string]int),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /site/scoreboard", func(w http.ResponseWriter, r *http.Request) {
		f.serve(w, "scoreboard", f.get(func() string { return f.scoreboard }), 0)
	})
	mux.HandleFunc("GET /site/teams", func(w http.ResponseWriter, r *http.Request) {
		f.serve(w, "teams", f.get(func() string { return f.teams }), 0)
	})
	mux.HandleFunc("GET /site/teams/{id}/roster", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.Atoi(r.PathValue("id"))
		f.mu.Lock()
		body, status := f.rosters[id], f.failing[id]
		f.mu.Unlock()
		f.serve(w, "roster:"+r.PathValue("id"), body, status)
	})
	mux.HandleFunc("GET /site/teams/{id}/schedule", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.Atoi(r.PathValue("id"))
		f.serve(w, "schedule:"+r.PathValue("id"), f.get(func() string { return f.schedules[id] }), 0)
	})
	mux.HandleFunc("GET /common/athletes/{id}", func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		f.serve(w, "athlete:"+id, f.get(func() string { return f.athletes[id] }), 0)
	})
	mux.HandleFunc("GET /standings-api/standings", func(w http.ResponseWriter, r *http.Request) {
		group, _ := strconv.Atoi(r.URL.Query().Get("group"))
		f.serve(w, "standings:"+r.URL.Query().Get("group"), f.get(func() string { return f.standings[group] }), 0)
	})

	f.Server = httptest.NewServer(mux)
	t.Cleanup(f.Server.Close)
	return f
}

func (f *FakeESPN) SiteBaseURL() string      { return f.Server.URL + "/site" }
func (f *FakeESPN) CommonBaseURL() string    { return f.Server.URL + "/common" }
func (f *FakeESPN) StandingsBaseURL() string { return f.Server.URL + "/standings-api" }

// Client returns an ESPN client aimed at the fake with millisecond backoff.
func (f *FakeESPN) Client() *espn.Client {
	return espn.NewClient(
		upstream.NewFetcher(upstream.Config{MaxAttempts: 2, BaseDelay: time.Millisecond}),
		espn.NewEndpoints(f.SiteBaseURL(), f.CommonBaseURL(), f.StandingsBaseURL()),
	)
}

func (f *FakeESPN) SetScoreboard(body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scoreboard = body
}

func (f *FakeESPN) SetTeams(body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.teams = body
}

func (f *FakeESPN) SetRoster(teamID int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rosters[teamID] = body
}

// FailRoster makes the roster route for teamID answer with status.
func (f *FakeESPN) FailRoster(teamID int, status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failing[teamID] = status
}

func (f *FakeESPN) SetSchedule(teamID int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.schedules[teamID] = body
}

func (f *FakeESPN) SetAthlete(id string, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.athletes[id] = body
}

func (f *FakeESPN) SetStandings(group int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.standings[group] = body
}

// Calls returns how many requests hit a route key such as "scoreboard",
// "roster:7" or "athlete:3975".
func (f *FakeESPN) Calls(key string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[key]
}

// RosterCalls returns the total number of roster requests.
func (f *FakeESPN) RosterCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for key, n := range f.calls {
		if len(key) > 7 && key[:7] == "roster:" {
			total += n
		}
	}
	return total
}

func (f *FakeESPN) get(read func() string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return read()
}

func (f *FakeESPN) serve(w http.ResponseWriter, key, body string, status int) {
	f.mu.Lock()
	f.calls[key]++
	f.mu.Unlock()

	if status != 0 {
		w.WriteHeader(status)
		return
	}
	if body == "" {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}
