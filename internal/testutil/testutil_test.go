package testutil

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockHelpers(t *testing.T) {
	start := MustParseRFC3339("2024-01-02T03:04:05Z")
	clock := NewClock(start)
	assert.Equal(t, start, clock.Now())

	clock.Advance(90 * time.Second)
	assert.Equal(t, start.Add(90*time.Second), clock.Now())

	assert.Panics(t, func() { MustParseRFC3339("not-a-time") })
}

func TestServeHelpers(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	rr := Serve(handler, http.MethodPost, "/test", strings.NewReader("{}"))
	AssertStatus(t, rr, http.StatusCreated)
	var body map[string]bool
	DecodeJSON(t, rr, &body)
	if !body["ok"] {
		t.Fatalf("expected ok=true")
	}

	req := httptest.NewRequest(http.MethodGet, "/req", nil)
	rr2 := ServeRequest(handler, req)
	AssertStatus(t, rr2, http.StatusCreated)
}

func TestFixturesRenderExpectedShapes(t *testing.T) {
	var roster map[string]any
	require.NoError(t, sonic.UnmarshalString(RosterJSON("Golden State Warriors", RosterAthlete{ID: "3975", Name: "Stephen Curry"}), &roster))
	assert.Equal(t, "Golden State Warriors", roster["team"].(map[string]any)["displayName"])
	assert.Len(t, roster["athletes"], 1)

	var athlete map[string]any
	require.NoError(t, sonic.UnmarshalString(AthleteJSON("Stephen Curry", "Golden State Warriors", "Point Guard", "", map[string]string{"avgPoints": "29.4"}), &athlete))
	stats := athlete["athlete"].(map[string]any)["statsSummary"].(map[string]any)["statistics"].([]any)
	assert.Len(t, stats, 1)

	var teams map[string]any
	require.NoError(t, sonic.UnmarshalString(TeamsJSON("1", "2"), &teams))

	var scoreboard map[string]any
	require.NoError(t, sonic.UnmarshalString(SampleScoreboardJSON, &scoreboard))
	assert.Len(t, scoreboard["events"], 2)
}

func TestFakeESPNServesConfiguredRoutes(t *testing.T) {
	fake := NewFakeESPN(t)
	fake.SetRoster(1, RosterJSON("Atlanta Hawks"))
	fake.FailRoster(7, http.StatusInternalServerError)
	fake.SetScoreboard(SampleScoreboardJSON)

	get := func(url string) int {
		resp, err := http.Get(url)
		require.NoError(t, err)
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		return resp.StatusCode
	}

	assert.Equal(t, http.StatusOK, get(fake.SiteBaseURL()+"/teams/1/roster"))
	assert.Equal(t, http.StatusInternalServerError, get(fake.SiteBaseURL()+"/teams/7/roster"))
	assert.Equal(t, http.StatusNotFound, get(fake.SiteBaseURL()+"/teams/2/roster"))
	assert.Equal(t, http.StatusOK, get(fake.SiteBaseURL()+"/scoreboard"))
	assert.Equal(t, http.StatusNotFound, get(fake.CommonBaseURL()+"/athletes/1"))
	assert.Equal(t, http.StatusNotFound, get(fake.StandingsBaseURL()+"/standings?group=5"))

	assert.Equal(t, 1, fake.Calls("roster:7"))
	assert.Equal(t, 3, fake.RosterCalls())
	assert.Equal(t, 1, fake.Calls("scoreboard"))
}

func TestServerStubs(t *testing.T) {
	p := &StubPoller{Err: errors.New("stop")}
	p.Start(context.Background())
	require.ErrorIs(t, p.Stop(context.Background()), p.Err)
	assert.Equal(t, 1, p.StartCalls())
	assert.Equal(t, 1, p.StopCalls())
	assert.Equal(t, p.StatusVal, p.Status())

	sh := &StubHTTPServer{ListenErr: errors.New("boom"), ShutdownErr: errors.New("down")}
	assert.Error(t, sh.ListenAndServe())
	assert.Error(t, sh.Shutdown(context.Background()))
	assert.Equal(t, 1, sh.ListenCalls())
	assert.Equal(t, 1, sh.ShutdownCalls())
	assert.Equal(t, ":0", sh.Addr())
	assert.NotNil(t, sh.Handler())

	blocking := &StubHTTPServer{Unblock: make(chan struct{})}
	done := make(chan error, 1)
	go func() { done <- blocking.Shutdown(context.Background()) }()
	close(blocking.Unblock)
	require.NoError(t, <-done)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()
	stuck := &StubHTTPServer{Unblock: make(chan struct{})}
	require.ErrorIs(t, stuck.Shutdown(ctx), context.DeadlineExceeded)
}

func TestLoggerAndMetricsHelpers(t *testing.T) {
	logger, buf := NewBufferLogger()
	logger.Info("hello", "k", "v")
	if buf.Len() == 0 {
		t.Fatalf("expected buffered log output")
	}
	rec, shutdown := NewRecorderWithShutdown()
	if rec == nil || shutdown == nil {
		t.Fatalf("expected recorder and shutdown")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected nil shutdown error, got %v", err)
	}
}
