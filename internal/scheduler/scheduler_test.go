package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/nba-dashboard-service/internal/domain/players"
	"github.com/preston-bernstein/nba-dashboard-service/internal/teststubs"
)

type blockingJob struct {
	started chan struct{}
	err     error
}

func (j *blockingJob) Name() string { return "blocking" }

func (j *blockingJob) Run(ctx context.Context) error {
	close(j.started)
	<-ctx.Done()
	j.err = ctx.Err()
	return j.err
}

func TestAddJobRejectsBadSchedule(t *testing.T) {
	s := New(nil, 0)
	err := s.AddJob("not a schedule", NewIndexRefreshJob(&teststubs.StubIndexRefresher{}, nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "player-index-refresh")
}

func TestAddJobAcceptsFiveFieldSchedules(t *testing.T) {
	s := New(nil, 0)
	require.NoError(t, s.AddJob("0 9 * * *", NewIndexRefreshJob(&teststubs.StubIndexRefresher{}, nil)))
	require.NoError(t, s.AddJob("@every 1h", NewIndexRefreshJob(&teststubs.StubIndexRefresher{}, nil)))
	assert.Len(t, s.cron.Entries(), 2)
}

func TestScheduledJobRuns(t *testing.T) {
	refresher := &teststubs.StubIndexRefresher{
		Players: []players.Summary{{ID: "1"}},
		Notify:  make(chan struct{}),
	}
	s := New(nil, time.Second)
	require.NoError(t, s.AddJob("@every 1s", NewIndexRefreshJob(refresher, nil)))

	s.Start(context.Background())
	defer func() { _ = s.Stop(context.Background()) }()

	select {
	case <-refresher.Notify:
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for scheduled refresh")
	}
}

func TestRunNowSurfacesJobError(t *testing.T) {
	refresher := &teststubs.StubIndexRefresher{Err: errors.New("espn down")}
	s := New(nil, 0)

	err := s.RunNow(NewIndexRefreshJob(refresher, nil))
	require.Error(t, err)
	assert.EqualValues(t, 1, refresher.Calls.Load())
}

func TestStopCancelsRunningJobs(t *testing.T) {
	s := New(nil, time.Minute)
	job := &blockingJob{started: make(chan struct{})}
	s.Start(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.RunNow(job) }()
	<-job.started

	require.NoError(t, s.Stop(context.Background()))
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("job did not observe cancellation")
	}
}

func TestJobTimeoutApplies(t *testing.T) {
	s := New(nil, 10*time.Millisecond)
	job := &blockingJob{started: make(chan struct{})}

	err := s.RunNow(job)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
