package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/robfig/cron/v3"

	"github.com/preston-bernstein/nba-dashboard-service/internal/logging"
)

const defaultJobTimeout = 5 * time.Minute

// Job is a unit of background work run on a cron schedule.
type Job interface {
	Name() string
	Run(ctx context.Context) error
}

// Scheduler runs registered jobs on standard five-field cron schedules in UTC.
type Scheduler struct {
	cron       *cron.Cron
	logger     *slog.Logger
	jobTimeout time.Duration

	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
}

// New constructs a Scheduler. A zero jobTimeout uses five minutes.
func New(logger *slog.Logger, jobTimeout time.Duration) *Scheduler {
	if jobTimeout <= 0 {
		jobTimeout = defaultJobTimeout
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		cron:       cron.New(cron.WithLocation(time.UTC)),
		logger:     logger,
		jobTimeout: jobTimeout,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// AddJob registers job under schedule, e.g. "0 9 * * *" or "@every 1h".
func (s *Scheduler) AddJob(schedule string, job Job) error {
	if _, err := s.cron.AddFunc(schedule, func() { s.run(job) }); err != nil {
		return errors.Wrapf(err, "schedule job %s with %q", job.Name(), schedule)
	}
	logging.Info(s.logger, "job registered", "job", job.Name(), "schedule", schedule)
	return nil
}

// Start runs the cron loop in the background. Jobs inherit ctx values and
// are canceled when ctx is or when Stop is called.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	s.cancel()
	s.ctx, s.cancel = context.WithCancel(ctx)
	s.mu.Unlock()

	s.cron.Start()
	logging.Info(s.logger, "scheduler started", logging.FieldCount, len(s.cron.Entries()))
}

// Stop halts scheduling, cancels running jobs and waits for them to return
// or for ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	s.mu.Lock()
	s.cancel()
	s.mu.Unlock()

	select {
	case <-done.Done():
		logging.Info(s.logger, "scheduler stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// RunNow executes job immediately, outside its schedule.
func (s *Scheduler) RunNow(job Job) error {
	return s.run(job)
}

func (s *Scheduler) run(job Job) error {
	s.mu.Lock()
	base := s.ctx
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(base, s.jobTimeout)
	defer cancel()

	start := time.Now()
	logging.Debug(s.logger, "running job", "job", job.Name())
	if err := job.Run(ctx); err != nil {
		logging.Error(s.logger, "job failed", err, "job", job.Name(), logging.FieldDurationMS, time.Since(start).Milliseconds())
		return err
	}
	logging.Info(s.logger, "job completed", "job", job.Name(), logging.FieldDurationMS, time.Since(start).Milliseconds())
	return nil
}
