package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/nba-dashboard-service/internal/broadcast"
	"github.com/preston-bernstein/nba-dashboard-service/internal/logging"
	"github.com/preston-bernstein/nba-dashboard-service/internal/metrics"
)

const (
	defaultInterval = 30 * time.Second
	// Readiness drops after this many broadcasts fail in a row.
	maxConsecutiveFailures = 3
)

// Broadcaster publishes the current scoreboard once.
type Broadcaster interface {
	Broadcast(ctx context.Context) (broadcast.Result, error)
}

// Poller broadcasts live scores on an interval so subscribers stay current
// without an external trigger. Each cycle is bounded by the interval, so a
// slow upstream never stacks cycles.
type Poller struct {
	broadcaster Broadcaster
	logger      *slog.Logger
	metrics     *metrics.Recorder
	interval    time.Duration
	now         func() time.Time

	mu      sync.Mutex
	started bool
	cancel  context.CancelFunc
	stopped chan struct{}

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
	LastGamesCount      int
}

// IsReady reports whether a broadcast has succeeded and the loop is not
// failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < maxConsecutiveFailures
}

// New constructs a Poller; a non-positive interval falls back to 30s.
func New(broadcaster Broadcaster, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		broadcaster: broadcaster,
		logger:      logger,
		metrics:     recorder,
		interval:    interval,
		now:         time.Now,
	}
}

// Start broadcasts immediately, then once per interval until ctx is
// cancelled or Stop is called. Later calls are no-ops.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return
	}
	p.started = true

	loopCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.stopped = make(chan struct{})
	go p.loop(loopCtx, p.stopped)
}

func (p *Poller) loop(ctx context.Context, stopped chan<- struct{}) {
	defer close(stopped)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	logging.Info(p.logger, "poller started", logging.FieldDurationMS, p.interval.Milliseconds())
	p.broadcastOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			logging.Info(p.logger, "poller stopped")
			return
		case <-ticker.C:
			p.broadcastOnce(ctx)
		}
	}
}

// Stop cancels the loop and waits for an in-flight broadcast to finish or
// for ctx to expire.
func (p *Poller) Stop(ctx context.Context) error {
	p.mu.Lock()
	cancel, stopped := p.cancel, p.stopped
	p.cancel = nil
	p.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()
	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Poller) broadcastOnce(ctx context.Context) {
	cycleCtx, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	start := p.now()
	p.recordAttempt(start)
	result, err := p.broadcaster.Broadcast(cycleCtx)
	elapsed := time.Since(start)
	p.metrics.RecordPollerCycle(elapsed, err)
	if err != nil {
		logging.Error(p.logger, "poller broadcast failed", err, logging.FieldDurationMS, elapsed.Milliseconds())
		p.recordFailure(err, start)
		return
	}

	p.recordSuccess(start, result.GamesCount)
	logging.Info(p.logger, "poller broadcast scores",
		logging.FieldCount, result.GamesCount,
		logging.FieldDurationMS, elapsed.Milliseconds(),
	)
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time, games int) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
	p.status.LastGamesCount = games
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	p.status.LastError = err.Error()
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
