package server

import (
	"context"

	"github.com/preston-bernstein/nba-dashboard-service/internal/poller"
)

// Poller defines the minimal poller behavior needed by the server.
type Poller interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() poller.Status
}

// Scheduler runs the cron-driven background jobs.
type Scheduler interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
}
