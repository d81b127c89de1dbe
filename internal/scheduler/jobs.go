package scheduler

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/nba-dashboard-service/internal/domain/players"
	"github.com/preston-bernstein/nba-dashboard-service/internal/logging"
)

type indexRefresher interface {
	Refresh(ctx context.Context) ([]players.Summary, error)
}

// IndexRefreshJob rebuilds the master player index and rewrites its cache
// entry ahead of daytime traffic.
type IndexRefreshJob struct {
	index  indexRefresher
	logger *slog.Logger
}

func NewIndexRefreshJob(index indexRefresher, logger *slog.Logger) *IndexRefreshJob {
	return &IndexRefreshJob{index: index, logger: logger}
}

func (j *IndexRefreshJob) Name() string { return "player-index-refresh" }

func (j *IndexRefreshJob) Run(ctx context.Context) error {
	index, err := j.index.Refresh(ctx)
	if err != nil {
		return err
	}
	logging.Info(j.logger, "player index refreshed", logging.FieldCount, len(index))
	return nil
}
