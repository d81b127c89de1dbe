package games

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/nba-dashboard-service/internal/domain/games"
	"github.com/preston-bernstein/nba-dashboard-service/internal/logging"
	"github.com/preston-bernstein/nba-dashboard-service/internal/providers/espn"
	"github.com/preston-bernstein/nba-dashboard-service/internal/scores"
)

type scoreboardFetcher interface {
	Scoreboard(ctx context.Context) (*espn.Scoreboard, error)
}

// Service serves today's games straight from the upstream scoreboard.
// Nothing is cached; every call fetches fresh scores.
type Service struct {
	scoreboard scoreboardFetcher
	logger     *slog.Logger
}

// NewService constructs a Service over the given scoreboard source.
func NewService(scoreboard scoreboardFetcher, logger *slog.Logger) *Service {
	return &Service{scoreboard: scoreboard, logger: logger}
}

// Today fetches and normalizes the current scoreboard.
func (s *Service) Today(ctx context.Context) ([]games.Snapshot, error) {
	board, err := s.scoreboard.Scoreboard(ctx)
	if err != nil {
		return nil, err
	}
	diag := &espn.Diagnostics{}
	snapshots, err := scores.Normalize(board, diag)
	if err != nil {
		return nil, err
	}
	diag.Log(logging.FromContext(ctx, s.logger), "scoreboard payload defaulted fields", logging.FieldCount, len(snapshots))
	return snapshots, nil
}
