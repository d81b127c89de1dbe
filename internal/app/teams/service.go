package teams

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/nba-dashboard-service/internal/domain"
	"github.com/preston-bernstein/nba-dashboard-service/internal/domain/games"
	"github.com/preston-bernstein/nba-dashboard-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-dashboard-service/internal/logging"
	"github.com/preston-bernstein/nba-dashboard-service/internal/providers/espn"
	"github.com/preston-bernstein/nba-dashboard-service/internal/scores"
	"github.com/preston-bernstein/nba-dashboard-service/internal/standings"
	"github.com/preston-bernstein/nba-dashboard-service/internal/timeutil"
)

type upstream interface {
	Standings(ctx context.Context, group int) (*espn.StandingsResponse, error)
	Schedule(ctx context.Context, teamID int, season int) (*espn.Schedule, error)
}

// Service serves conference standings and per-team recent results.
type Service struct {
	upstream upstream
	loc      *time.Location
	logger   *slog.Logger
	now      func() time.Time
}

// NewService constructs a Service. loc controls how game dates are labeled;
// nil falls back to the league's home timezone.
func NewService(up upstream, loc *time.Location, logger *slog.Logger) *Service {
	if loc == nil {
		loc = timeutil.LoadLocation(timeutil.DefaultLeagueTimezone)
	}
	return &Service{
		upstream: up,
		loc:      loc,
		logger:   logger,
		now:      time.Now,
	}
}

// Standings fetches both conferences concurrently and aggregates them. Either
// fetch failing fails the whole call.
func (s *Service) Standings(ctx context.Context) (teams.Standings, error) {
	var eastern, western *espn.StandingsResponse

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		resp, err := s.upstream.Standings(gctx, espn.EasternGroup)
		eastern = resp
		return err
	})
	g.Go(func() error {
		resp, err := s.upstream.Standings(gctx, espn.WesternGroup)
		western = resp
		return err
	})
	if err := g.Wait(); err != nil {
		return teams.Standings{}, err
	}

	diag := &espn.Diagnostics{}
	out := standings.Aggregate(eastern, western, diag)
	diag.Log(logging.FromContext(ctx, s.logger), "standings payload defaulted fields")
	return out, nil
}

// RecentGames returns the team's last completed games this season, newest first.
func (s *Service) RecentGames(ctx context.Context, teamID string) ([]games.RecentGame, error) {
	id, err := strconv.Atoi(teamID)
	if err != nil || id <= 0 {
		return nil, errors.Mark(errors.Newf("team id %q must be a positive integer", teamID), domain.ErrInvalidInput)
	}

	schedule, err := s.upstream.Schedule(ctx, id, timeutil.SeasonYear(s.now()))
	if err != nil {
		return nil, err
	}
	return scores.RecentGames(schedule, strconv.Itoa(id), scores.DefaultRecentLimit, s.loc)
}
