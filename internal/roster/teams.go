package roster

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/nba-dashboard-service/internal/logging"
	"github.com/preston-bernstein/nba-dashboard-service/internal/providers/espn"
)

const defaultTeamCount = 30

// TeamSource yields the team ids to fan out over, ascending.
type TeamSource interface {
	TeamIDs(ctx context.Context) []int
}

// StaticTeams assumes upstream numbers teams densely from 1 to Count.
type StaticTeams struct {
	Count int
}

func (s StaticTeams) TeamIDs(context.Context) []int {
	count := s.Count
	if count <= 0 {
		count = defaultTeamCount
	}
	ids := make([]int, count)
	for i := range ids {
		ids[i] = i + 1
	}
	return ids
}

type teamLister interface {
	Teams(ctx context.Context) (*espn.TeamsResponse, error)
}

// DiscoveredTeams reads ids from the teams listing and falls back to a static
// range when the listing fails or comes back empty.
type DiscoveredTeams struct {
	lister   teamLister
	fallback StaticTeams
	logger   *slog.Logger
}

// NewDiscoveredTeams builds a discovering source with the given fallback.
func NewDiscoveredTeams(lister teamLister, fallback StaticTeams, logger *slog.Logger) *DiscoveredTeams {
	return &DiscoveredTeams{lister: lister, fallback: fallback, logger: logger}
}

func (d *DiscoveredTeams) TeamIDs(ctx context.Context) []int {
	logger := logging.FromContext(ctx, d.logger)
	resp, err := d.lister.Teams(ctx)
	if err != nil {
		logging.Warn(logger, "team discovery failed, using static range", "err", err)
		return d.fallback.TeamIDs(ctx)
	}
	ids := espn.TeamIDs(resp)
	if len(ids) == 0 {
		logging.Warn(logger, "team discovery returned no teams, using static range")
		return d.fallback.TeamIDs(ctx)
	}
	return ids
}
