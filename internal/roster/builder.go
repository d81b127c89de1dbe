package roster

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/sourcegraph/conc/iter"

	"github.com/preston-bernstein/nba-dashboard-service/internal/domain/players"
	"github.com/preston-bernstein/nba-dashboard-service/internal/logging"
	"github.com/preston-bernstein/nba-dashboard-service/internal/metrics"
	"github.com/preston-bernstein/nba-dashboard-service/internal/providers/espn"
)

type rosterFetcher interface {
	Roster(ctx context.Context, teamID int) (*espn.Roster, error)
}

// Result is one index build.
type Result struct {
	Players []players.Summary
	// Teams is the number of teams fanned out over.
	Teams int
	// FailedTeams lists teams whose roster could not be fetched, ascending.
	FailedTeams []int
	// Duplicates counts athletes dropped because an earlier team already listed them.
	Duplicates int
}

// Builder fans out one roster request per team and flattens the results.
type Builder struct {
	rosters rosterFetcher
	teams   TeamSource
	fanOut  int
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time
}

// NewBuilder wires a Builder. fanOut caps concurrent roster requests; zero
// or less means one goroutine per team.
func NewBuilder(rosters rosterFetcher, teams TeamSource, fanOut int, logger *slog.Logger, recorder *metrics.Recorder) *Builder {
	if teams == nil {
		teams = StaticTeams{Count: defaultTeamCount}
	}
	return &Builder{
		rosters: rosters,
		teams:   teams,
		fanOut:  fanOut,
		logger:  logger,
		metrics: recorder,
		now:     time.Now,
	}
}

type teamRoster struct {
	teamID  int
	players []players.Summary
	err     error
}

// Build fetches every roster and returns players ordered by ascending team id,
// then upstream roster order. A failed team contributes nothing; only a
// canceled ctx fails the build.
func (b *Builder) Build(ctx context.Context) (Result, error) {
	start := b.now()
	logger := logging.FromContext(ctx, b.logger)

	ids := append([]int(nil), b.teams.TeamIDs(ctx)...)
	sort.Ints(ids)

	limit := b.fanOut
	if limit <= 0 || limit > len(ids) {
		limit = len(ids)
	}
	mapper := iter.Mapper[int, teamRoster]{MaxGoroutines: limit}
	rosters := mapper.Map(ids, func(teamID *int) teamRoster {
		return b.fetchTeam(ctx, *teamID, logger)
	})

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	result := Result{Teams: len(ids), Players: make([]players.Summary, 0, len(ids)*15)}
	seen := make(map[string]int, len(ids)*15)
	for _, r := range rosters {
		if r.err != nil {
			result.FailedTeams = append(result.FailedTeams, r.teamID)
			continue
		}
		for _, p := range r.players {
			if firstTeam, dup := seen[p.ID]; dup {
				result.Duplicates++
				logging.Info(logger, "dropping duplicate athlete from index",
					logging.FieldPlayerID, p.ID,
					logging.FieldTeamID, r.teamID,
					"kept_team_id", firstTeam,
				)
				continue
			}
			seen[p.ID] = r.teamID
			result.Players = append(result.Players, p)
		}
	}

	elapsed := b.now().Sub(start)
	b.metrics.RecordIndexBuild(len(result.Players), len(result.FailedTeams), elapsed)
	logging.Info(logger, "player index built",
		logging.FieldCount, len(result.Players),
		"teams", result.Teams,
		"failed_teams", result.FailedTeams,
		"duplicates", result.Duplicates,
		logging.FieldDurationMS, elapsed.Milliseconds(),
	)
	return result, nil
}

func (b *Builder) fetchTeam(ctx context.Context, teamID int, logger *slog.Logger) teamRoster {
	raw, err := b.rosters.Roster(ctx, teamID)
	if err != nil {
		if ctx.Err() == nil {
			logging.Warn(logger, "roster fetch failed, skipping team",
				logging.FieldTeamID, teamID,
				"err", err,
			)
		}
		return teamRoster{teamID: teamID, err: err}
	}

	var diag espn.Diagnostics
	list := espn.MapRoster(raw, &diag)
	diag.Log(logger, "roster payload had missing fields", logging.FieldTeamID, teamID)
	return teamRoster{teamID: teamID, players: list}
}
