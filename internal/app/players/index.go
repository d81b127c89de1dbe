package players

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/singleflight"

	"github.com/preston-bernstein/nba-dashboard-service/internal/domain"
	"github.com/preston-bernstein/nba-dashboard-service/internal/domain/players"
	"github.com/preston-bernstein/nba-dashboard-service/internal/logging"
	"github.com/preston-bernstein/nba-dashboard-service/internal/metrics"
	"github.com/preston-bernstein/nba-dashboard-service/internal/roster"
	"github.com/preston-bernstein/nba-dashboard-service/internal/store"
)

const (
	// ListLimit caps an unfiltered index listing.
	ListLimit = 10
	// SearchLimit caps the matches returned for a query.
	SearchLimit = 7

	cacheIndex  = "player_index"
	cacheDetail = "player_detail"

	refreshSuffix = ":refresh"
)

type indexBuilder interface {
	Build(ctx context.Context) (roster.Result, error)
}

// IndexCache serves the master player index cache-aside: read the shared
// entry, rebuild it from every roster when it is absent or empty.
type IndexCache struct {
	store   store.Store
	builder indexBuilder
	key     string
	ttl     time.Duration
	logger  *slog.Logger
	metrics *metrics.Recorder
	group   singleflight.Group
}

// NewIndexCache wires an IndexCache over the shared store.
func NewIndexCache(s store.Store, builder indexBuilder, key string, ttl time.Duration, logger *slog.Logger, recorder *metrics.Recorder) *IndexCache {
	return &IndexCache{
		store:   s,
		builder: builder,
		key:     key,
		ttl:     ttl,
		logger:  logger,
		metrics: recorder,
	}
}

// Search returns the first ListLimit players when query is blank, otherwise up
// to SearchLimit players whose display name contains query, in index order.
func (c *IndexCache) Search(ctx context.Context, query string) ([]players.Summary, error) {
	index, err := c.Index(ctx)
	if err != nil {
		return nil, err
	}
	return filterIndex(index, query), nil
}

// Index returns the full master index, rebuilding it on a miss.
func (c *IndexCache) Index(ctx context.Context) ([]players.Summary, error) {
	logger := logging.FromContext(ctx, c.logger)

	cached, ok, err := store.GetJSON[[]players.Summary](ctx, c.store, c.key)
	if err != nil {
		logging.Warn(logger, "player index cache read failed", logging.FieldCacheKey, c.key, "error", err)
	}
	if ok && len(cached) > 0 {
		c.metrics.RecordCacheLookup(cacheIndex, true)
		return cached, nil
	}
	c.metrics.RecordCacheLookup(cacheIndex, false)
	return c.rebuild(ctx)
}

// Refresh rebuilds the index and overwrites the cache entry regardless of
// what is currently stored. A build that comes back empty, or with more than
// half of the teams failing, leaves the previous entry in place and is
// reported as ErrUpstreamUnavailable.
func (c *IndexCache) Refresh(ctx context.Context) ([]players.Summary, error) {
	index, _, err := shared(ctx, &c.group, c.key+refreshSuffix, func(ctx context.Context) ([]players.Summary, error) {
		result, err := c.builder.Build(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "refresh player index")
		}
		if !healthyBuild(result) {
			logging.Warn(logging.FromContext(ctx, c.logger), "player index refresh degraded, keeping cached index",
				logging.FieldCacheKey, c.key,
				logging.FieldCount, len(result.Players),
				"failed_teams", len(result.FailedTeams),
			)
			return nil, errors.Mark(
				errors.Newf("refresh built %d players with %d of %d teams failing", len(result.Players), len(result.FailedTeams), result.Teams),
				domain.ErrUpstreamUnavailable,
			)
		}
		return c.write(ctx, result)
	})
	return index, err
}

func (c *IndexCache) rebuild(ctx context.Context) ([]players.Summary, error) {
	index, joined, err := shared(ctx, &c.group, c.key, func(ctx context.Context) ([]players.Summary, error) {
		result, err := c.builder.Build(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "build player index")
		}
		return c.write(ctx, result)
	})
	if err != nil {
		return nil, err
	}
	if joined {
		logging.Debug(logging.FromContext(ctx, c.logger), "joined in-flight index build", logging.FieldCacheKey, c.key)
	}
	return index, nil
}

func (c *IndexCache) write(ctx context.Context, result roster.Result) ([]players.Summary, error) {
	if err := store.SetJSON(ctx, c.store, c.key, result.Players, c.ttl); err != nil {
		return nil, errors.Mark(err, domain.ErrCacheWrite)
	}
	logging.Info(logging.FromContext(ctx, c.logger), "player index cached",
		logging.FieldCacheKey, c.key,
		logging.FieldCount, len(result.Players),
	)
	return result.Players, nil
}

func healthyBuild(result roster.Result) bool {
	if len(result.Players) == 0 {
		return false
	}
	return len(result.FailedTeams)*2 <= result.Teams
}

func filterIndex(index []players.Summary, query string) []players.Summary {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		n := min(len(index), ListLimit)
		return append([]players.Summary{}, index[:n]...)
	}

	out := make([]players.Summary, 0, SearchLimit)
	for _, p := range index {
		if strings.Contains(strings.ToLower(p.DisplayName), query) {
			out = append(out, p)
			if len(out) == SearchLimit {
				break
			}
		}
	}
	return out
}
