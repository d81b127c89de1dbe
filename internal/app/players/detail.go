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
	"github.com/preston-bernstein/nba-dashboard-service/internal/providers/espn"
	"github.com/preston-bernstein/nba-dashboard-service/internal/store"
)

const playerKeyPrefix = "player:"

type indexReader interface {
	Index(ctx context.Context) ([]players.Summary, error)
}

type athleteFetcher interface {
	Athlete(ctx context.Context, id string) (*espn.AthleteResponse, error)
}

// PlayerKey is the cache key for a detail lookup by name or id.
func PlayerKey(query string) string {
	return playerKeyPrefix + strings.ToLower(strings.TrimSpace(query))
}

// DetailCache resolves a name or id against the master index and caches the
// fetched athlete profile per query.
type DetailCache struct {
	store    store.Store
	index    indexReader
	athletes athleteFetcher
	ttl      time.Duration
	logger   *slog.Logger
	metrics  *metrics.Recorder
	group    singleflight.Group
}

func NewDetailCache(s store.Store, index indexReader, athletes athleteFetcher, ttl time.Duration, logger *slog.Logger, recorder *metrics.Recorder) *DetailCache {
	return &DetailCache{
		store:    s,
		index:    index,
		athletes: athletes,
		ttl:      ttl,
		logger:   logger,
		metrics:  recorder,
	}
}

// GetOrFetch returns the cached profile for query, or resolves and fetches it.
func (c *DetailCache) GetOrFetch(ctx context.Context, query string) (players.Lookup, error) {
	return c.lookup(ctx, query, c.resolve)
}

// GetOrFetchByID is GetOrFetch for a known upstream id. The id is fetched
// directly without consulting the master index; the result shares the cache
// entry of a query for the same id.
func (c *DetailCache) GetOrFetchByID(ctx context.Context, id string) (players.Lookup, error) {
	return c.lookup(ctx, id, func(_ context.Context, id string) (string, error) {
		if !isNumeric(id) {
			return "", errors.Mark(errors.Newf("player id %q is not numeric", id), domain.ErrInvalidInput)
		}
		return id, nil
	})
}

type resolveFunc func(ctx context.Context, query string) (string, error)

func (c *DetailCache) lookup(ctx context.Context, query string, resolve resolveFunc) (players.Lookup, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return players.Lookup{}, errors.Mark(errors.New("player name or id is required"), domain.ErrInvalidInput)
	}
	key := PlayerKey(query)
	logger := logging.FromContext(ctx, c.logger)

	cached, ok, err := store.GetJSON[players.Detail](ctx, c.store, key)
	if err != nil {
		logging.Warn(logger, "player detail cache read failed", logging.FieldCacheKey, key, "error", err)
	}
	if ok {
		c.metrics.RecordCacheLookup(cacheDetail, true)
		return players.Lookup{Player: cached, Source: players.SourceCache}, nil
	}
	c.metrics.RecordCacheLookup(cacheDetail, false)

	detail, _, err := shared(ctx, &c.group, key, func(ctx context.Context) (players.Detail, error) {
		return c.fetch(ctx, query, key, resolve)
	})
	if err != nil {
		return players.Lookup{}, err
	}
	return players.Lookup{Player: detail, Source: players.SourceAPI}, nil
}

func (c *DetailCache) fetch(ctx context.Context, query, key string, resolve resolveFunc) (players.Detail, error) {
	logger := logging.FromContext(ctx, c.logger)

	id, err := resolve(ctx, query)
	if err != nil {
		return players.Detail{}, err
	}

	resp, err := c.athletes.Athlete(ctx, id)
	if err != nil {
		return players.Detail{}, err
	}

	diag := &espn.Diagnostics{}
	detail := espn.MapAthleteDetail(resp, diag)
	diag.Log(logger, "athlete payload defaulted fields", logging.FieldPlayerID, id)

	if err := store.SetJSON(ctx, c.store, key, detail, c.ttl); err != nil {
		return players.Detail{}, errors.Mark(err, domain.ErrCacheWrite)
	}
	logging.Info(logger, "player detail cached",
		logging.FieldCacheKey, key,
		logging.FieldPlayerID, id,
	)
	return detail, nil
}

// resolve picks the first index entry whose id equals query or whose display
// name contains it. A numeric query with no match is tried as an id directly.
func (c *DetailCache) resolve(ctx context.Context, query string) (string, error) {
	index, err := c.index.Index(ctx)
	if err != nil {
		return "", err
	}
	lower := strings.ToLower(query)
	for _, p := range index {
		if p.ID == query || strings.Contains(strings.ToLower(p.DisplayName), lower) {
			return p.ID, nil
		}
	}
	if isNumeric(query) {
		return query, nil
	}
	return "", errors.Mark(errors.Newf("no player matches %q", query), domain.ErrNotFound)
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
