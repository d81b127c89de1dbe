package server

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"

	"github.com/preston-bernstein/nba-dashboard-service/internal/broadcast"
	"github.com/preston-bernstein/nba-dashboard-service/internal/config"
	"github.com/preston-bernstein/nba-dashboard-service/internal/logging"
	"github.com/preston-bernstein/nba-dashboard-service/internal/store"
)

var openRedis = store.OpenRedis

// backend pairs the cache store with the broadcast transport; both share one
// Redis connection when REDIS_URL is set.
type backend struct {
	name      string
	store     store.Store
	publisher broadcast.Publisher
	close     func() error
}

func selectBackend(ctx context.Context, cfg config.CacheConfig, logger *slog.Logger) (backend, error) {
	if cfg.RedisURL == "" {
		logging.Warn(logger, "REDIS_URL not set, using in-process cache and log publisher")
		return backend{
			name:      "memory",
			store:     store.NewMemoryStore(),
			publisher: broadcast.NewLogPublisher(logger),
			close:     func() error { return nil },
		}, nil
	}

	client, err := openRedis(ctx, cfg.RedisURL)
	if err != nil {
		return backend{}, errors.Wrap(err, "connect to redis")
	}
	return backend{
		name:      "redis",
		store:     store.NewRedisStore(client),
		publisher: broadcast.NewRedisPublisher(client),
		close:     client.Close,
	}, nil
}
