package server

import (
	"log/slog"

	"github.com/preston-bernstein/nba-dashboard-service/internal/app/games"
	"github.com/preston-bernstein/nba-dashboard-service/internal/app/players"
	"github.com/preston-bernstein/nba-dashboard-service/internal/app/teams"
	"github.com/preston-bernstein/nba-dashboard-service/internal/broadcast"
	"github.com/preston-bernstein/nba-dashboard-service/internal/config"
	"github.com/preston-bernstein/nba-dashboard-service/internal/metrics"
	"github.com/preston-bernstein/nba-dashboard-service/internal/providers/espn"
	"github.com/preston-bernstein/nba-dashboard-service/internal/roster"
	"github.com/preston-bernstein/nba-dashboard-service/internal/store"
	"github.com/preston-bernstein/nba-dashboard-service/internal/upstream"
)

// components holds the domain services shared by the HTTP layer and the
// background drivers.
type components struct {
	client      *espn.Client
	index       *players.IndexCache
	details     *players.DetailCache
	games       *games.Service
	teams       *teams.Service
	broadcaster *broadcast.Broadcaster
	cache       store.Store
}

func newESPNClient(cfg config.UpstreamConfig, logger *slog.Logger, recorder *metrics.Recorder) *espn.Client {
	fetcher := upstream.NewFetcher(upstream.Config{
		MaxAttempts:     cfg.MaxAttempts,
		BaseDelay:       cfg.BaseDelay,
		HTTPTimeout:     cfg.HTTPTimeout,
		BreakerFailures: cfg.BreakerFailures,
		BreakerCooldown: cfg.BreakerCooldown,
		Logger:          logger,
		Metrics:         recorder,
	})
	return espn.NewClient(fetcher, espn.NewEndpoints(cfg.SiteBaseURL, cfg.CommonBaseURL, cfg.StandingsBaseURL))
}

func teamSource(cfg config.UpstreamConfig, client *espn.Client, logger *slog.Logger) roster.TeamSource {
	static := roster.StaticTeams{Count: cfg.TeamCount}
	if !cfg.TeamDiscovery {
		return static
	}
	return roster.NewDiscoveredTeams(client, static, logger)
}

func buildComponents(cfg config.Config, client *espn.Client, be backend, logger *slog.Logger, recorder *metrics.Recorder) components {
	builder := roster.NewBuilder(client, teamSource(cfg.Upstream, client, logger), cfg.Upstream.FanOutLimit, logger, recorder)
	index := players.NewIndexCache(be.store, builder, cfg.Cache.IndexKey, cfg.Cache.IndexTTL, logger, recorder)
	details := players.NewDetailCache(be.store, index, client, cfg.Cache.PlayerTTL, logger, recorder)
	gameSvc := games.NewService(client, logger)

	return components{
		client:      client,
		index:       index,
		details:     details,
		games:       gameSvc,
		teams:       teams.NewService(client, nil, logger),
		broadcaster: broadcast.NewBroadcaster(gameSvc, be.publisher, cfg.Broadcast.Channel, cfg.Broadcast.Event, logger, recorder),
		cache:       be.store,
	}
}
