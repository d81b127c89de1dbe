package config

import "time"

const (
	envPort             = "PORT"
	envMetricsPort      = "METRICS_PORT"
	envMetricsOn        = "METRICS_ENABLED"
	envOtelEndpoint     = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService      = "OTEL_SERVICE_NAME"
	envOtelInsecure     = "OTEL_EXPORTER_OTLP_INSECURE"
	envSiteBaseURL      = "ESPN_SITE_BASE_URL"
	envCommonBaseURL    = "ESPN_COMMON_BASE_URL"
	envStandingsBaseURL = "ESPN_STANDINGS_BASE_URL"
	envMaxAttempts      = "UPSTREAM_MAX_ATTEMPTS"
	envBaseDelay        = "UPSTREAM_BASE_DELAY"
	envHTTPTimeout      = "UPSTREAM_HTTP_TIMEOUT"
	envBreakerFailures  = "UPSTREAM_BREAKER_FAILURES"
	envBreakerCooldown  = "UPSTREAM_BREAKER_COOLDOWN"
	envTeamCount        = "ROSTER_TEAM_COUNT"
	envTeamDiscovery    = "ROSTER_TEAM_DISCOVERY"
	envFanOutLimit      = "ROSTER_FANOUT_LIMIT"
	envRedisURL         = "REDIS_URL"
	envIndexKey         = "CACHE_INDEX_KEY"
	envIndexTTL         = "CACHE_INDEX_TTL"
	envPlayerTTL        = "CACHE_PLAYER_TTL"
	envCronSecret       = "CRON_SECRET"
	envChannel          = "BROADCAST_CHANNEL"
	envEvent            = "BROADCAST_EVENT"
	envPollEnabled      = "BROADCAST_POLL_ENABLED"
	envPollInterval     = "BROADCAST_POLL_INTERVAL"
	envIndexRefreshCron = "INDEX_REFRESH_CRON"
	envCORSOrigins      = "CORS_ALLOWED_ORIGINS"

	defaultPort             = "4000"
	defaultMetricsPort      = "9090"
	defaultSiteBaseURL      = "https://site.api.espn.com/apis/site/v2/sports/basketball/nba"
	defaultCommonBaseURL    = "https://site.api.espn.com/apis/common/v3/sports/basketball/nba"
	defaultStandingsBaseURL = "https://site.api.espn.com/apis/v2/sports/basketball/nba"
	defaultMaxAttempts      = 3
	// First retry waits one second, doubling per attempt.
	defaultBaseDelay       = Duration(time.Second)
	defaultHTTPTimeout     = 10 * Duration(time.Second)
	defaultBreakerFailures = 5
	defaultBreakerCooldown = 30 * Duration(time.Second)
	defaultTeamCount       = 30
	defaultIndexKey        = "players:index"
	// Rosters change slowly; a day is enough for trades and signings to show up.
	defaultIndexTTL = 24 * Duration(time.Hour)
	// Teams play every two or three days, so player averages move slowly.
	defaultPlayerTTL    = 72 * Duration(time.Hour)
	defaultChannel      = "nba-scores"
	defaultEvent        = "score-update"
	defaultPollInterval = 30 * Duration(time.Second)
	// 09:00 UTC, after the last west coast games have finished.
	defaultIndexRefreshCron = "0 9 * * *"
)
