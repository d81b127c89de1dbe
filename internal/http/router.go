package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/preston-bernstein/nba-dashboard-service/internal/http/handlers"
	"github.com/preston-bernstein/nba-dashboard-service/internal/http/middleware"
	"github.com/preston-bernstein/nba-dashboard-service/internal/metrics"
)

// RouterConfig carries the collaborators NewRouter wires into routes.
type RouterConfig struct {
	Handler     *handlers.Handler
	Cron        *handlers.CronHandler
	Logger      *slog.Logger
	Metrics     *metrics.Recorder
	CORSOrigins []string
}

// NewRouter registers the API routes on a chi router.
func NewRouter(cfg RouterConfig) nethttp.Handler {
	h := cfg.Handler
	r := chi.NewRouter()

	r.Use(middleware.Logging(cfg.Logger, cfg.Metrics))
	r.Use(middleware.Recover(cfg.Logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodPost, nethttp.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	}))

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)

	r.Route("/api", func(r chi.Router) {
		r.Get("/players/index", h.PlayerIndex)
		r.Get("/players", h.Player)
		r.Get("/players/stats", h.PlayerStats)
		r.Get("/games", h.Games)
		r.Get("/standings", h.Standings)
		r.Get("/recent-games/{teamId}", h.RecentGames)
		if cfg.Cron != nil {
			r.Get("/cron/update-scores", cfg.Cron.UpdateScores)
			r.Post("/cron/update-scores", cfg.Cron.UpdateScores)
		}
	})
	return r
}
