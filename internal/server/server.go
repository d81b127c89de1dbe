package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/cockroachdb/errors"

	"github.com/preston-bernstein/nba-dashboard-service/internal/config"
	httpserver "github.com/preston-bernstein/nba-dashboard-service/internal/http"
	"github.com/preston-bernstein/nba-dashboard-service/internal/http/handlers"
	"github.com/preston-bernstein/nba-dashboard-service/internal/logging"
	"github.com/preston-bernstein/nba-dashboard-service/internal/metrics"
	"github.com/preston-bernstein/nba-dashboard-service/internal/poller"
	"github.com/preston-bernstein/nba-dashboard-service/internal/scheduler"
	"github.com/preston-bernstein/nba-dashboard-service/internal/store"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	components    components
	httpServer    httpServer
	metricsServer httpServer
	poller        Poller
	scheduler     Scheduler
	metricsStop   func(context.Context) error
	closeBackend  func() error
}

// New wires the upstream client, cache backend, services and background
// drivers. It fails only when a configured Redis cannot be reached.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Server, error) {
	return newServerWithMetrics(ctx, cfg, logger, nil)
}

func newServerWithMetrics(ctx context.Context, cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*Server, error) {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	be, err := selectBackend(ctx, cfg.Cache, logger)
	if err != nil {
		return nil, err
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	comps := buildComponents(cfg, newESPNClient(cfg.Upstream, logger, recorder), be, logger, recorder)

	var plr Poller
	if cfg.Broadcast.PollEnabled {
		plr = poller.New(comps.broadcaster, logger, recorder, cfg.Broadcast.PollInterval)
	}

	sched, err := buildScheduler(cfg.Scheduler, comps, logger)
	if err != nil {
		_ = be.close()
		return nil, err
	}

	logging.Info(logger, "cache backend selected", "backend", be.name)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		components:    comps,
		httpServer:    buildHTTPServer(cfg, comps, logger, recorder, plr),
		metricsServer: metricsSrv,
		poller:        plr,
		scheduler:     sched,
		metricsStop:   metricsShutdown,
		closeBackend:  be.close,
	}, nil
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, plr Poller, sched Scheduler) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		poller:     plr,
		scheduler:  sched,
	}
}

func buildScheduler(cfg config.SchedulerConfig, comps components, logger *slog.Logger) (Scheduler, error) {
	if cfg.IndexRefreshCron == "" {
		return nil, nil
	}
	sched := scheduler.New(logger, 0)
	if err := sched.AddJob(cfg.IndexRefreshCron, scheduler.NewIndexRefreshJob(comps.index, logger)); err != nil {
		return nil, errors.Wrap(err, "schedule index refresh")
	}
	return sched, nil
}

func buildHTTPServer(cfg config.Config, comps components, logger *slog.Logger, recorder *metrics.Recorder, plr Poller) httpServer {
	var statusFn func() poller.Status
	if plr != nil {
		statusFn = plr.Status
	}

	svc := handlers.Services{
		Index:   comps.index,
		Details: comps.details,
		Games:   comps.games,
		Teams:   comps.teams,
	}
	if redisStore, ok := comps.cache.(*store.RedisStore); ok {
		svc.Cache = redisStore
	}
	handler := handlers.NewHandler(svc, logger, statusFn)
	cron := handlers.NewCronHandler(comps.broadcaster, cfg.Broadcast.CronSecret, logger)
	if cfg.Broadcast.CronSecret == "" {
		logging.Warn(logger, "CRON_SECRET not set, score trigger endpoint will reject all calls")
	}

	router := httpserver.NewRouter(httpserver.RouterConfig{
		Handler:     handler,
		Cron:        cron,
		Logger:      logger,
		Metrics:     recorder,
		CORSOrigins: cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the background drivers and HTTP server, then waits for context
// cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	if s.poller != nil {
		s.poller.Start(ctx)
	}
	if s.scheduler != nil {
		s.scheduler.Start(ctx)
	}

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	logging.Info(s.logger, "http server starting", slog.String("addr", s.httpServer.Addr()))
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	logging.Info(s.logger, "metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", "error", err)
		}
	}

	if s.poller != nil {
		if err := s.poller.Stop(shutdownCtx); err != nil {
			logging.Error(s.logger, "failed to stop poller", err)
		}
	}

	if s.scheduler != nil {
		if err := s.scheduler.Stop(shutdownCtx); err != nil {
			logging.Error(s.logger, "failed to stop scheduler", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
	}

	// Close the cache last; in-flight requests may still be writing to it.
	if s.closeBackend != nil {
		if err := s.closeBackend(); err != nil {
			logging.Warn(s.logger, "cache backend close failed", "error", err)
		}
	}

	logging.Info(s.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           handler,
				ReadHeaderTimeout: readTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Warn(logger, name+" server failed", "error", err)
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
