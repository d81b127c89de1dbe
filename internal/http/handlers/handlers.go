package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/nba-dashboard-service/internal/domain/games"
	"github.com/preston-bernstein/nba-dashboard-service/internal/domain/players"
	"github.com/preston-bernstein/nba-dashboard-service/internal/domain/teams"
	"github.com/preston-bernstein/nba-dashboard-service/internal/http/requestutil"
	"github.com/preston-bernstein/nba-dashboard-service/internal/logging"
	"github.com/preston-bernstein/nba-dashboard-service/internal/poller"
)

type playerIndex interface {
	Search(ctx context.Context, query string) ([]players.Summary, error)
}

type playerDetails interface {
	GetOrFetch(ctx context.Context, query string) (players.Lookup, error)
	GetOrFetchByID(ctx context.Context, id string) (players.Lookup, error)
}

type gamesService interface {
	Today(ctx context.Context) ([]games.Snapshot, error)
}

type teamsService interface {
	Standings(ctx context.Context) (teams.Standings, error)
	RecentGames(ctx context.Context, teamID string) ([]games.RecentGame, error)
}

type cachePinger interface {
	Ping(ctx context.Context) error
}

// Services are the read-side collaborators behind the API routes. Cache is
// optional; when set, readiness also requires it to answer a ping.
type Services struct {
	Index   playerIndex
	Details playerDetails
	Games   gamesService
	Teams   teamsService
	Cache   cachePinger
}

// Handler serves the dashboard's read endpoints.
type Handler struct {
	svc      Services
	logger   *slog.Logger
	statusFn func() poller.Status
}

// NewHandler constructs a Handler. statusFn is optional; without it the
// service reports ready as soon as it is serving.
func NewHandler(svc Services, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		svc:      svc,
		logger:   logger,
		statusFn: statusFn,
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.svc.Cache != nil {
		if err := h.svc.Cache.Ping(r.Context()); err != nil {
			logging.Warn(loggerFromContext(r, h.logger), "cache ping failed", "error", err)
			writeError(w, r, http.StatusServiceUnavailable, "cache unavailable", h.logger)
			return
		}
	}
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "not found", h.logger)
}

func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
}

// PlayerIndex lists or searches the master player index.
func (h *Handler) PlayerIndex(w http.ResponseWriter, r *http.Request) {
	query := requestutil.Query(r, "q")
	results, err := h.svc.Index.Search(r.Context(), query)
	if err != nil {
		writeServiceError(w, r, err, errorMessages{notFound: "Players not found", failure: "Failed to load players"}, h.logger)
		return
	}
	logging.Debug(loggerFromContext(r, h.logger), "served player index", logging.FieldCount, len(results))
	writeJSON(w, http.StatusOK, players.NewIndexResponse(results), h.logger)
}

// Player looks up one player by name or id.
func (h *Handler) Player(w http.ResponseWriter, r *http.Request) {
	name := requestutil.Query(r, "name")
	if name == "" {
		writeError(w, r, http.StatusBadRequest, "Player name is required", h.logger)
		return
	}
	h.servePlayer(w, r, name, h.svc.Details.GetOrFetch)
}

// PlayerStats looks up one player by upstream id.
func (h *Handler) PlayerStats(w http.ResponseWriter, r *http.Request) {
	id := requestutil.Query(r, "playerID")
	if id == "" {
		writeError(w, r, http.StatusBadRequest, "Player ID is required", h.logger)
		return
	}
	h.servePlayer(w, r, id, h.svc.Details.GetOrFetchByID)
}

func (h *Handler) servePlayer(w http.ResponseWriter, r *http.Request, query string, get func(context.Context, string) (players.Lookup, error)) {
	lookup, err := get(r.Context(), query)
	if err != nil {
		writeServiceError(w, r, err, errorMessages{notFound: "Player not found", failure: "Failed to fetch player stats"}, h.logger)
		return
	}
	logging.Info(loggerFromContext(r, h.logger), "served player",
		logging.FieldQuery, query,
		logging.FieldSource, string(lookup.Source),
	)
	writeJSON(w, http.StatusOK, lookup, h.logger)
}

// Games returns today's scoreboard.
func (h *Handler) Games(w http.ResponseWriter, r *http.Request) {
	snapshots, err := h.svc.Games.Today(r.Context())
	if err != nil {
		writeServiceError(w, r, err, errorMessages{notFound: "Games not found", failure: "Failed to fetch games"}, h.logger)
		return
	}
	if snapshots == nil {
		snapshots = []games.Snapshot{}
	}
	writeJSON(w, http.StatusOK, snapshots, h.logger)
}

// Standings returns both conference tables.
func (h *Handler) Standings(w http.ResponseWriter, r *http.Request) {
	standings, err := h.svc.Teams.Standings(r.Context())
	if err != nil {
		writeServiceError(w, r, err, errorMessages{notFound: "Standings not found", failure: "Failed to fetch standings"}, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, standings, h.logger)
}

// RecentGames returns a team's last completed games.
func (h *Handler) RecentGames(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "teamId")
	recent, err := h.svc.Teams.RecentGames(r.Context(), teamID)
	if err != nil {
		writeServiceError(w, r, err, errorMessages{notFound: "Team not found", failure: "Failed to fetch recent games"}, h.logger)
		return
	}
	if recent == nil {
		recent = []games.RecentGame{}
	}
	writeJSON(w, http.StatusOK, recent, h.logger)
}
