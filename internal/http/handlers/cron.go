package handlers

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/nba-dashboard-service/internal/broadcast"
	"github.com/preston-bernstein/nba-dashboard-service/internal/http/requestutil"
	"github.com/preston-bernstein/nba-dashboard-service/internal/logging"
)

type scoreBroadcaster interface {
	Broadcast(ctx context.Context) (broadcast.Result, error)
}

// CronHandler exposes the externally scheduled score broadcast trigger.
type CronHandler struct {
	broadcaster scoreBroadcaster
	secret      string
	logger      *slog.Logger
}

// NewCronHandler constructs a CronHandler. An empty secret rejects every call.
func NewCronHandler(broadcaster scoreBroadcaster, secret string, logger *slog.Logger) *CronHandler {
	return &CronHandler{
		broadcaster: broadcaster,
		secret:      secret,
		logger:      logger,
	}
}

type updateScoresResponse struct {
	Success    bool   `json:"success"`
	GamesCount int    `json:"gamesCount"`
	Timestamp  string `json:"timestamp"`
}

// UpdateScores fetches fresh scores and broadcasts them to subscribers.
// Guarded by a bearer token; returns 401 when missing or wrong.
func (h *CronHandler) UpdateScores(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	if !h.authorize(r) {
		logging.Warn(logger, "cron trigger unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "Unauthorized", logger)
		return
	}

	result, err := h.broadcaster.Broadcast(r.Context())
	if err != nil {
		logging.Error(logger, "cron score update failed", err)
		writeError(w, r, http.StatusInternalServerError, "Failed to update scores", logger)
		return
	}

	writeJSON(w, http.StatusOK, updateScoresResponse{
		Success:    true,
		GamesCount: result.GamesCount,
		Timestamp:  result.Timestamp,
	}, logger)
}

func (h *CronHandler) authorize(r *http.Request) bool {
	if h.secret == "" {
		return false
	}
	token, ok := requestutil.BearerToken(r)
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(token), []byte(h.secret)) == 1
}
