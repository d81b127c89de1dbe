package handlers

import (
	"log/slog"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"

	"github.com/preston-bernstein/nba-dashboard-service/internal/domain"
	"github.com/preston-bernstein/nba-dashboard-service/internal/http/middleware"
	"github.com/preston-bernstein/nba-dashboard-service/internal/logging"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := sonic.ConfigDefault.NewEncoder(w).Encode(payload); err != nil {
		logging.Error(logger, "failed to encode response", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get(middleware.RequestIDHeader)
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// errorMessages are the client-facing texts for each failure category.
// Internal detail stays in the logs.
type errorMessages struct {
	notFound string
	failure  string
}

// writeServiceError maps an error category to a status: invalid input 400,
// not found 404, anything else 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, msgs errorMessages, fallback *slog.Logger) {
	logger := loggerFromContext(r, fallback)
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		logging.Info(logger, "rejected request", "error", err)
		writeError(w, r, http.StatusBadRequest, errors.UnwrapAll(err).Error(), logger)
	case errors.Is(err, domain.ErrNotFound):
		logging.Info(logger, "resource not found", "error", err)
		writeError(w, r, http.StatusNotFound, msgs.notFound, logger)
	default:
		logging.Error(logger, msgs.failure, err)
		writeError(w, r, http.StatusInternalServerError, msgs.failure, logger)
	}
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
