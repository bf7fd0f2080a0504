package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/arunreddynareddy/ipl-dashboard-app/internal/domain/matches"
	"github.com/arunreddynareddy/ipl-dashboard-app/internal/http/middleware"
	"github.com/arunreddynareddy/ipl-dashboard-app/internal/http/requestutil"
	"github.com/arunreddynareddy/ipl-dashboard-app/internal/logging"
	"github.com/arunreddynareddy/ipl-dashboard-app/internal/presenter"
	"github.com/arunreddynareddy/ipl-dashboard-app/internal/providers"
	"github.com/arunreddynareddy/ipl-dashboard-app/internal/view"
)

type teamMatchesResponse struct {
	TeamID   string `json:"teamId"`
	StyleTag string `json:"styleTag"`
	matches.TeamView
	Outcomes matches.OutcomeCounts `json:"outcomes"`
	Chart    []presenter.Slice     `json:"chart"`
}

func newTeamMatchesResponse(snap view.Snapshot) teamMatchesResponse {
	return teamMatchesResponse{
		TeamID:   snap.TeamID,
		StyleTag: snap.StyleTag,
		TeamView: snap.Data,
		Outcomes: snap.Counts,
		Chart:    snap.Slices,
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

func writeHTML(w http.ResponseWriter, status int, body []byte, logger *slog.Logger) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil && logger != nil {
		logger.Error("failed to write response", "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get(requestutil.HeaderRequestID)
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// writeProviderError maps upstream failures onto API statuses.
func writeProviderError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	if rlErr, ok := providers.AsRateLimitError(err); ok {
		if rlErr.RetryAfter > 0 {
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(rlErr.RetryAfter.Seconds()))))
		}
		writeError(w, r, http.StatusServiceUnavailable, "upstream rate limited", logger)
		return
	}

	var statusErr *providers.StatusError
	if errors.Is(err, providers.ErrTeamNotFound) || (errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound) {
		writeError(w, r, http.StatusNotFound, "team not found", logger)
		return
	}

	logging.Warn(loggerFromContext(r, logger), "team matches unavailable", "error", err)
	writeError(w, r, http.StatusBadGateway, "team matches unavailable", logger)
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
