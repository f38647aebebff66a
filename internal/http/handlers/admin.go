package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	domainmatches "github.com/malanEvans/soccer-mcp-server/internal/domain/matches"
	"github.com/malanEvans/soccer-mcp-server/internal/http/middleware"
	"github.com/malanEvans/soccer-mcp-server/internal/logging"
	"github.com/malanEvans/soccer-mcp-server/internal/providers"
	"github.com/malanEvans/soccer-mcp-server/internal/snapshots"
	"github.com/malanEvans/soccer-mcp-server/internal/timeutil"
)

// AdminHandler exposes admin-only endpoints (e.g., snapshot refresh).
type AdminHandler struct {
	writer   *snapshots.Writer
	provider providers.MatchProvider
	token    string
	logger   *slog.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(writer *snapshots.Writer, provider providers.MatchProvider, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		writer:   writer,
		provider: provider,
		token:    token,
		logger:   logger,
	}
}

// RefreshSnapshots writes a matchday snapshot for the requested date (defaults to today).
// Guarded by ADMIN_TOKEN; returns 401 if missing/invalid.
func (h *AdminHandler) RefreshSnapshots(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", middleware.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.provider == nil || h.writer == nil {
		writeError(w, r, http.StatusServiceUnavailable, "snapshot writer not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	date := strings.TrimSpace(r.URL.Query().Get("date"))
	if date == "" {
		date = timeutil.FormatDate(time.Now().UTC())
	}
	if !timeutil.ValidDate(date) {
		logging.Warn(logger, "admin snapshot invalid date", slog.String(logging.FieldDate, date))
		writeError(w, r, http.StatusBadRequest, "invalid date format", logger)
		return
	}

	matches, err := h.provider.FetchMatches(r.Context(), providers.MatchFilter{Date: date})
	if err != nil {
		logging.Warn(logger, "admin snapshot fetch failed",
			slog.String(logging.FieldDate, date),
			slog.Any("err", err),
		)
		writeError(w, r, http.StatusBadGateway, "failed to fetch matches", logger)
		return
	}
	if len(matches) == 0 {
		logging.Warn(logger, "admin snapshot no matches", slog.String(logging.FieldDate, date))
		writeError(w, r, http.StatusBadRequest, "no matches to snapshot", logger)
		return
	}

	snap := domainmatches.NewMatchdayResponse(date, matches)
	if err := h.writer.WriteMatchesSnapshot(date, snap); err != nil {
		logging.Warn(logger, "admin snapshot write failed",
			slog.String(logging.FieldDate, date),
			slog.Int(logging.FieldCount, len(matches)),
			slog.Any("err", err),
		)
		writeError(w, r, http.StatusInternalServerError, "failed to write snapshot", logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"date":      date,
		"snapshots": len(matches),
		"status":    "ok",
	}, logger)
	logging.Info(logger, "admin snapshot written",
		slog.String(logging.FieldDate, date),
		slog.Int(logging.FieldCount, len(matches)),
	)
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	return r.Header.Get("Authorization") == "Bearer "+h.token
}
