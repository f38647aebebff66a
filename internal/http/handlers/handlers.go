package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	appcomps "github.com/malanEvans/soccer-mcp-server/internal/app/competitions"
	appmatches "github.com/malanEvans/soccer-mcp-server/internal/app/matches"
	domaincomps "github.com/malanEvans/soccer-mcp-server/internal/domain/competitions"
	domainmatches "github.com/malanEvans/soccer-mcp-server/internal/domain/matches"
	"github.com/malanEvans/soccer-mcp-server/internal/poller"
	"github.com/malanEvans/soccer-mcp-server/internal/snapshots"
	"github.com/malanEvans/soccer-mcp-server/internal/timeutil"
)

type nowFunc func() time.Time

// Handler wires HTTP routes to the domain services.
type Handler struct {
	comps    *appcomps.Service
	matches  *appmatches.Service
	snaps    snapshots.Store
	logger   *slog.Logger
	now      nowFunc
	statusFn func() poller.Status
}

// NewHandler constructs a Handler with defaults.
func NewHandler(comps *appcomps.Service, matches *appmatches.Service, snaps snapshots.Store, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		comps:    comps,
		matches:  matches,
		snaps:    snaps,
		logger:   logger,
		now:      time.Now,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	if h.statusFn().IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := h.statusFn().LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

// Competitions returns the cached competition catalog, falling back to the
// catalog snapshot when the cache is cold.
func (h *Handler) Competitions(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)

	comps := h.comps.Competitions()
	updatedAt := h.now().UTC().Format(time.RFC3339)
	if len(comps) == 0 && h.snaps != nil {
		if snap, err := h.snaps.LoadCatalog(); err == nil {
			comps = snap.Competitions
			if snap.UpdatedAt != "" {
				updatedAt = snap.UpdatedAt
			}
			if logger != nil {
				logger.Info("served snapshot catalog", "provider", "snapshot", "count", len(comps))
			}
		}
	}

	writeJSON(w, http.StatusOK, domaincomps.NewCatalogResponse(updatedAt, comps), h.logger)
}

// CompetitionByCode returns a single competition looked up by code or ID.
func (h *Handler) CompetitionByCode(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	// Expect path: /competitions/{code}
	raw := strings.TrimPrefix(r.URL.Path, "/competitions")
	raw = strings.TrimPrefix(raw, "/")
	key, err := url.PathUnescape(raw)
	if err != nil || key == "" || strings.ContainsAny(key, " \t/") {
		writeError(w, r, http.StatusBadRequest, "invalid competition code", h.logger)
		return
	}

	comp, ok := h.comps.CompetitionByCode(key)
	if !ok {
		comp, ok = h.comps.CompetitionByID(key)
	}
	if !ok {
		writeError(w, r, http.StatusNotFound, "competition not found", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, comp, h.logger)
}

// Matches returns the current matchday. An explicit date query serves
// snapshots only; the default path serves the in-memory cache.
func (h *Handler) Matches(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)

	dateParam := r.URL.Query().Get("date")
	statusParam := strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("status")))
	date := timeutil.FormatDate(h.now().UTC())
	items := h.matches.Matches()

	if dateParam != "" {
		if !timeutil.ValidDate(dateParam) {
			writeError(w, r, http.StatusBadRequest, "invalid date format (expected YYYY-MM-DD)", h.logger)
			return
		}
		snap, err := h.loadSnapshot(dateParam)
		if err != nil {
			writeError(w, r, http.StatusBadGateway, "snapshot unavailable", h.logger)
			return
		}
		items = snap.Matches
		date = snap.Date
		if logger != nil {
			logger.Info("served snapshot matches", "date", date, "provider", "snapshot", "count", len(items))
		}
	} else {
		if len(items) == 0 {
			if snap, err := h.loadSnapshot(date); err == nil {
				items = snap.Matches
				date = snap.Date
				if logger != nil {
					logger.Info("served snapshot matches", "date", date, "provider", "snapshot", "count", len(items))
				}
			}
		}
		if logger != nil {
			logger.Info("served cached matches", "date", date, "provider", "cache", "count", len(items))
		}
	}

	if statusParam != "" {
		filtered := make([]domainmatches.Match, 0, len(items))
		for _, m := range items {
			if string(m.Status) == statusParam {
				filtered = append(filtered, m)
			}
		}
		items = filtered
	}

	writeJSON(w, http.StatusOK, domainmatches.NewMatchdayResponse(date, items), h.logger)
}

func (h *Handler) loadSnapshot(date string) (domainmatches.MatchdayResponse, error) {
	if h.snaps == nil {
		return domainmatches.MatchdayResponse{}, errors.New("snapshot store not configured")
	}
	return h.snaps.LoadMatches(date)
}
