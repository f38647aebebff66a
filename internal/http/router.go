package http

import (
	nethttp "net/http"

	"github.com/malanEvans/soccer-mcp-server/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler, admin *handlers.AdminHandler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/competitions", handler.Competitions)
	mux.HandleFunc("/competitions/", handler.CompetitionByCode)
	mux.HandleFunc("/matches", handler.Matches)
	if admin != nil {
		mux.HandleFunc("/admin/snapshots/refresh", admin.RefreshSnapshots)
	}
	return mux
}
