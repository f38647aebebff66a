package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	mcpserver "github.com/mark3labs/mcp-go/server"

	appcomps "github.com/malanEvans/soccer-mcp-server/internal/app/competitions"
	appmatches "github.com/malanEvans/soccer-mcp-server/internal/app/matches"
	"github.com/malanEvans/soccer-mcp-server/internal/config"
	httpserver "github.com/malanEvans/soccer-mcp-server/internal/http"
	"github.com/malanEvans/soccer-mcp-server/internal/http/handlers"
	"github.com/malanEvans/soccer-mcp-server/internal/http/middleware"
	"github.com/malanEvans/soccer-mcp-server/internal/llm"
	"github.com/malanEvans/soccer-mcp-server/internal/logging"
	"github.com/malanEvans/soccer-mcp-server/internal/mcptools"
	"github.com/malanEvans/soccer-mcp-server/internal/metrics"
	"github.com/malanEvans/soccer-mcp-server/internal/poller"
	"github.com/malanEvans/soccer-mcp-server/internal/providers"
	"github.com/malanEvans/soccer-mcp-server/internal/store"
)

const (
	serverName    = "soccer-mcp-server"
	serverVersion = "1.0.0"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.MemoryStore
	compsService  *appcomps.Service
	matchService  *appmatches.Service
	httpServer    httpServer
	metricsServer httpServer
	poller        Poller
	syncer        syncRunner
	metricsStop   func(context.Context) error
	syncCancel    context.CancelFunc
}

// syncRunner is the minimal snapshot syncer behavior needed by the server.
type syncRunner interface {
	Run(ctx context.Context)
}

// New constructs a server with default provider and poller wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithProvider(cfg, logger, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.DataProvider) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	if provider == nil {
		provider = newProviderFactory(logger, recorder).build(cfg)
	}

	memoryStore := store.NewMemoryStore()
	compsSvc := appcomps.NewService(memoryStore)
	matchSvc := appmatches.NewService(memoryStore)

	snaps := buildSnapshots(cfg, provider, memoryStore, logger)
	plr := poller.New(provider, memoryStore, snaps.writer, logger, recorder, cfg.PollInterval)
	httpSrv := buildHTTPServer(cfg, compsSvc, matchSvc, logger, provider, recorder, plr, snaps)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         memoryStore,
		compsService:  compsSvc,
		matchService:  matchSvc,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		poller:        plr,
		syncer:        snaps.syncer,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, plr Poller) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		poller:     plr,
	}
}

func buildHTTPServer(cfg config.Config, compsSvc *appcomps.Service, matchSvc *appmatches.Service, logger *slog.Logger, provider providers.DataProvider, recorder *metrics.Recorder, plr Poller, snaps snapshotComponents) httpServer {
	var statusFn func() poller.Status
	if plr != nil {
		statusFn = plr.Status
	}

	handler := handlers.NewHandler(compsSvc, matchSvc, snaps.store, logger, statusFn)
	var admin *handlers.AdminHandler
	if cfg.Snapshots.AdminToken != "" {
		admin = handlers.NewAdminHandler(snaps.writer, provider, cfg.Snapshots.AdminToken, logger)
	}
	router := httpserver.NewRouter(handler, admin)

	mountMCP(cfg, router, compsSvc, matchSvc, provider, recorder, logger)

	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// mountMCP registers the MCP SSE endpoints on the service mux.
func mountMCP(cfg config.Config, router http.Handler, compsSvc *appcomps.Service, matchSvc *appmatches.Service, provider providers.DataProvider, recorder *metrics.Recorder, logger *slog.Logger) {
	mux, ok := router.(*http.ServeMux)
	if !ok {
		return
	}

	var completer llm.Completer
	if cfg.LLM.Enabled() {
		completer = llm.NewClient(llm.Config{
			BaseURL: cfg.LLM.BaseURL,
			APIKey:  cfg.LLM.APIKey,
			Model:   cfg.LLM.Model,
		})
	}
	resolver := llm.NewResolver(completer, logger)

	tools := mcptools.New(compsSvc, matchSvc, provider, resolver, recorder, logger)
	mcpSrv := mcptools.NewServer(serverName, serverVersion, tools)

	publicURL := cfg.PublicURL
	if publicURL == "" {
		publicURL = fmt.Sprintf("http://localhost:%s", cfg.Port)
	}
	sseSrv := mcpserver.NewSSEServer(mcpSrv, mcpserver.WithBaseURL(publicURL))
	mux.Handle("/sse", sseSrv)
	mux.Handle("/message", sseSrv)
}

// Run starts the poller, snapshot syncer and HTTP server, then waits for
// context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	s.startSyncer()
	s.poller.Start(ctx)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
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
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) startSyncer() {
	if s.syncer == nil {
		return
	}
	syncCtx, cancel := context.WithCancel(context.Background())
	s.syncCancel = cancel
	go s.syncer.Run(syncCtx)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.syncCancel != nil {
		s.syncCancel()
	}

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.poller.Stop(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("failed to stop poller", "error", err)
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
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
