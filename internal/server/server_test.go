package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/malanEvans/soccer-mcp-server/internal/config"
	domainmatches "github.com/malanEvans/soccer-mcp-server/internal/domain/matches"
	"github.com/malanEvans/soccer-mcp-server/internal/poller"
	"github.com/malanEvans/soccer-mcp-server/internal/providers/footballdata"
	"github.com/malanEvans/soccer-mcp-server/internal/teststubs"
)

type stubPoller struct {
	startCalls int
	stopCalls  int
	err        error
	status     poller.Status
}

func (p *stubPoller) Start(_ context.Context) { p.startCalls++ }

func (p *stubPoller) Stop(_ context.Context) error {
	p.stopCalls++
	return p.err
}

func (p *stubPoller) Status() poller.Status { return p.status }

type stubHTTPServer struct {
	addr          string
	handler       http.Handler
	listenCalls   int
	shutdownCalls int
	listenErr     error
	shutdownErr   error
}

func (s *stubHTTPServer) ListenAndServe() error {
	s.listenCalls++
	return s.listenErr
}

func (s *stubHTTPServer) Shutdown(_ context.Context) error {
	s.shutdownCalls++
	return s.shutdownErr
}

func (s *stubHTTPServer) Addr() string          { return s.addr }
func (s *stubHTTPServer) Handler() http.Handler { return s.handler }

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Port:         "0",
		PollInterval: 5 * time.Millisecond,
		Snapshots: config.SnapshotSyncConfig{
			SnapshotFolder: t.TempDir(),
			RetentionDays:  7,
		},
	}
}

func TestServerServesHealthAndMatches(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	match := domainmatches.Match{
		ID:       "stub-1",
		Provider: "stub",
		UTCDate:  "2024-03-10T15:00:00Z",
		Status:   domainmatches.StatusTimed,
	}
	provider := &teststubs.StubProvider{
		Matches: []domainmatches.Match{match},
		Notify:  make(chan struct{}),
	}

	srv := newServerWithProvider(testConfig(t), nil, provider)
	srv.poller.Start(ctx)

	select {
	case <-provider.Notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for poller to fetch")
	}

	router := srv.Handler()

	healthRec := httptest.NewRecorder()
	router.ServeHTTP(healthRec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if healthRec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /health, got %d", healthRec.Code)
	}

	deadline := time.Now().Add(500 * time.Millisecond)
	for {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/matches", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 from /matches, got %d", rec.Code)
		}
		var today domainmatches.MatchdayResponse
		if err := json.NewDecoder(rec.Body).Decode(&today); err != nil {
			t.Fatalf("failed to decode matches response: %v", err)
		}
		if len(today.Matches) == 1 && today.Matches[0].ID == "stub-1" {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("poller never populated matches, got %+v", today.Matches)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestServerMountsMCPEndpoints(t *testing.T) {
	srv := newServerWithProvider(testConfig(t), nil, &teststubs.StubProvider{})
	router := srv.Handler()

	// The message endpoint answers without a session; 404 would mean it was never mounted.
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/message", nil))
	if rec.Code == http.StatusNotFound {
		t.Fatal("expected /message to be mounted")
	}
}

func TestSelectProviderFallsBackToFixture(t *testing.T) {
	provider := selectProvider(config.Config{Provider: "unknown"}, nil)
	if provider == nil {
		t.Fatal("expected provider fallback")
	}
}

func TestSelectProviderChoosesFootballData(t *testing.T) {
	provider := selectProvider(config.Config{
		Provider: "footballdata",
		FootballData: config.FootballDataConfig{
			BaseURL:  "http://example.com",
			APIToken: "token",
		},
	}, nil)
	if _, ok := provider.(*footballdata.Client); !ok {
		t.Fatalf("expected footballdata provider, got %T", provider)
	}
}

func TestNewConstructsServer(t *testing.T) {
	cfg := testConfig(t)
	cfg.Provider = "fixture"
	srv := New(cfg, nil)
	if srv == nil || srv.Handler() == nil {
		t.Fatal("expected server with handler")
	}
}

func TestServerHandlesProviderErrorGracefully(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	provider := &teststubs.StubProvider{Err: errors.New("upstream down")}
	srv := newServerWithProvider(testConfig(t), nil, provider)
	srv.poller.Start(ctx)

	// Give the poller a moment to attempt a fetch.
	time.Sleep(20 * time.Millisecond)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/matches", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /matches, got %d", rec.Code)
	}

	var today domainmatches.MatchdayResponse
	if err := json.NewDecoder(rec.Body).Decode(&today); err != nil {
		t.Fatalf("failed to decode matches response: %v", err)
	}
	if len(today.Matches) != 0 {
		t.Fatalf("expected no matches when provider errors, got %d", len(today.Matches))
	}
}

func TestGracefulShutdownCallsStopAndShutdown(t *testing.T) {
	p := &stubPoller{}
	httpSrv := &stubHTTPServer{}

	srv := newServerWithDeps(config.Config{}, nil, httpSrv, p)
	srv.gracefulShutdown()

	if p.stopCalls != 1 {
		t.Fatalf("expected one poller stop, got %d", p.stopCalls)
	}
	if httpSrv.shutdownCalls != 1 {
		t.Fatalf("expected one http shutdown, got %d", httpSrv.shutdownCalls)
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	p := &stubPoller{}
	httpSrv := &stubHTTPServer{}
	srv := newServerWithDeps(config.Config{}, nil, httpSrv, p)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("run did not return after cancellation")
	}

	if p.startCalls != 1 || p.stopCalls != 1 {
		t.Fatalf("unexpected poller calls start=%d stop=%d", p.startCalls, p.stopCalls)
	}
}

func TestNormalizeProviderName(t *testing.T) {
	if got := normalizeProviderName("FootballData", nil); got != "footballdata" {
		t.Fatalf("expected lower-cased name, got %q", got)
	}
	if got := normalizeProviderName("", nil); got != "provider" {
		t.Fatalf("expected fallback name, got %q", got)
	}
}
