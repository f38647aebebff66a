package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	appcomps "github.com/malanEvans/soccer-mcp-server/internal/app/competitions"
	appmatches "github.com/malanEvans/soccer-mcp-server/internal/app/matches"
	domaincomps "github.com/malanEvans/soccer-mcp-server/internal/domain/competitions"
	domainmatches "github.com/malanEvans/soccer-mcp-server/internal/domain/matches"
	"github.com/malanEvans/soccer-mcp-server/internal/poller"
	"github.com/malanEvans/soccer-mcp-server/internal/snapshots"
	"github.com/malanEvans/soccer-mcp-server/internal/store"
	"github.com/malanEvans/soccer-mcp-server/internal/teststubs"
)

func newTestHandler(t *testing.T, snaps snapshots.Store) (*Handler, *store.MemoryStore) {
	t.Helper()
	memStore := store.NewMemoryStore()
	h := NewHandler(appcomps.NewService(memStore), appmatches.NewService(memStore), snaps, nil, nil)
	h.now = func() time.Time { return time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC) }
	return h, memStore
}

func TestHealthReturnsOK(t *testing.T) {
	h, _ := newTestHandler(t, nil)

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed decoding body: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestHealthRejectsNonGet(t *testing.T) {
	h, _ := newTestHandler(t, nil)

	rec := httptest.NewRecorder()
	h.Health(rec, httptest.NewRequest(http.MethodPost, "/health", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestReadyWithoutStatusFn(t *testing.T) {
	h, _ := newTestHandler(t, nil)

	rec := httptest.NewRecorder()
	h.Ready(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestReadyReflectsPollerStatus(t *testing.T) {
	h, _ := newTestHandler(t, nil)

	status := poller.Status{LastSuccess: time.Now()}
	h.statusFn = func() poller.Status { return status }

	rec := httptest.NewRecorder()
	h.Ready(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 when ready, got %d", rec.Code)
	}

	status = poller.Status{ConsecutiveFailures: 5, LastError: "upstream down"}
	rec = httptest.NewRecorder()
	h.Ready(rec, httptest.NewRequest(http.MethodGet, "/ready", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 when not ready, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed decoding body: %v", err)
	}
	if body["error"] != "upstream down" {
		t.Fatalf("expected last error surfaced, got %v", body)
	}
}

func TestCompetitionsServesCache(t *testing.T) {
	h, memStore := newTestHandler(t, nil)
	memStore.SetCompetitions([]domaincomps.Competition{
		{ID: "footballdata-2021", Name: "Premier League", Code: "PL"},
		{ID: "footballdata-2014", Name: "La Liga", Code: "PD"},
	})

	rec := httptest.NewRecorder()
	h.Competitions(rec, httptest.NewRequest(http.MethodGet, "/competitions", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body domaincomps.CatalogResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed decoding body: %v", err)
	}
	if len(body.Competitions) != 2 {
		t.Fatalf("expected 2 competitions, got %d", len(body.Competitions))
	}
	// Sorted by name.
	if body.Competitions[0].Code != "PD" {
		t.Fatalf("expected sorted catalog, got %s first", body.Competitions[0].Code)
	}
}

func TestCompetitionsFallsBackToSnapshot(t *testing.T) {
	snaps := &teststubs.StubSnapshotStore{
		Catalog: domaincomps.CatalogResponse{
			UpdatedAt: "2024-03-09T02:00:00Z",
			Competitions: []domaincomps.Competition{
				{ID: "footballdata-2021", Name: "Premier League", Code: "PL"},
			},
		},
	}
	h, _ := newTestHandler(t, snaps)

	rec := httptest.NewRecorder()
	h.Competitions(rec, httptest.NewRequest(http.MethodGet, "/competitions", nil))

	var body domaincomps.CatalogResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed decoding body: %v", err)
	}
	if len(body.Competitions) != 1 || body.UpdatedAt != "2024-03-09T02:00:00Z" {
		t.Fatalf("expected snapshot catalog, got %+v", body)
	}
}

func TestCompetitionByCodeLookups(t *testing.T) {
	h, memStore := newTestHandler(t, nil)
	memStore.SetCompetitions([]domaincomps.Competition{
		{ID: "footballdata-2021", Name: "Premier League", Code: "PL"},
	})

	cases := []struct {
		path   string
		status int
	}{
		{"/competitions/PL", http.StatusOK},
		{"/competitions/pl", http.StatusOK},
		{"/competitions/footballdata-2021", http.StatusOK},
		{"/competitions/XX", http.StatusNotFound},
		{"/competitions/", http.StatusBadRequest},
	}

	for _, c := range cases {
		rec := httptest.NewRecorder()
		h.CompetitionByCode(rec, httptest.NewRequest(http.MethodGet, c.path, nil))
		if rec.Code != c.status {
			t.Fatalf("path %s expected %d, got %d", c.path, c.status, rec.Code)
		}
	}
}

func TestMatchesServesCache(t *testing.T) {
	h, memStore := newTestHandler(t, nil)
	memStore.SetMatches([]domainmatches.Match{
		{ID: "footballdata-1", UTCDate: "2024-03-10T15:00:00Z", Status: domainmatches.StatusTimed},
		{ID: "footballdata-2", UTCDate: "2024-03-10T17:30:00Z", Status: domainmatches.StatusInPlay},
	})

	rec := httptest.NewRecorder()
	h.Matches(rec, httptest.NewRequest(http.MethodGet, "/matches", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body domainmatches.MatchdayResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed decoding body: %v", err)
	}
	if body.Date != "2024-03-10" || len(body.Matches) != 2 {
		t.Fatalf("unexpected payload %+v", body)
	}
	if body.Matches[0].ID != "footballdata-1" {
		t.Fatalf("expected kickoff ordering, got %s first", body.Matches[0].ID)
	}
}

func TestMatchesFiltersByStatus(t *testing.T) {
	h, memStore := newTestHandler(t, nil)
	memStore.SetMatches([]domainmatches.Match{
		{ID: "a", UTCDate: "2024-03-10T15:00:00Z", Status: domainmatches.StatusTimed},
		{ID: "b", UTCDate: "2024-03-10T17:30:00Z", Status: domainmatches.StatusInPlay},
	})

	rec := httptest.NewRecorder()
	h.Matches(rec, httptest.NewRequest(http.MethodGet, "/matches?status=in_play", nil))

	var body domainmatches.MatchdayResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed decoding body: %v", err)
	}
	if len(body.Matches) != 1 || body.Matches[0].ID != "b" {
		t.Fatalf("expected only live match, got %+v", body.Matches)
	}
}

func TestMatchesExplicitDateServesSnapshot(t *testing.T) {
	snaps := &teststubs.StubSnapshotStore{
		Matches: map[string]domainmatches.MatchdayResponse{
			"2024-03-01": domainmatches.NewMatchdayResponse("2024-03-01", []domainmatches.Match{{ID: "old-1"}}),
		},
	}
	h, _ := newTestHandler(t, snaps)

	rec := httptest.NewRecorder()
	h.Matches(rec, httptest.NewRequest(http.MethodGet, "/matches?date=2024-03-01", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body domainmatches.MatchdayResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed decoding body: %v", err)
	}
	if body.Date != "2024-03-01" || len(body.Matches) != 1 {
		t.Fatalf("unexpected payload %+v", body)
	}
}

func TestMatchesInvalidDate(t *testing.T) {
	h, _ := newTestHandler(t, nil)

	rec := httptest.NewRecorder()
	h.Matches(rec, httptest.NewRequest(http.MethodGet, "/matches?date=bad", nil))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestMatchesSnapshotUnavailable(t *testing.T) {
	h, _ := newTestHandler(t, &teststubs.StubSnapshotStore{})

	rec := httptest.NewRecorder()
	h.Matches(rec, httptest.NewRequest(http.MethodGet, "/matches?date=2024-01-01", nil))

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}

func TestMatchesEmptyCacheFallsBackToSnapshot(t *testing.T) {
	snaps := &teststubs.StubSnapshotStore{
		Matches: map[string]domainmatches.MatchdayResponse{
			"2024-03-10": domainmatches.NewMatchdayResponse("2024-03-10", []domainmatches.Match{{ID: "snap-1"}}),
		},
	}
	h, _ := newTestHandler(t, snaps)

	rec := httptest.NewRecorder()
	h.Matches(rec, httptest.NewRequest(http.MethodGet, "/matches", nil))

	var body domainmatches.MatchdayResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed decoding body: %v", err)
	}
	if len(body.Matches) != 1 || body.Matches[0].ID != "snap-1" {
		t.Fatalf("expected snapshot fallback, got %+v", body.Matches)
	}
}
