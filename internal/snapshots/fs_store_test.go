package snapshots

import (
	"testing"
	"time"

	domaincomps "github.com/malanEvans/soccer-mcp-server/internal/domain/competitions"
)

func TestFSStoreLoadsWrittenSnapshot(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, 10)
	writeSimpleSnapshot(t, w, "2024-03-10")

	store := NewFSStore(dir)
	payload, err := store.LoadMatches("2024-03-10")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if payload.Date != "2024-03-10" {
		t.Fatalf("unexpected date %s", payload.Date)
	}
	if len(payload.Matches) != 1 || payload.Matches[0].ID != "2024-03-10" {
		t.Fatalf("unexpected matches %+v", payload.Matches)
	}
}

func TestFSStoreLoadsCatalog(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, 10)

	snap := domaincomps.CatalogResponse{
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
		Competitions: []domaincomps.Competition{
			{ID: "footballdata-2021", Name: "Premier League", Code: "PL"},
		},
	}
	if err := w.WriteCatalogSnapshot(snap); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	store := NewFSStore(dir)
	catalog, err := store.LoadCatalog()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(catalog.Competitions) != 1 || catalog.Competitions[0].Code != "PL" {
		t.Fatalf("unexpected catalog %+v", catalog)
	}
}

func TestFSStoreErrors(t *testing.T) {
	var nilStore *FSStore
	if _, err := nilStore.LoadMatches("2024-01-01"); err == nil {
		t.Fatalf("expected error for nil store")
	}
	if _, err := nilStore.LoadCatalog(); err == nil {
		t.Fatalf("expected error for nil store")
	}

	store := NewFSStore(t.TempDir())
	if _, err := store.LoadMatches(""); err == nil {
		t.Fatalf("expected error for empty date")
	}
	if _, err := store.LoadMatches("2024-01-01"); err == nil {
		t.Fatalf("expected error for missing snapshot")
	}
	if _, err := store.LoadCatalog(); err == nil {
		t.Fatalf("expected error for missing catalog")
	}
}
