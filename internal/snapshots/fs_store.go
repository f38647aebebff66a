package snapshots

import (
	"encoding/json"
	"errors"
	"os"

	domaincomps "github.com/malanEvans/soccer-mcp-server/internal/domain/competitions"
	domainmatches "github.com/malanEvans/soccer-mcp-server/internal/domain/matches"
)

// Store defines how snapshots are loaded.
type Store interface {
	LoadMatches(date string) (domainmatches.MatchdayResponse, error)
	LoadCatalog() (domaincomps.CatalogResponse, error)
}

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadMatches reads a matchday snapshot for the given date (YYYY-MM-DD) from disk.
// Files are expected at {basePath}/matches/{date}.json with a MatchdayResponse payload.
func (s *FSStore) LoadMatches(date string) (domainmatches.MatchdayResponse, error) {
	if s == nil {
		return domainmatches.MatchdayResponse{}, errors.New("snapshot store not configured")
	}
	if date == "" {
		return domainmatches.MatchdayResponse{}, errors.New("snapshot date required")
	}
	var payload domainmatches.MatchdayResponse
	if err := s.decodeFile(MatchSnapshotPath(s.basePath, date), &payload); err != nil {
		return domainmatches.MatchdayResponse{}, err
	}
	if payload.Date == "" {
		payload.Date = date
	}
	return payload, nil
}

// LoadCatalog reads the competition catalog snapshot from disk.
func (s *FSStore) LoadCatalog() (domaincomps.CatalogResponse, error) {
	if s == nil {
		return domaincomps.CatalogResponse{}, errors.New("snapshot store not configured")
	}
	var payload domaincomps.CatalogResponse
	if err := s.decodeFile(CatalogSnapshotPath(s.basePath), &payload); err != nil {
		return domaincomps.CatalogResponse{}, err
	}
	return payload, nil
}

func (s *FSStore) decodeFile(path string, payload any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(payload)
}
