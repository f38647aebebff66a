package teststubs

import (
	"context"
	"errors"
	"sync/atomic"

	domaincomps "github.com/malanEvans/soccer-mcp-server/internal/domain/competitions"
	domainmatches "github.com/malanEvans/soccer-mcp-server/internal/domain/matches"
	domainstandings "github.com/malanEvans/soccer-mcp-server/internal/domain/standings"
	domainteams "github.com/malanEvans/soccer-mcp-server/internal/domain/teams"
	"github.com/malanEvans/soccer-mcp-server/internal/providers"
)

// StubProvider is a test double for providers.DataProvider.
type StubProvider struct {
	Competitions []domaincomps.Competition
	Matches      []domainmatches.Match
	Teams        []domainteams.Team
	Standings    domainstandings.Standings
	Err          error
	Calls        atomic.Int32
	Notify       chan struct{}
}

func (s *StubProvider) track() {
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
}

// FetchCompetitions returns the configured catalog and error while tracking calls.
func (s *StubProvider) FetchCompetitions(_ context.Context) ([]domaincomps.Competition, error) {
	s.track()
	return s.Competitions, s.Err
}

// FetchCompetition returns the configured competition matching the upstream ID.
func (s *StubProvider) FetchCompetition(_ context.Context, id int) (domaincomps.Competition, error) {
	s.track()
	if s.Err != nil {
		return domaincomps.Competition{}, s.Err
	}
	for _, comp := range s.Competitions {
		if comp.Meta.UpstreamCompetitionID == id {
			return comp, nil
		}
	}
	return domaincomps.Competition{}, providers.ErrNotFound
}

// FetchTeams returns configured teams and error while tracking calls.
func (s *StubProvider) FetchTeams(_ context.Context, _ int, _ string) ([]domainteams.Team, error) {
	s.track()
	return s.Teams, s.Err
}

// FetchTeam returns the configured team matching the upstream ID.
func (s *StubProvider) FetchTeam(_ context.Context, teamID int) (domainteams.Team, error) {
	s.track()
	if s.Err != nil {
		return domainteams.Team{}, s.Err
	}
	for _, team := range s.Teams {
		if team.Meta.UpstreamTeamID == teamID {
			return team, nil
		}
	}
	return domainteams.Team{}, providers.ErrNotFound
}

// FetchMatches returns configured matches and error while tracking calls.
func (s *StubProvider) FetchMatches(_ context.Context, _ providers.MatchFilter) ([]domainmatches.Match, error) {
	s.track()
	return s.Matches, s.Err
}

// FetchStandings returns configured standings and error while tracking calls.
func (s *StubProvider) FetchStandings(_ context.Context, _ int, _ string) (domainstandings.Standings, error) {
	s.track()
	return s.Standings, s.Err
}

// StubSnapshotStore is a test double for snapshots.Store.
type StubSnapshotStore struct {
	Matches map[string]domainmatches.MatchdayResponse // keyed by date
	Catalog domaincomps.CatalogResponse
	LoadErr error
}

// LoadMatches returns matches for the given date if present in the Matches map.
func (s *StubSnapshotStore) LoadMatches(date string) (domainmatches.MatchdayResponse, error) {
	if s.LoadErr != nil {
		return domainmatches.MatchdayResponse{}, s.LoadErr
	}
	if s.Matches == nil {
		return domainmatches.MatchdayResponse{}, errors.New("snapshot not found")
	}
	resp, ok := s.Matches[date]
	if !ok {
		return domainmatches.MatchdayResponse{}, errors.New("snapshot not found")
	}
	return resp, nil
}

// LoadCatalog returns the configured catalog snapshot.
func (s *StubSnapshotStore) LoadCatalog() (domaincomps.CatalogResponse, error) {
	if s.LoadErr != nil {
		return domaincomps.CatalogResponse{}, s.LoadErr
	}
	return s.Catalog, nil
}

// StubSnapshotWriter is a test double for poller.SnapshotWriter.
type StubSnapshotWriter struct {
	Written        map[string]domainmatches.MatchdayResponse // keyed by date
	CatalogWritten *domaincomps.CatalogResponse
	Err            error
}

// WriteMatchesSnapshot records the snapshot for verification in tests.
func (w *StubSnapshotWriter) WriteMatchesSnapshot(date string, snapshot domainmatches.MatchdayResponse) error {
	if w.Err != nil {
		return w.Err
	}
	if w.Written == nil {
		w.Written = make(map[string]domainmatches.MatchdayResponse)
	}
	w.Written[date] = snapshot
	return nil
}

// WriteCatalogSnapshot records the catalog snapshot for verification in tests.
func (w *StubSnapshotWriter) WriteCatalogSnapshot(snapshot domaincomps.CatalogResponse) error {
	if w.Err != nil {
		return w.Err
	}
	w.CatalogWritten = &snapshot
	return nil
}
