package store

import (
	"strings"
	"sync"

	domaincomps "github.com/malanEvans/soccer-mcp-server/internal/domain/competitions"
	domainmatches "github.com/malanEvans/soccer-mcp-server/internal/domain/matches"
)

// MemoryStore keeps a thread-safe snapshot of the competition catalog and
// the current match list in memory.
type MemoryStore struct {
	mu           sync.RWMutex
	competitions map[string]domaincomps.Competition
	byCode       map[string]string // upper-cased code -> competition ID
	matches      map[string]domainmatches.Match
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		competitions: make(map[string]domaincomps.Competition),
		byCode:       make(map[string]string),
		matches:      make(map[string]domainmatches.Match),
	}
}

// ListCompetitions returns a copy of the current competition catalog.
func (s *MemoryStore) ListCompetitions() []domaincomps.Competition {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domaincomps.Competition, 0, len(s.competitions))
	for _, c := range s.competitions {
		result = append(result, c)
	}
	return result
}

// GetCompetition retrieves a competition by ID.
func (s *MemoryStore) GetCompetition(id string) (domaincomps.Competition, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.competitions[id]
	return c, ok
}

// GetCompetitionByCode retrieves a competition by its upstream code (e.g. "PL").
func (s *MemoryStore) GetCompetitionByCode(code string) (domaincomps.Competition, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byCode[strings.ToUpper(code)]
	if !ok {
		return domaincomps.Competition{}, false
	}
	c, ok := s.competitions[id]
	return c, ok
}

// SetCompetitions replaces the competition catalog with a new snapshot.
func (s *MemoryStore) SetCompetitions(comps []domaincomps.Competition) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.competitions = make(map[string]domaincomps.Competition, len(comps))
	s.byCode = make(map[string]string, len(comps))
	for _, c := range comps {
		s.competitions[c.ID] = c
		if c.Code != "" {
			s.byCode[strings.ToUpper(c.Code)] = c.ID
		}
	}
}

// ListMatches returns a copy of the current matches slice.
func (s *MemoryStore) ListMatches() []domainmatches.Match {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domainmatches.Match, 0, len(s.matches))
	for _, m := range s.matches {
		result = append(result, m)
	}
	return result
}

// GetMatch retrieves a match by ID.
func (s *MemoryStore) GetMatch(id string) (domainmatches.Match, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.matches[id]
	return m, ok
}

// SetMatches replaces the existing matches with a new snapshot.
func (s *MemoryStore) SetMatches(items []domainmatches.Match) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.matches = make(map[string]domainmatches.Match, len(items))
	for _, m := range items {
		s.matches[m.ID] = m
	}
}
