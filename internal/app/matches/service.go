package matches

import (
	"sort"

	domainmatches "github.com/malanEvans/soccer-mcp-server/internal/domain/matches"
)

// Store defines the contract for persisting and retrieving matches.
type Store interface {
	ListMatches() []domainmatches.Match
	GetMatch(id string) (domainmatches.Match, bool)
	SetMatches([]domainmatches.Match)
}

// Service coordinates match operations using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Matches returns the current set of matches, sorted by kickoff then ID.
func (s *Service) Matches() []domainmatches.Match {
	items := s.store.ListMatches()
	sort.Slice(items, func(i, j int) bool {
		if items[i].UTCDate != items[j].UTCDate {
			return items[i].UTCDate < items[j].UTCDate
		}
		return items[i].ID < items[j].ID
	})
	return items
}

// MatchByID returns a single match if present.
func (s *Service) MatchByID(id string) (domainmatches.Match, bool) {
	return s.store.GetMatch(id)
}

// ReplaceMatches swaps the in-memory matches with a new snapshot.
func (s *Service) ReplaceMatches(items []domainmatches.Match) {
	s.store.SetMatches(items)
}

// LiveMatches returns only matches currently in play.
func (s *Service) LiveMatches() []domainmatches.Match {
	all := s.Matches()
	live := make([]domainmatches.Match, 0, len(all))
	for _, m := range all {
		if m.Live() {
			live = append(live, m)
		}
	}
	return live
}
