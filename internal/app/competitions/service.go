package competitions

import (
	"sort"

	domaincomps "github.com/malanEvans/soccer-mcp-server/internal/domain/competitions"
)

// Store defines the contract for persisting and retrieving the competition catalog.
type Store interface {
	ListCompetitions() []domaincomps.Competition
	GetCompetition(id string) (domaincomps.Competition, bool)
	GetCompetitionByCode(code string) (domaincomps.Competition, bool)
	SetCompetitions([]domaincomps.Competition)
}

// Service coordinates catalog operations using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Competitions returns the current catalog, sorted by name.
func (s *Service) Competitions() []domaincomps.Competition {
	comps := s.store.ListCompetitions()
	sort.Slice(comps, func(i, j int) bool { return comps[i].Name < comps[j].Name })
	return comps
}

// CompetitionByID returns a single competition if present.
func (s *Service) CompetitionByID(id string) (domaincomps.Competition, bool) {
	return s.store.GetCompetition(id)
}

// CompetitionByCode returns a single competition by upstream code if present.
func (s *Service) CompetitionByCode(code string) (domaincomps.Competition, bool) {
	return s.store.GetCompetitionByCode(code)
}

// ReplaceCompetitions swaps the in-memory catalog with a new snapshot.
func (s *Service) ReplaceCompetitions(comps []domaincomps.Competition) {
	s.store.SetCompetitions(comps)
}

// Names returns the catalog competition names, sorted, for availability messages.
func (s *Service) Names() []string {
	comps := s.store.ListCompetitions()
	names := make([]string, 0, len(comps))
	for _, c := range comps {
		names = append(names, c.Name)
	}
	sort.Strings(names)
	return names
}
