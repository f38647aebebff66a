package competitions

import "github.com/malanEvans/soccer-mcp-server/internal/domain/teams"

// CompetitionType mirrors the upstream classification of a competition.
type CompetitionType string

const (
	TypeLeague CompetitionType = "LEAGUE"
	TypeCup    CompetitionType = "CUP"
)

// Season describes one edition of a competition.
type Season struct {
	ID              int         `json:"id"`
	StartDate       string      `json:"startDate"`
	EndDate         string      `json:"endDate"`
	CurrentMatchday int         `json:"currentMatchday,omitempty"`
	Winner          *teams.Team `json:"winner,omitempty"`
}

// CompetitionMeta stores provider metadata for a competition.
type CompetitionMeta struct {
	UpstreamCompetitionID int    `json:"upstreamCompetitionId"`
	Plan                  string `json:"plan,omitempty"`
}

// Competition is the canonical competition shape exposed by the service.
type Competition struct {
	ID            string          `json:"id"`
	Provider      string          `json:"provider"`
	Name          string          `json:"name"`
	Code          string          `json:"code"`
	Type          CompetitionType `json:"type"`
	Emblem        string          `json:"emblem,omitempty"`
	Area          string          `json:"area,omitempty"`
	CurrentSeason *Season         `json:"currentSeason,omitempty"`
	Seasons       []Season        `json:"seasons,omitempty"`
	Meta          CompetitionMeta `json:"meta"`
}

// CatalogResponse is the payload for the competition catalog snapshot.
type CatalogResponse struct {
	UpdatedAt    string        `json:"updatedAt"`
	Competitions []Competition `json:"competitions"`
}

// NewCatalogResponse builds a CatalogResponse payload.
func NewCatalogResponse(updatedAt string, comps []Competition) CatalogResponse {
	return CatalogResponse{
		UpdatedAt:    updatedAt,
		Competitions: comps,
	}
}
