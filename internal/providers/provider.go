package providers

import (
	"context"

	domaincomps "github.com/malanEvans/soccer-mcp-server/internal/domain/competitions"
	domainmatches "github.com/malanEvans/soccer-mcp-server/internal/domain/matches"
	domainstandings "github.com/malanEvans/soccer-mcp-server/internal/domain/standings"
	domainteams "github.com/malanEvans/soccer-mcp-server/internal/domain/teams"
)

// MatchFilter narrows a match fetch. A zero filter means "today, all competitions".
type MatchFilter struct {
	Date          string // YYYY-MM-DD; empty means today upstream
	CompetitionID int    // upstream competition ID; zero means all
	Status        string // upstream status filter (e.g. FINISHED)
}

// CompetitionProvider defines how upstream competition data is fetched and normalized.
type CompetitionProvider interface {
	FetchCompetitions(ctx context.Context) ([]domaincomps.Competition, error)
	FetchCompetition(ctx context.Context, id int) (domaincomps.Competition, error)
}

// TeamProvider fetches normalized teams.
type TeamProvider interface {
	FetchTeams(ctx context.Context, competitionID int, season string) ([]domainteams.Team, error)
	FetchTeam(ctx context.Context, teamID int) (domainteams.Team, error)
}

// MatchProvider fetches normalized matches.
// An empty filter date should be interpreted upstream as "today" (UTC).
type MatchProvider interface {
	FetchMatches(ctx context.Context, filter MatchFilter) ([]domainmatches.Match, error)
}

// StandingsProvider fetches normalized standings tables.
type StandingsProvider interface {
	FetchStandings(ctx context.Context, competitionID int, season string) (domainstandings.Standings, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	CompetitionProvider
	TeamProvider
	MatchProvider
	StandingsProvider
}
