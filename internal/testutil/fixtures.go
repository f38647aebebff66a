package testutil

import (
	"fmt"

	domaincomps "github.com/malanEvans/soccer-mcp-server/internal/domain/competitions"
	domainmatches "github.com/malanEvans/soccer-mcp-server/internal/domain/matches"
	domainteams "github.com/malanEvans/soccer-mcp-server/internal/domain/teams"
)

// SampleCompetition returns a minimal competition fixture with the provided upstream id.
func SampleCompetition(upstreamID int, name, code string) domaincomps.Competition {
	return domaincomps.Competition{
		ID:       fmt.Sprintf("test-%d", upstreamID),
		Provider: "test",
		Name:     name,
		Code:     code,
		Type:     domaincomps.TypeLeague,
		Meta:     domaincomps.CompetitionMeta{UpstreamCompetitionID: upstreamID},
	}
}

// SampleTeam returns a minimal team fixture.
func SampleTeam(upstreamID int, name string) domainteams.Team {
	return domainteams.Team{
		ID:   fmt.Sprintf("team-%d", upstreamID),
		Name: name,
		Meta: domainteams.TeamMeta{UpstreamTeamID: upstreamID},
	}
}

// SampleMatch returns a minimal scheduled match fixture with the provided id.
func SampleMatch(id, utcDate string) domainmatches.Match {
	return domainmatches.Match{
		ID:       id,
		Provider: "test",
		UTCDate:  utcDate,
		Status:   domainmatches.StatusTimed,
		HomeTeam: SampleTeam(1, "Home"),
		AwayTeam: SampleTeam(2, "Away"),
	}
}

// SampleMatchday builds a MatchdayResponse with a single sample match.
func SampleMatchday(date, id string) domainmatches.MatchdayResponse {
	return domainmatches.NewMatchdayResponse(date, []domainmatches.Match{
		SampleMatch(id, date+"T15:00:00Z"),
	})
}
