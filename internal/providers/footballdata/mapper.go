package footballdata

import (
	"fmt"
	"strings"

	domaincomps "github.com/malanEvans/soccer-mcp-server/internal/domain/competitions"
	domainmatches "github.com/malanEvans/soccer-mcp-server/internal/domain/matches"
	domainstandings "github.com/malanEvans/soccer-mcp-server/internal/domain/standings"
	domainteams "github.com/malanEvans/soccer-mcp-server/internal/domain/teams"
)

func mapCompetition(c competitionResponse) domaincomps.Competition {
	comp := domaincomps.Competition{
		ID:       fmt.Sprintf("%s-%d", providerName, c.ID),
		Provider: providerName,
		Name:     c.Name,
		Code:     c.Code,
		Type:     mapCompetitionType(c.Type),
		Emblem:   c.Emblem,
		Area:     c.Area.Name,
		Meta: domaincomps.CompetitionMeta{
			UpstreamCompetitionID: c.ID,
			Plan:                  c.Plan,
		},
	}
	if c.CurrentSeason != nil {
		season := mapSeason(*c.CurrentSeason)
		comp.CurrentSeason = &season
	}
	for _, s := range c.Seasons {
		comp.Seasons = append(comp.Seasons, mapSeason(s))
	}
	return comp
}

func mapCompetitionType(raw string) domaincomps.CompetitionType {
	switch strings.ToUpper(raw) {
	case "CUP":
		return domaincomps.TypeCup
	default:
		return domaincomps.TypeLeague
	}
}

func mapSeason(s seasonResponse) domaincomps.Season {
	season := domaincomps.Season{
		ID:              s.ID,
		StartDate:       s.StartDate,
		EndDate:         s.EndDate,
		CurrentMatchday: s.CurrentMatchday,
	}
	if s.Winner != nil {
		winner := mapTeam(*s.Winner)
		season.Winner = &winner
	}
	return season
}

func mapTeam(t teamResponse) domainteams.Team {
	return domainteams.Team{
		ID:         fmt.Sprintf("team-%d", t.ID),
		Name:       t.Name,
		ShortName:  t.ShortName,
		TLA:        t.TLA,
		Crest:      t.Crest,
		Address:    t.Address,
		Website:    t.Website,
		Founded:    t.Founded,
		ClubColors: t.ClubColors,
		Venue:      t.Venue,
		Meta: domainteams.TeamMeta{
			UpstreamTeamID: t.ID,
			Area:           t.Area.Name,
		},
	}
}

func mapMatch(m matchResponse) domainmatches.Match {
	return domainmatches.Match{
		ID:       fmt.Sprintf("%s-%d", providerName, m.ID),
		Provider: providerName,
		Competition: domainmatches.CompetitionRef{
			ID:   fmt.Sprintf("%s-%d", providerName, m.Competition.ID),
			Name: m.Competition.Name,
			Code: m.Competition.Code,
		},
		UTCDate:  m.UTCDate,
		Status:   mapStatus(m.Status),
		Matchday: m.Matchday,
		Stage:    m.Stage,
		Group:    m.Group,
		HomeTeam: mapTeam(m.HomeTeam),
		AwayTeam: mapTeam(m.AwayTeam),
		Score:    mapScore(m.Score),
		Meta: domainmatches.MatchMeta{
			UpstreamMatchID: m.ID,
			SeasonID:        m.Season.ID,
			LastUpdated:     m.LastUpdated,
		},
	}
}

func mapStatus(status string) domainmatches.MatchStatus {
	switch strings.ToUpper(status) {
	case "TIMED":
		return domainmatches.StatusTimed
	case "IN_PLAY":
		return domainmatches.StatusInPlay
	case "PAUSED":
		return domainmatches.StatusPaused
	case "FINISHED":
		return domainmatches.StatusFinished
	case "POSTPONED":
		return domainmatches.StatusPostponed
	case "SUSPENDED":
		return domainmatches.StatusSuspended
	case "CANCELLED", "CANCELED":
		return domainmatches.StatusCancelled
	default:
		return domainmatches.StatusScheduled
	}
}

func mapScore(s scoreResponse) domainmatches.ScoreDetails {
	return domainmatches.ScoreDetails{
		Winner:   s.Winner,
		Duration: s.Duration,
		FullTime: mapScorePair(s.FullTime),
		HalfTime: mapScorePair(s.HalfTime),
	}
}

// Upstream reports null goal counts before kickoff.
func mapScorePair(p *scorePairResponse) *domainmatches.Score {
	if p == nil || p.Home == nil || p.Away == nil {
		return nil
	}
	return &domainmatches.Score{Home: *p.Home, Away: *p.Away}
}

func mapStandings(s standingsResponse) domainstandings.Standings {
	out := domainstandings.Standings{
		Competition: s.Competition.Name,
		Season:      formatSeasonLabel(s.Season),
	}
	for _, table := range s.Standings {
		mapped := domainstandings.Table{
			Stage: table.Stage,
			Type:  table.Type,
			Group: table.Group,
		}
		for _, row := range table.Table {
			mapped.Entries = append(mapped.Entries, domainstandings.Entry{
				Position:       row.Position,
				Team:           mapTeam(row.Team),
				PlayedGames:    row.PlayedGames,
				Won:            row.Won,
				Draw:           row.Draw,
				Lost:           row.Lost,
				Points:         row.Points,
				GoalsFor:       row.GoalsFor,
				GoalsAgainst:   row.GoalsAgainst,
				GoalDifference: row.GoalDifference,
				Form:           row.Form,
			})
		}
		out.Tables = append(out.Tables, mapped)
	}
	return out
}

func formatSeasonLabel(s seasonResponse) string {
	start := yearOf(s.StartDate)
	end := yearOf(s.EndDate)
	if start == "" {
		return ""
	}
	if end == "" || end == start {
		return start
	}
	return start + "/" + end
}

func yearOf(date string) string {
	if len(date) < 4 {
		return ""
	}
	return date[:4]
}
