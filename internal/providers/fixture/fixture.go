package fixture

import (
	"context"
	"fmt"
	"time"

	domaincomps "github.com/malanEvans/soccer-mcp-server/internal/domain/competitions"
	domainmatches "github.com/malanEvans/soccer-mcp-server/internal/domain/matches"
	domainstandings "github.com/malanEvans/soccer-mcp-server/internal/domain/standings"
	domainteams "github.com/malanEvans/soccer-mcp-server/internal/domain/teams"
	"github.com/malanEvans/soccer-mcp-server/internal/providers"
	"github.com/malanEvans/soccer-mcp-server/internal/timeutil"
)

const (
	premierLeagueID   = 2021
	championsLeagueID = 2001
)

// Provider returns a static data set useful for local testing and bootstrapping.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// FetchCompetitions returns a deterministic competition catalog.
func (p *Provider) FetchCompetitions(ctx context.Context) ([]domaincomps.Competition, error) {
	_ = ctx
	return []domaincomps.Competition{
		premierLeague(),
		championsLeague(),
	}, nil
}

// FetchCompetition returns a single competition from the static catalog.
func (p *Provider) FetchCompetition(ctx context.Context, id int) (domaincomps.Competition, error) {
	_ = ctx
	switch id {
	case premierLeagueID:
		return premierLeague(), nil
	case championsLeagueID:
		return championsLeague(), nil
	default:
		return domaincomps.Competition{}, fmt.Errorf("fixture: competition %d: %w", id, providers.ErrNotFound)
	}
}

// FetchTeams returns a deterministic team list for a competition.
func (p *Provider) FetchTeams(ctx context.Context, competitionID int, season string) ([]domainteams.Team, error) {
	_ = ctx
	_ = season
	if competitionID != premierLeagueID && competitionID != championsLeagueID {
		return nil, fmt.Errorf("fixture: competition %d: %w", competitionID, providers.ErrNotFound)
	}
	return []domainteams.Team{
		arsenal(),
		liverpool(),
		manCity(),
		chelsea(),
	}, nil
}

// FetchTeam returns a single team from the static data set.
func (p *Provider) FetchTeam(ctx context.Context, teamID int) (domainteams.Team, error) {
	_ = ctx
	for _, team := range []domainteams.Team{arsenal(), liverpool(), manCity(), chelsea()} {
		if team.Meta.UpstreamTeamID == teamID {
			return team, nil
		}
	}
	return domainteams.Team{}, fmt.Errorf("fixture: team %d: %w", teamID, providers.ErrNotFound)
}

// FetchMatches returns a deterministic set of example matches for the filter's date.
func (p *Provider) FetchMatches(ctx context.Context, filter providers.MatchFilter) ([]domainmatches.Match, error) {
	_ = ctx

	day := p.now().UTC().Truncate(24 * time.Hour)
	if parsed, err := timeutil.ParseDate(filter.Date); err == nil {
		day = parsed.UTC()
	}

	ref := domainmatches.CompetitionRef{
		ID:   fmt.Sprintf("fixture-%d", premierLeagueID),
		Name: "Premier League",
		Code: "PL",
	}

	matches := []domainmatches.Match{
		{
			ID:          "fixture-9001",
			Provider:    "fixture",
			Competition: ref,
			UTCDate:     day.Add(15 * time.Hour).Format(time.RFC3339),
			Status:      domainmatches.StatusTimed,
			Matchday:    28,
			Stage:       "REGULAR_SEASON",
			HomeTeam:    arsenal(),
			AwayTeam:    chelsea(),
			Meta:        domainmatches.MatchMeta{UpstreamMatchID: 9001, SeasonID: 1564},
		},
		{
			ID:          "fixture-9002",
			Provider:    "fixture",
			Competition: ref,
			UTCDate:     day.Add(17 * time.Hour).Add(30 * time.Minute).Format(time.RFC3339),
			Status:      domainmatches.StatusInPlay,
			Matchday:    28,
			Stage:       "REGULAR_SEASON",
			HomeTeam:    liverpool(),
			AwayTeam:    manCity(),
			Score: domainmatches.ScoreDetails{
				Duration: "REGULAR",
				FullTime: &domainmatches.Score{Home: 1, Away: 1},
				HalfTime: &domainmatches.Score{Home: 1, Away: 0},
			},
			Meta: domainmatches.MatchMeta{UpstreamMatchID: 9002, SeasonID: 1564},
		},
	}

	if filter.CompetitionID > 0 && filter.CompetitionID != premierLeagueID {
		return []domainmatches.Match{}, nil
	}
	if filter.Status != "" {
		filtered := make([]domainmatches.Match, 0, len(matches))
		for _, m := range matches {
			if string(m.Status) == filter.Status {
				filtered = append(filtered, m)
			}
		}
		return filtered, nil
	}
	return matches, nil
}

// FetchStandings returns a deterministic standings table.
func (p *Provider) FetchStandings(ctx context.Context, competitionID int, season string) (domainstandings.Standings, error) {
	_ = ctx
	_ = season
	if competitionID != premierLeagueID {
		return domainstandings.Standings{}, fmt.Errorf("fixture: competition %d: %w", competitionID, providers.ErrNotFound)
	}
	return domainstandings.Standings{
		Competition: "Premier League",
		Season:      "2023/2024",
		Tables: []domainstandings.Table{
			{
				Stage: "REGULAR_SEASON",
				Type:  "TOTAL",
				Entries: []domainstandings.Entry{
					{Position: 1, Team: liverpool(), PlayedGames: 28, Won: 19, Draw: 7, Lost: 2, Points: 64, GoalsFor: 65, GoalsAgainst: 26, GoalDifference: 39, Form: "W,W,D,W,W"},
					{Position: 2, Team: arsenal(), PlayedGames: 28, Won: 20, Draw: 4, Lost: 4, Points: 64, GoalsFor: 70, GoalsAgainst: 24, GoalDifference: 46, Form: "W,W,W,W,D"},
					{Position: 3, Team: manCity(), PlayedGames: 28, Won: 19, Draw: 6, Lost: 3, Points: 63, GoalsFor: 63, GoalsAgainst: 28, GoalDifference: 35, Form: "D,W,W,W,W"},
					{Position: 4, Team: chelsea(), PlayedGames: 28, Won: 11, Draw: 9, Lost: 8, Points: 42, GoalsFor: 52, GoalsAgainst: 45, GoalDifference: 7, Form: "L,W,D,W,L"},
				},
			},
		},
	}, nil
}

func premierLeague() domaincomps.Competition {
	return domaincomps.Competition{
		ID:       fmt.Sprintf("fixture-%d", premierLeagueID),
		Provider: "fixture",
		Name:     "Premier League",
		Code:     "PL",
		Type:     domaincomps.TypeLeague,
		Area:     "England",
		CurrentSeason: &domaincomps.Season{
			ID:              1564,
			StartDate:       "2023-08-11",
			EndDate:         "2024-05-19",
			CurrentMatchday: 28,
		},
		Meta: domaincomps.CompetitionMeta{UpstreamCompetitionID: premierLeagueID, Plan: "TIER_ONE"},
	}
}

func championsLeague() domaincomps.Competition {
	return domaincomps.Competition{
		ID:       fmt.Sprintf("fixture-%d", championsLeagueID),
		Provider: "fixture",
		Name:     "UEFA Champions League",
		Code:     "CL",
		Type:     domaincomps.TypeCup,
		Area:     "Europe",
		CurrentSeason: &domaincomps.Season{
			ID:              1571,
			StartDate:       "2023-09-19",
			EndDate:         "2024-06-01",
			CurrentMatchday: 10,
		},
		Meta: domaincomps.CompetitionMeta{UpstreamCompetitionID: championsLeagueID, Plan: "TIER_ONE"},
	}
}

func arsenal() domainteams.Team {
	return domainteams.Team{
		ID:        "team-57",
		Name:      "Arsenal FC",
		ShortName: "Arsenal",
		TLA:       "ARS",
		Venue:     "Emirates Stadium",
		Founded:   1886,
		Meta:      domainteams.TeamMeta{UpstreamTeamID: 57, Area: "England"},
	}
}

func chelsea() domainteams.Team {
	return domainteams.Team{
		ID:        "team-61",
		Name:      "Chelsea FC",
		ShortName: "Chelsea",
		TLA:       "CHE",
		Venue:     "Stamford Bridge",
		Founded:   1905,
		Meta:      domainteams.TeamMeta{UpstreamTeamID: 61, Area: "England"},
	}
}

func liverpool() domainteams.Team {
	return domainteams.Team{
		ID:        "team-64",
		Name:      "Liverpool FC",
		ShortName: "Liverpool",
		TLA:       "LIV",
		Venue:     "Anfield",
		Founded:   1892,
		Meta:      domainteams.TeamMeta{UpstreamTeamID: 64, Area: "England"},
	}
}

func manCity() domainteams.Team {
	return domainteams.Team{
		ID:        "team-65",
		Name:      "Manchester City FC",
		ShortName: "Man City",
		TLA:       "MCI",
		Venue:     "Etihad Stadium",
		Founded:   1880,
		Meta:      domainteams.TeamMeta{UpstreamTeamID: 65, Area: "England"},
	}
}
