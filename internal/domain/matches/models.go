package matches

import "github.com/malanEvans/soccer-mcp-server/internal/domain/teams"

// MatchStatus mirrors the upstream match lifecycle states.
type MatchStatus string

const (
	StatusScheduled MatchStatus = "SCHEDULED"
	StatusTimed     MatchStatus = "TIMED"
	StatusInPlay    MatchStatus = "IN_PLAY"
	StatusPaused    MatchStatus = "PAUSED"
	StatusFinished  MatchStatus = "FINISHED"
	StatusPostponed MatchStatus = "POSTPONED"
	StatusSuspended MatchStatus = "SUSPENDED"
	StatusCancelled MatchStatus = "CANCELLED"
)

// Score captures goals for one side pairing.
type Score struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// ScoreDetails captures the result breakdown of a match.
type ScoreDetails struct {
	Winner   string `json:"winner,omitempty"` // HOME_TEAM, AWAY_TEAM, DRAW
	Duration string `json:"duration,omitempty"`
	FullTime *Score `json:"fullTime,omitempty"`
	HalfTime *Score `json:"halfTime,omitempty"`
}

// CompetitionRef is the lightweight competition reference carried by a match.
type CompetitionRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// MatchMeta stores provider metadata for a match.
type MatchMeta struct {
	UpstreamMatchID int    `json:"upstreamMatchId"`
	SeasonID        int    `json:"seasonId,omitempty"`
	LastUpdated     string `json:"lastUpdated,omitempty"`
}

// Match is the canonical match shape exposed by the service.
type Match struct {
	ID          string         `json:"id"`
	Provider    string         `json:"provider"`
	Competition CompetitionRef `json:"competition"`
	UTCDate     string         `json:"utcDate"`
	Status      MatchStatus    `json:"status"`
	Matchday    int            `json:"matchday,omitempty"`
	Stage       string         `json:"stage,omitempty"`
	Group       string         `json:"group,omitempty"`
	HomeTeam    teams.Team     `json:"homeTeam"`
	AwayTeam    teams.Team     `json:"awayTeam"`
	Score       ScoreDetails   `json:"score"`
	Meta        MatchMeta      `json:"meta"`
}

// MatchdayResponse is the payload returned for a day's matches.
type MatchdayResponse struct {
	Date    string  `json:"date"`
	Matches []Match `json:"matches"`
}

// NewMatchdayResponse builds a MatchdayResponse payload.
func NewMatchdayResponse(date string, items []Match) MatchdayResponse {
	return MatchdayResponse{
		Date:    date,
		Matches: items,
	}
}

// Live reports whether the match is currently being played.
func (m Match) Live() bool {
	return m.Status == StatusInPlay || m.Status == StatusPaused
}
