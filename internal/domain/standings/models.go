package standings

import "github.com/malanEvans/soccer-mcp-server/internal/domain/teams"

// Entry is one row of a standings table.
type Entry struct {
	Position       int        `json:"position"`
	Team           teams.Team `json:"team"`
	PlayedGames    int        `json:"playedGames"`
	Won            int        `json:"won"`
	Draw           int        `json:"draw"`
	Lost           int        `json:"lost"`
	Points         int        `json:"points"`
	GoalsFor       int        `json:"goalsFor"`
	GoalsAgainst   int        `json:"goalsAgainst"`
	GoalDifference int        `json:"goalDifference"`
	Form           string     `json:"form,omitempty"`
}

// Table is a single standings table (overall, home or away) for a stage.
type Table struct {
	Stage   string  `json:"stage"`
	Type    string  `json:"type"` // TOTAL, HOME, AWAY
	Group   string  `json:"group,omitempty"`
	Entries []Entry `json:"entries"`
}

// Standings is the full standings payload for a competition season.
type Standings struct {
	Competition string  `json:"competition"`
	Season      string  `json:"season,omitempty"`
	Tables      []Table `json:"tables"`
}
