package footballdata

const providerName = "footballdata"

type competitionsResponse struct {
	Competitions []competitionResponse `json:"competitions"`
}

type competitionResponse struct {
	ID            int              `json:"id"`
	Area          areaResponse     `json:"area"`
	Name          string           `json:"name"`
	Code          string           `json:"code"`
	Type          string           `json:"type"`
	Emblem        string           `json:"emblem"`
	Plan          string           `json:"plan"`
	CurrentSeason *seasonResponse  `json:"currentSeason"`
	Seasons       []seasonResponse `json:"seasons"`
}

type areaResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type seasonResponse struct {
	ID              int           `json:"id"`
	StartDate       string        `json:"startDate"`
	EndDate         string        `json:"endDate"`
	CurrentMatchday int           `json:"currentMatchday"`
	Winner          *teamResponse `json:"winner"`
}

type teamsResponse struct {
	Competition competitionResponse `json:"competition"`
	Season      seasonResponse      `json:"season"`
	Teams       []teamResponse      `json:"teams"`
}

type teamResponse struct {
	ID         int          `json:"id"`
	Area       areaResponse `json:"area"`
	Name       string       `json:"name"`
	ShortName  string       `json:"shortName"`
	TLA        string       `json:"tla"`
	Crest      string       `json:"crest"`
	Address    string       `json:"address"`
	Website    string       `json:"website"`
	Founded    int          `json:"founded"`
	ClubColors string       `json:"clubColors"`
	Venue      string       `json:"venue"`
}

type matchesResponse struct {
	Matches []matchResponse `json:"matches"`
}

type matchResponse struct {
	ID          int            `json:"id"`
	Competition competitionRef `json:"competition"`
	Season      seasonResponse `json:"season"`
	UTCDate     string         `json:"utcDate"`
	Status      string         `json:"status"`
	Matchday    int            `json:"matchday"`
	Stage       string         `json:"stage"`
	Group       string         `json:"group"`
	HomeTeam    teamResponse   `json:"homeTeam"`
	AwayTeam    teamResponse   `json:"awayTeam"`
	Score       scoreResponse  `json:"score"`
	LastUpdated string         `json:"lastUpdated"`
}

type competitionRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

type scoreResponse struct {
	Winner   string             `json:"winner"`
	Duration string             `json:"duration"`
	FullTime *scorePairResponse `json:"fullTime"`
	HalfTime *scorePairResponse `json:"halfTime"`
}

type scorePairResponse struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

type standingsResponse struct {
	Competition competitionRef     `json:"competition"`
	Season      seasonResponse     `json:"season"`
	Standings   []standingResponse `json:"standings"`
}

type standingResponse struct {
	Stage string               `json:"stage"`
	Type  string               `json:"type"`
	Group string               `json:"group"`
	Table []tableEntryResponse `json:"table"`
}

type tableEntryResponse struct {
	Position       int          `json:"position"`
	Team           teamResponse `json:"team"`
	PlayedGames    int          `json:"playedGames"`
	Form           string       `json:"form"`
	Won            int          `json:"won"`
	Draw           int          `json:"draw"`
	Lost           int          `json:"lost"`
	Points         int          `json:"points"`
	GoalsFor       int          `json:"goalsFor"`
	GoalsAgainst   int          `json:"goalsAgainst"`
	GoalDifference int          `json:"goalDifference"`
}
