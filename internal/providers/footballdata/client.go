package footballdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	domaincomps "github.com/malanEvans/soccer-mcp-server/internal/domain/competitions"
	domainmatches "github.com/malanEvans/soccer-mcp-server/internal/domain/matches"
	domainstandings "github.com/malanEvans/soccer-mcp-server/internal/domain/standings"
	domainteams "github.com/malanEvans/soccer-mcp-server/internal/domain/teams"
	"github.com/malanEvans/soccer-mcp-server/internal/providers"
	"github.com/malanEvans/soccer-mcp-server/internal/timeutil"
)

// Config controls how the football-data client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIToken   string
	HTTPClient *http.Client
}

// Client fetches soccer data from football-data.org and maps it to domain models.
type Client struct {
	baseURL    string
	apiToken   string
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs a football-data client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		apiToken:   cfg.APIToken,
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		now:        time.Now,
	}
}

// FetchCompetitions retrieves the full competition catalog.
func (c *Client) FetchCompetitions(ctx context.Context) ([]domaincomps.Competition, error) {
	var payload competitionsResponse
	if err := c.getJSON(ctx, "/competitions", nil, &payload); err != nil {
		return nil, err
	}

	comps := make([]domaincomps.Competition, 0, len(payload.Competitions))
	for _, comp := range payload.Competitions {
		comps = append(comps, mapCompetition(comp))
	}
	return comps, nil
}

// FetchCompetition retrieves a single competition, including its season history.
func (c *Client) FetchCompetition(ctx context.Context, id int) (domaincomps.Competition, error) {
	var payload competitionResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/competitions/%d", id), nil, &payload); err != nil {
		return domaincomps.Competition{}, err
	}
	return mapCompetition(payload), nil
}

// FetchTeams retrieves the teams registered for a competition season.
// An empty season means the current one.
func (c *Client) FetchTeams(ctx context.Context, competitionID int, season string) ([]domainteams.Team, error) {
	q := url.Values{}
	if season != "" {
		q.Set("season", season)
	}

	var payload teamsResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/competitions/%d/teams", competitionID), q, &payload); err != nil {
		return nil, err
	}

	teams := make([]domainteams.Team, 0, len(payload.Teams))
	for _, team := range payload.Teams {
		teams = append(teams, mapTeam(team))
	}
	return teams, nil
}

// FetchTeam retrieves a single team by its upstream ID.
func (c *Client) FetchTeam(ctx context.Context, teamID int) (domainteams.Team, error) {
	var payload teamResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/teams/%d", teamID), nil, &payload); err != nil {
		return domainteams.Team{}, err
	}
	return mapTeam(payload), nil
}

// FetchMatches retrieves matches for the filter's date, defaulting to today (UTC).
func (c *Client) FetchMatches(ctx context.Context, filter providers.MatchFilter) ([]domainmatches.Match, error) {
	date := c.resolveDate(filter.Date)

	q := url.Values{}
	q.Set("dateFrom", date)
	q.Set("dateTo", date)
	if filter.Status != "" {
		q.Set("status", filter.Status)
	}

	path := "/matches"
	if filter.CompetitionID > 0 {
		path = fmt.Sprintf("/competitions/%d/matches", filter.CompetitionID)
	}

	var payload matchesResponse
	if err := c.getJSON(ctx, path, q, &payload); err != nil {
		return nil, err
	}

	matches := make([]domainmatches.Match, 0, len(payload.Matches))
	for _, m := range payload.Matches {
		matches = append(matches, mapMatch(m))
	}
	return matches, nil
}

// FetchStandings retrieves the standings tables for a competition season.
func (c *Client) FetchStandings(ctx context.Context, competitionID int, season string) (domainstandings.Standings, error) {
	q := url.Values{}
	if season != "" {
		q.Set("season", season)
	}

	var payload standingsResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/competitions/%d/standings", competitionID), q, &payload); err != nil {
		return domainstandings.Standings{}, err
	}
	return mapStandings(payload), nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}
	if c.apiToken != "" {
		req.Header.Set("X-Auth-Token", c.apiToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		return json.NewDecoder(resp.Body).Decode(out)
	case http.StatusNotFound:
		return fmt.Errorf("footballdata: %s: %w", path, providers.ErrNotFound)
	case http.StatusTooManyRequests:
		return rateLimitError(resp)
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("footballdata: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
}

func rateLimitError(resp *http.Response) error {
	return &providers.RateLimitError{
		Provider:   providerName,
		StatusCode: resp.StatusCode,
		RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		Remaining:  resp.Header.Get("X-Requests-Available-Minute"),
		Message:    "footballdata: rate limited",
	}
}

func parseRetryAfter(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	seconds, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || seconds < 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}

func (c *Client) resolveDate(date string) string {
	if timeutil.ValidDate(date) {
		return date
	}
	return timeutil.FormatDate(c.now().UTC())
}
