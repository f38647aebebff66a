package footballdata

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/malanEvans/soccer-mcp-server/internal/providers"
)

func TestFetchCompetitionsHitsAPIAndMapsResponse(t *testing.T) {
	var capturedToken string
	var capturedPath string

	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		capturedPath = req.URL.Path
		capturedToken = req.Header.Get("X-Auth-Token")

		body := `{
			"competitions": [
				{
					"id": 2021,
					"area": { "id": 2072, "name": "England" },
					"name": "Premier League",
					"code": "PL",
					"type": "LEAGUE",
					"emblem": "https://crests.example/PL.png",
					"currentSeason": {
						"id": 1564,
						"startDate": "2023-08-11",
						"endDate": "2024-05-19",
						"currentMatchday": 30
					}
				},
				{
					"id": 2001,
					"area": { "id": 2077, "name": "Europe" },
					"name": "UEFA Champions League",
					"code": "CL",
					"type": "CUP"
				}
			]
		}`
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(body)),
			Header:     make(http.Header),
		}, nil
	})

	client := NewClient(Config{
		BaseURL:    "http://example.com",
		APIToken:   "secret",
		HTTPClient: &http.Client{Transport: rt},
	})

	comps, err := client.FetchCompetitions(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if capturedPath != "/competitions" {
		t.Fatalf("expected /competitions path, got %s", capturedPath)
	}
	if capturedToken != "secret" {
		t.Fatalf("expected auth token header, got %s", capturedToken)
	}
	if len(comps) != 2 {
		t.Fatalf("expected 2 competitions, got %d", len(comps))
	}

	pl := comps[0]
	if pl.ID != "footballdata-2021" || pl.Provider != "footballdata" {
		t.Fatalf("unexpected competition identifiers %+v", pl)
	}
	if pl.Code != "PL" || pl.Area != "England" {
		t.Fatalf("unexpected competition fields %+v", pl)
	}
	if pl.CurrentSeason == nil || pl.CurrentSeason.CurrentMatchday != 30 {
		t.Fatalf("unexpected current season %+v", pl.CurrentSeason)
	}
	if pl.Meta.UpstreamCompetitionID != 2021 {
		t.Fatalf("unexpected meta %+v", pl.Meta)
	}
	if comps[1].Type != "CUP" {
		t.Fatalf("expected cup type, got %s", comps[1].Type)
	}
}

func TestFetchMatchesDefaultsToToday(t *testing.T) {
	fixed := time.Date(2024, 3, 10, 15, 0, 0, 0, time.UTC)
	var capturedQuery string

	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if req.URL.Path != "/matches" {
			t.Fatalf("expected /matches path, got %s", req.URL.Path)
		}
		capturedQuery = req.URL.RawQuery

		body := `{
			"matches": [
				{
					"id": 440000,
					"competition": { "id": 2021, "name": "Premier League", "code": "PL" },
					"season": { "id": 1564, "startDate": "2023-08-11", "endDate": "2024-05-19" },
					"utcDate": "2024-03-10T16:30:00Z",
					"status": "IN_PLAY",
					"matchday": 28,
					"stage": "REGULAR_SEASON",
					"homeTeam": { "id": 57, "name": "Arsenal FC", "shortName": "Arsenal", "tla": "ARS" },
					"awayTeam": { "id": 65, "name": "Manchester City FC", "shortName": "Man City", "tla": "MCI" },
					"score": {
						"winner": null,
						"duration": "REGULAR",
						"fullTime": { "home": 1, "away": 0 },
						"halfTime": { "home": 1, "away": 0 }
					},
					"lastUpdated": "2024-03-10T17:00:00Z"
				}
			]
		}`
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(body)),
			Header:     make(http.Header),
		}, nil
	})

	client := NewClient(Config{
		BaseURL:    "http://example.com",
		HTTPClient: &http.Client{Transport: rt},
	})
	client.now = func() time.Time { return fixed }

	matches, err := client.FetchMatches(context.Background(), providers.MatchFilter{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	q, err := url.ParseQuery(capturedQuery)
	if err != nil {
		t.Fatalf("failed parsing query %s: %v", capturedQuery, err)
	}
	if q.Get("dateFrom") != "2024-03-10" || q.Get("dateTo") != "2024-03-10" {
		t.Fatalf("expected today's date range, got %s", capturedQuery)
	}

	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	m := matches[0]
	if m.ID != "footballdata-440000" || m.Provider != "footballdata" {
		t.Fatalf("unexpected match identifiers %+v", m)
	}
	if m.Status != "IN_PLAY" || !m.Live() {
		t.Fatalf("expected live match, got status %s", m.Status)
	}
	if m.Competition.Code != "PL" {
		t.Fatalf("unexpected competition ref %+v", m.Competition)
	}
	if m.Score.FullTime == nil || m.Score.FullTime.Home != 1 || m.Score.FullTime.Away != 0 {
		t.Fatalf("unexpected score %+v", m.Score)
	}
	if m.HomeTeam.ID != "team-57" || m.HomeTeam.Meta.UpstreamTeamID != 57 {
		t.Fatalf("unexpected home team %+v", m.HomeTeam)
	}
	if m.Meta.SeasonID != 1564 {
		t.Fatalf("unexpected meta %+v", m.Meta)
	}
}

func TestFetchMatchesScopesToCompetition(t *testing.T) {
	var capturedPath string
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		capturedPath = req.URL.Path
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(`{"matches": []}`)),
			Header:     make(http.Header),
		}, nil
	})

	client := NewClient(Config{
		BaseURL:    "http://example.com",
		HTTPClient: &http.Client{Transport: rt},
	})

	filter := providers.MatchFilter{Date: "2024-03-09", CompetitionID: 2021, Status: "FINISHED"}
	if _, err := client.FetchMatches(context.Background(), filter); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if capturedPath != "/competitions/2021/matches" {
		t.Fatalf("expected competition-scoped path, got %s", capturedPath)
	}
}

func TestFetchTeamsAndStandingsPassSeason(t *testing.T) {
	var capturedQueries []string
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		capturedQueries = append(capturedQueries, req.URL.RawQuery)

		body := `{"teams": []}`
		if strings.HasSuffix(req.URL.Path, "/standings") {
			body = `{
				"competition": { "id": 2021, "name": "Premier League", "code": "PL" },
				"season": { "id": 1564, "startDate": "2023-08-11", "endDate": "2024-05-19" },
				"standings": [
					{
						"stage": "REGULAR_SEASON",
						"type": "TOTAL",
						"table": [
							{
								"position": 1,
								"team": { "id": 64, "name": "Liverpool FC", "tla": "LIV" },
								"playedGames": 28,
								"won": 19,
								"draw": 7,
								"lost": 2,
								"points": 64,
								"goalsFor": 65,
								"goalsAgainst": 26,
								"goalDifference": 39,
								"form": "W,W,D,W,W"
							}
						]
					}
				]
			}`
		}
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(body)),
			Header:     make(http.Header),
		}, nil
	})

	client := NewClient(Config{
		BaseURL:    "http://example.com",
		HTTPClient: &http.Client{Transport: rt},
	})

	if _, err := client.FetchTeams(context.Background(), 2021, "2023"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	standings, err := client.FetchStandings(context.Background(), 2021, "2023")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	for _, raw := range capturedQueries {
		q, parseErr := url.ParseQuery(raw)
		if parseErr != nil {
			t.Fatalf("failed parsing query %s: %v", raw, parseErr)
		}
		if q.Get("season") != "2023" {
			t.Fatalf("expected season=2023, got %s", raw)
		}
	}

	if standings.Competition != "Premier League" || standings.Season != "2023/2024" {
		t.Fatalf("unexpected standings header %+v", standings)
	}
	if len(standings.Tables) != 1 || len(standings.Tables[0].Entries) != 1 {
		t.Fatalf("unexpected standings tables %+v", standings.Tables)
	}
	top := standings.Tables[0].Entries[0]
	if top.Position != 1 || top.Points != 64 || top.Team.ID != "team-64" {
		t.Fatalf("unexpected top entry %+v", top)
	}
}

func TestFetchCompetitionNotFound(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusNotFound,
			Body:       io.NopCloser(strings.NewReader(`{"message": "resource not found"}`)),
			Header:     make(http.Header),
		}, nil
	})

	client := NewClient(Config{
		BaseURL:    "http://example.com",
		HTTPClient: &http.Client{Transport: rt},
	})

	_, err := client.FetchCompetition(context.Background(), 9999)
	if !errors.Is(err, providers.ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestGetJSONSurfacesRateLimit(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		header := make(http.Header)
		header.Set("Retry-After", "12")
		header.Set("X-Requests-Available-Minute", "0")
		return &http.Response{
			StatusCode: http.StatusTooManyRequests,
			Body:       io.NopCloser(strings.NewReader("slow down")),
			Header:     header,
		}, nil
	})

	client := NewClient(Config{
		BaseURL:    "http://example.com",
		HTTPClient: &http.Client{Transport: rt},
	})

	_, err := client.FetchCompetitions(context.Background())
	rlErr, ok := providers.AsRateLimitError(err)
	if !ok {
		t.Fatalf("expected rate limit error, got %v", err)
	}
	if rlErr.RetryAfter != 12*time.Second {
		t.Fatalf("expected retry-after 12s, got %s", rlErr.RetryAfter)
	}
	if rlErr.Remaining != "0" {
		t.Fatalf("expected remaining 0, got %s", rlErr.Remaining)
	}
}

func TestGetJSONHandlesUnexpectedStatus(t *testing.T) {
	rt := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusBadGateway,
			Body:       io.NopCloser(strings.NewReader("boom")),
			Header:     make(http.Header),
		}, nil
	})

	client := NewClient(Config{
		BaseURL:    "http://example.com",
		HTTPClient: &http.Client{Transport: rt},
	})

	if _, err := client.FetchCompetitions(context.Background()); err == nil {
		t.Fatal("expected error on non-200 response")
	}
}

func TestNewClientSetsDefaultHTTPClient(t *testing.T) {
	c := NewClient(Config{})
	httpClient, ok := c.httpClient.(*http.Client)
	if !ok {
		t.Fatalf("expected default http client")
	}
	if httpClient.Timeout != defaultHTTPTimeout {
		t.Fatalf("expected timeout to be set on default http client")
	}
}

type roundTripperFunc func(req *http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}
