package mcptools

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"golang.org/x/sync/errgroup"

	appcomps "github.com/malanEvans/soccer-mcp-server/internal/app/competitions"
	appmatches "github.com/malanEvans/soccer-mcp-server/internal/app/matches"
	domaincomps "github.com/malanEvans/soccer-mcp-server/internal/domain/competitions"
	domainmatches "github.com/malanEvans/soccer-mcp-server/internal/domain/matches"
	domainteams "github.com/malanEvans/soccer-mcp-server/internal/domain/teams"
	"github.com/malanEvans/soccer-mcp-server/internal/llm"
	"github.com/malanEvans/soccer-mcp-server/internal/logging"
	"github.com/malanEvans/soccer-mcp-server/internal/metrics"
	"github.com/malanEvans/soccer-mcp-server/internal/providers"
	"github.com/malanEvans/soccer-mcp-server/internal/timeutil"
)

// Tools binds the MCP tool handlers to the domain services and the upstream
// provider.
type Tools struct {
	comps    *appcomps.Service
	matches  *appmatches.Service
	provider providers.DataProvider
	resolver *llm.Resolver
	recorder *metrics.Recorder
	logger   *slog.Logger
	now      func() time.Time
}

// New constructs the tool set.
func New(comps *appcomps.Service, matches *appmatches.Service, provider providers.DataProvider, resolver *llm.Resolver, recorder *metrics.Recorder, logger *slog.Logger) *Tools {
	return &Tools{
		comps:    comps,
		matches:  matches,
		provider: provider,
		resolver: resolver,
		recorder: recorder,
		logger:   logger,
		now:      time.Now,
	}
}

// NewServer builds the MCP server with every tool and the server-info
// resource registered.
func NewServer(name, version string, tools *Tools) *server.MCPServer {
	s := server.NewMCPServer(
		name,
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)
	tools.Register(s)
	registerServerInfo(s, name, version)
	return s
}

// Register adds all tool definitions and handlers to the server.
func (t *Tools) Register(s *server.MCPServer) {
	s.AddTool(
		mcp.NewTool("health",
			mcp.WithDescription("Health check - echo back a message"),
			mcp.WithString("message", mcp.Required(), mcp.Description("Message to echo")),
		),
		t.instrument("health", t.handleHealth),
	)

	s.AddTool(
		mcp.NewTool("list_competitions",
			mcp.WithDescription("List the supported soccer competitions"),
		),
		t.instrument("list_competitions", t.handleListCompetitions),
	)

	s.AddTool(
		mcp.NewTool("get_competition_info",
			mcp.WithDescription("Get competition information by competition name. Competition name could be cup name, league name, etc."),
			mcp.WithString("competition_name", mcp.Required(), mcp.Description("Name of the competition to look up (e.g. Premier League)")),
		),
		t.instrument("get_competition_info", t.handleCompetitionInfo),
	)

	s.AddTool(
		mcp.NewTool("get_matches",
			mcp.WithDescription("Get soccer matches. Defaults to today's matches across all supported competitions. All timestamps are UTC."),
			mcp.WithString("date", mcp.Description("Date in YYYY-MM-DD format. Default: today")),
			mcp.WithString("competition", mcp.Description("Competition code or name to scope the matchday (e.g. PL)")),
			mcp.WithString("status", mcp.Description("Status filter: SCHEDULED, TIMED, IN_PLAY, PAUSED, FINISHED, POSTPONED, SUSPENDED, CANCELLED")),
		),
		t.instrument("get_matches", t.handleMatches),
	)

	s.AddTool(
		mcp.NewTool("get_teams",
			mcp.WithDescription("Get the teams of a competition"),
			mcp.WithString("competition", mcp.Required(), mcp.Description("Competition code or name (e.g. PL)")),
			mcp.WithString("season", mcp.Description("Season starting year (e.g. 2023). Default: current season")),
		),
		t.instrument("get_teams", t.handleTeams),
	)

	s.AddTool(
		mcp.NewTool("get_standings",
			mcp.WithDescription("Get the standings table of a competition"),
			mcp.WithString("competition", mcp.Required(), mcp.Description("Competition code or name (e.g. PL)")),
			mcp.WithString("season", mcp.Description("Season starting year (e.g. 2023). Default: current season")),
		),
		t.instrument("get_standings", t.handleStandings),
	)

	s.AddTool(
		mcp.NewTool("get_team",
			mcp.WithDescription("Get detailed team information by team ID"),
			mcp.WithNumber("team_id", mcp.Required(), mcp.Description("Upstream team ID (e.g. 57 for Arsenal)")),
		),
		t.instrument("get_team", t.handleTeam),
	)
}

// instrument wraps a handler with tool-call metrics and logging.
func (t *Tools) instrument(name string, next server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := t.now()
		res, err := next(ctx, req)
		duration := t.now().Sub(start)
		failed := err != nil || (res != nil && res.IsError)
		t.recorder.RecordToolCall(name, duration, failed)
		logging.Info(t.logger, "tool call",
			slog.String(logging.FieldTool, name),
			slog.Bool("failed", failed),
			slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
		)
		return res, err
	}
}

func (t *Tools) handleHealth(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	msg := getStr(req.Params.Arguments, "message", "ok")
	return mcp.NewToolResultText(fmt.Sprintf("Echo: %s", msg)), nil
}

func (t *Tools) handleListCompetitions(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	catalog, err := t.catalog(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load competitions: %v", err)), nil
	}

	var b strings.Builder
	b.WriteString("Supported competitions:\n")
	for _, comp := range catalog {
		fmt.Fprintf(&b, "- %s (%s)\n", comp.Name, comp.Code)
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (t *Tools) handleCompetitionInfo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := getStr(req.Params.Arguments, "competition_name", "")
	if name == "" {
		return mcp.NewToolResultError("competition_name is required"), nil
	}

	catalog, err := t.catalog(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load competitions: %v", err)), nil
	}

	hits, err := t.resolve(ctx, name, catalog)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to resolve competition: %v", err)), nil
	}
	if len(hits) == 0 {
		return mcp.NewToolResultText(formatCompetitionNotFound(name, competitionNames(catalog))), nil
	}

	details := make([]domaincomps.Competition, len(hits))
	g, gctx := errgroup.WithContext(ctx)
	for i, hit := range hits {
		g.Go(func() error {
			full, err := t.provider.FetchCompetition(gctx, hit.Meta.UpstreamCompetitionID)
			if err != nil {
				return fmt.Errorf("fetch competition %s: %w", hit.Code, err)
			}
			details[i] = full
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to fetch competition details: %v", err)), nil
	}

	return mcp.NewToolResultText(formatCompetitionInfo(details)), nil
}

func (t *Tools) handleMatches(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	date := getStr(req.Params.Arguments, "date", "")
	compArg := getStr(req.Params.Arguments, "competition", "")
	status := strings.ToUpper(getStr(req.Params.Arguments, "status", ""))

	if date != "" && !timeutil.ValidDate(date) {
		return mcp.NewToolResultError("invalid date format (expected YYYY-MM-DD)"), nil
	}

	// No explicit filters: serve the cached matchday.
	if date == "" && compArg == "" {
		items := t.matches.Matches()
		items = filterByStatus(items, status)
		today := timeutil.FormatDate(t.now().UTC())
		text, err := formatJSON(fmt.Sprintf("Matches for %s", today), domainmatches.NewMatchdayResponse(today, items))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to render matches: %v", err)), nil
		}
		return mcp.NewToolResultText(text), nil
	}

	filter := providers.MatchFilter{Date: date, Status: status}
	title := "Matches"
	if compArg != "" {
		comp, ok, err := t.findCompetition(ctx, compArg)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to load competitions: %v", err)), nil
		}
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("unknown competition %q", compArg)), nil
		}
		filter.CompetitionID = comp.Meta.UpstreamCompetitionID
		title = fmt.Sprintf("Matches for %s", comp.Name)
	}

	items, err := t.provider.FetchMatches(ctx, filter)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to fetch matches: %v", err)), nil
	}

	day := filter.Date
	if day == "" {
		day = timeutil.FormatDate(t.now().UTC())
	}
	text, err := formatJSON(title, domainmatches.NewMatchdayResponse(day, items))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to render matches: %v", err)), nil
	}
	return mcp.NewToolResultText(text), nil
}

func (t *Tools) handleTeams(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	compArg := getStr(req.Params.Arguments, "competition", "")
	if compArg == "" {
		return mcp.NewToolResultError("competition is required"), nil
	}
	season := getStr(req.Params.Arguments, "season", "")

	comp, ok, err := t.findCompetition(ctx, compArg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load competitions: %v", err)), nil
	}
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("unknown competition %q", compArg)), nil
	}

	teams, err := t.provider.FetchTeams(ctx, comp.Meta.UpstreamCompetitionID, season)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to fetch teams: %v", err)), nil
	}

	payload := domainteams.SquadResponse{Competition: comp.Name, Season: season, Teams: teams}
	text, err := formatJSON(fmt.Sprintf("Teams in %s", comp.Name), payload)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to render teams: %v", err)), nil
	}
	return mcp.NewToolResultText(text), nil
}

func (t *Tools) handleStandings(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	compArg := getStr(req.Params.Arguments, "competition", "")
	if compArg == "" {
		return mcp.NewToolResultError("competition is required"), nil
	}
	season := getStr(req.Params.Arguments, "season", "")

	comp, ok, err := t.findCompetition(ctx, compArg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load competitions: %v", err)), nil
	}
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("unknown competition %q", compArg)), nil
	}

	standings, err := t.provider.FetchStandings(ctx, comp.Meta.UpstreamCompetitionID, season)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to fetch standings: %v", err)), nil
	}

	text, err := formatJSON(fmt.Sprintf("Standings for %s", comp.Name), standings)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to render standings: %v", err)), nil
	}
	return mcp.NewToolResultText(text), nil
}

func (t *Tools) handleTeam(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	teamID := getInt(req.Params.Arguments, "team_id", 0)
	if teamID <= 0 {
		return mcp.NewToolResultError("team_id is required"), nil
	}

	team, err := t.provider.FetchTeam(ctx, teamID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to fetch team %d: %v", teamID, err)), nil
	}

	text, err := formatJSON(fmt.Sprintf("Team info for ID %d", teamID), team)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to render team: %v", err)), nil
	}
	return mcp.NewToolResultText(text), nil
}

// catalog returns the cached competition catalog, fetching from the provider
// when the cache is cold. A successful fetch warms the cache.
func (t *Tools) catalog(ctx context.Context) ([]domaincomps.Competition, error) {
	if cached := t.comps.Competitions(); len(cached) > 0 {
		return cached, nil
	}
	fetched, err := t.provider.FetchCompetitions(ctx)
	if err != nil {
		return nil, err
	}
	t.comps.ReplaceCompetitions(fetched)
	return t.comps.Competitions(), nil
}

func (t *Tools) resolve(ctx context.Context, name string, catalog []domaincomps.Competition) ([]domaincomps.Competition, error) {
	if t.resolver == nil {
		return llm.NewResolver(nil, t.logger).Resolve(ctx, name, catalog)
	}
	return t.resolver.Resolve(ctx, name, catalog)
}

// findCompetition looks a competition up by code first, then by name.
func (t *Tools) findCompetition(ctx context.Context, key string) (domaincomps.Competition, bool, error) {
	catalog, err := t.catalog(ctx)
	if err != nil {
		return domaincomps.Competition{}, false, err
	}
	for _, comp := range catalog {
		if strings.EqualFold(comp.Code, key) {
			return comp, true, nil
		}
	}
	for _, comp := range catalog {
		if strings.EqualFold(comp.Name, key) {
			return comp, true, nil
		}
	}
	lowered := strings.ToLower(key)
	for _, comp := range catalog {
		if strings.Contains(strings.ToLower(comp.Name), lowered) {
			return comp, true, nil
		}
	}
	return domaincomps.Competition{}, false, nil
}

func filterByStatus(items []domainmatches.Match, status string) []domainmatches.Match {
	if status == "" {
		return items
	}
	filtered := make([]domainmatches.Match, 0, len(items))
	for _, m := range items {
		if string(m.Status) == status {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

func competitionNames(catalog []domaincomps.Competition) []string {
	names := make([]string, 0, len(catalog))
	for _, comp := range catalog {
		names = append(names, comp.Name)
	}
	sort.Strings(names)
	return names
}

func registerServerInfo(s *server.MCPServer, name, version string) {
	s.AddResource(
		mcp.NewResource(
			"server://info",
			"Soccer MCP Server Info",
			mcp.WithMIMEType("text/plain"),
		),
		func(_ context.Context, _ mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
			info := fmt.Sprintf(`%s %s

A soccer data MCP server backed by football-data.org.

Available Tools:
- health: Echo test for connectivity check
- list_competitions: Supported competitions
- get_competition_info: Competition details by free-form name (e.g. "Premier League")
- get_matches: Matches for a day, optionally scoped by competition and status
- get_teams: Teams of a competition, optionally for a past season
- get_standings: Standings table of a competition
- get_team: Detailed team info by upstream team ID

All timestamps are UTC.`, name, version)

			return []mcp.ResourceContents{
				mcp.TextResourceContents{
					URI:      "server://info",
					MIMEType: "text/plain",
					Text:     info,
				},
			}, nil
		},
	)
}
