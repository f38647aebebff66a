package providers

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	domaincomps "github.com/malanEvans/soccer-mcp-server/internal/domain/competitions"
	domainmatches "github.com/malanEvans/soccer-mcp-server/internal/domain/matches"
	domainstandings "github.com/malanEvans/soccer-mcp-server/internal/domain/standings"
	domainteams "github.com/malanEvans/soccer-mcp-server/internal/domain/teams"
)

// rateLimitedProvider wraps a DataProvider and enforces an upstream call budget
// shared by every caller (poller, snapshot syncer, MCP tools).
type rateLimitedProvider struct {
	next    DataProvider
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewRateLimitedProvider returns a DataProvider that spaces calls by the given
// minimum interval. Calls block in Wait until a slot is available, so upstream
// quotas are respected rather than tripped.
func NewRateLimitedProvider(next DataProvider, interval time.Duration, logger *slog.Logger) DataProvider {
	if interval <= 0 {
		interval = 6 * time.Second // football-data free tier: 10 req/min
	}
	return &rateLimitedProvider{
		next:    next,
		limiter: rate.NewLimiter(rate.Every(interval), 1),
		logger:  logger,
	}
}

func (p *rateLimitedProvider) wait(ctx context.Context) error {
	if p == nil || p.next == nil {
		if p != nil {
			logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "provider unavailable")
		}
		return ErrProviderUnavailable
	}
	if err := p.limiter.Wait(ctx); err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "rate-limited fetch canceled")
		return err
	}
	return nil
}

func (p *rateLimitedProvider) FetchCompetitions(ctx context.Context) ([]domaincomps.Competition, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchCompetitions(ctx)
}

func (p *rateLimitedProvider) FetchCompetition(ctx context.Context, id int) (domaincomps.Competition, error) {
	if err := p.wait(ctx); err != nil {
		return domaincomps.Competition{}, err
	}
	return p.next.FetchCompetition(ctx, id)
}

func (p *rateLimitedProvider) FetchTeams(ctx context.Context, competitionID int, season string) ([]domainteams.Team, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchTeams(ctx, competitionID, season)
}

func (p *rateLimitedProvider) FetchTeam(ctx context.Context, teamID int) (domainteams.Team, error) {
	if err := p.wait(ctx); err != nil {
		return domainteams.Team{}, err
	}
	return p.next.FetchTeam(ctx, teamID)
}

func (p *rateLimitedProvider) FetchMatches(ctx context.Context, filter MatchFilter) ([]domainmatches.Match, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return p.next.FetchMatches(ctx, filter)
}

func (p *rateLimitedProvider) FetchStandings(ctx context.Context, competitionID int, season string) (domainstandings.Standings, error) {
	if err := p.wait(ctx); err != nil {
		return domainstandings.Standings{}, err
	}
	return p.next.FetchStandings(ctx, competitionID, season)
}
