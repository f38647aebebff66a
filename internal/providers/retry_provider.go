package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	domaincomps "github.com/malanEvans/soccer-mcp-server/internal/domain/competitions"
	domainmatches "github.com/malanEvans/soccer-mcp-server/internal/domain/matches"
	domainstandings "github.com/malanEvans/soccer-mcp-server/internal/domain/standings"
	domainteams "github.com/malanEvans/soccer-mcp-server/internal/domain/teams"
	"github.com/malanEvans/soccer-mcp-server/internal/logging"
	"github.com/malanEvans/soccer-mcp-server/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

// retryingProvider wraps a DataProvider with retry/backoff behavior.
type retryingProvider struct {
	inner       DataProvider
	logger      *slog.Logger
	metrics     *metrics.Recorder
	name        string
	maxAttempts int
	newBackoff  func() backoff.BackOff
}

// NewRetryingProvider wraps the given provider with retries.
// If maxAttempts/initial are <= 0, defaults are used.
func NewRetryingProvider(inner DataProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, initial time.Duration) DataProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if initial <= 0 {
		initial = defaultBackoff
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		metrics:     recorder,
		name:        name,
		maxAttempts: maxAttempts,
		newBackoff: func() backoff.BackOff {
			bo := backoff.NewExponentialBackOff()
			bo.InitialInterval = initial
			bo.RandomizationFactor = 0
			bo.MaxElapsedTime = 0
			return bo
		},
	}
}

func (r *retryingProvider) FetchCompetitions(ctx context.Context) ([]domaincomps.Competition, error) {
	return retryFetch(ctx, r, "competitions", func(ctx context.Context) ([]domaincomps.Competition, error) {
		return r.inner.FetchCompetitions(ctx)
	})
}

func (r *retryingProvider) FetchCompetition(ctx context.Context, id int) (domaincomps.Competition, error) {
	return retryFetch(ctx, r, "competition", func(ctx context.Context) (domaincomps.Competition, error) {
		return r.inner.FetchCompetition(ctx, id)
	})
}

func (r *retryingProvider) FetchTeams(ctx context.Context, competitionID int, season string) ([]domainteams.Team, error) {
	return retryFetch(ctx, r, "teams", func(ctx context.Context) ([]domainteams.Team, error) {
		return r.inner.FetchTeams(ctx, competitionID, season)
	})
}

func (r *retryingProvider) FetchTeam(ctx context.Context, teamID int) (domainteams.Team, error) {
	return retryFetch(ctx, r, "team", func(ctx context.Context) (domainteams.Team, error) {
		return r.inner.FetchTeam(ctx, teamID)
	})
}

func (r *retryingProvider) FetchMatches(ctx context.Context, filter MatchFilter) ([]domainmatches.Match, error) {
	return retryFetch(ctx, r, "matches", func(ctx context.Context) ([]domainmatches.Match, error) {
		return r.inner.FetchMatches(ctx, filter)
	})
}

func (r *retryingProvider) FetchStandings(ctx context.Context, competitionID int, season string) (domainstandings.Standings, error) {
	return retryFetch(ctx, r, "standings", func(ctx context.Context) (domainstandings.Standings, error) {
		return r.inner.FetchStandings(ctx, competitionID, season)
	})
}

// retryFetch runs fn up to maxAttempts times with exponential backoff between
// attempts. A RateLimitError carrying Retry-After overrides the computed delay.
func retryFetch[T any](ctx context.Context, r *retryingProvider, op string, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	var lastErr error
	bo := r.newBackoff()

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		start := time.Now()
		result, err := fn(ctx)
		r.metrics.RecordProviderAttempt(r.name, time.Since(start), err)
		if err == nil {
			return result, nil
		}
		lastErr = err

		delay := bo.NextBackOff()
		if rlErr, ok := AsRateLimitError(err); ok {
			r.metrics.RecordRateLimit(r.name, rlErr.RetryAfter)
			if rlErr.RetryAfter > 0 {
				delay = rlErr.RetryAfter
			}
		}

		if attempt == r.maxAttempts || delay == backoff.Stop {
			break
		}

		r.logWarn(ctx, "provider fetch retry", "op", op, "attempt", attempt, "max_attempts", r.maxAttempts, "err", err)

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(delay):
		}
	}

	r.logWarn(ctx, "provider fetch failed", "op", op, "attempts", r.maxAttempts, "err", lastErr)
	return zero, lastErr
}

func (r *retryingProvider) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, r.logger)
	if logger != nil {
		logger.Warn(msg, args...)
	}
}
