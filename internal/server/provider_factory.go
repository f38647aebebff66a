package server

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/malanEvans/soccer-mcp-server/internal/config"
	"github.com/malanEvans/soccer-mcp-server/internal/metrics"
	"github.com/malanEvans/soccer-mcp-server/internal/providers"
	"github.com/malanEvans/soccer-mcp-server/internal/providers/fixture"
	"github.com/malanEvans/soccer-mcp-server/internal/providers/footballdata"
)

// providerFactory assembles the provider with shared wrappers (rate limit + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.DataProvider {
	base := selectProvider(cfg, f.logger)
	wrapped := base
	if cfg.Provider == "footballdata" {
		// Shared rate limiter keeps every caller (poller, syncer, tools) inside the upstream quota.
		wrapped = providers.NewRateLimitedProvider(base, rateLimitInterval(cfg), f.logger)
	}
	return providers.NewRetryingProvider(wrapped, f.logger, f.metrics, normalizeProviderName(cfg.Provider, base), 0, 0)
}

func selectProvider(cfg config.Config, logger *slog.Logger) providers.DataProvider {
	switch cfg.Provider {
	case "fixture", "":
		return fixture.New()
	case "footballdata":
		return footballdata.NewClient(footballdata.Config{
			BaseURL:  cfg.FootballData.BaseURL,
			APIToken: cfg.FootballData.APIToken,
		})
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}

// rateLimitInterval spaces upstream calls. The football-data free tier allows
// 10 requests a minute.
func rateLimitInterval(cfg config.Config) time.Duration {
	if cfg.PollInterval > 0 && cfg.PollInterval < 6*time.Second {
		return cfg.PollInterval
	}
	return 6 * time.Second
}

// normalizeProviderName returns a lower-cased provider name, deriving from instance when not explicitly configured.
func normalizeProviderName(raw string, provider providers.DataProvider) string {
	if raw != "" {
		return strings.ToLower(raw)
	}
	if provider != nil {
		return strings.ToLower(fmt.Sprintf("%T", provider))
	}
	return "provider"
}
