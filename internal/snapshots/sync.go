package snapshots

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	domaincomps "github.com/malanEvans/soccer-mcp-server/internal/domain/competitions"
	domainmatches "github.com/malanEvans/soccer-mcp-server/internal/domain/matches"
	"github.com/malanEvans/soccer-mcp-server/internal/providers"
	"github.com/malanEvans/soccer-mcp-server/internal/timeutil"
)

// CatalogStore updates the in-memory catalog when the competition snapshot refreshes.
type CatalogStore interface {
	SetCompetitions([]domaincomps.Competition)
}

// Syncer backfills and prunes snapshots on a schedule.
type Syncer struct {
	matchProvider       providers.MatchProvider
	competitionProvider providers.CompetitionProvider
	writer              *Writer
	cfg                 SyncConfig
	logger              *slog.Logger
	now                 func() time.Time
	catalogStore        CatalogStore
	newTicker           func(time.Duration) *time.Ticker
}

// SyncConfig controls snapshot sync behavior.
type SyncConfig struct {
	Enabled             bool
	Days                int
	FutureDays          int
	Interval            time.Duration
	DailyHourUTC        int
	CatalogRefreshHours int
}

// NewSyncer constructs a snapshot syncer.
func NewSyncer(provider providers.DataProvider, writer *Writer, cfg SyncConfig, logger *slog.Logger, catalogStore CatalogStore) *Syncer {
	if cfg.Days <= 0 {
		cfg.Days = 7
	}
	if cfg.FutureDays < 0 {
		cfg.FutureDays = 0
	}
	if cfg.Interval <= 0 {
		cfg.Interval = time.Minute
	}
	if cfg.DailyHourUTC < 0 || cfg.DailyHourUTC > 23 {
		cfg.DailyHourUTC = 2
	}
	if cfg.CatalogRefreshHours <= 0 {
		cfg.CatalogRefreshHours = 24
	}

	return &Syncer{
		matchProvider:       provider,
		competitionProvider: provider,
		writer:              writer,
		cfg:                 cfg,
		logger:              logger,
		now:                 time.Now,
		catalogStore:        catalogStore,
		newTicker:           time.NewTicker,
	}
}

// Run performs a one-time backfill for the configured window, spaced by Interval.
// Callers should run this in a goroutine.
func (s *Syncer) Run(ctx context.Context) {
	if s == nil || !s.cfg.Enabled || s.writer == nil {
		return
	}
	if s.matchProvider == nil && s.competitionProvider == nil {
		return
	}
	s.logInfo(
		"snapshot sync starting",
		"past_days", s.cfg.Days,
		"future_days", s.cfg.FutureDays,
		"interval", s.cfg.Interval.String(),
		"daily_hour_utc", s.cfg.DailyHourUTC,
		"catalog_refresh_hours", s.cfg.CatalogRefreshHours,
	)
	s.syncCatalog(ctx, s.now().UTC())
	s.backfill(ctx, s.now().UTC())
	go s.daily(ctx)
}

func (s *Syncer) backfill(ctx context.Context, now time.Time) {
	dates := s.buildDates(now)
	for i, date := range dates {
		select {
		case <-ctx.Done():
			return
		default:
		}
		s.fetchAndWrite(ctx, date)
		if i < len(dates)-1 {
			s.sleep(ctx, s.cfg.Interval)
		}
	}
}

func (s *Syncer) daily(ctx context.Context) {
	ticker := s.newTicker(time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if now.UTC().Hour() == s.cfg.DailyHourUTC {
				current := s.now().UTC()
				s.syncCatalog(ctx, current)
				s.backfill(ctx, current)
			}
		}
	}
}

func (s *Syncer) buildDates(now time.Time) []string {
	var dates []string
	today := timeutil.FormatDate(now)
	yesterday := timeutil.FormatDate(now.AddDate(0, 0, -1))

	// Always refresh today and yesterday to capture live/final scores.
	dates = append(dates, today, yesterday)

	// Past window beyond yesterday: only fetch if missing (e.g., startup or outage).
	for i := 2; i < s.cfg.Days; i++ {
		date := timeutil.FormatDate(now.AddDate(0, 0, -i))
		if !s.hasSnapshot(date) {
			dates = append(dates, date)
		}
	}

	// Future window: prefetch missing only.
	for i := 1; i <= s.cfg.FutureDays; i++ {
		date := timeutil.FormatDate(now.AddDate(0, 0, i))
		if !s.hasSnapshot(date) {
			dates = append(dates, date)
		}
	}

	return dates
}

func (s *Syncer) fetchAndWrite(ctx context.Context, date string) {
	start := time.Now()
	if s.matchProvider == nil {
		s.logWarn("snapshot sync fetch failed", "date", date, "err", "match provider unavailable")
		return
	}
	matches, err := s.matchProvider.FetchMatches(ctx, providers.MatchFilter{Date: date})
	if err != nil {
		s.logWarn("snapshot sync fetch failed", "date", date, "err", err)
		return
	}
	if len(matches) == 0 {
		s.logWarn("snapshot sync received no matches", "date", date)
		return
	}
	snap := domainmatches.NewMatchdayResponse(date, matches)
	if err := s.writer.WriteMatchesSnapshot(date, snap); err != nil {
		s.logWarn("snapshot sync write failed", "date", date, "err", err)
		return
	}
	s.logInfo("snapshot written",
		"date", date,
		"count", len(matches),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}

func (s *Syncer) syncCatalog(ctx context.Context, now time.Time) {
	if s.competitionProvider == nil {
		return
	}
	if !s.shouldRefreshCatalog(now) {
		return
	}
	start := time.Now()
	comps, err := s.competitionProvider.FetchCompetitions(ctx)
	if err != nil {
		s.logWarn("catalog snapshot fetch failed", "err", err)
		return
	}
	snap := domaincomps.NewCatalogResponse(now.Format(time.RFC3339), comps)
	if err := s.writer.WriteCatalogSnapshot(snap); err != nil {
		s.logWarn("catalog snapshot write failed", "err", err)
		return
	}
	if s.catalogStore != nil {
		s.catalogStore.SetCompetitions(comps)
	}
	s.logInfo("catalog snapshot written", "count", len(comps), "duration_ms", time.Since(start).Milliseconds())
}

func (s *Syncer) sleep(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

func (s *Syncer) logInfo(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Info(msg, args...)
	}
}

func (s *Syncer) logWarn(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}

func (s *Syncer) hasSnapshot(date string) bool {
	if s == nil || s.writer == nil || s.writer.basePath == "" || date == "" {
		return false
	}
	_, err := os.Stat(MatchSnapshotPath(s.writer.basePath, date))
	return err == nil
}

func (s *Syncer) shouldRefreshCatalog(now time.Time) bool {
	if s == nil || s.writer == nil {
		return true
	}
	manifestPath := filepath.Join(s.writer.basePath, "manifest.json")
	m, _ := readManifest(manifestPath, s.writer.retentionDays)
	if m.Catalog.LastRefreshed.IsZero() {
		return true
	}
	next := m.Catalog.LastRefreshed.Add(time.Duration(s.cfg.CatalogRefreshHours) * time.Hour)
	return !now.Before(next)
}
