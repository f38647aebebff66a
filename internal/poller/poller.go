package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	domaincomps "github.com/malanEvans/soccer-mcp-server/internal/domain/competitions"
	domainmatches "github.com/malanEvans/soccer-mcp-server/internal/domain/matches"
	"github.com/malanEvans/soccer-mcp-server/internal/logging"
	"github.com/malanEvans/soccer-mcp-server/internal/metrics"
	"github.com/malanEvans/soccer-mcp-server/internal/providers"
	"github.com/malanEvans/soccer-mcp-server/internal/timeutil"
)

const defaultInterval = 2 * time.Minute

// SnapshotWriter persists matchday snapshots to disk.
type SnapshotWriter interface {
	WriteMatchesSnapshot(date string, snapshot domainmatches.MatchdayResponse) error
}

// Store receives refreshed data from the polling loop.
type Store interface {
	SetCompetitions([]domaincomps.Competition)
	SetMatches([]domainmatches.Match)
}

// Poller refreshes today's matches on an interval and keeps the competition
// catalog warm. It writes the day's snapshot to disk when a writer is set.
type Poller struct {
	provider providers.DataProvider
	store    Store
	writer   SnapshotWriter
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller with sane defaults.
func New(provider providers.DataProvider, store Store, writer SnapshotWriter, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		provider: provider,
		store:    store,
		writer:   writer,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		p.logInfo("poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		// Warm the catalog and today's matches on boot.
		p.warmCatalog(ctx)
		p.fetchOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.ticker.C:
				p.fetchOnce(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

func (p *Poller) warmCatalog(ctx context.Context) {
	start := time.Now()
	comps, err := p.provider.FetchCompetitions(ctx)
	if err != nil {
		p.logError("poller catalog warm failed", err)
		return
	}
	if p.store != nil {
		p.store.SetCompetitions(comps)
	}
	p.logInfo("poller warmed catalog",
		logging.FieldCount, len(comps),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
}

func (p *Poller) fetchOnce(ctx context.Context) {
	start := time.Now()
	p.recordAttempt(start)
	today := timeutil.FormatDate(p.now().UTC())
	matches, err := p.provider.FetchMatches(ctx, providers.MatchFilter{Date: today})
	if p.metrics != nil {
		p.metrics.RecordPollerCycle(time.Since(start), err)
	}
	if err != nil {
		p.logError("poller fetch failed", err, slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
		p.recordFailure(err, start)
		return
	}

	if p.store != nil {
		p.store.SetMatches(matches)
	}
	if p.writer != nil {
		snap := domainmatches.NewMatchdayResponse(today, matches)
		if writeErr := p.writer.WriteMatchesSnapshot(today, snap); writeErr != nil {
			p.logError("poller snapshot write failed", writeErr)
		}
	}
	p.recordSuccess(start)
	p.logInfo("poller refreshed matches",
		logging.FieldCount, len(matches),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) logInfo(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Poller) logError(msg string, err error, attrs ...any) {
	if p.logger != nil {
		p.logger.Error(msg, append(attrs, "error", err)...)
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
