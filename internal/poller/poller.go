// Package poller refreshes the scoreboard from the upstream feed on an
// interval and archives each week's games as a snapshot.
package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"league-hub/internal/domain"
	"league-hub/internal/logging"
	"league-hub/internal/metrics"
	"league-hub/internal/providers"
)

const defaultInterval = 30 * time.Second

// Sink receives the refreshed scoreboard state.
type Sink interface {
	ReplaceGames(games []domain.Game)
	ReplaceStandings(standings []domain.Standings)
}

// SnapshotWriter persists week snapshots to disk.
type SnapshotWriter interface {
	WriteWeekSnapshot(week int, snapshot domain.WeekResponse) error
}

// Poller fetches games and standings on an interval, pushes them into the
// sink, and writes per-week snapshots.
type Poller struct {
	provider providers.LeagueProvider
	sink     Sink
	writer   SnapshotWriter
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration

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
func New(provider providers.LeagueProvider, sink Sink, writer SnapshotWriter, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		provider: provider,
		sink:     sink,
		writer:   writer,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
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
		// Initial fetch to warm data on boot.
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

// RefreshNow runs a single fetch cycle outside the interval loop and
// reports whether it succeeded.
func (p *Poller) RefreshNow(ctx context.Context) error {
	return p.fetchOnce(ctx)
}

func (p *Poller) fetchOnce(ctx context.Context) error {
	start := time.Now()
	p.recordAttempt(start)

	games, err := p.provider.FetchGames(ctx)
	if err == nil {
		var standings []domain.Standings
		standings, err = p.provider.FetchStandings(ctx)
		if err == nil && p.sink != nil {
			p.sink.ReplaceGames(games)
			p.sink.ReplaceStandings(standings)
		}
	}

	if p.metrics != nil {
		p.metrics.RecordPollerCycle(time.Since(start), err)
	}
	if err != nil {
		p.logError("poller fetch failed", err, slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
		p.recordFailure(err, start)
		return err
	}

	if p.writer != nil {
		for week, weekGames := range groupByWeek(games) {
			if writeErr := p.writer.WriteWeekSnapshot(week, domain.NewWeekResponse(week, weekGames)); writeErr != nil {
				p.logError("poller snapshot write failed", writeErr, slog.Int(logging.FieldWeek, week))
			}
		}
	}
	p.recordSuccess(start)
	p.logInfo("poller refreshed scoreboard",
		slog.Int(logging.FieldCount, len(games)),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
	return nil
}

func groupByWeek(games []domain.Game) map[int][]domain.Game {
	grouped := make(map[int][]domain.Game)
	for _, g := range games {
		if g.Week <= 0 {
			continue
		}
		grouped[g.Week] = append(grouped[g.Week], g)
	}
	return grouped
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

// Provider exposes the underlying provider (primarily for cleanup in callers).
func (p *Poller) Provider() providers.LeagueProvider {
	return p.provider
}
