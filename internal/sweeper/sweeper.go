package sweeper

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/arunreddynareddy/ipl-dashboard-app/internal/logging"
	"github.com/arunreddynareddy/ipl-dashboard-app/internal/metrics"
)

const (
	defaultInterval = 15 * time.Second
	defaultTTL      = time.Minute
)

// Registry is the view registry the sweeper prunes.
type Registry interface {
	Expired(before time.Time) []string
	Delete(id string) bool
}

// Sweeper destroys registered views that outlived their TTL, which cancels
// their in-flight fetch so any late result is discarded.
type Sweeper struct {
	registry Registry
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	ttl      time.Duration
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent activity of the sweep loop.
type Status struct {
	Running        bool
	Cycles         int
	LastSweep      time.Time
	LastDestroyed  int
	TotalDestroyed int
}

// IsReady reports whether the sweep loop is running.
func (s Status) IsReady() bool {
	return s.Running
}

// New constructs a Sweeper with sane defaults.
func New(registry Registry, logger *slog.Logger, recorder *metrics.Recorder, interval, ttl time.Duration) *Sweeper {
	if interval <= 0 {
		interval = defaultInterval
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Sweeper{
		registry: registry,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		ttl:      ttl,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start begins sweeping until the context is cancelled or Stop is called.
func (s *Sweeper) Start(ctx context.Context) {
	s.startMu.Lock()
	if s.started {
		s.startMu.Unlock()
		return
	}
	s.started = true
	s.startMu.Unlock()

	s.ticker = time.NewTicker(s.interval)
	s.setRunning(true)

	go func() {
		logging.Info(s.logger, "sweeper started",
			slog.Int64(logging.FieldDurationMS, s.interval.Milliseconds()),
		)
		for {
			select {
			case <-ctx.Done():
				s.halt()
				return
			case <-s.done:
				s.halt()
				return
			case <-s.ticker.C:
				s.SweepOnce()
			}
		}
	}()
}

// Stop halts the sweep loop.
func (s *Sweeper) Stop(ctx context.Context) error {
	_ = ctx
	s.stopOnce.Do(func() {
		close(s.done)
		s.stopTicker()
	})
	return nil
}

// SweepOnce destroys every view older than the TTL and returns how many went.
func (s *Sweeper) SweepOnce() int {
	start := time.Now()
	destroyed := 0
	if s.registry != nil {
		for _, id := range s.registry.Expired(s.now().Add(-s.ttl)) {
			if s.registry.Delete(id) {
				destroyed++
				logging.Debug(s.logger, "sweeper destroyed expired view", slog.String(logging.FieldViewID, id))
			}
		}
	}

	s.metrics.RecordSweepCycle(time.Since(start), destroyed)
	s.recordSweep(start, destroyed)
	return destroyed
}

func (s *Sweeper) halt() {
	s.stopTicker()
	s.setRunning(false)
	logging.Info(s.logger, "sweeper stopped")
}

func (s *Sweeper) stopTicker() {
	if s.ticker != nil {
		s.ticker.Stop()
	}
}

func (s *Sweeper) setRunning(running bool) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.Running = running
}

func (s *Sweeper) recordSweep(at time.Time, destroyed int) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()
	s.status.Cycles++
	s.status.LastSweep = at
	s.status.LastDestroyed = destroyed
	s.status.TotalDestroyed += destroyed
}

// Status returns a snapshot of the sweeper's recent activity.
func (s *Sweeper) Status() Status {
	s.statusMu.RLock()
	defer s.statusMu.RUnlock()
	return s.status
}
