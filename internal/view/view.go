// Package view implements the team matches view lifecycle: one fetch per
// mounted instance, a Loading state until it settles, and teardown that
// discards any late result.
package view

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/arunreddynareddy/ipl-dashboard-app/internal/domain/matches"
	"github.com/arunreddynareddy/ipl-dashboard-app/internal/logging"
	"github.com/arunreddynareddy/ipl-dashboard-app/internal/metrics"
	"github.com/arunreddynareddy/ipl-dashboard-app/internal/presenter"
	"github.com/arunreddynareddy/ipl-dashboard-app/internal/providers"
)

// User-facing failure messages.
const (
	MessageTeamNotFound = "No matches found for this team."
	MessageLoadFailed   = "Something went wrong while loading matches. Please go back and try again."
)

// Option customizes a View.
type Option func(*View)

// WithLogger sets the logger used when no request logger is on the mount context.
func WithLogger(logger *slog.Logger) Option {
	return func(v *View) { v.logger = logger }
}

// WithMetrics records view outcomes on the given recorder.
func WithMetrics(recorder *metrics.Recorder) Option {
	return func(v *View) { v.metrics = recorder }
}

// WithClock overrides the creation timestamp source.
func WithClock(now func() time.Time) Option {
	return func(v *View) {
		if now != nil {
			v.now = now
		}
	}
}

// View is one mounted instance of the team matches page.
type View struct {
	id        string
	teamID    string
	loader    providers.TeamMatchesProvider
	logger    *slog.Logger
	metrics   *metrics.Recorder
	now       func() time.Time
	createdAt time.Time

	mountOnce sync.Once
	settled   chan struct{}

	mu        sync.RWMutex
	state     State
	data      matches.TeamView
	err       error
	cancel    context.CancelFunc
	destroyed bool
	closed    bool
}

// New creates an unmounted view for teamID backed by loader.
func New(teamID string, loader providers.TeamMatchesProvider, opts ...Option) *View {
	v := &View{
		id:      uuid.NewString(),
		teamID:  teamID,
		loader:  loader,
		now:     time.Now,
		settled: make(chan struct{}),
		state:   StateLoading,
	}
	for _, opt := range opts {
		opt(v)
	}
	v.createdAt = v.now()
	return v
}

// ID is the unique instance id.
func (v *View) ID() string { return v.id }

// TeamID is the route parameter the view was created with.
func (v *View) TeamID() string { return v.teamID }

// CreatedAt is when the view was constructed.
func (v *View) CreatedAt() time.Time { return v.createdAt }

// Mount starts the single fetch for this instance. Later calls do nothing.
// The fetch outlives ctx's cancellation but keeps its values; only Destroy stops it.
func (v *View) Mount(ctx context.Context) {
	v.mountOnce.Do(func() {
		v.mu.Lock()
		if v.destroyed {
			v.mu.Unlock()
			return
		}
		fetchCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
		v.cancel = cancel
		v.mu.Unlock()

		logger := logging.FromContext(ctx, v.logger)
		go v.load(fetchCtx, logger)
	})
}

func (v *View) load(ctx context.Context, logger *slog.Logger) {
	if v.loader == nil {
		v.apply(logger, matches.TeamView{}, providers.ErrProviderUnavailable)
		return
	}
	data, err := v.loader.FetchTeamMatches(ctx, v.teamID)
	v.apply(logger, data, err)
}

func (v *View) apply(logger *slog.Logger, data matches.TeamView, err error) {
	v.mu.Lock()
	if v.destroyed {
		v.mu.Unlock()
		v.metrics.RecordViewOutcome(metrics.OutcomeDiscarded)
		logging.Info(logger, "discarded late team matches result",
			slog.String(logging.FieldViewID, v.id),
			slog.String(logging.FieldTeamID, v.teamID),
		)
		return
	}

	if err != nil {
		v.state = StateFailed
		v.err = err
	} else {
		v.state = StateLoaded
		v.data = data.Clone()
	}
	state := v.state
	v.closeSettledLocked()
	v.mu.Unlock()

	if err != nil {
		v.metrics.RecordViewOutcome(metrics.OutcomeFailed)
		logging.Error(logger, "team matches fetch failed", err,
			slog.String(logging.FieldViewID, v.id),
			slog.String(logging.FieldTeamID, v.teamID),
			slog.String(logging.FieldState, state.String()),
		)
		return
	}
	v.metrics.RecordViewOutcome(metrics.OutcomeLoaded)
	logging.Info(logger, "team matches loaded",
		slog.String(logging.FieldViewID, v.id),
		slog.String(logging.FieldTeamID, v.teamID),
		slog.Int(logging.FieldCount, len(data.RecentMatches)),
	)
}

func (v *View) closeSettledLocked() {
	if !v.closed {
		v.closed = true
		close(v.settled)
	}
}

// Wait blocks until the view settles, is destroyed, or ctx is done,
// then returns the current state.
func (v *View) Wait(ctx context.Context) State {
	select {
	case <-v.settled:
	case <-ctx.Done():
	}
	return v.State()
}

// State returns the current lifecycle state.
func (v *View) State() State {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.state
}

// Err returns the fetch error once the view has failed.
func (v *View) Err() error {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.err
}

// Destroyed reports whether Destroy has been called.
func (v *View) Destroyed() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.destroyed
}

// Destroy tears the view down: the in-flight fetch is canceled and any
// result arriving afterwards is discarded. Safe to call more than once.
func (v *View) Destroy() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.destroyed {
		return
	}
	v.destroyed = true
	if v.cancel != nil {
		v.cancel()
	}
	v.closeSettledLocked()
}

// Snapshot is an immutable copy of what a renderer needs.
type Snapshot struct {
	ID             string
	TeamID         string
	State          State
	Data           matches.TeamView
	Message        string
	StyleTag       string
	ContainerClass string
	Counts         matches.OutcomeCounts
	Slices         []presenter.Slice
}

// Snapshot derives counts and slices from the current data on every call.
func (v *View) Snapshot() Snapshot {
	v.mu.RLock()
	state := v.state
	data := v.data.Clone()
	err := v.err
	v.mu.RUnlock()

	snap := Snapshot{
		ID:             v.id,
		TeamID:         v.teamID,
		State:          state,
		StyleTag:       presenter.StyleTag(v.teamID),
		ContainerClass: presenter.ContainerClass(v.teamID),
	}
	switch state {
	case StateLoaded:
		snap.Data = data
		snap.Counts = matches.CountOutcomes(data.RecentMatches)
		snap.Slices = presenter.PieSlices(snap.Counts)
	case StateFailed:
		snap.Message = failureMessage(err)
	}
	return snap
}

func failureMessage(err error) string {
	if errors.Is(err, providers.ErrTeamNotFound) {
		return MessageTeamNotFound
	}
	var statusErr *providers.StatusError
	if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
		return MessageTeamNotFound
	}
	return MessageLoadFailed
}
