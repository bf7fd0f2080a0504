package testutil

import (
	"context"
	"sync/atomic"

	"github.com/arunreddynareddy/ipl-dashboard-app/internal/domain/matches"
	"github.com/arunreddynareddy/ipl-dashboard-app/internal/providers"
)

// GoodProvider returns the provided view with no error.
type GoodProvider struct {
	View matches.TeamView
}

func (p GoodProvider) FetchTeamMatches(ctx context.Context, teamID string) (matches.TeamView, error) {
	_ = ctx
	_ = teamID
	return p.View, nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchTeamMatches(ctx context.Context, teamID string) (matches.TeamView, error) {
	return matches.TeamView{}, p.Err
}

// UnavailableProvider returns ErrProviderUnavailable.
type UnavailableProvider struct{}

func (UnavailableProvider) FetchTeamMatches(ctx context.Context, teamID string) (matches.TeamView, error) {
	return matches.TeamView{}, providers.ErrProviderUnavailable
}

// GatedProvider holds every fetch until Release is closed or the fetch context ends.
type GatedProvider struct {
	View     matches.TeamView
	Err      error
	Release  chan struct{}
	Calls    atomic.Int32
	Canceled atomic.Int32
}

// NewGatedProvider returns a GatedProvider with an open gate.
func NewGatedProvider(view matches.TeamView) *GatedProvider {
	return &GatedProvider{View: view, Release: make(chan struct{})}
}

func (p *GatedProvider) FetchTeamMatches(ctx context.Context, teamID string) (matches.TeamView, error) {
	_ = teamID
	p.Calls.Add(1)
	select {
	case <-p.Release:
		return p.View, p.Err
	case <-ctx.Done():
		p.Canceled.Add(1)
		return matches.TeamView{}, ctx.Err()
	}
}
