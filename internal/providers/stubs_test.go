package providers

import (
	"context"
	"sync/atomic"

	"github.com/arunreddynareddy/ipl-dashboard-app/internal/domain/matches"
)

type countingProvider struct {
	view  matches.TeamView
	err   error
	calls atomic.Int32
	teams []string
}

func (c *countingProvider) FetchTeamMatches(ctx context.Context, teamID string) (matches.TeamView, error) {
	_ = ctx
	c.calls.Add(1)
	c.teams = append(c.teams, teamID)
	return c.view, c.err
}
