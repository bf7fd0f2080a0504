package sweeper

import (
	"context"
	"sync"

	"github.com/arunreddynareddy/ipl-dashboard-app/internal/domain/matches"
)

type blockingLoader struct {
	canceled chan struct{}
	once     sync.Once
}

func (b *blockingLoader) FetchTeamMatches(ctx context.Context, teamID string) (matches.TeamView, error) {
	<-ctx.Done()
	b.once.Do(func() { close(b.canceled) })
	return matches.TeamView{}, ctx.Err()
}
