package providers

import (
	"context"

	"github.com/arunreddynareddy/ipl-dashboard-app/internal/domain/matches"
)

// TeamMatchesProvider defines how one team's match data is fetched and normalized.
// Implementations issue at most one upstream request per call and never retry.
type TeamMatchesProvider interface {
	FetchTeamMatches(ctx context.Context, teamID string) (matches.TeamView, error)
}

// ProviderFunc adapts a plain function to TeamMatchesProvider.
type ProviderFunc func(ctx context.Context, teamID string) (matches.TeamView, error)

// FetchTeamMatches calls f.
func (f ProviderFunc) FetchTeamMatches(ctx context.Context, teamID string) (matches.TeamView, error) {
	return f(ctx, teamID)
}
