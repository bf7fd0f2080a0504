package fixture

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/arunreddynareddy/ipl-dashboard-app/internal/domain/matches"
	"github.com/arunreddynareddy/ipl-dashboard-app/internal/providers"
)

const assetBase = "https://assets.ccbp.in/frontend/react-js"

var statusCycle = []string{matches.StatusWon, matches.StatusLost, matches.StatusWon, matches.StatusDrawn}

// Provider returns a static set of matches useful for local runs without the upstream API.
type Provider struct {
	delay time.Duration
}

// New creates a fixture provider. A positive delay holds each fetch to exercise loading states.
func New(delay time.Duration) *Provider {
	return &Provider{delay: delay}
}

// FetchTeamMatches returns a deterministic TeamView for a known team id.
func (p *Provider) FetchTeamMatches(ctx context.Context, teamID string) (matches.TeamView, error) {
	if p.delay > 0 {
		timer := time.NewTimer(p.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return matches.TeamView{}, ctx.Err()
		case <-timer.C:
		}
	}

	teams := matches.KnownTeams
	idx := teamIndex(teamID)
	if idx < 0 {
		return matches.TeamView{}, fmt.Errorf("fixture: %q: %w", teamID, providers.ErrTeamNotFound)
	}
	team := teams[idx]

	recent := make([]matches.MatchSummary, 0, len(statusCycle))
	for i, status := range statusCycle {
		opponent := teams[(idx+i+1)%len(teams)]
		recent = append(recent, buildMatch(team, opponent, fmt.Sprintf("%s-m%d", team.ID, i+1), i, status))
	}

	return matches.TeamView{
		TeamBannerURL: fmt.Sprintf("%s/%s-team-img.png", assetBase, strings.ToLower(team.ID)),
		LatestMatch:   buildMatch(team, teams[(idx+5)%len(teams)], team.ID+"-latest", len(statusCycle), matches.StatusWon),
		RecentMatches: recent,
	}, nil
}

func buildMatch(team, opponent matches.Team, id string, n int, status string) matches.MatchSummary {
	result := fmt.Sprintf("%s Won by %d runs", team.Name, 10+n*7)
	switch status {
	case matches.StatusLost:
		result = fmt.Sprintf("%s Won by %d wickets", opponent.Name, 3+n)
	case matches.StatusDrawn:
		result = "Match tied"
	}
	return matches.MatchSummary{
		Umpires:           []string{"Nitin Menon", "Anil Chaudhary"},
		Result:            result,
		ManOfTheMatch:     "Player of " + team.ID,
		ID:                id,
		Date:              time.Date(2020, time.September, 19+n*3, 0, 0, 0, 0, time.UTC).Format("2006-01-02"),
		Venue:             "At Dubai International Cricket Stadium, Dubai",
		CompetingTeam:     opponent.Name,
		CompetingTeamLogo: fmt.Sprintf("%s/%s-logo-img.png", assetBase, strings.ToLower(opponent.ID)),
		FirstInnings:      team.Name,
		SecondInnings:     opponent.Name,
		MatchStatus:       status,
	}
}

func teamIndex(id string) int {
	for i, t := range matches.KnownTeams {
		if t.ID == id {
			return i
		}
	}
	return -1
}
