package testutil

import "github.com/arunreddynareddy/ipl-dashboard-app/internal/domain/matches"

// SampleMatch returns a minimal match fixture with the provided id and status.
func SampleMatch(id, status string) matches.MatchSummary {
	return matches.MatchSummary{
		Umpires:           []string{"Umpire One", "Umpire Two"},
		Result:            "Result for " + id,
		ManOfTheMatch:     "Player " + id,
		ID:                id,
		Date:              "2020-10-01",
		Venue:             "At Sharjah Cricket Stadium, Sharjah",
		CompetingTeam:     "Opponent " + id,
		CompetingTeamLogo: "https://assets.example/" + id + ".png",
		FirstInnings:      "Team A",
		SecondInnings:     "Team B",
		MatchStatus:       status,
	}
}

// SampleTeamView builds the canonical four-match view: Won, Lost, Won, Drawn
// with ids m1..m4.
func SampleTeamView() matches.TeamView {
	return matches.TeamView{
		TeamBannerURL: "https://assets.example/banner.png",
		LatestMatch:   SampleMatch("m0", matches.StatusWon),
		RecentMatches: []matches.MatchSummary{
			SampleMatch("m1", matches.StatusWon),
			SampleMatch("m2", matches.StatusLost),
			SampleMatch("m3", matches.StatusWon),
			SampleMatch("m4", matches.StatusDrawn),
		},
	}
}
