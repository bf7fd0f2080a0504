package ccbp

import "github.com/arunreddynareddy/ipl-dashboard-app/internal/domain/matches"

func mapTeamView(r teamMatchesResponse) matches.TeamView {
	view := matches.TeamView{
		TeamBannerURL: r.TeamBannerURL,
		RecentMatches: make([]matches.MatchSummary, 0, len(r.RecentMatches)),
	}
	if r.LatestMatchDetails != nil {
		view.LatestMatch = mapMatch(*r.LatestMatchDetails)
	}
	for _, m := range r.RecentMatches {
		view.RecentMatches = append(view.RecentMatches, mapMatch(m))
	}
	return view
}

func mapMatch(m matchResponse) matches.MatchSummary {
	umpires := []string(m.Umpires)
	if umpires == nil {
		umpires = []string{}
	}
	return matches.MatchSummary{
		Umpires:           umpires,
		Result:            m.Result,
		ManOfTheMatch:     m.ManOfTheMatch,
		ID:                m.ID,
		Date:              m.Date,
		Venue:             m.Venue,
		CompetingTeam:     m.CompetingTeam,
		CompetingTeamLogo: m.CompetingTeamLogo,
		FirstInnings:      m.FirstInnings,
		SecondInnings:     m.SecondInnings,
		MatchStatus:       m.MatchStatus,
	}
}
