package matches

// Match outcome values as reported by the upstream API.
// Other raw values are carried through unchanged.
const (
	StatusWon   = "Won"
	StatusLost  = "Lost"
	StatusDrawn = "Drawn"
)

// MatchSummary is the normalized per-match display record.
type MatchSummary struct {
	Umpires           []string `json:"umpires"`
	Result            string   `json:"result"`
	ManOfTheMatch     string   `json:"manOfTheMatch"`
	ID                string   `json:"id"`
	Date              string   `json:"date"`
	Venue             string   `json:"venue"`
	CompetingTeam     string   `json:"competingTeam"`
	CompetingTeamLogo string   `json:"competingTeamLogo"`
	FirstInnings      string   `json:"firstInnings"`
	SecondInnings     string   `json:"secondInnings"`
	MatchStatus       string   `json:"matchStatus"`
}

// TeamView is the root view-model for one team.
// It is always replaced whole; callers must not mutate a published value.
type TeamView struct {
	TeamBannerURL string         `json:"teamBannerUrl"`
	LatestMatch   MatchSummary   `json:"latestMatch"`
	RecentMatches []MatchSummary `json:"recentMatches"`
}

// Clone returns a deep copy so snapshots handed to renderers stay immutable.
func (v TeamView) Clone() TeamView {
	out := v
	out.LatestMatch = v.LatestMatch.clone()
	if v.RecentMatches != nil {
		out.RecentMatches = make([]MatchSummary, len(v.RecentMatches))
		for i, m := range v.RecentMatches {
			out.RecentMatches[i] = m.clone()
		}
	}
	return out
}

func (m MatchSummary) clone() MatchSummary {
	if m.Umpires != nil {
		m.Umpires = append([]string(nil), m.Umpires...)
	}
	return m
}
