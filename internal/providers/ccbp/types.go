package ccbp

import (
	"encoding/json"
	"fmt"
	"strings"
)

type teamMatchesResponse struct {
	TeamBannerURL      string          `json:"team_banner_url" validate:"required"`
	LatestMatchDetails *matchResponse  `json:"latest_match_details" validate:"required"`
	RecentMatches      []matchResponse `json:"recent_matches" validate:"required,unique=ID,dive"`
}

type matchResponse struct {
	Umpires           umpireList `json:"umpires"`
	Result            string     `json:"result"`
	ManOfTheMatch     string     `json:"man_of_the_match"`
	ID                string     `json:"id" validate:"required"`
	Date              string     `json:"date"`
	Venue             string     `json:"venue"`
	CompetingTeam     string     `json:"competing_team"`
	CompetingTeamLogo string     `json:"competing_team_logo"`
	FirstInnings      string     `json:"first_innings"`
	SecondInnings     string     `json:"second_innings"`
	MatchStatus       string     `json:"match_status"`
}

// umpireList decodes either a JSON array of names or one comma-separated string.
type umpireList []string

func (u *umpireList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*u = nil
		return nil
	}

	if strings.HasPrefix(trimmed, "[") {
		var names []string
		if err := json.Unmarshal(data, &names); err != nil {
			return fmt.Errorf("umpires: %w", err)
		}
		*u = cleanNames(names)
		return nil
	}

	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return fmt.Errorf("umpires: %w", err)
	}
	if strings.TrimSpace(joined) == "" {
		*u = []string{}
		return nil
	}
	*u = cleanNames(strings.Split(joined, ","))
	return nil
}

func cleanNames(names []string) umpireList {
	out := make(umpireList, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return out
}
