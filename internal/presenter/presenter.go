// Package presenter turns raw team match data into the values the page shows:
// pie slices for the outcome chart and the per-team style tag.
package presenter

import "github.com/arunreddynareddy/ipl-dashboard-app/internal/domain/matches"

// Slice colors for the outcome chart.
const (
	ColorWon   = "#18ed66"
	ColorLost  = "#e31a1a"
	ColorDrawn = "#f7db00"
)

const containerBaseClass = "team-matches-container"

// Slice is one labelled, colored segment of the outcome chart.
type Slice struct {
	Label string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// PieSlices returns exactly three slices in fixed order: Won, Lost, Drawn.
// The order drives both slice drawing and legend order.
func PieSlices(counts matches.OutcomeCounts) []Slice {
	return []Slice{
		{Label: matches.StatusWon, Value: counts.Won, Color: ColorWon},
		{Label: matches.StatusLost, Value: counts.Lost, Color: ColorLost},
		{Label: matches.StatusDrawn, Value: counts.Drawn, Color: ColorDrawn},
	}
}

var styleTags = map[string]string{
	"RCB": "rcb",
	"KKR": "kkr",
	"KXP": "kxp",
	"CSK": "csk",
	"RR":  "rr",
	"MI":  "mi",
	"SH":  "srh",
	"DC":  "dc",
}

// StyleTag maps a team id to its styling class. Matching is case-sensitive;
// unknown ids map to the empty string.
func StyleTag(teamID string) string {
	return styleTags[teamID]
}

// ContainerClass is the class attribute of the page's root container.
func ContainerClass(teamID string) string {
	return containerBaseClass + " " + StyleTag(teamID)
}
