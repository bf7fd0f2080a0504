package presenter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arunreddynareddy/ipl-dashboard-app/internal/domain/matches"
)

func TestPieSlicesFixedOrderAndColors(t *testing.T) {
	slices := PieSlices(matches.OutcomeCounts{Won: 2, Lost: 1, Drawn: 1})

	require.Len(t, slices, 3)
	assert.Equal(t, []Slice{
		{Label: "Won", Value: 2, Color: "#18ed66"},
		{Label: "Lost", Value: 1, Color: "#e31a1a"},
		{Label: "Drawn", Value: 1, Color: "#f7db00"},
	}, slices)
}

func TestPieSlicesKeepsZeroValues(t *testing.T) {
	slices := PieSlices(matches.OutcomeCounts{})

	require.Len(t, slices, 3)
	for _, s := range slices {
		assert.Zero(t, s.Value, s.Label)
	}
}

func TestStyleTag(t *testing.T) {
	cases := map[string]string{
		"RCB": "rcb",
		"KKR": "kkr",
		"KXP": "kxp",
		"CSK": "csk",
		"RR":  "rr",
		"MI":  "mi",
		"SH":  "srh",
		"DC":  "dc",
		"SRH": "",
		"rcb": "",
		"":    "",
		"XYZ": "",
	}

	for id, want := range cases {
		assert.Equal(t, want, StyleTag(id), "team %q", id)
		assert.Equal(t, StyleTag(id), StyleTag(id), "mapping must be pure")
	}
}

func TestContainerClass(t *testing.T) {
	assert.Equal(t, "team-matches-container srh", ContainerClass("SH"))
	assert.Equal(t, "team-matches-container ", ContainerClass("XYZ"))
}
