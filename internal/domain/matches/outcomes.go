package matches

// OutcomeCounts is the derived Won/Lost/Drawn tally over recent matches.
type OutcomeCounts struct {
	Won   int `json:"won"`
	Lost  int `json:"lost"`
	Drawn int `json:"drawn"`
}

// Total returns the number of matches that fell into one of the three buckets.
func (c OutcomeCounts) Total() int {
	return c.Won + c.Lost + c.Drawn
}

// CountOutcomes tallies matches by exact status equality.
// Statuses outside Won/Lost/Drawn are excluded from every bucket.
func CountOutcomes(items []MatchSummary) OutcomeCounts {
	var counts OutcomeCounts
	for _, m := range items {
		switch m.MatchStatus {
		case StatusWon:
			counts.Won++
		case StatusLost:
			counts.Lost++
		case StatusDrawn:
			counts.Drawn++
		}
	}
	return counts
}
