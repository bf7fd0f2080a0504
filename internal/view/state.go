package view

// State is the lifecycle phase of a team view.
type State int

const (
	// StateLoading is the initial state; it lasts until the single fetch settles.
	StateLoading State = iota
	// StateLoaded is terminal: data is present and the full page renders.
	StateLoaded
	// StateFailed is terminal: the fetch failed and an error message renders.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Settled reports whether the state is terminal.
func (s State) Settled() bool {
	return s == StateLoaded || s == StateFailed
}
