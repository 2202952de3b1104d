package request

// transitions is the edge set of the request lifecycle. pending->matched is
// the match action, matched->pending cancels a match, pending->failed is an
// outright operator reject. matched->failed carries no server-side guard in
// the original data layer and is kept reachable.
var transitions = map[Status][]Status{
	StatusPending: {StatusMatched, StatusFailed},
	StatusMatched: {StatusRunning, StatusPending, StatusFailed},
	StatusRunning: {StatusCompleted, StatusFailed},
}

// Terminal reports whether s admits no further transitions.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// CanTransition reports whether from -> to is a recognised lifecycle edge.
// Terminal states have no outgoing edges.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
