package event

// OfType returns the events whose type is one of types, in input order.
func OfType(events []Event, types ...Type) []Event {
	if len(types) == 0 {
		return nil
	}
	out := make([]Event, 0)
	for _, e := range events {
		for _, t := range types {
			if e.Type == t {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

// ByTeam returns the events of one team, in input order.
func ByTeam(events []Event, team string) []Event {
	out := make([]Event, 0)
	for _, e := range events {
		if e.Team == team {
			out = append(out, e)
		}
	}
	return out
}

// PassIndex maps pass ids to pass events for assist lookups.
func PassIndex(events []Event) map[string]Event {
	out := make(map[string]Event)
	for _, e := range events {
		if e.Type == TypePass && e.ID != "" {
			out[e.ID] = e
		}
	}
	return out
}

// CountWhere counts events satisfying fn.
func CountWhere(events []Event, fn func(Event) bool) int {
	n := 0
	for _, e := range events {
		if fn(e) {
			n++
		}
	}
	return n
}
