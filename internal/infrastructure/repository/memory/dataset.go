package memory

import (
	"sort"
	"sync"

	"github.com/riskibarqy/laliga-insights/internal/domain/event"
	"github.com/riskibarqy/laliga-insights/internal/domain/lineup"
	"github.com/riskibarqy/laliga-insights/internal/domain/match"
)

// Dataset is the in-memory season snapshot shared by the memory repositories.
// Records are indexed once; lists handed out are fresh slices whose elements
// must be treated as read-only.
type Dataset struct {
	mu sync.RWMutex

	matches       []match.Match
	matchByID     map[int64]int
	events        []event.Event
	eventByID     map[string]int
	eventsByMatch map[int64][]int
	eventsByType  map[event.Type][]int
	eventsByTeam  map[string][]int
	eventsByActor map[int64][]int
	lineups       []lineup.Entry
}

func NewDataset(matches []match.Match, events []event.Event, lineups []lineup.Entry) *Dataset {
	d := &Dataset{}
	d.Replace(matches, events, lineups)
	return d
}

// Replace swaps the whole snapshot.
func (d *Dataset) Replace(matches []match.Match, events []event.Event, lineups []lineup.Entry) {
	sortedMatches := append([]match.Match(nil), matches...)
	sort.SliceStable(sortedMatches, func(i, j int) bool {
		if sortedMatches[i].Week != sortedMatches[j].Week {
			return sortedMatches[i].Week < sortedMatches[j].Week
		}
		return sortedMatches[i].ID < sortedMatches[j].ID
	})

	matchByID := make(map[int64]int, len(sortedMatches))
	for i, m := range sortedMatches {
		matchByID[m.ID] = i
	}

	copiedEvents := append([]event.Event(nil), events...)
	eventByID := make(map[string]int, len(copiedEvents))
	byMatch := make(map[int64][]int)
	byType := make(map[event.Type][]int)
	byTeam := make(map[string][]int)
	byActor := make(map[int64][]int)
	for i, e := range copiedEvents {
		if e.ID != "" {
			eventByID[e.ID] = i
		}
		byMatch[e.MatchID] = append(byMatch[e.MatchID], i)
		byType[e.Type] = append(byType[e.Type], i)
		if e.Team != "" {
			byTeam[e.Team] = append(byTeam[e.Team], i)
		}
		for _, id := range actorsOf(e) {
			byActor[id] = append(byActor[id], i)
		}
	}

	copiedLineups := make([]lineup.Entry, 0, len(lineups))
	for _, entry := range lineups {
		copiedLineups = append(copiedLineups, entry.Clone())
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.matches = sortedMatches
	d.matchByID = matchByID
	d.events = copiedEvents
	d.eventByID = eventByID
	d.eventsByMatch = byMatch
	d.eventsByType = byType
	d.eventsByTeam = byTeam
	d.eventsByActor = byActor
	d.lineups = copiedLineups
}

// actorsOf lists the distinct player ids an event is about.
func actorsOf(e event.Event) []int64 {
	ids := make([]int64, 0, 2)
	add := func(id int64) {
		if id == 0 {
			return
		}
		for _, seen := range ids {
			if seen == id {
				return
			}
		}
		ids = append(ids, id)
	}
	add(e.PlayerID)
	if e.Pass != nil {
		add(e.Pass.RecipientID)
	}
	if e.Substitution != nil {
		add(e.Substitution.ReplacementID)
	}
	return ids
}

func (d *Dataset) pickEvents(indexes []int) []event.Event {
	out := make([]event.Event, 0, len(indexes))
	for _, i := range indexes {
		out = append(out, d.events[i])
	}
	return out
}

func (d *Dataset) filterLineups(keep func(lineup.Entry) bool) []lineup.Entry {
	out := make([]lineup.Entry, 0)
	for _, entry := range d.lineups {
		if keep == nil || keep(entry) {
			out = append(out, entry.Clone())
		}
	}
	return out
}

func (d *Dataset) filterMatches(keep func(match.Match) bool) []match.Match {
	out := make([]match.Match, 0)
	for _, m := range d.matches {
		if keep == nil || keep(m) {
			out = append(out, m)
		}
	}
	return out
}
