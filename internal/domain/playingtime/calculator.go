// Package playingtime estimates minutes played from Starting XI and substitution
// events. Each match is worth 90 minutes; stoppage time and dismissals are not
// taken into account.
package playingtime

import (
	"sort"

	"github.com/riskibarqy/laliga-insights/internal/domain/event"
)

const FullMatch = 90

// MatchMinutes is the playing time of one player in one match.
type MatchMinutes struct {
	MatchID   int64
	Started   bool
	SubbedIn  bool
	SubbedOut bool
	Minutes   int
}

// PerMatch returns the player's minutes for every match referenced by events or
// by a Starting XI that lists the player, ordered by match id.
func PerMatch(playerID int64, events []event.Event, startingXI []event.Event) []MatchMinutes {
	if playerID == 0 {
		return nil
	}

	byMatch := make(map[int64]*MatchMinutes)
	get := func(matchID int64) *MatchMinutes {
		mm, ok := byMatch[matchID]
		if !ok {
			mm = &MatchMinutes{MatchID: matchID}
			byMatch[matchID] = mm
		}
		return mm
	}

	for _, e := range events {
		get(e.MatchID)
	}
	for _, xi := range startingXI {
		if _, ok := xi.Starter(playerID); ok {
			get(xi.MatchID).Started = true
		}
	}

	subOut := make(map[int64]int)
	subIn := make(map[int64]int)
	for _, e := range events {
		if e.Type != event.TypeSubstitution {
			continue
		}
		if e.PlayerID == playerID {
			if _, seen := subOut[e.MatchID]; !seen {
				subOut[e.MatchID] = e.Minute
			}
		}
		if e.Substitution != nil && e.Substitution.ReplacementID == playerID {
			if _, seen := subIn[e.MatchID]; !seen {
				subIn[e.MatchID] = e.Minute
			}
		}
	}

	out := make([]MatchMinutes, 0, len(byMatch))
	for matchID, mm := range byMatch {
		outMinute, subbedOut := subOut[matchID]
		inMinute, subbedIn := subIn[matchID]
		switch {
		case mm.Started && subbedOut:
			mm.SubbedOut = true
			mm.Minutes = nonNegative(outMinute)
		case mm.Started:
			mm.Minutes = FullMatch
		case subbedIn:
			mm.SubbedIn = true
			mm.Minutes = nonNegative(FullMatch - inMinute)
		}
		out = append(out, *mm)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MatchID < out[j].MatchID })
	return out
}

// Total sums PerMatch over the season.
func Total(playerID int64, events []event.Event, startingXI []event.Event) int {
	total := 0
	for _, mm := range PerMatch(playerID, events, startingXI) {
		total += mm.Minutes
	}
	return total
}

func nonNegative(minutes int) int {
	if minutes < 0 {
		return 0
	}
	return minutes
}
