package playerstats

import (
	"sort"

	"github.com/riskibarqy/laliga-insights/internal/domain/event"
	"github.com/riskibarqy/laliga-insights/internal/domain/lineup"
	"github.com/riskibarqy/laliga-insights/internal/domain/pitch"
)

var touchTypes = map[event.Type]bool{
	event.TypePass:         true,
	event.TypeCarry:        true,
	event.TypeDribble:      true,
	event.TypeShot:         true,
	event.TypeInterception: true,
	event.TypeClearance:    true,
	event.TypeBlock:        true,
	event.TypeFoulWon:      true,
}

// IsTouch reports whether the event counts as a ball touch.
func IsTouch(e event.Event) bool {
	return touchTypes[e.Type]
}

// Season counts the player's own actions. Events where the player only appears
// as pass recipient or replacement are ignored.
func Season(playerID int64, events []event.Event, minutes int) SeasonStats {
	stats := SeasonStats{PlayerID: playerID, Minutes: minutes}
	if playerID == 0 {
		return stats
	}
	for _, e := range events {
		if e.PlayerID != playerID {
			continue
		}
		if IsTouch(e) {
			stats.Touches++
		}
		switch e.Type {
		case event.TypePass:
			stats.Passes++
			if e.Pass.Completed() {
				stats.CompletedPasses++
			}
		case event.TypeDribble:
			stats.Dribbles++
			if e.Dribble != nil && e.Dribble.Outcome == event.DribbleOutcomeComplete {
				stats.SuccessfulDribbles++
			}
		case event.TypeShot:
			stats.Shots++
			if e.IsGoal() {
				stats.Goals++
			}
		case event.TypeFoulCommitted:
			stats.FoulsCommitted++
		case event.TypeFoulWon:
			stats.FoulsWon++
		case event.TypeCarry:
			stats.Carries++
		}
	}
	return stats
}

// ShotCategory groups a shot outcome for shot maps.
func ShotCategory(outcome string) string {
	switch outcome {
	case event.ShotOutcomeGoal:
		return CategoryGoal
	case event.ShotOutcomeSaved, event.ShotOutcomeSavedToPost, event.ShotOutcomeSavedOffTarget:
		return CategoryOnTarget
	default:
		return CategoryOffTarget
	}
}

// Positions counts the starting positions of a player, most frequent first.
// Spots are in full-pitch display coordinates.
func Positions(playerID int64, startingXI []event.Event) []PositionCount {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, xi := range startingXI {
		slot, ok := xi.Starter(playerID)
		if !ok {
			continue
		}
		if _, seen := counts[slot.Position]; !seen {
			order = append(order, slot.Position)
		}
		counts[slot.Position]++
	}

	out := make([]PositionCount, 0, len(order))
	for _, name := range order {
		spot, ok := pitch.Position(name)
		if !ok {
			spot = pitch.DefaultSpot
		}
		out = append(out, PositionCount{
			Position: name,
			Count:    counts[name],
			Spot:     pitch.Point{X: 2 * spot.X, Y: pitch.Width - spot.Y},
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// CountAppearances returns starts (Starting XI listings) and substitute entries.
func CountAppearances(playerID int64, startingXI []event.Event, events []event.Event) Appearances {
	var a Appearances
	if playerID == 0 {
		return a
	}
	for _, xi := range startingXI {
		if _, ok := xi.Starter(playerID); ok {
			a.Starts++
		}
	}
	for _, e := range events {
		if e.Type == event.TypeSubstitution && e.Substitution != nil && e.Substitution.ReplacementID == playerID {
			a.SubIns++
		}
	}
	a.Total = a.Starts + a.SubIns
	return a
}

// ProfileOf builds the player card from the first lineup entry of the player.
func ProfileOf(playerID int64, lineups []lineup.Entry) (Profile, bool) {
	for _, entry := range lineups {
		if entry.PlayerID != playerID {
			continue
		}
		return Profile{
			PlayerID:     entry.PlayerID,
			Name:         entry.DisplayName(),
			FullName:     entry.PlayerName,
			Nickname:     entry.Nickname,
			Team:         entry.Team,
			JerseyNumber: entry.JerseyNumber,
			Country:      entry.Country,
		}, true
	}
	return Profile{}, false
}
