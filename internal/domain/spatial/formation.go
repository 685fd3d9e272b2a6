package spatial

import (
	"github.com/riskibarqy/laliga-insights/internal/domain/event"
	"github.com/riskibarqy/laliga-insights/internal/domain/pitch"
)

// FormationSpot places a starter on the lineup plot.
type FormationSpot struct {
	Team         string
	PlayerID     int64
	Player       string
	JerseyNumber int
	Position     string
	X            float64
	Y            float64
}

// Formation places the starters of a Starting XI event by position. The away
// side is mirrored into the right half.
func Formation(startingXI event.Event, home bool) []FormationSpot {
	if startingXI.Tactics == nil {
		return []FormationSpot{}
	}
	out := make([]FormationSpot, 0, len(startingXI.Tactics.Lineup))
	for _, slot := range startingXI.Tactics.Lineup {
		p := pitch.Spot(slot.Position, home).FlipY()
		out = append(out, FormationSpot{
			Team:         startingXI.Team,
			PlayerID:     slot.PlayerID,
			Player:       slot.Player,
			JerseyNumber: slot.JerseyNumber,
			Position:     slot.Position,
			X:            p.X,
			Y:            p.Y,
		})
	}
	return out
}
