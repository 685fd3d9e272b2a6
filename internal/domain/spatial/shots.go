package spatial

import (
	"github.com/riskibarqy/laliga-insights/internal/domain/event"
	"github.com/riskibarqy/laliga-insights/internal/domain/pitch"
	"github.com/riskibarqy/laliga-insights/internal/domain/playerstats"
)

// ShotPoint is a plotted shot.
type ShotPoint struct {
	EventID  string
	MatchID  int64
	Minute   int
	Team     string
	PlayerID int64
	Player   string
	X        float64
	Y        float64
	XG       float64
	Outcome  string
	Category string
	Goal     bool
}

// ShotMap plots every located shot. When homeTeam is set, the home side is
// rotated into the left half so both teams attack away from each other; with an
// empty homeTeam every shot keeps its attacking direction.
func ShotMap(events []event.Event, homeTeam string) []ShotPoint {
	out := make([]ShotPoint, 0)
	for _, e := range events {
		if e.Type != event.TypeShot || e.Location == nil {
			continue
		}
		var p pitch.Point
		if homeTeam != "" && e.Team == homeTeam {
			p = e.Location.FlipY().Mirror()
		} else {
			p = e.Location.FlipY()
		}
		sp := ShotPoint{
			EventID:  e.ID,
			MatchID:  e.MatchID,
			Minute:   e.Minute + 1,
			Team:     e.Team,
			PlayerID: e.PlayerID,
			Player:   e.Player,
			X:        p.X,
			Y:        p.Y,
		}
		if e.Shot != nil {
			sp.XG = e.Shot.XG
			sp.Outcome = e.Shot.Outcome
		}
		sp.Category = playerstats.ShotCategory(sp.Outcome)
		sp.Goal = sp.Category == playerstats.CategoryGoal
		out = append(out, sp)
	}
	return out
}
