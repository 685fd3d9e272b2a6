package matchstats

import (
	"sort"

	"github.com/riskibarqy/laliga-insights/internal/domain/event"
	"github.com/riskibarqy/laliga-insights/internal/domain/lineup"
	"github.com/riskibarqy/laliga-insights/internal/domain/match"
	"github.com/riskibarqy/laliga-insights/internal/domain/statvalue"
)

// Compare builds the head-to-head table of one match.
func Compare(m match.Match, events []event.Event, lineups []lineup.Entry) Comparison {
	home := teamLine(m.HomeTeam, events, lineups)
	away := teamLine(m.AwayTeam, events, lineups)
	home.Goals, away.Goals = m.HomeScore, m.AwayScore

	homeControl, total := Control(m.HomeTeam, events)
	awayControl, _ := Control(m.AwayTeam, events)
	home.Possession = statvalue.Percent(homeControl, total)
	away.Possession = statvalue.Percent(awayControl, total)

	return Comparison{MatchID: m.ID, Home: home, Away: away}
}

func teamLine(team string, events []event.Event, lineups []lineup.Entry) TeamLine {
	line := TeamLine{Team: team}
	xg := 0.0
	for _, e := range event.ByTeam(events, team) {
		switch e.Type {
		case event.TypeShot:
			line.Shots++
			if OnTarget(e) {
				line.ShotsOnTarget++
			}
			if e.Shot != nil {
				xg += e.Shot.XG
				if e.Shot.Type == event.ShotTypePenalty {
					line.Penalties++
				}
			}
		case event.TypePass:
			line.Passes++
			if e.Pass.Completed() {
				line.AccuratePasses++
			}
			if e.Pass != nil {
				switch e.Pass.Type {
				case event.PassTypeCorner:
					line.Corners++
				case event.PassTypeFreeKick:
					line.FreeKicks++
				}
			}
		case event.TypeFoulCommitted:
			line.Fouls++
		}
	}
	line.XG = statvalue.Round2(xg)
	line.PassAccuracy = statvalue.Percent(line.AccuratePasses, line.Passes)
	line.YellowCards, line.RedCards = CardCounts(team, lineups)
	return line
}

// OnTarget reports whether a shot counts as on target: scored or saved.
func OnTarget(e event.Event) bool {
	if e.Type != event.TypeShot || e.Shot == nil {
		return false
	}
	return e.Shot.Outcome == event.ShotOutcomeGoal || e.Shot.Outcome == event.ShotOutcomeSaved
}

// Control counts a team's ball-control events and the total across both sides.
func Control(team string, events []event.Event) (teamCount, total int) {
	for _, e := range events {
		switch e.Type {
		case event.TypePass, event.TypeCarry, event.TypeBallReceipt:
			total++
			if e.Team == team {
				teamCount++
			}
		}
	}
	return teamCount, total
}

// CardCounts tallies a team's bookings. A second yellow adds to both counters.
func CardCounts(team string, lineups []lineup.Entry) (yellow, red int) {
	for _, entry := range lineups {
		if entry.Team != team {
			continue
		}
		for _, card := range entry.Cards {
			if card.Type.CountsAsYellow() {
				yellow++
			}
			if card.Type.CountsAsRed() {
				red++
			}
		}
	}
	return yellow, red
}

// XGFlow builds cumulative xG curves starting at minute 0 with 0 xG.
func XGFlow(m match.Match, events []event.Event) Flow {
	shots := event.OfType(events, event.TypeShot)
	sort.SliceStable(shots, func(i, j int) bool {
		if shots[i].Period != shots[j].Period {
			return shots[i].Period < shots[j].Period
		}
		if shots[i].Minute != shots[j].Minute {
			return shots[i].Minute < shots[j].Minute
		}
		return shots[i].Second < shots[j].Second
	})

	flow := Flow{
		HomeTeam: m.HomeTeam,
		AwayTeam: m.AwayTeam,
		Home:     []FlowPoint{{}},
		Away:     []FlowPoint{{}},
	}
	homeXG, awayXG := 0.0, 0.0
	for _, shot := range shots {
		if shot.Shot == nil {
			continue
		}
		var total *float64
		var curve *[]FlowPoint
		switch shot.Team {
		case m.HomeTeam:
			total, curve = &homeXG, &flow.Home
		case m.AwayTeam:
			total, curve = &awayXG, &flow.Away
		default:
			continue
		}
		*total += shot.Shot.XG
		*curve = append(*curve, FlowPoint{
			Minute: shot.Minute + 1,
			XG:     statvalue.Round2(*total),
			Goal:   shot.IsGoal(),
			Player: shot.Player,
		})
	}
	return flow
}

// SplitLineups separates each side's match squad into starters and bench.
// Starters come from the Starting XI events in lineup order; bench players are
// sorted by jersey number.
func SplitLineups(m match.Match, startingXI []event.Event, lineups []lineup.Entry) (home, away Squad) {
	return squadFor(m.HomeTeam, startingXI, lineups), squadFor(m.AwayTeam, startingXI, lineups)
}

func squadFor(team string, startingXI []event.Event, lineups []lineup.Entry) Squad {
	squad := Squad{Team: team, Starters: make([]SquadPlayer, 0, 11), Bench: make([]SquadPlayer, 0)}

	names := make(map[int64]lineup.Entry)
	for _, entry := range lineups {
		if entry.Team == team {
			names[entry.PlayerID] = entry
		}
	}

	started := make(map[int64]bool)
	for _, xi := range startingXI {
		if xi.Team != team || xi.Tactics == nil {
			continue
		}
		squad.Formation = xi.Tactics.Formation
		for _, slot := range xi.Tactics.Lineup {
			if started[slot.PlayerID] {
				continue
			}
			started[slot.PlayerID] = true
			player := SquadPlayer{
				PlayerID:     slot.PlayerID,
				Name:         slot.Player,
				JerseyNumber: slot.JerseyNumber,
				Position:     slot.Position,
			}
			if entry, ok := names[slot.PlayerID]; ok {
				player.Name = entry.PlayerName
			}
			squad.Starters = append(squad.Starters, player)
		}
	}

	seen := make(map[int64]bool)
	for _, entry := range lineups {
		if entry.Team != team || started[entry.PlayerID] || seen[entry.PlayerID] {
			continue
		}
		seen[entry.PlayerID] = true
		squad.Bench = append(squad.Bench, SquadPlayer{
			PlayerID:     entry.PlayerID,
			Name:         entry.PlayerName,
			JerseyNumber: entry.JerseyNumber,
		})
	}
	sort.SliceStable(squad.Bench, func(i, j int) bool {
		return squad.Bench[i].JerseyNumber < squad.Bench[j].JerseyNumber
	})

	return squad
}
