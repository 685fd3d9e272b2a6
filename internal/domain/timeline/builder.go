package timeline

import (
	"fmt"
	"sort"

	"github.com/riskibarqy/laliga-insights/internal/domain/event"
	"github.com/riskibarqy/laliga-insights/internal/domain/lineup"
)

// Nominal end minute of each period.
var periodLength = map[int]int{1: 45, 2: 90}

// Build merges goals, cards, substitutions and half boundaries of one match
// into a list ordered by display minute. Entries sharing a minute keep the
// order goals, cards, substitutions, half boundaries.
func Build(events []event.Event, lineups []lineup.Entry) []Entry {
	out := make([]Entry, 0)
	out = append(out, goals(events)...)
	out = append(out, cards(lineups)...)
	out = append(out, substitutions(events)...)
	out = append(out, halfBoundaries(events)...)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Minute < out[j].Minute
	})
	return out
}

func displayMinute(minute int) int {
	return minute + 1
}

func goals(events []event.Event) []Entry {
	passes := event.PassIndex(events)

	out := make([]Entry, 0)
	for _, e := range events {
		switch {
		case e.IsGoal():
			label := TypeGoal
			if e.Shot.Type == event.ShotTypePenalty {
				label = TypePenaltyGoal
			}
			player := e.Player
			if pass, ok := passes[e.Shot.KeyPassID]; ok && e.Shot.KeyPassID != "" && pass.Player != "" {
				player = fmt.Sprintf("%s (a. %s)", e.Player, pass.Player)
			}
			out = append(out, Entry{
				Icon:   Icon(label),
				Minute: displayMinute(e.Minute),
				Type:   label,
				Team:   e.Team,
				Player: player,
			})
		case e.Type == event.TypeOwnGoalFor:
			out = append(out, Entry{
				Icon:   Icon(TypeOwnGoal),
				Minute: displayMinute(e.Minute),
				Type:   TypeOwnGoal,
				Team:   e.Team,
				Player: e.Player,
			})
		}
	}
	return out
}

func cards(lineups []lineup.Entry) []Entry {
	out := make([]Entry, 0)
	for _, entry := range lineups {
		for _, card := range entry.Cards {
			player := entry.PlayerName
			if player == "" {
				player = card.PlayerName
			}
			if player == "" {
				player = unknownPlayer
			}
			out = append(out, Entry{
				Icon:   Icon(string(card.Type)),
				Minute: displayMinute(card.Minute()),
				Type:   string(card.Type),
				Team:   entry.Team,
				Player: player,
			})
		}
	}
	return out
}

func substitutions(events []event.Event) []Entry {
	out := make([]Entry, 0)
	for _, e := range events {
		if e.Type != event.TypeSubstitution {
			continue
		}
		incoming := ""
		if e.Substitution != nil {
			incoming = e.Substitution.Replacement
		}
		out = append(out, Entry{
			Icon:   Icon(TypeSubstitution),
			Minute: displayMinute(e.Minute),
			Type:   TypeSubstitution,
			Team:   e.Team,
			Player: fmt.Sprintf("⬇️ %s ⬆️ %s", e.Player, incoming),
		})
	}
	return out
}

func halfBoundaries(events []event.Event) []Entry {
	last := make(map[int]event.Event)
	for _, e := range events {
		if e.Type != event.TypeHalfEnd {
			continue
		}
		if _, known := periodLength[e.Period]; !known {
			continue
		}
		prev, ok := last[e.Period]
		if !ok || !before(e, prev) {
			last[e.Period] = e
		}
	}

	out := make([]Entry, 0, 4)
	for _, period := range []int{1, 2} {
		e, ok := last[period]
		if !ok {
			continue
		}
		nominal := periodLength[period]
		minute := displayMinute(e.Minute)
		if minute > nominal {
			out = append(out, Entry{
				Icon:   Icon(typeAddedTime),
				Minute: nominal,
				Type:   fmt.Sprintf("%s +%d min", halfName(period), minute-nominal),
			})
		}
		label := TypeHalftime
		if period == 2 {
			label = TypeFulltime
		}
		out = append(out, Entry{
			Icon:   Icon(label),
			Minute: minute,
			Type:   label,
		})
	}
	return out
}

// before reports whether a happened strictly earlier than b.
func before(a, b event.Event) bool {
	if a.Minute != b.Minute {
		return a.Minute < b.Minute
	}
	return a.Second < b.Second
}

func halfName(period int) string {
	if period == 1 {
		return "1st Half"
	}
	return "2nd Half"
}
