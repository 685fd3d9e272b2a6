package topscorers

import (
	"sort"
	"strconv"

	"github.com/riskibarqy/laliga-insights/internal/domain/event"
)

type playerKey struct {
	id   string
	team string
}

func keyOf(playerID int64, player, team string) playerKey {
	if playerID != 0 {
		return playerKey{id: strconv.FormatInt(playerID, 10), team: team}
	}
	return playerKey{id: "name:" + player, team: team}
}

// Scorers counts scored shots per player and team. Own goals are not credited.
func Scorers(events []event.Event) []Scorer {
	rows := make([]*Scorer, 0)
	index := make(map[playerKey]*Scorer)

	for _, e := range events {
		if !e.IsGoal() {
			continue
		}
		key := keyOf(e.PlayerID, e.Player, e.Team)
		row, ok := index[key]
		if !ok {
			row = &Scorer{PlayerID: e.PlayerID, Player: e.Player, Team: e.Team}
			index[key] = row
			rows = append(rows, row)
		}
		row.Goals++
		switch e.Shot.Type {
		case event.ShotTypePenalty:
			row.Penalties++
		case event.ShotTypeFreeKick:
			row.FreeKicks++
		}
	}

	out := make([]Scorer, 0, len(rows))
	for _, row := range rows {
		row.OpenPlay = row.Goals - row.Penalties - row.FreeKicks
		out = append(out, *row)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Goals != out[j].Goals {
			return out[i].Goals > out[j].Goals
		}
		return out[i].Player < out[j].Player
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

// Assists credits the passer of each scored shot's key pass. Key passes that
// do not resolve to a pass in events are ignored.
func Assists(events []event.Event) []Assist {
	passes := event.PassIndex(events)

	rows := make([]*Assist, 0)
	index := make(map[playerKey]*Assist)
	for _, e := range events {
		if !e.IsGoal() || e.Shot.KeyPassID == "" {
			continue
		}
		pass, ok := passes[e.Shot.KeyPassID]
		if !ok || pass.Player == "" {
			continue
		}
		key := keyOf(pass.PlayerID, pass.Player, pass.Team)
		row, ok := index[key]
		if !ok {
			row = &Assist{PlayerID: pass.PlayerID, Player: pass.Player, Team: pass.Team}
			index[key] = row
			rows = append(rows, row)
		}
		row.Assists++
	}

	out := make([]Assist, 0, len(rows))
	for _, row := range rows {
		out = append(out, *row)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Assists != out[j].Assists {
			return out[i].Assists > out[j].Assists
		}
		return out[i].Player < out[j].Player
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

// ForTeam keeps the scorer rows of one team and re-ranks them.
func ForTeam(rows []Scorer, team string) []Scorer {
	out := make([]Scorer, 0)
	for _, row := range rows {
		if row.Team == team {
			row.Rank = len(out) + 1
			out = append(out, row)
		}
	}
	return out
}

// AssistsForTeam keeps the assist rows of one team and re-ranks them.
func AssistsForTeam(rows []Assist, team string) []Assist {
	out := make([]Assist, 0)
	for _, row := range rows {
		if row.Team == team {
			row.Rank = len(out) + 1
			out = append(out, row)
		}
	}
	return out
}

// Limit truncates a ranked table; n <= 0 keeps every row.
func Limit[T any](rows []T, n int) []T {
	if n <= 0 || n >= len(rows) {
		return rows
	}
	return rows[:n]
}
