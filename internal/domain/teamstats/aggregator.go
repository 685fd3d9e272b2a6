package teamstats

import (
	"sort"

	"github.com/riskibarqy/laliga-insights/internal/domain/event"
	"github.com/riskibarqy/laliga-insights/internal/domain/lineup"
	"github.com/riskibarqy/laliga-insights/internal/domain/match"
	"github.com/riskibarqy/laliga-insights/internal/domain/matchstats"
	"github.com/riskibarqy/laliga-insights/internal/domain/statvalue"
)

// ResultsFor tallies the results of the matches the team played.
func ResultsFor(team string, matches []match.Match) Results {
	var out Results
	for _, m := range matches {
		if !m.Involves(team) {
			continue
		}
		out.Played++
		outcome := m.Result(team)
		switch outcome {
		case match.OutcomeWin:
			out.Won++
		case match.OutcomeDraw:
			out.Draw++
		default:
			out.Lost++
		}
		out.Points += outcome.Points()
	}

	out.WinPct = statvalue.Percent(out.Won, out.Played)
	out.PointsPerMatch = statvalue.Decimal2(statvalue.Ratio(out.Points, out.Played))
	return out
}

// ScoringFor combines goals from the score sheet with shot and pass events.
// events should cover both sides of the team's matches so possession has a denominator.
func ScoringFor(team string, matches []match.Match, events []event.Event) Scoring {
	var out Scoring
	for _, m := range matches {
		if !m.Involves(team) {
			continue
		}
		gf, ga := m.GoalsFor(team), m.GoalsAgainst(team)
		out.GoalsFor += gf
		out.GoalsAgainst += ga
		if ga == 0 {
			out.CleanSheets++
		}
		if gf == 0 {
			out.FailedToScore++
		}
	}
	out.GoalDifference = out.GoalsFor - out.GoalsAgainst

	xg := 0.0
	for _, e := range events {
		if e.Team != team || e.Type != event.TypeShot {
			continue
		}
		out.Shots++
		if matchstats.OnTarget(e) {
			out.ShotsOnTarget++
		}
		if e.Shot != nil {
			xg += e.Shot.XG
		}
	}
	out.XG = statvalue.Round2(xg)
	out.ShotAccuracy = statvalue.Percent(out.ShotsOnTarget, out.Shots)

	passing := PassingFor(team, events)
	out.PassesAttempted = passing.PassesAttempted
	out.PassesCompleted = passing.PassesCompleted
	out.PassAccuracy = passing.PassAccuracy
	out.AveragePossession = passing.AveragePossession
	return out
}

// PassingFor computes pass accuracy and the share of ball-control events.
func PassingFor(team string, events []event.Event) Passing {
	var out Passing
	passes := event.OfType(event.ByTeam(events, team), event.TypePass)
	out.PassesAttempted = len(passes)
	out.PassesCompleted = event.CountWhere(passes, event.Event.IsCompletedPass)
	out.PassAccuracy = statvalue.Percent(out.PassesCompleted, out.PassesAttempted)

	control, total := matchstats.Control(team, events)
	out.AveragePossession = statvalue.Percent(control, total)
	return out
}

// MatchList returns the team's matches ordered by week.
func MatchList(team string, matches []match.Match) []MatchRow {
	out := make([]MatchRow, 0)
	for _, m := range matches {
		if !m.Involves(team) {
			continue
		}
		out = append(out, MatchRow{
			MatchID:  m.ID,
			Week:     m.Week,
			Date:     m.Date,
			Result:   string(m.Result(team)),
			HomeTeam: m.HomeTeam,
			Score:    m.Score(),
			AwayTeam: m.AwayTeam,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Week < out[j].Week
	})
	return out
}

// Squad lists every player who appeared in the team's lineups, once, ordered by jersey number.
func Squad(team string, lineups []lineup.Entry) []SquadRow {
	out := make([]SquadRow, 0)
	seen := make(map[int64]bool)
	for _, entry := range lineups {
		if entry.Team != team || seen[entry.PlayerID] {
			continue
		}
		seen[entry.PlayerID] = true
		out = append(out, SquadRow{
			PlayerID:     entry.PlayerID,
			Name:         entry.PlayerName,
			JerseyNumber: entry.JerseyNumber,
			Country:      entry.Country,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].JerseyNumber < out[j].JerseyNumber
	})
	return out
}
