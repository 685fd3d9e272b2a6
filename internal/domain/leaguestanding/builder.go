package leaguestanding

import (
	"sort"

	"github.com/riskibarqy/laliga-insights/internal/domain/match"
	"github.com/riskibarqy/laliga-insights/internal/domain/team"
)

const formLength = 5

// Build reconstructs the league table from final scores. Rows are ordered by
// points, goal difference and goals scored; remaining ties keep the order in
// which teams first appear in the week-ordered match list.
func Build(matches []match.Match, teams *team.Registry) []Standing {
	ordered := byWeek(matches)

	rows := make([]*Standing, 0)
	index := make(map[string]*Standing)
	rowFor := func(name string) *Standing {
		if row, ok := index[name]; ok {
			return row
		}
		row := &Standing{Team: name}
		if teams != nil {
			row.TeamID = teams.IDOf(name)
		}
		index[name] = row
		rows = append(rows, row)
		return row
	}

	for _, m := range ordered {
		home := rowFor(m.HomeTeam)
		away := rowFor(m.AwayTeam)

		home.HomeGoalsFor += m.HomeScore
		home.HomeGoalsAgainst += m.AwayScore
		away.AwayGoalsFor += m.AwayScore
		away.AwayGoalsAgainst += m.HomeScore

		applyResult(home, m.Result(m.HomeTeam))
		applyResult(away, m.Result(m.AwayTeam))
	}

	out := make([]Standing, 0, len(rows))
	for _, row := range rows {
		row.GoalsFor = row.HomeGoalsFor + row.AwayGoalsFor
		row.GoalsAgainst = row.HomeGoalsAgainst + row.AwayGoalsAgainst
		row.GoalDifference = row.GoalsFor - row.GoalsAgainst
		out = append(out, *row)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return ranksAbove(out[i], out[j])
	})
	for i := range out {
		out[i].Position = i + 1
	}

	return out
}

func applyResult(row *Standing, outcome match.Outcome) {
	row.Played++
	switch outcome {
	case match.OutcomeWin:
		row.Won++
	case match.OutcomeDraw:
		row.Draw++
	default:
		row.Lost++
	}
	row.Points += outcome.Points()

	row.Form += string(outcome)
	if len(row.Form) > formLength {
		row.Form = row.Form[len(row.Form)-formLength:]
	}
}

func ranksAbove(a, b Standing) bool {
	if a.Points != b.Points {
		return a.Points > b.Points
	}
	if a.GoalDifference != b.GoalDifference {
		return a.GoalDifference > b.GoalDifference
	}
	return a.GoalsFor > b.GoalsFor
}

// byWeek returns a copy of matches ordered by week, keeping input order inside a week.
func byWeek(matches []match.Match) []match.Match {
	out := make([]match.Match, len(matches))
	copy(out, matches)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Week < out[j].Week
	})
	return out
}
