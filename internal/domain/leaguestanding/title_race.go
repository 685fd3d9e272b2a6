package leaguestanding

import (
	"github.com/riskibarqy/laliga-insights/internal/domain/match"
	"github.com/riskibarqy/laliga-insights/internal/domain/team"
)

// TitleRace returns cumulative points per match week for every team, ordered by
// final table position.
func TitleRace(matches []match.Match, teams *team.Registry) []RaceLine {
	table := Build(matches, teams)

	lines := make(map[string]*RaceLine, len(table))
	for _, row := range table {
		lines[row.Team] = &RaceLine{Team: row.Team, TeamID: row.TeamID}
	}

	add := func(name string, week, points int) {
		line := lines[name]
		total := points
		if n := len(line.Points); n > 0 {
			total += line.Points[n-1].Points
		}
		line.Points = append(line.Points, RacePoint{Week: week, Points: total})
	}

	for _, m := range byWeek(matches) {
		add(m.HomeTeam, m.Week, m.Result(m.HomeTeam).Points())
		add(m.AwayTeam, m.Week, m.Result(m.AwayTeam).Points())
	}

	out := make([]RaceLine, 0, len(table))
	for _, row := range table {
		out = append(out, *lines[row.Team])
	}
	return out
}
