// Package report renders season tables as plain-text tables for the CLI.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/riskibarqy/laliga-insights/internal/domain/leaguestanding"
	"github.com/riskibarqy/laliga-insights/internal/domain/match"
	"github.com/riskibarqy/laliga-insights/internal/domain/matchstats"
	"github.com/riskibarqy/laliga-insights/internal/domain/team"
	"github.com/riskibarqy/laliga-insights/internal/domain/timeline"
	"github.com/riskibarqy/laliga-insights/internal/domain/topscorers"
	"github.com/riskibarqy/laliga-insights/internal/usecase"
)

// raceTail is how many trailing weeks the title race table shows.
const raceTail = 5

func newTable(w io.Writer, align tw.Align) *tablewriter.Table {
	return tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
		Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: align}},
		Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
	}))
}

func headerOf(columns []string) []any {
	out := make([]any, len(columns))
	for i, c := range columns {
		out[i] = c
	}
	return out
}

// cell formats a table value. Floats are printed with two decimals.
func cell(v any) string {
	switch value := v.(type) {
	case float64:
		return strconv.FormatFloat(value, 'f', 2, 64)
	case string:
		return value
	default:
		return fmt.Sprint(value)
	}
}

// PrintStandings writes the league table.
func PrintStandings(w io.Writer, rows []leaguestanding.Standing) {
	table := newTable(w, tw.AlignRight)
	table.Header(headerOf(leaguestanding.Columns)...)
	for _, s := range rows {
		table.Append(
			strconv.Itoa(s.Position),
			s.Team,
			strconv.Itoa(s.Points),
			strconv.Itoa(s.GoalDifference),
			strconv.Itoa(s.Won),
			strconv.Itoa(s.Draw),
			strconv.Itoa(s.Lost),
			strconv.Itoa(s.GoalsFor),
			strconv.Itoa(s.GoalsAgainst),
			strconv.Itoa(s.HomeGoalsFor),
			strconv.Itoa(s.AwayGoalsFor),
			strconv.Itoa(s.HomeGoalsAgainst),
			strconv.Itoa(s.AwayGoalsAgainst),
		)
	}
	table.Render()
}

// PrintTitleRace writes final points and the cumulative points of the last weeks.
func PrintTitleRace(w io.Writer, lines []leaguestanding.RaceLine) {
	table := newTable(w, tw.AlignRight)
	table.Header("TEAM", "PTS", "LAST WEEKS")
	for _, line := range lines {
		final := 0
		if n := len(line.Points); n > 0 {
			final = line.Points[n-1].Points
		}
		start := max(len(line.Points)-raceTail, 0)
		trail := make([]string, 0, raceTail)
		for _, p := range line.Points[start:] {
			trail = append(trail, fmt.Sprintf("W%d:%d", p.Week, p.Points))
		}
		table.Append(line.Team, strconv.Itoa(final), strings.Join(trail, " "))
	}
	table.Render()
}

// PrintScorers writes the goal-scorer table.
func PrintScorers(w io.Writer, rows []topscorers.Scorer) {
	table := newTable(w, tw.AlignRight)
	table.Header("#", "PLAYER", "TEAM", "GOALS", "PEN", "FK", "OPEN PLAY")
	for _, s := range rows {
		table.Append(
			strconv.Itoa(s.Rank),
			s.Player,
			s.Team,
			strconv.Itoa(s.Goals),
			strconv.Itoa(s.Penalties),
			strconv.Itoa(s.FreeKicks),
			strconv.Itoa(s.OpenPlay),
		)
	}
	table.Render()
}

// PrintAssists writes the assist table.
func PrintAssists(w io.Writer, rows []topscorers.Assist) {
	table := newTable(w, tw.AlignRight)
	table.Header("#", "PLAYER", "TEAM", "ASSISTS")
	for _, a := range rows {
		table.Append(strconv.Itoa(a.Rank), a.Player, a.Team, strconv.Itoa(a.Assists))
	}
	table.Render()
}

// PrintMatchHeader writes a one-line summary of the match.
func PrintMatchHeader(w io.Writer, m match.Match) {
	date := ""
	if !m.Date.IsZero() {
		date = m.Date.Format("2006-01-02")
	}
	fmt.Fprintf(w, "\nWeek %d  |  %s  |  %s %s %s  |  %s\n\n",
		m.Week, date, m.HomeTeam, m.Score(), m.AwayTeam, m.Stadium)
}

// PrintTimeline writes the match timeline.
func PrintTimeline(w io.Writer, entries []timeline.Entry) {
	table := newTable(w, tw.AlignLeft)
	table.Header(headerOf(timeline.Columns)...)
	for _, e := range entries {
		table.Append(e.Icon, strconv.Itoa(e.Minute), e.Type, e.Team, e.Player)
	}
	table.Render()
}

// PrintComparison writes the head-to-head statistics of a match.
func PrintComparison(w io.Writer, c matchstats.Comparison) {
	table := newTable(w, tw.AlignRight)
	table.Header("STATISTIC", c.Home.Team, c.Away.Team)
	for _, row := range c.Rows() {
		table.Append(row.Statistic, cell(row.Home), cell(row.Away))
	}
	table.Render()
}

// PrintPlayer writes the profile line, the season table and the position counts.
func PrintPlayer(w io.Writer, r usecase.PlayerReport) {
	p := r.Profile
	fmt.Fprintf(w, "\n%s (#%d, %s, %s)  |  %d min  |  %d starts, %d sub appearances\n\n",
		p.Name, p.JerseyNumber, p.Team, p.Country, r.Minutes, r.Appearances.Starts, r.Appearances.SubIns)

	season := newTable(w, tw.AlignRight)
	season.Header("STATISTIC", "TOTAL", "PER 90")
	for _, row := range r.Season.Rows() {
		season.Append(row.Statistic, cell(row.Total), cell(row.Per90))
	}
	season.Render()

	if len(r.Positions) == 0 {
		return
	}
	fmt.Fprintln(w)
	positions := newTable(w, tw.AlignRight)
	positions.Header("POSITION", "STARTS")
	for _, pos := range r.Positions {
		positions.Append(pos.Position, strconv.Itoa(pos.Count))
	}
	positions.Render()
}

// PrintTeams writes the club registry.
func PrintTeams(w io.Writer, teams []team.Team) {
	table := newTable(w, tw.AlignLeft)
	table.Header("ID", "TEAM")
	for _, t := range teams {
		table.Append(strconv.Itoa(t.ID), t.Name)
	}
	table.Render()
}

// PrintMatches writes one line per match.
func PrintMatches(w io.Writer, matches []match.Match) {
	table := newTable(w, tw.AlignLeft)
	table.Header("ID", "WEEK", "DATE", "HOME", "SCORE", "AWAY")
	for _, m := range matches {
		date := ""
		if !m.Date.IsZero() {
			date = m.Date.Format("2006-01-02")
		}
		table.Append(strconv.FormatInt(m.ID, 10), strconv.Itoa(m.Week), date, m.HomeTeam, m.Score(), m.AwayTeam)
	}
	table.Render()
}

// PrintTeam writes the results summary, the attack block and the fixture list.
func PrintTeam(w io.Writer, o usecase.TeamOverview) {
	r, s := o.Results, o.Scoring
	fmt.Fprintf(w, "\n%s  |  %d played  |  %d pts (%s per match)  |  W%d D%d L%d (%s)\n\n",
		o.Team.Name, r.Played, r.Points, r.PointsPerMatch, r.Won, r.Draw, r.Lost, r.WinPct)

	attack := newTable(w, tw.AlignRight)
	attack.Header("STATISTIC", "VALUE")
	attack.Append("Goals for", strconv.Itoa(s.GoalsFor))
	attack.Append("Goals against", strconv.Itoa(s.GoalsAgainst))
	attack.Append("Clean sheets", strconv.Itoa(s.CleanSheets))
	attack.Append("Failed to score", strconv.Itoa(s.FailedToScore))
	attack.Append("Shots", strconv.Itoa(s.Shots))
	attack.Append("Shot accuracy", s.ShotAccuracy)
	attack.Append("xG", cell(s.XG))
	attack.Append("Pass accuracy", o.Passing.PassAccuracy)
	attack.Append("Possession", o.Passing.AveragePossession)
	attack.Render()

	fmt.Fprintln(w)
	fixtures := newTable(w, tw.AlignLeft)
	fixtures.Header("WEEK", "RESULT", "HOME", "SCORE", "AWAY")
	for _, m := range o.Matches {
		fixtures.Append(strconv.Itoa(m.Week), m.Result, m.HomeTeam, m.Score, m.AwayTeam)
	}
	fixtures.Render()
}
