package leaguestanding

import (
	"testing"

	"github.com/riskibarqy/laliga-insights/internal/domain/match"
	"github.com/riskibarqy/laliga-insights/internal/domain/team"
)

func sampleMatches() []match.Match {
	return []match.Match{
		{ID: 1, Week: 1, HomeTeam: "Barcelona", AwayTeam: "Real Madrid", HomeScore: 2, AwayScore: 1},
		{ID: 2, Week: 1, HomeTeam: "Sevilla", AwayTeam: "Valencia", HomeScore: 0, AwayScore: 0},
		{ID: 3, Week: 2, HomeTeam: "Real Madrid", AwayTeam: "Sevilla", HomeScore: 4, AwayScore: 0},
		{ID: 4, Week: 2, HomeTeam: "Valencia", AwayTeam: "Barcelona", HomeScore: 1, AwayScore: 1},
		{ID: 5, Week: 3, HomeTeam: "Barcelona", AwayTeam: "Sevilla", HomeScore: 3, AwayScore: 3},
		{ID: 6, Week: 3, HomeTeam: "Valencia", AwayTeam: "Real Madrid", HomeScore: 2, AwayScore: 0},
	}
}

func TestBuildInvariants(t *testing.T) {
	t.Parallel()

	matches := sampleMatches()
	table := Build(matches, team.LaLiga2015())

	if len(table) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(table))
	}

	played := 0
	seen := make(map[string]bool)
	for i, row := range table {
		if seen[row.Team] {
			t.Fatalf("team %s appears twice", row.Team)
		}
		seen[row.Team] = true
		played += row.Played

		if row.Won+row.Draw+row.Lost != row.Played {
			t.Fatalf("%s: W+D+L != played: %+v", row.Team, row)
		}
		if row.Points != 3*row.Won+row.Draw {
			t.Fatalf("%s: points mismatch: %+v", row.Team, row)
		}
		if row.GoalDifference != row.GoalsFor-row.GoalsAgainst {
			t.Fatalf("%s: goal difference mismatch: %+v", row.Team, row)
		}
		if row.Position != i+1 {
			t.Fatalf("%s: position %d at index %d", row.Team, row.Position, i)
		}
		if i == 0 {
			continue
		}
		prev := table[i-1]
		if prev.Points < row.Points {
			t.Fatalf("points not descending at %d", i)
		}
		if prev.Points == row.Points && prev.GoalDifference < row.GoalDifference {
			t.Fatalf("goal difference not descending at %d", i)
		}
		if prev.Points == row.Points && prev.GoalDifference == row.GoalDifference && prev.GoalsFor < row.GoalsFor {
			t.Fatalf("goals for not descending at %d", i)
		}
	}
	if played != 2*len(matches) {
		t.Fatalf("sum of played=%d want %d", played, 2*len(matches))
	}
}

func TestBuildRowsAndSplits(t *testing.T) {
	t.Parallel()

	table := Build(sampleMatches(), team.LaLiga2015())

	// Valencia and Barcelona both on 5 points; Valencia ahead on goal difference.
	wantOrder := []string{"Valencia", "Barcelona", "Real Madrid", "Sevilla"}
	for i, name := range wantOrder {
		if table[i].Team != name {
			t.Fatalf("position %d: got %s want %s (%+v)", i+1, table[i].Team, name, table)
		}
	}

	barca := table[1]
	if barca.TeamID != 20 {
		t.Fatalf("unexpected Barcelona id: %d", barca.TeamID)
	}
	if barca.HomeGoalsFor != 5 || barca.AwayGoalsFor != 1 || barca.HomeGoalsAgainst != 4 || barca.AwayGoalsAgainst != 1 {
		t.Fatalf("unexpected Barcelona splits: %+v", barca)
	}
	if barca.Form != "WDD" {
		t.Fatalf("unexpected Barcelona form: %q", barca.Form)
	}
}

func TestBuildTiesKeepFirstAppearanceOrder(t *testing.T) {
	t.Parallel()

	matches := []match.Match{
		{ID: 1, Week: 1, HomeTeam: "A", AwayTeam: "B", HomeScore: 1, AwayScore: 1},
		{ID: 2, Week: 1, HomeTeam: "C", AwayTeam: "D", HomeScore: 1, AwayScore: 1},
	}

	table := Build(matches, nil)
	for i, name := range []string{"A", "B", "C", "D"} {
		if table[i].Team != name {
			t.Fatalf("tie order broken at %d: %+v", i, table)
		}
		if table[i].TeamID != 0 {
			t.Fatalf("expected zero team id without registry")
		}
	}
}

func TestBuildEmpty(t *testing.T) {
	t.Parallel()

	if got := Build(nil, nil); len(got) != 0 {
		t.Fatalf("expected empty table, got %+v", got)
	}
}

func TestTitleRace(t *testing.T) {
	t.Parallel()

	race := TitleRace(sampleMatches(), team.LaLiga2015())
	if len(race) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(race))
	}
	if race[0].Team != "Valencia" {
		t.Fatalf("expected leader first, got %s", race[0].Team)
	}

	barca := race[1]
	want := []RacePoint{{Week: 1, Points: 3}, {Week: 2, Points: 4}, {Week: 3, Points: 5}}
	if len(barca.Points) != len(want) {
		t.Fatalf("unexpected Barcelona race: %+v", barca.Points)
	}
	for i := range want {
		if barca.Points[i] != want[i] {
			t.Fatalf("week %d: got %+v want %+v", i+1, barca.Points[i], want[i])
		}
	}
}
