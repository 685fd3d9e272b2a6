package teamstats

import (
	"testing"

	"github.com/riskibarqy/laliga-insights/internal/domain/event"
	"github.com/riskibarqy/laliga-insights/internal/domain/lineup"
	"github.com/riskibarqy/laliga-insights/internal/domain/match"
)

var seasonMatches = []match.Match{
	{ID: 3, Week: 3, HomeTeam: "Eibar", AwayTeam: "Getafe", HomeScore: 0, AwayScore: 0},
	{ID: 1, Week: 1, HomeTeam: "Eibar", AwayTeam: "Granada", HomeScore: 2, AwayScore: 0},
	{ID: 2, Week: 2, HomeTeam: "Sevilla", AwayTeam: "Eibar", HomeScore: 3, AwayScore: 1},
	{ID: 4, Week: 2, HomeTeam: "Getafe", AwayTeam: "Granada", HomeScore: 1, AwayScore: 1},
}

func TestResultsFor(t *testing.T) {
	t.Parallel()

	got := ResultsFor("Eibar", seasonMatches)
	want := Results{Played: 3, Points: 4, Won: 1, Draw: 1, Lost: 1, WinPct: "33.3%", PointsPerMatch: "1.33"}
	if got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}

	empty := ResultsFor("Barcelona", seasonMatches)
	if empty.WinPct != "0.0%" || empty.PointsPerMatch != "0.00" {
		t.Fatalf("unexpected zero-guarded results: %+v", empty)
	}
}

func TestScoringFor(t *testing.T) {
	t.Parallel()

	events := []event.Event{
		{Type: event.TypeShot, Team: "Eibar", Shot: &event.Shot{Outcome: event.ShotOutcomeGoal, XG: 0.4}},
		{Type: event.TypeShot, Team: "Eibar", Shot: &event.Shot{Outcome: "Blocked", XG: 0.1}},
		{Type: event.TypePass, Team: "Eibar", Pass: &event.Pass{}},
		{Type: event.TypePass, Team: "Sevilla", Pass: &event.Pass{}},
		{Type: event.TypePass, Team: "Sevilla", Pass: &event.Pass{Outcome: "Out"}},
		{Type: event.TypeCarry, Team: "Sevilla"},
	}

	got := ScoringFor("Eibar", seasonMatches, events)
	if got.GoalsFor != 3 || got.GoalsAgainst != 3 || got.GoalDifference != 0 {
		t.Fatalf("unexpected goals: %+v", got)
	}
	if got.CleanSheets != 2 || got.FailedToScore != 1 {
		t.Fatalf("unexpected clean sheets / failed to score: %+v", got)
	}
	if got.Shots != 2 || got.ShotsOnTarget != 1 || got.ShotAccuracy != "50.0%" || got.XG != 0.5 {
		t.Fatalf("unexpected shooting: %+v", got)
	}
	if got.PassesAttempted != 1 || got.PassAccuracy != "100.0%" || got.AveragePossession != "25.0%" {
		t.Fatalf("unexpected passing: %+v", got)
	}
}

func TestScoringForTeamWithoutShots(t *testing.T) {
	t.Parallel()

	got := ScoringFor("Granada", seasonMatches, nil)
	if got.ShotAccuracy != "0.0%" || got.XG != 0 || got.PassAccuracy != "0.0%" || got.AveragePossession != "0.0%" {
		t.Fatalf("expected zero-guarded stats: %+v", got)
	}
}

func TestMatchList(t *testing.T) {
	t.Parallel()

	got := MatchList("Eibar", seasonMatches)
	if len(got) != 3 {
		t.Fatalf("unexpected match count: %d", len(got))
	}
	if got[0].Week != 1 || got[0].Result != "W" || got[0].Score != "2 : 0" {
		t.Fatalf("unexpected first row: %+v", got[0])
	}
	if got[1].Result != "L" || got[2].Result != "D" {
		t.Fatalf("unexpected results: %+v", got)
	}
}

func TestSquad(t *testing.T) {
	t.Parallel()

	lineups := []lineup.Entry{
		{MatchID: 1, PlayerID: 7, PlayerName: "Borja", Team: "Eibar", JerseyNumber: 7},
		{MatchID: 1, PlayerID: 1, PlayerName: "Riesgo", Team: "Eibar", JerseyNumber: 1},
		{MatchID: 2, PlayerID: 7, PlayerName: "Borja", Team: "Eibar", JerseyNumber: 7},
		{MatchID: 2, PlayerID: 9, PlayerName: "Other", Team: "Sevilla", JerseyNumber: 9},
	}

	got := Squad("Eibar", lineups)
	if len(got) != 2 || got[0].JerseyNumber != 1 || got[1].Name != "Borja" {
		t.Fatalf("unexpected squad: %+v", got)
	}
}
