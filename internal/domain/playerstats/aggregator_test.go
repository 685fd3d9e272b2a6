package playerstats

import (
	"testing"

	"github.com/riskibarqy/laliga-insights/internal/domain/event"
	"github.com/riskibarqy/laliga-insights/internal/domain/lineup"
	"github.com/riskibarqy/laliga-insights/internal/domain/pitch"
)

const messi int64 = 5503

func seasonEvents() []event.Event {
	return []event.Event{
		{MatchID: 1, Type: event.TypePass, PlayerID: messi, Pass: &event.Pass{}},
		{MatchID: 1, Type: event.TypePass, PlayerID: messi, Pass: &event.Pass{Outcome: "Incomplete"}},
		{MatchID: 1, Type: event.TypePass, PlayerID: messi, Pass: &event.Pass{}},
		{MatchID: 1, Type: event.TypePass, PlayerID: messi, Pass: &event.Pass{}},
		{MatchID: 1, Type: event.TypeDribble, PlayerID: messi, Dribble: &event.Dribble{Outcome: event.DribbleOutcomeComplete}},
		{MatchID: 1, Type: event.TypeDribble, PlayerID: messi, Dribble: &event.Dribble{Outcome: "Incomplete"}},
		{MatchID: 1, Type: event.TypeShot, PlayerID: messi, Shot: &event.Shot{Outcome: event.ShotOutcomeGoal}},
		{MatchID: 1, Type: event.TypeShot, PlayerID: messi, Shot: &event.Shot{Outcome: "Off T"}},
		{MatchID: 1, Type: event.TypeFoulWon, PlayerID: messi},
		{MatchID: 1, Type: event.TypeFoulCommitted, PlayerID: messi},
		{MatchID: 1, Type: event.TypeCarry, PlayerID: messi},
		{MatchID: 1, Type: event.TypeBallReceipt, PlayerID: messi},
		{MatchID: 1, Type: event.TypePass, PlayerID: 99, Pass: &event.Pass{RecipientID: messi}},
	}
}

func TestSeason(t *testing.T) {
	t.Parallel()

	stats := Season(messi, seasonEvents(), 180)
	if stats.Passes != 4 || stats.CompletedPasses != 3 {
		t.Fatalf("unexpected passes: %+v", stats)
	}
	if stats.Dribbles != 2 || stats.SuccessfulDribbles != 1 {
		t.Fatalf("unexpected dribbles: %+v", stats)
	}
	if stats.Shots != 2 || stats.Goals != 1 {
		t.Fatalf("unexpected shots: %+v", stats)
	}
	// 4 passes, 2 dribbles, 2 shots, 1 foul won and 1 carry.
	if stats.Touches != 10 {
		t.Fatalf("unexpected touches: %d", stats.Touches)
	}
	if stats.PassAccuracy() != "75.0%" || stats.DribbleSuccess() != "50.0%" {
		t.Fatalf("unexpected ratios: %s %s", stats.PassAccuracy(), stats.DribbleSuccess())
	}

	rows := stats.Rows()
	if rows[0].Statistic != "Passes" || rows[0].Per90 != 2.0 {
		t.Fatalf("unexpected passes row: %+v", rows[0])
	}
	if rows[2].Total != "1/2" || rows[2].Per90 != "0.50/1.00" {
		t.Fatalf("unexpected dribbles row: %+v", rows[2])
	}
}

func TestSeasonWithoutMinutes(t *testing.T) {
	t.Parallel()

	stats := Season(messi, seasonEvents(), 0)
	for _, row := range stats.Rows() {
		if v, ok := row.Per90.(float64); ok && v != 0 {
			t.Fatalf("expected zero per-90 for %s, got %v", row.Statistic, v)
		}
	}

	empty := Season(messi, nil, 0)
	if empty.PassAccuracy() != "0.0%" {
		t.Fatalf("unexpected accuracy: %s", empty.PassAccuracy())
	}
}

func TestShotCategory(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Goal":             CategoryGoal,
		"Saved":            CategoryOnTarget,
		"Saved to Post":    CategoryOnTarget,
		"Saved Off Target": CategoryOnTarget,
		"Blocked":          CategoryOffTarget,
		"":                 CategoryOffTarget,
	}
	for outcome, want := range cases {
		if got := ShotCategory(outcome); got != want {
			t.Fatalf("ShotCategory(%q) = %q, want %q", outcome, got, want)
		}
	}
}

func xi(matchID int64, position string, ids ...int64) event.Event {
	slots := make([]event.LineupSlot, 0, len(ids))
	for _, id := range ids {
		slots = append(slots, event.LineupSlot{PlayerID: id, Position: position})
	}
	return event.Event{MatchID: matchID, Type: event.TypeStartingXI, Tactics: &event.Tactics{Lineup: slots}}
}

func TestPositionsAndAppearances(t *testing.T) {
	t.Parallel()

	startingXI := []event.Event{
		xi(1, "Center Forward", messi),
		xi(2, "Right Wing", messi),
		xi(3, "Right Wing", messi),
		xi(4, "Right Wing", 7),
		xi(5, "Libero", messi),
	}
	positions := Positions(messi, startingXI)
	if len(positions) != 3 {
		t.Fatalf("unexpected positions: %+v", positions)
	}
	if positions[0].Position != "Right Wing" || positions[0].Count != 2 {
		t.Fatalf("expected right wing first, got %+v", positions[0])
	}
	if positions[0].Spot != (pitch.Point{X: 100, Y: 15}) {
		t.Fatalf("unexpected spot: %+v", positions[0].Spot)
	}
	if positions[2].Spot != (pitch.Point{X: 20, Y: 70}) {
		t.Fatalf("unknown position should use the default spot, got %+v", positions[2].Spot)
	}

	subs := []event.Event{
		{MatchID: 4, Type: event.TypeSubstitution, PlayerID: 7, Substitution: &event.Substitution{ReplacementID: messi}},
		{MatchID: 6, Type: event.TypeSubstitution, PlayerID: messi, Substitution: &event.Substitution{ReplacementID: 8}},
	}
	got := CountAppearances(messi, startingXI, subs)
	if got != (Appearances{Starts: 4, SubIns: 1, Total: 5}) {
		t.Fatalf("unexpected appearances: %+v", got)
	}
}

func TestProfileOf(t *testing.T) {
	t.Parallel()

	lineups := []lineup.Entry{
		{PlayerID: 1, PlayerName: "Someone Else"},
		{PlayerID: messi, PlayerName: "Lionel Andrés Messi Cuccittini", Nickname: "Lionel Messi", Team: "Barcelona", JerseyNumber: 10, Country: "Argentina"},
	}
	profile, ok := ProfileOf(messi, lineups)
	if !ok {
		t.Fatal("expected profile")
	}
	if profile.Name != "Lionel Messi" || profile.FullName != "Lionel Andrés Messi Cuccittini" || profile.JerseyNumber != 10 {
		t.Fatalf("unexpected profile: %+v", profile)
	}
	if _, ok := ProfileOf(42, lineups); ok {
		t.Fatal("expected no profile for unknown player")
	}
}
