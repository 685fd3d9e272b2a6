package playingtime

import (
	"testing"

	"github.com/riskibarqy/laliga-insights/internal/domain/event"
)

const player int64 = 5503

func startingXI(matchID int64, ids ...int64) event.Event {
	slots := make([]event.LineupSlot, 0, len(ids))
	for _, id := range ids {
		slots = append(slots, event.LineupSlot{PlayerID: id})
	}
	return event.Event{MatchID: matchID, Type: event.TypeStartingXI, Tactics: &event.Tactics{Lineup: slots}}
}

func sub(matchID int64, minute int, out, in int64) event.Event {
	return event.Event{MatchID: matchID, Type: event.TypeSubstitution, Minute: minute, PlayerID: out,
		Substitution: &event.Substitution{ReplacementID: in}}
}

func TestPerMatch(t *testing.T) {
	t.Parallel()

	events := []event.Event{
		{MatchID: 1, Type: event.TypePass, PlayerID: player},
		{MatchID: 2, Type: event.TypePass, PlayerID: player},
		sub(2, 70, player, 9),
		sub(3, 60, 8, player),
		{MatchID: 4, Type: event.TypePass, Pass: &event.Pass{RecipientID: player}},
	}
	xi := []event.Event{
		startingXI(1, player, 2, 3),
		startingXI(2, 3, player),
		startingXI(3, 2, 3),
		startingXI(4, 2, 3),
		startingXI(5, player),
	}

	got := PerMatch(player, events, xi)
	want := []MatchMinutes{
		{MatchID: 1, Started: true, Minutes: 90},
		{MatchID: 2, Started: true, SubbedOut: true, Minutes: 70},
		{MatchID: 3, SubbedIn: true, Minutes: 30},
		{MatchID: 4, Minutes: 0},
		{MatchID: 5, Started: true, Minutes: 90},
	}
	if len(got) != len(want) {
		t.Fatalf("got %+v want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("match %d: got %+v want %+v", want[i].MatchID, got[i], want[i])
		}
	}

	if total := Total(player, events, xi); total != 280 {
		t.Fatalf("unexpected total: %d", total)
	}
}

func TestTotalUnusedPlayer(t *testing.T) {
	t.Parallel()

	xi := []event.Event{startingXI(1, 2, 3)}
	if got := Total(player, nil, xi); got != 0 {
		t.Fatalf("expected 0 minutes, got %d", got)
	}
	if got := Total(0, []event.Event{{MatchID: 1}}, xi); got != 0 {
		t.Fatalf("expected 0 minutes for zero id, got %d", got)
	}
}

func TestLateSubstituteNeverNegative(t *testing.T) {
	t.Parallel()

	events := []event.Event{sub(1, 93, 8, player)}
	if got := Total(player, events, nil); got != 0 {
		t.Fatalf("expected 0 minutes for a stoppage-time substitute, got %d", got)
	}
}
