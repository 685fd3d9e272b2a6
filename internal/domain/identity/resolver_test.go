package identity

import (
	"errors"
	"reflect"
	"testing"

	"github.com/riskibarqy/laliga-insights/internal/domain/event"
	"github.com/riskibarqy/laliga-insights/internal/domain/lineup"
)

func fixtureInput() Input {
	lineups := []lineup.Entry{
		{MatchID: 1, PlayerID: 5503, PlayerName: "Lionel Andrés Messi Cuccittini", Nickname: "Lionel Messi", Team: "Barcelona",
			Cards: []lineup.Card{{PlayerName: "Lionel Andrés Messi Cuccittini", Type: lineup.CardYellow, Time: "12:30"}}},
		{MatchID: 1, PlayerID: 6374, PlayerName: "Neymar da Silva Santos Junior", Nickname: "Neymar", Team: "Barcelona"},
		{MatchID: 1, PlayerID: 5211, PlayerName: "Jordi Alba Ramos", Team: "Barcelona"},
	}
	events := []event.Event{
		{ID: "p1", MatchID: 1, Type: event.TypePass, Player: "Jordi Alba Ramos", PlayerID: 5211,
			Pass: &event.Pass{Recipient: "Lionel Andrés Messi Cuccittini", RecipientID: 5503}},
		{ID: "s1", MatchID: 1, Type: event.TypeShot, Player: "Lionel Andrés Messi Cuccittini", PlayerID: 5503,
			Shot: &event.Shot{Outcome: event.ShotOutcomeGoal, KeyPassID: "p1"}},
		{ID: "sub", MatchID: 1, Type: event.TypeSubstitution, Player: "Jordi Alba Ramos", PlayerID: 5211,
			Substitution: &event.Substitution{Replacement: "Neymar da Silva Santos Junior"}},
	}
	startingXI := []event.Event{
		{ID: "xi", MatchID: 1, Type: event.TypeStartingXI, Team: "Barcelona", Tactics: &event.Tactics{
			Formation: 433,
			Lineup: []event.LineupSlot{
				{PlayerID: 5503, Player: "Lionel Andrés Messi Cuccittini", Position: "Right Wing"},
				{PlayerID: 5211, Player: "Jordi Alba Ramos", Position: "Left Back"},
			},
		}},
	}
	return Input{Lineups: lineups, Events: events, StartingXI: startingXI}
}

func TestResolveRewritesEveryNameField(t *testing.T) {
	t.Parallel()

	out, err := Resolve(fixtureInput())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}

	if out.Lineups[0].PlayerName != "Lionel Messi" || out.Lineups[0].Cards[0].PlayerName != "Lionel Messi" {
		t.Fatalf("unexpected lineup resolution: %+v", out.Lineups[0])
	}
	if out.Lineups[2].PlayerName != "Jordi Alba Ramos" {
		t.Fatalf("player without nickname must keep full name, got %q", out.Lineups[2].PlayerName)
	}
	if out.Events[1].Player != "Lionel Messi" {
		t.Fatalf("unexpected shot player: %q", out.Events[1].Player)
	}
	if out.Events[0].Pass.Recipient != "Lionel Messi" {
		t.Fatalf("unexpected pass recipient: %q", out.Events[0].Pass.Recipient)
	}
	if out.Events[2].Substitution.Replacement != "Neymar" {
		t.Fatalf("unexpected substitution replacement: %q", out.Events[2].Substitution.Replacement)
	}
	if out.StartingXI[0].Tactics.Lineup[0].Player != "Lionel Messi" {
		t.Fatalf("unexpected starting xi name: %q", out.StartingXI[0].Tactics.Lineup[0].Player)
	}
}

func TestResolveDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	in := fixtureInput()
	if _, err := Resolve(in); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if in.Lineups[0].PlayerName != "Lionel Andrés Messi Cuccittini" {
		t.Fatalf("input lineup mutated: %q", in.Lineups[0].PlayerName)
	}
	if in.Lineups[0].Cards[0].PlayerName != "Lionel Andrés Messi Cuccittini" {
		t.Fatalf("input card mutated")
	}
	if in.Events[1].Player != "Lionel Andrés Messi Cuccittini" {
		t.Fatalf("input event mutated")
	}
	if in.StartingXI[0].Tactics.Lineup[0].Player != "Lionel Andrés Messi Cuccittini" {
		t.Fatalf("input starting xi mutated")
	}
}

func TestResolveIsIdempotent(t *testing.T) {
	t.Parallel()

	once, err := Resolve(fixtureInput())
	if err != nil {
		t.Fatalf("first resolve: %v", err)
	}
	twice, err := Resolve(Input{Lineups: once.Lineups, Events: once.Events, StartingXI: once.StartingXI})
	if err != nil {
		t.Fatalf("second resolve: %v", err)
	}

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("resolution is not idempotent:\nonce=%+v\ntwice=%+v", once, twice)
	}
}

func TestResolveRequiresInput(t *testing.T) {
	t.Parallel()

	if _, err := Resolve(Input{}); !errors.Is(err, ErrNoInput) {
		t.Fatalf("expected ErrNoInput, got %v", err)
	}

	out, err := Resolve(Input{Events: []event.Event{{ID: "e", Player: "Someone", PlayerID: 1}}})
	if err != nil {
		t.Fatalf("events only: %v", err)
	}
	if out.Events[0].Player != "Someone" || out.Lineups != nil {
		t.Fatalf("unexpected events-only output: %+v", out)
	}
}
