package lineup

import "testing"

func TestCardMinute(t *testing.T) {
	t.Parallel()

	cases := map[string]int{
		"34:12": 34,
		"00:59": 0,
		"90:01": 90,
		"":      0,
		"xx:10": 0,
		"-3:00": 0,
		"7":     7,
	}
	for in, want := range cases {
		if got := (Card{Time: in}).Minute(); got != want {
			t.Fatalf("Minute(%q)=%d want %d", in, got, want)
		}
	}
}

func TestCardTally(t *testing.T) {
	t.Parallel()

	if !CardSecondYellow.CountsAsYellow() || !CardSecondYellow.CountsAsRed() {
		t.Fatalf("second yellow must count for both tallies")
	}
	if CardYellow.CountsAsRed() || CardRed.CountsAsYellow() {
		t.Fatalf("straight cards must count for one tally only")
	}
}

func TestEntryDisplayNameAndClone(t *testing.T) {
	t.Parallel()

	e := Entry{PlayerName: "Lionel Andrés Messi Cuccittini", Nickname: "Lionel Messi", Cards: []Card{{Type: CardYellow}}}
	if e.DisplayName() != "Lionel Messi" {
		t.Fatalf("unexpected display name: %q", e.DisplayName())
	}
	if (Entry{PlayerName: "Full"}).DisplayName() != "Full" {
		t.Fatalf("expected fallback to full name")
	}

	cp := e.Clone()
	cp.Cards[0].Type = CardRed
	if e.Cards[0].Type != CardYellow {
		t.Fatalf("clone shares card slice")
	}
}
