package statvalue

import (
	"regexp"
	"testing"
)

var percentPattern = regexp.MustCompile(`^\d{1,3}\.\d%$`)

func TestPercent(t *testing.T) {
	t.Parallel()

	cases := []struct {
		num, den int
		want     string
	}{
		{0, 0, "0.0%"},
		{5, 0, "0.0%"},
		{0, 10, "0.0%"},
		{1, 3, "33.3%"},
		{2, 3, "66.7%"},
		{10, 10, "100.0%"},
		{12, 10, "100.0%"},
	}
	for _, tc := range cases {
		got := Percent(tc.num, tc.den)
		if got != tc.want {
			t.Fatalf("Percent(%d,%d)=%q want %q", tc.num, tc.den, got, tc.want)
		}
		if !percentPattern.MatchString(got) {
			t.Fatalf("Percent(%d,%d)=%q is not well formed", tc.num, tc.den, got)
		}
	}
}

func TestPer90(t *testing.T) {
	t.Parallel()

	if got := Per90(3, 0); got != 0 {
		t.Fatalf("expected 0 for zero minutes, got %v", got)
	}
	if got := Per90(3, 180); got != 1.5 {
		t.Fatalf("unexpected per90: %v", got)
	}
	if got := Per90(1, 270); got != 0.33 {
		t.Fatalf("unexpected rounded per90: %v", got)
	}
}

func TestFormatting(t *testing.T) {
	t.Parallel()

	if Fraction(3, 5) != "3/5" {
		t.Fatalf("unexpected fraction")
	}
	if Decimal2(2.0) != "2.00" {
		t.Fatalf("unexpected decimal")
	}
	if Round2(1.234) != 1.23 || Round2(1.236) != 1.24 {
		t.Fatalf("unexpected rounding")
	}
	if Ratio(1, 0) != 0 || Ratio(1, 4) != 0.25 {
		t.Fatalf("unexpected ratio")
	}
	if got := PercentOf(45.26); got != "45.3%" {
		t.Fatalf("unexpected percent: %q", got)
	}
}
