package spatial

import (
	"math"
	"testing"

	"github.com/riskibarqy/laliga-insights/internal/domain/pitch"
)

func TestBin(t *testing.T) {
	t.Parallel()

	cases := []struct {
		point    pitch.Point
		row, col int
		ok       bool
	}{
		{pitch.Point{X: 60, Y: 40}, 20, 30, true},
		{pitch.Point{X: 0, Y: 80}, 0, 0, true},
		{pitch.Point{X: 119.9, Y: 0.1}, 39, 59, true},
		{pitch.Point{X: 120, Y: 40}, 0, 0, false},
		{pitch.Point{X: 60, Y: 0}, 0, 0, false},
		{pitch.Point{X: -0.5, Y: 40}, 0, 0, false},
		{pitch.Point{X: 60, Y: 81}, 0, 0, false},
		{pitch.Point{X: math.NaN(), Y: 40}, 0, 0, false},
	}
	for _, tc := range cases {
		row, col, ok := Bin(tc.point)
		if ok != tc.ok || (ok && (row != tc.row || col != tc.col)) {
			t.Fatalf("Bin(%+v) = (%d, %d, %v), want (%d, %d, %v)", tc.point, row, col, ok, tc.row, tc.col, tc.ok)
		}
	}
}

func TestHeatmapEmpty(t *testing.T) {
	t.Parallel()

	g := Heatmap(nil)
	if g.Max() != 0 {
		t.Fatalf("expected all-zero grid, max=%v", g.Max())
	}

	g = Heatmap([]pitch.Point{{X: 130, Y: 40}, {X: 60, Y: -3}})
	if g.Max() != 0 {
		t.Fatalf("expected out-of-bounds points to be dropped, max=%v", g.Max())
	}
}

func TestHeatmapSinglePoint(t *testing.T) {
	t.Parallel()

	g := Heatmap([]pitch.Point{{X: 60, Y: 40}})

	kernel := gaussianKernel(Sigma)
	if len(kernel) != 11 {
		t.Fatalf("expected radius 5 kernel, got %d taps", len(kernel))
	}
	center := kernel[5] * kernel[5]
	if math.Abs(g[20][30]-center) > 1e-12 {
		t.Fatalf("unexpected peak %v, want %v", g[20][30], center)
	}
	if g.Max() != g[20][30] {
		t.Fatalf("peak should stay on the occupied cell")
	}
	if math.Abs(g[20][29]-g[20][31]) > 1e-12 || math.Abs(g[19][30]-g[21][30]) > 1e-12 {
		t.Fatal("expected a symmetric blob")
	}

	sum := 0.0
	for r := range g {
		for c := range g[r] {
			if g[r][c] < 0 || g[r][c] > 1 {
				t.Fatalf("cell [%d][%d] out of range: %v", r, c, g[r][c])
			}
			sum += g[r][c]
		}
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Fatalf("expected mass to be preserved away from the border, got %v", sum)
	}
}

func TestHeatmapCornerReflects(t *testing.T) {
	t.Parallel()

	g := Heatmap([]pitch.Point{{X: 0, Y: 80}})

	sum := 0.0
	for r := range g {
		for c := range g[r] {
			sum += g[r][c]
		}
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Fatalf("reflect mode should keep mass at the corner, got %v", sum)
	}
	if g[0][0] != g.Max() {
		t.Fatal("expected the corner cell to stay the hottest")
	}
}

func TestReflect(t *testing.T) {
	t.Parallel()

	cases := map[int]int{-1: 0, -2: 1, 0: 0, 4: 4, 5: 4, 6: 3}
	for in, want := range cases {
		if got := reflect(in, 5); got != want {
			t.Fatalf("reflect(%d) = %d, want %d", in, got, want)
		}
	}
}
