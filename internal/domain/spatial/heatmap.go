// Package spatial turns located events into pitch-shaped aggregates: heatmap
// grids, pass networks, shot maps and formation spots. All outputs use display
// orientation, where y is measured from the bottom touchline (80 - y).
package spatial

import (
	"math"

	"github.com/riskibarqy/laliga-insights/internal/domain/pitch"
)

// Heatmap grid geometry: 2x2 pitch-unit cells.
const (
	Rows  = 40
	Cols  = 60
	Sigma = 1.2

	truncate = 4.0
)

// Grid is a Rows x Cols occupancy map indexed [row][col]; row 0 is the bottom touchline.
type Grid [Rows][Cols]float64

// Max returns the largest cell value.
func (g *Grid) Max() float64 {
	peak := 0.0
	for r := range g {
		for c := range g[r] {
			if g[r][c] > peak {
				peak = g[r][c]
			}
		}
	}
	return peak
}

// Cells returns the grid as nested slices.
func (g *Grid) Cells() [][]float64 {
	out := make([][]float64, Rows)
	for r := range g {
		out[r] = append([]float64(nil), g[r][:]...)
	}
	return out
}

// Bin maps a pitch point to its grid cell. Points outside the grid report false.
func Bin(p pitch.Point) (row, col int, ok bool) {
	if !p.InBounds() {
		return 0, 0, false
	}
	x := p.X / (pitch.Length / Cols)
	y := (pitch.Width - p.Y) / (pitch.Width / Rows)
	col, row = int(x), int(y)
	if row >= Rows || col >= Cols {
		return 0, 0, false
	}
	return row, col, true
}

// Heatmap bins the points, normalizes by the busiest cell and smooths the result.
// An empty input yields an all-zero grid.
func Heatmap(points []pitch.Point) Grid {
	var g Grid
	for _, p := range points {
		if row, col, ok := Bin(p); ok {
			g[row][col]++
		}
	}

	peak := g.Max()
	if peak == 0 {
		return g
	}
	for r := range g {
		for c := range g[r] {
			g[r][c] /= peak
		}
	}

	smooth(&g, gaussianKernel(Sigma))
	for r := range g {
		for c := range g[r] {
			g[r][c] = math.Min(1, math.Max(0, g[r][c]))
		}
	}
	return g
}

func gaussianKernel(sigma float64) []float64 {
	radius := int(truncate*sigma + 0.5)
	kernel := make([]float64, 2*radius+1)
	sum := 0.0
	for i := -radius; i <= radius; i++ {
		w := math.Exp(-0.5 * float64(i*i) / (sigma * sigma))
		kernel[i+radius] = w
		sum += w
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}

// reflect maps an out-of-range index back into [0, n) mirroring about the edges
// with the edge sample repeated (d c b a | a b c d | d c b a).
func reflect(i, n int) int {
	for i < 0 || i >= n {
		if i < 0 {
			i = -i - 1
		}
		if i >= n {
			i = 2*n - i - 1
		}
	}
	return i
}

// smooth applies a separable convolution, columns first then rows.
func smooth(g *Grid, kernel []float64) {
	radius := len(kernel) / 2

	var tmp Grid
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			acc := 0.0
			for k := -radius; k <= radius; k++ {
				acc += kernel[k+radius] * g[r][reflect(c+k, Cols)]
			}
			tmp[r][c] = acc
		}
	}
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			acc := 0.0
			for k := -radius; k <= radius; k++ {
				acc += kernel[k+radius] * tmp[reflect(r+k, Rows)][c]
			}
			g[r][c] = acc
		}
	}
}
