package pitch

import "math"

// Pitch dimensions in StatsBomb units.
const (
	Length = 120.0
	Width  = 80.0
)

// Point is a coordinate in pitch units.
type Point struct {
	X float64
	Y float64
}

// InBounds reports whether the point lies on the pitch, edges included.
func (p Point) InBounds() bool {
	if math.IsNaN(p.X) || math.IsNaN(p.Y) {
		return false
	}
	return p.X >= 0 && p.X <= Length && p.Y >= 0 && p.Y <= Width
}

// FlipY mirrors the point vertically into display orientation.
func (p Point) FlipY() Point {
	return Point{X: p.X, Y: Width - p.Y}
}

// Mirror rotates the point half a turn around the centre spot.
func (p Point) Mirror() Point {
	return Point{X: Length - p.X, Y: Width - p.Y}
}

// FromSlice converts a StatsBomb [x, y] (or [x, y, z]) array into a point.
func FromSlice(values []float64) (Point, bool) {
	if len(values) < 2 {
		return Point{}, false
	}
	return Point{X: values[0], Y: values[1]}, true
}
