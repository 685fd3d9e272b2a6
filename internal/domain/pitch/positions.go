package pitch

// DefaultSpot is used for positions missing from the table.
var DefaultSpot = Point{X: 10, Y: 10}

var positionSpots = map[string]Point{
	"Goalkeeper": {X: 8, Y: 40},

	"Left Back":         {X: 20, Y: 20},
	"Left Center Back":  {X: 20, Y: 30},
	"Center Back":       {X: 20, Y: 40},
	"Right Center Back": {X: 20, Y: 50},
	"Right Back":        {X: 20, Y: 60},

	"Left Wing Back":  {X: 26, Y: 15},
	"Right Wing Back": {X: 26, Y: 65},

	"Left Defensive Midfield":   {X: 30, Y: 27},
	"Center Defensive Midfield": {X: 30, Y: 40},
	"Right Defensive Midfield":  {X: 30, Y: 53},

	"Left Center Midfield":  {X: 38, Y: 27},
	"Center Midfield":       {X: 38, Y: 40},
	"Right Center Midfield": {X: 38, Y: 53},

	"Left Midfield":  {X: 42, Y: 20},
	"Right Midfield": {X: 42, Y: 60},

	"Left Attacking Midfield":   {X: 46, Y: 27},
	"Center Attacking Midfield": {X: 46, Y: 40},
	"Right Attacking Midfield":  {X: 46, Y: 53},

	"Left Wing":  {X: 50, Y: 15},
	"Right Wing": {X: 50, Y: 65},

	"Second Striker":       {X: 49, Y: 40},
	"Left Center Forward":  {X: 52, Y: 30},
	"Right Center Forward": {X: 52, Y: 50},
	"Center Forward":       {X: 53, Y: 40},
	"Striker":              {X: 55, Y: 40},
}

// Position returns the display spot of a StatsBomb position name.
func Position(name string) (Point, bool) {
	p, ok := positionSpots[name]
	return p, ok
}

// Spot returns the display spot of a position for one side of the pitch.
// The away side is mirrored into the opposite half.
func Spot(position string, home bool) Point {
	p, ok := positionSpots[position]
	if !ok {
		p = DefaultSpot
	}
	if home {
		return p
	}
	return p.Mirror()
}
