package playerstats

import (
	"github.com/riskibarqy/laliga-insights/internal/domain/pitch"
	"github.com/riskibarqy/laliga-insights/internal/domain/statvalue"
)

// SeasonStats holds a player's raw season counters and the minutes they are normalized by.
type SeasonStats struct {
	PlayerID           int64
	Minutes            int
	Passes             int
	CompletedPasses    int
	Dribbles           int
	SuccessfulDribbles int
	Shots              int
	Goals              int
	FoulsCommitted     int
	FoulsWon           int
	Touches            int
	Carries            int
}

// PassAccuracy renders completed over attempted passes.
func (s SeasonStats) PassAccuracy() string {
	return statvalue.Percent(s.CompletedPasses, s.Passes)
}

// DribbleSuccess renders successful over attempted dribbles.
func (s SeasonStats) DribbleSuccess() string {
	return statvalue.Percent(s.SuccessfulDribbles, s.Dribbles)
}

// Row is one line of the season table. Per90 is empty for ratios.
type Row struct {
	Statistic string
	Total     any
	Per90     any
}

// Rows renders the fixed season table.
func (s SeasonStats) Rows() []Row {
	per90 := func(v int) float64 { return statvalue.Per90(float64(v), s.Minutes) }
	return []Row{
		{"Passes", s.Passes, per90(s.Passes)},
		{"Pass accuracy", s.PassAccuracy(), ""},
		{"Dribbles", statvalue.Fraction(s.SuccessfulDribbles, s.Dribbles),
			statvalue.Decimal2(per90(s.SuccessfulDribbles)) + "/" + statvalue.Decimal2(per90(s.Dribbles))},
		{"Dribble success", s.DribbleSuccess(), ""},
		{"Shots", s.Shots, per90(s.Shots)},
		{"Goals", s.Goals, per90(s.Goals)},
		{"Fouls committed", s.FoulsCommitted, per90(s.FoulsCommitted)},
		{"Fouls received", s.FoulsWon, per90(s.FoulsWon)},
		{"Ball touches", s.Touches, per90(s.Touches)},
		{"Carries", s.Carries, per90(s.Carries)},
	}
}

// Shot categories used by shot maps.
const (
	CategoryGoal      = "Goal"
	CategoryOnTarget  = "On Target"
	CategoryOffTarget = "Off Target"
)

// PositionCount is how often a player started in one position.
type PositionCount struct {
	Position string
	Count    int
	Spot     pitch.Point
}

// Appearances splits a player's matches into starts and substitute entries.
type Appearances struct {
	Starts int
	SubIns int
	Total  int
}

// Profile is the identity card shown on a player page.
type Profile struct {
	PlayerID     int64
	Name         string
	FullName     string
	Nickname     string
	Team         string
	JerseyNumber int
	Country      string
}
