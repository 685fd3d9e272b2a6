package match

import (
	"fmt"
	"time"
)

// Outcome is a match result from one team's perspective.
type Outcome string

const (
	OutcomeWin  Outcome = "W"
	OutcomeDraw Outcome = "D"
	OutcomeLoss Outcome = "L"
)

// Points awarded per outcome.
func (o Outcome) Points() int {
	switch o {
	case OutcomeWin:
		return 3
	case OutcomeDraw:
		return 1
	default:
		return 0
	}
}

// Match is one played fixture of the season.
type Match struct {
	ID        int64
	Week      int
	Date      time.Time
	KickOff   string
	HomeTeam  string
	AwayTeam  string
	HomeScore int
	AwayScore int
	Stadium   string
	Referee   string
}

// Involves reports whether the team played in the match.
func (m Match) Involves(team string) bool {
	return team != "" && (m.HomeTeam == team || m.AwayTeam == team)
}

// IsHome reports whether the team was the home side.
func (m Match) IsHome(team string) bool {
	return team != "" && m.HomeTeam == team
}

// Opponent returns the other side, or "" when the team did not play.
func (m Match) Opponent(team string) string {
	switch team {
	case m.HomeTeam:
		return m.AwayTeam
	case m.AwayTeam:
		return m.HomeTeam
	default:
		return ""
	}
}

func (m Match) GoalsFor(team string) int {
	switch team {
	case m.HomeTeam:
		return m.HomeScore
	case m.AwayTeam:
		return m.AwayScore
	default:
		return 0
	}
}

func (m Match) GoalsAgainst(team string) int {
	switch team {
	case m.HomeTeam:
		return m.AwayScore
	case m.AwayTeam:
		return m.HomeScore
	default:
		return 0
	}
}

// Result classifies the match from the team's perspective.
func (m Match) Result(team string) Outcome {
	gf, ga := m.GoalsFor(team), m.GoalsAgainst(team)
	switch {
	case gf > ga:
		return OutcomeWin
	case gf == ga:
		return OutcomeDraw
	default:
		return OutcomeLoss
	}
}

// Score renders the final score as "home : away".
func (m Match) Score() string {
	return fmt.Sprintf("%d : %d", m.HomeScore, m.AwayScore)
}

func (m Match) Validate() error {
	if m.ID <= 0 {
		return fmt.Errorf("match id must be greater than zero")
	}
	if m.HomeTeam == "" || m.AwayTeam == "" {
		return fmt.Errorf("match %d: both teams are required", m.ID)
	}
	if m.HomeScore < 0 || m.AwayScore < 0 {
		return fmt.Errorf("match %d: scores must be non-negative", m.ID)
	}
	return nil
}
