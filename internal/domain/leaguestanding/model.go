package leaguestanding

// Standing represents a league table row for one team.
type Standing struct {
	Position         int
	Team             string
	TeamID           int
	Points           int
	GoalDifference   int
	Played           int
	Won              int
	Draw             int
	Lost             int
	GoalsFor         int
	GoalsAgainst     int
	HomeGoalsFor     int
	AwayGoalsFor     int
	HomeGoalsAgainst int
	AwayGoalsAgainst int
	Form             string
}

// Columns is the fixed header of the rendered table.
var Columns = []string{"#", "Team", "PTS", "DIFF", "W", "D", "L", "G", "GC", "Home G", "Away G", "H. GC", "A. GC"}

// RacePoint is a team's cumulative points after one match week.
type RacePoint struct {
	Week   int
	Points int
}

// RaceLine is the cumulative points curve of one team.
type RaceLine struct {
	Team   string
	TeamID int
	Points []RacePoint
}
