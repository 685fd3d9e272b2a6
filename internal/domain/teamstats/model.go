package teamstats

import "time"

// Results summarizes a team's season results.
type Results struct {
	Played         int
	Points         int
	Won            int
	Draw           int
	Lost           int
	WinPct         string
	PointsPerMatch string
}

// Scoring combines score-sheet goals with shot and pass events.
type Scoring struct {
	GoalsFor          int
	GoalsAgainst      int
	GoalDifference    int
	CleanSheets       int
	FailedToScore     int
	Shots             int
	ShotsOnTarget     int
	ShotAccuracy      string
	XG                float64
	PassesAttempted   int
	PassesCompleted   int
	PassAccuracy      string
	AveragePossession string
}

// Passing is the passing and possession block of a team page.
type Passing struct {
	PassesAttempted   int
	PassesCompleted   int
	PassAccuracy      string
	AveragePossession string
}

// MatchRow is one entry of a team's fixture list.
type MatchRow struct {
	MatchID  int64
	Week     int
	Date     time.Time
	Result   string
	HomeTeam string
	Score    string
	AwayTeam string
}

// SquadRow is one registered player of a team.
type SquadRow struct {
	PlayerID     int64
	Name         string
	JerseyNumber int
	Country      string
}
