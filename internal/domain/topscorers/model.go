package topscorers

// Scorer is one row of a goal-scorer table. OpenPlay excludes penalties and direct free kicks.
type Scorer struct {
	Rank      int
	PlayerID  int64
	Player    string
	Team      string
	Goals     int
	Penalties int
	FreeKicks int
	OpenPlay  int
}

// Assist is one row of an assist table.
type Assist struct {
	Rank     int
	PlayerID int64
	Player   string
	Team     string
	Assists  int
}
