package matchstats

// TeamLine holds one side's numbers for a single match.
type TeamLine struct {
	Team           string
	Goals          int
	Shots          int
	ShotsOnTarget  int
	XG             float64
	Possession     string
	Passes         int
	AccuratePasses int
	PassAccuracy   string
	Corners        int
	FreeKicks      int
	Penalties      int
	Fouls          int
	YellowCards    int
	RedCards       int
}

// Comparison is the head-to-head statistics table of a match.
type Comparison struct {
	MatchID int64
	Home    TeamLine
	Away    TeamLine
}

// Row is one rendered statistic. Values are ints, float64 or percentage strings.
type Row struct {
	Statistic string
	Home      any
	Away      any
}

// Rows flattens the comparison into its fixed, ordered table.
func (c Comparison) Rows() []Row {
	h, a := c.Home, c.Away
	return []Row{
		{"Goals", h.Goals, a.Goals},
		{"Shots", h.Shots, a.Shots},
		{"Shots on Target", h.ShotsOnTarget, a.ShotsOnTarget},
		{"xG", h.XG, a.XG},
		{"Possession", h.Possession, a.Possession},
		{"Passes", h.Passes, a.Passes},
		{"Accurate Passes", h.AccuratePasses, a.AccuratePasses},
		{"Pass Accuracy", h.PassAccuracy, a.PassAccuracy},
		{"Corners", h.Corners, a.Corners},
		{"Penalties", h.Penalties, a.Penalties},
		{"Free Kicks", h.FreeKicks, a.FreeKicks},
		{"Fouls", h.Fouls, a.Fouls},
		{"Yellow Cards", h.YellowCards, a.YellowCards},
		{"Red Cards", h.RedCards, a.RedCards},
	}
}

// FlowPoint is a step of a cumulative xG curve. Minute is one-based except for the origin.
type FlowPoint struct {
	Minute int
	XG     float64
	Goal   bool
	Player string
}

// Flow holds the cumulative xG curves of both sides.
type Flow struct {
	HomeTeam string
	AwayTeam string
	Home     []FlowPoint
	Away     []FlowPoint
}

// SquadPlayer is one lineup row of a match squad.
type SquadPlayer struct {
	PlayerID     int64
	Name         string
	JerseyNumber int
	Position     string
}

// Squad splits a team's match lineup into starters and bench.
type Squad struct {
	Team      string
	Formation int
	Starters  []SquadPlayer
	Bench     []SquadPlayer
}
