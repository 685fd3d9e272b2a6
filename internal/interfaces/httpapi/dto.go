package httpapi

import (
	"github.com/riskibarqy/laliga-insights/internal/domain/leaguestanding"
	"github.com/riskibarqy/laliga-insights/internal/domain/match"
	"github.com/riskibarqy/laliga-insights/internal/domain/matchstats"
	"github.com/riskibarqy/laliga-insights/internal/domain/playerstats"
	"github.com/riskibarqy/laliga-insights/internal/domain/playingtime"
	"github.com/riskibarqy/laliga-insights/internal/domain/spatial"
	"github.com/riskibarqy/laliga-insights/internal/domain/team"
	"github.com/riskibarqy/laliga-insights/internal/domain/teamstats"
	"github.com/riskibarqy/laliga-insights/internal/domain/timeline"
	"github.com/riskibarqy/laliga-insights/internal/domain/topscorers"
	"github.com/riskibarqy/laliga-insights/internal/usecase"
)

const dateLayout = "2006-01-02"

type teamDTO struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type standingDTO struct {
	Position         int    `json:"position"`
	TeamID           int    `json:"teamId"`
	Team             string `json:"team"`
	Points           int    `json:"points"`
	GoalDifference   int    `json:"goalDifference"`
	Played           int    `json:"played"`
	Won              int    `json:"won"`
	Draw             int    `json:"draw"`
	Lost             int    `json:"lost"`
	GoalsFor         int    `json:"goalsFor"`
	GoalsAgainst     int    `json:"goalsAgainst"`
	HomeGoalsFor     int    `json:"homeGoalsFor"`
	AwayGoalsFor     int    `json:"awayGoalsFor"`
	HomeGoalsAgainst int    `json:"homeGoalsAgainst"`
	AwayGoalsAgainst int    `json:"awayGoalsAgainst"`
	Form             string `json:"form"`
}

type racePointDTO struct {
	Week   int `json:"week"`
	Points int `json:"points"`
}

type raceLineDTO struct {
	TeamID int            `json:"teamId"`
	Team   string         `json:"team"`
	Points []racePointDTO `json:"points"`
}

type scorerDTO struct {
	Rank      int    `json:"rank"`
	PlayerID  int64  `json:"playerId"`
	Player    string `json:"player"`
	Team      string `json:"team"`
	Goals     int    `json:"goals"`
	Penalties int    `json:"penalties"`
	FreeKicks int    `json:"freeKicks"`
	OpenPlay  int    `json:"openPlay"`
}

type assistDTO struct {
	Rank     int    `json:"rank"`
	PlayerID int64  `json:"playerId"`
	Player   string `json:"player"`
	Team     string `json:"team"`
	Assists  int    `json:"assists"`
}

type matchDTO struct {
	ID        int64  `json:"id"`
	Week      int    `json:"week"`
	Date      string `json:"date"`
	KickOff   string `json:"kickOff,omitempty"`
	HomeTeam  string `json:"homeTeam"`
	AwayTeam  string `json:"awayTeam"`
	HomeScore int    `json:"homeScore"`
	AwayScore int    `json:"awayScore"`
	Score     string `json:"score"`
	Stadium   string `json:"stadium,omitempty"`
	Referee   string `json:"referee,omitempty"`
}

type timelineEntryDTO struct {
	Icon   string `json:"icon"`
	Minute int    `json:"minute"`
	Type   string `json:"type"`
	Team   string `json:"team"`
	Player string `json:"player"`
}

type comparisonRowDTO struct {
	Statistic string `json:"statistic"`
	Home      any    `json:"home"`
	Away      any    `json:"away"`
}

type comparisonDTO struct {
	MatchID  int64              `json:"matchId"`
	HomeTeam string             `json:"homeTeam"`
	AwayTeam string             `json:"awayTeam"`
	Rows     []comparisonRowDTO `json:"rows"`
}

type squadPlayerDTO struct {
	PlayerID     int64  `json:"playerId"`
	Name         string `json:"name"`
	JerseyNumber int    `json:"jerseyNumber"`
	Position     string `json:"position,omitempty"`
}

type formationSpotDTO struct {
	PlayerID     int64   `json:"playerId"`
	Player       string  `json:"player"`
	JerseyNumber int     `json:"jerseyNumber"`
	Position     string  `json:"position"`
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
}

type squadDTO struct {
	Team      string             `json:"team"`
	Formation int                `json:"formation"`
	Starters  []squadPlayerDTO   `json:"starters"`
	Bench     []squadPlayerDTO   `json:"bench"`
	Spots     []formationSpotDTO `json:"spots"`
}

type matchLineupsDTO struct {
	Home squadDTO `json:"home"`
	Away squadDTO `json:"away"`
}

type shotPointDTO struct {
	EventID  string  `json:"eventId"`
	MatchID  int64   `json:"matchId"`
	Minute   int     `json:"minute"`
	Team     string  `json:"team"`
	PlayerID int64   `json:"playerId"`
	Player   string  `json:"player"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	XG       float64 `json:"xg"`
	Outcome  string  `json:"outcome"`
	Category string  `json:"category"`
	Goal     bool    `json:"goal"`
}

type flowPointDTO struct {
	Minute int     `json:"minute"`
	XG     float64 `json:"xg"`
	Goal   bool    `json:"goal"`
	Player string  `json:"player,omitempty"`
}

type xgFlowDTO struct {
	HomeTeam string         `json:"homeTeam"`
	AwayTeam string         `json:"awayTeam"`
	Home     []flowPointDTO `json:"home"`
	Away     []flowPointDTO `json:"away"`
}

type networkNodeDTO struct {
	PlayerID int64   `json:"playerId"`
	Player   string  `json:"player"`
	Label    string  `json:"label"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Passes   int     `json:"passes"`
}

type networkEdgeDTO struct {
	FromID int64  `json:"fromId"`
	From   string `json:"from"`
	ToID   int64  `json:"toId"`
	To     string `json:"to"`
	Count  int    `json:"count"`
	Width  int    `json:"width"`
}

type passNetworkDTO struct {
	Team  string           `json:"team"`
	Nodes []networkNodeDTO `json:"nodes"`
	Edges []networkEdgeDTO `json:"edges"`
}

type teamResultsDTO struct {
	Played         int    `json:"played"`
	Points         int    `json:"points"`
	Won            int    `json:"won"`
	Draw           int    `json:"draw"`
	Lost           int    `json:"lost"`
	WinPct         string `json:"winPct"`
	PointsPerMatch string `json:"pointsPerMatch"`
}

type teamScoringDTO struct {
	GoalsFor       int     `json:"goalsFor"`
	GoalsAgainst   int     `json:"goalsAgainst"`
	GoalDifference int     `json:"goalDifference"`
	CleanSheets    int     `json:"cleanSheets"`
	FailedToScore  int     `json:"failedToScore"`
	Shots          int     `json:"shots"`
	ShotsOnTarget  int     `json:"shotsOnTarget"`
	ShotAccuracy   string  `json:"shotAccuracy"`
	XG             float64 `json:"xg"`
}

type teamPassingDTO struct {
	PassesAttempted   int    `json:"passesAttempted"`
	PassesCompleted   int    `json:"passesCompleted"`
	PassAccuracy      string `json:"passAccuracy"`
	AveragePossession string `json:"averagePossession"`
}

type teamMatchDTO struct {
	MatchID  int64  `json:"matchId"`
	Week     int    `json:"week"`
	Date     string `json:"date"`
	Result   string `json:"result"`
	HomeTeam string `json:"homeTeam"`
	Score    string `json:"score"`
	AwayTeam string `json:"awayTeam"`
}

type teamSquadPlayerDTO struct {
	PlayerID     int64  `json:"playerId"`
	Name         string `json:"name"`
	JerseyNumber int    `json:"jerseyNumber"`
	Country      string `json:"country"`
}

type teamOverviewDTO struct {
	Team    teamDTO              `json:"team"`
	Results teamResultsDTO       `json:"results"`
	Scoring teamScoringDTO       `json:"scoring"`
	Passing teamPassingDTO       `json:"passing"`
	Matches []teamMatchDTO       `json:"matches"`
	Squad   []teamSquadPlayerDTO `json:"squad"`
	Scorers []scorerDTO          `json:"scorers"`
	Assists []assistDTO          `json:"assists"`
}

type playerProfileDTO struct {
	PlayerID     int64  `json:"playerId"`
	Name         string `json:"name"`
	FullName     string `json:"fullName"`
	Nickname     string `json:"nickname,omitempty"`
	Team         string `json:"team"`
	JerseyNumber int    `json:"jerseyNumber"`
	Country      string `json:"country"`
}

type matchMinutesDTO struct {
	MatchID   int64 `json:"matchId"`
	Started   bool  `json:"started"`
	SubbedIn  bool  `json:"subbedIn"`
	SubbedOut bool  `json:"subbedOut"`
	Minutes   int   `json:"minutes"`
}

type appearancesDTO struct {
	Starts int `json:"starts"`
	SubIns int `json:"subIns"`
	Total  int `json:"total"`
}

type positionCountDTO struct {
	Position string  `json:"position"`
	Count    int     `json:"count"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}

type seasonRowDTO struct {
	Statistic string `json:"statistic"`
	Total     any    `json:"total"`
	Per90     any    `json:"per90"`
}

type playerReportDTO struct {
	Profile     playerProfileDTO   `json:"profile"`
	Minutes     int                `json:"minutes"`
	PerMatch    []matchMinutesDTO  `json:"perMatch"`
	Appearances appearancesDTO     `json:"appearances"`
	Positions   []positionCountDTO `json:"positions"`
	Season      []seasonRowDTO     `json:"season"`
}

type heatmapDTO struct {
	PlayerID int64       `json:"playerId"`
	Rows     int         `json:"rows"`
	Cols     int         `json:"cols"`
	Cells    [][]float64 `json:"cells"`
}

func teamsToDTO(items []team.Team) []teamDTO {
	out := make([]teamDTO, 0, len(items))
	for _, t := range items {
		out = append(out, teamDTO{ID: t.ID, Name: t.Name})
	}
	return out
}

func standingsToDTO(items []leaguestanding.Standing) []standingDTO {
	out := make([]standingDTO, 0, len(items))
	for _, s := range items {
		out = append(out, standingDTO{
			Position:         s.Position,
			TeamID:           s.TeamID,
			Team:             s.Team,
			Points:           s.Points,
			GoalDifference:   s.GoalDifference,
			Played:           s.Played,
			Won:              s.Won,
			Draw:             s.Draw,
			Lost:             s.Lost,
			GoalsFor:         s.GoalsFor,
			GoalsAgainst:     s.GoalsAgainst,
			HomeGoalsFor:     s.HomeGoalsFor,
			AwayGoalsFor:     s.AwayGoalsFor,
			HomeGoalsAgainst: s.HomeGoalsAgainst,
			AwayGoalsAgainst: s.AwayGoalsAgainst,
			Form:             s.Form,
		})
	}
	return out
}

func raceToDTO(items []leaguestanding.RaceLine) []raceLineDTO {
	out := make([]raceLineDTO, 0, len(items))
	for _, line := range items {
		points := make([]racePointDTO, 0, len(line.Points))
		for _, p := range line.Points {
			points = append(points, racePointDTO{Week: p.Week, Points: p.Points})
		}
		out = append(out, raceLineDTO{TeamID: line.TeamID, Team: line.Team, Points: points})
	}
	return out
}

func scorersToDTO(items []topscorers.Scorer) []scorerDTO {
	out := make([]scorerDTO, 0, len(items))
	for _, s := range items {
		out = append(out, scorerDTO{
			Rank:      s.Rank,
			PlayerID:  s.PlayerID,
			Player:    s.Player,
			Team:      s.Team,
			Goals:     s.Goals,
			Penalties: s.Penalties,
			FreeKicks: s.FreeKicks,
			OpenPlay:  s.OpenPlay,
		})
	}
	return out
}

func assistsToDTO(items []topscorers.Assist) []assistDTO {
	out := make([]assistDTO, 0, len(items))
	for _, a := range items {
		out = append(out, assistDTO{
			Rank:     a.Rank,
			PlayerID: a.PlayerID,
			Player:   a.Player,
			Team:     a.Team,
			Assists:  a.Assists,
		})
	}
	return out
}

func matchToDTO(m match.Match) matchDTO {
	return matchDTO{
		ID:        m.ID,
		Week:      m.Week,
		Date:      formatDate(m),
		KickOff:   m.KickOff,
		HomeTeam:  m.HomeTeam,
		AwayTeam:  m.AwayTeam,
		HomeScore: m.HomeScore,
		AwayScore: m.AwayScore,
		Score:     m.Score(),
		Stadium:   m.Stadium,
		Referee:   m.Referee,
	}
}

func formatDate(m match.Match) string {
	if m.Date.IsZero() {
		return ""
	}
	return m.Date.Format(dateLayout)
}

func timelineToDTO(items []timeline.Entry) []timelineEntryDTO {
	out := make([]timelineEntryDTO, 0, len(items))
	for _, e := range items {
		out = append(out, timelineEntryDTO{
			Icon:   e.Icon,
			Minute: e.Minute,
			Type:   e.Type,
			Team:   e.Team,
			Player: e.Player,
		})
	}
	return out
}

func comparisonToDTO(c matchstats.Comparison) comparisonDTO {
	rows := c.Rows()
	out := comparisonDTO{
		MatchID:  c.MatchID,
		HomeTeam: c.Home.Team,
		AwayTeam: c.Away.Team,
		Rows:     make([]comparisonRowDTO, 0, len(rows)),
	}
	for _, row := range rows {
		out.Rows = append(out.Rows, comparisonRowDTO{Statistic: row.Statistic, Home: row.Home, Away: row.Away})
	}
	return out
}

func squadToDTO(s matchstats.Squad, spots []spatial.FormationSpot) squadDTO {
	out := squadDTO{
		Team:      s.Team,
		Formation: s.Formation,
		Starters:  squadPlayersToDTO(s.Starters),
		Bench:     squadPlayersToDTO(s.Bench),
		Spots:     make([]formationSpotDTO, 0, len(spots)),
	}
	for _, spot := range spots {
		out.Spots = append(out.Spots, formationSpotDTO{
			PlayerID:     spot.PlayerID,
			Player:       spot.Player,
			JerseyNumber: spot.JerseyNumber,
			Position:     spot.Position,
			X:            spot.X,
			Y:            spot.Y,
		})
	}
	return out
}

func squadPlayersToDTO(items []matchstats.SquadPlayer) []squadPlayerDTO {
	out := make([]squadPlayerDTO, 0, len(items))
	for _, p := range items {
		out = append(out, squadPlayerDTO{
			PlayerID:     p.PlayerID,
			Name:         p.Name,
			JerseyNumber: p.JerseyNumber,
			Position:     p.Position,
		})
	}
	return out
}

func matchLineupsToDTO(v usecase.MatchLineups) matchLineupsDTO {
	return matchLineupsDTO{
		Home: squadToDTO(v.Home, v.HomeSpots),
		Away: squadToDTO(v.Away, v.AwaySpots),
	}
}

func shotsToDTO(items []spatial.ShotPoint) []shotPointDTO {
	out := make([]shotPointDTO, 0, len(items))
	for _, s := range items {
		out = append(out, shotPointDTO{
			EventID:  s.EventID,
			MatchID:  s.MatchID,
			Minute:   s.Minute,
			Team:     s.Team,
			PlayerID: s.PlayerID,
			Player:   s.Player,
			X:        s.X,
			Y:        s.Y,
			XG:       s.XG,
			Outcome:  s.Outcome,
			Category: s.Category,
			Goal:     s.Goal,
		})
	}
	return out
}

func flowToDTO(f matchstats.Flow) xgFlowDTO {
	return xgFlowDTO{
		HomeTeam: f.HomeTeam,
		AwayTeam: f.AwayTeam,
		Home:     flowPointsToDTO(f.Home),
		Away:     flowPointsToDTO(f.Away),
	}
}

func flowPointsToDTO(items []matchstats.FlowPoint) []flowPointDTO {
	out := make([]flowPointDTO, 0, len(items))
	for _, p := range items {
		out = append(out, flowPointDTO{Minute: p.Minute, XG: p.XG, Goal: p.Goal, Player: p.Player})
	}
	return out
}

func networkToDTO(n spatial.Network) passNetworkDTO {
	out := passNetworkDTO{
		Team:  n.Team,
		Nodes: make([]networkNodeDTO, 0, len(n.Nodes)),
		Edges: make([]networkEdgeDTO, 0, len(n.Edges)),
	}
	for _, node := range n.Nodes {
		out.Nodes = append(out.Nodes, networkNodeDTO{
			PlayerID: node.PlayerID,
			Player:   node.Player,
			Label:    node.Label,
			X:        node.X,
			Y:        node.Y,
			Passes:   node.Passes,
		})
	}
	for _, edge := range n.Edges {
		out.Edges = append(out.Edges, networkEdgeDTO{
			FromID: edge.FromID,
			From:   edge.From,
			ToID:   edge.ToID,
			To:     edge.To,
			Count:  edge.Count,
			Width:  edge.Width,
		})
	}
	return out
}

func teamOverviewToDTO(v usecase.TeamOverview) teamOverviewDTO {
	out := teamOverviewDTO{
		Team: teamDTO{ID: v.Team.ID, Name: v.Team.Name},
		Results: teamResultsDTO{
			Played:         v.Results.Played,
			Points:         v.Results.Points,
			Won:            v.Results.Won,
			Draw:           v.Results.Draw,
			Lost:           v.Results.Lost,
			WinPct:         v.Results.WinPct,
			PointsPerMatch: v.Results.PointsPerMatch,
		},
		Scoring: teamScoringDTO{
			GoalsFor:       v.Scoring.GoalsFor,
			GoalsAgainst:   v.Scoring.GoalsAgainst,
			GoalDifference: v.Scoring.GoalDifference,
			CleanSheets:    v.Scoring.CleanSheets,
			FailedToScore:  v.Scoring.FailedToScore,
			Shots:          v.Scoring.Shots,
			ShotsOnTarget:  v.Scoring.ShotsOnTarget,
			ShotAccuracy:   v.Scoring.ShotAccuracy,
			XG:             v.Scoring.XG,
		},
		Passing: teamPassingDTO{
			PassesAttempted:   v.Passing.PassesAttempted,
			PassesCompleted:   v.Passing.PassesCompleted,
			PassAccuracy:      v.Passing.PassAccuracy,
			AveragePossession: v.Passing.AveragePossession,
		},
		Matches: teamMatchesToDTO(v.Matches),
		Squad:   teamSquadToDTO(v.Squad),
		Scorers: scorersToDTO(v.Scorers),
		Assists: assistsToDTO(v.Assists),
	}
	return out
}

func teamMatchesToDTO(items []teamstats.MatchRow) []teamMatchDTO {
	out := make([]teamMatchDTO, 0, len(items))
	for _, row := range items {
		date := ""
		if !row.Date.IsZero() {
			date = row.Date.Format(dateLayout)
		}
		out = append(out, teamMatchDTO{
			MatchID:  row.MatchID,
			Week:     row.Week,
			Date:     date,
			Result:   row.Result,
			HomeTeam: row.HomeTeam,
			Score:    row.Score,
			AwayTeam: row.AwayTeam,
		})
	}
	return out
}

func teamSquadToDTO(items []teamstats.SquadRow) []teamSquadPlayerDTO {
	out := make([]teamSquadPlayerDTO, 0, len(items))
	for _, row := range items {
		out = append(out, teamSquadPlayerDTO{
			PlayerID:     row.PlayerID,
			Name:         row.Name,
			JerseyNumber: row.JerseyNumber,
			Country:      row.Country,
		})
	}
	return out
}

func playerReportToDTO(v usecase.PlayerReport) playerReportDTO {
	out := playerReportDTO{
		Profile: playerProfileDTO{
			PlayerID:     v.Profile.PlayerID,
			Name:         v.Profile.Name,
			FullName:     v.Profile.FullName,
			Nickname:     v.Profile.Nickname,
			Team:         v.Profile.Team,
			JerseyNumber: v.Profile.JerseyNumber,
			Country:      v.Profile.Country,
		},
		Minutes:  v.Minutes,
		PerMatch: minutesToDTO(v.PerMatch),
		Appearances: appearancesDTO{
			Starts: v.Appearances.Starts,
			SubIns: v.Appearances.SubIns,
			Total:  v.Appearances.Total,
		},
		Positions: positionsToDTO(v.Positions),
		Season:    seasonRowsToDTO(v.Season.Rows()),
	}
	return out
}

func minutesToDTO(items []playingtime.MatchMinutes) []matchMinutesDTO {
	out := make([]matchMinutesDTO, 0, len(items))
	for _, mm := range items {
		out = append(out, matchMinutesDTO{
			MatchID:   mm.MatchID,
			Started:   mm.Started,
			SubbedIn:  mm.SubbedIn,
			SubbedOut: mm.SubbedOut,
			Minutes:   mm.Minutes,
		})
	}
	return out
}

func positionsToDTO(items []playerstats.PositionCount) []positionCountDTO {
	out := make([]positionCountDTO, 0, len(items))
	for _, p := range items {
		out = append(out, positionCountDTO{Position: p.Position, Count: p.Count, X: p.Spot.X, Y: p.Spot.Y})
	}
	return out
}

func seasonRowsToDTO(items []playerstats.Row) []seasonRowDTO {
	out := make([]seasonRowDTO, 0, len(items))
	for _, row := range items {
		out = append(out, seasonRowDTO{Statistic: row.Statistic, Total: row.Total, Per90: row.Per90})
	}
	return out
}

func heatmapToDTO(playerID int64, grid spatial.Grid) heatmapDTO {
	return heatmapDTO{
		PlayerID: playerID,
		Rows:     spatial.Rows,
		Cols:     spatial.Cols,
		Cells:    grid.Cells(),
	}
}
