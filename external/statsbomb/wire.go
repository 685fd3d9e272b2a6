package statsbomb

// Wire types mirror the StatsBomb open-data JSON. Every non-identifying field is
// optional in the feed, so nested objects are pointers or zero-valued structs.

type named struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type matchWire struct {
	MatchID   int64  `json:"match_id"`
	MatchDate string `json:"match_date"`
	KickOff   string `json:"kick_off"`
	HomeTeam  struct {
		ID   int64  `json:"home_team_id"`
		Name string `json:"home_team_name"`
	} `json:"home_team"`
	AwayTeam struct {
		ID   int64  `json:"away_team_id"`
		Name string `json:"away_team_name"`
	} `json:"away_team"`
	HomeScore *int   `json:"home_score"`
	AwayScore *int   `json:"away_score"`
	MatchWeek int    `json:"match_week"`
	Stadium   *named `json:"stadium"`
	Referee   *named `json:"referee"`
}

type eventWire struct {
	ID       string    `json:"id"`
	Index    int       `json:"index"`
	Period   int       `json:"period"`
	Minute   int       `json:"minute"`
	Second   int       `json:"second"`
	Type     named     `json:"type"`
	Team     named     `json:"team"`
	Player   *named    `json:"player,omitempty"`
	Location []float64 `json:"location,omitempty"`

	Pass         *passWire         `json:"pass,omitempty"`
	Shot         *shotWire         `json:"shot,omitempty"`
	Dribble      *dribbleWire      `json:"dribble,omitempty"`
	Substitution *substitutionWire `json:"substitution,omitempty"`
	Tactics      *tacticsWire      `json:"tactics,omitempty"`
}

type passWire struct {
	Recipient   *named    `json:"recipient"`
	EndLocation []float64 `json:"end_location"`
	Type        *named    `json:"type"`
	Outcome     *named    `json:"outcome"`
}

type shotWire struct {
	XG          float64   `json:"statsbomb_xg"`
	EndLocation []float64 `json:"end_location"`
	KeyPassID   string    `json:"key_pass_id"`
	Type        *named    `json:"type"`
	Outcome     *named    `json:"outcome"`
}

type dribbleWire struct {
	Outcome *named `json:"outcome"`
}

type substitutionWire struct {
	Replacement *named `json:"replacement"`
	Outcome     *named `json:"outcome"`
}

type tacticsWire struct {
	Formation int               `json:"formation"`
	Lineup    []tacticsSlotWire `json:"lineup"`
}

type tacticsSlotWire struct {
	Player       named `json:"player"`
	Position     named `json:"position"`
	JerseyNumber int   `json:"jersey_number"`
}

type teamLineupWire struct {
	TeamID   int64  `json:"team_id"`
	TeamName string `json:"team_name"`
	Lineup   []struct {
		PlayerID       int64  `json:"player_id"`
		PlayerName     string `json:"player_name"`
		PlayerNickname string `json:"player_nickname"`
		JerseyNumber   int    `json:"jersey_number"`
		Country        *named `json:"country"`
		Cards          []struct {
			Time     string `json:"time"`
			CardType string `json:"card_type"`
			Reason   string `json:"reason"`
			Period   int    `json:"period"`
		} `json:"cards"`
	} `json:"lineup"`
}

func nameOf(n *named) string {
	if n == nil {
		return ""
	}
	return n.Name
}

func idOf(n *named) int64 {
	if n == nil {
		return 0
	}
	return n.ID
}
