package postgres

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
	"github.com/riskibarqy/laliga-insights/internal/domain/lineup"
	"github.com/riskibarqy/laliga-insights/internal/domain/match"
)

type matchTableModel struct {
	MatchID       int64        `db:"match_id"`
	CompetitionID int          `db:"competition_id"`
	SeasonID      int          `db:"season_id"`
	MatchWeek     int          `db:"match_week"`
	MatchDate     sql.NullTime `db:"match_date"`
	KickOff       string       `db:"kick_off"`
	HomeTeam      string       `db:"home_team"`
	AwayTeam      string       `db:"away_team"`
	HomeScore     int          `db:"home_score"`
	AwayScore     int          `db:"away_score"`
	Stadium       string       `db:"stadium"`
	Referee       string       `db:"referee"`
}

var matchColumns = []string{
	"match_id", "competition_id", "season_id", "match_week", "match_date", "kick_off",
	"home_team", "away_team", "home_score", "away_score", "stadium", "referee",
}

func matchFromRow(row matchTableModel) match.Match {
	m := match.Match{
		ID:        row.MatchID,
		Week:      row.MatchWeek,
		KickOff:   row.KickOff,
		HomeTeam:  row.HomeTeam,
		AwayTeam:  row.AwayTeam,
		HomeScore: row.HomeScore,
		AwayScore: row.AwayScore,
		Stadium:   row.Stadium,
		Referee:   row.Referee,
	}
	if row.MatchDate.Valid {
		m.Date = row.MatchDate.Time.UTC()
	}
	return m
}

func matchToRow(m match.Match, competitionID, seasonID int) matchTableModel {
	return matchTableModel{
		MatchID:       m.ID,
		CompetitionID: competitionID,
		SeasonID:      seasonID,
		MatchWeek:     m.Week,
		MatchDate:     sql.NullTime{Time: m.Date, Valid: !m.Date.IsZero()},
		KickOff:       m.KickOff,
		HomeTeam:      m.HomeTeam,
		AwayTeam:      m.AwayTeam,
		HomeScore:     m.HomeScore,
		AwayScore:     m.AwayScore,
		Stadium:       m.Stadium,
		Referee:       m.Referee,
	}
}

// eventTableModel keeps the open-data event object in payload; the other
// columns exist for filtering.
type eventTableModel struct {
	ID         string        `db:"id"`
	MatchID    int64         `db:"match_id"`
	EventIndex int           `db:"event_index"`
	Type       string        `db:"type"`
	Team       string        `db:"team"`
	ActorIDs   pq.Int64Array `db:"actor_ids"`
	Payload    []byte        `db:"payload"`
}

var eventColumns = []string{"id", "match_id", "event_index", "type", "team", "actor_ids", "payload"}

type lineupTableModel struct {
	MatchID        int64     `db:"match_id"`
	PlayerID       int64     `db:"player_id"`
	PlayerName     string    `db:"player_name"`
	PlayerNickname string    `db:"player_nickname"`
	Team           string    `db:"team"`
	JerseyNumber   int       `db:"jersey_number"`
	Country        string    `db:"country"`
	Cards          []byte    `db:"cards"`
	CreatedAt      time.Time `db:"created_at"`
}

type lineupInsertModel struct {
	MatchID        int64  `db:"match_id"`
	PlayerID       int64  `db:"player_id"`
	PlayerName     string `db:"player_name"`
	PlayerNickname string `db:"player_nickname"`
	Team           string `db:"team"`
	JerseyNumber   int    `db:"jersey_number"`
	Country        string `db:"country"`
	Cards          []byte `db:"cards"`
}

var lineupColumns = []string{
	"match_id", "player_id", "player_name", "player_nickname", "team", "jersey_number", "country", "cards", "created_at",
}

type cardModel struct {
	Time     string `json:"time"`
	CardType string `json:"card_type"`
	Reason   string `json:"reason,omitempty"`
	Period   int    `json:"period"`
}

func cardsToModel(cards []lineup.Card) []cardModel {
	out := make([]cardModel, 0, len(cards))
	for _, c := range cards {
		out = append(out, cardModel{Time: c.Time, CardType: string(c.Type), Reason: c.Reason, Period: c.Period})
	}
	return out
}
