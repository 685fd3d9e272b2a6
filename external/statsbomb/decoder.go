package statsbomb

import (
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/laliga-insights/internal/domain/event"
	"github.com/riskibarqy/laliga-insights/internal/domain/lineup"
	"github.com/riskibarqy/laliga-insights/internal/domain/match"
	"github.com/riskibarqy/laliga-insights/internal/domain/pitch"
)

const matchDateLayout = "2006-01-02"

// DecodeMatches decodes a matches/<competition>/<season>.json document.
// Records without a match id are dropped.
func DecodeMatches(data []byte) ([]match.Match, error) {
	var items []matchWire
	if err := sonic.Unmarshal(data, &items); err != nil {
		return nil, crerr.Wrap(err, "decode statsbomb matches")
	}

	out := make([]match.Match, 0, len(items))
	for _, item := range items {
		if item.MatchID <= 0 {
			continue
		}
		m := match.Match{
			ID:       item.MatchID,
			Week:     item.MatchWeek,
			KickOff:  strings.TrimSpace(item.KickOff),
			HomeTeam: strings.TrimSpace(item.HomeTeam.Name),
			AwayTeam: strings.TrimSpace(item.AwayTeam.Name),
			Stadium:  nameOf(item.Stadium),
			Referee:  nameOf(item.Referee),
		}
		if item.HomeScore != nil {
			m.HomeScore = *item.HomeScore
		}
		if item.AwayScore != nil {
			m.AwayScore = *item.AwayScore
		}
		if date, err := time.Parse(matchDateLayout, strings.TrimSpace(item.MatchDate)); err == nil {
			m.Date = date
		}
		out = append(out, m)
	}
	return out, nil
}

// DecodeEvents decodes an events/<match>.json document.
func DecodeEvents(matchID int64, data []byte) ([]event.Event, error) {
	var items []eventWire
	if err := sonic.Unmarshal(data, &items); err != nil {
		return nil, crerr.Wrapf(err, "decode statsbomb events match_id=%d", matchID)
	}

	out := make([]event.Event, 0, len(items))
	for _, item := range items {
		out = append(out, item.toDomain(matchID))
	}
	return out, nil
}

// DecodeEvent decodes a single raw StatsBomb event object.
func DecodeEvent(matchID int64, data []byte) (event.Event, error) {
	var item eventWire
	if err := sonic.Unmarshal(data, &item); err != nil {
		return event.Event{}, crerr.Wrapf(err, "decode statsbomb event match_id=%d", matchID)
	}
	return item.toDomain(matchID), nil
}

// DecodeLineups decodes a lineups/<match>.json document into one entry per player.
func DecodeLineups(matchID int64, data []byte) ([]lineup.Entry, error) {
	var teams []teamLineupWire
	if err := sonic.Unmarshal(data, &teams); err != nil {
		return nil, crerr.Wrapf(err, "decode statsbomb lineups match_id=%d", matchID)
	}

	out := make([]lineup.Entry, 0, 2*23)
	for _, t := range teams {
		for _, p := range t.Lineup {
			entry := lineup.Entry{
				MatchID:      matchID,
				PlayerID:     p.PlayerID,
				PlayerName:   p.PlayerName,
				Nickname:     p.PlayerNickname,
				Team:         t.TeamName,
				JerseyNumber: p.JerseyNumber,
				Country:      nameOf(p.Country),
			}
			for _, c := range p.Cards {
				entry.Cards = append(entry.Cards, lineup.Card{
					PlayerName: p.PlayerName,
					Type:       lineup.CardType(c.CardType),
					Time:       c.Time,
					Period:     c.Period,
					Reason:     c.Reason,
				})
			}
			out = append(out, entry)
		}
	}
	return out, nil
}

func (w eventWire) toDomain(matchID int64) event.Event {
	e := event.Event{
		ID:       w.ID,
		MatchID:  matchID,
		Index:    w.Index,
		Period:   w.Period,
		Minute:   w.Minute,
		Second:   w.Second,
		Type:     event.ParseType(w.Type.Name),
		Team:     w.Team.Name,
		Player:   nameOf(w.Player),
		PlayerID: idOf(w.Player),
		Location: point(w.Location),
	}

	if w.Pass != nil {
		e.Pass = &event.Pass{
			Outcome:     nameOf(w.Pass.Outcome),
			Type:        nameOf(w.Pass.Type),
			Recipient:   nameOf(w.Pass.Recipient),
			RecipientID: idOf(w.Pass.Recipient),
			EndLocation: point(w.Pass.EndLocation),
		}
	}
	if w.Shot != nil {
		e.Shot = &event.Shot{
			Outcome:     nameOf(w.Shot.Outcome),
			Type:        nameOf(w.Shot.Type),
			XG:          w.Shot.XG,
			KeyPassID:   w.Shot.KeyPassID,
			EndLocation: point(w.Shot.EndLocation),
		}
	}
	if w.Dribble != nil {
		e.Dribble = &event.Dribble{Outcome: nameOf(w.Dribble.Outcome)}
	}
	if w.Substitution != nil {
		e.Substitution = &event.Substitution{
			Replacement:   nameOf(w.Substitution.Replacement),
			ReplacementID: idOf(w.Substitution.Replacement),
			Outcome:       nameOf(w.Substitution.Outcome),
		}
	}
	if w.Tactics != nil && e.Type == event.TypeStartingXI {
		tactics := &event.Tactics{
			Formation: w.Tactics.Formation,
			Lineup:    make([]event.LineupSlot, 0, len(w.Tactics.Lineup)),
		}
		for _, slot := range w.Tactics.Lineup {
			tactics.Lineup = append(tactics.Lineup, event.LineupSlot{
				PlayerID:     slot.Player.ID,
				Player:       slot.Player.Name,
				JerseyNumber: slot.JerseyNumber,
				Position:     slot.Position.Name,
			})
		}
		e.Tactics = tactics
	}
	return e
}

func point(values []float64) *pitch.Point {
	p, ok := pitch.FromSlice(values)
	if !ok {
		return nil
	}
	return &p
}
