package statsbomb

import (
	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/laliga-insights/internal/domain/event"
	"github.com/riskibarqy/laliga-insights/internal/domain/pitch"
)

// EncodeEvent renders an event back into the open-data event object, so stored
// payloads decode with DecodeEvent.
func EncodeEvent(e event.Event) ([]byte, error) {
	w := eventWire{
		ID:       e.ID,
		Index:    e.Index,
		Period:   e.Period,
		Minute:   e.Minute,
		Second:   e.Second,
		Type:     named{Name: string(e.Type)},
		Team:     named{Name: e.Team},
		Player:   optionalNamed(e.PlayerID, e.Player),
		Location: slice(e.Location),
	}
	if e.Pass != nil {
		w.Pass = &passWire{
			Recipient:   optionalNamed(e.Pass.RecipientID, e.Pass.Recipient),
			EndLocation: slice(e.Pass.EndLocation),
			Type:        optionalNamed(0, e.Pass.Type),
			Outcome:     optionalNamed(0, e.Pass.Outcome),
		}
	}
	if e.Shot != nil {
		w.Shot = &shotWire{
			XG:          e.Shot.XG,
			EndLocation: slice(e.Shot.EndLocation),
			KeyPassID:   e.Shot.KeyPassID,
			Type:        optionalNamed(0, e.Shot.Type),
			Outcome:     optionalNamed(0, e.Shot.Outcome),
		}
	}
	if e.Dribble != nil {
		w.Dribble = &dribbleWire{Outcome: optionalNamed(0, e.Dribble.Outcome)}
	}
	if e.Substitution != nil {
		w.Substitution = &substitutionWire{
			Replacement: optionalNamed(e.Substitution.ReplacementID, e.Substitution.Replacement),
			Outcome:     optionalNamed(0, e.Substitution.Outcome),
		}
	}
	if e.Tactics != nil {
		w.Tactics = &tacticsWire{Formation: e.Tactics.Formation}
		for _, slot := range e.Tactics.Lineup {
			w.Tactics.Lineup = append(w.Tactics.Lineup, tacticsSlotWire{
				Player:       named{ID: slot.PlayerID, Name: slot.Player},
				Position:     named{Name: slot.Position},
				JerseyNumber: slot.JerseyNumber,
			})
		}
	}

	raw, err := sonic.Marshal(w)
	if err != nil {
		return nil, crerr.Wrapf(err, "encode statsbomb event id=%s", e.ID)
	}
	return raw, nil
}

func optionalNamed(id int64, name string) *named {
	if id == 0 && name == "" {
		return nil
	}
	return &named{ID: id, Name: name}
}

func slice(p *pitch.Point) []float64 {
	if p == nil {
		return nil
	}
	return []float64{p.X, p.Y}
}
