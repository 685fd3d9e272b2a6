package event

import (
	"strings"

	"github.com/riskibarqy/laliga-insights/internal/domain/pitch"
)

// Type tags the variant of an event.
type Type string

const (
	TypeShot           Type = "Shot"
	TypePass           Type = "Pass"
	TypeCarry          Type = "Carry"
	TypeDribble        Type = "Dribble"
	TypeFoulCommitted  Type = "Foul Committed"
	TypeFoulWon        Type = "Foul Won"
	TypeSubstitution   Type = "Substitution"
	TypeStartingXI     Type = "Starting XI"
	TypeHalfEnd        Type = "Half End"
	TypeOwnGoalFor     Type = "Own Goal For"
	TypeOwnGoalAgainst Type = "Own Goal Against"
	TypeBallReceipt    Type = "Ball Receipt"
	TypeInterception   Type = "Interception"
	TypeClearance      Type = "Clearance"
	TypeBlock          Type = "Block"
)

// ParseType normalizes a feed type name. The feed spells ball receipts "Ball Receipt*".
func ParseType(raw string) Type {
	name := strings.TrimSpace(raw)
	name = strings.TrimSuffix(name, "*")
	return Type(name)
}

const (
	ShotOutcomeGoal           = "Goal"
	ShotOutcomeSaved          = "Saved"
	ShotOutcomeSavedToPost    = "Saved to Post"
	ShotOutcomeSavedOffTarget = "Saved Off Target"

	ShotTypePenalty  = "Penalty"
	ShotTypeFreeKick = "Free Kick"

	PassTypeCorner   = "Corner"
	PassTypeFreeKick = "Free Kick"

	DribbleOutcomeComplete = "Complete"
)

// Event is one on-pitch action. Exactly one of the variant payloads is set for
// Shot, Pass, Dribble, Substitution and Starting XI events; other types carry only
// the envelope.
type Event struct {
	ID       string
	MatchID  int64
	Index    int
	Period   int
	Minute   int
	Second   int
	Type     Type
	Team     string
	Player   string
	PlayerID int64
	Location *pitch.Point

	Shot         *Shot
	Pass         *Pass
	Dribble      *Dribble
	Substitution *Substitution
	Tactics      *Tactics
}

type Shot struct {
	Outcome     string
	Type        string
	XG          float64
	KeyPassID   string
	EndLocation *pitch.Point
}

type Pass struct {
	// Outcome is empty for a completed pass.
	Outcome     string
	Type        string
	Recipient   string
	RecipientID int64
	EndLocation *pitch.Point
}

func (p *Pass) Completed() bool {
	return p != nil && p.Outcome == ""
}

type Dribble struct {
	Outcome string
}

type Substitution struct {
	Replacement   string
	ReplacementID int64
	Outcome       string
}

// Tactics is the payload of a Starting XI event.
type Tactics struct {
	Formation int
	Lineup    []LineupSlot
}

// LineupSlot is one starter inside a Starting XI.
type LineupSlot struct {
	PlayerID     int64
	Player       string
	JerseyNumber int
	Position     string
}

// IsGoal reports whether the event is a scored shot.
func (e Event) IsGoal() bool {
	return e.Type == TypeShot && e.Shot != nil && e.Shot.Outcome == ShotOutcomeGoal
}

// IsCompletedPass reports whether the event is a pass without a failure outcome.
func (e Event) IsCompletedPass() bool {
	return e.Type == TypePass && e.Pass.Completed()
}

// Starter returns the lineup slot of a player inside a Starting XI event.
func (e Event) Starter(playerID int64) (LineupSlot, bool) {
	if e.Tactics == nil || playerID == 0 {
		return LineupSlot{}, false
	}
	for _, slot := range e.Tactics.Lineup {
		if slot.PlayerID == playerID {
			return slot, true
		}
	}
	return LineupSlot{}, false
}

// Clone returns a deep copy so callers can rewrite fields without aliasing.
func (e Event) Clone() Event {
	out := e
	if e.Location != nil {
		loc := *e.Location
		out.Location = &loc
	}
	if e.Shot != nil {
		shot := *e.Shot
		if shot.EndLocation != nil {
			end := *shot.EndLocation
			shot.EndLocation = &end
		}
		out.Shot = &shot
	}
	if e.Pass != nil {
		pass := *e.Pass
		if pass.EndLocation != nil {
			end := *pass.EndLocation
			pass.EndLocation = &end
		}
		out.Pass = &pass
	}
	if e.Dribble != nil {
		dribble := *e.Dribble
		out.Dribble = &dribble
	}
	if e.Substitution != nil {
		sub := *e.Substitution
		out.Substitution = &sub
	}
	if e.Tactics != nil {
		tactics := *e.Tactics
		tactics.Lineup = append([]LineupSlot(nil), e.Tactics.Lineup...)
		out.Tactics = &tactics
	}
	return out
}
