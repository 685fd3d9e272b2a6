package timeline

// Entry is one row of a match timeline. Minute is one-based.
type Entry struct {
	Icon   string
	Minute int
	Type   string
	Team   string
	Player string
}

// Columns is the fixed header of the rendered timeline.
var Columns = []string{"", "Minute", "Type", "Team", "Player"}

const (
	TypeGoal         = "Goal"
	TypePenaltyGoal  = "Goal (Pen)"
	TypeOwnGoal      = "Own Goal"
	TypeSubstitution = "Substitution"
	TypeHalftime     = "Halftime"
	TypeFulltime     = "Fulltime"
	typeAddedTime    = "Added time"
)

const unknownPlayer = "No data"

var icons = map[string]string{
	"Yellow Card":    "🟨",
	"Second Yellow":  "🟨🟥",
	"Red Card":       "🟥",
	TypeHalftime:     "✅",
	TypeFulltime:     "✅",
	TypeGoal:         "⚽",
	TypePenaltyGoal:  "⚽",
	TypeOwnGoal:      "⚽",
	typeAddedTime:    "🕑",
	TypeSubstitution: "🔁",
}

// Icon returns the marker shown next to an entry type.
func Icon(entryType string) string {
	return icons[entryType]
}
