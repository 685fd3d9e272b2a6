package lineup

import (
	"strconv"
	"strings"
)

// CardType is the kind of card shown to a player.
type CardType string

const (
	CardYellow       CardType = "Yellow Card"
	CardSecondYellow CardType = "Second Yellow"
	CardRed          CardType = "Red Card"
)

// CountsAsYellow reports whether the card adds to a yellow tally. A second yellow counts for both.
func (c CardType) CountsAsYellow() bool {
	return c == CardYellow || c == CardSecondYellow
}

// CountsAsRed reports whether the card sends the player off.
func (c CardType) CountsAsRed() bool {
	return c == CardRed || c == CardSecondYellow
}

// Card is one booking recorded on a lineup entry.
type Card struct {
	PlayerName string
	Type       CardType
	Time       string
	Period     int
	Reason     string
}

// Minute returns the zero-based minute of a "MM:SS" card time, or 0 when malformed.
func (c Card) Minute() int {
	head, _, _ := strings.Cut(strings.TrimSpace(c.Time), ":")
	minute, err := strconv.Atoi(head)
	if err != nil || minute < 0 {
		return 0
	}
	return minute
}

// Entry is one player of one team in one match.
type Entry struct {
	MatchID      int64
	PlayerID     int64
	PlayerName   string
	Nickname     string
	Team         string
	JerseyNumber int
	Country      string
	Cards        []Card
}

// DisplayName prefers the registered nickname.
func (e Entry) DisplayName() string {
	if strings.TrimSpace(e.Nickname) != "" {
		return e.Nickname
	}
	return e.PlayerName
}

// Clone returns a copy that does not share the card list.
func (e Entry) Clone() Entry {
	out := e
	if e.Cards != nil {
		out.Cards = append([]Card(nil), e.Cards...)
	}
	return out
}
