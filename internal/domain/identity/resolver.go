// Package identity replaces registered full player names with nicknames across
// lineups and events.
package identity

import (
	"errors"
	"strings"

	"github.com/riskibarqy/laliga-insights/internal/domain/event"
	"github.com/riskibarqy/laliga-insights/internal/domain/lineup"
)

var ErrNoInput = errors.New("lineups or events are required")

// Input groups the collections to resolve. Lineups are the only source of nicknames.
type Input struct {
	Lineups    []lineup.Entry
	Events     []event.Event
	StartingXI []event.Event
}

// Output holds resolved copies. The input collections are left untouched.
type Output struct {
	Lineups    []lineup.Entry
	Events     []event.Event
	StartingXI []event.Event
}

// Resolver holds the nickname lookups built from lineup entries.
type Resolver struct {
	byID       map[int64]string
	byFullName map[string]string
}

// NewResolver indexes every lineup entry that has a non-empty nickname.
func NewResolver(lineups []lineup.Entry) *Resolver {
	r := &Resolver{
		byID:       make(map[int64]string),
		byFullName: make(map[string]string),
	}
	for _, entry := range lineups {
		nick := strings.TrimSpace(entry.Nickname)
		if nick == "" {
			continue
		}
		if entry.PlayerID != 0 {
			r.byID[entry.PlayerID] = nick
		}
		if entry.PlayerName != "" {
			r.byFullName[entry.PlayerName] = nick
		}
	}
	return r
}

// Resolve returns resolved copies of every supplied collection.
func Resolve(in Input) (Output, error) {
	if in.Lineups == nil && in.Events == nil {
		return Output{}, ErrNoInput
	}

	r := NewResolver(in.Lineups)
	return Output{
		Lineups:    r.Lineups(in.Lineups),
		Events:     r.Events(in.Events),
		StartingXI: r.Events(in.StartingXI),
	}, nil
}

// Player returns the nickname registered for id, or fallback.
func (r *Resolver) Player(id int64, fallback string) string {
	if nick, ok := r.byID[id]; ok && id != 0 {
		return nick
	}
	return fallback
}

// FullName returns the nickname registered for a full name, or the name itself.
func (r *Resolver) FullName(name string) string {
	if nick, ok := r.byFullName[name]; ok {
		return nick
	}
	return name
}

func (r *Resolver) Lineups(entries []lineup.Entry) []lineup.Entry {
	if entries == nil {
		return nil
	}
	out := make([]lineup.Entry, len(entries))
	for i, entry := range entries {
		resolved := entry.Clone()
		if nick, ok := r.byID[entry.PlayerID]; ok {
			resolved.PlayerName = nick
			for j := range resolved.Cards {
				resolved.Cards[j].PlayerName = nick
			}
		}
		out[i] = resolved
	}
	return out
}

func (r *Resolver) Events(events []event.Event) []event.Event {
	if events == nil {
		return nil
	}
	out := make([]event.Event, len(events))
	for i, e := range events {
		out[i] = r.event(e)
	}
	return out
}

func (r *Resolver) event(e event.Event) event.Event {
	resolved := e.Clone()
	resolved.Player = r.Player(e.PlayerID, e.Player)

	if resolved.Pass != nil {
		resolved.Pass.Recipient = r.Player(resolved.Pass.RecipientID, resolved.Pass.Recipient)
	}
	if resolved.Substitution != nil {
		// The replacement is recorded by full name in the feed.
		name := resolved.Substitution.Replacement
		if nick := r.FullName(name); nick != name {
			resolved.Substitution.Replacement = nick
		} else {
			resolved.Substitution.Replacement = r.Player(resolved.Substitution.ReplacementID, name)
		}
	}
	if resolved.Tactics != nil {
		for i, slot := range resolved.Tactics.Lineup {
			resolved.Tactics.Lineup[i].Player = r.Player(slot.PlayerID, slot.Player)
		}
	}
	return resolved
}
