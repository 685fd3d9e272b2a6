package event

import "context"

// Repository exposes query-by-filter access to the season's events.
type Repository interface {
	GetByID(ctx context.Context, id string) (Event, bool, error)
	ListByMatch(ctx context.Context, matchID int64) ([]Event, error)
	ListByType(ctx context.Context, eventType Type) ([]Event, error)
	// ListByPlayer returns events where the player acts, receives a pass, or comes on as a substitute.
	ListByPlayer(ctx context.Context, playerID int64) ([]Event, error)
	ListByTeam(ctx context.Context, team string) ([]Event, error)
}
