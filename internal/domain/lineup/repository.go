package lineup

import "context"

// Repository exposes read access to match lineups.
type Repository interface {
	List(ctx context.Context) ([]Entry, error)
	ListByMatch(ctx context.Context, matchID int64) ([]Entry, error)
	ListByPlayer(ctx context.Context, playerID int64) ([]Entry, error)
	ListByTeam(ctx context.Context, team string) ([]Entry, error)
}
