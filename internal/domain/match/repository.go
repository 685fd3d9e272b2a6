package match

import "context"

// Repository exposes read access to the season's matches.
type Repository interface {
	List(ctx context.Context) ([]Match, error)
	GetByID(ctx context.Context, id int64) (Match, bool, error)
	ListByTeam(ctx context.Context, team string) ([]Match, error)
	ListByWeek(ctx context.Context, week int) ([]Match, error)
}
