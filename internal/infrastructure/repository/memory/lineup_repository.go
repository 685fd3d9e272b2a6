package memory

import (
	"context"

	"github.com/riskibarqy/laliga-insights/internal/domain/lineup"
)

type LineupRepository struct {
	data *Dataset
}

func NewLineupRepository(data *Dataset) *LineupRepository {
	return &LineupRepository{data: data}
}

func (r *LineupRepository) List(_ context.Context) ([]lineup.Entry, error) {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()

	return r.data.filterLineups(nil), nil
}

func (r *LineupRepository) ListByMatch(_ context.Context, matchID int64) ([]lineup.Entry, error) {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()

	return r.data.filterLineups(func(e lineup.Entry) bool { return e.MatchID == matchID }), nil
}

func (r *LineupRepository) ListByPlayer(_ context.Context, playerID int64) ([]lineup.Entry, error) {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()

	return r.data.filterLineups(func(e lineup.Entry) bool { return e.PlayerID == playerID }), nil
}

func (r *LineupRepository) ListByTeam(_ context.Context, team string) ([]lineup.Entry, error) {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()

	return r.data.filterLineups(func(e lineup.Entry) bool { return e.Team == team }), nil
}
