package memory

import (
	"context"

	"github.com/riskibarqy/laliga-insights/internal/domain/match"
)

type MatchRepository struct {
	data *Dataset
}

func NewMatchRepository(data *Dataset) *MatchRepository {
	return &MatchRepository{data: data}
}

func (r *MatchRepository) List(_ context.Context) ([]match.Match, error) {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()

	return r.data.filterMatches(nil), nil
}

func (r *MatchRepository) GetByID(_ context.Context, id int64) (match.Match, bool, error) {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()

	i, ok := r.data.matchByID[id]
	if !ok {
		return match.Match{}, false, nil
	}
	return r.data.matches[i], true, nil
}

func (r *MatchRepository) ListByTeam(_ context.Context, team string) ([]match.Match, error) {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()

	return r.data.filterMatches(func(m match.Match) bool { return m.Involves(team) }), nil
}

func (r *MatchRepository) ListByWeek(_ context.Context, week int) ([]match.Match, error) {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()

	return r.data.filterMatches(func(m match.Match) bool { return m.Week == week }), nil
}
