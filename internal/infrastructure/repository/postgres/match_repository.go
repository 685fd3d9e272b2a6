package postgres

import (
	"context"
	"fmt"

	"github.com/riskibarqy/laliga-insights/internal/domain/match"
	qb "github.com/riskibarqy/laliga-insights/internal/platform/querybuilder"
)

type MatchRepository struct {
	store *Store
}

func NewMatchRepository(store *Store) *MatchRepository {
	return &MatchRepository{store: store}
}

func matchBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select(matchColumns...).From("matches")
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	query := matchBaseSelectBuilder().OrderBy("match_week", "match_id")
	return r.list(ctx, "list matches", query, nil)
}

func (r *MatchRepository) GetByID(ctx context.Context, id int64) (match.Match, bool, error) {
	var row matchTableModel
	found, err := r.store.getRow(ctx, &row,
		matchBaseSelectBuilder().Where(qb.Eq("match_id", id)),
		func() *qb.SelectBuilder { return matchBaseSelectBuilder().Where(int64Literal("match_id", id)) },
	)
	if err != nil {
		return match.Match{}, false, fmt.Errorf("get match id=%d: %w", id, err)
	}
	if !found {
		return match.Match{}, false, nil
	}
	return matchFromRow(row), true, nil
}

func (r *MatchRepository) ListByTeam(ctx context.Context, team string) ([]match.Match, error) {
	query := matchBaseSelectBuilder().
		Where(qb.Expr("(home_team = ? OR away_team = ?)", team, team)).
		OrderBy("match_week", "match_id")
	literal := func() *qb.SelectBuilder {
		return matchBaseSelectBuilder().
			Where(qb.Expr(fmt.Sprintf("(home_team = %s OR away_team = %s)", qb.Quote(team), qb.Quote(team)))).
			OrderBy("match_week", "match_id")
	}
	return r.list(ctx, "list matches by team", query, literal)
}

func (r *MatchRepository) ListByWeek(ctx context.Context, week int) ([]match.Match, error) {
	query := matchBaseSelectBuilder().Where(qb.Eq("match_week", week)).OrderBy("match_id")
	literal := func() *qb.SelectBuilder {
		return matchBaseSelectBuilder().Where(int64Literal("match_week", int64(week))).OrderBy("match_id")
	}
	return r.list(ctx, "list matches by week", query, literal)
}

func (r *MatchRepository) list(ctx context.Context, op string, query *qb.SelectBuilder, literal func() *qb.SelectBuilder) ([]match.Match, error) {
	var rows []matchTableModel
	if err := r.store.selectRows(ctx, &rows, query, literal); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}
	return out, nil
}
