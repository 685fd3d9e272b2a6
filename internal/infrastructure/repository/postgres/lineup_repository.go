package postgres

import (
	"context"
	"fmt"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/laliga-insights/internal/domain/lineup"
	qb "github.com/riskibarqy/laliga-insights/internal/platform/querybuilder"
)

type LineupRepository struct {
	store *Store
}

func NewLineupRepository(store *Store) *LineupRepository {
	return &LineupRepository{store: store}
}

func lineupBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select(lineupColumns...).From("lineups")
}

func (r *LineupRepository) List(ctx context.Context) ([]lineup.Entry, error) {
	return r.list(ctx, "list lineups", lineupBaseSelectBuilder(), nil)
}

func (r *LineupRepository) ListByMatch(ctx context.Context, matchID int64) ([]lineup.Entry, error) {
	return r.list(ctx, "list lineups by match",
		lineupBaseSelectBuilder().Where(qb.Eq("match_id", matchID)),
		func() *qb.SelectBuilder { return lineupBaseSelectBuilder().Where(int64Literal("match_id", matchID)) },
	)
}

func (r *LineupRepository) ListByPlayer(ctx context.Context, playerID int64) ([]lineup.Entry, error) {
	return r.list(ctx, "list lineups by player",
		lineupBaseSelectBuilder().Where(qb.Eq("player_id", playerID)),
		func() *qb.SelectBuilder { return lineupBaseSelectBuilder().Where(int64Literal("player_id", playerID)) },
	)
}

func (r *LineupRepository) ListByTeam(ctx context.Context, team string) ([]lineup.Entry, error) {
	return r.list(ctx, "list lineups by team",
		lineupBaseSelectBuilder().Where(qb.Eq("team", team)),
		func() *qb.SelectBuilder { return lineupBaseSelectBuilder().Where(qb.EqLiteral("team", team)) },
	)
}

func (r *LineupRepository) list(ctx context.Context, op string, query *qb.SelectBuilder, literal func() *qb.SelectBuilder) ([]lineup.Entry, error) {
	query = query.OrderBy("match_id", "team", "jersey_number")
	var orderedLiteral func() *qb.SelectBuilder
	if literal != nil {
		orderedLiteral = func() *qb.SelectBuilder { return literal().OrderBy("match_id", "team", "jersey_number") }
	}

	var rows []lineupTableModel
	if err := r.store.selectRows(ctx, &rows, query, orderedLiteral); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]lineup.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, lineupFromRow(row))
	}
	return out, nil
}

// lineupFromRow drops an unreadable card list rather than the whole entry.
func lineupFromRow(row lineupTableModel) lineup.Entry {
	entry := lineup.Entry{
		MatchID:      row.MatchID,
		PlayerID:     row.PlayerID,
		PlayerName:   row.PlayerName,
		Nickname:     row.PlayerNickname,
		Team:         row.Team,
		JerseyNumber: row.JerseyNumber,
		Country:      row.Country,
	}

	var cards []cardModel
	if len(row.Cards) > 0 && sonic.Unmarshal(row.Cards, &cards) == nil {
		for _, c := range cards {
			entry.Cards = append(entry.Cards, lineup.Card{
				PlayerName: row.PlayerName,
				Type:       lineup.CardType(c.CardType),
				Time:       c.Time,
				Period:     c.Period,
				Reason:     c.Reason,
			})
		}
	}
	return entry
}
