package postgres

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"github.com/riskibarqy/laliga-insights/external/statsbomb"
	"github.com/riskibarqy/laliga-insights/internal/domain/event"
	qb "github.com/riskibarqy/laliga-insights/internal/platform/querybuilder"
)

type EventRepository struct {
	store *Store
}

func NewEventRepository(store *Store) *EventRepository {
	return &EventRepository{store: store}
}

func eventBaseSelectBuilder() *qb.SelectBuilder {
	return qb.Select(eventColumns...).From("events")
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (event.Event, bool, error) {
	var row eventTableModel
	found, err := r.store.getRow(ctx, &row,
		eventBaseSelectBuilder().Where(qb.Eq("id", id)),
		func() *qb.SelectBuilder { return eventBaseSelectBuilder().Where(qb.EqLiteral("id", id)) },
	)
	if err != nil {
		return event.Event{}, false, fmt.Errorf("get event id=%s: %w", id, err)
	}
	if !found {
		return event.Event{}, false, nil
	}
	e, err := eventFromRow(row)
	if err != nil {
		return event.Event{}, false, err
	}
	return e, true, nil
}

func (r *EventRepository) ListByMatch(ctx context.Context, matchID int64) ([]event.Event, error) {
	return r.list(ctx, "list events by match",
		eventBaseSelectBuilder().Where(qb.Eq("match_id", matchID)),
		func() *qb.SelectBuilder { return eventBaseSelectBuilder().Where(int64Literal("match_id", matchID)) },
	)
}

func (r *EventRepository) ListByType(ctx context.Context, eventType event.Type) ([]event.Event, error) {
	return r.list(ctx, "list events by type",
		eventBaseSelectBuilder().Where(qb.Eq("type", string(eventType))),
		func() *qb.SelectBuilder { return eventBaseSelectBuilder().Where(qb.EqLiteral("type", string(eventType))) },
	)
}

func (r *EventRepository) ListByPlayer(ctx context.Context, playerID int64) ([]event.Event, error) {
	return r.list(ctx, "list events by player",
		eventBaseSelectBuilder().Where(qb.Expr("actor_ids @> ?", pq.Array([]int64{playerID}))),
		func() *qb.SelectBuilder {
			return eventBaseSelectBuilder().Where(qb.Expr(fmt.Sprintf("actor_ids @> ARRAY[%d]::bigint[]", playerID)))
		},
	)
}

func (r *EventRepository) ListByTeam(ctx context.Context, team string) ([]event.Event, error) {
	return r.list(ctx, "list events by team",
		eventBaseSelectBuilder().Where(qb.Eq("team", team)),
		func() *qb.SelectBuilder { return eventBaseSelectBuilder().Where(qb.EqLiteral("team", team)) },
	)
}

func (r *EventRepository) list(ctx context.Context, op string, query *qb.SelectBuilder, literal func() *qb.SelectBuilder) ([]event.Event, error) {
	query = query.OrderBy("match_id", "event_index")
	orderedLiteral := func() *qb.SelectBuilder { return literal().OrderBy("match_id", "event_index") }

	var rows []eventTableModel
	if err := r.store.selectRows(ctx, &rows, query, orderedLiteral); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]event.Event, 0, len(rows))
	for _, row := range rows {
		e, err := eventFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		out = append(out, e)
	}
	return out, nil
}

func eventFromRow(row eventTableModel) (event.Event, error) {
	e, err := statsbomb.DecodeEvent(row.MatchID, row.Payload)
	if err != nil {
		return event.Event{}, err
	}
	if e.ID == "" {
		e.ID = row.ID
	}
	return e, nil
}

// actorIDs lists the players an event is filed under for ListByPlayer.
func actorIDs(e event.Event) []int64 {
	ids := make([]int64, 0, 2)
	seen := make(map[int64]bool, 3)
	add := func(id int64) {
		if id != 0 && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	add(e.PlayerID)
	if e.Pass != nil {
		add(e.Pass.RecipientID)
	}
	if e.Substitution != nil {
		add(e.Substitution.ReplacementID)
	}
	return ids
}
