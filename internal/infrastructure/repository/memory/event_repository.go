package memory

import (
	"context"

	"github.com/riskibarqy/laliga-insights/internal/domain/event"
)

type EventRepository struct {
	data *Dataset
}

func NewEventRepository(data *Dataset) *EventRepository {
	return &EventRepository{data: data}
}

func (r *EventRepository) GetByID(_ context.Context, id string) (event.Event, bool, error) {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()

	i, ok := r.data.eventByID[id]
	if !ok {
		return event.Event{}, false, nil
	}
	return r.data.events[i], true, nil
}

func (r *EventRepository) ListByMatch(_ context.Context, matchID int64) ([]event.Event, error) {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()

	return r.data.pickEvents(r.data.eventsByMatch[matchID]), nil
}

func (r *EventRepository) ListByType(_ context.Context, eventType event.Type) ([]event.Event, error) {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()

	return r.data.pickEvents(r.data.eventsByType[eventType]), nil
}

func (r *EventRepository) ListByPlayer(_ context.Context, playerID int64) ([]event.Event, error) {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()

	return r.data.pickEvents(r.data.eventsByActor[playerID]), nil
}

func (r *EventRepository) ListByTeam(_ context.Context, team string) ([]event.Event, error) {
	r.data.mu.RLock()
	defer r.data.mu.RUnlock()

	return r.data.pickEvents(r.data.eventsByTeam[team]), nil
}
