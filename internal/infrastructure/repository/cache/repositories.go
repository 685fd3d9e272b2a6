package cache

import (
	"context"
	"strconv"

	"github.com/riskibarqy/laliga-insights/internal/domain/event"
	"github.com/riskibarqy/laliga-insights/internal/domain/lineup"
	"github.com/riskibarqy/laliga-insights/internal/domain/match"
	basecache "github.com/riskibarqy/laliga-insights/internal/platform/cache"
)

// Key prefixes per repository.
const (
	PrefixMatch  = "match:"
	PrefixEvent  = "event:"
	PrefixLineup = "lineup:"
)

func loadList[T any](ctx context.Context, store *basecache.Store, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	v, err := store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return append([]T(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]T)
	return append([]T(nil), items...), nil
}

type cachedItem[T any] struct {
	value  T
	exists bool
}

func loadItem[T any](ctx context.Context, store *basecache.Store, key string, load func(context.Context) (T, bool, error)) (T, bool, error) {
	v, err := store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		item, exists, err := load(ctx)
		if err != nil {
			return nil, err
		}
		return cachedItem[T]{value: item, exists: exists}, nil
	})
	if err != nil {
		var zero T
		return zero, false, err
	}

	cached, _ := v.(cachedItem[T])
	return cached.value, cached.exists, nil
}

type MatchRepository struct {
	next  match.Repository
	cache *basecache.Store
}

func NewMatchRepository(next match.Repository, cache *basecache.Store) *MatchRepository {
	return &MatchRepository{next: next, cache: cache}
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	return loadList(ctx, r.cache, PrefixMatch+"list", r.next.List)
}

func (r *MatchRepository) GetByID(ctx context.Context, id int64) (match.Match, bool, error) {
	return loadItem(ctx, r.cache, PrefixMatch+"id:"+strconv.FormatInt(id, 10), func(ctx context.Context) (match.Match, bool, error) {
		return r.next.GetByID(ctx, id)
	})
}

func (r *MatchRepository) ListByTeam(ctx context.Context, team string) ([]match.Match, error) {
	return loadList(ctx, r.cache, PrefixMatch+"team:"+team, func(ctx context.Context) ([]match.Match, error) {
		return r.next.ListByTeam(ctx, team)
	})
}

func (r *MatchRepository) ListByWeek(ctx context.Context, week int) ([]match.Match, error) {
	return loadList(ctx, r.cache, PrefixMatch+"week:"+strconv.Itoa(week), func(ctx context.Context) ([]match.Match, error) {
		return r.next.ListByWeek(ctx, week)
	})
}

type EventRepository struct {
	next  event.Repository
	cache *basecache.Store
}

func NewEventRepository(next event.Repository, cache *basecache.Store) *EventRepository {
	return &EventRepository{next: next, cache: cache}
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (event.Event, bool, error) {
	return loadItem(ctx, r.cache, PrefixEvent+"id:"+id, func(ctx context.Context) (event.Event, bool, error) {
		return r.next.GetByID(ctx, id)
	})
}

func (r *EventRepository) ListByMatch(ctx context.Context, matchID int64) ([]event.Event, error) {
	return loadList(ctx, r.cache, PrefixEvent+"match:"+strconv.FormatInt(matchID, 10), func(ctx context.Context) ([]event.Event, error) {
		return r.next.ListByMatch(ctx, matchID)
	})
}

func (r *EventRepository) ListByType(ctx context.Context, eventType event.Type) ([]event.Event, error) {
	return loadList(ctx, r.cache, PrefixEvent+"type:"+string(eventType), func(ctx context.Context) ([]event.Event, error) {
		return r.next.ListByType(ctx, eventType)
	})
}

func (r *EventRepository) ListByPlayer(ctx context.Context, playerID int64) ([]event.Event, error) {
	return loadList(ctx, r.cache, PrefixEvent+"player:"+strconv.FormatInt(playerID, 10), func(ctx context.Context) ([]event.Event, error) {
		return r.next.ListByPlayer(ctx, playerID)
	})
}

func (r *EventRepository) ListByTeam(ctx context.Context, team string) ([]event.Event, error) {
	return loadList(ctx, r.cache, PrefixEvent+"team:"+team, func(ctx context.Context) ([]event.Event, error) {
		return r.next.ListByTeam(ctx, team)
	})
}

type LineupRepository struct {
	next  lineup.Repository
	cache *basecache.Store
}

func NewLineupRepository(next lineup.Repository, cache *basecache.Store) *LineupRepository {
	return &LineupRepository{next: next, cache: cache}
}

func (r *LineupRepository) List(ctx context.Context) ([]lineup.Entry, error) {
	return r.cloned(loadList(ctx, r.cache, PrefixLineup+"list", r.next.List))
}

func (r *LineupRepository) ListByMatch(ctx context.Context, matchID int64) ([]lineup.Entry, error) {
	return r.cloned(loadList(ctx, r.cache, PrefixLineup+"match:"+strconv.FormatInt(matchID, 10), func(ctx context.Context) ([]lineup.Entry, error) {
		return r.next.ListByMatch(ctx, matchID)
	}))
}

func (r *LineupRepository) ListByPlayer(ctx context.Context, playerID int64) ([]lineup.Entry, error) {
	return r.cloned(loadList(ctx, r.cache, PrefixLineup+"player:"+strconv.FormatInt(playerID, 10), func(ctx context.Context) ([]lineup.Entry, error) {
		return r.next.ListByPlayer(ctx, playerID)
	}))
}

func (r *LineupRepository) ListByTeam(ctx context.Context, team string) ([]lineup.Entry, error) {
	return r.cloned(loadList(ctx, r.cache, PrefixLineup+"team:"+team, func(ctx context.Context) ([]lineup.Entry, error) {
		return r.next.ListByTeam(ctx, team)
	}))
}

// cloned detaches card lists from the cached copy.
func (r *LineupRepository) cloned(items []lineup.Entry, err error) ([]lineup.Entry, error) {
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i] = items[i].Clone()
	}
	return items, nil
}
