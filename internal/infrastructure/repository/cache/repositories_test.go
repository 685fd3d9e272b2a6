package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/laliga-insights/internal/domain/match"
	basecache "github.com/riskibarqy/laliga-insights/internal/platform/cache"
)

type countingMatchRepo struct {
	calls int
	err   error
}

func (r *countingMatchRepo) List(context.Context) ([]match.Match, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return []match.Match{{ID: 1, Week: 1}, {ID: 2, Week: 2}}, nil
}

func (r *countingMatchRepo) GetByID(_ context.Context, id int64) (match.Match, bool, error) {
	r.calls++
	if id != 1 {
		return match.Match{}, false, nil
	}
	return match.Match{ID: 1}, true, nil
}

func (r *countingMatchRepo) ListByTeam(context.Context, string) ([]match.Match, error) {
	r.calls++
	return nil, nil
}

func (r *countingMatchRepo) ListByWeek(_ context.Context, week int) ([]match.Match, error) {
	r.calls++
	return []match.Match{{ID: int64(week)}}, nil
}

func TestMatchRepositoryCachesReads(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := &countingMatchRepo{}
	repo := NewMatchRepository(next, basecache.NewStore(time.Minute))

	for range 3 {
		items, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(items) != 2 {
			t.Fatalf("unexpected items: %+v", items)
		}
		items[0].ID = 99
	}
	if next.calls != 1 {
		t.Fatalf("expected one upstream call, got %d", next.calls)
	}

	items, _ := repo.List(ctx)
	if items[0].ID != 1 {
		t.Fatal("cached list must not alias caller slices")
	}

	for range 2 {
		if _, ok, _ := repo.GetByID(ctx, 5); ok {
			t.Fatal("expected missing match")
		}
	}
	if next.calls != 2 {
		t.Fatalf("expected cached miss, got %d calls", next.calls)
	}

	_, _ = repo.ListByWeek(ctx, 3)
	_, _ = repo.ListByWeek(ctx, 4)
	if next.calls != 4 {
		t.Fatalf("expected separate keys per week, got %d calls", next.calls)
	}
}

func TestMatchRepositoryDoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := &countingMatchRepo{err: errors.New("boom")}
	repo := NewMatchRepository(next, basecache.NewStore(time.Minute))

	if _, err := repo.List(ctx); err == nil {
		t.Fatal("expected error")
	}
	next.err = nil
	if _, err := repo.List(ctx); err != nil {
		t.Fatalf("expected recovery, got %v", err)
	}
	if next.calls != 2 {
		t.Fatalf("expected two upstream calls, got %d", next.calls)
	}
}
