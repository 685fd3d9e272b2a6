package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/laliga-insights/internal/domain/match"
	"github.com/riskibarqy/laliga-insights/internal/infrastructure/repository/memory"
	eventmock "github.com/riskibarqy/laliga-insights/internal/mocks/domain/event"
	lineupmock "github.com/riskibarqy/laliga-insights/internal/mocks/domain/lineup"
	matchmock "github.com/riskibarqy/laliga-insights/internal/mocks/domain/match"
	"github.com/stretchr/testify/mock"
)

func newSeedMatchService() *MatchService {
	data := memory.SeedDataset()
	return NewMatchService(
		memory.NewMatchRepository(data),
		memory.NewEventRepository(data),
		memory.NewLineupRepository(data),
	)
}

func TestMatchService_ListByWeek(t *testing.T) {
	t.Parallel()

	service := newSeedMatchService()
	ctx := context.Background()

	all, err := service.ListByWeek(ctx, 0)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("unexpected match count: got=%d want=3", len(all))
	}

	week32, err := service.ListByWeek(ctx, 32)
	if err != nil {
		t.Fatalf("list week 32: %v", err)
	}
	if len(week32) != 2 {
		t.Fatalf("unexpected week 32 count: got=%d want=2", len(week32))
	}

	for _, week := range []int{-1, MaxWeek + 1} {
		if _, err := service.ListByWeek(ctx, week); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("week=%d: expected ErrInvalidInput, got %v", week, err)
		}
	}
}

func TestMatchService_Get_NotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	matchRepo := matchmock.NewRepository(t)
	service := NewMatchService(matchRepo, eventmock.NewRepository(t), lineupmock.NewRepository(t))

	matchRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), int64(42)).
		Return(match.Match{}, false, nil).
		Once()

	_, err := service.Get(ctx, 42)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMatchService_Get_InvalidID(t *testing.T) {
	t.Parallel()

	service := NewMatchService(matchmock.NewRepository(t), eventmock.NewRepository(t), lineupmock.NewRepository(t))
	if _, err := service.Get(context.Background(), 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestMatchService_Timeline(t *testing.T) {
	t.Parallel()

	got, err := newSeedMatchService().Timeline(context.Background(), memory.SeedMatchClasico)
	if err != nil {
		t.Fatalf("timeline: %v", err)
	}
	if len(got) == 0 {
		t.Fatalf("expected timeline entries")
	}
	if got[0].Minute != 34 || got[0].Player != "Sergio Ramos" {
		t.Fatalf("unexpected first entry: %+v", got[0])
	}

	found := false
	for _, entry := range got {
		if entry.Minute == 56 && entry.Player == "Gerard Piqué (a. Ivan Rakitić)" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected resolved goal entry, got %+v", got)
	}
}

func TestMatchService_Stats(t *testing.T) {
	t.Parallel()

	got, err := newSeedMatchService().Stats(context.Background(), memory.SeedMatchClasico)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if got.Home.Team != "Barcelona" || got.Away.Team != "Real Madrid" {
		t.Fatalf("unexpected sides: home=%s away=%s", got.Home.Team, got.Away.Team)
	}
	if got.Home.Shots != 2 || got.Away.Shots != 2 {
		t.Fatalf("unexpected shots: home=%d away=%d", got.Home.Shots, got.Away.Shots)
	}
	if got.Away.YellowCards != 2 || got.Away.RedCards != 1 {
		t.Fatalf("unexpected away cards: yellow=%d red=%d", got.Away.YellowCards, got.Away.RedCards)
	}
}

func TestMatchService_Lineups(t *testing.T) {
	t.Parallel()

	got, err := newSeedMatchService().Lineups(context.Background(), memory.SeedMatchClasico)
	if err != nil {
		t.Fatalf("lineups: %v", err)
	}
	if got.Home.Formation != 433 || got.Away.Formation != 4231 {
		t.Fatalf("unexpected formations: home=%d away=%d", got.Home.Formation, got.Away.Formation)
	}
	if len(got.Home.Starters) != 4 || len(got.Home.Bench) != 1 {
		t.Fatalf("unexpected home squad: starters=%d bench=%d", len(got.Home.Starters), len(got.Home.Bench))
	}
	if got.Home.Bench[0].PlayerID != memory.SeedPlayerArda {
		t.Fatalf("unexpected bench player: %+v", got.Home.Bench[0])
	}
	if len(got.HomeSpots) != 4 || len(got.AwaySpots) != 5 {
		t.Fatalf("unexpected formation spots: home=%d away=%d", len(got.HomeSpots), len(got.AwaySpots))
	}
}

func TestMatchService_ShotsAndXGFlow(t *testing.T) {
	t.Parallel()

	service := newSeedMatchService()
	ctx := context.Background()

	shots, err := service.Shots(ctx, memory.SeedMatchClasico)
	if err != nil {
		t.Fatalf("shots: %v", err)
	}
	if len(shots) != 4 {
		t.Fatalf("unexpected shot count: got=%d want=4", len(shots))
	}

	flow, err := service.XGFlow(ctx, memory.SeedMatchClasico)
	if err != nil {
		t.Fatalf("xg flow: %v", err)
	}
	last := flow.Away[len(flow.Away)-1]
	if last.XG != 0.76 {
		t.Fatalf("unexpected away xg: got=%v want=0.76", last.XG)
	}
}

func TestMatchService_PassNetwork(t *testing.T) {
	t.Parallel()

	service := newSeedMatchService()
	ctx := context.Background()

	got, err := service.PassNetwork(ctx, memory.SeedMatchClasico, "Home")
	if err != nil {
		t.Fatalf("pass network: %v", err)
	}
	if got.Team != "Barcelona" {
		t.Fatalf("unexpected team: %s", got.Team)
	}
	if len(got.Nodes) != 2 || len(got.Edges) != 1 {
		t.Fatalf("unexpected network: nodes=%d edges=%d", len(got.Nodes), len(got.Edges))
	}
	if got.Edges[0].From != "Ivan Rakitić" || got.Edges[0].To != "Lionel Messi" {
		t.Fatalf("unexpected edge: %+v", got.Edges[0])
	}

	away, err := service.PassNetwork(ctx, memory.SeedMatchClasico, " away ")
	if err != nil {
		t.Fatalf("away pass network: %v", err)
	}
	if away.Team != "Real Madrid" {
		t.Fatalf("unexpected away team: %s", away.Team)
	}

	if _, err := service.PassNetwork(ctx, memory.SeedMatchClasico, "neutral"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
