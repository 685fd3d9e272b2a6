package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/laliga-insights/internal/domain/event"
	"github.com/riskibarqy/laliga-insights/internal/infrastructure/repository/memory"
	eventmock "github.com/riskibarqy/laliga-insights/internal/mocks/domain/event"
	lineupmock "github.com/riskibarqy/laliga-insights/internal/mocks/domain/lineup"
	matchmock "github.com/riskibarqy/laliga-insights/internal/mocks/domain/match"
	"github.com/stretchr/testify/mock"
)

func TestLeagueService_Standings_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.WithValue(context.Background(), "trace_id", "trace-456")
	matchRepo := matchmock.NewRepository(t)
	eventRepo := eventmock.NewRepository(t)
	lineupRepo := lineupmock.NewRepository(t)

	service := NewLeagueService(matchRepo, eventRepo, lineupRepo, nil)
	matchRepo.
		On("List", mock.MatchedBy(func(v context.Context) bool { return v == ctx })).
		Return(memory.SeedMatches(), nil).
		Once()

	got, err := service.Standings(ctx)
	if err != nil {
		t.Fatalf("standings: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("unexpected row count: got=%d want=4", len(got))
	}
	if got[0].Team != "Real Madrid" || got[0].Points != 6 || got[0].TeamID != 19 {
		t.Fatalf("unexpected leader: %+v", got[0])
	}
	if got[2].Team != "Barcelona" || got[2].GoalDifference != -2 {
		t.Fatalf("unexpected third row: %+v", got[2])
	}
}

func TestLeagueService_Standings_RepositoryErrorUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	matchRepo := matchmock.NewRepository(t)
	service := NewLeagueService(matchRepo, eventmock.NewRepository(t), lineupmock.NewRepository(t), nil)

	repoErr := errors.New("db down")
	matchRepo.
		On("List", mock.MatchedBy(func(v context.Context) bool { return v == ctx })).
		Return(nil, repoErr).
		Once()

	_, err := service.Standings(ctx)
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected wrapped repository error, got %v", err)
	}
}

func TestLeagueService_TopScorers_ResolvesNicknamesUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	eventRepo := eventmock.NewRepository(t)
	lineupRepo := lineupmock.NewRepository(t)
	service := NewLeagueService(matchmock.NewRepository(t), eventRepo, lineupRepo, nil)

	eventRepo.
		On("ListByType", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), event.TypeShot).
		Return(event.OfType(memory.SeedEvents(), event.TypeShot), nil).
		Once()
	lineupRepo.
		On("List", mock.MatchedBy(func(v context.Context) bool { return v == ctx })).
		Return(memory.SeedLineups(), nil).
		Once()

	got, err := service.TopScorers(ctx, 2)
	if err != nil {
		t.Fatalf("top scorers: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("unexpected scorer count: got=%d want=2", len(got))
	}
	if got[0].Player != "Cristiano Ronaldo" || got[0].Goals != 1 {
		t.Fatalf("unexpected first scorer: %+v", got[0])
	}
}

func TestLeagueService_TopAssistsUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	eventRepo := eventmock.NewRepository(t)
	lineupRepo := lineupmock.NewRepository(t)
	service := NewLeagueService(matchmock.NewRepository(t), eventRepo, lineupRepo, nil)

	seed := memory.SeedEvents()
	eventRepo.
		On("ListByType", mock.Anything, event.TypeShot).
		Return(event.OfType(seed, event.TypeShot), nil).
		Once()
	eventRepo.
		On("ListByType", mock.Anything, event.TypePass).
		Return(event.OfType(seed, event.TypePass), nil).
		Once()
	lineupRepo.
		On("List", mock.Anything).
		Return(memory.SeedLineups(), nil).
		Once()

	got, err := service.TopAssists(ctx, 0)
	if err != nil {
		t.Fatalf("top assists: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("unexpected assist count: got=%d want=3", len(got))
	}
	if got[0].Player != "Gareth Bale" {
		t.Fatalf("unexpected first assistant: %+v", got[0])
	}
}

func TestLeagueService_TopScorers_InvalidLimit(t *testing.T) {
	t.Parallel()

	service := NewLeagueService(matchmock.NewRepository(t), eventmock.NewRepository(t), lineupmock.NewRepository(t), nil)

	for _, limit := range []int{-1, MaxListLimit + 1} {
		if _, err := service.TopScorers(context.Background(), limit); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("limit=%d: expected ErrInvalidInput, got %v", limit, err)
		}
	}
}

func TestLeagueService_ListTeams(t *testing.T) {
	t.Parallel()

	service := NewLeagueService(matchmock.NewRepository(t), eventmock.NewRepository(t), lineupmock.NewRepository(t), nil)
	if got := service.ListTeams(context.Background()); len(got) != 20 {
		t.Fatalf("unexpected team count: got=%d want=20", len(got))
	}
}
