package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/laliga-insights/internal/domain/event"
	"github.com/riskibarqy/laliga-insights/internal/domain/identity"
	"github.com/riskibarqy/laliga-insights/internal/domain/leaguestanding"
	"github.com/riskibarqy/laliga-insights/internal/domain/lineup"
	"github.com/riskibarqy/laliga-insights/internal/domain/match"
	"github.com/riskibarqy/laliga-insights/internal/domain/team"
	"github.com/riskibarqy/laliga-insights/internal/domain/topscorers"
)

// MaxListLimit bounds the scorer and assist tables.
const MaxListLimit = 100

type LeagueService struct {
	matchRepo  match.Repository
	eventRepo  event.Repository
	lineupRepo lineup.Repository
	teams      *team.Registry
}

func NewLeagueService(matchRepo match.Repository, eventRepo event.Repository, lineupRepo lineup.Repository, teams *team.Registry) *LeagueService {
	if teams == nil {
		teams = team.LaLiga2015()
	}
	return &LeagueService{
		matchRepo:  matchRepo,
		eventRepo:  eventRepo,
		lineupRepo: lineupRepo,
		teams:      teams,
	}
}

func (s *LeagueService) Teams() *team.Registry {
	return s.teams
}

func (s *LeagueService) ListTeams(ctx context.Context) []team.Team {
	_, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListTeams")
	defer span.End()

	return s.teams.All()
}

func (s *LeagueService) Standings(ctx context.Context) ([]leaguestanding.Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.Standings")
	defer span.End()

	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return leaguestanding.Build(matches, s.teams), nil
}

func (s *LeagueService) TitleRace(ctx context.Context) ([]leaguestanding.RaceLine, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.TitleRace")
	defer span.End()

	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return leaguestanding.TitleRace(matches, s.teams), nil
}

func (s *LeagueService) TopScorers(ctx context.Context, limit int) ([]topscorers.Scorer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.TopScorers")
	defer span.End()

	if err := validateLimit(limit); err != nil {
		return nil, err
	}

	shots, err := s.eventRepo.ListByType(ctx, event.TypeShot)
	if err != nil {
		return nil, fmt.Errorf("list shots: %w", err)
	}
	resolved, err := s.resolveSeason(ctx, shots)
	if err != nil {
		return nil, err
	}
	return topscorers.Limit(topscorers.Scorers(resolved), limit), nil
}

func (s *LeagueService) TopAssists(ctx context.Context, limit int) ([]topscorers.Assist, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.TopAssists")
	defer span.End()

	if err := validateLimit(limit); err != nil {
		return nil, err
	}

	shots, err := s.eventRepo.ListByType(ctx, event.TypeShot)
	if err != nil {
		return nil, fmt.Errorf("list shots: %w", err)
	}
	passes, err := s.eventRepo.ListByType(ctx, event.TypePass)
	if err != nil {
		return nil, fmt.Errorf("list passes: %w", err)
	}
	resolved, err := s.resolveSeason(ctx, append(shots, passes...))
	if err != nil {
		return nil, err
	}
	return topscorers.Limit(topscorers.Assists(resolved), limit), nil
}

func (s *LeagueService) resolveSeason(ctx context.Context, events []event.Event) ([]event.Event, error) {
	lineups, err := s.lineupRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list lineups: %w", err)
	}
	out, err := resolveIdentity(identity.Input{Lineups: lineups, Events: events})
	if err != nil {
		return nil, err
	}
	return out.Events, nil
}

func validateLimit(limit int) error {
	if limit < 0 || limit > MaxListLimit {
		return fmt.Errorf("%w: limit must be between 0 and %d", ErrInvalidInput, MaxListLimit)
	}
	return nil
}

func resolveIdentity(in identity.Input) (identity.Output, error) {
	if in.Lineups == nil {
		in.Lineups = []lineup.Entry{}
	}
	if in.Events == nil {
		in.Events = []event.Event{}
	}
	out, err := identity.Resolve(in)
	if err != nil {
		return identity.Output{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return out, nil
}
