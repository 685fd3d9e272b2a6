package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/laliga-insights/internal/domain/event"
	"github.com/riskibarqy/laliga-insights/internal/domain/identity"
	"github.com/riskibarqy/laliga-insights/internal/domain/lineup"
	"github.com/riskibarqy/laliga-insights/internal/domain/match"
	"github.com/riskibarqy/laliga-insights/internal/domain/matchstats"
	"github.com/riskibarqy/laliga-insights/internal/domain/spatial"
	"github.com/riskibarqy/laliga-insights/internal/domain/timeline"
)

const (
	SideHome = "home"
	SideAway = "away"

	MaxWeek = 38
)

// MatchLineups holds both squads plus the formation spots of the starters.
type MatchLineups struct {
	Home      matchstats.Squad
	Away      matchstats.Squad
	HomeSpots []spatial.FormationSpot
	AwaySpots []spatial.FormationSpot
}

type MatchService struct {
	matchRepo  match.Repository
	eventRepo  event.Repository
	lineupRepo lineup.Repository
}

func NewMatchService(matchRepo match.Repository, eventRepo event.Repository, lineupRepo lineup.Repository) *MatchService {
	return &MatchService{
		matchRepo:  matchRepo,
		eventRepo:  eventRepo,
		lineupRepo: lineupRepo,
	}
}

// matchBundle is one match with its identity-resolved events and lineups.
type matchBundle struct {
	Match      match.Match
	Events     []event.Event
	Lineups    []lineup.Entry
	StartingXI []event.Event
}

// ListByWeek returns the matches of a week, or the whole season for week 0.
func (s *MatchService) ListByWeek(ctx context.Context, week int) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListByWeek")
	defer span.End()

	if week < 0 || week > MaxWeek {
		return nil, fmt.Errorf("%w: week must be between 0 and %d", ErrInvalidInput, MaxWeek)
	}

	var (
		items []match.Match
		err   error
	)
	if week == 0 {
		items, err = s.matchRepo.List(ctx)
	} else {
		items, err = s.matchRepo.ListByWeek(ctx, week)
	}
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return items, nil
}

func (s *MatchService) Get(ctx context.Context, matchID int64) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Get")
	defer span.End()

	return s.getMatch(ctx, matchID)
}

func (s *MatchService) Timeline(ctx context.Context, matchID int64) ([]timeline.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Timeline")
	defer span.End()

	bundle, err := s.load(ctx, matchID)
	if err != nil {
		return nil, err
	}
	return timeline.Build(bundle.Events, bundle.Lineups), nil
}

func (s *MatchService) Stats(ctx context.Context, matchID int64) (matchstats.Comparison, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Stats")
	defer span.End()

	bundle, err := s.load(ctx, matchID)
	if err != nil {
		return matchstats.Comparison{}, err
	}
	return matchstats.Compare(bundle.Match, bundle.Events, bundle.Lineups), nil
}

func (s *MatchService) Lineups(ctx context.Context, matchID int64) (MatchLineups, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Lineups")
	defer span.End()

	bundle, err := s.load(ctx, matchID)
	if err != nil {
		return MatchLineups{}, err
	}

	home, away := matchstats.SplitLineups(bundle.Match, bundle.StartingXI, bundle.Lineups)
	out := MatchLineups{
		Home:      home,
		Away:      away,
		HomeSpots: []spatial.FormationSpot{},
		AwaySpots: []spatial.FormationSpot{},
	}
	for _, xi := range bundle.StartingXI {
		switch {
		case bundle.Match.IsHome(xi.Team):
			out.HomeSpots = spatial.Formation(xi, true)
		case bundle.Match.Involves(xi.Team):
			out.AwaySpots = spatial.Formation(xi, false)
		}
	}
	return out, nil
}

func (s *MatchService) Shots(ctx context.Context, matchID int64) ([]spatial.ShotPoint, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Shots")
	defer span.End()

	bundle, err := s.load(ctx, matchID)
	if err != nil {
		return nil, err
	}
	return spatial.ShotMap(bundle.Events, bundle.Match.HomeTeam), nil
}

func (s *MatchService) XGFlow(ctx context.Context, matchID int64) (matchstats.Flow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.XGFlow")
	defer span.End()

	bundle, err := s.load(ctx, matchID)
	if err != nil {
		return matchstats.Flow{}, err
	}
	return matchstats.XGFlow(bundle.Match, bundle.Events), nil
}

// PassNetwork builds the pass network of the home or away side of a match.
func (s *MatchService) PassNetwork(ctx context.Context, matchID int64, side string) (spatial.Network, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.PassNetwork")
	defer span.End()

	side = strings.ToLower(strings.TrimSpace(side))
	if side != SideHome && side != SideAway {
		return spatial.Network{}, fmt.Errorf("%w: side must be %q or %q", ErrInvalidInput, SideHome, SideAway)
	}

	bundle, err := s.load(ctx, matchID)
	if err != nil {
		return spatial.Network{}, err
	}

	teamName := bundle.Match.HomeTeam
	if side == SideAway {
		teamName = bundle.Match.Opponent(teamName)
	}
	return spatial.PassNetwork(teamName, bundle.Events), nil
}

func (s *MatchService) getMatch(ctx context.Context, matchID int64) (match.Match, error) {
	if matchID <= 0 {
		return match.Match{}, fmt.Errorf("%w: match id must be positive", ErrInvalidInput)
	}

	item, ok, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !ok {
		return match.Match{}, fmt.Errorf("%w: match=%d", ErrNotFound, matchID)
	}
	return item, nil
}

func (s *MatchService) load(ctx context.Context, matchID int64) (matchBundle, error) {
	item, err := s.getMatch(ctx, matchID)
	if err != nil {
		return matchBundle{}, err
	}

	events, err := s.eventRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return matchBundle{}, fmt.Errorf("list events: %w", err)
	}
	lineups, err := s.lineupRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return matchBundle{}, fmt.Errorf("list lineups: %w", err)
	}

	resolved, err := resolveIdentity(identity.Input{
		Lineups:    lineups,
		Events:     events,
		StartingXI: event.OfType(events, event.TypeStartingXI),
	})
	if err != nil {
		return matchBundle{}, err
	}

	return matchBundle{
		Match:      item,
		Events:     resolved.Events,
		Lineups:    resolved.Lineups,
		StartingXI: resolved.StartingXI,
	}, nil
}
