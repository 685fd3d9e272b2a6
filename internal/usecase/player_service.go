package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/laliga-insights/internal/domain/event"
	"github.com/riskibarqy/laliga-insights/internal/domain/identity"
	"github.com/riskibarqy/laliga-insights/internal/domain/lineup"
	"github.com/riskibarqy/laliga-insights/internal/domain/pitch"
	"github.com/riskibarqy/laliga-insights/internal/domain/playerstats"
	"github.com/riskibarqy/laliga-insights/internal/domain/playingtime"
	"github.com/riskibarqy/laliga-insights/internal/domain/spatial"
)

// PlayerReport is the season page of one player.
type PlayerReport struct {
	Profile     playerstats.Profile
	Minutes     int
	PerMatch    []playingtime.MatchMinutes
	Appearances playerstats.Appearances
	Positions   []playerstats.PositionCount
	Season      playerstats.SeasonStats
}

type PlayerService struct {
	eventRepo  event.Repository
	lineupRepo lineup.Repository
}

func NewPlayerService(eventRepo event.Repository, lineupRepo lineup.Repository) *PlayerService {
	return &PlayerService{
		eventRepo:  eventRepo,
		lineupRepo: lineupRepo,
	}
}

// playerBundle is the season data of one player. Events and StartingXI carry
// nicknames; Recorded keeps the stored lineup rows with registered full names.
type playerBundle struct {
	Recorded   []lineup.Entry
	Events     []event.Event
	StartingXI []event.Event
}

func (s *PlayerService) Profile(ctx context.Context, playerID int64) (PlayerReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Profile")
	defer span.End()

	bundle, err := s.load(ctx, playerID, true)
	if err != nil {
		return PlayerReport{}, err
	}

	profile, ok := playerstats.ProfileOf(playerID, bundle.Recorded)
	if !ok {
		return PlayerReport{}, fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}

	perMatch := playingtime.PerMatch(playerID, bundle.Events, bundle.StartingXI)
	minutes := 0
	for _, mm := range perMatch {
		minutes += mm.Minutes
	}

	return PlayerReport{
		Profile:     profile,
		Minutes:     minutes,
		PerMatch:    perMatch,
		Appearances: playerstats.CountAppearances(playerID, bundle.StartingXI, bundle.Events),
		Positions:   playerstats.Positions(playerID, bundle.StartingXI),
		Season:      playerstats.Season(playerID, bundle.Events, minutes),
	}, nil
}

// Heatmap smooths the locations of every located action of the player.
func (s *PlayerService) Heatmap(ctx context.Context, playerID int64) (spatial.Grid, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Heatmap")
	defer span.End()

	bundle, err := s.load(ctx, playerID, false)
	if err != nil {
		return spatial.Grid{}, err
	}

	points := make([]pitch.Point, 0, len(bundle.Events))
	for _, e := range bundle.Events {
		if e.PlayerID != playerID || e.Location == nil {
			continue
		}
		points = append(points, *e.Location)
	}
	return spatial.Heatmap(points), nil
}

func (s *PlayerService) Shots(ctx context.Context, playerID int64) ([]spatial.ShotPoint, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Shots")
	defer span.End()

	bundle, err := s.load(ctx, playerID, false)
	if err != nil {
		return nil, err
	}

	shots := make([]event.Event, 0)
	for _, e := range bundle.Events {
		if e.Type == event.TypeShot && e.PlayerID == playerID {
			shots = append(shots, e)
		}
	}
	return spatial.ShotMap(shots, ""), nil
}

func (s *PlayerService) load(ctx context.Context, playerID int64, withStartingXI bool) (playerBundle, error) {
	if playerID <= 0 {
		return playerBundle{}, fmt.Errorf("%w: player id must be positive", ErrInvalidInput)
	}

	lineups, err := s.lineupRepo.ListByPlayer(ctx, playerID)
	if err != nil {
		return playerBundle{}, fmt.Errorf("list lineups: %w", err)
	}
	if len(lineups) == 0 {
		return playerBundle{}, fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}

	events, err := s.eventRepo.ListByPlayer(ctx, playerID)
	if err != nil {
		return playerBundle{}, fmt.Errorf("list events: %w", err)
	}

	var startingXI []event.Event
	if withStartingXI {
		startingXI, err = s.eventRepo.ListByType(ctx, event.TypeStartingXI)
		if err != nil {
			return playerBundle{}, fmt.Errorf("list starting xi: %w", err)
		}
	}

	resolved, err := resolveIdentity(identity.Input{
		Lineups:    lineups,
		Events:     events,
		StartingXI: startingXI,
	})
	if err != nil {
		return playerBundle{}, err
	}
	return playerBundle{
		Recorded:   lineups,
		Events:     resolved.Events,
		StartingXI: resolved.StartingXI,
	}, nil
}
