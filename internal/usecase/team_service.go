package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/laliga-insights/internal/domain/event"
	"github.com/riskibarqy/laliga-insights/internal/domain/identity"
	"github.com/riskibarqy/laliga-insights/internal/domain/lineup"
	"github.com/riskibarqy/laliga-insights/internal/domain/match"
	"github.com/riskibarqy/laliga-insights/internal/domain/spatial"
	"github.com/riskibarqy/laliga-insights/internal/domain/team"
	"github.com/riskibarqy/laliga-insights/internal/domain/teamstats"
	"github.com/riskibarqy/laliga-insights/internal/domain/topscorers"
)

// TeamOverview is the season page of one team.
type TeamOverview struct {
	Team    team.Team
	Results teamstats.Results
	Scoring teamstats.Scoring
	Passing teamstats.Passing
	Matches []teamstats.MatchRow
	Squad   []teamstats.SquadRow
	Scorers []topscorers.Scorer
	Assists []topscorers.Assist
}

type TeamService struct {
	matchRepo  match.Repository
	eventRepo  event.Repository
	lineupRepo lineup.Repository
	teams      *team.Registry
}

func NewTeamService(matchRepo match.Repository, eventRepo event.Repository, lineupRepo lineup.Repository, teams *team.Registry) *TeamService {
	if teams == nil {
		teams = team.LaLiga2015()
	}
	return &TeamService{
		matchRepo:  matchRepo,
		eventRepo:  eventRepo,
		lineupRepo: lineupRepo,
		teams:      teams,
	}
}

func (s *TeamService) Overview(ctx context.Context, teamID int) (TeamOverview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Overview")
	defer span.End()

	item, err := s.lookup(teamID)
	if err != nil {
		return TeamOverview{}, err
	}

	matches, err := s.matchRepo.ListByTeam(ctx, item.Name)
	if err != nil {
		return TeamOverview{}, fmt.Errorf("list matches: %w", err)
	}

	// Possession needs both sides of every match.
	events := make([]event.Event, 0)
	for _, m := range matches {
		matchEvents, err := s.eventRepo.ListByMatch(ctx, m.ID)
		if err != nil {
			return TeamOverview{}, fmt.Errorf("list events match=%d: %w", m.ID, err)
		}
		events = append(events, matchEvents...)
	}

	lineups, err := s.lineupRepo.ListByTeam(ctx, item.Name)
	if err != nil {
		return TeamOverview{}, fmt.Errorf("list lineups: %w", err)
	}

	resolved, err := resolveIdentity(identity.Input{Lineups: lineups, Events: events})
	if err != nil {
		return TeamOverview{}, err
	}

	return TeamOverview{
		Team:    item,
		Results: teamstats.ResultsFor(item.Name, matches),
		Scoring: teamstats.ScoringFor(item.Name, matches, resolved.Events),
		Passing: teamstats.PassingFor(item.Name, resolved.Events),
		Matches: teamstats.MatchList(item.Name, matches),
		Squad:   teamstats.Squad(item.Name, resolved.Lineups),
		Scorers: topscorers.ForTeam(topscorers.Scorers(resolved.Events), item.Name),
		Assists: topscorers.AssistsForTeam(topscorers.Assists(resolved.Events), item.Name),
	}, nil
}

// Shots returns every shot the team took during the season, unmirrored.
func (s *TeamService) Shots(ctx context.Context, teamID int) ([]spatial.ShotPoint, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Shots")
	defer span.End()

	item, err := s.lookup(teamID)
	if err != nil {
		return nil, err
	}

	events, err := s.eventRepo.ListByTeam(ctx, item.Name)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	lineups, err := s.lineupRepo.ListByTeam(ctx, item.Name)
	if err != nil {
		return nil, fmt.Errorf("list lineups: %w", err)
	}

	resolved, err := resolveIdentity(identity.Input{
		Lineups: lineups,
		Events:  event.OfType(events, event.TypeShot),
	})
	if err != nil {
		return nil, err
	}
	return spatial.ShotMap(resolved.Events, ""), nil
}

func (s *TeamService) lookup(teamID int) (team.Team, error) {
	if teamID <= 0 {
		return team.Team{}, fmt.Errorf("%w: team id must be positive", ErrInvalidInput)
	}
	item, ok := s.teams.ByID(teamID)
	if !ok {
		return team.Team{}, fmt.Errorf("%w: team=%d", ErrNotFound, teamID)
	}
	return item, nil
}
