package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/placarjuarez/placar-api/models"
	"github.com/placarjuarez/placar-api/repositories"
)

type DanceInput struct {
	TournamentID int       `json:"tournament_id"`
	TeamID       int       `json:"team_id"`
	Date         time.Time `json:"date"`
	StartTime    *string   `json:"start_time"`
	Placement    int       `json:"placement"`
}

type DanceService interface {
	Create(ctx context.Context, input DanceInput) (*models.DancePerformance, error)
	Get(ctx context.Context, id int) (*models.DancePerformance, error)
	ListByTournament(ctx context.Context, tournamentID int, minPlacement, maxPlacement *int) ([]*models.DancePerformance, error)
	Update(ctx context.Context, id int, input DanceInput) (*models.DancePerformance, error)
	Delete(ctx context.Context, id int) error
}

type danceService struct {
	repo     repositories.DanceRepository
	teamRepo repositories.TeamRepository
}

func NewDanceService(repo repositories.DanceRepository, teamRepo repositories.TeamRepository) DanceService {
	return &danceService{repo: repo, teamRepo: teamRepo}
}

func (in DanceInput) validate() error {
	if in.Placement < models.PlacementDisqualified || in.Placement > 12 {
		return ErrDancePlacementInvalid
	}
	return nil
}

func (s *danceService) Create(ctx context.Context, input DanceInput) (*models.DancePerformance, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	dance := &models.DancePerformance{
		TournamentID: input.TournamentID,
		TeamID:       input.TeamID,
		Date:         input.Date,
		StartTime:    input.StartTime,
		Placement:    input.Placement,
	}
	if err := s.repo.Create(ctx, dance); err != nil {
		return nil, fmt.Errorf("failed to create dance performance: %w", err)
	}
	return dance, nil
}

func (s *danceService) Get(ctx context.Context, id int) (*models.DancePerformance, error) {
	dance, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrDanceNotFound) {
			return nil, ErrDanceNotFound
		}
		return nil, err
	}
	if team, err := s.teamRepo.GetByID(ctx, dance.TeamID); err == nil {
		dance.Team = team
	}
	return dance, nil
}

func (s *danceService) ListByTournament(ctx context.Context, tournamentID int, minPlacement, maxPlacement *int) ([]*models.DancePerformance, error) {
	return s.repo.ListByTournament(ctx, tournamentID, minPlacement, maxPlacement)
}

func (s *danceService) Update(ctx context.Context, id int, input DanceInput) (*models.DancePerformance, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	dance, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrDanceNotFound) {
			return nil, ErrDanceNotFound
		}
		return nil, err
	}
	dance.TeamID = input.TeamID
	dance.Date = input.Date
	dance.StartTime = input.StartTime
	dance.Placement = input.Placement
	if err := s.repo.Update(ctx, dance); err != nil {
		if errors.Is(err, repositories.ErrDanceNotFound) {
			return nil, ErrDanceNotFound
		}
		return nil, err
	}
	return dance, nil
}

func (s *danceService) Delete(ctx context.Context, id int) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrDanceNotFound) {
		return ErrDanceNotFound
	}
	return err
}
