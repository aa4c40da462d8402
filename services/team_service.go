package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/placarjuarez/placar-api/models"
	"github.com/placarjuarez/placar-api/repositories"
)

type TeamInput struct {
	Name  string `json:"name"`
	Year  int    `json:"year"`
	Grade string `json:"grade"`
}

type TeamService interface {
	Create(ctx context.Context, input TeamInput) (*models.Team, error)
	Get(ctx context.Context, id int) (*models.Team, error)
	List(ctx context.Context, year *int) ([]*models.Team, error)
	Update(ctx context.Context, id int, input TeamInput) (*models.Team, error)
	Delete(ctx context.Context, id int) error
}

type teamService struct {
	repo repositories.TeamRepository
}

func NewTeamService(repo repositories.TeamRepository) TeamService {
	return &teamService{repo: repo}
}

func (in TeamInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrTeamNameRequired
	}
	if in.Year <= 0 {
		return ErrTeamYearInvalid
	}
	return nil
}

func (s *teamService) Create(ctx context.Context, input TeamInput) (*models.Team, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	team := &models.Team{Name: strings.TrimSpace(input.Name), Year: input.Year, Grade: input.Grade}
	if err := s.repo.Create(ctx, team); err != nil {
		if errors.Is(err, repositories.ErrTeamNameYearTaken) {
			return nil, ErrTeamNameConflict
		}
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	return team, nil
}

func (s *teamService) Get(ctx context.Context, id int) (*models.Team, error) {
	team, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}
	return team, nil
}

func (s *teamService) List(ctx context.Context, year *int) ([]*models.Team, error) {
	return s.repo.List(ctx, year)
}

func (s *teamService) Update(ctx context.Context, id int, input TeamInput) (*models.Team, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	team := &models.Team{ID: id, Name: strings.TrimSpace(input.Name), Year: input.Year, Grade: input.Grade}
	if err := s.repo.Update(ctx, team); err != nil {
		switch {
		case errors.Is(err, repositories.ErrTeamNotFound):
			return nil, ErrTeamNotFound
		case errors.Is(err, repositories.ErrTeamNameYearTaken):
			return nil, ErrTeamNameConflict
		}
		return nil, err
	}
	return team, nil
}

func (s *teamService) Delete(ctx context.Context, id int) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrTeamNotFound) {
		return ErrTeamNotFound
	}
	return err
}
