package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/placarjuarez/placar-api/models"
	"github.com/placarjuarez/placar-api/repositories"
)

type TournamentService interface {
	Create(ctx context.Context, name string, year int) (*models.Tournament, error)
	Get(ctx context.Context, id int) (*models.Tournament, error)
	List(ctx context.Context) ([]*models.Tournament, error)
	Update(ctx context.Context, id int, name string, year int) (*models.Tournament, error)
	Delete(ctx context.Context, id int) error
}

type tournamentService struct {
	repo repositories.TournamentRepository
}

func NewTournamentService(repo repositories.TournamentRepository) TournamentService {
	return &tournamentService{repo: repo}
}

func validateTournament(name string, year int) error {
	if strings.TrimSpace(name) == "" {
		return ErrTournamentNameRequired
	}
	if year <= 0 {
		return ErrTournamentYearInvalid
	}
	return nil
}

func (s *tournamentService) Create(ctx context.Context, name string, year int) (*models.Tournament, error) {
	if err := validateTournament(name, year); err != nil {
		return nil, err
	}
	tournament := &models.Tournament{Name: strings.TrimSpace(name), Year: year}
	if err := s.repo.Create(ctx, tournament); err != nil {
		return nil, fmt.Errorf("failed to create tournament: %w", err)
	}
	return tournament, nil
}

func (s *tournamentService) Get(ctx context.Context, id int) (*models.Tournament, error) {
	tournament, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}
	return tournament, nil
}

func (s *tournamentService) List(ctx context.Context) ([]*models.Tournament, error) {
	return s.repo.List(ctx)
}

func (s *tournamentService) Update(ctx context.Context, id int, name string, year int) (*models.Tournament, error) {
	if err := validateTournament(name, year); err != nil {
		return nil, err
	}
	tournament := &models.Tournament{ID: id, Name: strings.TrimSpace(name), Year: year}
	if err := s.repo.Update(ctx, tournament); err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}
	return tournament, nil
}

func (s *tournamentService) Delete(ctx context.Context, id int) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrTournamentNotFound) {
		return ErrTournamentNotFound
	}
	return err
}
