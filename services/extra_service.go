package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/placarjuarez/placar-api/models"
	"github.com/placarjuarez/placar-api/repositories"
)

type ExtraInput struct {
	TournamentID int              `json:"tournament_id"`
	TeamID       int              `json:"team_id"`
	Kind         models.ExtraKind `json:"kind"`
	// Points is a positive magnitude; the kind decides the sign at
	// aggregation time.
	Points int    `json:"points"`
	Note   string `json:"note"`
}

type ExtraService interface {
	Create(ctx context.Context, input ExtraInput) (*models.Extra, error)
	Get(ctx context.Context, id int) (*models.Extra, error)
	ListByTournament(ctx context.Context, tournamentID int) ([]*models.Extra, error)
	Update(ctx context.Context, id int, input ExtraInput) (*models.Extra, error)
	Delete(ctx context.Context, id int) error
}

type extraService struct {
	repo     repositories.ExtraRepository
	teamRepo repositories.TeamRepository
}

func NewExtraService(repo repositories.ExtraRepository, teamRepo repositories.TeamRepository) ExtraService {
	return &extraService{repo: repo, teamRepo: teamRepo}
}

func (in ExtraInput) validate() error {
	switch in.Kind {
	case models.ExtraDonation, models.ExtraPenalty:
	default:
		return ErrExtraKindInvalid
	}
	if in.Points <= 0 {
		return ErrExtraPointsInvalid
	}
	return nil
}

func (s *extraService) Create(ctx context.Context, input ExtraInput) (*models.Extra, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	extra := &models.Extra{
		TournamentID: input.TournamentID,
		TeamID:       input.TeamID,
		Kind:         input.Kind,
		Points:       input.Points,
		Note:         input.Note,
	}
	if err := s.repo.Create(ctx, extra); err != nil {
		return nil, fmt.Errorf("failed to create point entry: %w", err)
	}
	return extra, nil
}

func (s *extraService) Get(ctx context.Context, id int) (*models.Extra, error) {
	extra, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrExtraNotFound) {
			return nil, ErrExtraNotFound
		}
		return nil, err
	}
	if team, err := s.teamRepo.GetByID(ctx, extra.TeamID); err == nil {
		extra.Team = team
	}
	return extra, nil
}

func (s *extraService) ListByTournament(ctx context.Context, tournamentID int) ([]*models.Extra, error) {
	return s.repo.ListByTournament(ctx, tournamentID)
}

func (s *extraService) Update(ctx context.Context, id int, input ExtraInput) (*models.Extra, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	extra, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrExtraNotFound) {
			return nil, ErrExtraNotFound
		}
		return nil, err
	}
	extra.TeamID = input.TeamID
	extra.Kind = input.Kind
	extra.Points = input.Points
	extra.Note = input.Note
	if err := s.repo.Update(ctx, extra); err != nil {
		if errors.Is(err, repositories.ErrExtraNotFound) {
			return nil, ErrExtraNotFound
		}
		return nil, err
	}
	return extra, nil
}

func (s *extraService) Delete(ctx context.Context, id int) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrExtraNotFound) {
		return ErrExtraNotFound
	}
	return err
}
