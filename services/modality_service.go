package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/placarjuarez/placar-api/models"
	"github.com/placarjuarez/placar-api/repositories"
)

type ModalityInput struct {
	Name     string                  `json:"name"`
	Category models.ModalityCategory `json:"category"`
	HasScore bool                    `json:"has_score"`
	HasSets  bool                    `json:"has_sets"`
}

type ModalityService interface {
	Create(ctx context.Context, input ModalityInput) (*models.Modality, error)
	Get(ctx context.Context, id int) (*models.Modality, error)
	List(ctx context.Context) ([]*models.Modality, error)
	Update(ctx context.Context, id int, input ModalityInput) (*models.Modality, error)
	Delete(ctx context.Context, id int) error
}

type modalityService struct {
	repo repositories.ModalityRepository
}

func NewModalityService(repo repositories.ModalityRepository) ModalityService {
	return &modalityService{repo: repo}
}

func (in ModalityInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrModalityNameRequired
	}
	switch in.Category {
	case models.CategoryMale, models.CategoryFemale, models.CategoryMixed:
	default:
		return ErrModalityCategoryBad
	}
	if in.HasSets && !in.HasScore {
		return ErrModalitySetsNeedScore
	}
	return nil
}

func (s *modalityService) Create(ctx context.Context, input ModalityInput) (*models.Modality, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	modality := &models.Modality{
		Name:     strings.TrimSpace(input.Name),
		Category: input.Category,
		HasScore: input.HasScore,
		HasSets:  input.HasSets,
	}
	if err := s.repo.Create(ctx, modality); err != nil {
		return nil, fmt.Errorf("failed to create modality: %w", err)
	}
	return modality, nil
}

func (s *modalityService) Get(ctx context.Context, id int) (*models.Modality, error) {
	modality, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrModalityNotFound) {
			return nil, ErrModalityNotFound
		}
		return nil, err
	}
	return modality, nil
}

func (s *modalityService) List(ctx context.Context) ([]*models.Modality, error) {
	return s.repo.List(ctx)
}

func (s *modalityService) Update(ctx context.Context, id int, input ModalityInput) (*models.Modality, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	modality := &models.Modality{
		ID:       id,
		Name:     strings.TrimSpace(input.Name),
		Category: input.Category,
		HasScore: input.HasScore,
		HasSets:  input.HasSets,
	}
	if err := s.repo.Update(ctx, modality); err != nil {
		if errors.Is(err, repositories.ErrModalityNotFound) {
			return nil, ErrModalityNotFound
		}
		return nil, err
	}
	return modality, nil
}

func (s *modalityService) Delete(ctx context.Context, id int) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrModalityNotFound) {
		return ErrModalityNotFound
	}
	return err
}
