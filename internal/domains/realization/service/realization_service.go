package service

import (
	"context"

	"github.com/google/uuid"

	"vitrine-backend/internal/domains/realization"
)

type realizationService struct {
	repo realization.Repository
}

func NewRealizationService(repo realization.Repository) realization.Service {
	return &realizationService{repo: repo}
}

func (s *realizationService) GetAll(ctx context.Context, featuredOnly bool) ([]realization.Realization, error) {
	if featuredOnly {
		return s.repo.ListFeatured(ctx)
	}
	return s.repo.List(ctx)
}

func (s *realizationService) Create(ctx context.Context, req realization.CreateRequest) (*realization.Realization, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	item := realization.Realization{
		ID:           uuid.New().String(),
		Title:        req.Title,
		BuildingType: req.BuildingType,
		Location:     req.Location,
		Category:     req.Category,
		ServiceType:  req.ServiceType,
		Description:  req.Description,
		Image:        req.Image,
		BeforeImage:  req.BeforeImage,
		AfterImage:   req.AfterImage,
		Featured:     req.Featured,
	}

	if err := s.repo.Add(ctx, item); err != nil {
		return nil, err
	}

	return &item, nil
}

func (s *realizationService) Update(ctx context.Context, id string, patch realization.Patch) (*realization.Realization, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *realizationService) Delete(ctx context.Context, id string) error {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return realization.ErrNotFound
	}
	return nil
}
