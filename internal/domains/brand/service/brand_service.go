package service

import (
	"context"

	"github.com/google/uuid"

	"vitrine-backend/internal/domains/brand"
)

type brandService struct {
	repo brand.Repository
}

func NewBrandService(repo brand.Repository) brand.Service {
	return &brandService{repo: repo}
}

func (s *brandService) GetAll(ctx context.Context) ([]brand.Brand, error) {
	return s.repo.List(ctx)
}

func (s *brandService) Create(ctx context.Context, req brand.CreateRequest) (*brand.Brand, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	b := brand.Brand{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Logo:        req.Logo,
		Website:     req.Website,
	}

	if err := s.repo.Add(ctx, b); err != nil {
		return nil, err
	}

	return &b, nil
}

func (s *brandService) Update(ctx context.Context, id string, patch brand.Patch) (*brand.Brand, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *brandService) Delete(ctx context.Context, id string) error {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return brand.ErrNotFound
	}
	return nil
}
