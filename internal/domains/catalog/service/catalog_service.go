package service

import (
	"context"

	"github.com/google/uuid"

	"vitrine-backend/internal/domains/catalog"
	"vitrine-backend/internal/shared/utils"
)

type catalogService struct {
	repo catalog.Repository
}

func NewCatalogService(repo catalog.Repository) catalog.CatalogService {
	return &catalogService{repo: repo}
}

func (s *catalogService) GetCategories(ctx context.Context) ([]catalog.Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *catalogService) CreateCategory(ctx context.Context, req catalog.CreateCategoryRequest) (*catalog.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.GenerateSlug(req.Name)
	}

	c := catalog.Category{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Slug:        slug,
		Icon:        req.Icon,
		Color:       req.Color,
		Description: req.Description,
		Services:    []catalog.Service{},
	}

	if err := s.repo.AddCategory(ctx, c); err != nil {
		return nil, err
	}

	return &c, nil
}

func (s *catalogService) UpdateCategory(ctx context.Context, id string, patch catalog.CategoryPatch) (*catalog.Category, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	return s.repo.UpdateCategory(ctx, id, patch)
}

func (s *catalogService) DeleteCategory(ctx context.Context, id string) error {
	removed, err := s.repo.DeleteCategory(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return catalog.ErrCategoryNotFound
	}
	return nil
}

func (s *catalogService) CreateService(ctx context.Context, categoryID string, req catalog.CreateServiceRequest) (*catalog.Service, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.GenerateSlug(req.Name)
	}

	svc := catalog.Service{
		ID:               uuid.New().String(),
		CategoryID:       categoryID,
		Name:             req.Name,
		Slug:             slug,
		Icon:             req.Icon,
		ShortDescription: req.ShortDescription,
		FullDescription:  req.FullDescription,
		Prestations:      req.Prestations,
		FAQs:             req.FAQs,
	}
	svc.Normalize()

	if err := s.repo.AddService(ctx, svc); err != nil {
		return nil, err
	}

	return &svc, nil
}

func (s *catalogService) UpdateService(ctx context.Context, id string, patch catalog.ServicePatch) (*catalog.Service, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	return s.repo.UpdateService(ctx, id, patch)
}

func (s *catalogService) DeleteService(ctx context.Context, id string) error {
	removed, err := s.repo.DeleteService(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return catalog.ErrServiceNotFound
	}
	return nil
}
