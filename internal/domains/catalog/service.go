package catalog

import "context"

type CatalogService interface {
	GetCategories(ctx context.Context) ([]Category, error)
	CreateCategory(ctx context.Context, req CreateCategoryRequest) (*Category, error)
	UpdateCategory(ctx context.Context, id string, patch CategoryPatch) (*Category, error)
	DeleteCategory(ctx context.Context, id string) error

	CreateService(ctx context.Context, categoryID string, req CreateServiceRequest) (*Service, error)
	UpdateService(ctx context.Context, id string, patch ServicePatch) (*Service, error)
	DeleteService(ctx context.Context, id string) error
}
