package catalog

import "context"

type Repository interface {
	// ListCategories returns every category with its services nested.
	ListCategories(ctx context.Context) ([]Category, error)

	AddCategory(ctx context.Context, c Category) error
	UpdateCategory(ctx context.Context, id string, patch CategoryPatch) (*Category, error)
	// DeleteCategory fails with ErrCategoryHasServices while services remain.
	DeleteCategory(ctx context.Context, id string) (bool, error)

	AddService(ctx context.Context, s Service) error
	UpdateService(ctx context.Context, id string, patch ServicePatch) (*Service, error)
	DeleteService(ctx context.Context, id string) (bool, error)
}
