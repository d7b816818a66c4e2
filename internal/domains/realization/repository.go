package realization

import "context"

type Repository interface {
	List(ctx context.Context) ([]Realization, error)
	ListFeatured(ctx context.Context) ([]Realization, error)
	Add(ctx context.Context, r Realization) error
	Update(ctx context.Context, id string, patch Patch) (*Realization, error)
	Delete(ctx context.Context, id string) (bool, error)
}
