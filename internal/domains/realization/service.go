package realization

import "context"

type Service interface {
	GetAll(ctx context.Context, featuredOnly bool) ([]Realization, error)
	Create(ctx context.Context, req CreateRequest) (*Realization, error)
	Update(ctx context.Context, id string, patch Patch) (*Realization, error)
	Delete(ctx context.Context, id string) error
}
