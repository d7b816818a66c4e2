package brand

import "context"

type Service interface {
	GetAll(ctx context.Context) ([]Brand, error)
	Create(ctx context.Context, req CreateRequest) (*Brand, error)
	Update(ctx context.Context, id string, patch Patch) (*Brand, error)
	Delete(ctx context.Context, id string) error
}
