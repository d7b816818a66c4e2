package brand

import "context"

type Repository interface {
	List(ctx context.Context) ([]Brand, error)
	Add(ctx context.Context, b Brand) error
	Update(ctx context.Context, id string, patch Patch) (*Brand, error)
	Delete(ctx context.Context, id string) (bool, error)
}
