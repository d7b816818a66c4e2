package testimonial

import "context"

type Service interface {
	GetAll(ctx context.Context) (*ListResponse, error)
	Create(ctx context.Context, req CreateRequest) (*Testimonial, error)
	Update(ctx context.Context, id string, patch Patch) (*Testimonial, error)
	Delete(ctx context.Context, id string) error
}
