package testimonial

import "context"

// Repository is implemented by the file and Postgres backends.
type Repository interface {
	List(ctx context.Context) ([]Testimonial, error)
	Stats(ctx context.Context) (Stats, error)
	Add(ctx context.Context, t Testimonial) error
	Update(ctx context.Context, id string, patch Patch) (*Testimonial, error)
	// Delete reports whether a record was actually removed; false means the
	// id was absent and callers must treat it as NotFound.
	Delete(ctx context.Context, id string) (bool, error)
}
