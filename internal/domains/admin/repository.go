package admin

import "context"

type Repository interface {
	// FindByEmail matches case-insensitively. Returns ErrUserNotFound
	// when no account exists.
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	List(ctx context.Context) ([]User, error)
	Add(ctx context.Context, u User) error
	Delete(ctx context.Context, id string) (bool, error)
}
