package admin

import "context"

type AuthService interface {
	// Login verifies credentials and returns the user with a signed
	// session token. Wrong email and wrong password both surface as
	// ErrInvalidCredentials.
	Login(ctx context.Context, req LoginRequest) (*PublicUser, string, error)
	GetUser(ctx context.Context, id string) (*PublicUser, error)
	ListUsers(ctx context.Context) ([]PublicUser, error)
	CreateUser(ctx context.Context, req CreateUserRequest) (*PublicUser, error)
	DeleteUser(ctx context.Context, id string) error
}
