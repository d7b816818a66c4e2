package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitrine-backend/internal/content/filestore"
	"vitrine-backend/internal/domains/admin"
	adminRepo "vitrine-backend/internal/domains/admin/repository"
	"vitrine-backend/pkg/jwt"
)

func newTestService(t *testing.T) admin.AuthService {
	t.Helper()
	store := filestore.New(t.TempDir())
	require.NoError(t, store.Save("admin-users", []admin.User{}))
	return NewAuthService(adminRepo.NewFileRepository(store), jwt.NewManager("test-secret"))
}

func TestLoginRoundTrip(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, admin.CreateUserRequest{
		Email:    "Chef@Example.fr",
		Password: "motdepasse123",
		Name:     "Chef",
		Role:     "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, "chef@example.fr", created.Email)

	// Email matching is case-insensitive.
	user, token, err := svc.Login(ctx, admin.LoginRequest{Email: "CHEF@example.FR", Password: "motdepasse123"})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, created.ID, user.ID)

	claims, err := jwt.NewManager("test-secret").ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, claims.UserID)
	assert.Equal(t, "admin", claims.Role)
}

func TestLoginWrongPasswordAndUnknownUserLookAlike(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, admin.CreateUserRequest{Email: "chef@example.fr", Password: "motdepasse123"})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, admin.LoginRequest{Email: "chef@example.fr", Password: "mauvais-mdp"})
	assert.ErrorIs(t, err, admin.ErrInvalidCredentials)

	// Unknown account surfaces the same error, not a user-not-found hint.
	_, _, err = svc.Login(ctx, admin.LoginRequest{Email: "inconnu@example.fr", Password: "motdepasse123"})
	assert.ErrorIs(t, err, admin.ErrInvalidCredentials)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, admin.CreateUserRequest{Email: "chef@example.fr", Password: "motdepasse123"})
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, admin.CreateUserRequest{Email: "CHEF@example.fr", Password: "autremotdepasse"})
	assert.ErrorIs(t, err, admin.ErrEmailExists)
}

func TestPasswordHashNeverExposed(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, admin.CreateUserRequest{Email: "chef@example.fr", Password: "motdepasse123"})
	require.NoError(t, err)

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, created.ID, users[0].ID)
	// PublicUser simply has no hash field; make sure the password itself
	// is not reachable either.
	assert.NotContains(t, []string{users[0].Name, users[0].Email, users[0].Role}, "motdepasse123")
}

func TestDeleteUser(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, admin.CreateUserRequest{Email: "chef@example.fr", Password: "motdepasse123"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteUser(ctx, created.ID))
	assert.ErrorIs(t, svc.DeleteUser(ctx, created.ID), admin.ErrUserNotFound)
}
