package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"vitrine-backend/internal/domains/admin"
	"vitrine-backend/pkg/jwt"
)

const bcryptCost = 12

type authService struct {
	repo       admin.Repository
	jwtManager *jwt.Manager
}

func NewAuthService(repo admin.Repository, jwtManager *jwt.Manager) admin.AuthService {
	return &authService{repo: repo, jwtManager: jwtManager}
}

func (s *authService) Login(ctx context.Context, req admin.LoginRequest) (*admin.PublicUser, string, error) {
	if err := req.Validate(); err != nil {
		return nil, "", err
	}

	user, err := s.repo.FindByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, admin.ErrUserNotFound) {
			return nil, "", admin.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", admin.ErrInvalidCredentials
	}

	token, err := s.jwtManager.GenerateSessionToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", err
	}

	pub := user.Public()
	return &pub, token, nil
}

func (s *authService) GetUser(ctx context.Context, id string) (*admin.PublicUser, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	pub := user.Public()
	return &pub, nil
}

func (s *authService) ListUsers(ctx context.Context) ([]admin.PublicUser, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]admin.PublicUser, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	return out, nil
}

func (s *authService) CreateUser(ctx context.Context, req admin.CreateUserRequest) (*admin.PublicUser, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = "admin"
	}

	user := admin.User{
		ID:           uuid.New().String(),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Name:         req.Name,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Add(ctx, user); err != nil {
		return nil, err
	}

	pub := user.Public()
	return &pub, nil
}

func (s *authService) DeleteUser(ctx context.Context, id string) error {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return admin.ErrUserNotFound
	}
	return nil
}
