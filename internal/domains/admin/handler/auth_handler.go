package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"vitrine-backend/internal/domains/admin"
	"vitrine-backend/internal/shared/apperr"
	"vitrine-backend/internal/shared/middleware"
	"vitrine-backend/internal/shared/response"
	"vitrine-backend/pkg/logger"
)

type AuthHandler struct {
	service      admin.AuthService
	secureCookie bool
}

func NewAuthHandler(svc admin.AuthService, secureCookie bool) *AuthHandler {
	return &AuthHandler{service: svc, secureCookie: secureCookie}
}

// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req admin.LoginRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	middleware.SetSessionCookie(c, token, h.secureCookie)
	response.Success(c, http.StatusOK, admin.LoginResponse{User: *user})
}

// POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearSessionCookie(c)
	response.Success(c, http.StatusOK, gin.H{"loggedOut": true})
}

// GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString("userID")

	user, err := h.service.GetUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, admin.ErrUserNotFound) {
			response.Unauthorized(c, "session user no longer exists")
			return
		}
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, user)
}

// GET /admin/users
func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, users)
}

// POST /admin/users
func (h *AuthHandler) CreateUser(c *gin.Context) {
	var req admin.CreateUserRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := h.service.CreateUser(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, user)
}

// DELETE /admin/users/:id
func (h *AuthHandler) DeleteUser(c *gin.Context) {
	if c.Param("id") == c.GetString("userID") {
		response.BadRequest(c, "impossible de supprimer son propre compte")
		return
	}

	if err := h.service.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func writeError(c *gin.Context, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		response.ValidationFailed(c, verrs)
	case errors.Is(err, admin.ErrInvalidCredentials):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, admin.ErrEmailExists):
		response.Conflict(c, err.Error())
	case errors.Is(err, admin.ErrUserNotFound):
		response.NotFound(c, err.Error())
	case apperr.IsStorage(err):
		logger.Error("admin storage failure", err)
		response.StorageUnavailable(c, err.Error())
	default:
		response.InternalServerError(c, err.Error())
	}
}
