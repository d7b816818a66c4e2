package handler

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"

	"vitrine-backend/internal/domains/brand"
	"vitrine-backend/internal/shared/apperr"
	"vitrine-backend/internal/shared/response"
	"vitrine-backend/pkg/logger"
)

type BrandHandler struct {
	service brand.Service
}

func NewBrandHandler(svc brand.Service) *BrandHandler {
	return &BrandHandler{service: svc}
}

// GET /content/brands
func (h *BrandHandler) GetAll(c *gin.Context) {
	list, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}

// POST /content/brands
func (h *BrandHandler) Create(c *gin.Context) {
	var req brand.CreateRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, b)
}

// PUT /content/brands/:id
func (h *BrandHandler) Update(c *gin.Context) {
	var patch brand.Patch
	if err := c.BindJSON(&patch); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	b, err := h.service.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, b)
}

// DELETE /content/brands/:id
func (h *BrandHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
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
	case errors.Is(err, brand.ErrNotFound):
		response.NotFound(c, err.Error())
	case apperr.IsStorage(err):
		logger.Error("content storage failure", err)
		response.StorageUnavailable(c, err.Error())
	default:
		response.InternalServerError(c, err.Error())
	}
}
