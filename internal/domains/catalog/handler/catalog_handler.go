package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"vitrine-backend/internal/domains/catalog"
	"vitrine-backend/internal/shared/apperr"
	"vitrine-backend/internal/shared/response"
	"vitrine-backend/pkg/logger"
)

type CatalogHandler struct {
	service catalog.CatalogService
}

func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: svc}
}

// GET /content/categories
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	list, err := h.service.GetCategories(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}

// POST /content/categories
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req catalog.CreateCategoryRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	cat, err := h.service.CreateCategory(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, cat)
}

// PUT /content/categories/:id
func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	var patch catalog.CategoryPatch
	if err := c.BindJSON(&patch); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	cat, err := h.service.UpdateCategory(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, cat)
}

// DELETE /content/categories/:id
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	if err := h.service.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// POST /content/categories/:id/services
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var req catalog.CreateServiceRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	svc, err := h.service.CreateService(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, svc)
}

// PUT /content/services/:id
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	var patch catalog.ServicePatch
	if err := c.BindJSON(&patch); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	svc, err := h.service.UpdateService(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, svc)
}

// DELETE /content/services/:id
func (h *CatalogHandler) DeleteService(c *gin.Context) {
	if err := h.service.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
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
	case errors.Is(err, catalog.ErrCategoryNotFound), errors.Is(err, catalog.ErrServiceNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, catalog.ErrSlugTaken), errors.Is(err, catalog.ErrCategoryHasServices):
		response.Conflict(c, err.Error())
	case apperr.IsStorage(err):
		logger.Error("content storage failure", err)
		response.StorageUnavailable(c, err.Error())
	default:
		response.InternalServerError(c, err.Error())
	}
}
