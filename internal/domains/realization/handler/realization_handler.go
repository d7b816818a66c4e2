package handler

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"

	"vitrine-backend/internal/domains/realization"
	"vitrine-backend/internal/shared/apperr"
	"vitrine-backend/internal/shared/response"
	"vitrine-backend/pkg/logger"
)

type RealizationHandler struct {
	service realization.Service
}

func NewRealizationHandler(svc realization.Service) *RealizationHandler {
	return &RealizationHandler{service: svc}
}

// GET /content/realizations?featured=true
func (h *RealizationHandler) GetAll(c *gin.Context) {
	featuredOnly := c.Query("featured") == "true"

	list, err := h.service.GetAll(c.Request.Context(), featuredOnly)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, list)
}

// POST /content/realizations
func (h *RealizationHandler) Create(c *gin.Context) {
	var req realization.CreateRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	item, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, item)
}

// PUT /content/realizations/:id
func (h *RealizationHandler) Update(c *gin.Context) {
	var patch realization.Patch
	if err := c.BindJSON(&patch); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	item, err := h.service.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

// DELETE /content/realizations/:id
func (h *RealizationHandler) Delete(c *gin.Context) {
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
	case errors.Is(err, realization.ErrNotFound):
		response.NotFound(c, err.Error())
	case apperr.IsStorage(err):
		logger.Error("content storage failure", err)
		response.StorageUnavailable(c, err.Error())
	default:
		response.InternalServerError(c, err.Error())
	}
}
