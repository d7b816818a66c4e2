package handler

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"

	"vitrine-backend/internal/domains/testimonial"
	"vitrine-backend/internal/shared/apperr"
	"vitrine-backend/internal/shared/response"
	"vitrine-backend/pkg/logger"
)

type TestimonialHandler struct {
	service testimonial.Service
}

func NewTestimonialHandler(svc testimonial.Service) *TestimonialHandler {
	return &TestimonialHandler{service: svc}
}

// GET /content/testimonials
func (h *TestimonialHandler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp)
}

// POST /content/testimonials
func (h *TestimonialHandler) Create(c *gin.Context) {
	var req testimonial.CreateRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	t, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, t)
}

// PUT /content/testimonials/:id
func (h *TestimonialHandler) Update(c *gin.Context) {
	var patch testimonial.Patch
	if err := c.BindJSON(&patch); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	t, err := h.service.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, t)
}

// DELETE /content/testimonials/:id
func (h *TestimonialHandler) Delete(c *gin.Context) {
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
	case errors.Is(err, testimonial.ErrNotFound):
		response.NotFound(c, err.Error())
	case apperr.IsStorage(err):
		logger.Error("content storage failure", err)
		response.StorageUnavailable(c, err.Error())
	default:
		response.InternalServerError(c, err.Error())
	}
}
