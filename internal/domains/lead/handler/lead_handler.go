package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"vitrine-backend/internal/domains/lead"
	"vitrine-backend/internal/shared/response"
)

type LeadHandler struct {
	service lead.LeadService
}

func NewLeadHandler(svc lead.LeadService) *LeadHandler {
	return &LeadHandler{service: svc}
}

type validateStepRequest struct {
	Step  lead.Step `json:"step" binding:"required"`
	Draft lead.Lead `json:"draft"`
}

// POST /leads/validate-step
func (h *LeadHandler) ValidateStep(c *gin.Context) {
	var req validateStepRequest
	if err := c.BindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.ValidateStep(c.Request.Context(), req.Step, req.Draft); err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"valid": true, "step": req.Step})
}

// POST /leads
func (h *LeadHandler) Submit(c *gin.Context) {
	var l lead.Lead
	if err := c.BindJSON(&l); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.Submit(c.Request.Context(), c.ClientIP(), l); err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusAccepted, gin.H{"submitted": true})
}

func writeError(c *gin.Context, err error) {
	var verrs validation.Errors
	switch {
	case errors.As(err, &verrs):
		response.ValidationFailed(c, verrs)
	case errors.Is(err, lead.ErrUnknownStep):
		response.BadRequest(c, err.Error())
	case errors.Is(err, lead.ErrRateLimited):
		response.ErrorResponse(c, http.StatusTooManyRequests, "RATE_LIMITED", err.Error())
	case errors.Is(err, lead.ErrDispatchFailed):
		response.ErrorResponse(c, http.StatusBadGateway, "DISPATCH_FAILED", err.Error())
	default:
		response.InternalServerError(c, err.Error())
	}
}
