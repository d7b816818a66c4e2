package handler

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gin-gonic/gin"

	"vitrine-backend/internal/domains/site"
	"vitrine-backend/internal/shared/apperr"
	"vitrine-backend/internal/shared/response"
	"vitrine-backend/pkg/logger"
)

// Concurrent admin edits are last-write-wins; the later save silently
// overwrites the earlier one. Known limitation, acceptable for a
// single-operator admin tool.
type SiteHandler struct {
	service site.Service
}

func NewSiteHandler(svc site.Service) *SiteHandler {
	return &SiteHandler{service: svc}
}

// GET /content/site-config
func (h *SiteHandler) GetSiteConfig(c *gin.Context) {
	cfg, err := h.service.GetSiteConfig(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, cfg)
}

// PUT /content/site-config
func (h *SiteHandler) UpdateSiteConfig(c *gin.Context) {
	var patch site.SiteConfigPatch
	if err := c.BindJSON(&patch); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	cfg, err := h.service.UpdateSiteConfig(c.Request.Context(), patch)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, cfg)
}

// GET /content/homepage
func (h *SiteHandler) GetHomepage(c *gin.Context) {
	hp, err := h.service.GetHomepage(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, hp)
}

// PUT /content/homepage
func (h *SiteHandler) UpdateHomepage(c *gin.Context) {
	var patch site.HomepagePatch
	if err := c.BindJSON(&patch); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	hp, err := h.service.UpdateHomepage(c.Request.Context(), patch)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, hp)
}

// GET /content/media
func (h *SiteHandler) GetMedia(c *gin.Context) {
	m, err := h.service.GetMedia(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, m)
}

// PUT /content/media
func (h *SiteHandler) UpdateMedia(c *gin.Context) {
	var patch site.MediaPatch
	if err := c.BindJSON(&patch); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	m, err := h.service.UpdateMedia(c.Request.Context(), patch)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, m)
}

func writeError(c *gin.Context, err error) {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		response.ValidationFailed(c, verrs)
		return
	}
	if apperr.IsStorage(err) {
		logger.Error("content storage failure", err)
		response.StorageUnavailable(c, err.Error())
		return
	}
	response.InternalServerError(c, err.Error())
}
