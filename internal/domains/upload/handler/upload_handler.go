package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"vitrine-backend/internal/domains/upload"
	"vitrine-backend/internal/infrastructure/storage"
	"vitrine-backend/internal/shared/response"
	"vitrine-backend/pkg/logger"
)

type UploadHandler struct {
	service upload.UploadService
}

func NewUploadHandler(svc upload.UploadService) *UploadHandler {
	return &UploadHandler{service: svc}
}

// POST /uploads
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "missing file field")
		return
	}

	if fileHeader.Size > storage.MaxUploadSize {
		response.ErrorResponse(c, http.StatusRequestEntityTooLarge, "UPLOAD_REJECTED", upload.ErrTooLarge.Error())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, storage.MaxUploadSize+1))
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}
	if int64(len(data)) > storage.MaxUploadSize {
		response.ErrorResponse(c, http.StatusRequestEntityTooLarge, "UPLOAD_REJECTED", upload.ErrTooLarge.Error())
		return
	}

	folder := c.DefaultPostForm("folder", "media")
	contentType := fileHeader.Header.Get("Content-Type")

	result, err := h.service.UploadImage(c.Request.Context(), folder, fileHeader.Filename, contentType, data)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, result)
}

// DELETE /uploads/*key
func (h *UploadHandler) Delete(c *gin.Context) {
	key := c.Param("key")
	if key == "" || key == "/" {
		response.BadRequest(c, "missing object key")
		return
	}

	if err := h.service.DeleteImage(c.Request.Context(), key[1:]); err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, upload.ErrNotAnImage):
		response.ErrorResponse(c, http.StatusUnsupportedMediaType, "UPLOAD_REJECTED", err.Error())
	case errors.Is(err, upload.ErrTooLarge):
		response.ErrorResponse(c, http.StatusRequestEntityTooLarge, "UPLOAD_REJECTED", err.Error())
	case errors.Is(err, upload.ErrStorageNotConfigured):
		logger.Error("upload storage not configured", err)
		response.ErrorResponse(c, http.StatusServiceUnavailable, "UPLOAD_REJECTED", err.Error())
	default:
		response.InternalServerError(c, err.Error())
	}
}
