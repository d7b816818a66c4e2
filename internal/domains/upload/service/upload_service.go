package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"vitrine-backend/internal/domains/upload"
	"vitrine-backend/internal/infrastructure/storage"
	"vitrine-backend/pkg/logger"
)

type uploadService struct {
	store     *storage.MinIOStorage // nil when object storage is not configured
	processor *storage.ImageProcessor
	env       string
	localDir  string // development fallback when store is nil
}

func NewUploadService(store *storage.MinIOStorage, processor *storage.ImageProcessor, env, localDir string) upload.UploadService {
	return &uploadService{
		store:     store,
		processor: processor,
		env:       env,
		localDir:  localDir,
	}
}

func (s *uploadService) UploadImage(ctx context.Context, folder, filename, contentType string, data []byte) (*upload.Result, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return nil, upload.ErrNotAnImage
	}
	if int64(len(data)) > storage.MaxUploadSize {
		return nil, upload.ErrTooLarge
	}
	if err := s.processor.ValidateImage(data); err != nil {
		return nil, upload.ErrNotAnImage
	}

	if s.store == nil && s.env == "production" {
		return nil, upload.ErrStorageNotConfigured
	}

	ext := filepath.Ext(filename)
	if ext == "" {
		ext = ".jpg"
	}
	id := uuid.New().String()
	key := fmt.Sprintf("%s/%s%s", sanitizeFolder(folder), id, ext)
	thumbKey := fmt.Sprintf("%s/%s_thumb.jpg", sanitizeFolder(folder), id)

	thumb, err := s.processor.Thumbnail(data)
	if err != nil {
		return nil, upload.ErrNotAnImage
	}

	if s.store == nil {
		return s.saveLocal(key, thumbKey, data, thumb, contentType)
	}

	url, err := s.store.Upload(ctx, key, data, contentType)
	if err != nil {
		return nil, err
	}

	thumbURL, err := s.store.Upload(ctx, thumbKey, thumb, "image/jpeg")
	if err != nil {
		// The original made it; a missing thumbnail is recoverable.
		logger.Error("thumbnail upload failed", err)
		thumbURL = ""
	}

	return &upload.Result{
		URL:          url,
		ThumbnailURL: thumbURL,
		Key:          key,
		Size:         int64(len(data)),
		ContentType:  contentType,
	}, nil
}

func (s *uploadService) saveLocal(key, thumbKey string, data, thumb []byte, contentType string) (*upload.Result, error) {
	for k, payload := range map[string][]byte{key: data, thumbKey: thumb} {
		path := filepath.Join(s.localDir, "uploads", filepath.FromSlash(k))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
		if err := os.WriteFile(path, payload, 0o644); err != nil {
			return nil, err
		}
	}

	return &upload.Result{
		URL:          "/uploads/" + key,
		ThumbnailURL: "/uploads/" + thumbKey,
		Key:          key,
		Size:         int64(len(data)),
		ContentType:  contentType,
	}, nil
}

func (s *uploadService) DeleteImage(ctx context.Context, key string) error {
	if s.store == nil {
		if s.env == "production" {
			return upload.ErrStorageNotConfigured
		}
		return os.Remove(filepath.Join(s.localDir, "uploads", filepath.FromSlash(key)))
	}
	return s.store.Delete(ctx, key)
}

func sanitizeFolder(folder string) string {
	folder = strings.Trim(folder, "/")
	folder = strings.ReplaceAll(folder, "..", "")
	if folder == "" {
		folder = "media"
	}
	return folder
}
