package service

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitrine-backend/internal/domains/upload"
	"vitrine-backend/internal/infrastructure/storage"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	var b bytes.Buffer
	require.NoError(t, png.Encode(&b, img))
	return b.Bytes()
}

func TestUploadRejectsNonImageMIME(t *testing.T) {
	svc := NewUploadService(nil, storage.NewImageProcessor(), "development", t.TempDir())

	_, err := svc.UploadImage(context.Background(), "media", "doc.pdf", "application/pdf", pngBytes(t))
	assert.ErrorIs(t, err, upload.ErrNotAnImage)
}

func TestUploadRejectsNonImagePayload(t *testing.T) {
	svc := NewUploadService(nil, storage.NewImageProcessor(), "development", t.TempDir())

	_, err := svc.UploadImage(context.Background(), "media", "fake.png", "image/png", []byte("not an image"))
	assert.ErrorIs(t, err, upload.ErrNotAnImage)
}

func TestUploadRejectsOversizedPayload(t *testing.T) {
	svc := NewUploadService(nil, storage.NewImageProcessor(), "development", t.TempDir())

	big := make([]byte, storage.MaxUploadSize+1)
	_, err := svc.UploadImage(context.Background(), "media", "big.png", "image/png", big)
	assert.ErrorIs(t, err, upload.ErrTooLarge)
}

func TestUploadProductionRequiresObjectStorage(t *testing.T) {
	svc := NewUploadService(nil, storage.NewImageProcessor(), "production", t.TempDir())

	_, err := svc.UploadImage(context.Background(), "media", "logo.png", "image/png", pngBytes(t))
	assert.ErrorIs(t, err, upload.ErrStorageNotConfigured)
}

func TestUploadLocalFallbackInDevelopment(t *testing.T) {
	dir := t.TempDir()
	svc := NewUploadService(nil, storage.NewImageProcessor(), "development", dir)

	result, err := svc.UploadImage(context.Background(), "realizations", "chantier.png", "image/png", pngBytes(t))
	require.NoError(t, err)

	assert.Contains(t, result.URL, "/uploads/realizations/")
	assert.Contains(t, result.ThumbnailURL, "_thumb.jpg")
	assert.Equal(t, "image/png", result.ContentType)

	// Both variants actually landed on disk.
	stored := filepath.Join(dir, "uploads", filepath.FromSlash(result.Key))
	_, statErr := os.Stat(stored)
	assert.NoError(t, statErr)

	require.NoError(t, svc.DeleteImage(context.Background(), result.Key))
	_, statErr = os.Stat(stored)
	assert.True(t, os.IsNotExist(statErr))
}
