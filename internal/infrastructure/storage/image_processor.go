package storage

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"

	"github.com/disintegration/imaging"
)

const (
	// MaxUploadSize is the hard limit for uploaded images.
	MaxUploadSize = 5 * 1024 * 1024

	thumbnailMax     = 480
	thumbnailQuality = 85
)

type ImageProcessor struct {
	MaxSize int64
}

func NewImageProcessor() *ImageProcessor {
	return &ImageProcessor{MaxSize: MaxUploadSize}
}

// ValidateImage rejects oversized payloads and anything that does not decode
// as an image.
func (p *ImageProcessor) ValidateImage(data []byte) error {
	if int64(len(data)) > p.MaxSize {
		return fmt.Errorf("image exceeds %dMB", p.MaxSize/(1024*1024))
	}
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("not an image: %w", err)
	}
	return nil
}

// Thumbnail resizes the image to fit 480x480 and re-encodes as JPEG q85.
func (p *ImageProcessor) Thumbnail(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot decode image: %w", err)
	}

	resized := imaging.Fit(img, thumbnailMax, thumbnailMax, imaging.Lanczos)

	var b bytes.Buffer
	if err := jpeg.Encode(&b, resized, &jpeg.Options{Quality: thumbnailQuality}); err != nil {
		return nil, fmt.Errorf("cannot encode thumbnail: %w", err)
	}

	return b.Bytes(), nil
}
