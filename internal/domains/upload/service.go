package upload

import "context"

// Result describes a stored image.
type Result struct {
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	Key          string `json:"key"`
	Size         int64  `json:"size"`
	ContentType  string `json:"contentType"`
}

type UploadService interface {
	// UploadImage validates and stores an image plus a thumbnail variant,
	// returning the public URLs. folder namespaces the object key
	// (realizations, brands, media...).
	UploadImage(ctx context.Context, folder, filename, contentType string, data []byte) (*Result, error)
	DeleteImage(ctx context.Context, key string) error
}
