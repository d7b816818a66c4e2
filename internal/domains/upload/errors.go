package upload

import "errors"

var (
	ErrNotAnImage           = errors.New("only image files are accepted")
	ErrTooLarge             = errors.New("file exceeds the 5MB limit")
	ErrStorageNotConfigured = errors.New("object storage is not configured")
)
