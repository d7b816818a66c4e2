package brand

import "errors"

var (
	ErrNotFound = errors.New("brand not found")
)
