package realization

import "errors"

var (
	ErrNotFound = errors.New("realization not found")
)
