package apperr

import (
	"errors"
	"fmt"
)

// StorageError wraps any backend read/write failure (file I/O, malformed JSON
// on disk, network/database error). It is terminal for the triggering request
// and never retried; the cause is kept for operator diagnostics.
type StorageError struct {
	Op  string // e.g. "siteconfig.get"
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage unavailable during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Storage wraps err as a StorageError for operation op.
func Storage(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

// IsStorage reports whether err is (or wraps) a StorageError.
func IsStorage(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
