package site

import "errors"

var (
	// ErrNotInitialized means the singleton row/file does not exist yet.
	// The file backend treats this as StorageUnavailable at read time; the
	// admin seeding flow is the only writer allowed to create the record.
	ErrNotInitialized = errors.New("singleton record not initialized")
)
