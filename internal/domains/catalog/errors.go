package catalog

import "errors"

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrServiceNotFound  = errors.New("service not found")

	// ErrSlugTaken: slugs must be unique within their category.
	ErrSlugTaken = errors.New("slug already in use")

	// ErrCategoryHasServices: deleting a category is disallowed while it
	// still owns services; delete or move them first.
	ErrCategoryHasServices = errors.New("category still owns services")
)
