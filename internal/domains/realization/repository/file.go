package repository

import (
	"context"

	"vitrine-backend/internal/content/filestore"
	"vitrine-backend/internal/domains/realization"
)

const collection = "realizations"

// The file holds the whole collection as a single top-level array.
type fileRepository struct {
	store *filestore.Store
}

func NewFileRepository(store *filestore.Store) realization.Repository {
	return &fileRepository{store: store}
}

func (r *fileRepository) load() ([]realization.Realization, error) {
	var list []realization.Realization
	if err := r.store.Load(collection, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []realization.Realization{}
	}
	return list, nil
}

func (r *fileRepository) List(ctx context.Context) ([]realization.Realization, error) {
	return r.load()
}

func (r *fileRepository) ListFeatured(ctx context.Context) ([]realization.Realization, error) {
	list, err := r.load()
	if err != nil {
		return nil, err
	}

	featured := []realization.Realization{}
	for _, item := range list {
		if item.Featured {
			featured = append(featured, item)
		}
	}
	return featured, nil
}

func (r *fileRepository) Add(ctx context.Context, item realization.Realization) error {
	list, err := r.load()
	if err != nil {
		return err
	}

	list = append(list, item)
	return r.store.Save(collection, list)
}

func (r *fileRepository) Update(ctx context.Context, id string, patch realization.Patch) (*realization.Realization, error) {
	list, err := r.load()
	if err != nil {
		return nil, err
	}

	for i := range list {
		if list[i].ID == id {
			patch.ApplyTo(&list[i])
			if err := r.store.Save(collection, list); err != nil {
				return nil, err
			}
			updated := list[i]
			return &updated, nil
		}
	}

	return nil, realization.ErrNotFound
}

func (r *fileRepository) Delete(ctx context.Context, id string) (bool, error) {
	list, err := r.load()
	if err != nil {
		return false, err
	}

	for i := range list {
		if list[i].ID == id {
			list = append(list[:i], list[i+1:]...)
			if err := r.store.Save(collection, list); err != nil {
				return false, err
			}
			return true, nil
		}
	}

	return false, nil
}
