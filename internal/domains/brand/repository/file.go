package repository

import (
	"context"

	"vitrine-backend/internal/content/filestore"
	"vitrine-backend/internal/domains/brand"
)

const collection = "brands"

type fileRepository struct {
	store *filestore.Store
}

func NewFileRepository(store *filestore.Store) brand.Repository {
	return &fileRepository{store: store}
}

func (r *fileRepository) load() ([]brand.Brand, error) {
	var list []brand.Brand
	if err := r.store.Load(collection, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []brand.Brand{}
	}
	return list, nil
}

func (r *fileRepository) List(ctx context.Context) ([]brand.Brand, error) {
	return r.load()
}

func (r *fileRepository) Add(ctx context.Context, b brand.Brand) error {
	list, err := r.load()
	if err != nil {
		return err
	}

	list = append(list, b)
	return r.store.Save(collection, list)
}

func (r *fileRepository) Update(ctx context.Context, id string, patch brand.Patch) (*brand.Brand, error) {
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

	return nil, brand.ErrNotFound
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
