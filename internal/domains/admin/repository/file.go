package repository

import (
	"context"
	"strings"

	"vitrine-backend/internal/content/filestore"
	"vitrine-backend/internal/domains/admin"
)

const collection = "admin-users"

type fileRepository struct {
	store *filestore.Store
}

func NewFileRepository(store *filestore.Store) admin.Repository {
	return &fileRepository{store: store}
}

func (r *fileRepository) load() ([]admin.User, error) {
	var list []admin.User
	if err := r.store.Load(collection, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []admin.User{}
	}
	return list, nil
}

func (r *fileRepository) FindByEmail(ctx context.Context, email string) (*admin.User, error) {
	list, err := r.load()
	if err != nil {
		return nil, err
	}

	for i := range list {
		if strings.EqualFold(list[i].Email, email) {
			u := list[i]
			return &u, nil
		}
	}
	return nil, admin.ErrUserNotFound
}

func (r *fileRepository) FindByID(ctx context.Context, id string) (*admin.User, error) {
	list, err := r.load()
	if err != nil {
		return nil, err
	}

	for i := range list {
		if list[i].ID == id {
			u := list[i]
			return &u, nil
		}
	}
	return nil, admin.ErrUserNotFound
}

func (r *fileRepository) List(ctx context.Context) ([]admin.User, error) {
	return r.load()
}

func (r *fileRepository) Add(ctx context.Context, u admin.User) error {
	list, err := r.load()
	if err != nil {
		return err
	}

	for i := range list {
		if strings.EqualFold(list[i].Email, u.Email) {
			return admin.ErrEmailExists
		}
	}

	list = append(list, u)
	return r.store.Save(collection, list)
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
