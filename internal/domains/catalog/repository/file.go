package repository

import (
	"context"

	"vitrine-backend/internal/content/filestore"
	"vitrine-backend/internal/domains/catalog"
)

const collection = "services"

// The file keeps the whole catalog as one array of categories with their
// services nested, matching the shape the public pages consume.
type fileRepository struct {
	store *filestore.Store
}

func NewFileRepository(store *filestore.Store) catalog.Repository {
	return &fileRepository{store: store}
}

func (r *fileRepository) load() ([]catalog.Category, error) {
	var list []catalog.Category
	if err := r.store.Load(collection, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []catalog.Category{}
	}
	for i := range list {
		list[i].Normalize()
	}
	return list, nil
}

func (r *fileRepository) ListCategories(ctx context.Context) ([]catalog.Category, error) {
	return r.load()
}

func (r *fileRepository) AddCategory(ctx context.Context, c catalog.Category) error {
	list, err := r.load()
	if err != nil {
		return err
	}

	for _, existing := range list {
		if existing.Slug == c.Slug {
			return catalog.ErrSlugTaken
		}
	}

	c.Normalize()
	list = append(list, c)
	return r.store.Save(collection, list)
}

func (r *fileRepository) UpdateCategory(ctx context.Context, id string, patch catalog.CategoryPatch) (*catalog.Category, error) {
	list, err := r.load()
	if err != nil {
		return nil, err
	}

	for i := range list {
		if list[i].ID != id {
			continue
		}

		if patch.Slug != nil {
			for j := range list {
				if j != i && list[j].Slug == *patch.Slug {
					return nil, catalog.ErrSlugTaken
				}
			}
		}

		patch.ApplyTo(&list[i])
		if err := r.store.Save(collection, list); err != nil {
			return nil, err
		}
		updated := list[i]
		return &updated, nil
	}

	return nil, catalog.ErrCategoryNotFound
}

func (r *fileRepository) DeleteCategory(ctx context.Context, id string) (bool, error) {
	list, err := r.load()
	if err != nil {
		return false, err
	}

	for i := range list {
		if list[i].ID == id {
			if len(list[i].Services) > 0 {
				return false, catalog.ErrCategoryHasServices
			}
			list = append(list[:i], list[i+1:]...)
			if err := r.store.Save(collection, list); err != nil {
				return false, err
			}
			return true, nil
		}
	}

	return false, nil
}

func (r *fileRepository) AddService(ctx context.Context, s catalog.Service) error {
	list, err := r.load()
	if err != nil {
		return err
	}

	for i := range list {
		if list[i].ID != s.CategoryID {
			continue
		}

		for _, existing := range list[i].Services {
			if existing.Slug == s.Slug {
				return catalog.ErrSlugTaken
			}
		}

		s.Normalize()
		list[i].Services = append(list[i].Services, s)
		return r.store.Save(collection, list)
	}

	return catalog.ErrCategoryNotFound
}

func (r *fileRepository) UpdateService(ctx context.Context, id string, patch catalog.ServicePatch) (*catalog.Service, error) {
	list, err := r.load()
	if err != nil {
		return nil, err
	}

	for i := range list {
		for j := range list[i].Services {
			if list[i].Services[j].ID != id {
				continue
			}

			if patch.Slug != nil {
				for k := range list[i].Services {
					if k != j && list[i].Services[k].Slug == *patch.Slug {
						return nil, catalog.ErrSlugTaken
					}
				}
			}

			patch.ApplyTo(&list[i].Services[j])
			if err := r.store.Save(collection, list); err != nil {
				return nil, err
			}
			updated := list[i].Services[j]
			return &updated, nil
		}
	}

	return nil, catalog.ErrServiceNotFound
}

func (r *fileRepository) DeleteService(ctx context.Context, id string) (bool, error) {
	list, err := r.load()
	if err != nil {
		return false, err
	}

	for i := range list {
		for j := range list[i].Services {
			if list[i].Services[j].ID == id {
				list[i].Services = append(list[i].Services[:j], list[i].Services[j+1:]...)
				if err := r.store.Save(collection, list); err != nil {
					return false, err
				}
				return true, nil
			}
		}
	}

	return false, nil
}
