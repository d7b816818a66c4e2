package repository

import (
	"context"

	"vitrine-backend/internal/content/filestore"
	"vitrine-backend/internal/domains/testimonial"
)

const collection = "testimonials"

// fileDocument is the on-disk shape: the list plus the derived stats, kept
// consistent by recomputing stats inside every mutation before persist.
type fileDocument struct {
	Stats        testimonial.Stats         `json:"stats"`
	Testimonials []testimonial.Testimonial `json:"testimonials"`
}

type fileRepository struct {
	store *filestore.Store
}

func NewFileRepository(store *filestore.Store) testimonial.Repository {
	return &fileRepository{store: store}
}

func (r *fileRepository) load() (*fileDocument, error) {
	var doc fileDocument
	if err := r.store.Load(collection, &doc); err != nil {
		return nil, err
	}
	if doc.Testimonials == nil {
		doc.Testimonials = []testimonial.Testimonial{}
	}
	return &doc, nil
}

func (r *fileRepository) save(doc *fileDocument) error {
	doc.Stats = testimonial.ComputeStats(doc.Testimonials)
	return r.store.Save(collection, doc)
}

func (r *fileRepository) List(ctx context.Context) ([]testimonial.Testimonial, error) {
	doc, err := r.load()
	if err != nil {
		return nil, err
	}
	return doc.Testimonials, nil
}

func (r *fileRepository) Stats(ctx context.Context) (testimonial.Stats, error) {
	doc, err := r.load()
	if err != nil {
		return testimonial.Stats{}, err
	}
	// Recomputed rather than trusted, in case the file was edited by hand.
	return testimonial.ComputeStats(doc.Testimonials), nil
}

func (r *fileRepository) Add(ctx context.Context, t testimonial.Testimonial) error {
	doc, err := r.load()
	if err != nil {
		return err
	}

	doc.Testimonials = append(doc.Testimonials, t)
	return r.save(doc)
}

func (r *fileRepository) Update(ctx context.Context, id string, patch testimonial.Patch) (*testimonial.Testimonial, error) {
	doc, err := r.load()
	if err != nil {
		return nil, err
	}

	for i := range doc.Testimonials {
		if doc.Testimonials[i].ID == id {
			patch.ApplyTo(&doc.Testimonials[i])
			if err := r.save(doc); err != nil {
				return nil, err
			}
			updated := doc.Testimonials[i]
			return &updated, nil
		}
	}

	return nil, testimonial.ErrNotFound
}

func (r *fileRepository) Delete(ctx context.Context, id string) (bool, error) {
	doc, err := r.load()
	if err != nil {
		return false, err
	}

	for i := range doc.Testimonials {
		if doc.Testimonials[i].ID == id {
			doc.Testimonials = append(doc.Testimonials[:i], doc.Testimonials[i+1:]...)
			if err := r.save(doc); err != nil {
				return false, err
			}
			return true, nil
		}
	}

	return false, nil
}
