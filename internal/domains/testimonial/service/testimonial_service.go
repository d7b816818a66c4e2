package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"vitrine-backend/internal/domains/testimonial"
)

type testimonialService struct {
	repo testimonial.Repository
}

func NewTestimonialService(repo testimonial.Repository) testimonial.Service {
	return &testimonialService{repo: repo}
}

func (s *testimonialService) GetAll(ctx context.Context) (*testimonial.ListResponse, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, err
	}

	return &testimonial.ListResponse{Testimonials: list, Stats: stats}, nil
}

func (s *testimonialService) Create(ctx context.Context, req testimonial.CreateRequest) (*testimonial.Testimonial, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	t := testimonial.Testimonial{
		ID:       uuid.New().String(),
		Name:     req.Name,
		Rating:   req.Rating,
		Text:     req.Text,
		Service:  req.Service,
		Category: req.Category,
		Location: req.Location,
		Date:     req.Date,
		Verified: req.Verified,
	}
	if t.Date == "" {
		t.Date = time.Now().Format("2006-01-02")
	}

	if err := s.repo.Add(ctx, t); err != nil {
		return nil, err
	}

	return &t, nil
}

func (s *testimonialService) Update(ctx context.Context, id string, patch testimonial.Patch) (*testimonial.Testimonial, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *testimonialService) Delete(ctx context.Context, id string) error {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return testimonial.ErrNotFound
	}
	return nil
}
