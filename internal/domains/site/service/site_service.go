package service

import (
	"context"

	"vitrine-backend/internal/domains/site"
)

type siteService struct {
	repo site.Repository
}

func NewSiteService(repo site.Repository) site.Service {
	return &siteService{repo: repo}
}

func (s *siteService) GetSiteConfig(ctx context.Context) (*site.SiteConfig, error) {
	return s.repo.GetSiteConfig(ctx)
}

func (s *siteService) UpdateSiteConfig(ctx context.Context, patch site.SiteConfigPatch) (*site.SiteConfig, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	return s.repo.UpdateSiteConfig(ctx, patch)
}

func (s *siteService) GetHomepage(ctx context.Context) (*site.Homepage, error) {
	return s.repo.GetHomepage(ctx)
}

func (s *siteService) UpdateHomepage(ctx context.Context, patch site.HomepagePatch) (*site.Homepage, error) {
	return s.repo.UpdateHomepage(ctx, patch)
}

func (s *siteService) GetMedia(ctx context.Context) (*site.Media, error) {
	return s.repo.GetMedia(ctx)
}

func (s *siteService) UpdateMedia(ctx context.Context, patch site.MediaPatch) (*site.Media, error) {
	return s.repo.UpdateMedia(ctx, patch)
}
