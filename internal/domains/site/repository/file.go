package repository

import (
	"context"

	"vitrine-backend/internal/content/filestore"
	"vitrine-backend/internal/domains/site"
)

// fileRepository persists the three singletons as site-config.json,
// homepage.json and media.json. Read-merge-write; the whole file is rewritten
// on every mutation.
type fileRepository struct {
	store *filestore.Store
}

func NewFileRepository(store *filestore.Store) site.Repository {
	return &fileRepository{store: store}
}

func (r *fileRepository) GetSiteConfig(ctx context.Context) (*site.SiteConfig, error) {
	var cfg site.SiteConfig
	if err := r.store.Load("site-config", &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()
	return &cfg, nil
}

func (r *fileRepository) UpdateSiteConfig(ctx context.Context, patch site.SiteConfigPatch) (*site.SiteConfig, error) {
	cfg, err := r.GetSiteConfig(ctx)
	if err != nil {
		return nil, err
	}

	patch.ApplyTo(cfg)

	if err := r.store.Save("site-config", cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (r *fileRepository) GetHomepage(ctx context.Context) (*site.Homepage, error) {
	var hp site.Homepage
	if err := r.store.Load("homepage", &hp); err != nil {
		return nil, err
	}
	hp.Normalize()
	return &hp, nil
}

func (r *fileRepository) UpdateHomepage(ctx context.Context, patch site.HomepagePatch) (*site.Homepage, error) {
	hp, err := r.GetHomepage(ctx)
	if err != nil {
		return nil, err
	}

	patch.ApplyTo(hp)

	if err := r.store.Save("homepage", hp); err != nil {
		return nil, err
	}
	return hp, nil
}

func (r *fileRepository) GetMedia(ctx context.Context) (*site.Media, error) {
	var m site.Media
	if err := r.store.Load("media", &m); err != nil {
		return nil, err
	}
	m.Normalize()
	return &m, nil
}

func (r *fileRepository) UpdateMedia(ctx context.Context, patch site.MediaPatch) (*site.Media, error) {
	m, err := r.GetMedia(ctx)
	if err != nil {
		return nil, err
	}

	patch.ApplyTo(m)

	if err := r.store.Save("media", m); err != nil {
		return nil, err
	}
	return m, nil
}
