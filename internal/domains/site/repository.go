package site

import "context"

// Repository is the singleton-collection contract implemented by both the
// local file backend and the remote Postgres backend. Updates carry the
// partial patch down to the backend so the relational implementation can emit
// a column patch for exactly the fields present.
type Repository interface {
	GetSiteConfig(ctx context.Context) (*SiteConfig, error)
	UpdateSiteConfig(ctx context.Context, patch SiteConfigPatch) (*SiteConfig, error)

	GetHomepage(ctx context.Context) (*Homepage, error)
	UpdateHomepage(ctx context.Context, patch HomepagePatch) (*Homepage, error)

	GetMedia(ctx context.Context) (*Media, error)
	UpdateMedia(ctx context.Context, patch MediaPatch) (*Media, error)
}
