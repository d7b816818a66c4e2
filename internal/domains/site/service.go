package site

import "context"

// Service is what the handlers consume. Thin on purpose: merge semantics live
// in the patch types and the backends, validation happens here.
type Service interface {
	GetSiteConfig(ctx context.Context) (*SiteConfig, error)
	UpdateSiteConfig(ctx context.Context, patch SiteConfigPatch) (*SiteConfig, error)

	GetHomepage(ctx context.Context) (*Homepage, error)
	UpdateHomepage(ctx context.Context, patch HomepagePatch) (*Homepage, error)

	GetMedia(ctx context.Context) (*Media, error)
	UpdateMedia(ctx context.Context, patch MediaPatch) (*Media, error)
}
