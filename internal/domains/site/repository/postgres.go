package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"vitrine-backend/internal/domains/site"
	"vitrine-backend/internal/shared/apperr"
	"vitrine-backend/internal/shared/utils"
)

// postgresRepository reads/writes the singleton tables site_config, homepage
// and media (one row each, id = 1). Column patches are built by the shape
// adapter so only the fields present in the partial touch the row.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) site.Repository {
	return &postgresRepository{pool: pool}
}

const siteConfigColumns = `
	name, phone, phone_emergency, email,
	address_street, address_city, address_postal_code, address_country,
	hours_weekdays, hours_saturday, hours_sunday, hours_emergency,
	social_facebook, social_instagram, social_linkedin,
	seo_title, seo_description, seo_keywords,
	stats_years_experience, stats_clients_served, stats_interventions, stats_satisfaction,
	zones, logo, logo_white`

func (r *postgresRepository) GetSiteConfig(ctx context.Context) (*site.SiteConfig, error) {
	query := `SELECT` + siteConfigColumns + ` FROM site_config WHERE id = 1`

	var row SiteConfigRow
	err := r.pool.QueryRow(ctx, query).Scan(
		&row.Name, &row.Phone, &row.PhoneEmergency, &row.Email,
		&row.AddressStreet, &row.AddressCity, &row.AddressPostal, &row.AddressCountry,
		&row.HoursWeekdays, &row.HoursSaturday, &row.HoursSunday, &row.HoursEmergency,
		&row.SocialFacebook, &row.SocialInsta, &row.SocialLinkedin,
		&row.SeoTitle, &row.SeoDescription, &row.SeoKeywords,
		&row.StatsYears, &row.StatsClients, &row.StatsJobs, &row.StatsSatisfied,
		pq.Array(&row.Zones), &row.Logo, &row.LogoWhite,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.Storage("siteconfig.get", site.ErrNotInitialized)
		}
		return nil, apperr.Storage("siteconfig.get", err)
	}

	return SiteConfigFromRow(row), nil
}

func (r *postgresRepository) UpdateSiteConfig(ctx context.Context, patch site.SiteConfigPatch) (*site.SiteConfig, error) {
	cols := SiteConfigRowPatch(patch)
	if zones, ok := cols["zones"]; ok {
		cols["zones"] = pq.Array(zones.([]string))
	}

	if err := r.updateSingleton(ctx, "site_config", "siteconfig.update", cols); err != nil {
		return nil, err
	}
	return r.GetSiteConfig(ctx)
}

const homepageColumns = `
	hero_title, hero_subtitle, hero_cta_primary, hero_cta_secondary, hero_image, hero_video,
	services_title, services_subtitle, realizations_title, realizations_subtitle,
	testimonials_title, testimonials_subtitle, brands_title, brands_subtitle,
	about_title, about_subtitle, about_features`

func (r *postgresRepository) GetHomepage(ctx context.Context) (*site.Homepage, error) {
	query := `SELECT` + homepageColumns + ` FROM homepage WHERE id = 1`

	var row HomepageRow
	err := r.pool.QueryRow(ctx, query).Scan(
		&row.HeroTitle, &row.HeroSubtitle, &row.HeroCtaPrimary, &row.HeroCtaSecondary, &row.HeroImage, &row.HeroVideo,
		&row.ServicesTitle, &row.ServicesSubtitle, &row.RealizationsTitle, &row.RealizationsSubtitle,
		&row.TestimonialsTitle, &row.TestimonialsSubtitle, &row.BrandsTitle, &row.BrandsSubtitle,
		&row.AboutTitle, &row.AboutSubtitle, &row.AboutFeatures,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.Storage("homepage.get", site.ErrNotInitialized)
		}
		return nil, apperr.Storage("homepage.get", err)
	}

	hp, err := HomepageFromRow(row)
	if err != nil {
		return nil, apperr.Storage("homepage.decode", err)
	}
	return hp, nil
}

func (r *postgresRepository) UpdateHomepage(ctx context.Context, patch site.HomepagePatch) (*site.Homepage, error) {
	cols, err := HomepageRowPatch(patch)
	if err != nil {
		return nil, apperr.Storage("homepage.encode", err)
	}

	if err := r.updateSingleton(ctx, "homepage", "homepage.update", cols); err != nil {
		return nil, err
	}
	return r.GetHomepage(ctx)
}

func (r *postgresRepository) GetMedia(ctx context.Context) (*site.Media, error) {
	query := `SELECT logo, logo_white, favicon, hero_image, og_image, partners FROM media WHERE id = 1`

	var row MediaRow
	err := r.pool.QueryRow(ctx, query).Scan(
		&row.Logo, &row.LogoWhite, &row.Favicon, &row.HeroImage, &row.OgImage, &row.Partners,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.Storage("media.get", site.ErrNotInitialized)
		}
		return nil, apperr.Storage("media.get", err)
	}

	m, err := MediaFromRow(row)
	if err != nil {
		return nil, apperr.Storage("media.decode", err)
	}
	return m, nil
}

func (r *postgresRepository) UpdateMedia(ctx context.Context, patch site.MediaPatch) (*site.Media, error) {
	cols, err := MediaRowPatch(patch)
	if err != nil {
		return nil, apperr.Storage("media.encode", err)
	}

	if err := r.updateSingleton(ctx, "media", "media.update", cols); err != nil {
		return nil, err
	}
	return r.GetMedia(ctx)
}

// updateSingleton applies a column patch to the single row. An empty patch is
// a no-op; the caller still re-reads and returns the full record.
func (r *postgresRepository) updateSingleton(ctx context.Context, table, op string, cols map[string]interface{}) error {
	if len(cols) == 0 {
		return nil
	}

	setClause, args := utils.BuildSetClause(cols, 1)
	query := fmt.Sprintf(`UPDATE %s SET %s, updated_at = NOW() WHERE id = 1`, table, setClause)

	result, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return apperr.Storage(op, err)
	}
	if result.RowsAffected() == 0 {
		return apperr.Storage(op, site.ErrNotInitialized)
	}

	return nil
}
