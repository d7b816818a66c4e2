package repository

import (
	"encoding/json"

	"vitrine-backend/internal/domains/site"
)

// Shape adapter between the relational rows (flat, snake_case, nullable
// columns) and the app shape (nested, camelCase, never-null display fields).
// Pure functions: FromRow normalizes NULL to empty string/zero/empty list;
// RowPatch emits a column→value map for exactly the fields present in the
// patch, so an absent nested group never nulls out its columns.

type SiteConfigRow struct {
	Name           *string
	Phone          *string
	PhoneEmergency *string
	Email          *string
	AddressStreet  *string
	AddressCity    *string
	AddressPostal  *string
	AddressCountry *string
	HoursWeekdays  *string
	HoursSaturday  *string
	HoursSunday    *string
	HoursEmergency *string
	SocialFacebook *string
	SocialInsta    *string
	SocialLinkedin *string
	SeoTitle       *string
	SeoDescription *string
	SeoKeywords    *string
	StatsYears     *int
	StatsClients   *int
	StatsJobs      *int
	StatsSatisfied *int
	Zones          []string
	Logo           *string
	LogoWhite      *string
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func num(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func SiteConfigFromRow(row SiteConfigRow) *site.SiteConfig {
	cfg := &site.SiteConfig{
		Name:           str(row.Name),
		Phone:          str(row.Phone),
		PhoneEmergency: str(row.PhoneEmergency),
		Email:          str(row.Email),
		Address: site.Address{
			Street:     str(row.AddressStreet),
			City:       str(row.AddressCity),
			PostalCode: str(row.AddressPostal),
			Country:    str(row.AddressCountry),
		},
		Hours: site.Hours{
			Weekdays:  str(row.HoursWeekdays),
			Saturday:  str(row.HoursSaturday),
			Sunday:    str(row.HoursSunday),
			Emergency: str(row.HoursEmergency),
		},
		Social: site.Social{
			Facebook:  str(row.SocialFacebook),
			Instagram: str(row.SocialInsta),
			Linkedin:  str(row.SocialLinkedin),
		},
		SEO: site.SEO{
			Title:       str(row.SeoTitle),
			Description: str(row.SeoDescription),
			Keywords:    str(row.SeoKeywords),
		},
		Stats: site.Stats{
			YearsExperience: num(row.StatsYears),
			ClientsServed:   num(row.StatsClients),
			Interventions:   num(row.StatsJobs),
			Satisfaction:    num(row.StatsSatisfied),
		},
		Zones:     row.Zones,
		Logo:      str(row.Logo),
		LogoWhite: str(row.LogoWhite),
	}
	cfg.Normalize()
	return cfg
}

// SiteConfigRowPatch flattens nested groups key-by-key:
// address.street → address_street, stats.yearsExperience → stats_years, etc.
func SiteConfigRowPatch(p site.SiteConfigPatch) map[string]interface{} {
	cols := map[string]interface{}{}

	setStr := func(col string, v *string) {
		if v != nil {
			cols[col] = *v
		}
	}
	setInt := func(col string, v *int) {
		if v != nil {
			cols[col] = *v
		}
	}

	setStr("name", p.Name)
	setStr("phone", p.Phone)
	setStr("phone_emergency", p.PhoneEmergency)
	setStr("email", p.Email)

	if p.Address != nil {
		setStr("address_street", p.Address.Street)
		setStr("address_city", p.Address.City)
		setStr("address_postal_code", p.Address.PostalCode)
		setStr("address_country", p.Address.Country)
	}
	if p.Hours != nil {
		setStr("hours_weekdays", p.Hours.Weekdays)
		setStr("hours_saturday", p.Hours.Saturday)
		setStr("hours_sunday", p.Hours.Sunday)
		setStr("hours_emergency", p.Hours.Emergency)
	}
	if p.Social != nil {
		setStr("social_facebook", p.Social.Facebook)
		setStr("social_instagram", p.Social.Instagram)
		setStr("social_linkedin", p.Social.Linkedin)
	}
	if p.SEO != nil {
		setStr("seo_title", p.SEO.Title)
		setStr("seo_description", p.SEO.Description)
		setStr("seo_keywords", p.SEO.Keywords)
	}
	if p.Stats != nil {
		setInt("stats_years_experience", p.Stats.YearsExperience)
		setInt("stats_clients_served", p.Stats.ClientsServed)
		setInt("stats_interventions", p.Stats.Interventions)
		setInt("stats_satisfaction", p.Stats.Satisfaction)
	}
	if p.Zones != nil {
		cols["zones"] = *p.Zones
	}
	setStr("logo", p.Logo)
	setStr("logo_white", p.LogoWhite)

	return cols
}

type HomepageRow struct {
	HeroTitle            *string
	HeroSubtitle         *string
	HeroCtaPrimary       *string
	HeroCtaSecondary     *string
	HeroImage            *string
	HeroVideo            *string
	ServicesTitle        *string
	ServicesSubtitle     *string
	RealizationsTitle    *string
	RealizationsSubtitle *string
	TestimonialsTitle    *string
	TestimonialsSubtitle *string
	BrandsTitle          *string
	BrandsSubtitle       *string
	AboutTitle           *string
	AboutSubtitle        *string
	AboutFeatures        []byte // jsonb
}

func HomepageFromRow(row HomepageRow) (*site.Homepage, error) {
	hp := &site.Homepage{
		Hero: site.Hero{
			Title:        str(row.HeroTitle),
			Subtitle:     str(row.HeroSubtitle),
			CTAPrimary:   str(row.HeroCtaPrimary),
			CTASecondary: str(row.HeroCtaSecondary),
			Image:        str(row.HeroImage),
			Video:        str(row.HeroVideo),
		},
		Services:     site.Section{Title: str(row.ServicesTitle), Subtitle: str(row.ServicesSubtitle)},
		Realizations: site.Section{Title: str(row.RealizationsTitle), Subtitle: str(row.RealizationsSubtitle)},
		Testimonials: site.Section{Title: str(row.TestimonialsTitle), Subtitle: str(row.TestimonialsSubtitle)},
		Brands:       site.Section{Title: str(row.BrandsTitle), Subtitle: str(row.BrandsSubtitle)},
		About:        site.Section{Title: str(row.AboutTitle), Subtitle: str(row.AboutSubtitle)},
	}

	if len(row.AboutFeatures) > 0 {
		if err := json.Unmarshal(row.AboutFeatures, &hp.AboutFeatures); err != nil {
			return nil, err
		}
	}
	hp.Normalize()
	return hp, nil
}

func HomepageRowPatch(p site.HomepagePatch) (map[string]interface{}, error) {
	cols := map[string]interface{}{}

	setStr := func(col string, v *string) {
		if v != nil {
			cols[col] = *v
		}
	}

	if p.Hero != nil {
		setStr("hero_title", p.Hero.Title)
		setStr("hero_subtitle", p.Hero.Subtitle)
		setStr("hero_cta_primary", p.Hero.CTAPrimary)
		setStr("hero_cta_secondary", p.Hero.CTASecondary)
		setStr("hero_image", p.Hero.Image)
		setStr("hero_video", p.Hero.Video)
	}

	sections := []struct {
		prefix string
		patch  *site.SectionPatch
	}{
		{"services", p.Services},
		{"realizations", p.Realizations},
		{"testimonials", p.Testimonials},
		{"brands", p.Brands},
		{"about", p.About},
	}
	for _, s := range sections {
		if s.patch != nil {
			setStr(s.prefix+"_title", s.patch.Title)
			setStr(s.prefix+"_subtitle", s.patch.Subtitle)
		}
	}

	if p.AboutFeatures != nil {
		data, err := json.Marshal(*p.AboutFeatures)
		if err != nil {
			return nil, err
		}
		cols["about_features"] = data
	}

	return cols, nil
}

type MediaRow struct {
	Logo      *string
	LogoWhite *string
	Favicon   *string
	HeroImage *string
	OgImage   *string
	Partners  []byte // jsonb
}

func MediaFromRow(row MediaRow) (*site.Media, error) {
	m := &site.Media{
		Logo:      str(row.Logo),
		LogoWhite: str(row.LogoWhite),
		Favicon:   str(row.Favicon),
		HeroImage: str(row.HeroImage),
		OGImage:   str(row.OgImage),
	}

	if len(row.Partners) > 0 {
		if err := json.Unmarshal(row.Partners, &m.Partners); err != nil {
			return nil, err
		}
	}
	m.Normalize()
	return m, nil
}

func MediaRowPatch(p site.MediaPatch) (map[string]interface{}, error) {
	cols := map[string]interface{}{}

	setStr := func(col string, v *string) {
		if v != nil {
			cols[col] = *v
		}
	}

	setStr("logo", p.Logo)
	setStr("logo_white", p.LogoWhite)
	setStr("favicon", p.Favicon)
	setStr("hero_image", p.HeroImage)
	setStr("og_image", p.OGImage)

	if p.Partners != nil {
		data, err := json.Marshal(*p.Partners)
		if err != nil {
			return nil, err
		}
		cols["partners"] = data
	}

	return cols, nil
}
