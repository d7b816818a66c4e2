package site

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Patch DTOs use pointer fields: nil means "leave unchanged". Unknown JSON
// fields are dropped by decoding, which gives the permissive admin-form
// behavior (ignored, not errored). Each ApplyTo is an explicit per-field merge
// so the mergeable-vs-replace contract is visible in code.

type AddressPatch struct {
	Street     *string `json:"street"`
	City       *string `json:"city"`
	PostalCode *string `json:"postalCode"`
	Country    *string `json:"country"`
}

func (p *AddressPatch) ApplyTo(a *Address) {
	if p.Street != nil {
		a.Street = *p.Street
	}
	if p.City != nil {
		a.City = *p.City
	}
	if p.PostalCode != nil {
		a.PostalCode = *p.PostalCode
	}
	if p.Country != nil {
		a.Country = *p.Country
	}
}

type HoursPatch struct {
	Weekdays  *string `json:"weekdays"`
	Saturday  *string `json:"saturday"`
	Sunday    *string `json:"sunday"`
	Emergency *string `json:"emergency"`
}

func (p *HoursPatch) ApplyTo(h *Hours) {
	if p.Weekdays != nil {
		h.Weekdays = *p.Weekdays
	}
	if p.Saturday != nil {
		h.Saturday = *p.Saturday
	}
	if p.Sunday != nil {
		h.Sunday = *p.Sunday
	}
	if p.Emergency != nil {
		h.Emergency = *p.Emergency
	}
}

type SocialPatch struct {
	Facebook  *string `json:"facebook"`
	Instagram *string `json:"instagram"`
	Linkedin  *string `json:"linkedin"`
}

func (p *SocialPatch) ApplyTo(s *Social) {
	if p.Facebook != nil {
		s.Facebook = *p.Facebook
	}
	if p.Instagram != nil {
		s.Instagram = *p.Instagram
	}
	if p.Linkedin != nil {
		s.Linkedin = *p.Linkedin
	}
}

type SEOPatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Keywords    *string `json:"keywords"`
}

func (p *SEOPatch) ApplyTo(s *SEO) {
	if p.Title != nil {
		s.Title = *p.Title
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.Keywords != nil {
		s.Keywords = *p.Keywords
	}
}

type StatsPatch struct {
	YearsExperience *int `json:"yearsExperience"`
	ClientsServed   *int `json:"clientsServed"`
	Interventions   *int `json:"interventions"`
	Satisfaction    *int `json:"satisfaction"`
}

func (p *StatsPatch) ApplyTo(s *Stats) {
	if p.YearsExperience != nil {
		s.YearsExperience = *p.YearsExperience
	}
	if p.ClientsServed != nil {
		s.ClientsServed = *p.ClientsServed
	}
	if p.Interventions != nil {
		s.Interventions = *p.Interventions
	}
	if p.Satisfaction != nil {
		s.Satisfaction = *p.Satisfaction
	}
}

// SiteConfigPatch merges scalars shallowly and nested groups key-by-key.
// Zones is a replace-only list.
type SiteConfigPatch struct {
	Name           *string       `json:"name"`
	Phone          *string       `json:"phone"`
	PhoneEmergency *string       `json:"phoneEmergency"`
	Email          *string       `json:"email"`
	Address        *AddressPatch `json:"address"`
	Hours          *HoursPatch   `json:"hours"`
	Social         *SocialPatch  `json:"social"`
	SEO            *SEOPatch     `json:"seo"`
	Stats          *StatsPatch   `json:"stats"`
	Zones          *[]string     `json:"zones"`
	Logo           *string       `json:"logo"`
	LogoWhite      *string       `json:"logoWhite"`
}

func (p SiteConfigPatch) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Length(1, 100)),
		validation.Field(&p.Email,
			validation.When(p.Email != nil && *p.Email != "", is.Email),
		),
	)
}

func (p *SiteConfigPatch) ApplyTo(cfg *SiteConfig) {
	if p.Name != nil {
		cfg.Name = *p.Name
	}
	if p.Phone != nil {
		cfg.Phone = *p.Phone
	}
	if p.PhoneEmergency != nil {
		cfg.PhoneEmergency = *p.PhoneEmergency
	}
	if p.Email != nil {
		cfg.Email = *p.Email
	}
	if p.Address != nil {
		p.Address.ApplyTo(&cfg.Address)
	}
	if p.Hours != nil {
		p.Hours.ApplyTo(&cfg.Hours)
	}
	if p.Social != nil {
		p.Social.ApplyTo(&cfg.Social)
	}
	if p.SEO != nil {
		p.SEO.ApplyTo(&cfg.SEO)
	}
	if p.Stats != nil {
		p.Stats.ApplyTo(&cfg.Stats)
	}
	if p.Zones != nil {
		cfg.Zones = append([]string{}, (*p.Zones)...)
	}
	if p.Logo != nil {
		cfg.Logo = *p.Logo
	}
	if p.LogoWhite != nil {
		cfg.LogoWhite = *p.LogoWhite
	}
}

type HeroPatch struct {
	Title        *string `json:"title"`
	Subtitle     *string `json:"subtitle"`
	CTAPrimary   *string `json:"ctaPrimary"`
	CTASecondary *string `json:"ctaSecondary"`
	Image        *string `json:"image"`
	Video        *string `json:"video"`
}

func (p *HeroPatch) ApplyTo(h *Hero) {
	if p.Title != nil {
		h.Title = *p.Title
	}
	if p.Subtitle != nil {
		h.Subtitle = *p.Subtitle
	}
	if p.CTAPrimary != nil {
		h.CTAPrimary = *p.CTAPrimary
	}
	if p.CTASecondary != nil {
		h.CTASecondary = *p.CTASecondary
	}
	if p.Image != nil {
		h.Image = *p.Image
	}
	if p.Video != nil {
		h.Video = *p.Video
	}
}

type SectionPatch struct {
	Title    *string `json:"title"`
	Subtitle *string `json:"subtitle"`
}

func (p *SectionPatch) ApplyTo(s *Section) {
	if p.Title != nil {
		s.Title = *p.Title
	}
	if p.Subtitle != nil {
		s.Subtitle = *p.Subtitle
	}
}

// HomepagePatch; AboutFeatures is a replace-only list.
type HomepagePatch struct {
	Hero          *HeroPatch      `json:"hero"`
	Services      *SectionPatch   `json:"services"`
	Realizations  *SectionPatch   `json:"realizations"`
	Testimonials  *SectionPatch   `json:"testimonials"`
	Brands        *SectionPatch   `json:"brands"`
	About         *SectionPatch   `json:"about"`
	AboutFeatures *[]AboutFeature `json:"aboutFeatures"`
}

func (p *HomepagePatch) ApplyTo(h *Homepage) {
	if p.Hero != nil {
		p.Hero.ApplyTo(&h.Hero)
	}
	if p.Services != nil {
		p.Services.ApplyTo(&h.Services)
	}
	if p.Realizations != nil {
		p.Realizations.ApplyTo(&h.Realizations)
	}
	if p.Testimonials != nil {
		p.Testimonials.ApplyTo(&h.Testimonials)
	}
	if p.Brands != nil {
		p.Brands.ApplyTo(&h.Brands)
	}
	if p.About != nil {
		p.About.ApplyTo(&h.About)
	}
	if p.AboutFeatures != nil {
		h.AboutFeatures = append([]AboutFeature{}, (*p.AboutFeatures)...)
	}
}

// MediaPatch; Partners is a replace-only list.
type MediaPatch struct {
	Logo      *string    `json:"logo"`
	LogoWhite *string    `json:"logoWhite"`
	Favicon   *string    `json:"favicon"`
	HeroImage *string    `json:"heroImage"`
	OGImage   *string    `json:"ogImage"`
	Partners  *[]Partner `json:"partners"`
}

func (p *MediaPatch) ApplyTo(m *Media) {
	if p.Logo != nil {
		m.Logo = *p.Logo
	}
	if p.LogoWhite != nil {
		m.LogoWhite = *p.LogoWhite
	}
	if p.Favicon != nil {
		m.Favicon = *p.Favicon
	}
	if p.HeroImage != nil {
		m.HeroImage = *p.HeroImage
	}
	if p.OGImage != nil {
		m.OGImage = *p.OGImage
	}
	if p.Partners != nil {
		m.Partners = append([]Partner{}, (*p.Partners)...)
	}
}
