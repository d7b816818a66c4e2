package site

// The three singleton collections behind the public pages: site configuration,
// homepage copy and the media library. Exactly one live record each; updates
// are partial merges, never replace-or-fail.

// Address of the company office.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// Hours as displayed copy, not structured opening times.
type Hours struct {
	Weekdays  string `json:"weekdays"`
	Saturday  string `json:"saturday"`
	Sunday    string `json:"sunday"`
	Emergency string `json:"emergency"`
}

type Social struct {
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	Linkedin  string `json:"linkedin"`
}

type SEO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Keywords    string `json:"keywords"`
}

// Stats are the headline numbers on the homepage.
type Stats struct {
	YearsExperience int `json:"yearsExperience"`
	ClientsServed   int `json:"clientsServed"`
	Interventions   int `json:"interventions"`
	Satisfaction    int `json:"satisfaction"` // percent
}

type SiteConfig struct {
	Name           string   `json:"name"`
	Phone          string   `json:"phone"`
	PhoneEmergency string   `json:"phoneEmergency"`
	Email          string   `json:"email"`
	Address        Address  `json:"address"`
	Hours          Hours    `json:"hours"`
	Social         Social   `json:"social"`
	SEO            SEO      `json:"seo"`
	Stats          Stats    `json:"stats"`
	Zones          []string `json:"zones"`
	Logo           string   `json:"logo"`
	LogoWhite      string   `json:"logoWhite"`
}

type Hero struct {
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle"`
	CTAPrimary   string `json:"ctaPrimary"`
	CTASecondary string `json:"ctaSecondary"`
	Image        string `json:"image"`
	Video        string `json:"video"`
}

// Section holds the title/subtitle pair shown above a homepage section.
type Section struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

type AboutFeature struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Homepage struct {
	Hero          Hero           `json:"hero"`
	Services      Section        `json:"services"`
	Realizations  Section        `json:"realizations"`
	Testimonials  Section        `json:"testimonials"`
	Brands        Section        `json:"brands"`
	About         Section        `json:"about"`
	AboutFeatures []AboutFeature `json:"aboutFeatures"`
}

type Partner struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

type Media struct {
	Logo      string    `json:"logo"`
	LogoWhite string    `json:"logoWhite"`
	Favicon   string    `json:"favicon"`
	HeroImage string    `json:"heroImage"`
	OGImage   string    `json:"ogImage"`
	Partners  []Partner `json:"partners"`
}

// Normalize replaces nil slices so the UI never null-checks display fields.
func (s *SiteConfig) Normalize() {
	if s.Zones == nil {
		s.Zones = []string{}
	}
}

func (h *Homepage) Normalize() {
	if h.AboutFeatures == nil {
		h.AboutFeatures = []AboutFeature{}
	}
}

func (m *Media) Normalize() {
	if m.Partners == nil {
		m.Partners = []Partner{}
	}
}
