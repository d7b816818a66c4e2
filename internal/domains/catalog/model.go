package catalog

// Category groups the services of one trade (électricité, serrurerie, ...).
// Services belong to exactly one category: ownership, not sharing.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Icon        string    `json:"icon"`
	Color       string    `json:"color"`
	Description string    `json:"description"`
	Services    []Service `json:"services"`
}

type Service struct {
	ID               string       `json:"id"`
	CategoryID       string       `json:"categoryId"`
	Name             string       `json:"name"`
	Slug             string       `json:"slug"` // unique within the category
	Icon             string       `json:"icon"`
	ShortDescription string       `json:"shortDescription"`
	FullDescription  string       `json:"fullDescription"`
	Prestations      []Prestation `json:"prestations"`
	FAQs             []FAQ        `json:"faqs"`
}

// Prestation is a titled bullet-list block on a service page.
type Prestation struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func (c *Category) Normalize() {
	if c.Services == nil {
		c.Services = []Service{}
	}
	for i := range c.Services {
		c.Services[i].Normalize()
	}
}

func (s *Service) Normalize() {
	if s.Prestations == nil {
		s.Prestations = []Prestation{}
	}
	if s.FAQs == nil {
		s.FAQs = []FAQ{}
	}
}
