package catalog

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug"` // generated from name when empty
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

func (r CreateCategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(2, 100)),
	)
}

type CategoryPatch struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Icon        *string `json:"icon"`
	Color       *string `json:"color"`
	Description *string `json:"description"`
}

func (p CategoryPatch) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Length(2, 100)),
	)
}

func (p *CategoryPatch) ApplyTo(c *Category) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Slug != nil {
		c.Slug = *p.Slug
	}
	if p.Icon != nil {
		c.Icon = *p.Icon
	}
	if p.Color != nil {
		c.Color = *p.Color
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
}

func (p CategoryPatch) RowPatch() map[string]interface{} {
	cols := map[string]interface{}{}
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.Slug != nil {
		cols["slug"] = *p.Slug
	}
	if p.Icon != nil {
		cols["icon"] = *p.Icon
	}
	if p.Color != nil {
		cols["color"] = *p.Color
	}
	if p.Description != nil {
		cols["description"] = *p.Description
	}
	return cols
}

type CreateServiceRequest struct {
	Name             string       `json:"name" binding:"required"`
	Slug             string       `json:"slug"`
	Icon             string       `json:"icon"`
	ShortDescription string       `json:"shortDescription"`
	FullDescription  string       `json:"fullDescription"`
	Prestations      []Prestation `json:"prestations"`
	FAQs             []FAQ        `json:"faqs"`
}

func (r CreateServiceRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(2, 100)),
	)
}

type ServicePatch struct {
	Name             *string       `json:"name"`
	Slug             *string       `json:"slug"`
	Icon             *string       `json:"icon"`
	ShortDescription *string       `json:"shortDescription"`
	FullDescription  *string       `json:"fullDescription"`
	Prestations      *[]Prestation `json:"prestations"` // replace-only
	FAQs             *[]FAQ        `json:"faqs"`        // replace-only
}

func (p ServicePatch) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Length(2, 100)),
	)
}

func (p *ServicePatch) ApplyTo(s *Service) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Slug != nil {
		s.Slug = *p.Slug
	}
	if p.Icon != nil {
		s.Icon = *p.Icon
	}
	if p.ShortDescription != nil {
		s.ShortDescription = *p.ShortDescription
	}
	if p.FullDescription != nil {
		s.FullDescription = *p.FullDescription
	}
	if p.Prestations != nil {
		s.Prestations = append([]Prestation{}, (*p.Prestations)...)
	}
	if p.FAQs != nil {
		s.FAQs = append([]FAQ{}, (*p.FAQs)...)
	}
}
