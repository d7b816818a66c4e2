package realization

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type CreateRequest struct {
	Title        string `json:"title" binding:"required"`
	BuildingType string `json:"buildingType"`
	Location     string `json:"location"`
	Category     string `json:"category"`
	ServiceType  string `json:"serviceType"`
	Description  string `json:"description"`
	Image        string `json:"image"`
	BeforeImage  string `json:"beforeImage"`
	AfterImage   string `json:"afterImage"`
	Featured     bool   `json:"featured"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(2, 150)),
		validation.Field(&r.Description, validation.Length(0, 2000)),
	)
}

type Patch struct {
	Title        *string `json:"title"`
	BuildingType *string `json:"buildingType"`
	Location     *string `json:"location"`
	Category     *string `json:"category"`
	ServiceType  *string `json:"serviceType"`
	Description  *string `json:"description"`
	Image        *string `json:"image"`
	BeforeImage  *string `json:"beforeImage"`
	AfterImage   *string `json:"afterImage"`
	Featured     *bool   `json:"featured"`
}

func (p Patch) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Length(2, 150)),
	)
}

func (p *Patch) ApplyTo(r *Realization) {
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.BuildingType != nil {
		r.BuildingType = *p.BuildingType
	}
	if p.Location != nil {
		r.Location = *p.Location
	}
	if p.Category != nil {
		r.Category = *p.Category
	}
	if p.ServiceType != nil {
		r.ServiceType = *p.ServiceType
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.Image != nil {
		r.Image = *p.Image
	}
	if p.BeforeImage != nil {
		r.BeforeImage = *p.BeforeImage
	}
	if p.AfterImage != nil {
		r.AfterImage = *p.AfterImage
	}
	if p.Featured != nil {
		r.Featured = *p.Featured
	}
}

func (p Patch) RowPatch() map[string]interface{} {
	cols := map[string]interface{}{}
	if p.Title != nil {
		cols["title"] = *p.Title
	}
	if p.BuildingType != nil {
		cols["building_type"] = *p.BuildingType
	}
	if p.Location != nil {
		cols["location"] = *p.Location
	}
	if p.Category != nil {
		cols["category"] = *p.Category
	}
	if p.ServiceType != nil {
		cols["service_type"] = *p.ServiceType
	}
	if p.Description != nil {
		cols["description"] = *p.Description
	}
	if p.Image != nil {
		cols["image"] = *p.Image
	}
	if p.BeforeImage != nil {
		cols["before_image"] = *p.BeforeImage
	}
	if p.AfterImage != nil {
		cols["after_image"] = *p.AfterImage
	}
	if p.Featured != nil {
		cols["featured"] = *p.Featured
	}
	return cols
}
