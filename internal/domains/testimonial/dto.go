package testimonial

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateRequest is a testimonial without its id; the server assigns one.
type CreateRequest struct {
	Name     string `json:"name" binding:"required"`
	Rating   int    `json:"rating" binding:"required"`
	Text     string `json:"text" binding:"required"`
	Service  string `json:"service"`
	Category string `json:"category"`
	Location string `json:"location"`
	Date     string `json:"date"`
	Verified bool   `json:"verified"`
}

func (r CreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&r.Rating, validation.Required, validation.Min(1), validation.Max(5)),
		validation.Field(&r.Text, validation.Required, validation.Length(1, 2000)),
	)
}

// Patch merges field-by-field; nil leaves the field unchanged.
type Patch struct {
	Name     *string `json:"name"`
	Rating   *int    `json:"rating"`
	Text     *string `json:"text"`
	Service  *string `json:"service"`
	Category *string `json:"category"`
	Location *string `json:"location"`
	Date     *string `json:"date"`
	Verified *bool   `json:"verified"`
}

func (p Patch) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Name, validation.Length(2, 100)),
		validation.Field(&p.Rating, validation.Min(1), validation.Max(5)),
	)
}

func (p *Patch) ApplyTo(t *Testimonial) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Rating != nil {
		t.Rating = *p.Rating
	}
	if p.Text != nil {
		t.Text = *p.Text
	}
	if p.Service != nil {
		t.Service = *p.Service
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Location != nil {
		t.Location = *p.Location
	}
	if p.Date != nil {
		t.Date = *p.Date
	}
	if p.Verified != nil {
		t.Verified = *p.Verified
	}
}

// RowPatch flattens the patch into a column→value map for the relational
// backend; only present fields produce columns.
func (p Patch) RowPatch() map[string]interface{} {
	cols := map[string]interface{}{}
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.Rating != nil {
		cols["rating"] = *p.Rating
	}
	if p.Text != nil {
		cols["text"] = *p.Text
	}
	if p.Service != nil {
		cols["service"] = *p.Service
	}
	if p.Category != nil {
		cols["category"] = *p.Category
	}
	if p.Location != nil {
		cols["location"] = *p.Location
	}
	if p.Date != nil {
		cols["date"] = *p.Date
	}
	if p.Verified != nil {
		cols["verified"] = *p.Verified
	}
	return cols
}

// ListResponse bundles the list with its always-fresh aggregate.
type ListResponse struct {
	Testimonials []Testimonial `json:"testimonials"`
	Stats        Stats         `json:"stats"`
}
