package realization

// Realization is a portfolio entry (chantier réalisé).
type Realization struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	BuildingType string `json:"buildingType"`
	Location     string `json:"location"`
	Category     string `json:"category"`
	ServiceType  string `json:"serviceType"`
	Description  string `json:"description"`
	Image        string `json:"image"`
	BeforeImage  string `json:"beforeImage"`
	AfterImage   string `json:"afterImage"`
	Featured     bool   `json:"featured"` // surfaces on the homepage
}
