package brand

// Brand is a partner/manufacturer shown in the "nos marques" section.
// No uniqueness constraint beyond the generated id.
type Brand struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
	Website     string `json:"website"`
}
