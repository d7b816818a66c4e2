package email

// LeadEmailData is the flattened lead payload the mail templates need.
// Kept local to this package so the lead domain does not leak into
// infrastructure.
type LeadEmailData struct {
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Street       string
	PostalCode   string
	City         string
	BuildingType string
	Services     []string
	Urgency      string
	Message      string
}
