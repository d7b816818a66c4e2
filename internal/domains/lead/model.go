package lead

// Lead is the full quote-request ("demande de devis") aggregate collected
// by the multi-step form.
type Lead struct {
	Identity Identity `json:"identity"`
	Address  Address  `json:"address"`
	Services Services `json:"services"`
	Details  Details  `json:"details"`
}

type Identity struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

type Address struct {
	Street       string          `json:"street"`
	PostalCode   string          `json:"postalCode"`
	City         string          `json:"city"`
	BuildingType string          `json:"buildingType"`
	BillingSame  bool            `json:"billingSame"`
	Billing      *BillingAddress `json:"billing,omitempty"`
}

type BillingAddress struct {
	Street     string `json:"street"`
	PostalCode string `json:"postalCode"`
	City       string `json:"city"`
}

type Services struct {
	Services []string `json:"services"`
}

type Details struct {
	Urgency string `json:"urgency"`
	Message string `json:"message"`
	Consent bool   `json:"consent"`
}

// BuildingTypes and ServiceSlugs are the fixed choices offered by the
// public form. Validation rejects anything outside these lists.
var BuildingTypes = []string{
	"Maison",
	"Appartement",
	"Société / Local commercial",
	"Copropriété",
}

var ServiceSlugs = []string{
	"installation-renovation",
	"depannage-electrique",
	"mise-aux-normes",
	"controle-acces",
	"interphonie",
	"videosurveillance",
	"serrurerie",
	"metallerie",
	"portail-motorisation",
}

var UrgencyLevels = []string{"urgence", "non-urgence"}
