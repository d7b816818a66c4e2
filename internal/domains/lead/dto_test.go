package lead

import (
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validIdentity() Identity {
	return Identity{
		FirstName: "Jean",
		LastName:  "Dupont",
		Email:     "jean.dupont@example.fr",
		Phone:     "06 12 34 56 78",
	}
}

func validAddress() Address {
	return Address{
		Street:       "12 rue de la République",
		PostalCode:   "92110",
		City:         "Clichy",
		BuildingType: "Maison",
		BillingSame:  true,
	}
}

func validLead() Lead {
	return Lead{
		Identity: validIdentity(),
		Address:  validAddress(),
		Services: Services{Services: []string{"installation-renovation"}},
		Details:  Details{Urgency: "non-urgence", Consent: true},
	}
}

func TestIdentityPhoneFormats(t *testing.T) {
	valid := []string{
		"06 12 34 56 78",
		"0612345678",
		"06.12.34.56.78",
		"06-12-34-56-78",
		"+33 6 12 34 56 78",
		"+33612345678",
		"0033 6 12 34 56 78",
	}
	for _, phone := range valid {
		id := validIdentity()
		id.Phone = phone
		assert.NoError(t, id.Validate(), "phone %q should be accepted", phone)
	}

	invalid := []string{
		"123",
		"00 12 34 56 78", // leading digit after trunk must be non-zero
		"06 12 34 56",    // too short
		"06 12 34 56 78 90",
		"abcdefghij",
		"",
	}
	for _, phone := range invalid {
		id := validIdentity()
		id.Phone = phone
		assert.Error(t, id.Validate(), "phone %q should be rejected", phone)
	}
}

func TestIdentityNameLength(t *testing.T) {
	id := validIdentity()
	id.FirstName = "J"
	err := id.Validate()
	require.Error(t, err)

	verrs, ok := err.(validation.Errors)
	require.True(t, ok)
	assert.Contains(t, verrs["firstName"].Error(), "prénom")

	id = validIdentity()
	id.LastName = strings.Repeat("a", 51)
	assert.Error(t, id.Validate())
}

func TestAddressPostalCode(t *testing.T) {
	a := validAddress()
	a.PostalCode = "92110"
	assert.NoError(t, a.Validate())

	for _, code := range []string{"9211", "921100", "9211a", ""} {
		a := validAddress()
		a.PostalCode = code
		assert.Error(t, a.Validate(), "postal code %q should be rejected", code)
	}
}

func TestAddressBuildingType(t *testing.T) {
	for _, bt := range BuildingTypes {
		a := validAddress()
		a.BuildingType = bt
		assert.NoError(t, a.Validate())
	}

	a := validAddress()
	a.BuildingType = "Château"
	assert.Error(t, a.Validate())
}

func TestAddressBillingOnlyWhenSeparate(t *testing.T) {
	// billingSame: no billing block needed
	a := validAddress()
	a.BillingSame = true
	a.Billing = nil
	assert.NoError(t, a.Validate())

	// separate billing: block becomes required
	a.BillingSame = false
	err := a.Validate()
	require.Error(t, err)

	a.Billing = &BillingAddress{Street: "3 avenue Foch", PostalCode: "75116", City: "Paris"}
	assert.NoError(t, a.Validate())

	// nested billing fields are themselves validated
	a.Billing.PostalCode = "751"
	assert.Error(t, a.Validate())
}

func TestServicesSelection(t *testing.T) {
	s := Services{Services: []string{"installation-renovation", "serrurerie"}}
	assert.NoError(t, s.Validate())

	assert.Error(t, Services{}.Validate())
	assert.Error(t, Services{Services: []string{}}.Validate())
	assert.Error(t, Services{Services: []string{"plomberie"}}.Validate())
}

func TestDetailsConsent(t *testing.T) {
	d := Details{Urgency: "urgence", Consent: true}
	assert.NoError(t, d.Validate())

	d.Consent = false
	err := d.Validate()
	require.Error(t, err)

	verrs, ok := err.(validation.Errors)
	require.True(t, ok)
	assert.Equal(t, consentMessage, verrs["consent"].Error())
}

func TestDetailsUrgency(t *testing.T) {
	for _, u := range UrgencyLevels {
		d := Details{Urgency: u, Consent: true}
		assert.NoError(t, d.Validate())
	}
	assert.Error(t, Details{Urgency: "tout-de-suite", Consent: true}.Validate())
	assert.Error(t, Details{Consent: true}.Validate())
}

func TestLeadAggregateValidation(t *testing.T) {
	assert.NoError(t, validLead().Validate())

	l := validLead()
	l.Identity.Phone = "123"
	l.Details.Consent = false
	err := l.Validate()
	require.Error(t, err)

	verrs, ok := err.(validation.Errors)
	require.True(t, ok)
	assert.Contains(t, verrs, "identity")
	assert.Contains(t, verrs, "details")
	assert.NotContains(t, verrs, "address")
}
