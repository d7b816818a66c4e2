package lead

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// French phone numbers: trunk 0 or +33 / 00 33, then a non-zero digit and
// four groups of two, with spaces, dots or dashes tolerated anywhere
// between groups.
var (
	phonePattern  = regexp.MustCompile(`^(?:(?:\+|00)\s*33|0)\s*[1-9](?:[\s.\-]*\d{2}){4}$`)
	postalPattern = regexp.MustCompile(`^\d{5}$`)
)

const consentMessage = "Vous devez accepter le traitement de vos données pour envoyer votre demande"

func oneOf(options []string) validation.InRule {
	vals := make([]interface{}, len(options))
	for i, o := range options {
		vals[i] = o
	}
	return validation.In(vals...)
}

func (i Identity) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.FirstName,
			validation.Required.Error("Le prénom est requis"),
			validation.Length(2, 50).Error("Le prénom doit contenir entre 2 et 50 caractères")),
		validation.Field(&i.LastName,
			validation.Required.Error("Le nom est requis"),
			validation.Length(2, 50).Error("Le nom doit contenir entre 2 et 50 caractères")),
		validation.Field(&i.Email,
			validation.Required.Error("L'adresse email est requise"),
			is.Email.Error("Adresse email invalide")),
		validation.Field(&i.Phone,
			validation.Required.Error("Le numéro de téléphone est requis"),
			validation.Match(phonePattern).Error("Numéro de téléphone invalide")),
	)
}

func (b BillingAddress) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Street, validation.Required.Error("L'adresse de facturation est requise")),
		validation.Field(&b.PostalCode,
			validation.Required.Error("Le code postal de facturation est requis"),
			validation.Match(postalPattern).Error("Le code postal doit contenir 5 chiffres")),
		validation.Field(&b.City, validation.Required.Error("La ville de facturation est requise")),
	)
}

func (a Address) Validate() error {
	fields := []*validation.FieldRules{
		validation.Field(&a.Street, validation.Required.Error("L'adresse d'intervention est requise")),
		validation.Field(&a.PostalCode,
			validation.Required.Error("Le code postal est requis"),
			validation.Match(postalPattern).Error("Le code postal doit contenir 5 chiffres")),
		validation.Field(&a.City, validation.Required.Error("La ville est requise")),
		validation.Field(&a.BuildingType,
			validation.Required.Error("Le type de bâtiment est requis"),
			oneOf(BuildingTypes).Error("Type de bâtiment invalide")),
	}

	// Billing only applies when the invoice goes elsewhere; a Validatable
	// pointer field is validated automatically, so skip it when unused.
	if a.BillingSame {
		fields = append(fields, validation.Field(&a.Billing, validation.Skip))
	} else {
		fields = append(fields, validation.Field(&a.Billing,
			validation.Required.Error("L'adresse de facturation est requise")))
	}

	return validation.ValidateStruct(&a, fields...)
}

func (s Services) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Services,
			validation.Required.Error("Sélectionnez au moins une prestation"),
			validation.Each(oneOf(ServiceSlugs).Error("Prestation inconnue"))),
	)
}

func (d Details) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Urgency,
			validation.Required.Error("Le niveau d'urgence est requis"),
			oneOf(UrgencyLevels).Error("Niveau d'urgence invalide")),
		validation.Field(&d.Message, validation.Length(0, 2000).Error("Le message est trop long")),
		validation.Field(&d.Consent, validation.Required.Error(consentMessage)),
	)
}

// Validate checks the whole aggregate, keyed by section so field errors
// stay addressable as identity.firstName, details.consent and so on.
func (l Lead) Validate() error {
	errs := validation.Errors{}
	if err := l.Identity.Validate(); err != nil {
		errs["identity"] = err
	}
	if err := l.Address.Validate(); err != nil {
		errs["address"] = err
	}
	if err := l.Services.Validate(); err != nil {
		errs["services"] = err
	}
	if err := l.Details.Validate(); err != nil {
		errs["details"] = err
	}
	return errs.Filter()
}
