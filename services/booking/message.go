package booking

import (
	"fmt"
	"net/url"
	"strings"

	"rihla/models"
	"rihla/services/form"
)

// FormatOutboundMessage renders the WhatsApp text block for a submission.
// One fixed template per service, keyed by slug; the customer name is
// uppercased and empty optional fields carry explicit fill-ins, so the same
// submission always produces byte-identical output.
func FormatOutboundMessage(sub models.BookingSubmission, svc models.ServiceDefinition) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*NOUVELLE RÉSERVATION — %s*\n\n", strings.ToUpper(svc.Name))
	fmt.Fprintf(&b, "Nom : %s\n", strings.ToUpper(sub.Values[form.FieldFullName]))
	fmt.Fprintf(&b, "Téléphone : %s\n", sub.Phone)

	switch svc.Slug {
	case "transfert-prive":
		fmt.Fprintf(&b, "Départ : %s\n", sub.Values[form.FieldPickup])
		fmt.Fprintf(&b, "Destination : %s\n", sub.Values[form.FieldDropoff])
		fmt.Fprintf(&b, "Date : %s\n", sub.Date)
		fmt.Fprintf(&b, "Heure : %s\n", sub.Values[form.FieldTime])
		fmt.Fprintf(&b, "Adultes : %s\n", sub.Values[form.FieldAdults])
		fmt.Fprintf(&b, "Enfants : %s\n", sub.Values[form.FieldChildren])
	case "visite-souks":
		fmt.Fprintf(&b, "Email : %s\n", valueOr(sub.Values["email"], "Non renseigné"))
		fmt.Fprintf(&b, "Date : %s\n", sub.Date)
		fmt.Fprintf(&b, "Heure : %s\n", sub.Values[form.FieldTime])
		fmt.Fprintf(&b, "Adultes : %s\n", sub.Values[form.FieldAdults])
	case "quad-cotier":
		fmt.Fprintf(&b, "Circuit : %s\n", sub.Values["circuit"])
		fmt.Fprintf(&b, "Date : %s\n", sub.Date)
		fmt.Fprintf(&b, "Adultes : %s\n", sub.Values[form.FieldAdults])
		fmt.Fprintf(&b, "Enfants : %s\n", sub.Values[form.FieldChildren])
	case "balade-chameau":
		fmt.Fprintf(&b, "Date : %s\n", sub.Date)
		fmt.Fprintf(&b, "Heure : %s\n", sub.Values[form.FieldTime])
		fmt.Fprintf(&b, "Adultes : %s\n", sub.Values[form.FieldAdults])
		fmt.Fprintf(&b, "Enfants : %s\n", sub.Values[form.FieldChildren])
	default:
		// New services get a generic listing until they grow a template.
		for _, f := range svc.Fields {
			switch f.Name {
			case form.FieldFullName, form.FieldCountry, form.FieldPhone:
				continue
			case form.FieldDate:
				fmt.Fprintf(&b, "%s : %s\n", f.Label, sub.Date)
			default:
				fmt.Fprintf(&b, "%s : %s\n", f.Label, valueOr(sub.Values[f.Name], "Aucune"))
			}
		}
	}

	fmt.Fprintf(&b, "Demandes particulières : %s\n", valueOr(sub.Values[form.FieldRequests], "Aucune"))
	return b.String()
}

func valueOr(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

// BuildOutboundLink builds the wa.me deep link carrying the percent-encoded
// message to the service's operator number. Delivery is entirely WhatsApp's
// problem from here.
func BuildOutboundLink(svc models.ServiceDefinition, message string) string {
	q := url.Values{}
	q.Set("text", message)
	return "https://wa.me/" + svc.WhatsAppTo + "?" + q.Encode()
}
