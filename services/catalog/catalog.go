package catalog

import (
	"sort"

	"rihla/models"
)

var dialCodes = []string{"+212", "+33", "+34", "+44", "+49", "+1"}

func intPtr(v int) *int { return &v }

// services is the canonical registry. Slugs are never reused and ids are
// referenced by stored bookings, so entries are only ever appended.
var services = []models.ServiceDefinition{
	{
		ID:          1,
		Slug:        "transfert-prive",
		Name:        "Transfert Privé Aéroport & Villes",
		Description: "Transferts privés confortables entre Essaouira, Marrakech, Agadir et les aéroports, avec chauffeur francophone.",
		Features:    []string{"Véhicule climatisé", "Chauffeur professionnel", "Prise en charge à l'heure", "Eau minérale offerte"},
		Pricing:     &models.Pricing{Amount: 900, Unit: "MAD / trajet"},
		WhatsAppTo:  "212661438921",
		Transfer:    true,
		Fields: []models.FieldSpec{
			{Name: "fullName", Label: "Nom complet", Type: models.FieldText, Required: true, Placeholder: "Votre nom complet", Constraint: models.Constraint{MinLength: 2}},
			{Name: "countryCode", Label: "Indicatif", Type: models.FieldSelect, Required: true, Options: dialCodes},
			{Name: "phone", Label: "Téléphone", Type: models.FieldPhone, Required: true, Placeholder: "612345678", Constraint: models.Constraint{MinLength: 6, Pattern: `^[0-9]+$`}},
			{Name: "pickupLocation", Label: "Lieu de départ", Type: models.FieldSelect, Required: true, Options: PickupLocations},
			{Name: "dropoffLocation", Label: "Destination", Type: models.FieldSelect, Required: true}, // options depend on the chosen pickup
			{Name: "date", Label: "Date", Type: models.FieldDate, Required: true},
			{Name: "time", Label: "Heure", Type: models.FieldTime, Required: true},
			{Name: "adults", Label: "Adultes", Type: models.FieldNumber, Required: true, Constraint: models.Constraint{MinValue: intPtr(1)}},
			{Name: "children", Label: "Enfants", Type: models.FieldNumber, Constraint: models.Constraint{MinValue: intPtr(0)}},
			{Name: "specialRequests", Label: "Demandes particulières", Type: models.FieldTextarea, Placeholder: "Siège bébé, bagages volumineux..."},
		},
		DisplayOrder: 1,
	},
	{
		ID:          2,
		Slug:        "visite-souks",
		Name:        "Visite Guidée des Souks",
		Description: "Découverte de la médina d'Essaouira et de ses souks avec un guide local agréé : ébénistes, épices, criée au poisson.",
		Features:    []string{"Guide local agréé", "Durée 3 heures", "Dégustation incluse", "Départ place Moulay Hassan"},
		Pricing:     &models.Pricing{Amount: 250, Unit: "MAD / personne"},
		WhatsAppTo:  "212668054377",
		Fields: []models.FieldSpec{
			{Name: "fullName", Label: "Nom complet", Type: models.FieldText, Required: true, Placeholder: "Votre nom complet", Constraint: models.Constraint{MinLength: 2}},
			{Name: "countryCode", Label: "Indicatif", Type: models.FieldSelect, Required: true, Options: dialCodes},
			{Name: "phone", Label: "Téléphone", Type: models.FieldPhone, Required: true, Placeholder: "612345678", Constraint: models.Constraint{MinLength: 6, Pattern: `^[0-9]+$`}},
			{Name: "email", Label: "Email", Type: models.FieldEmail, Placeholder: "vous@exemple.com"},
			{Name: "date", Label: "Date", Type: models.FieldDate, Required: true},
			{Name: "time", Label: "Heure", Type: models.FieldTime, Required: true},
			{Name: "adults", Label: "Adultes", Type: models.FieldNumber, Required: true, Constraint: models.Constraint{MinValue: intPtr(1)}},
			{Name: "specialRequests", Label: "Demandes particulières", Type: models.FieldTextarea},
		},
		DisplayOrder: 2,
	},
	{
		ID:          3,
		Slug:        "quad-cotier",
		Name:        "Aventure Quad Côtière",
		Description: "Randonnée en quad sur les plages et dans les forêts d'arganiers au sud d'Essaouira, encadrée par des moniteurs diplômés.",
		Features:    []string{"Quad récent 350cc", "Casque et équipement fournis", "Pause thé chez l'habitant", "À partir de 16 ans en conduite"},
		Pricing:     &models.Pricing{Amount: 400, Unit: "MAD / personne"},
		WhatsAppTo:  "212668054377",
		Fields: []models.FieldSpec{
			{Name: "fullName", Label: "Nom complet", Type: models.FieldText, Required: true, Placeholder: "Votre nom complet", Constraint: models.Constraint{MinLength: 2}},
			{Name: "countryCode", Label: "Indicatif", Type: models.FieldSelect, Required: true, Options: dialCodes},
			{Name: "phone", Label: "Téléphone", Type: models.FieldPhone, Required: true, Placeholder: "612345678", Constraint: models.Constraint{MinLength: 6, Pattern: `^[0-9]+$`}},
			{Name: "circuit", Label: "Circuit", Type: models.FieldSelect, Required: true, Options: []string{"Plage & Dunes (2h)", "Forêt d'Arganiers (3h)", "Grand Circuit (journée)"}},
			{Name: "date", Label: "Date", Type: models.FieldDate, Required: true},
			{Name: "adults", Label: "Adultes", Type: models.FieldNumber, Required: true, Constraint: models.Constraint{MinValue: intPtr(1)}},
			{Name: "children", Label: "Enfants", Type: models.FieldNumber, Constraint: models.Constraint{MinValue: intPtr(0)}},
			{Name: "specialRequests", Label: "Demandes particulières", Type: models.FieldTextarea},
		},
		DisplayOrder: 3,
	},
	{
		ID:          4,
		Slug:        "balade-chameau",
		Name:        "Balade à Dos de Chameau",
		Description: "Balade au coucher du soleil le long de la plage d'Essaouira, entre les dunes et les ruines du Borj El Berod.",
		Features:    []string{"Chamelier expérimenté", "Durée 2 heures", "Idéal familles", "Photos incluses"},
		Pricing:     &models.Pricing{Amount: 200, Unit: "MAD / personne"},
		WhatsAppTo:  "212668054377",
		Fields: []models.FieldSpec{
			{Name: "fullName", Label: "Nom complet", Type: models.FieldText, Required: true, Placeholder: "Votre nom complet", Constraint: models.Constraint{MinLength: 2}},
			{Name: "countryCode", Label: "Indicatif", Type: models.FieldSelect, Required: true, Options: dialCodes},
			{Name: "phone", Label: "Téléphone", Type: models.FieldPhone, Required: true, Placeholder: "612345678", Constraint: models.Constraint{MinLength: 6, Pattern: `^[0-9]+$`}},
			{Name: "date", Label: "Date", Type: models.FieldDate, Required: true},
			{Name: "time", Label: "Heure", Type: models.FieldTime, Required: true},
			{Name: "adults", Label: "Adultes", Type: models.FieldNumber, Required: true, Constraint: models.Constraint{MinValue: intPtr(1)}},
			{Name: "children", Label: "Enfants", Type: models.FieldNumber, Constraint: models.Constraint{MinValue: intPtr(0)}},
			{Name: "specialRequests", Label: "Demandes particulières", Type: models.FieldTextarea},
		},
		DisplayOrder: 4,
	},
}

// All returns every service ordered by display order.
func All() []models.ServiceDefinition {
	out := make([]models.ServiceDefinition, len(services))
	copy(out, services)
	sort.SliceStable(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out
}

// BySlug looks up a service by its URL slug.
func BySlug(slug string) (models.ServiceDefinition, bool) {
	for _, svc := range services {
		if svc.Slug == slug {
			return svc, true
		}
	}
	return models.ServiceDefinition{}, false
}

// ByID looks up a service by its stable id.
func ByID(id int) (models.ServiceDefinition, bool) {
	for _, svc := range services {
		if svc.ID == id {
			return svc, true
		}
	}
	return models.ServiceDefinition{}, false
}

// ByName looks up a service by its exact canonical name. The recommendation
// resolver reconciles provider output through this; matching is deliberately
// case-sensitive.
func ByName(name string) (models.ServiceDefinition, bool) {
	for _, svc := range services {
		if svc.Name == name {
			return svc, true
		}
	}
	return models.ServiceDefinition{}, false
}

// Names returns the canonical service names in catalog order.
func Names() []string {
	names := make([]string, 0, len(services))
	for _, svc := range All() {
		names = append(names, svc.Name)
	}
	return names
}
