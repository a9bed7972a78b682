// Package form derives validation schemas, default values and rendering
// plans from a service's declared field list.
package form

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"rihla/models"
	"rihla/services/catalog"
)

// Well-known field names the engine gives special treatment.
const (
	FieldFullName = "fullName"
	FieldCountry  = "countryCode"
	FieldPhone    = "phone"
	FieldPickup   = "pickupLocation"
	FieldDropoff  = "dropoffLocation"
	FieldDate     = "date"
	FieldTime     = "time"
	FieldAdults   = "adults"
	FieldChildren = "children"
	FieldRequests = "specialRequests"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FieldError is a validation failure scoped to a single field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Schema is the value-level validation contract for one service. Building it
// is pure: the same service always yields the same contract.
type Schema struct {
	service  models.ServiceDefinition
	patterns map[string]*regexp.Regexp
}

// BuildSchema compiles a service's field constraints into a reusable schema.
func BuildSchema(svc models.ServiceDefinition) Schema {
	patterns := make(map[string]*regexp.Regexp)
	for _, f := range svc.Fields {
		if f.Constraint.Pattern != "" {
			patterns[f.Name] = regexp.MustCompile(f.Constraint.Pattern)
		}
	}
	return Schema{service: svc, patterns: patterns}
}

// Validate applies every field's validator to the identically named value.
// Each failing field contributes exactly one error; an empty slice means the
// submission may proceed.
func (s Schema) Validate(values map[string]string) []FieldError {
	var errs []FieldError
	for _, f := range s.service.Fields {
		if msg := s.validateField(f, values); msg != "" {
			errs = append(errs, FieldError{Field: f.Name, Message: msg})
		}
	}
	return errs
}

func (s Schema) validateField(f models.FieldSpec, values map[string]string) string {
	value := strings.TrimSpace(values[f.Name])

	if value == "" {
		if f.Required {
			return "Ce champ est requis."
		}
		return ""
	}

	if re, ok := s.patterns[f.Name]; ok && !re.MatchString(value) {
		if f.Type == models.FieldPhone {
			return "Numéro de téléphone invalide."
		}
		return "Format invalide."
	}

	switch f.Type {
	case models.FieldText, models.FieldTextarea, models.FieldPhone:
		if f.Constraint.MinLength > 0 && len([]rune(value)) < f.Constraint.MinLength {
			if f.Type == models.FieldPhone {
				return "Numéro de téléphone invalide."
			}
			return fmt.Sprintf("Minimum %d caractères.", f.Constraint.MinLength)
		}
	case models.FieldNumber:
		n, err := strconv.Atoi(value)
		if err != nil {
			return "Veuillez saisir un nombre valide."
		}
		if f.Constraint.MinValue != nil && n < *f.Constraint.MinValue {
			return fmt.Sprintf("La valeur minimale est %d.", *f.Constraint.MinValue)
		}
	case models.FieldSelect:
		return s.validateSelect(f, value, values)
	case models.FieldEmail:
		if !emailRe.MatchString(value) {
			return "Adresse email invalide."
		}
	case models.FieldDate:
		if _, err := time.Parse("2006-01-02", value); err != nil {
			return "Date invalide."
		}
	case models.FieldTime:
		if _, err := time.Parse("15:04", value); err != nil {
			return "Heure invalide."
		}
	}
	return ""
}

// validateSelect checks membership against the literal options, or against
// the routing table for a transfer dropoff, whose choices depend on the
// pickup value in the same submission.
func (s Schema) validateSelect(f models.FieldSpec, value string, values map[string]string) string {
	options := f.Options
	if f.Name == FieldDropoff {
		options = ResolveDestinationOptions(strings.TrimSpace(values[FieldPickup]), s.service)
		if !contains(options, value) {
			return "Cette destination n'est pas disponible depuis le lieu de départ."
		}
		return ""
	}
	if len(options) > 0 && !contains(options, value) {
		return "Choix invalide."
	}
	return ""
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// Defaults returns the initial form values for a service: empty strings for
// text-like fields, "1" for the adult count, "0" for other numerics. Date
// stays unset until the visitor picks one.
func Defaults(svc models.ServiceDefinition) map[string]string {
	values := make(map[string]string, len(svc.Fields))
	for _, f := range svc.Fields {
		switch f.Type {
		case models.FieldNumber:
			if f.Name == FieldAdults {
				values[f.Name] = "1"
			} else {
				values[f.Name] = "0"
			}
		case models.FieldDate:
			// unset
		default:
			values[f.Name] = ""
		}
	}
	return values
}

// ResolveDestinationOptions returns the dropoff choices for a pickup value.
// Transfer services route through the destinations table; other services fall
// back to their own declared options. Unknown pickups resolve to an empty
// list, never an error.
func ResolveDestinationOptions(pickup string, svc models.ServiceDefinition) []string {
	if svc.Transfer {
		return catalog.DestinationsFrom(pickup)
	}
	for _, f := range svc.Fields {
		if f.Name == FieldDropoff && len(f.Options) > 0 {
			out := make([]string, len(f.Options))
			copy(out, f.Options)
			return out
		}
	}
	return []string{}
}
