package booking

import (
	"fmt"
	"strings"
	"time"

	"rihla/models"
	"rihla/services/form"
)

var frMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// formatDateFR turns an ISO date into the "2 janvier 2006" shape used in
// outbound messages. Unparseable input is passed through untouched.
func formatDateFR(raw string) string {
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return raw
	}
	return fmt.Sprintf("%d %s %d", t.Day(), frMonths[t.Month()-1], t.Year())
}

// Normalize builds a BookingSubmission from validated form values. It never
// fails: missing optional fields get their documented fill-ins (absent
// children count as 0, absent requests as "Aucune"), the phone is the dial
// code concatenated with the local digits, and the date is reformatted for
// the service's locale.
func Normalize(values map[string]string, svc models.ServiceDefinition) models.BookingSubmission {
	normalized := make(map[string]string, len(values))
	for k, v := range values {
		normalized[k] = strings.TrimSpace(v)
	}
	if normalized[form.FieldChildren] == "" {
		normalized[form.FieldChildren] = "0"
	}
	if normalized[form.FieldRequests] == "" {
		normalized[form.FieldRequests] = "Aucune"
	}

	return models.BookingSubmission{
		ServiceID:   svc.ID,
		ServiceName: svc.Name,
		Values:      normalized,
		Phone:       normalized[form.FieldCountry] + normalized[form.FieldPhone],
		Date:        formatDateFR(normalized[form.FieldDate]),
		CreatedAt:   time.Now(),
	}
}
