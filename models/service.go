package models

// FieldType enumerates the closed set of form input kinds a service can
// declare. The rendering layer switches exhaustively on these values.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldTextarea FieldType = "textarea"
	FieldNumber   FieldType = "number"
	FieldSelect   FieldType = "select"
	FieldPhone    FieldType = "phone"
	FieldDate     FieldType = "date"
	FieldTime     FieldType = "time"
	FieldEmail    FieldType = "email"
)

// Constraint describes the validation applied to one field. The zero value
// means free input with no extra checks.
type Constraint struct {
	MinLength int    `json:"minLength,omitempty"`
	MinValue  *int   `json:"minValue,omitempty"`
	Pattern   string `json:"pattern,omitempty"`
}

// FieldSpec describes a single booking-form input.
//
// The names "countryCode", "children" and "time" are companions: they are
// rendered inside the control of their host field (phone, adults, date) and
// must never appear as standalone inputs.
type FieldSpec struct {
	Name        string     `json:"name"`
	Label       string     `json:"label"`
	Type        FieldType  `json:"type"`
	Required    bool       `json:"required"`
	Placeholder string     `json:"placeholder,omitempty"`
	Options     []string   `json:"options,omitempty"` // empty on a select means computed at runtime
	Constraint  Constraint `json:"constraint"`
}

// Pricing is the optional advertised price of a service.
type Pricing struct {
	Amount int    `json:"amount"`
	Unit   string `json:"unit"` // e.g. "MAD / personne", "MAD / trajet"
}

// ServiceDefinition is one bookable offering. Definitions are static
// configuration: slug is globally unique and never reused, id is stable
// across catalog revisions (bookings reference it), and nothing here is
// mutated at runtime. CMS overrides may replace display fields (name,
// pricing) at read time; field behavior always comes from the static
// definition.
type ServiceDefinition struct {
	ID           int         `json:"id"`
	Slug         string      `json:"slug"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	Features     []string    `json:"features,omitempty"`
	Pricing      *Pricing    `json:"pricing,omitempty"`
	Fields       []FieldSpec `json:"fields"`
	WhatsAppTo   string      `json:"whatsappTo"` // E.164 digits without the plus sign
	DisplayOrder int         `json:"displayOrder"`
	Transfer     bool        `json:"transfer"` // route fields resolved against the destinations table
}
