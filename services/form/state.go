package form

import "rihla/models"

// FormState tracks one in-progress form. It exists so the pickup/dropoff
// dependency has a single owner: changing the pickup always clears the chosen
// dropoff, so a stale route can never survive into validation.
type FormState struct {
	service models.ServiceDefinition
	values  map[string]string
}

// NewFormState seeds a state with the service's defaults.
func NewFormState(svc models.ServiceDefinition) *FormState {
	return &FormState{service: svc, values: Defaults(svc)}
}

// Value returns the current value of a field.
func (f *FormState) Value(name string) string {
	return f.values[name]
}

// Values returns a copy of the current values.
func (f *FormState) Values() map[string]string {
	out := make(map[string]string, len(f.values))
	for k, v := range f.values {
		out[k] = v
	}
	return out
}

// SetValue records a field value. Setting the pickup clears any chosen
// dropoff first — unconditionally, so re-selecting the same pickup does not
// resurrect the previous choice.
func (f *FormState) SetValue(name, value string) {
	if name == FieldPickup {
		f.values[FieldDropoff] = ""
	}
	f.values[name] = value
}

// DropoffOptions resolves the dropoff choices for the current pickup.
func (f *FormState) DropoffOptions() []string {
	return ResolveDestinationOptions(f.values[FieldPickup], f.service)
}
