package form

import (
	"testing"

	"rihla/services/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickupChangeClearsDropoff(t *testing.T) {
	svc, ok := catalog.BySlug("transfert-prive")
	require.True(t, ok)

	state := NewFormState(svc)
	state.SetValue(FieldPickup, "Essaouira")
	state.SetValue(FieldDropoff, "Marrakech")
	require.Equal(t, "Marrakech", state.Value(FieldDropoff))

	state.SetValue(FieldPickup, "Agadir")
	assert.Equal(t, "", state.Value(FieldDropoff))
	assert.Equal(t, []string{"Essaouira"}, state.DropoffOptions())
}

func TestReselectingSamePickupStillClearsDropoff(t *testing.T) {
	svc, ok := catalog.BySlug("transfert-prive")
	require.True(t, ok)

	state := NewFormState(svc)
	state.SetValue(FieldPickup, "Essaouira")
	state.SetValue(FieldDropoff, "Marrakech")

	state.SetValue(FieldPickup, "Essaouira")
	assert.Equal(t, "", state.Value(FieldDropoff), "a stale dropoff must not survive a pickup re-selection")

	state.SetValue(FieldPickup, "Essaouira")
	assert.Equal(t, "", state.Value(FieldDropoff))
}

func TestStateSeedsDefaults(t *testing.T) {
	svc, ok := catalog.BySlug("transfert-prive")
	require.True(t, ok)

	state := NewFormState(svc)
	assert.Equal(t, "1", state.Value(FieldAdults))
	assert.Equal(t, "0", state.Value(FieldChildren))

	values := state.Values()
	values[FieldAdults] = "9"
	assert.Equal(t, "1", state.Value(FieldAdults), "Values must return a copy")
}
