package form

import (
	"testing"

	"rihla/models"
	"rihla/services/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func groupFieldNames(fields []models.FieldSpec) []string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Name)
	}
	return names
}

func TestRenderPlanFoldsCompanions(t *testing.T) {
	svc, ok := catalog.BySlug("transfert-prive")
	require.True(t, ok)

	kinds := make(map[GroupKind]FieldGroup)
	for _, g := range RenderPlan(svc) {
		if g.Kind != GroupSingle {
			kinds[g.Kind] = g
		}
	}

	phone, ok := kinds[GroupPhone]
	require.True(t, ok)
	assert.Equal(t, []string{FieldCountry, FieldPhone}, groupFieldNames(phone.Fields))

	party, ok := kinds[GroupParty]
	require.True(t, ok)
	assert.Equal(t, []string{FieldAdults, FieldChildren}, groupFieldNames(party.Fields))

	datetime, ok := kinds[GroupDateTime]
	require.True(t, ok)
	assert.Equal(t, []string{FieldDate, FieldTime}, groupFieldNames(datetime.Fields))
}

func TestRenderPlanCompanionsNeverStandalone(t *testing.T) {
	for _, svc := range catalog.All() {
		for _, g := range RenderPlan(svc) {
			require.NotEmpty(t, g.Fields)
			if g.Kind == GroupSingle {
				_, isCompanion := companionHosts[g.Fields[0].Name]
				assert.False(t, isCompanion, "service %s renders companion %q alone", svc.Slug, g.Fields[0].Name)
			}
		}
	}
}

func TestRenderPlanCanonicalOrder(t *testing.T) {
	svc, ok := catalog.BySlug("transfert-prive")
	require.True(t, ok)

	var leads []string
	for _, g := range RenderPlan(svc) {
		// The phone group leads with the dial code companion; compare on
		// the host field, which carries the rank.
		host := g.Fields[0].Name
		if g.Kind == GroupPhone {
			host = FieldPhone
		}
		leads = append(leads, host)
	}
	assert.Equal(t, []string{
		FieldFullName, FieldPhone, FieldPickup, FieldDropoff,
		FieldDate, FieldAdults, FieldRequests,
	}, leads)
}

func TestRenderPlanQuadCircuitSortsWithOptions(t *testing.T) {
	svc, ok := catalog.BySlug("quad-cotier")
	require.True(t, ok)

	groups := RenderPlan(svc)
	circuitAt, requestsAt, dateAt := -1, -1, -1
	for i, g := range groups {
		switch g.Fields[0].Name {
		case "circuit":
			circuitAt = i
			assert.Equal(t, GroupSingle, g.Kind)
		case FieldRequests:
			requestsAt = i
		case FieldDate:
			dateAt = i
			// No time field on this service, so the date renders alone.
			assert.Equal(t, GroupSingle, g.Kind)
		}
	}
	require.NotEqual(t, -1, circuitAt)
	require.NotEqual(t, -1, requestsAt)
	require.NotEqual(t, -1, dateAt)
	assert.Less(t, dateAt, circuitAt, "date renders before service options")
	assert.Less(t, circuitAt, requestsAt, "service options render before notes")
}
