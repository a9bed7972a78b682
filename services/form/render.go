package form

import (
	"sort"

	"rihla/models"
)

// GroupKind tells the rendering layer how to lay out a field group.
type GroupKind string

const (
	GroupSingle   GroupKind = "single"
	GroupPhone    GroupKind = "phone"    // phone + countryCode as one control
	GroupParty    GroupKind = "party"    // adults + children as one control
	GroupDateTime GroupKind = "datetime" // date + time as one control
)

// FieldGroup is one visual unit of the rendered form.
type FieldGroup struct {
	Kind   GroupKind          `json:"kind"`
	Fields []models.FieldSpec `json:"fields"`
}

// companionHosts maps a companion field to the host it renders inside of.
// Companions never appear as standalone inputs.
var companionHosts = map[string]string{
	FieldCountry:  FieldPhone,
	FieldChildren: FieldAdults,
	FieldTime:     FieldDate,
}

// canonicalRank fixes the rendering sequence: identity and contact fields,
// then route, then date/time, then party size, then service options, then
// free-text notes. Unranked fields sort into the options slot and keep their
// declared relative order.
var canonicalRank = map[string]int{
	FieldFullName: 0,
	"email":       1,
	FieldPhone:    2,
	FieldPickup:   10,
	FieldDropoff:  11,
	FieldDate:     20,
	FieldAdults:   30,
	FieldRequests: 90,
}

const optionsRank = 50

func rankOf(name string) int {
	if r, ok := canonicalRank[name]; ok {
		return r
	}
	return optionsRank
}

// RenderPlan orders a service's fields canonically and folds companion
// fields into their hosts as composite groups.
func RenderPlan(svc models.ServiceDefinition) []FieldGroup {
	byName := make(map[string]models.FieldSpec, len(svc.Fields))
	hosts := make([]models.FieldSpec, 0, len(svc.Fields))
	for _, f := range svc.Fields {
		byName[f.Name] = f
		if _, isCompanion := companionHosts[f.Name]; isCompanion {
			continue
		}
		hosts = append(hosts, f)
	}

	sort.SliceStable(hosts, func(i, j int) bool {
		return rankOf(hosts[i].Name) < rankOf(hosts[j].Name)
	})

	groups := make([]FieldGroup, 0, len(hosts))
	for _, host := range hosts {
		groups = append(groups, groupFor(host, byName))
	}
	return groups
}

func groupFor(host models.FieldSpec, byName map[string]models.FieldSpec) FieldGroup {
	switch host.Name {
	case FieldPhone:
		if cc, ok := byName[FieldCountry]; ok {
			return FieldGroup{Kind: GroupPhone, Fields: []models.FieldSpec{cc, host}}
		}
	case FieldAdults:
		if children, ok := byName[FieldChildren]; ok {
			return FieldGroup{Kind: GroupParty, Fields: []models.FieldSpec{host, children}}
		}
	case FieldDate:
		if t, ok := byName[FieldTime]; ok {
			return FieldGroup{Kind: GroupDateTime, Fields: []models.FieldSpec{host, t}}
		}
	}
	return FieldGroup{Kind: GroupSingle, Fields: []models.FieldSpec{host}}
}
