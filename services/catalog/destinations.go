package catalog

// PickupLocations are the pickup choices offered on transfer services.
var PickupLocations = []string{
	"Essaouira",
	"Marrakech",
	"Agadir",
	"Aéroport d'Essaouira",
	"Aéroport de Marrakech",
}

// Destinations maps a pickup location to the dropoffs the business actually
// serves from there. The table is asymmetric on purpose (some routes are only
// sold one way); it is authoritative data, not a graph to complete.
var Destinations = map[string][]string{
	"Essaouira":             {"Marrakech", "Agadir", "Aéroport d'Essaouira", "Aéroport de Marrakech"},
	"Marrakech":             {"Essaouira", "Aéroport de Marrakech"},
	"Agadir":                {"Essaouira"},
	"Aéroport d'Essaouira":  {"Essaouira", "Marrakech"},
	"Aéroport de Marrakech": {"Marrakech", "Essaouira"},
}

// DestinationsFrom returns the reachable dropoffs for a pickup, empty for an
// unknown pickup key.
func DestinationsFrom(pickup string) []string {
	routes, ok := Destinations[pickup]
	if !ok {
		return []string{}
	}
	out := make([]string, len(routes))
	copy(out, routes)
	return out
}
