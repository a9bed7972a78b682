package models

// RecommendRequest is the payload coming from the frontend into
// /api/recommendations.
type RecommendRequest struct {
	SearchQuery     string   `json:"searchQuery"`
	BrowsingHistory []string `json:"browsingHistory"`
}

// Recommendation is the reconciled result of one resolver invocation: the
// recommended services in the provider's emission order, plus its rationale.
type Recommendation struct {
	RecommendedServices []ServiceDefinition `json:"recommendedServices"`
	Reasoning           string              `json:"reasoning"`
}
