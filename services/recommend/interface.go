package recommend

import (
	"context"

	"rihla/models"

	"go.uber.org/zap"
)

// RecommendationService maps a free-text query plus browsing history onto
// the service catalog. Stateless per invocation: no caching, no retries.
type RecommendationService interface {
	Resolve(ctx context.Context, query string, history []string) (*models.Recommendation, error)
}

// DefaultRecommendationService implements RecommendationService. Client is
// nil when no provider credential is configured; Resolve surfaces that as
// ErrMissingAPIKey without attempting a call.
type DefaultRecommendationService struct {
	Client ContentGenerator
	Logger *zap.Logger
}
