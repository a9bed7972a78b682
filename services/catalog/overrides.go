package catalog

import (
	"context"
	"encoding/json"

	"rihla/models"
	"rihla/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// DisplayOverride is the CMS-sourced shape cached under
// "catalog:overrides:<slug>". Only display fields can be overridden; field
// schemas and validation always come from the static definition.
type DisplayOverride struct {
	Name    string          `json:"name,omitempty"`
	Pricing *models.Pricing `json:"pricing,omitempty"`
}

// WithOverrides merges any cached display override into a copy of the
// definition. Lookup is best effort: on a cache miss or any Redis failure the
// static definition is returned unchanged.
func WithOverrides(ctx context.Context, cache *redis.Client, svc models.ServiceDefinition) models.ServiceDefinition {
	if cache == nil {
		return svc
	}

	raw, err := cache.Get(ctx, "catalog:overrides:"+svc.Slug).Result()
	if err != nil {
		if err != redis.Nil {
			utils.GetLogger().Warn("catalog: override lookup failed", zap.String("slug", svc.Slug), zap.Error(err))
		}
		return svc
	}

	var override DisplayOverride
	if err := json.Unmarshal([]byte(raw), &override); err != nil {
		utils.GetLogger().Warn("catalog: malformed override payload", zap.String("slug", svc.Slug), zap.Error(err))
		return svc
	}

	if override.Name != "" {
		svc.Name = override.Name
	}
	if override.Pricing != nil {
		svc.Pricing = override.Pricing
	}
	return svc
}
