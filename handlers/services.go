package handlers

import (
	"net/http"

	"rihla/models"
	"rihla/services/catalog"
	"rihla/services/form"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// ServiceHandler serves the catalog and the derived form descriptions.
type ServiceHandler struct {
	Cache *redis.Client
}

func NewServiceHandler(cache *redis.Client) *ServiceHandler {
	return &ServiceHandler{Cache: cache}
}

// ListServices handles GET /api/services.
func (h *ServiceHandler) ListServices(c *gin.Context) {
	services := catalog.All()
	out := make([]models.ServiceDefinition, 0, len(services))
	for _, svc := range services {
		out = append(out, catalog.WithOverrides(c.Request.Context(), h.Cache, svc))
	}
	c.JSON(http.StatusOK, out)
}

// GetServiceBySlug handles GET /api/services/:slug.
func (h *ServiceHandler) GetServiceBySlug(c *gin.Context) {
	svc, ok := catalog.BySlug(c.Param("slug"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		return
	}
	c.JSON(http.StatusOK, catalog.WithOverrides(c.Request.Context(), h.Cache, svc))
}

// GetServiceForm handles GET /api/services/:slug/form. It returns everything
// a client needs to render the booking form: defaults, grouped fields in
// canonical order, and the dropoff options for an optional ?pickup= value.
func (h *ServiceHandler) GetServiceForm(c *gin.Context) {
	svc, ok := catalog.BySlug(c.Param("slug"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"slug":               svc.Slug,
		"defaults":           form.Defaults(svc),
		"groups":             form.RenderPlan(svc),
		"destinationOptions": form.ResolveDestinationOptions(c.Query("pickup"), svc),
	})
}
