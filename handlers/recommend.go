package handlers

import (
	"errors"
	"net/http"

	"rihla/models"
	"rihla/services/recommend"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RecommendationHandler fronts the resolver. Every failure mode maps to a
// typed short message; nothing propagates as an unhandled fault.
type RecommendationHandler struct {
	Svc    recommend.RecommendationService
	Logger *zap.Logger
}

func NewRecommendationHandler(svc recommend.RecommendationService, logger *zap.Logger) *RecommendationHandler {
	return &RecommendationHandler{Svc: svc, Logger: logger}
}

// HandleRecommend handles POST /api/recommendations.
func (h *RecommendationHandler) HandleRecommend(c *gin.Context) {
	var req models.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requête invalide."})
		return
	}

	result, err := h.Svc.Resolve(c.Request.Context(), req.SearchQuery, req.BrowsingHistory)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *RecommendationHandler) respondError(c *gin.Context, err error) {
	var upstream *recommend.UpstreamError
	var parse *recommend.ParseError

	switch {
	case errors.Is(err, recommend.ErrEmptyQuery):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Veuillez saisir une recherche."})
	case errors.Is(err, recommend.ErrMissingAPIKey):
		// Configuration failure; never name the missing credential.
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Le service de recommandation est indisponible."})
	case errors.As(err, &upstream):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Le service de recommandation a rencontré une erreur."})
	case errors.As(err, &parse):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Réponse du service de recommandation illisible."})
	default:
		h.Logger.Error("HandleRecommend: unexpected failure", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Une erreur inattendue est survenue."})
	}
}
