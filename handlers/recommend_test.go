package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"rihla/models"
	"rihla/services/catalog"
	"rihla/services/recommend"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRecommendationService struct {
	result *models.Recommendation
	err    error
}

func (f *fakeRecommendationService) Resolve(ctx context.Context, query string, history []string) (*models.Recommendation, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func recommendRouter(svc recommend.RecommendationService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewRecommendationHandler(svc, zap.NewNop())
	router.POST("/api/recommendations", h.HandleRecommend)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleRecommendSuccess(t *testing.T) {
	quad, ok := catalog.BySlug("quad-cotier")
	require.True(t, ok)

	router := recommendRouter(&fakeRecommendationService{
		result: &models.Recommendation{
			RecommendedServices: []models.ServiceDefinition{quad},
			Reasoning:           "Pour les amateurs de sensations.",
		},
	})

	w := postJSON(t, router, "/api/recommendations", gin.H{"searchQuery": "quad"})
	require.Equal(t, http.StatusOK, w.Code)

	var out models.Recommendation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	require.Len(t, out.RecommendedServices, 1)
	assert.Equal(t, "quad-cotier", out.RecommendedServices[0].Slug)
	assert.Equal(t, "Pour les amateurs de sensations.", out.Reasoning)
}

func TestHandleRecommendMalformedBody(t *testing.T) {
	router := recommendRouter(&fakeRecommendationService{})

	req := httptest.NewRequest(http.MethodPost, "/api/recommendations", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Requête invalide.")
}

func TestHandleRecommendErrorMapping(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"empty query", recommend.ErrEmptyQuery, http.StatusBadRequest, "Veuillez saisir une recherche."},
		{"unconfigured", recommend.ErrMissingAPIKey, http.StatusInternalServerError, "Le service de recommandation est indisponible."},
		{"upstream", &recommend.UpstreamError{Status: 429}, http.StatusInternalServerError, "Le service de recommandation a rencontré une erreur."},
		{"unparseable", &recommend.ParseError{Raw: "???"}, http.StatusInternalServerError, "Réponse du service de recommandation illisible."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := recommendRouter(&fakeRecommendationService{err: tc.err})

			w := postJSON(t, router, "/api/recommendations", gin.H{"searchQuery": "quad"})
			assert.Equal(t, tc.code, w.Code)
			assert.Contains(t, w.Body.String(), tc.message)
		})
	}
}
