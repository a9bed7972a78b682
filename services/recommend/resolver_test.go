package recommend

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/api/googleapi"
)

// fakeGenerator plays the provider and counts invocations.
type fakeGenerator struct {
	response string
	err      error
	calls    int
	prompt   string
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.prompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func newTestService(gen ContentGenerator) *DefaultRecommendationService {
	return &DefaultRecommendationService{Client: gen, Logger: zap.NewNop()}
}

func TestResolveEmptyQueryShortCircuits(t *testing.T) {
	gen := &fakeGenerator{response: `{"services": [], "reasoning": ""}`}
	svc := newTestService(gen)

	for _, query := range []string{"", "   ", "\n\t"} {
		_, err := svc.Resolve(context.Background(), query, nil)
		assert.ErrorIs(t, err, ErrEmptyQuery)
	}
	assert.Zero(t, gen.calls, "blank queries must never reach the provider")
}

func TestResolveUnconfiguredClientShortCircuits(t *testing.T) {
	svc := &DefaultRecommendationService{Logger: zap.NewNop()}

	_, err := svc.Resolve(context.Background(), "une sortie en famille", nil)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestResolveReconcilesInProviderOrder(t *testing.T) {
	gen := &fakeGenerator{
		response: `{"services": ["Aventure Quad Côtière", "Nonexistent Service", "Visite Guidée des Souks"], "reasoning": "Pour les amateurs de sensations et de culture."}`,
	}
	svc := newTestService(gen)

	rec, err := svc.Resolve(context.Background(), "quelque chose d'actif", []string{"Balade à Dos de Chameau"})
	require.NoError(t, err)
	require.Len(t, rec.RecommendedServices, 2)

	// Unknown names drop silently; the survivors keep the provider's order,
	// not the catalog's.
	assert.Equal(t, "Aventure Quad Côtière", rec.RecommendedServices[0].Name)
	assert.Equal(t, "Visite Guidée des Souks", rec.RecommendedServices[1].Name)
	assert.Equal(t, "Pour les amateurs de sensations et de culture.", rec.Reasoning)
	assert.Equal(t, 1, gen.calls)
}

func TestResolveEmptyReconciledListIsValid(t *testing.T) {
	gen := &fakeGenerator{
		response: `{"services": [], "reasoning": "Aucun service ne correspond à une demande de plongée sous-marine."}`,
	}
	svc := newTestService(gen)

	rec, err := svc.Resolve(context.Background(), "plongée sous-marine", nil)
	require.NoError(t, err)
	assert.Empty(t, rec.RecommendedServices)
	assert.NotEmpty(t, rec.Reasoning)
}

func TestResolvePromptCarriesCatalogAndHistory(t *testing.T) {
	gen := &fakeGenerator{response: `{"services": [], "reasoning": "ok"}`}
	svc := newTestService(gen)

	_, err := svc.Resolve(context.Background(), "un transfert vers Marrakech", []string{"Visite Guidée des Souks"})
	require.NoError(t, err)

	assert.Contains(t, gen.prompt, "- Transfert Privé Aéroport & Villes")
	assert.Contains(t, gen.prompt, "- Visite Guidée des Souks")
	assert.Contains(t, gen.prompt, "Visitor request: un transfert vers Marrakech")
	assert.NotContains(t, gen.prompt, "(none)")

	gen.prompt = ""
	_, err = svc.Resolve(context.Background(), "un transfert vers Marrakech", nil)
	require.NoError(t, err)
	assert.Contains(t, gen.prompt, "(none)")
}

func TestResolveUpstreamErrorKeepsStatus(t *testing.T) {
	gen := &fakeGenerator{
		err: fmt.Errorf("call: %w", &googleapi.Error{Code: 429, Message: "quota exceeded"}),
	}
	svc := newTestService(gen)

	_, err := svc.Resolve(context.Background(), "quad", nil)
	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, 429, upstream.Status)
	assert.Contains(t, upstream.Error(), "status 429")
}

func TestResolveUpstreamErrorWithoutStatus(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("connection reset")}
	svc := newTestService(gen)

	_, err := svc.Resolve(context.Background(), "quad", nil)
	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Zero(t, upstream.Status)
}

func TestResolveMalformedResponse(t *testing.T) {
	gen := &fakeGenerator{response: "Je recommande le quad, c'est super."}
	svc := newTestService(gen)

	_, err := svc.Resolve(context.Background(), "quad", nil)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, gen.response, parseErr.Raw)
}

func TestParseProviderOutputCodeFence(t *testing.T) {
	out, err := parseProviderOutput("```json\n{\"services\": [\"Aventure Quad Côtière\"], \"reasoning\": \"ok\"}\n```")
	require.NoError(t, err)
	assert.Equal(t, []string{"Aventure Quad Côtière"}, out.Services)
	assert.Equal(t, "ok", out.Reasoning)
}

func TestParseProviderOutputDashListFallback(t *testing.T) {
	out, err := parseProviderOutput(
		"Voici mes suggestions :\n" +
			"- Aventure Quad Côtière: sensations fortes sur la côte\n" +
			"- Visite Guidée des Souks\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"Aventure Quad Côtière", "Visite Guidée des Souks"}, out.Services)
	assert.Equal(t, "sensations fortes sur la côte", out.Reasoning)
}

func TestResolveDashListResponseReconciles(t *testing.T) {
	gen := &fakeGenerator{
		response: "- Balade à Dos de Chameau: au coucher du soleil\n- Service Fantôme: n'existe pas\n",
	}
	svc := newTestService(gen)

	rec, err := svc.Resolve(context.Background(), "coucher de soleil", nil)
	require.NoError(t, err)
	require.Len(t, rec.RecommendedServices, 1)
	assert.Equal(t, "balade-chameau", rec.RecommendedServices[0].Slug)
}
