package recommend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"rihla/models"
	"rihla/services/catalog"
	"rihla/utils"

	"go.uber.org/zap"
	"google.golang.org/api/googleapi"
)

// maxRecommendations is the top-N asked of the provider.
const maxRecommendations = 3

// providerOutput is the constrained shape requested from the model.
type providerOutput struct {
	Services  []string `json:"services"`
	Reasoning string   `json:"reasoning"`
}

func (s *DefaultRecommendationService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return utils.GetLogger()
}

// Resolve runs one provider invocation: validate, prompt, parse, reconcile.
// Provider-returned names that match no catalog entry are dropped silently;
// the surviving list keeps the provider's emission order, which is the
// authority on relevance. An empty reconciled list with a reasoning string
// is a valid result, not an error.
func (s *DefaultRecommendationService) Resolve(ctx context.Context, query string, history []string) (*models.Recommendation, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	if s.Client == nil {
		return nil, ErrMissingAPIKey
	}

	prompt := buildPrompt(query, history, catalog.Names())

	raw, err := s.Client.GenerateContent(ctx, prompt)
	if err != nil {
		upstream := &UpstreamError{Err: err}
		var gerr *googleapi.Error
		if errors.As(err, &gerr) {
			upstream.Status = gerr.Code
		}
		s.logger().Error("recommend: provider call failed",
			zap.Int("status", upstream.Status), zap.Error(err))
		return nil, upstream
	}

	parsed, err := parseProviderOutput(raw)
	if err != nil {
		// Log the raw payload; it is the only diagnostic there is.
		s.logger().Error("recommend: malformed provider response",
			zap.String("raw", raw), zap.Error(err))
		return nil, &ParseError{Raw: raw, Err: err}
	}

	recommended := make([]models.ServiceDefinition, 0, len(parsed.Services))
	for _, name := range parsed.Services {
		if svc, ok := catalog.ByName(strings.TrimSpace(name)); ok {
			recommended = append(recommended, svc)
		}
	}

	return &models.Recommendation{
		RecommendedServices: recommended,
		Reasoning:           parsed.Reasoning,
	}, nil
}

// buildPrompt assembles the provider request: role instructions, the full
// canonical catalog, the visitor's history (or an explicit none marker) and
// the query itself.
func buildPrompt(query string, history []string, catalogNames []string) string {
	var b strings.Builder

	b.WriteString("You are the recommendation assistant of a tour and transfer company in Essaouira, Morocco.\n")
	fmt.Fprintf(&b, "Pick at most %d services from the catalog below that best match the visitor's request, ranked most relevant first.\n", maxRecommendations)
	b.WriteString("Use the exact service names as written in the catalog. Never invent a service.\n\n")

	b.WriteString("Catalog:\n")
	for _, name := range catalogNames {
		fmt.Fprintf(&b, "- %s\n", name)
	}

	b.WriteString("\nServices the visitor already viewed:\n")
	if len(history) == 0 {
		b.WriteString("(none)\n")
	} else {
		for _, viewed := range history {
			fmt.Fprintf(&b, "- %s\n", viewed)
		}
	}

	fmt.Fprintf(&b, "\nVisitor request: %s\n", query)
	b.WriteString("\nRespond with a JSON object: {\"services\": [...], \"reasoning\": \"...\"}.\n")

	return b.String()
}

// parseProviderOutput decodes the structured response, falling back to the
// dash-list parser for providers that reply in plain text despite the JSON
// instruction. Failure of both paths is terminal for the invocation.
func parseProviderOutput(raw string) (*providerOutput, error) {
	cleaned := stripCodeFence(raw)

	var out providerOutput
	if err := json.Unmarshal([]byte(cleaned), &out); err == nil {
		return &out, nil
	}

	if fallback, ok := parseDashList(cleaned); ok {
		return fallback, nil
	}
	return nil, fmt.Errorf("response is neither JSON nor a dash list")
}

// stripCodeFence removes a surrounding markdown fence, which some models add
// around JSON bodies.
func stripCodeFence(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}

// parseDashList handles the secondary decoding path: lines beginning with a
// dash, colon-split into service name and reason.
func parseDashList(raw string) (*providerOutput, bool) {
	var out providerOutput
	var reasons []string

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "-") {
			continue
		}
		entry := strings.TrimSpace(strings.TrimPrefix(line, "-"))
		name, reason, found := strings.Cut(entry, ":")
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		out.Services = append(out.Services, name)
		if found && strings.TrimSpace(reason) != "" {
			reasons = append(reasons, strings.TrimSpace(reason))
		}
	}

	if len(out.Services) == 0 {
		return nil, false
	}
	out.Reasoning = strings.Join(reasons, " ")
	return &out, true
}
