package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is the OpenRouter API root.
const DefaultBaseURL = "https://openrouter.ai/api/v1"

// siteURL is the public catalog site used to build model and provider links.
const siteURL = "https://openrouter.ai"

// APISource fetches the model catalog from the OpenRouter models
// endpoint. An API key enables the authenticated data source; without
// one the public endpoint is used.
type APISource struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewAPISource creates an OpenRouter API source. apiKey may be empty.
func NewAPISource(baseURL, apiKey string) *APISource {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &APISource{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *APISource) Name() string { return "api" }

// modelsResponse mirrors the OpenRouter /models payload.
type modelsResponse struct {
	Data []apiModel `json:"data"`
}

type apiModel struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	ContextLength int        `json:"context_length"`
	Pricing       apiPricing `json:"pricing"`
}

type apiPricing struct {
	Prompt     string `json:"prompt"`
	Completion string `json:"completion"`
}

func (s *APISource) Fetch(ctx context.Context) ([]Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/models", nil)
	if err != nil {
		return nil, fmt.Errorf("create models request: %w", err)
	}
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch models: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("models endpoint returned status %d: %s", resp.StatusCode, string(body))
	}

	var payload modelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode models response: %w", err)
	}

	entries := make([]Entry, 0, len(payload.Data))
	for _, m := range payload.Data {
		entries = append(entries, Entry{
			ID:            m.ID,
			Description:   describeModel(m),
			ContextLength: m.ContextLength,
			ModelURL:      siteURL + "/" + m.ID,
			ProviderURL:   providerURL(m.ID),
		})
	}
	return entries, nil
}

// describeModel builds the free-text description string the parser
// consumes. The display name from the API usually already carries the
// "Provider: Name" form; the cost token is appended as the trailing
// parenthesized group.
func describeModel(m apiModel) string {
	name := m.Name
	if name == "" {
		name = m.ID
	}

	switch {
	case m.Pricing.Prompt != "" && m.Pricing.Prompt != "0":
		return fmt.Sprintf("%s ($%s/1M)", name, m.Pricing.Prompt)
	case strings.Contains(strings.ToLower(m.ID), "free") || m.Pricing.Prompt == "0":
		return fmt.Sprintf("%s (free)", name)
	default:
		return name
	}
}

// providerURL derives the provider page from the model ID prefix
// (e.g. "openai/gpt-4o" -> ".../openai").
func providerURL(id string) string {
	if slash := strings.Index(id, "/"); slash > 0 {
		return siteURL + "/" + id[:slash]
	}
	return ""
}
