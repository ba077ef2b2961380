package llm

import (
	"fmt"
	"net/http"
)

const defaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"

// Attribution headers OpenRouter uses to list the calling app.
const (
	openRouterReferer = "https://github.com/phoebegrace/NoFilterNaevis"
	openRouterTitle   = "Naevis Asks"
)

// NewOpenRouterProvider creates a provider targeting the OpenRouter API,
// which is OpenAI-compatible. Model names are OpenRouter IDs such as
// "google/gemini-2.0-flash-exp" and are never remapped.
func NewOpenRouterProvider(cfg OpenRouterConfig) (*OpenAIProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultOpenRouterBaseURL
	}

	header := http.Header{}
	header.Set("HTTP-Referer", openRouterReferer)
	header.Set("X-Title", openRouterTitle)
	return newOpenAICompatible(cfg.APIKey, baseURL, cfg.Model, header), nil
}

// headerTransport adds fixed headers to every request.
type headerTransport struct {
	header http.Header
	base   http.RoundTripper
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	for k, vs := range t.header {
		for _, v := range vs {
			req.Header.Set(k, v)
		}
	}
	return t.base.RoundTrip(req)
}
