package adapter

import (
	"net/http"

	"parcel-tracker/internal/core/config"
	"parcel-tracker/internal/features/tracking/ports"
)

// NewBackends builds the backends named in cfg's priority order.
// Names that match no backend are returned separately so the caller can warn about them.
func NewBackends(cfg config.BackendsConfig, client *http.Client) ([]ports.TrackingBackend, []string) {
	available := map[string]ports.TrackingBackend{
		"perplexity": NewPerplexityAdapter(cfg.PerplexityURL, cfg.PerplexityAPIKey, cfg.PerplexityModel, client),
		"openai":     NewOpenAIAdapter(cfg.OpenAIURL, cfg.OpenAIAPIKey, cfg.OpenAIModel, client),
		"gemini":     NewGeminiAdapter(cfg.GeminiAPIKey, cfg.GeminiModel, client),
	}

	var backends []ports.TrackingBackend
	var unknown []string
	for _, name := range cfg.BackendOrder() {
		backend, ok := available[name]
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		backends = append(backends, backend)
	}
	return backends, unknown
}
