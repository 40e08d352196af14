package adapter

import (
	"context"
	"net/http"
)

// PerplexityAdapter queries Perplexity's web-grounded Sonar models. It is the primary backend.
type PerplexityAdapter struct {
	chat  *ChatClient
	model string
}

// NewPerplexityAdapter creates a new PerplexityAdapter. An empty apiKey leaves it unconfigured.
func NewPerplexityAdapter(baseURL, apiKey, model string, client *http.Client) *PerplexityAdapter {
	return &PerplexityAdapter{
		chat:  NewChatClient("perplexity", baseURL, apiKey, client),
		model: model,
	}
}

// Name implements ports.TrackingBackend.
func (a *PerplexityAdapter) Name() string {
	return "perplexity"
}

// Configured implements ports.TrackingBackend.
func (a *PerplexityAdapter) Configured() bool {
	return a.chat.Configured()
}

// Query implements ports.TrackingBackend.
func (a *PerplexityAdapter) Query(ctx context.Context, trackingNumber, carrierHint string) (string, error) {
	return a.chat.Complete(ctx, a.model, []ChatMessage{
		{Role: "system", Content: trackingSystemPrompt},
		{Role: "user", Content: buildTrackingPrompt(trackingNumber, carrierHint)},
	}, 0.2, 2000)
}

// Chat exposes the underlying client for the assistant feature.
func (a *PerplexityAdapter) Chat() *ChatClient {
	return a.chat
}
