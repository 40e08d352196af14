package adapter

import (
	"context"
	"net/http"
)

const openAISystemPrompt = "You are a shipment tracking assistant. Provide accurate tracking data in JSON format."

// OpenAIAdapter queries the OpenAI chat-completions API. It is the secondary backend.
type OpenAIAdapter struct {
	chat  *ChatClient
	model string
}

// NewOpenAIAdapter creates a new OpenAIAdapter. An empty apiKey leaves it unconfigured.
func NewOpenAIAdapter(baseURL, apiKey, model string, client *http.Client) *OpenAIAdapter {
	return &OpenAIAdapter{
		chat:  NewChatClient("openai", baseURL, apiKey, client),
		model: model,
	}
}

// Name implements ports.TrackingBackend.
func (a *OpenAIAdapter) Name() string {
	return "openai"
}

// Configured implements ports.TrackingBackend.
func (a *OpenAIAdapter) Configured() bool {
	return a.chat.Configured()
}

// Query implements ports.TrackingBackend.
func (a *OpenAIAdapter) Query(ctx context.Context, trackingNumber, carrierHint string) (string, error) {
	return a.chat.Complete(ctx, a.model, []ChatMessage{
		{Role: "system", Content: openAISystemPrompt},
		{Role: "user", Content: buildTrackingPrompt(trackingNumber, carrierHint)},
	}, 0.3, 1500)
}
