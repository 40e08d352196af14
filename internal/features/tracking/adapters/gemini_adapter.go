package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

// generateFunc produces text for a system instruction and prompt.
type generateFunc func(ctx context.Context, system, prompt string) (string, error)

// GeminiAdapter queries Google's Gemini models through the genai SDK.
type GeminiAdapter struct {
	apiKey     string
	model      string
	httpClient *http.Client
	generate   generateFunc
}

// NewGeminiAdapter creates a new GeminiAdapter. An empty apiKey leaves it unconfigured.
func NewGeminiAdapter(apiKey, model string, httpClient *http.Client) *GeminiAdapter {
	a := &GeminiAdapter{
		apiKey:     apiKey,
		model:      model,
		httpClient: httpClient,
	}
	a.generate = a.generateContent
	return a
}

// Name implements ports.TrackingBackend.
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Configured implements ports.TrackingBackend.
func (a *GeminiAdapter) Configured() bool {
	return a.apiKey != ""
}

// Query implements ports.TrackingBackend.
func (a *GeminiAdapter) Query(ctx context.Context, trackingNumber, carrierHint string) (string, error) {
	text, err := a.generate(ctx, trackingSystemPrompt, buildTrackingPrompt(trackingNumber, carrierHint))
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}

func (a *GeminiAdapter) generateContent(ctx context.Context, system, prompt string) (string, error) {
	if !a.Configured() {
		return "", errors.New("gemini API key is not configured")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     a.apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: a.httpClient,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}

	resp, err := client.Models.GenerateContent(ctx, a.model, genai.Text(prompt), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		Temperature:       genai.Ptr[float32](0.2),
		MaxOutputTokens:   2000,
		ResponseMIMEType:  "application/json",
	})
	if err != nil {
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}

	return resp.Text(), nil
}
