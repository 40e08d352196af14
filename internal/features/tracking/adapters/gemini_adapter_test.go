package adapter

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeminiAdapter_Configured(t *testing.T) {
	assert.False(t, NewGeminiAdapter("", "gemini-2.0-flash", nil).Configured())
	assert.True(t, NewGeminiAdapter("key", "gemini-2.0-flash", nil).Configured())
	assert.Equal(t, "gemini", NewGeminiAdapter("", "", nil).Name())
}

func TestGeminiAdapter_Query(t *testing.T) {
	adapter := NewGeminiAdapter("key", "gemini-2.0-flash", nil)

	var gotSystem, gotPrompt string
	adapter.generate = func(ctx context.Context, system, prompt string) (string, error) {
		gotSystem, gotPrompt = system, prompt
		return `{"carrier":"DHL","status":"Delivered"}`, nil
	}

	out, err := adapter.Query(context.Background(), "1234567890", "DHL")
	require.NoError(t, err)
	assert.Equal(t, `{"carrier":"DHL","status":"Delivered"}`, out)
	assert.Equal(t, trackingSystemPrompt, gotSystem)
	assert.Contains(t, gotPrompt, "1234567890 (DHL)")
}

func TestGeminiAdapter_QueryErrors(t *testing.T) {
	adapter := NewGeminiAdapter("key", "gemini-2.0-flash", nil)

	adapter.generate = func(ctx context.Context, system, prompt string) (string, error) {
		return "", errors.New("quota exceeded")
	}
	_, err := adapter.Query(context.Background(), "1234567890", "")
	assert.EqualError(t, err, "quota exceeded")

	adapter.generate = func(ctx context.Context, system, prompt string) (string, error) {
		return "  ", nil
	}
	_, err = adapter.Query(context.Background(), "1234567890", "")
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestGeminiAdapter_UnconfiguredNeverCallsSDK(t *testing.T) {
	adapter := NewGeminiAdapter("", "gemini-2.0-flash", nil)
	_, err := adapter.Query(context.Background(), "1234567890", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
