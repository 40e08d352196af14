package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuestion(t *testing.T) {
	_, err := NewQuestion("   ", nil)
	assert.ErrorIs(t, err, ErrMessageRequired)

	q, err := NewQuestion("  where is it? ", nil)
	require.NoError(t, err)
	assert.Equal(t, "where is it?", q.Message)
}

func TestQuestion_Prompt(t *testing.T) {
	tests := []struct {
		name string
		data json.RawMessage
		want string
	}{
		{"no data", nil, "Tracking Data: {}\n\nUser Question: when?"},
		{"null data", json.RawMessage("null"), "Tracking Data: {}\n\nUser Question: when?"},
		{"with data", json.RawMessage(`{"statusCode":"IT"}`), "Tracking Data: {\"statusCode\":\"IT\"}\n\nUser Question: when?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := NewQuestion("when?", tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, q.Prompt())
		})
	}
}
