package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMessageRequired = errors.New("message is required")
	ErrNotConfigured   = errors.New("assistant backend is not configured")
	ErrNoModelAnswered = errors.New("no assistant model answered")
)

// Question is a user question, optionally about a tracking result the client already holds.
type Question struct {
	Message string
	// TrackingData is passed through to the model verbatim; it is never interpreted.
	TrackingData json.RawMessage
}

// NewQuestion trims the message and rejects empty ones.
func NewQuestion(message string, trackingData json.RawMessage) (*Question, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrMessageRequired
	}
	return &Question{
		Message:      message,
		TrackingData: trackingData,
	}, nil
}

// Prompt renders the user turn sent to the model.
func (q *Question) Prompt() string {
	data := strings.TrimSpace(string(q.TrackingData))
	if data == "" || data == "null" {
		data = "{}"
	}
	return fmt.Sprintf("Tracking Data: %s\n\nUser Question: %s", data, q.Message)
}
