package adapters

import (
	"context"

	tracking "parcel-tracker/internal/features/tracking/adapters"
)

const (
	temperature = 0.7
	maxTokens   = 500
)

// ChatCompleter adapts a chat-completions client to ports.Completer.
type ChatCompleter struct {
	chat *tracking.ChatClient
}

// NewChatCompleter creates a new ChatCompleter.
func NewChatCompleter(chat *tracking.ChatClient) *ChatCompleter {
	return &ChatCompleter{chat: chat}
}

// Configured implements ports.Completer.
func (c *ChatCompleter) Configured() bool {
	return c.chat.Configured()
}

// Complete implements ports.Completer.
func (c *ChatCompleter) Complete(ctx context.Context, model, system, user string) (string, error) {
	return c.chat.Complete(ctx, model, []tracking.ChatMessage{
		{Role: "system", Content: system},
		{Role: "user", Content: user},
	}, temperature, maxTokens)
}
