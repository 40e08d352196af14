package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
)

// ErrEmptyCompletion is returned when a chat-completions answer has no content.
var ErrEmptyCompletion = errors.New("no content in completion response")

// ChatMessage is one turn of a chat-completions conversation.
type ChatMessage struct {
	Role    string
	Content string
}

// ChatClient speaks the chat-completions wire format shared by Perplexity and OpenAI.
type ChatClient struct {
	name   string
	apiKey string
	client openai.Client
}

// NewChatClient creates a client for the endpoint at baseURL.
// Retries are disabled; the caller's context bounds every call.
func NewChatClient(name, baseURL, apiKey string, httpClient *http.Client) *ChatClient {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithBaseURL(strings.TrimRight(baseURL, "/") + "/"),
		option.WithMaxRetries(0),
	}
	if httpClient != nil {
		opts = append(opts, option.WithHTTPClient(httpClient))
	}

	return &ChatClient{
		name:   name,
		apiKey: apiKey,
		client: openai.NewClient(opts...),
	}
}

// Configured reports whether an API key is present.
func (c *ChatClient) Configured() bool {
	return c.apiKey != ""
}

// Complete sends the conversation and returns the first choice's content.
func (c *ChatClient) Complete(ctx context.Context, model string, messages []ChatMessage, temperature float64, maxTokens int) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model:       shared.ChatModel(model),
		Messages:    toParams(messages),
		Temperature: openai.Float(temperature),
		MaxTokens:   openai.Int(int64(maxTokens)),
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("%s API returned status %d: %w", c.name, apiErr.StatusCode, err)
		}
		return "", fmt.Errorf("%s request failed: %w", c.name, err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", ErrEmptyCompletion
	}

	return resp.Choices[0].Message.Content, nil
}

func toParams(messages []ChatMessage) []openai.ChatCompletionMessageParamUnion {
	out := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case "system":
			out = append(out, openai.SystemMessage(m.Content))
		case "assistant":
			out = append(out, openai.AssistantMessage(m.Content))
		default:
			out = append(out, openai.UserMessage(m.Content))
		}
	}
	return out
}
