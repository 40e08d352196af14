package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"parcel-tracker/internal/core/logger"
	"parcel-tracker/internal/features/assistant/domain"
	"parcel-tracker/internal/features/assistant/ports"

	"go.uber.org/zap"
)

const systemPrompt = "You are a helpful package tracking assistant. Answer user questions about their " +
	"package delivery based on the tracking data provided."

// DefaultModels is tried in order until one answers.
var DefaultModels = []string{"sonar-pro", "sonar"}

// AssistantServiceImpl implements ports.AssistantService.
type AssistantServiceImpl struct {
	completer ports.Completer
	models    []string
	timeout   time.Duration
}

// NewAssistantService creates a new AssistantServiceImpl. An empty model list uses DefaultModels.
func NewAssistantService(completer ports.Completer, models []string, timeout time.Duration) *AssistantServiceImpl {
	if len(models) == 0 {
		models = DefaultModels
	}
	return &AssistantServiceImpl{
		completer: completer,
		models:    models,
		timeout:   timeout,
	}
}

// Answer asks each model in turn; the first non-empty answer wins.
func (s *AssistantServiceImpl) Answer(ctx context.Context, question *domain.Question) (string, error) {
	if question == nil {
		return "", domain.ErrMessageRequired
	}
	if s.completer == nil || !s.completer.Configured() {
		return "", domain.ErrNotConfigured
	}

	var lastErr error
	for _, model := range s.models {
		if ctx.Err() != nil {
			lastErr = ctx.Err()
			break
		}

		answer, err := s.complete(ctx, model, question.Prompt())
		if err == nil {
			return answer, nil
		}

		logger.Get().Warn("Assistant model failed", zap.String("model", model), zap.Error(err))
		lastErr = err
	}

	if lastErr == nil {
		lastErr = errors.New("no models configured")
	}
	return "", fmt.Errorf("%w: %v", domain.ErrNoModelAnswered, lastErr)
}

func (s *AssistantServiceImpl) complete(ctx context.Context, model, prompt string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.completer.Complete(callCtx, model, systemPrompt, prompt)
}
