package ports

import (
	"context"

	"parcel-tracker/internal/features/assistant/domain"
)

// AssistantService defines the primary port for question answering.
type AssistantService interface {
	Answer(ctx context.Context, question *domain.Question) (string, error)
}

// Completer is a text-generation model reachable by name.
// This is a Secondary Port (Driven Port).
type Completer interface {
	Configured() bool
	Complete(ctx context.Context, model, system, user string) (string, error)
}
