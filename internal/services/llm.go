package services

import (
	"context"

	"github.com/jwebster45206/npc-dialogue/pkg/chat"
)

// LLMService defines the interface for the remote chat-completion provider.
// Both reply generation and the fallback intent classification run against
// the same provider.
type LLMService interface {
	// ChatCompletion generates a reply for the ordered message list.
	// The returned string is trimmed; it may be empty if the model
	// produced no content.
	ChatCompletion(ctx context.Context, messages []chat.ChatMessage) (string, error)

	// ClassifyIntent asks the model to emit a single intent label token
	// for text. The raw response content is returned; the caller parses
	// and validates it.
	ClassifyIntent(ctx context.Context, text string) (string, error)

	// Ping checks that the provider is reachable.
	Ping(ctx context.Context) error
}
