package services

import (
	"context"
	"sync"

	"github.com/jwebster45206/npc-dialogue/pkg/chat"
)

// MockLLM is a mock implementation of LLMService for testing
type MockLLM struct {
	ChatCompletionFunc func(ctx context.Context, messages []chat.ChatMessage) (string, error)
	ClassifyIntentFunc func(ctx context.Context, text string) (string, error)
	PingFunc           func(ctx context.Context) error

	// Track calls for testing
	ChatCompletionCalls [][]chat.ChatMessage
	ClassifyIntentCalls []string

	mu sync.Mutex // protects all fields above
}

// Ensure MockLLM implements LLMService
var _ LLMService = (*MockLLM)(nil)

// NewMockLLM creates a new mock LLM service
func NewMockLLM() *MockLLM {
	return &MockLLM{
		ChatCompletionCalls: make([][]chat.ChatMessage, 0),
		ClassifyIntentCalls: make([]string, 0),
	}
}

func (m *MockLLM) ChatCompletion(ctx context.Context, messages []chat.ChatMessage) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Copy so later caller mutations don't alter the recorded call.
	recorded := make([]chat.ChatMessage, len(messages))
	copy(recorded, messages)
	m.ChatCompletionCalls = append(m.ChatCompletionCalls, recorded)

	if m.ChatCompletionFunc != nil {
		return m.ChatCompletionFunc(ctx, messages)
	}
	return "mock reply", nil
}

func (m *MockLLM) ClassifyIntent(ctx context.Context, text string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ClassifyIntentCalls = append(m.ClassifyIntentCalls, text)

	if m.ClassifyIntentFunc != nil {
		return m.ClassifyIntentFunc(ctx, text)
	}
	return "other", nil
}

func (m *MockLLM) Ping(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}
