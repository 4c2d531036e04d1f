package services

import (
	"context"
	"sync"
)

// MockSynthesizer is a mock implementation of Synthesizer for testing
type MockSynthesizer struct {
	SynthesizeFunc func(ctx context.Context, text string) (string, error)

	// Track calls for testing
	SynthesizeCalls []string

	mu sync.Mutex
}

// Ensure MockSynthesizer implements Synthesizer
var _ Synthesizer = (*MockSynthesizer)(nil)

// NewMockSynthesizer creates a new mock synthesizer
func NewMockSynthesizer() *MockSynthesizer {
	return &MockSynthesizer{
		SynthesizeCalls: make([]string, 0),
	}
}

func (m *MockSynthesizer) Synthesize(ctx context.Context, text string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.SynthesizeCalls = append(m.SynthesizeCalls, text)

	if m.SynthesizeFunc != nil {
		return m.SynthesizeFunc(ctx, text)
	}
	return "tts_mock.mp3", nil
}
