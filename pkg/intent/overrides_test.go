package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyOverrides(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		resolved Label
		expected Label
	}{
		{name: "direction keyword overrides classifier", text: "take me to the Village", resolved: Greeting, expected: AskDirection},
		{name: "where overrides", text: "where am I", resolved: Other, expected: AskDirection},
		{name: "combat keyword", text: "I will FIGHT you", resolved: Greeting, expected: Combat},
		{name: "trade keyword", text: "what can I buy here", resolved: Other, expected: Trade},
		{name: "farewell keyword", text: "ok bye now", resolved: Greeting, expected: Farewell},
		{name: "gathering keyword", text: "let's pick some petals", resolved: Other, expected: GatherFlower},
		{name: "no keyword passes through", text: "nice weather today", resolved: Greeting, expected: Greeting},
		{name: "priority: direction beats combat", text: "attack the village", resolved: Other, expected: AskDirection},
		{name: "priority: combat beats trade", text: "fight me or buy something", resolved: Other, expected: Combat},
		{name: "empty text passes through", text: "", resolved: Farewell, expected: Farewell},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ApplyOverrides(tt.text, tt.resolved))
		})
	}
}

func TestApplyOverrides_Idempotent(t *testing.T) {
	texts := []string{
		"where is the village",
		"attack",
		"show me your shop",
		"goodbye friend",
		"picking flowers",
		"nothing special",
		"",
	}

	for _, text := range texts {
		for _, resolved := range Labels {
			once := ApplyOverrides(text, resolved)
			twice := ApplyOverrides(text, once)
			assert.Equal(t, once, twice, "text=%q resolved=%q", text, resolved)
		}
	}
}
