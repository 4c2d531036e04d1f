package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmbedDimension(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		expected int
	}{
		{
			name:     "default when empty",
			envValue: "",
			expected: 384,
		},
		{
			name:     "overridden for a different model",
			envValue: "768",
			expected: 768,
		},
		{
			name:     "non-numeric falls back to default",
			envValue: "large",
			expected: 384,
		},
		{
			name:     "non-positive falls back to default",
			envValue: "0",
			expected: 384,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("EMBED_DIMENSION", tt.envValue)

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, cfg.EmbedDimension)
		})
	}
}
