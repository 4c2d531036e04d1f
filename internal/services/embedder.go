package services

import (
	"github.com/jwebster45206/npc-dialogue/pkg/intent"
)

// Embedder generates embedding vectors for text. It extends the
// matcher's contract with model metadata so callers can verify that
// cached vectors and live vectors come from the same configuration.
type Embedder interface {
	intent.Embedder

	// Model returns the name of the embedding model being used.
	Model() string

	// Dimension returns the embedding vector dimension.
	Dimension() int
}
