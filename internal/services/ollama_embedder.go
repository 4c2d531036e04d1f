package services

import (
	"context"
	"fmt"

	"github.com/ollama/ollama/api"
)

const (
	// DefaultEmbedModel produces 384-dimensional vectors, a good fit for
	// short utterances and a tiny exemplar corpus.
	DefaultEmbedModel = "all-minilm:l6-v2"

	// DefaultEmbedDimension is the dimension for all-minilm:l6-v2.
	DefaultEmbedDimension = 384
)

// OllamaEmbedder implements Embedder using a local Ollama server.
// The server URL comes from the OLLAMA_HOST environment variable
// (defaults to http://localhost:11434).
type OllamaEmbedder struct {
	client    *api.Client
	model     string
	dimension int
}

// Ensure OllamaEmbedder implements Embedder
var _ Embedder = (*OllamaEmbedder)(nil)

// NewOllamaEmbedder creates a new Ollama embedding client. Empty model
// or zero dimension fall back to the defaults.
func NewOllamaEmbedder(model string, expectedDimension int) (*OllamaEmbedder, error) {
	if model == "" {
		model = DefaultEmbedModel
	}
	if expectedDimension == 0 {
		expectedDimension = DefaultEmbedDimension
	}

	client, err := api.ClientFromEnvironment()
	if err != nil {
		return nil, fmt.Errorf("create ollama client: %w", err)
	}

	return &OllamaEmbedder{
		client:    client,
		model:     model,
		dimension: expectedDimension,
	}, nil
}

// Model returns the configured embedding model name.
func (e *OllamaEmbedder) Model() string {
	return e.model
}

// Dimension returns the expected embedding dimension.
func (e *OllamaEmbedder) Dimension() int {
	return e.dimension
}

// Embed generates an embedding vector for the given text.
func (e *OllamaEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := e.client.Embed(ctx, &api.EmbedRequest{
		Model: e.model,
		Input: text,
	})
	if err != nil {
		return nil, fmt.Errorf("embed: %w", err)
	}

	if len(resp.Embeddings) == 0 {
		return nil, fmt.Errorf("no embeddings returned")
	}

	embedding := resp.Embeddings[0]
	if len(embedding) != e.dimension {
		return nil, fmt.Errorf("dimension mismatch: got %d, want %d (model: %s)",
			len(embedding), e.dimension, e.model)
	}

	return embedding, nil
}

// EmbedBatch generates embeddings for multiple texts in a single request.
func (e *OllamaEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	resp, err := e.client.Embed(ctx, &api.EmbedRequest{
		Model: e.model,
		Input: texts,
	})
	if err != nil {
		return nil, fmt.Errorf("embed batch: %w", err)
	}

	if len(resp.Embeddings) != len(texts) {
		return nil, fmt.Errorf("embedding count mismatch: got %d, want %d",
			len(resp.Embeddings), len(texts))
	}

	for i, emb := range resp.Embeddings {
		if len(emb) != e.dimension {
			return nil, fmt.Errorf("embedding %d dimension mismatch: got %d, want %d",
				i, len(emb), e.dimension)
		}
	}

	return resp.Embeddings, nil
}
