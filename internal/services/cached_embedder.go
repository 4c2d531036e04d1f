package services

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"log/slog"
)

// CachedEmbedder wraps an Embedder with a Cache so exemplar vectors
// computed at startup survive process restarts. Cache trouble is never
// an error: a failed read or write just means the vector is computed
// fresh.
type CachedEmbedder struct {
	inner  Embedder
	cache  Cache
	logger *slog.Logger
}

// Ensure CachedEmbedder implements Embedder
var _ Embedder = (*CachedEmbedder)(nil)

// NewCachedEmbedder wraps inner with cache.
func NewCachedEmbedder(inner Embedder, cache Cache, logger *slog.Logger) *CachedEmbedder {
	return &CachedEmbedder{
		inner:  inner,
		cache:  cache,
		logger: logger,
	}
}

func (e *CachedEmbedder) Model() string {
	return e.inner.Model()
}

func (e *CachedEmbedder) Dimension() int {
	return e.inner.Dimension()
}

// cacheKey is model-qualified: vectors from different model
// configurations are never comparable.
func (e *CachedEmbedder) cacheKey(text string) string {
	return fmt.Sprintf("emb:%s:%x", e.inner.Model(), sha256.Sum256([]byte(text)))
}

func (e *CachedEmbedder) lookup(ctx context.Context, text string) ([]float32, bool) {
	raw, err := e.cache.Get(ctx, e.cacheKey(text))
	if err != nil {
		e.logger.Warn("Embedding cache read failed", "error", err)
		return nil, false
	}
	if raw == "" {
		return nil, false
	}

	var vector []float32
	if err := json.Unmarshal([]byte(raw), &vector); err != nil {
		e.logger.Warn("Discarding malformed cached embedding", "error", err)
		return nil, false
	}
	if len(vector) != e.inner.Dimension() {
		e.logger.Warn("Discarding cached embedding with wrong dimension",
			"got", len(vector), "want", e.inner.Dimension())
		return nil, false
	}
	return vector, true
}

func (e *CachedEmbedder) store(ctx context.Context, text string, vector []float32) {
	raw, err := json.Marshal(vector)
	if err != nil {
		e.logger.Warn("Failed to marshal embedding for cache", "error", err)
		return
	}
	if err := e.cache.Set(ctx, e.cacheKey(text), string(raw), 0); err != nil {
		e.logger.Warn("Embedding cache write failed", "error", err)
	}
}

// Embed returns the cached vector for text, or computes and caches it.
func (e *CachedEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if vector, ok := e.lookup(ctx, text); ok {
		return vector, nil
	}

	vector, err := e.inner.Embed(ctx, text)
	if err != nil {
		return nil, err
	}
	e.store(ctx, text, vector)
	return vector, nil
}

// EmbedBatch resolves what it can from the cache and embeds only the
// missing texts.
func (e *CachedEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	missing := make([]string, 0, len(texts))
	missingIdx := make([]int, 0, len(texts))

	for i, text := range texts {
		if vector, ok := e.lookup(ctx, text); ok {
			out[i] = vector
			continue
		}
		missing = append(missing, text)
		missingIdx = append(missingIdx, i)
	}

	if len(missing) == 0 {
		return out, nil
	}

	computed, err := e.inner.EmbedBatch(ctx, missing)
	if err != nil {
		return nil, err
	}
	if len(computed) != len(missing) {
		return nil, fmt.Errorf("embedding count mismatch: got %d, want %d", len(computed), len(missing))
	}

	for j, vector := range computed {
		out[missingIdx[j]] = vector
		e.store(ctx, missing[j], vector)
	}
	return out, nil
}
