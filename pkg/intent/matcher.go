package intent

import (
	"context"
	"fmt"
	"math"
)

// Embedder generates embedding vectors for text. Two vectors are
// comparable only if produced by the same model configuration.
type Embedder interface {
	// Embed generates an embedding vector for a single text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch generates embeddings for multiple texts.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
}

// Score is a classification result: the best-matching label and the mean
// cosine similarity between the query and that label's exemplars, in [-1, 1].
type Score struct {
	Label      Label
	Confidence float64
}

type exemplarSet struct {
	label   Label
	vectors [][]float32
}

// Matcher scores utterances against pre-computed exemplar embeddings.
// It is safe for concurrent use: the exemplar vectors are computed once
// in NewMatcher and only read afterwards.
type Matcher struct {
	embedder Embedder
	sets     []exemplarSet
}

// NewMatcher embeds the exemplar corpus and returns a ready Matcher.
// An error here means the embedding model is unusable and should be
// treated as fatal by the caller.
func NewMatcher(ctx context.Context, embedder Embedder, corpus []Category) (*Matcher, error) {
	m := &Matcher{
		embedder: embedder,
		sets:     make([]exemplarSet, 0, len(corpus)),
	}

	for _, cat := range corpus {
		vectors, err := embedder.EmbedBatch(ctx, cat.Examples)
		if err != nil {
			return nil, fmt.Errorf("failed to embed exemplars for %q: %w", cat.Label, err)
		}
		if len(vectors) != len(cat.Examples) {
			return nil, fmt.Errorf("exemplar count mismatch for %q: got %d vectors for %d examples",
				cat.Label, len(vectors), len(cat.Examples))
		}
		m.sets = append(m.sets, exemplarSet{label: cat.Label, vectors: vectors})
	}

	return m, nil
}

// ClassifySemantic encodes text and returns the label whose exemplars
// have the highest mean cosine similarity to it. Empty input returns
// (Other, 0.0) without invoking the embedding model. Ties keep the
// first-encountered label in corpus order; replacement is on strict >.
func (m *Matcher) ClassifySemantic(ctx context.Context, text string) (Score, error) {
	if text == "" {
		return Score{Label: Other, Confidence: 0.0}, nil
	}

	query, err := m.embedder.Embed(ctx, text)
	if err != nil {
		return Score{Label: Other, Confidence: 0.0}, fmt.Errorf("failed to embed query: %w", err)
	}

	best := Score{Label: Other, Confidence: -1.0}
	for _, set := range m.sets {
		var sum float64
		for _, v := range set.vectors {
			sum += cosineSimilarity(query, v)
		}
		mean := sum / float64(len(set.vectors))
		if mean > best.Confidence {
			best = Score{Label: set.label, Confidence: mean}
		}
	}

	return best, nil
}

// cosineSimilarity computes the cosine of the angle between two vectors,
// accumulating in float64. Mismatched or zero-magnitude vectors score 0.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
