package intent

import (
	"context"
	"log/slog"
	"strings"
	"time"
)

const (
	// ConfidenceThreshold is the minimum mean cosine similarity required
	// to trust the embedding matcher without consulting the LLM.
	ConfidenceThreshold = 0.55

	// classifyTimeout bounds the remote classification call so an
	// unresponsive LLM cannot stall the turn.
	classifyTimeout = 15 * time.Second
)

// Classifier is the remote LLM classification service. It returns the
// raw textual content of the model's response; parsing and validation
// happen in the Resolver.
type Classifier interface {
	ClassifyIntent(ctx context.Context, text string) (string, error)
}

// Resolver implements the two-tier intent resolution: the cheap local
// similarity check handles unambiguous input, and the remote classifier
// is reserved for anything below the confidence threshold.
type Resolver struct {
	matcher    *Matcher
	classifier Classifier
	logger     *slog.Logger
}

// NewResolver creates a Resolver over a ready Matcher and a remote classifier.
func NewResolver(matcher *Matcher, classifier Classifier, logger *slog.Logger) *Resolver {
	return &Resolver{
		matcher:    matcher,
		classifier: classifier,
		logger:     logger,
	}
}

// Resolve determines the intent of text. Failures anywhere in the
// pipeline degrade to Other; Resolve never returns an error.
func (r *Resolver) Resolve(ctx context.Context, text string) Label {
	score, err := r.matcher.ClassifySemantic(ctx, text)
	if err == nil && score.Confidence >= ConfidenceThreshold {
		r.logger.Debug("Intent resolved by embedding matcher",
			"intent", score.Label, "confidence", score.Confidence)
		return score.Label
	}

	if err != nil {
		r.logger.Warn("Embedding matcher failed, falling back to LLM classifier", "error", err)
	} else {
		r.logger.Debug("Confidence below threshold, falling back to LLM classifier",
			"intent", score.Label, "confidence", score.Confidence)
	}

	classifyCtx, cancel := context.WithTimeout(ctx, classifyTimeout)
	defer cancel()

	content, err := r.classifier.ClassifyIntent(classifyCtx, text)
	if err != nil {
		r.logger.Warn("LLM classifier failed, defaulting intent", "error", err)
		return Other
	}

	label := ParseLabelToken(content)
	r.logger.Debug("Intent resolved by LLM classifier", "intent", label)
	return label
}

// ParseLabelToken extracts an intent label from raw LLM output: trim,
// lowercase, take the first whitespace-separated token, and force
// anything outside the closed set to Other.
func ParseLabelToken(content string) Label {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(content)))
	if len(fields) == 0 {
		return Other
	}
	return Normalize(fields[0])
}
