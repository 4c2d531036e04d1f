package services

import "context"

// Synthesizer converts NPC reply text into an audio file. Synthesis is
// best-effort: a failed or skipped synthesis yields no audio reference,
// never a failed turn.
type Synthesizer interface {
	// Synthesize writes spoken audio for text and returns the generated
	// file name (not a full path) for serving via the audio endpoint.
	Synthesize(ctx context.Context, text string) (string, error)
}
