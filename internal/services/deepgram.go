package services

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	speakv1 "github.com/deepgram/deepgram-go-sdk/pkg/api/speak/v1/rest"
	interfaces "github.com/deepgram/deepgram-go-sdk/pkg/client/interfaces"
	speak "github.com/deepgram/deepgram-go-sdk/pkg/client/speak"
	"github.com/google/uuid"

	"github.com/jwebster45206/npc-dialogue/pkg/speech"
)

// DeepgramTTS implements Synthesizer using Deepgram's Speak REST API,
// writing MP3 files into a local directory served by the audio handler.
type DeepgramTTS struct {
	client *speakv1.Client
	model  string
	outDir string
	logger *slog.Logger
}

// Ensure DeepgramTTS implements Synthesizer
var _ Synthesizer = (*DeepgramTTS)(nil)

// NewDeepgramTTS creates a Deepgram speech synthesizer. The output
// directory is created if it does not exist.
func NewDeepgramTTS(apiKey string, model string, outDir string, logger *slog.Logger) (*DeepgramTTS, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create audio directory: %w", err)
	}

	rest := speak.NewREST(apiKey, &interfaces.ClientOptions{})
	return &DeepgramTTS{
		client: speakv1.New(rest),
		model:  model,
		outDir: outDir,
		logger: logger,
	}, nil
}

// Synthesize cleans text for speech and writes it to a uniquely named
// MP3 file, returning the file name.
func (d *DeepgramTTS) Synthesize(ctx context.Context, text string) (string, error) {
	name := fmt.Sprintf("tts_%s.mp3", uuid.New().String())
	path := filepath.Join(d.outDir, name)

	options := &interfaces.SpeakOptions{
		Model: d.model,
	}

	if _, err := d.client.ToSave(ctx, path, speech.Clean(text), options); err != nil {
		return "", fmt.Errorf("speak request failed: %w", err)
	}

	d.logger.Debug("Synthesized reply audio", "file", name, "model", d.model)
	return name, nil
}
