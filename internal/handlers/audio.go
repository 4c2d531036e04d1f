package handlers

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// AudioHandler serves generated TTS audio files from the audio directory.
// Registered under /audio/.
type AudioHandler struct {
	dir    string
	logger *slog.Logger
}

// NewAudioHandler creates a new audio handler serving files from dir
func NewAudioHandler(dir string, logger *slog.Logger) *AudioHandler {
	return &AudioHandler{
		dir:    dir,
		logger: logger,
	}
}

// ServeHTTP handles HTTP requests for audio files
func (h *AudioHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	name := strings.TrimPrefix(r.URL.Path, "/audio/")
	// filepath.Base defangs traversal attempts like ../../etc/passwd.
	if name == "" || name != filepath.Base(name) {
		h.logger.Warn("Rejected audio file name", "name", name)
		http.NotFound(w, r)
		return
	}

	path := filepath.Join(h.dir, name)
	if _, err := os.Stat(path); err != nil {
		h.logger.Debug("Audio file not found", "name", name)
		http.NotFound(w, r)
		return
	}

	// Files are one-shot per turn; caching a stale reply is worse than
	// refetching.
	w.Header().Set("Content-Type", "audio/mpeg")
	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, max-age=0")
	w.Header().Set("Pragma", "no-cache")
	http.ServeFile(w, r, path)
}
