package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAudioHandler_ServesFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte("fake mp3 bytes")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tts_abc.mp3"), content, 0o644))

	handler := NewAudioHandler(dir, testHandlerLogger())

	req := httptest.NewRequest(http.MethodGet, "/audio/tts_abc.mp3", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "audio/mpeg", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Cache-Control"), "no-store")
	assert.Equal(t, content, w.Body.Bytes())
}

func TestAudioHandler_NotFound(t *testing.T) {
	handler := NewAudioHandler(t.TempDir(), testHandlerLogger())

	req := httptest.NewRequest(http.MethodGet, "/audio/missing.mp3", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAudioHandler_RejectsTraversal(t *testing.T) {
	dir := t.TempDir()
	// A file outside the audio dir that must stay unreachable.
	outside := filepath.Join(dir, "secret.txt")
	require.NoError(t, os.WriteFile(outside, []byte("secret"), 0o644))
	audioDir := filepath.Join(dir, "audio")
	require.NoError(t, os.MkdirAll(audioDir, 0o755))

	handler := NewAudioHandler(audioDir, testHandlerLogger())

	req := httptest.NewRequest(http.MethodGet, "/audio/..%2Fsecret.txt", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAudioHandler_MethodNotAllowed(t *testing.T) {
	handler := NewAudioHandler(t.TempDir(), testHandlerLogger())

	req := httptest.NewRequest(http.MethodPost, "/audio/tts_abc.mp3", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
