package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/jwebster45206/npc-dialogue/internal/session"
	"github.com/jwebster45206/npc-dialogue/pkg/chat"
)

// ResetHandler discards a session's conversation history
type ResetHandler struct {
	sessions *session.Store
	logger   *slog.Logger
}

// NewResetHandler creates a new reset handler
func NewResetHandler(sessions *session.Store, logger *slog.Logger) *ResetHandler {
	return &ResetHandler{
		sessions: sessions,
		logger:   logger,
	}
}

// ServeHTTP handles HTTP requests for session reset
func (h *ResetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		h.logger.Warn("Method not allowed for reset endpoint",
			"method", r.Method,
			"path", r.URL.Path)
		w.WriteHeader(http.StatusMethodNotAllowed)
		_ = json.NewEncoder(w).Encode(chat.ResetResponse{OK: false})
		return
	}

	// An unreadable body still resets the default session; resetting a
	// session that never existed is a success either way.
	var request chat.ResetRequest
	_ = json.NewDecoder(r.Body).Decode(&request)

	sessionID := request.Session()
	h.sessions.Reset(sessionID)
	h.logger.Info("Session reset", "session_id", sessionID)

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(chat.ResetResponse{OK: true}); err != nil {
		h.logger.Error("Error encoding reset response", "error", err)
	}
}
