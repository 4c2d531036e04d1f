package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jwebster45206/npc-dialogue/internal/dialogue"
	"github.com/jwebster45206/npc-dialogue/pkg/chat"
)

// ChatHandler handles dialogue turn requests
type ChatHandler struct {
	engine *dialogue.Engine
	logger *slog.Logger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(engine *dialogue.Engine, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{
		engine: engine,
		logger: logger,
	}
}

// ServeHTTP handles HTTP requests for chat
func (h *ChatHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		h.logger.Warn("Method not allowed for chat endpoint",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr)

		w.WriteHeader(http.StatusMethodNotAllowed)
		h.encode(w, chat.ChatResponse{
			Error: "Method not allowed. Only POST is supported.",
		})
		return
	}

	var request chat.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.logger.Warn("Invalid request body", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		h.encode(w, chat.ChatResponse{
			Error: "Invalid request body. Expected JSON with 'text' and 'session_id' fields.",
		})
		return
	}

	sessionID := request.Session()
	h.logger.Info("Chat turn requested",
		"session_id", sessionID,
		"remote_addr", r.RemoteAddr)

	result := h.engine.HandleTurn(r.Context(), sessionID, request.Text)

	response := chat.ChatResponse{
		Reply:    result.Reply,
		AudioURL: audioURL(r, result.AudioFile),
		Intent:   string(result.Intent),
		Action:   string(result.Action.Action),
		Params:   result.Action.Params,
	}

	w.WriteHeader(http.StatusOK)
	h.encode(w, response)
}

func (h *ChatHandler) encode(w http.ResponseWriter, response chat.ChatResponse) {
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("Error encoding chat response", "error", err)
	}
}

// audioURL builds the absolute URL for a generated audio file, based on
// the host the client used to reach us. Returns nil when there is no audio.
func audioURL(r *http.Request, name string) *string {
	if name == "" {
		return nil
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	url := fmt.Sprintf("%s://%s/audio/%s", scheme, r.Host, name)
	return &url
}
