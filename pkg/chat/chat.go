package chat

import "strings"

// DefaultSessionID is used when a request carries no session id.
const DefaultSessionID = "default"

const (
	ChatRoleUser   = "user"      // Player
	ChatRoleAgent  = "assistant" // NPC
	ChatRoleSystem = "system"    // Persona instruction
)

// ChatMessage represents a single message in a conversation. The shape
// matches the OpenAI-compatible chat API, so session history can be sent
// to the LLM without translation.
type ChatMessage struct {
	Role    string `json:"role"` // "user", "assistant", "system"
	Content string `json:"content"`
}

// ChatRequest represents a chat message sent by the game client.
type ChatRequest struct {
	SessionID string `json:"session_id"`
	Text      string `json:"text"`
}

// Session returns the trimmed session id, falling back to
// DefaultSessionID when absent or blank.
func (cr *ChatRequest) Session() string {
	id := strings.TrimSpace(cr.SessionID)
	if id == "" {
		return DefaultSessionID
	}
	return id
}

// ChatResponse is returned to the game client for every completed turn.
// Action and Params form the binding vocabulary the client interprets;
// see pkg/action.
type ChatResponse struct {
	Reply    string            `json:"reply"`
	AudioURL *string           `json:"audio_url"` // nil when synthesis failed or was skipped
	Intent   string            `json:"intent"`
	Action   string            `json:"action"`
	Params   map[string]string `json:"params"`
	Error    string            `json:"error,omitempty"`
}

// ResetRequest asks the server to discard a session's history.
type ResetRequest struct {
	SessionID string `json:"session_id"`
}

// Session returns the trimmed session id, falling back to DefaultSessionID.
func (rr *ResetRequest) Session() string {
	id := strings.TrimSpace(rr.SessionID)
	if id == "" {
		return DefaultSessionID
	}
	return id
}

// ResetResponse acknowledges a reset. Resetting an unknown session is
// still a success.
type ResetResponse struct {
	OK bool `json:"ok"`
}
