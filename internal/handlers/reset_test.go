package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jwebster45206/npc-dialogue/internal/session"
	"github.com/jwebster45206/npc-dialogue/pkg/chat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postReset(t *testing.T, handler *ResetHandler, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/reset", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestResetHandler_RemovesSession(t *testing.T) {
	sessions := session.NewStore()
	sessions.Append("s1", chat.ChatMessage{Role: chat.ChatRoleUser, Content: "hello"})
	handler := NewResetHandler(sessions, testHandlerLogger())

	body, _ := json.Marshal(chat.ResetRequest{SessionID: "s1"})
	w := postReset(t, handler, body)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp chat.ResetResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.True(t, resp.OK)
	assert.Empty(t, sessions.History("s1"))
}

func TestResetHandler_NonexistentSessionIsSuccess(t *testing.T) {
	sessions := session.NewStore()
	handler := NewResetHandler(sessions, testHandlerLogger())

	body, _ := json.Marshal(chat.ResetRequest{SessionID: "never-created"})
	w := postReset(t, handler, body)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp chat.ResetResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.True(t, resp.OK)
}

func TestResetHandler_MissingSessionIDUsesDefault(t *testing.T) {
	sessions := session.NewStore()
	sessions.Append(chat.DefaultSessionID, chat.ChatMessage{Role: chat.ChatRoleUser, Content: "hello"})
	handler := NewResetHandler(sessions, testHandlerLogger())

	w := postReset(t, handler, []byte(`{}`))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, sessions.History(chat.DefaultSessionID))
}

func TestResetHandler_MethodNotAllowed(t *testing.T) {
	handler := NewResetHandler(session.NewStore(), testHandlerLogger())

	req := httptest.NewRequest(http.MethodGet, "/reset", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
