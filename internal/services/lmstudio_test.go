package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/jwebster45206/npc-dialogue/pkg/chat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServiceLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError, // Reduce noise in tests
	}))
}

func TestLMStudioService_ChatCompletion_MessageShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req lmChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		assert.Len(t, req.Messages, 2)

		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Hello there!"}}]}`))
	}))
	defer server.Close()

	svc := NewLMStudioService(server.URL, "test-model", testServiceLogger())
	reply, err := svc.ChatCompletion(context.Background(), []chat.ChatMessage{
		{Role: chat.ChatRoleSystem, Content: "persona"},
		{Role: chat.ChatRoleUser, Content: "hi"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Hello there!", reply)
}

func TestLMStudioService_ChatCompletion_TextShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[{"text":"  plain completion reply  "}]}`))
	}))
	defer server.Close()

	svc := NewLMStudioService(server.URL, "test-model", testServiceLogger())
	reply, err := svc.ChatCompletion(context.Background(), []chat.ChatMessage{
		{Role: chat.ChatRoleUser, Content: "hi"},
	})
	require.NoError(t, err)
	assert.Equal(t, "plain completion reply", reply)
}

func TestLMStudioService_ChatCompletion_PrefersMessageShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"from message"},"text":"from text"}]}`))
	}))
	defer server.Close()

	svc := NewLMStudioService(server.URL, "test-model", testServiceLogger())
	reply, err := svc.ChatCompletion(context.Background(), []chat.ChatMessage{
		{Role: chat.ChatRoleUser, Content: "hi"},
	})
	require.NoError(t, err)
	assert.Equal(t, "from message", reply)
}

func TestLMStudioService_ChatCompletion_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	svc := NewLMStudioService(server.URL, "test-model", testServiceLogger())
	reply, err := svc.ChatCompletion(context.Background(), []chat.ChatMessage{
		{Role: chat.ChatRoleUser, Content: "hi"},
	})
	require.NoError(t, err)
	assert.Empty(t, reply)
}

func TestLMStudioService_ChatCompletion_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := NewLMStudioService(server.URL, "test-model", testServiceLogger())
	_, err := svc.ChatCompletion(context.Background(), []chat.ChatMessage{
		{Role: chat.ChatRoleUser, Content: "hi"},
	})
	assert.Error(t, err)
}

func TestLMStudioService_ChatCompletion_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json at all`))
	}))
	defer server.Close()

	svc := NewLMStudioService(server.URL, "test-model", testServiceLogger())
	_, err := svc.ChatCompletion(context.Background(), []chat.ChatMessage{
		{Role: chat.ChatRoleUser, Content: "hi"},
	})
	assert.Error(t, err)
}

func TestLMStudioService_ClassifyIntent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req lmChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 2)
		assert.Equal(t, chat.ChatRoleSystem, req.Messages[0].Role)
		assert.Contains(t, req.Messages[0].Content, "greeting, ask_direction, combat")
		assert.Equal(t, "I want to haggle", req.Messages[1].Content)

		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"trade"}}]}`))
	}))
	defer server.Close()

	svc := NewLMStudioService(server.URL, "test-model", testServiceLogger())
	content, err := svc.ClassifyIntent(context.Background(), "I want to haggle")
	require.NoError(t, err)
	assert.Equal(t, "trade", content)
}

func TestLMStudioService_Ping(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/models", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	svc := NewLMStudioService(server.URL, "test-model", testServiceLogger())
	assert.NoError(t, svc.Ping(context.Background()))

	server.Close()
	assert.Error(t, svc.Ping(context.Background()))
}
