package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jwebster45206/npc-dialogue/pkg/chat"
)

const classifyInstruction = "Classify the user's intent into one of: " +
	"greeting, ask_direction, combat, trade, farewell, gather_flower, other. " +
	"Return only the single label (lowercase)."

// LMStudioService implements LLMService against an OpenAI-compatible
// chat completions endpoint (LM Studio, Ollama's OpenAI shim, vLLM, ...).
type LMStudioService struct {
	baseURL    string
	modelName  string
	httpClient *http.Client
	logger     *slog.Logger
}

// Ensure LMStudioService implements LLMService
var _ LLMService = (*LMStudioService)(nil)

// NewLMStudioService creates a new LM Studio service instance
func NewLMStudioService(baseURL string, modelName string, logger *slog.Logger) *LMStudioService {
	return &LMStudioService{
		baseURL:   strings.TrimRight(baseURL, "/"),
		modelName: modelName,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		logger: logger,
	}
}

// lmChatRequest is the OpenAI-compatible chat completion request body.
type lmChatRequest struct {
	Model    string             `json:"model"`
	Messages []chat.ChatMessage `json:"messages"`
}

// lmChatResponse covers both response shapes LM Studio is known to
// return: content under choices[0].message.content (chat shape) or under
// choices[0].text (completion shape).
type lmChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		Text string `json:"text"`
	} `json:"choices"`
}

// replyText is the total extraction function over the two known response
// shapes, preferring the message-wrapped one.
func (r *lmChatResponse) replyText() string {
	if len(r.Choices) == 0 {
		return ""
	}
	if content := r.Choices[0].Message.Content; content != "" {
		return content
	}
	return r.Choices[0].Text
}

// ChatCompletion generates a reply for the ordered message list.
func (s *LMStudioService) ChatCompletion(ctx context.Context, messages []chat.ChatMessage) (string, error) {
	reqBody := lmChatRequest{
		Model:    s.modelName,
		Messages: messages,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := s.baseURL + "/v1/chat/completions"
	s.logger.Debug("Making chat completion request",
		"url", url,
		"model", s.modelName,
		"message_count", len(messages))

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		s.logger.Error("Chat completion API returned error",
			"status_code", resp.StatusCode,
			"response_body", string(body))
		return "", fmt.Errorf("API request failed with status: %d", resp.StatusCode)
	}

	var lmResp lmChatResponse
	if err := json.Unmarshal(body, &lmResp); err != nil {
		s.logger.Error("Failed to decode chat completion response",
			"error", err,
			"response_body", string(body))
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	return strings.TrimSpace(lmResp.replyText()), nil
}

// ClassifyIntent asks the model for a single intent label token.
func (s *LMStudioService) ClassifyIntent(ctx context.Context, text string) (string, error) {
	messages := []chat.ChatMessage{
		{Role: chat.ChatRoleSystem, Content: classifyInstruction},
		{Role: chat.ChatRoleUser, Content: text},
	}
	return s.ChatCompletion(ctx, messages)
}

// Ping checks the provider is reachable by listing its models.
func (s *LMStudioService) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, "GET", s.baseURL+"/v1/models", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API request failed with status: %d", resp.StatusCode)
	}
	return nil
}
