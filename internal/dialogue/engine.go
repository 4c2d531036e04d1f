// Package dialogue composes intent resolution, session history, reply
// generation, and speech synthesis into a single request/response cycle.
package dialogue

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jwebster45206/npc-dialogue/internal/services"
	"github.com/jwebster45206/npc-dialogue/internal/session"
	"github.com/jwebster45206/npc-dialogue/pkg/action"
	"github.com/jwebster45206/npc-dialogue/pkg/chat"
	"github.com/jwebster45206/npc-dialogue/pkg/intent"
)

const (
	// EmptyInputReply is returned for blank input. The turn short-circuits:
	// no classification, no history, no audio.
	EmptyInputReply = "I didn't hear anything..."

	// NoReplyFallback stands in for an empty generation so the turn (and
	// its history entry) always carries a non-empty reply.
	NoReplyFallback = "(no reply from model)"

	// UnreachableReply stands in when the generator cannot be reached at
	// all. The real error goes to the log, not to the player.
	UnreachableReply = "(I can't find my words right now... give me a moment.)"

	generateTimeout   = 60 * time.Second
	synthesizeTimeout = 30 * time.Second
)

// IntentResolver resolves an utterance to an intent label, degrading to
// intent.Other rather than failing.
type IntentResolver interface {
	Resolve(ctx context.Context, text string) intent.Label
}

// Result is the outcome of one dialogue turn.
type Result struct {
	Reply     string
	AudioFile string // empty when synthesis failed or was skipped
	Intent    intent.Label
	Action    action.Spec
}

// Engine drives one NPC conversation turn end to end.
type Engine struct {
	resolver     IntentResolver
	sessions     *session.Store
	llm          services.LLMService
	tts          services.Synthesizer // nil disables audio
	systemPrompt string
	logger       *slog.Logger
}

// NewEngine creates a dialogue engine. tts may be nil, in which case no
// audio is produced.
func NewEngine(resolver IntentResolver, sessions *session.Store, llm services.LLMService, tts services.Synthesizer, systemPrompt string, logger *slog.Logger) *Engine {
	return &Engine{
		resolver:     resolver,
		sessions:     sessions,
		llm:          llm,
		tts:          tts,
		systemPrompt: systemPrompt,
		logger:       logger,
	}
}

// HandleTurn runs one request/response cycle for a session. It never
// fails: every error mode degrades to a defined reply, and the intent
// and action are always computed. Turns within one session are
// serialized by the session's turn lock; turns in different sessions
// run concurrently.
func (e *Engine) HandleTurn(ctx context.Context, sessionID, userText string) Result {
	userText = strings.TrimSpace(userText)
	if userText == "" {
		return Result{
			Reply:  EmptyInputReply,
			Intent: intent.Other,
			Action: action.Map(intent.Other),
		}
	}

	unlock := e.sessions.Lock(sessionID)
	defer unlock()

	resolved := e.resolver.Resolve(ctx, userText)
	final := intent.ApplyOverrides(userText, resolved)
	e.logger.Debug("Resolved player intent",
		"session_id", sessionID, "resolved", resolved, "final", final)

	// The stored user turn embeds the intent as a visible tag, so the
	// generator sees the classification as conversational context.
	e.sessions.Append(sessionID, chat.ChatMessage{
		Role:    chat.ChatRoleUser,
		Content: fmt.Sprintf("[intent=%s] %s", final, userText),
	})

	history := e.sessions.History(sessionID)
	messages := make([]chat.ChatMessage, 0, len(history)+1)
	messages = append(messages, chat.ChatMessage{Role: chat.ChatRoleSystem, Content: e.systemPrompt})
	messages = append(messages, history...)

	genCtx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	reply, err := e.llm.ChatCompletion(genCtx, messages)
	switch {
	case err != nil:
		e.logger.Warn("Reply generation failed",
			"session_id", sessionID, "error", err)
		reply = UnreachableReply
	case reply == "":
		e.logger.Warn("Reply generation returned no content", "session_id", sessionID)
		reply = NoReplyFallback
	}

	e.sessions.Append(sessionID, chat.ChatMessage{
		Role:    chat.ChatRoleAgent,
		Content: reply,
	})

	return Result{
		Reply:     reply,
		AudioFile: e.synthesize(ctx, sessionID, reply),
		Intent:    final,
		Action:    action.Map(final),
	}
}

// synthesize produces the reply audio file, returning "" on any failure.
func (e *Engine) synthesize(ctx context.Context, sessionID, reply string) string {
	if e.tts == nil {
		return ""
	}

	ttsCtx, cancel := context.WithTimeout(ctx, synthesizeTimeout)
	defer cancel()

	name, err := e.tts.Synthesize(ttsCtx, reply)
	if err != nil {
		e.logger.Warn("Speech synthesis failed",
			"session_id", sessionID, "error", err)
		return ""
	}
	return name
}
