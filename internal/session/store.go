// Package session holds per-conversation history. Each session keeps a
// bounded FIFO window of turns; the store is the sole owner of all
// histories.
package session

import (
	"sync"

	"github.com/jwebster45206/npc-dialogue/pkg/chat"
)

// MaxTurns is the history capacity per session. Once full, the oldest
// turn is dropped silently for each new one (strict FIFO by insertion
// order, unrelated to access).
const MaxTurns = 20

type session struct {
	turnMu sync.Mutex // serializes whole turns, held across remote calls
	mu     sync.Mutex // guards turns
	turns  []chat.ChatMessage
}

// Store maps session ids to bounded histories. Sessions are created
// lazily on first reference and live for the process lifetime unless
// reset. Safe for concurrent use; see Lock for per-session turn
// serialization.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*session
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*session),
	}
}

// get returns the session for id, creating it if absent. Creation is
// atomic with respect to concurrent first accesses of the same id.
func (s *Store) get(id string) *session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		sess = &session{turns: make([]chat.ChatMessage, 0, MaxTurns)}
		s.sessions[id] = sess
	}
	return sess
}

// Lock acquires the per-session mutex for id and returns the unlock
// function. The dialogue engine holds it for a whole turn so turns in
// one session never interleave; turns in different sessions proceed
// independently.
//
// A concurrent Reset can replace the session between lookup and
// acquisition, so Lock revalidates after acquiring: holding the turn
// lock of a session that is no longer mapped to id would let a second
// turn on the replacement run in parallel.
func (s *Store) Lock(id string) func() {
	for {
		sess := s.get(id)
		sess.turnMu.Lock()

		s.mu.Lock()
		current := s.sessions[id]
		s.mu.Unlock()

		if current == sess {
			return sess.turnMu.Unlock
		}
		sess.turnMu.Unlock()
	}
}

// History returns a copy of the session's turns in insertion order,
// oldest first, creating the session if absent.
func (s *Store) History(id string) []chat.ChatMessage {
	sess := s.get(id)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	out := make([]chat.ChatMessage, len(sess.turns))
	copy(out, sess.turns)
	return out
}

// Append pushes a turn onto the session's history, evicting the oldest
// turn first when the session is at capacity.
func (s *Store) Append(id string, turn chat.ChatMessage) {
	sess := s.get(id)

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if len(sess.turns) >= MaxTurns {
		copy(sess.turns, sess.turns[1:])
		sess.turns = sess.turns[:len(sess.turns)-1]
	}
	sess.turns = append(sess.turns, turn)
}

// Reset removes the session entirely; the next access creates a fresh
// one. Resetting a session that does not exist is a no-op. Reset
// acquires the session's turn lock first, so it waits out an in-flight
// turn rather than deleting the session that turn is still writing to.
func (s *Store) Reset(id string) {
	for {
		s.mu.Lock()
		sess, ok := s.sessions[id]
		s.mu.Unlock()
		if !ok {
			return
		}

		// The store mutex cannot be held while waiting on the turn
		// lock: the in-flight turn needs it for Append and History.
		sess.turnMu.Lock()

		s.mu.Lock()
		if s.sessions[id] == sess {
			delete(s.sessions, id)
			s.mu.Unlock()
			sess.turnMu.Unlock()
			return
		}
		s.mu.Unlock()
		sess.turnMu.Unlock()
	}
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
