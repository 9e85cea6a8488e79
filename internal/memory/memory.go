// Package memory holds per-session conversation state: a bounded message
// log and a key-value context blob. State is in-process only and does not
// survive restarts.
package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"shopassist/internal/domain"
)

// MaxMessages is the per-session message log cap. When exceeded, the
// oldest entries are dropped first.
const MaxMessages = 20

type session struct {
	mu       sync.Mutex
	messages []domain.Message
	context  map[string]any
}

// Memory tracks conversation state per session ID. Sessions are created
// lazily on first write and live for the process lifetime. Access to a
// single session is serialized; different sessions are independent.
type Memory struct {
	mu       sync.RWMutex
	sessions map[string]*session
}

// New creates an empty Memory.
func New() *Memory {
	return &Memory{sessions: make(map[string]*session)}
}

func (m *Memory) get(sessionID string) (*session, bool) {
	m.mu.RLock()
	s, ok := m.sessions[sessionID]
	m.mu.RUnlock()
	return s, ok
}

func (m *Memory) getOrCreate(sessionID string) *session {
	if s, ok := m.get(sessionID); ok {
		return s
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.sessions[sessionID]; ok {
		return s
	}
	s := &session{context: make(map[string]any)}
	m.sessions[sessionID] = s
	return s
}

// AddMessage appends a message to the session log, evicting the oldest
// entry once the log exceeds MaxMessages.
func (m *Memory) AddMessage(sessionID string, role domain.Role, content string) {
	s := m.getOrCreate(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = append(s.messages, domain.Message{
		MessageID: uuid.New().String(),
		SessionID: sessionID,
		Role:      role,
		Content:   content,
		CreatedAt: time.Now(),
	})
	if len(s.messages) > MaxMessages {
		s.messages = s.messages[len(s.messages)-MaxMessages:]
	}
}

// History returns the session's message log, most recent last. If max > 0
// only the most recent max entries are returned. Unknown sessions yield
// an empty slice.
func (m *Memory) History(sessionID string, max int) []domain.Message {
	s, ok := m.get(sessionID)
	if !ok {
		return []domain.Message{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	msgs := s.messages
	if max > 0 && len(msgs) > max {
		msgs = msgs[len(msgs)-max:]
	}
	out := make([]domain.Message, len(msgs))
	copy(out, msgs)
	return out
}

// UpdateContext shallow-merges updates into the session context,
// last-write-wins per key.
func (m *Memory) UpdateContext(sessionID string, updates map[string]any) {
	if len(updates) == 0 {
		return
	}
	s := m.getOrCreate(sessionID)
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range updates {
		s.context[k] = v
	}
}

// Context returns a copy of the session context. Unknown sessions yield
// an empty map.
func (m *Memory) Context(sessionID string) map[string]any {
	s, ok := m.get(sessionID)
	if !ok {
		return map[string]any{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]any, len(s.context))
	for k, v := range s.context {
		out[k] = v
	}
	return out
}

// Reset clears the session's history and context. The session entry is
// kept; resetting an unknown session is a no-op.
func (m *Memory) Reset(sessionID string) {
	s, ok := m.get(sessionID)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = nil
	s.context = make(map[string]any)
}
