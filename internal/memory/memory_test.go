package memory

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopassist/internal/domain"
)

func TestUnknownSessionIsEmpty(t *testing.T) {
	m := New()

	assert.Empty(t, m.History("never-seen", 0))
	assert.Empty(t, m.Context("never-seen"))
}

func TestHistoryOrderAndCap(t *testing.T) {
	m := New()

	for i := 0; i < 25; i++ {
		m.AddMessage("s1", domain.RoleUser, fmt.Sprintf("message %d", i))
	}

	history := m.History("s1", 0)
	require.Len(t, history, MaxMessages)
	// Oldest dropped first, most recent last.
	assert.Equal(t, "message 5", history[0].Content)
	assert.Equal(t, "message 24", history[len(history)-1].Content)

	last3 := m.History("s1", 3)
	require.Len(t, last3, 3)
	assert.Equal(t, "message 22", last3[0].Content)
	assert.Equal(t, "message 24", last3[2].Content)
}

func TestHistoryBelowCap(t *testing.T) {
	m := New()

	m.AddMessage("s1", domain.RoleUser, "hello")
	m.AddMessage("s1", domain.RoleAssistant, "hi there")

	history := m.History("s1", 0)
	require.Len(t, history, 2)
	assert.Equal(t, domain.RoleUser, history[0].Role)
	assert.Equal(t, domain.RoleAssistant, history[1].Role)
	assert.NotEmpty(t, history[0].MessageID)
	assert.Equal(t, "s1", history[0].SessionID)
}

func TestContextShallowMerge(t *testing.T) {
	m := New()

	m.UpdateContext("s1", map[string]any{"a": 1, "b": "old"})
	m.UpdateContext("s1", map[string]any{"b": "new", "c": true})

	ctx := m.Context("s1")
	assert.Equal(t, 1, ctx["a"])
	assert.Equal(t, "new", ctx["b"])
	assert.Equal(t, true, ctx["c"])
}

func TestContextCopyIsolation(t *testing.T) {
	m := New()

	m.UpdateContext("s1", map[string]any{"a": 1})
	ctx := m.Context("s1")
	ctx["a"] = 99

	assert.Equal(t, 1, m.Context("s1")["a"])
}

func TestReset(t *testing.T) {
	m := New()

	m.AddMessage("s1", domain.RoleUser, "hello")
	m.UpdateContext("s1", map[string]any{"a": 1})

	m.Reset("s1")

	assert.Empty(t, m.History("s1", 0))
	assert.Empty(t, m.Context("s1"))

	// Resetting an unknown session is a no-op, not an error.
	m.Reset("never-seen")
}

func TestSessionsAreIndependent(t *testing.T) {
	m := New()

	m.AddMessage("s1", domain.RoleUser, "for s1")
	m.UpdateContext("s1", map[string]any{"who": "s1"})

	assert.Empty(t, m.History("s2", 0))
	assert.Empty(t, m.Context("s2"))
}

func TestConcurrentSessions(t *testing.T) {
	m := New()
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			sessionID := fmt.Sprintf("s%d", n)
			for j := 0; j < 30; j++ {
				m.AddMessage(sessionID, domain.RoleUser, "ping")
				m.UpdateContext(sessionID, map[string]any{"j": j})
				_ = m.History(sessionID, 5)
				_ = m.Context(sessionID)
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < 8; i++ {
		assert.Len(t, m.History(fmt.Sprintf("s%d", i), 0), MaxMessages)
	}
}
