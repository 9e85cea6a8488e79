package policy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()

	e, err := NewEngine(context.Background(), DefaultPolicy)
	require.NoError(t, err)
	return e
}

func TestDefaultPolicyAllows(t *testing.T) {
	e := newTestEngine(t)

	decision, err := e.Evaluate(context.Background(), map[string]any{
		"message":    "tell me about your store",
		"session_id": "s1",
	})
	require.NoError(t, err)
	assert.Equal(t, DecisionAllow, decision)
}

func TestDefaultPolicyRefusesCardRequests(t *testing.T) {
	e := newTestEngine(t)

	for _, message := range []string{
		"please read back my credit card number",
		"what is the Card CVV on file?",
	} {
		decision, err := e.Evaluate(context.Background(), map[string]any{
			"message":    message,
			"session_id": "s1",
		})
		require.NoError(t, err)
		assert.Equal(t, DecisionRefuse, decision, "message %q", message)
	}
}

func TestInvalidPolicyFailsConstruction(t *testing.T) {
	_, err := NewEngine(context.Background(), "package chat_policy\n\ndecision = {")
	assert.Error(t, err)
}
