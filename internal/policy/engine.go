// Package policy evaluates a rego guardrail over messages headed for the
// language-model fallback. Order and FAQ routing never consult it.
package policy

import (
	"context"
	"fmt"

	"github.com/open-policy-agent/opa/rego"
)

// Decision values returned by the guardrail.
const (
	DecisionAllow  = "allow"
	DecisionRefuse = "refuse"
)

// Engine is the OPA guardrail engine.
type Engine struct {
	query rego.PreparedEvalQuery
}

// NewEngine creates a new guardrail engine with the given policy content.
func NewEngine(ctx context.Context, policyContent string) (*Engine, error) {
	r := rego.New(
		rego.Query("data.chat_policy.decision"),
		rego.Module("chat_policy.rego", policyContent),
	)

	query, err := r.PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare rego: %w", err)
	}

	return &Engine{query: query}, nil
}

// Evaluate checks the chat guardrail for a message. Input keys:
// message, session_id. Returns allow or refuse; an empty result set
// defaults to allow so a partial policy cannot take the fallback path
// down.
func (e *Engine) Evaluate(ctx context.Context, input map[string]any) (string, error) {
	results, err := e.query.Eval(ctx, rego.EvalInput(input))
	if err != nil {
		return "", fmt.Errorf("failed to evaluate policy: %w", err)
	}

	if len(results) == 0 || len(results[0].Expressions) == 0 {
		return DecisionAllow, nil
	}

	if s, ok := results[0].Expressions[0].Value.(string); ok {
		return s, nil
	}
	return DecisionAllow, nil
}

// DefaultPolicy is the default guardrail content. It allows everything
// except obvious requests for payment credentials, which get a canned
// deflection instead of a model call.
const DefaultPolicy = `
package chat_policy

default decision = "allow"

# Never let the model discuss raw card numbers
decision = "refuse" {
	contains(lower(input.message), "credit card number")
}

decision = "refuse" {
	contains(lower(input.message), "card cvv")
}
`
