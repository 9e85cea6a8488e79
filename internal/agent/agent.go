// Package agent orchestrates a chat turn: it updates conversation
// memory, routes the message to order tracking, FAQ retrieval or the
// language-model fallback, and formats the reply.
package agent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"shopassist/internal/adapter/llm"
	"shopassist/internal/domain"
	"shopassist/internal/faq"
	"shopassist/internal/intent"
	"shopassist/internal/memory"
	"shopassist/internal/orders"
	"shopassist/internal/policy"
	"shopassist/internal/store"
)

// ContextKeyLastTrackedOrder is the session-context key holding the most
// recently tracked order.
const ContextKeyLastTrackedOrder = "last_tracked_order"

// systemPrompt is the fixed instruction for the language-model fallback.
const systemPrompt = "You are a helpful and friendly customer service assistant. " +
	"Keep your answers concise. Never reveal your internal reasoning."

// fallbackHistorySize is how many prior messages accompany a fallback prompt.
const fallbackHistorySize = 5

// Agent is the chat surface exposed to the transport layer.
type Agent interface {
	// ProcessMessage handles one chat turn and returns the reply plus a
	// snapshot of the session context. It never returns an error;
	// failures become an apology reply with empty context.
	ProcessMessage(ctx context.Context, message, sessionID string, sessionContext map[string]any) (string, map[string]any)

	// TrackOrder looks up an order; unknown IDs yield an error payload,
	// not an error value.
	TrackOrder(ctx context.Context, orderID string) *domain.OrderResponse

	// FAQs returns the full FAQ list in stored order.
	FAQs(ctx context.Context) ([]domain.FAQEntry, error)

	// ResetConversation clears the session's history and context.
	ResetConversation(sessionID string) error
}

// Orchestrator is the real Agent implementation.
type Orchestrator struct {
	memory     *memory.Memory
	orders     *orders.Service
	faqs       *faq.Retriever
	classifier *intent.Classifier
	llm        llm.Client
	model      string
	guardrail  *policy.Engine
}

// New creates an orchestrator with its collaborators injected. The
// guardrail may be nil, in which case the fallback path is always allowed.
func New(mem *memory.Memory, orderSvc *orders.Service, faqs *faq.Retriever, llmClient llm.Client, model string, guardrail *policy.Engine) *Orchestrator {
	return &Orchestrator{
		memory:     mem,
		orders:     orderSvc,
		faqs:       faqs,
		classifier: intent.NewClassifier(faqs),
		llm:        llmClient,
		model:      model,
		guardrail:  guardrail,
	}
}

var _ Agent = (*Orchestrator)(nil)

// ProcessMessage handles one chat turn. The error boundary lives here:
// any failure from a collaborator becomes the apology reply with empty
// context, and the call never panics past this method.
func (o *Orchestrator) ProcessMessage(ctx context.Context, message, sessionID string, sessionContext map[string]any) (response string, snapshot map[string]any) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			log.Error().Any("panic", r).Str("session_id", sessionID).Msg("recovered while processing message")
			response = apology(fmt.Errorf("%v", r))
			snapshot = map[string]any{}
		}
	}()

	reply, err := o.process(ctx, message, sessionID, sessionContext)
	if err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("failed to process message")
		return apology(err), map[string]any{}
	}

	log.Info().
		Str("session_id", sessionID).
		Dur("elapsed", time.Since(start)).
		Msg("processed message")
	return reply, o.memory.Context(sessionID)
}

func (o *Orchestrator) process(ctx context.Context, message, sessionID string, sessionContext map[string]any) (string, error) {
	if len(sessionContext) > 0 {
		o.memory.UpdateContext(sessionID, sessionContext)
	}

	// Snapshot history before this turn; the fallback prompt carries it.
	history := o.memory.History(sessionID, fallbackHistorySize)
	o.memory.AddMessage(sessionID, domain.RoleUser, message)

	reply, err := o.route(ctx, message, sessionID, history)
	if err != nil {
		return "", err
	}

	o.memory.AddMessage(sessionID, domain.RoleAssistant, reply)
	return reply, nil
}

func (o *Orchestrator) route(ctx context.Context, message, sessionID string, history []domain.Message) (string, error) {
	classified := o.classifier.Classify(message)
	switch classified.Kind {
	case domain.IntentOrder:
		return o.handleOrder(ctx, sessionID, classified.OrderID)
	case domain.IntentFAQ:
		return classified.FAQMatch.Answer, nil
	}

	// No confident FAQ match: fall back to the closest entry regardless
	// of threshold; only an empty knowledge base reaches the model.
	matches, err := o.faqs.RetrieveRelevantFAQs(message, 1)
	if err == nil && len(matches) > 0 {
		return matches[0].Answer, nil
	}
	if err != nil {
		log.Warn().Err(err).Msg("FAQ retrieval failed, falling through to model")
	}

	return o.handleFallback(ctx, message, sessionID, history)
}

func (o *Orchestrator) handleOrder(ctx context.Context, sessionID, orderID string) (string, error) {
	order, err := o.orders.GetOrder(ctx, orderID)
	if errors.Is(err, store.ErrOrderNotFound) {
		return orderNotFoundReply(orderID), nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up order %s: %w", orderID, err)
	}

	o.memory.UpdateContext(sessionID, map[string]any{ContextKeyLastTrackedOrder: order})
	return statusReply(order), nil
}

func (o *Orchestrator) handleFallback(ctx context.Context, message, sessionID string, history []domain.Message) (string, error) {
	if o.guardrail != nil {
		decision, err := o.guardrail.Evaluate(ctx, map[string]any{
			"message":    message,
			"session_id": sessionID,
		})
		if err != nil {
			return "", fmt.Errorf("guardrail evaluation failed: %w", err)
		}
		if decision == policy.DecisionRefuse {
			log.Info().Str("session_id", sessionID).Msg("guardrail refused fallback message")
			return refusalReply, nil
		}
	}

	chatHistory := make([]llm.ChatMessage, 0, len(history))
	for _, msg := range history {
		chatHistory = append(chatHistory, llm.ChatMessage{Role: string(msg.Role), Content: msg.Content})
	}

	reply, err := llm.Generate(ctx, o.llm, o.model, systemPrompt, chatHistory, message)
	if err != nil {
		return "", fmt.Errorf("failed to generate reply: %w", err)
	}
	return reply, nil
}

// TrackOrder looks up an order for the service API.
func (o *Orchestrator) TrackOrder(ctx context.Context, orderID string) *domain.OrderResponse {
	order, err := o.orders.GetOrder(ctx, orderID)
	if errors.Is(err, store.ErrOrderNotFound) {
		return &domain.OrderResponse{Error: fmt.Sprintf("Order %s not found", orderID)}
	}
	if err != nil {
		log.Error().Err(err).Str("order_id", orderID).Msg("order lookup failed")
		return &domain.OrderResponse{Error: fmt.Sprintf("Order lookup failed: %v", err)}
	}
	return &domain.OrderResponse{Order: order}
}

// FAQs returns every FAQ entry in stored order.
func (o *Orchestrator) FAQs(ctx context.Context) ([]domain.FAQEntry, error) {
	return o.faqs.All(), nil
}

// ResetConversation clears the session's history and context.
func (o *Orchestrator) ResetConversation(sessionID string) error {
	o.memory.Reset(sessionID)
	return nil
}
