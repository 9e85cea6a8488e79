package agent

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"shopassist/internal/domain"
)

// ErrDegraded is returned by Degraded for operations that cannot be
// served without the real agent.
var ErrDegraded = errors.New("chat service is degraded")

const degradedReply = "I'm sorry, but I'm currently experiencing technical difficulties. Please try again later."

// Degraded is a stand-in Agent used when startup of the real
// orchestrator fails. Every chat turn gets a static apology; the service
// stays up instead of crashing.
type Degraded struct{}

// NewDegraded creates a degraded agent.
func NewDegraded() *Degraded {
	return &Degraded{}
}

var _ Agent = (*Degraded)(nil)

// ProcessMessage returns the static degraded apology.
func (d *Degraded) ProcessMessage(ctx context.Context, message, sessionID string, sessionContext map[string]any) (string, map[string]any) {
	log.Warn().Str("session_id", sessionID).Msg("degraded agent handling message")
	return degradedReply, map[string]any{}
}

// TrackOrder reports the degraded state as an error payload.
func (d *Degraded) TrackOrder(ctx context.Context, orderID string) *domain.OrderResponse {
	return &domain.OrderResponse{Error: "Order tracking is temporarily unavailable. Please try again later."}
}

// FAQs is unavailable while degraded.
func (d *Degraded) FAQs(ctx context.Context) ([]domain.FAQEntry, error) {
	return nil, ErrDegraded
}

// ResetConversation is unavailable while degraded.
func (d *Degraded) ResetConversation(sessionID string) error {
	return ErrDegraded
}
