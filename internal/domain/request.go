package domain

// ChatRequest represents an incoming chat turn from the client.
type ChatRequest struct {
	Message   string         `json:"message"`
	SessionID string         `json:"session_id"`
	Context   map[string]any `json:"context,omitempty"`
}

// ChatResponse represents the reply for a chat turn.
type ChatResponse struct {
	Response  string         `json:"response"`
	SessionID string         `json:"session_id"`
	Context   map[string]any `json:"context,omitempty"`
}

// OrderResponse wraps an order lookup result for the HTTP layer.
// Error carries the "Order <id> not found" text when Order is nil.
type OrderResponse struct {
	Order *Order `json:"order,omitempty"`
	Error string `json:"error,omitempty"`
}

// FAQListResponse represents the full FAQ listing.
type FAQListResponse struct {
	FAQs []FAQEntry `json:"faqs"`
}
