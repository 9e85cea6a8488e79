package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"shopassist/internal/agent"
	"shopassist/internal/domain"
)

// DefaultSessionID is used when the client does not supply a session ID.
const DefaultSessionID = "default"

// Handler handles HTTP requests.
type Handler struct {
	agent agent.Agent
}

// NewHandler creates a new handler.
func NewHandler(chatAgent agent.Agent) *Handler {
	return &Handler{agent: chatAgent}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Root)
	e.GET("/health", h.Health)

	e.POST("/chat", h.Chat)

	e.GET("/v1/orders/:order_id", h.GetOrder)
	e.GET("/v1/faqs", h.ListFAQs)
	e.POST("/v1/sessions/:session_id/reset", h.ResetSession)
}

// Root returns a service banner.
func (h *Handler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Customer service API is running. Use the /chat endpoint to interact.",
	})
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": "0.1.0",
	})
}

// Chat handles a single chat turn.
// POST /chat
func (h *Handler) Chat(c echo.Context) error {
	var req domain.ChatRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if req.Message == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "message is required"})
	}
	if req.SessionID == "" {
		req.SessionID = DefaultSessionID
	}

	response, sessionContext := h.agent.ProcessMessage(c.Request().Context(), req.Message, req.SessionID, req.Context)

	return c.JSON(http.StatusOK, domain.ChatResponse{
		Response:  response,
		SessionID: req.SessionID,
		Context:   sessionContext,
	})
}

// GetOrder looks up an order by ID.
// GET /v1/orders/:order_id
func (h *Handler) GetOrder(c echo.Context) error {
	resp := h.agent.TrackOrder(c.Request().Context(), c.Param("order_id"))
	if resp.Error != "" {
		return c.JSON(http.StatusNotFound, resp)
	}
	return c.JSON(http.StatusOK, resp)
}

// ListFAQs returns the full FAQ list.
// GET /v1/faqs
func (h *Handler) ListFAQs(c echo.Context) error {
	faqs, err := h.agent.FAQs(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, domain.FAQListResponse{FAQs: faqs})
}

// ResetSession clears a session's conversation history and context.
// POST /v1/sessions/:session_id/reset
func (h *Handler) ResetSession(c echo.Context) error {
	if err := h.agent.ResetConversation(c.Param("session_id")); err != nil {
		if errors.Is(err, agent.ErrDegraded) {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "reset"})
}
