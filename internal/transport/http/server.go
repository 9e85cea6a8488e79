// Package http provides the HTTP server for the chatbot service.
package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"shopassist/internal/agent"
)

// NewServer creates and configures the HTTP server. CORS is wide open so
// a separately hosted chat UI can connect.
func NewServer(chatAgent agent.Agent) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	h := NewHandler(chatAgent)
	h.RegisterRoutes(e)

	return e
}
