package llm

import (
	"os"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	// EnvMode is the environment variable name for mode selection.
	EnvMode = "SHOPASSIST_MODE"
	// ModeMock indicates mock mode should be used.
	ModeMock = "MOCK"
)

// NewFromEnv creates an LLM client based on the SHOPASSIST_MODE
// environment variable. SHOPASSIST_MODE=MOCK returns a MockClient;
// anything else returns a real HTTPClient.
func NewFromEnv(baseURL, apiKey string, timeout time.Duration) Client {
	if os.Getenv(EnvMode) == ModeMock {
		log.Info().Msg("SHOPASSIST_MODE=MOCK detected, using mock LLM client")
		return NewMockClient()
	}
	return NewHTTPClient(baseURL, apiKey, timeout)
}
