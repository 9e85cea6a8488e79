package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"shopassist/internal/adapter/llm"
	"shopassist/internal/agent"
	"shopassist/internal/config"
	"shopassist/internal/faq"
	"shopassist/internal/logging"
	"shopassist/internal/memory"
	"shopassist/internal/orders"
	"shopassist/internal/policy"
	"shopassist/internal/store"
	handler "shopassist/internal/transport/http"
)

func main() {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	log.Info().
		Int("http_port", cfg.HTTPPort).
		Str("database", cfg.DatabaseURL).
		Str("llm_base_url", cfg.LLMBaseURL).
		Msg("starting chat service")

	// Build the real agent; if anything fails, serve the degraded agent
	// instead of refusing to start.
	chatAgent, cleanup, err := buildAgent(cfg)
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize agent, serving degraded responses")
		chatAgent = agent.NewDegraded()
	}
	if cleanup != nil {
		defer cleanup()
	}

	e := handler.NewServer(chatAgent)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTPPort)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	log.Info().Int("port", cfg.HTTPPort).Msg("API started")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("failed to shutdown server gracefully")
	}

	log.Info().Msg("stopped")
}

// buildAgent wires the orchestrator and its collaborators. The returned
// cleanup closes the store.
func buildAgent(cfg *config.Config) (agent.Agent, func(), error) {
	db, err := store.NewSQLiteStore(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize store: %w", err)
	}
	cleanup := func() {
		if err := db.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close store")
		}
	}

	faqEntries, err := db.ListFAQs(context.Background())
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to load FAQs: %w", err)
	}
	retriever := faq.NewRetriever(faqEntries, nil, cfg.FAQSimThreshold)

	guardrail, err := policy.NewEngine(context.Background(), policy.DefaultPolicy)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to initialize guardrail: %w", err)
	}

	llmClient := llm.NewFromEnv(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMTimeout)

	orch := agent.New(memory.New(), orders.New(db), retriever, llmClient, cfg.LLMModel, guardrail)
	return orch, cleanup, nil
}
