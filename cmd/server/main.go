// cmd/server/main.go
package main

import (
	"context"
	"log"
	"log/slog"

	"photo-critic/internal/config"
	"photo-critic/internal/evaluator"
	"photo-critic/internal/llm"
	"photo-critic/internal/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	var provider llm.Provider
	switch cfg.Provider {
	case "gemini":
		provider, err = llm.NewGemini(context.Background(), &cfg.Gemini)
	default: // "openai" or "azure"
		provider, err = llm.NewOpenAI(cfg.Provider, &cfg.OpenAI)
	}
	if err != nil {
		log.Fatalf("failed to create LLM provider: %v", err)
	}

	eval := evaluator.New(provider)

	srv := server.New(*cfg, eval)
	slog.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port, "provider", cfg.Provider)
	if err := srv.Run(); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
