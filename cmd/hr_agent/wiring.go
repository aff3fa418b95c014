package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/jonathan/hr-copilot/internal/config"
	"github.com/jonathan/hr-copilot/internal/interview"
	"github.com/jonathan/hr-copilot/internal/llm"
	"github.com/jonathan/hr-copilot/internal/supervisor"
	"github.com/jonathan/hr-copilot/internal/vectorsearch"
)

// buildSupervisor wires the pipeline: Gemini embedder, Qdrant searcher, and
// the interview generator (template by default; LLM-backed when
// INTERVIEW_LLM_ENABLED is set). The returned closer releases the Gemini
// clients.
func buildSupervisor(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*supervisor.Supervisor, func(), error) {
	if cfg.QdrantURL == "" {
		return nil, nil, fmt.Errorf("QDRANT_URL environment variable is required")
	}
	apiKey := cfg.GeminiAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	embedder, err := vectorsearch.NewGeminiEmbedder(ctx, apiKey, "")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create embedder: %w", err)
	}

	qdrant := vectorsearch.NewClient(cfg.QdrantURL, cfg.QdrantAPIKey, cfg.QdrantCollection)
	searcher := vectorsearch.NewQdrantSearcher(embedder, qdrant, vectorsearch.ScoreMode(cfg.ScoreMode), logger)

	var generator interview.Generator
	closer := func() { _ = embedder.Close() }

	if enabled, _ := strconv.ParseBool(os.Getenv("INTERVIEW_LLM_ENABLED")); enabled {
		llmClient, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), apiKey)
		if err != nil {
			_ = embedder.Close()
			return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
		}
		generator = interview.NewLLMGenerator(llmClient, logger)
		closer = func() {
			_ = llmClient.Close()
			_ = embedder.Close()
		}
	}

	sup := supervisor.New(searcher, generator, supervisor.Config{TopK: cfg.TopK}, logger)
	return sup, closer, nil
}
