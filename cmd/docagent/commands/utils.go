// ABOUTME: Shared utility functions for CLI commands
// ABOUTME: Agent wiring, file reading, and display helpers
package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/harper/docagent-standalone/internal/config"
	"github.com/harper/docagent-standalone/internal/core"
	"github.com/harper/docagent-standalone/internal/extract"
	"github.com/harper/docagent-standalone/internal/llm"
	"github.com/harper/docagent-standalone/internal/vector"
)

// buildAgent wires a full agent from environment configuration
func buildAgent() (*core.Agent, *vector.Client, error) {
	// Load .env for API keys
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading configuration: %w", err)
	}

	index := vector.NewClientWithConfig(&vector.ClientConfig{
		BaseURL:    cfg.VectorURL,
		Timeout:    cfg.VectorTimeout,
		MaxRetries: cfg.VectorMaxRetries,
		RetryDelay: cfg.VectorRetryDelay,
	})

	generator, err := llm.NewClientWithConfig(&llm.ClientConfig{
		APIKey:    cfg.OpenAIKey,
		BaseURL:   cfg.LLMBaseURL,
		ChatModel: cfg.ChatModel,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("initializing generation client: %w", err)
	}

	agent := core.NewAgent(index, generator, core.NewChunker(cfg.ChunkSize, cfg.ChunkOverlap))
	agent.DefaultModel = cfg.ChatModel

	return agent, index, nil
}

// buildIndexClient wires only the vector index client, for commands that
// never touch the generation endpoint
func buildIndexClient() *vector.Client {
	_ = godotenv.Load()

	cfg := vector.DefaultConfig()
	return vector.NewClientWithConfig(cfg)
}

// readDocumentFile loads and extracts a document from disk
func readDocumentFile(path string) (name, text string, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("reading file: %w", err)
	}

	name = filepath.Base(path)
	text, err = extract.ExtractText(name, data)
	if err != nil {
		return "", "", err
	}

	return name, text, nil
}

// truncate shortens a string to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return string(runes[:maxLen-3]) + "..."
}
