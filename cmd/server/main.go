// ABOUTME: Main entry point for the document agent MCP server with stdio transport
// ABOUTME: Initializes vector index client, generation client, agent, and tools
package main

import (
	"context"
	"log"

	"github.com/harper/docagent-standalone/internal/config"
	"github.com/harper/docagent-standalone/internal/core"
	"github.com/harper/docagent-standalone/internal/llm"
	"github.com/harper/docagent-standalone/internal/mcp"
	"github.com/harper/docagent-standalone/internal/vector"
	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

func main() {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// Vector index sidecar; the agent degrades to lexical retrieval without it
	index := vector.NewClientWithConfig(&vector.ClientConfig{
		BaseURL:    cfg.VectorURL,
		Timeout:    cfg.VectorTimeout,
		MaxRetries: cfg.VectorMaxRetries,
		RetryDelay: cfg.VectorRetryDelay,
	})
	if err := index.Health(context.Background()); err != nil {
		log.Printf("Warning: vector index not reachable at %s, lexical retrieval only: %v", cfg.VectorURL, err)
	}

	generator, err := llm.NewClientWithConfig(&llm.ClientConfig{
		APIKey:    cfg.OpenAIKey,
		BaseURL:   cfg.LLMBaseURL,
		ChatModel: cfg.ChatModel,
	})
	if err != nil {
		log.Fatalf("Failed to initialize generation client: %v", err)
	}

	agent := core.NewAgent(index, generator, core.NewChunker(cfg.ChunkSize, cfg.ChunkOverlap))
	agent.DefaultModel = cfg.ChatModel

	// Create MCP server
	server := mcpserver.NewMCPServer(
		"Document Agent",
		"0.1.0",
	)

	// Register MCP tools
	mcp.RegisterTools(server, agent, index)

	// Start server with stdio transport
	log.Println("Document agent MCP server starting on stdio...")
	if err := mcpserver.ServeStdio(server); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
