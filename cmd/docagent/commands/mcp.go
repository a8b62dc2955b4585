// ABOUTME: MCP command starts Model Context Protocol server
// ABOUTME: Enables LLM agents like Claude to use the document agent via stdio
package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harper/docagent-standalone/internal/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents

Runs the document agent as an MCP (Model Context Protocol) server,
enabling LLM agents like Claude to upload documents and ask questions
via stdio.

Configure in Claude Desktop's config file to enable the document tools.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically called by Claude Desktop)
  docagent mcp

  # Configure in claude_desktop_config.json:
  # {
  #   "mcpServers": {
  #     "docagent": {
  #       "command": "docagent",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

// runMCP starts the MCP server
func runMCP(cmd *cobra.Command, args []string) error {
	agent, index, err := buildAgent()
	if err != nil {
		return err
	}

	if err := index.Health(cmd.Context()); err != nil {
		log.Printf("Warning: vector index not reachable, lexical retrieval only: %v", err)
	}

	// Create MCP server
	server := mcpserver.NewMCPServer(
		"Document Agent",
		"0.1.0",
	)

	// Register MCP tools
	mcp.RegisterTools(server, agent, index)

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !quiet {
		log.Println("Document agent MCP server starting on stdio...")
	}

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- mcpserver.ServeStdio(server)
	}()

	// Wait for shutdown signal or server error
	select {
	case <-ctx.Done():
		if !quiet {
			log.Println("Shutdown signal received, shutting down")
		}
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
	}

	return nil
}
