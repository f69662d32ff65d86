// ABOUTME: MCP command starts Model Context Protocol server
// ABOUTME: Enables LLM agents to validate embeddings via stdio
package commands

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/harper/vectorguard/internal/alerts"
	"github.com/harper/vectorguard/internal/charm"
	"github.com/harper/vectorguard/internal/config"
	"github.com/harper/vectorguard/internal/mcp"
	"github.com/harper/vectorguard/internal/monitor"
	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents

Runs VectorGuard as an MCP (Model Context Protocol) server, enabling
LLM agents to validate embedding vectors and inspect quality metrics
via stdio.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically called by an MCP client)
  vectorguard mcp

  # Configure in claude_desktop_config.json:
  # {
  #   "mcpServers": {
  #     "vectorguard": {
  #       "command": "vectorguard",
  #       "args": ["mcp"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

// runMCP starts the MCP server
func runMCP(cmd *cobra.Command, args []string) error {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !quiet {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Prefer the cloud-synced alert journal; fall back to log-only alerts
	var sink alerts.Sink = alerts.LogSink{}
	if client, err := charm.GetClient(); err != nil {
		log.Printf("Warning: charm unavailable, alerts will only be logged: %v", err)
	} else {
		defer client.Close()
		sink = alerts.NewCharmSink(client)
	}

	mon := monitor.NewMonitor(monitorOptionsFromConfig(cfg), sink)

	server := mcpserver.NewMCPServer(
		"VectorGuard Embedding Quality Monitor",
		"0.1.0",
	)
	mcp.RegisterTools(server, mon)

	if !quiet {
		log.Println("vectorguard MCP server starting on stdio...")
	}
	if err := mcpserver.ServeStdio(server); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
