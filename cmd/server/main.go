// ABOUTME: Main entry point for the vectorguard MCP server with stdio transport
// ABOUTME: Initializes the quality monitor, alert sink, and MCP tools
package main

import (
	"log"

	"github.com/harper/vectorguard/internal/alerts"
	"github.com/harper/vectorguard/internal/charm"
	"github.com/harper/vectorguard/internal/config"
	"github.com/harper/vectorguard/internal/mcp"
	"github.com/harper/vectorguard/internal/monitor"
	"github.com/joho/godotenv"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Prefer the cloud-synced alert journal; fall back to log-only alerts
	var sink alerts.Sink = alerts.LogSink{}
	if client, err := charm.GetClient(); err != nil {
		log.Printf("Warning: charm unavailable, alerts will only be logged: %v", err)
	} else {
		defer client.Close()
		sink = alerts.NewCharmSink(client)
	}

	mon := monitor.NewMonitor(monitorOptions(cfg), sink)

	server := mcpserver.NewMCPServer(
		"VectorGuard Embedding Quality Monitor",
		"0.1.0",
	)
	mcp.RegisterTools(server, mon)

	log.Println("vectorguard MCP server starting on stdio...")
	if err := mcpserver.ServeStdio(server); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// monitorOptions maps the environment config onto monitor options
func monitorOptions(cfg *config.Config) *monitor.Options {
	opts := monitor.DefaultOptions()
	opts.Validator.ExpectedDimension = cfg.VectorDimension
	opts.Validator.ZeroTolerance = cfg.ZeroTolerance
	opts.Validator.MostlyZerosThreshold = cfg.MostlyZerosThreshold
	opts.Validator.ExtremeValueThreshold = cfg.ExtremeValueThreshold
	opts.Validator.MinVarianceThreshold = cfg.MinVarianceThreshold
	opts.Validator.MaxRepetitionThreshold = cfg.MaxRepetitionThreshold
	opts.CriticalIssueThreshold = cfg.CriticalIssueThreshold
	opts.QualityScoreThreshold = cfg.QualityScoreThreshold
	opts.BatchSizeThreshold = cfg.BatchSizeThreshold
	opts.AlertCooldown = cfg.AlertCooldown
	opts.MaxRecentResults = cfg.MaxRecentResults
	return opts
}
