// ABOUTME: MCP tool definitions and registration for the vectorguard server
// ABOUTME: Defines JSON schemas for the 5 embedding quality tools
package mcp

import (
	"github.com/harper/vectorguard/internal/monitor"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, mon *monitor.Monitor) *Handlers {
	handlers := &Handlers{monitor: mon}

	// 1. validate_embedding - Classify a single embedding vector
	server.AddTool(mcp.Tool{
		Name:        "validate_embedding",
		Description: "Validate a single embedding vector for quality issues (zeros, NaN/Inf, dimension, variance, repetition). Returns the classification and updates cumulative quality metrics.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"embedding": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "number"},
					"description": "Embedding vector to validate",
				},
				"source_id": map[string]interface{}{
					"type":        "string",
					"description": "Optional identifier of the document or chunk the embedding came from",
				},
			},
			Required: []string{"embedding"},
		},
	}, handlers.ValidateEmbedding)

	// 2. validate_embedding_batch - Classify a batch of embedding vectors
	server.AddTool(mcp.Tool{
		Name:        "validate_embedding_batch",
		Description: "Validate a batch of embedding vectors. Returns per-item classifications plus a batch summary, and evaluates batch-level alert conditions.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"embeddings": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type":  "array",
						"items": map[string]interface{}{"type": "number"},
					},
					"description": "Embedding vectors to validate, in order",
				},
				"source_id": map[string]interface{}{
					"type":        "string",
					"description": "Optional identifier for the batch source",
				},
			},
			Required: []string{"embeddings"},
		},
	}, handlers.ValidateEmbeddingBatch)

	// 3. get_quality_metrics - Snapshot of cumulative quality metrics
	server.AddTool(mcp.Tool{
		Name:        "get_quality_metrics",
		Description: "Get the cumulative embedding quality metrics tracked by this monitor (counters, quality score, alerts sent).",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.GetQualityMetrics)

	// 4. get_recent_issues - Recent invalid results for diagnostics
	server.AddTool(mcp.Tool{
		Name:        "get_recent_issues",
		Description: "Get the most recent invalid validation results, most recent last.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"limit": map[string]interface{}{
					"type":        "number",
					"description": "Maximum number of issues to return (default: 10)",
					"default":     10,
				},
			},
		},
	}, handlers.GetRecentIssues)

	// 5. reset_metrics - Clear counters, history and cooldown state
	server.AddTool(mcp.Tool{
		Name:        "reset_metrics",
		Description: "Reset cumulative metrics, the recent-results buffer, and alert cooldown state.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.ResetMetrics)

	return handlers
}
