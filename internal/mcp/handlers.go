// ABOUTME: MCP tool handler implementations for the vectorguard server
// ABOUTME: Parses vector arguments and delegates to the quality monitor
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harper/vectorguard/internal/monitor"
	"github.com/mark3labs/mcp-go/mcp"
)

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	monitor *monitor.Monitor
}

// ValidateEmbedding handles the validate_embedding tool
func (h *Handlers) ValidateEmbedding(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]any)
	if !ok {
		return mcp.NewToolResultError("invalid arguments"), nil
	}

	vector, err := extractVector(args, "embedding")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	sourceInfo := sourceInfoFromRequest(request)

	// MCP callers get the classification back; raising is a library concern
	result, _ := h.monitor.Validate(vector, sourceInfo, false)

	responseJSON, err := json.Marshal(result)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}

// ValidateEmbeddingBatch handles the validate_embedding_batch tool
func (h *Handlers) ValidateEmbeddingBatch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]any)
	if !ok {
		return mcp.NewToolResultError("invalid arguments"), nil
	}

	raw, exists := args["embeddings"]
	if !exists {
		return mcp.NewToolResultError("embeddings argument is required"), nil
	}
	rawList, ok := raw.([]interface{})
	if !ok {
		return mcp.NewToolResultError("embeddings must be an array of numeric arrays"), nil
	}

	vectors := make([][]float64, 0, len(rawList))
	for i, item := range rawList {
		vector, err := coerceVector(item)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("embeddings[%d]: %v", i, err)), nil
		}
		vectors = append(vectors, vector)
	}

	sourceInfo := sourceInfoFromRequest(request)

	results, summary, _ := h.monitor.ValidateBatch(vectors, sourceInfo, false)

	response := map[string]interface{}{
		"results": results,
		"summary": summary,
	}
	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}

// GetQualityMetrics handles the get_quality_metrics tool
func (h *Handlers) GetQualityMetrics(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	summary := h.monitor.GetMetricsSummary()

	responseJSON, err := json.Marshal(summary)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}

// GetRecentIssues handles the get_recent_issues tool
func (h *Handlers) GetRecentIssues(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := request.GetInt("limit", 10)

	issues := h.monitor.GetRecentIssues(limit)

	response := map[string]interface{}{
		"issues": issues,
		"count":  len(issues),
	}
	responseJSON, err := json.Marshal(response)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}

// ResetMetrics handles the reset_metrics tool
func (h *Handlers) ResetMetrics(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	h.monitor.ResetMetrics()

	responseJSON, err := json.Marshal(map[string]interface{}{"success": true})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}

// sourceInfoFromRequest builds the optional source info map from arguments
func sourceInfoFromRequest(request mcp.CallToolRequest) map[string]interface{} {
	if sourceID := request.GetString("source_id", ""); sourceID != "" {
		return map[string]interface{}{"source_id": sourceID}
	}
	return nil
}

// extractVector pulls a required numeric array argument
func extractVector(args map[string]any, key string) ([]float64, error) {
	raw, exists := args[key]
	if !exists {
		return nil, fmt.Errorf("%s argument is required", key)
	}
	return coerceVector(raw)
}

// coerceVector converts a JSON array value into a float64 slice
func coerceVector(raw interface{}) ([]float64, error) {
	arr, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("expected a numeric array, got %T", raw)
	}
	vector := make([]float64, 0, len(arr))
	for i, item := range arr {
		num, ok := item.(float64)
		if !ok {
			return nil, fmt.Errorf("element %d is not a number (%T)", i, item)
		}
		vector = append(vector, num)
	}
	return vector, nil
}
