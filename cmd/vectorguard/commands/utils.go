// ABOUTME: Shared utility functions for CLI commands
// ABOUTME: Consolidates config mapping, display helpers, and input parsing
package commands

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/harper/vectorguard/internal/config"
	"github.com/harper/vectorguard/internal/monitor"
)

// monitorOptionsFromConfig maps the environment config onto monitor options
func monitorOptionsFromConfig(cfg *config.Config) *monitor.Options {
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

// parseEmbeddings decodes a JSON document holding embedding vectors.
// Accepts either a bare array of arrays or {"embeddings": [[...], ...]}.
func parseEmbeddings(data []byte) ([][]float64, error) {
	var bare [][]float64
	if err := json.Unmarshal(data, &bare); err == nil {
		return bare, nil
	}

	var wrapped struct {
		Embeddings [][]float64 `json:"embeddings"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Embeddings != nil {
		return wrapped.Embeddings, nil
	}

	return nil, fmt.Errorf("input must be a JSON array of numeric arrays or an object with an \"embeddings\" field")
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

// formatTime formats a time for display
func formatTime(t time.Time) string {
	now := time.Now()
	diff := now.Sub(t)

	if diff < time.Minute {
		return "just now"
	} else if diff < time.Hour {
		mins := int(diff.Minutes())
		return fmt.Sprintf("%dm ago", mins)
	} else if diff < 24*time.Hour {
		hours := int(diff.Hours())
		return fmt.Sprintf("%dh ago", hours)
	} else if diff < 7*24*time.Hour {
		days := int(diff.Hours() / 24)
		return fmt.Sprintf("%dd ago", days)
	}
	return t.Format("2006-01-02")
}

// validatePositiveInt returns error if n is not positive
func validatePositiveInt(n int, name string) error {
	if n <= 0 {
		return fmt.Errorf("%s must be positive, got %d", name, n)
	}
	return nil
}
