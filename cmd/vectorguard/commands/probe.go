// ABOUTME: CLI command to probe a live embedding pipeline end to end
// ABOUTME: Generates one embedding via OpenAI and runs it through validation
package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harper/vectorguard/internal/alerts"
	"github.com/harper/vectorguard/internal/config"
	"github.com/harper/vectorguard/internal/llm"
	"github.com/harper/vectorguard/internal/monitor"
	"github.com/joho/godotenv"
	openai "github.com/sashabaranov/go-openai"
)

// NewProbeCmd creates the probe command
func NewProbeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "probe [text]",
		Short: "Generate and validate one embedding from the live pipeline",
		Long: `Generate an embedding for the given text via the OpenAI API and run it
through the quality checks. A quick smoke test that the upstream
embedding service is producing healthy vectors.

Requires OPENAI_API_KEY.

Examples:
  vectorguard probe "the quick brown fox"
  vectorguard probe --format json "hello world"`,
		Args: cobra.MinimumNArgs(1),
		RunE: runProbe,
	}

	return cmd
}

func runProbe(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cfg.OpenAIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required for probe")
	}

	text := strings.Join(args, " ")

	client, err := llm.NewOpenAIClientWithConfig(&llm.ClientConfig{
		APIKey:         cfg.OpenAIKey,
		EmbeddingModel: openai.EmbeddingModel(cfg.EmbeddingModel),
		Timeout:        cfg.Timeout,
		MaxRetries:     cfg.MaxRetries,
		RetryDelay:     cfg.RetryDelay,
	})
	if err != nil {
		return fmt.Errorf("initializing OpenAI client: %w", err)
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Generating embedding (%s)...\n", cfg.EmbeddingModel)
	}
	vector, err := client.GenerateEmbedding(text)
	if err != nil {
		return fmt.Errorf("generating embedding: %w", err)
	}

	mon := monitor.NewMonitor(monitorOptionsFromConfig(cfg), alerts.LogSink{})
	result, _ := mon.Validate(vector, map[string]interface{}{
		"probe_text": truncate(text, 80),
		"model":      cfg.EmbeddingModel,
	}, false)

	if format == "json" {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling result: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Issue:      %s\n", result.IssueType)
		fmt.Fprintf(cmd.OutOrStdout(), "Severity:   %s\n", result.Severity)
		fmt.Fprintf(cmd.OutOrStdout(), "Confidence: %.2f\n", result.Confidence)
		fmt.Fprintf(cmd.OutOrStdout(), "Details:    %s\n", result.Details)
	}

	if !result.IsValid {
		return fmt.Errorf("probe embedding failed validation: %s", result.IssueType)
	}
	return nil
}
