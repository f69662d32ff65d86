// ABOUTME: CLI command to validate embeddings from a JSON file or stdin
// ABOUTME: Prints per-item verdicts and a batch summary; exits nonzero on criticals
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/harper/vectorguard/internal/alerts"
	"github.com/harper/vectorguard/internal/config"
	"github.com/harper/vectorguard/internal/models"
	"github.com/harper/vectorguard/internal/monitor"
	"github.com/joho/godotenv"
)

var (
	checkFile     string
	checkSourceID string
)

// NewCheckCmd creates the check command
func NewCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Validate embeddings from a JSON file or stdin",
		Long: `Validate a batch of embedding vectors against the quality checks.

The input is a JSON array of numeric arrays, or an object with an
"embeddings" field. Reads stdin when no file is given.

Examples:
  vectorguard check embeddings.json
  cat embeddings.json | vectorguard check
  vectorguard check --source-id=ingest-42 embeddings.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCheck,
	}

	cmd.Flags().StringVar(&checkFile, "file", "", "Read embeddings from file (same as positional arg)")
	cmd.Flags().StringVar(&checkSourceID, "source-id", "", "Source identifier attached to results")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	path := checkFile
	if len(args) > 0 {
		path = args[0]
	}

	var data []byte
	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
	} else {
		data, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	}

	vectors, err := parseEmbeddings(data)
	if err != nil {
		return err
	}
	if len(vectors) == 0 {
		return fmt.Errorf("no embeddings found in input")
	}

	var sourceInfo map[string]interface{}
	if checkSourceID != "" {
		sourceInfo = map[string]interface{}{"source_id": checkSourceID}
	}

	// One-shot run: alert conditions are reported through the summary, so
	// the sink only needs to log
	mon := monitor.NewMonitor(monitorOptionsFromConfig(cfg), alerts.LogSink{})
	results, summary, _ := mon.ValidateBatch(vectors, sourceInfo, false)

	if format == "json" {
		out, err := json.MarshalIndent(map[string]interface{}{
			"results": results,
			"summary": summary,
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling results: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
	} else {
		printCheckTable(cmd.OutOrStdout(), results, summary)
	}

	if summary.CriticalIssues > 0 {
		return fmt.Errorf("%d of %d embeddings have critical issues", summary.CriticalIssues, summary.TotalEmbeddings)
	}
	return nil
}

// printCheckTable renders per-item verdicts and the batch summary
func printCheckTable(out io.Writer, results []models.ValidationResult, summary models.BatchSummary) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "INDEX\tISSUE\tSEVERITY\tCONFIDENCE\tDETAILS")
	for i, result := range results {
		if result.IsValid && quiet {
			continue
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\t%s\n",
			i, result.IssueType, result.Severity, result.Confidence, truncate(result.Details, 60))
	}
	w.Flush()

	fmt.Fprintf(out, "\n%d embeddings: %d valid, %d critical, %d warnings (health %.3f)\n",
		summary.TotalEmbeddings, summary.ValidEmbeddings,
		summary.CriticalIssues, summary.WarningIssues, summary.BatchHealthScore)
}
