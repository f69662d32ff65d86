// ABOUTME: CLI command to list journaled alerts from Charm KV
// ABOUTME: Shows recent alert payloads with type, severity and age
package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/harper/vectorguard/internal/alerts"
	"github.com/harper/vectorguard/internal/charm"
	"github.com/joho/godotenv"
)

var alertsLimit int

// NewAlertsCmd creates the alerts command
func NewAlertsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alerts",
		Short: "List recent alerts from the cloud-synced journal",
		Long: `List alerts journaled to Charm KV by monitors using the charm sink.

Examples:
  vectorguard alerts
  vectorguard alerts --limit 50
  vectorguard alerts --format json`,
		RunE: runAlerts,
	}

	cmd.Flags().IntVar(&alertsLimit, "limit", 20, "Maximum number of alerts to show")

	return cmd
}

func runAlerts(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	if err := validatePositiveInt(alertsLimit, "limit"); err != nil {
		return err
	}

	client, err := charm.GetClient()
	if err != nil {
		return fmt.Errorf("connecting to charm: %w", err)
	}
	defer client.Close()

	sink := alerts.NewCharmSink(client)
	entries, err := sink.ListRecent(alertsLimit)
	if err != nil {
		return fmt.Errorf("listing alerts: %w", err)
	}

	if format == "json" {
		out, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling alerts: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No alerts journaled.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "WHEN\tTYPE\tSEVERITY\tISSUE\tID")
	for _, entry := range entries {
		issue := string(entry.IssueType)
		if issue == "" && entry.BatchSummary != nil {
			issue = fmt.Sprintf("batch of %d", entry.BatchSummary.TotalEmbeddings)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			formatTime(entry.Timestamp), entry.AlertType, entry.Severity,
			issue, truncate(entry.AlertID, 8))
	}
	return w.Flush()
}
