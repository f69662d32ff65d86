// ABOUTME: Root CLI command with global flags and subcommand registration
// ABOUTME: Defines the vectorguard command tree and shared output settings
package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
	format  string
)

const banner = `
██╗   ██╗███████╗ ██████╗████████╗ ██████╗ ██████╗  ██████╗ ██╗   ██╗ █████╗ ██████╗ ██████╗
██║   ██║██╔════╝██╔════╝╚══██╔══╝██╔═══██╗██╔══██╗██╔════╝ ██║   ██║██╔══██╗██╔══██╗██╔══██╗
██║   ██║█████╗  ██║        ██║   ██║   ██║██████╔╝██║  ███╗██║   ██║███████║██████╔╝██║  ██║
╚██╗ ██╔╝██╔══╝  ██║        ██║   ██║   ██║██╔══██╗██║   ██║██║   ██║██╔══██║██╔══██╗██║  ██║
 ╚████╔╝ ███████╗╚██████╗   ██║   ╚██████╔╝██║  ██║╚██████╔╝╚██████╔╝██║  ██║██║  ██║██████╔╝
  ╚═══╝  ╚══════╝ ╚═════╝   ╚═╝    ╚═════╝ ╚═╝  ╚═╝ ╚═════╝  ╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═╝╚═════╝
`

// NewRootCmd creates the root command for the vectorguard CLI
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vectorguard",
		Short: "Embedding quality validation and monitoring",
		Long: banner + `
VectorGuard catches degenerate or corrupted embedding vectors before they
poison semantic search: all-zero vectors, NaN/Inf components, wrong
dimensionality, near-constant or repetitive patterns.

Validate embeddings from files, probe a live embedding pipeline, review
journaled alerts, or run as an MCP server for LLM agents.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.PersistentFlags().StringVar(&format, "format", "auto", "Output format (auto, table, json)")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(NewCheckCmd())
	cmd.AddCommand(NewProbeCmd())
	cmd.AddCommand(NewAlertsCmd())
	cmd.AddCommand(NewMCPCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
