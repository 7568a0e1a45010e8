// Package cli implements the darkroom command line, a batch companion to
// the MCP server: it applies presets and one-off adjustments to image files
// without a long-lived session.
package cli

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the darkroom command tree.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "darkroom",
		Short: "Photo adjustment pipeline for batch use",
		Long: `Darkroom applies the photo adjustment pipeline to image files.

It renders images through the same exposure, tone, color and finishing
stages as the darkroom-mcp server, driven by preset files and command
line overrides instead of an interactive session.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	// Add subcommands
	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newSuggestCmd())
	cmd.AddCommand(newInspectCmd())

	return cmd
}
