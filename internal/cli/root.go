// Package cli implements the research-digest commands.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "research-digest",
	Short: "Recurring research-paper digests published as a static site",
	Long: "research-digest generates recurring, deduplicated digests of research papers\n" +
		"over a rolling time window, archives each run as a dated JSON artifact, and\n" +
		"compiles the archive into a browsable static site.",
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(validateCmd)
}

// Execute runs the CLI. The caller maps a non-nil error to exit code 1.
func Execute() error {
	return rootCmd.Execute()
}
