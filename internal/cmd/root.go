package cmd

import (
	"github.com/fedistats/tagstat/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root cobra command for the tagstat CLI.
// It sets up all subcommands, command groups, and basic configuration.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tagstat",
		Short: "tagstat - Hashtag usage statistics for social-media data exports",
		Long: `tagstat analyzes a Mastodon (or other ActivityPub) data export and counts
how often each hashtag was used across all posts.

It reads a single JSON file or a directory tree of JSON files, prints a
ranked top-N listing to the console, and exports the full frequency table
as a delimited text file suitable for spreadsheets.

Use subcommands to perform different operations:
  - analyze: Count hashtag usage and export the frequency table
  - scan: List the JSON files an analysis would process
  - seed: Generate a synthetic archive for testing`,
		Version: version.GetFullVersion(),
	}

	groupAnalysis := "analysis"
	groupUtilities := "utilities"

	// Add command groups for better organization
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupAnalysis,
		Title: "Analysis Operations",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    groupUtilities,
		Title: "Utility Commands",
	})

	analyzeCmd := NewAnalyzeCmd()
	scanCmd := NewScanCmd()
	seedCmd := NewSeedCmd()

	analyzeCmd.GroupID = groupAnalysis
	scanCmd.GroupID = groupUtilities
	seedCmd.GroupID = groupUtilities

	// Add subcommands
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(seedCmd)

	return rootCmd
}
