package cmd

import (
	"fmt"

	"github.com/fedistats/tagstat/archive"
	"github.com/spf13/cobra"
)

// NewScanCmd creates and returns the scan subcommand for the tagstat CLI.
// It lists the candidate files an analysis would process, without parsing
// any of them.
func NewScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan PATH",
		Short: "List the JSON files an analysis would process",
		Long: `List the candidate JSON files found under PATH.

This runs only the file locator: the same outbox.json/posts.json preference
and .json fallback that analyze uses, but no file is opened or parsed.
Useful for checking what a run would pick up before committing to it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			files, err := archive.FindFiles(args[0])
			if err != nil {
				return err
			}
			for _, file := range files {
				fmt.Println(file)
			}
			fmt.Printf("\n%d candidate files\n", len(files))
			return nil
		},
	}

	return cmd
}
