package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/fedistats/tagstat/archive"
	"github.com/fedistats/tagstat/internal/config"
	"github.com/fedistats/tagstat/report"
	"github.com/spf13/cobra"
)

type analyzeOptions struct {
	Output    string
	Top       int
	Encoding  string
	Delimiter string
	Verbose   bool
	NoColor   bool
}

// NewAnalyzeCmd creates and returns the analyze subcommand for the tagstat
// CLI. It runs the full pipeline: locate files, extract hashtags, aggregate,
// report, and export.
func NewAnalyzeCmd() *cobra.Command {
	var (
		opts       analyzeOptions
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "analyze ARCHIVE_PATH",
		Short: "Count hashtag usage and export the frequency table",
		Long: `Analyze a data export and count how often each hashtag was used.

ARCHIVE_PATH is either a single JSON file or a directory tree. Directories
are searched recursively for outbox.json, posts.json, and other outbox-named
files; when none exist, every .json file is processed. Files that fail to
parse are skipped with a warning.

The ranked top list is printed to the console and the full table is written
to the output file. Use --delimiter ";" for spreadsheet locales that expect
semicolons, and --encoding windows-1252 or iso-8859-15 when the consuming
tool cannot read UTF-8.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			// Flags win over config, config wins over built-in defaults.
			flags := cmd.Flags()
			if !flags.Changed("output") {
				opts.Output = cfg.Output
			}
			if !flags.Changed("top") {
				opts.Top = cfg.Top
			}
			if !flags.Changed("encoding") {
				opts.Encoding = cfg.Encoding
			}
			if !flags.Changed("delimiter") {
				opts.Delimiter = cfg.Delimiter
			}

			cmd.SilenceUsage = true
			return runAnalyze(args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "mastodon_hashtags.csv", "Output file for the frequency table")
	cmd.Flags().IntVar(&opts.Top, "top", 20, "Number of top hashtags to display")
	cmd.Flags().StringVar(&opts.Encoding, "encoding", report.EncodingUTF8Sig,
		fmt.Sprintf("Output encoding, one of %v", report.Encodings()))
	cmd.Flags().StringVar(&opts.Delimiter, "delimiter", ",", "Output field delimiter")
	cmd.Flags().StringVar(&configPath, "config", "", "YAML config file with analyze defaults")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show per-file progress")
	cmd.Flags().BoolVar(&opts.NoColor, "no-color", false, "Disable colored console output")

	return cmd
}

func runAnalyze(archivePath string, opts analyzeOptions) error {
	delimiter, err := delimiterRune(opts.Delimiter)
	if err != nil {
		return err
	}

	fmt.Printf("Reading archive: %s\n", archivePath)

	files, err := archive.FindFiles(archivePath)
	if err != nil {
		return err
	}
	fmt.Printf("JSON files found: %d\n", len(files))

	counter := report.NewCounter()
	for _, file := range files {
		if opts.Verbose {
			fmt.Printf("   Processing: %s...", filepath.Base(file))
		}
		posts, err := archive.ReadPosts(file)
		if err != nil {
			if opts.Verbose {
				fmt.Println()
			}
			log.Printf("Warning: skipping %s: %v", file, err)
			continue
		}

		tagged := 0
		for _, post := range posts {
			tags := archive.ExtractHashtags(post)
			counter.AddPost(tags)
			if len(tags) > 0 {
				tagged++
			}
		}
		if opts.Verbose {
			fmt.Printf(" ok (%d posts with hashtags)\n", tagged)
		}
	}

	fmt.Printf("\nProcessed: %d posts with hashtags\n", counter.TaggedPosts())
	fmt.Printf("Found: %d distinct hashtags\n", counter.Len())

	if counter.Len() == 0 {
		return report.ErrNoHashtags
	}

	report.PrintTop(os.Stdout, counter, opts.Top, !opts.NoColor)

	fmt.Printf("\nExporting to: %s\n", opts.Output)
	fmt.Printf("   Encoding: %s, delimiter: %q\n", opts.Encoding, opts.Delimiter)
	if err := report.WriteCSV(opts.Output, counter.Ranked(), delimiter, opts.Encoding); err != nil {
		if !errors.Is(err, report.ErrEncoding) {
			return err
		}
		log.Printf("Warning: %v", err)
		log.Printf("Try again with --encoding %s or --encoding %s",
			report.EncodingWindows1252, report.EncodingISO885915)
	} else {
		fmt.Println("Export complete")
	}

	fmt.Printf("\nStatistics:\n")
	fmt.Printf("   Distinct hashtags: %d\n", counter.Len())
	fmt.Printf("   Total hashtag uses: %d\n", counter.TotalUses())
	return nil
}

// delimiterRune validates that the --delimiter flag is exactly one
// character.
func delimiterRune(s string) (rune, error) {
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	return runes[0], nil
}
