// Package cmd provides the command-line interface implementation for tagstat.
//
// This package contains all the subcommand implementations for the tagstat
// CLI tool. It uses the Cobra library for command structure and Fang for
// beautiful styling.
//
// The package is organized into the following commands:
//   - root: Main command coordinator and entry point
//   - analyze: Full pipeline from archive path to ranked table and export
//   - scan: File-locator dry run listing candidate JSON files
//   - seed: Synthetic archive generation for testing
//
// Each command is implemented as a separate file with its own constructor
// function that returns a *cobra.Command. The analyze command layers its
// defaults: built-in values, then the optional YAML/environment config, then
// explicit flags.
//
// The package leverages the archive package for file discovery and hashtag
// extraction and the report package for aggregation and export.
package cmd
