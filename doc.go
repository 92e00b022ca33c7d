// Package main provides the tagstat command-line interface.
//
// tagstat analyzes a Mastodon (or other ActivityPub) data export, counts
// hashtag usage across all posts, prints a ranked top-N listing, and exports
// the full frequency table as a delimited text file.
//
// The main binary supports multiple subcommands:
//   - analyze: Count hashtag usage and export the frequency table
//   - scan: List the JSON files an analysis would process
//   - seed: Generate a synthetic archive for testing
package main
