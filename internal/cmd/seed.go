package cmd

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"log"
	"math/big"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// NewSeedCmd creates and returns the seed subcommand for the tagstat CLI.
// It generates a synthetic ActivityPub-style archive for testing.
func NewSeedCmd() *cobra.Command {
	var (
		outputPath string
		postCount  int
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate a synthetic archive for testing",
		Long: `Generate an ActivityPub-style outbox.json populated with synthetic posts.

Each post carries a UUID-based id and up to three hashtags drawn from a
fixed pool, so analyze runs against the output produce a non-trivial
frequency distribution. Useful for demos and for exercising the pipeline
without a real data export.`,
		Run: func(cmd *cobra.Command, args []string) {
			runSeed(outputPath, postCount, verbose)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path to output directory (required)")
	cmd.Flags().IntVarP(&postCount, "count", "c", 1000, "Number of posts to generate")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	cmd.MarkFlagRequired("output")

	return cmd
}

// Hashtag pool for generated posts. Weighting comes from random selection
// with replacement, so some tags naturally dominate the ranking.
var seedTagPool = []string{
	"mastodon", "fediverse", "introduction", "photography", "caturday",
	"golang", "opensource", "music", "hiking", "retrocomputing",
}

type (
	seedTag struct {
		Type string `json:"type"`
		Name string `json:"name"`
	}
	seedObject struct {
		Content string    `json:"content"`
		Tag     []seedTag `json:"tag"`
	}
	seedPost struct {
		ID        string     `json:"id"`
		Type      string     `json:"type"`
		Published time.Time  `json:"published"`
		Object    seedObject `json:"object"`
	}
	seedOutbox struct {
		Context      string     `json:"@context"`
		Type         string     `json:"type"`
		TotalItems   int        `json:"totalItems"`
		OrderedItems []seedPost `json:"orderedItems"`
	}
)

func runSeed(outputPath string, postCount int, verbose bool) {
	if verbose {
		fmt.Printf("Generating %d posts in %s\n", postCount, outputPath)
	}

	// Create output directory
	if err := os.MkdirAll(outputPath, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}

	outbox := seedOutbox{
		Context:      "https://www.w3.org/ns/activitystreams",
		Type:         "OrderedCollection",
		TotalItems:   postCount,
		OrderedItems: make([]seedPost, 0, postCount),
	}

	for i := 0; i < postCount; i++ {
		tagCount, _ := rand.Int(rand.Reader, big.NewInt(4))
		tags := make([]seedTag, 0, tagCount.Int64())
		for j := int64(0); j < tagCount.Int64(); j++ {
			pick, _ := rand.Int(rand.Reader, big.NewInt(int64(len(seedTagPool))))
			tags = append(tags, seedTag{Type: "Hashtag", Name: "#" + seedTagPool[pick.Int64()]})
		}

		id := uuid.New().String()
		outbox.OrderedItems = append(outbox.OrderedItems, seedPost{
			ID:        "https://example.social/users/seed/statuses/" + id,
			Type:      "Create",
			Published: time.Now().UTC(),
			Object: seedObject{
				Content: "synthetic post " + id,
				Tag:     tags,
			},
		})
	}

	data, err := json.MarshalIndent(outbox, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal outbox: %v", err)
	}

	target := filepath.Join(outputPath, "outbox.json")
	if err := os.WriteFile(target, data, 0644); err != nil {
		log.Fatalf("Failed to write %s: %v", target, err)
	}

	fmt.Printf("Wrote %d posts to %s\n", postCount, target)
}
