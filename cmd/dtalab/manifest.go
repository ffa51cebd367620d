package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/gyeh/dtalab/internal/edifact"
	"github.com/gyeh/dtalab/internal/exitcode"
	"github.com/gyeh/dtalab/internal/logging"
	"github.com/gyeh/dtalab/internal/manifest"
	"github.com/gyeh/dtalab/internal/normalize"
)

var manifestFile string

var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Summarise a batch manifest (no writes)",
	RunE:  runManifest,
}

func init() {
	manifestCmd.Flags().StringVar(&manifestFile, "file", "", "Path to Parquet manifest (required)")
	_ = manifestCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(manifestCmd)
}

func runManifest(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)

	sha, err := normalize.FileHash(manifestFile)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash manifest")
		os.Exit(exitcode.ValidationError)
	}

	rows, err := manifest.ReadAll(manifestFile)
	if err != nil {
		log.Error().Err(err).Msg("failed to read manifest")
		os.Exit(exitcode.ValidationError)
	}
	s := manifest.Summarize(rows)

	fmt.Println("=== dtalab manifest ===")
	fmt.Printf("File:      %s\n", manifestFile)
	fmt.Printf("SHA-256:   %s\n", sha)
	fmt.Printf("Batches:   %v\n", s.BatchIDs)
	fmt.Printf("Rows:      %d\n", s.Rows)
	fmt.Printf("Generated: %d\n", s.Generated)
	fmt.Printf("Failed:    %d\n", s.Failed)
	fmt.Printf("Billed:    %s EUR\n", edifact.FormatAmount(s.BilledCents))

	fmt.Println()
	fmt.Println("By message type:")
	for _, k := range sortedKeys(s.ByType) {
		fmt.Printf("  %-6s %6d\n", k, s.ByType[k])
	}
	if len(s.ByScenario) > 0 {
		fmt.Println("By scenario:")
		for _, k := range sortedKeys(s.ByScenario) {
			fmt.Printf("  %-28s %6d\n", k, s.ByScenario[k])
		}
	}
	return nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
