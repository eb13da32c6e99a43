// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/trait-graph/internal/graph"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the graph from the corpus and print its summary",
	Long: `Build extracts every corpus text in order, folds the results into one
graph, and prints the size counters followed by the entity breakdown,
relationship types, and the traits attached to each person.`,
	RunE: runBuild,
}

// buildOutput is the --json form of the build command.
type buildOutput struct {
	Stats   graph.Stats   `json:"stats"`
	Summary graph.Summary `json:"summary"`
}

func runBuild(cmd *cobra.Command, args []string) error {
	p, err := runPipeline(cmd)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(buildOutput{Stats: p.graph.Stats(), Summary: p.graph.Summarize()})
	}

	renderStats(os.Stdout, p.graph.Stats())
	renderSummary(os.Stdout, p.graph.Summarize())
	return nil
}

func init() {
	buildCmd.Flags().Bool("json", false, "output stats and summary as JSON")

	rootCmd.AddCommand(buildCmd)
}
