// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/trait-graph/internal/graph"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print graph quality metrics",
	Long: `Summary builds the graph and reports how much of the registry it
covers: person coverage, trait assignment rate, and relationship density,
along with the size counters.`,
	RunE: runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	p, err := runPipeline(cmd)
	if err != nil {
		return err
	}

	q, err := p.graph.Quality(len(p.corpus.People))
	if errors.Is(err, graph.ErrEmptyGraph) {
		fmt.Println("Graph is empty: no entities were extracted.")
		return nil
	}
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		q.PersonCoverage = round(q.PersonCoverage, p.cfg.Report.Precision)
		q.TraitAssignmentRate = round(q.TraitAssignmentRate, p.cfg.Report.Precision)
		q.Density = round(q.Density, p.cfg.Report.Precision)
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(q)
	}
	renderQuality(os.Stdout, q, p.cfg.Report.Precision)
	return nil
}

func init() {
	summaryCmd.Flags().Bool("json", false, "output metrics as JSON")

	rootCmd.AddCommand(summaryCmd)
}
