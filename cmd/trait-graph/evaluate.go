// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/trait-graph/internal/corpus"
	"github.com/pdiddy/trait-graph/internal/evaluate"
	"github.com/pdiddy/trait-graph/internal/graph"
	"github.com/pdiddy/trait-graph/internal/snapshot"
	"github.com/pdiddy/trait-graph/pkg/types"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Score extracted traits against the registry's trait profiles",
	Long: `Evaluate builds the graph (or loads a saved snapshot with --snapshot)
and compares the trait nodes attached to each person with the medium and
high traits in that person's profile.

Detailed mode prints every person and the macro average. Aggregated mode
pools the counts across people before computing precision, recall, and F1.`,
	RunE: runEvaluate,
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	var (
		c *corpus.Corpus
		g *graph.Graph
	)
	snapPath, _ := cmd.Flags().GetString("snapshot")
	if snapPath != "" {
		c, err = corpus.Load(cfg.Corpus.Path)
		if err != nil {
			return err
		}
		s, err := snapshot.Load(snapPath)
		if err != nil {
			return err
		}
		logger.Info("evaluating snapshot", zap.String("run_id", s.RunID), zap.String("path", snapPath))
		g = s.Graph()
	} else {
		p, err := runPipeline(cmd)
		if err != nil {
			return err
		}
		c, g = p.corpus, p.graph
	}

	report := evaluate.Evaluate(g, evaluate.GroundTruth(c.People), cfg.Evaluation.Mode)
	if report.Error != "" {
		return fmt.Errorf("evaluation failed: %s", report.Error)
	}
	if report.Empty {
		logger.Warn("evaluated an empty graph")
	}

	report = roundReport(report, cfg.Report.Precision)

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	renderEvaluation(os.Stdout, report, cfg.Report.Precision)
	return nil
}

func init() {
	evaluateCmd.Flags().String("mode", string(types.ModeDetailed), "evaluation mode: detailed or aggregated")
	evaluateCmd.Flags().Int("precision", 3, "decimal digits shown for metrics")
	evaluateCmd.Flags().String("snapshot", "", "evaluate a saved graph snapshot instead of rebuilding")
	evaluateCmd.Flags().Bool("json", false, "output the report as JSON")

	_ = viper.BindPFlag("evaluation.mode", evaluateCmd.Flags().Lookup("mode"))
	_ = viper.BindPFlag("report.precision", evaluateCmd.Flags().Lookup("precision"))

	rootCmd.AddCommand(evaluateCmd)
}
