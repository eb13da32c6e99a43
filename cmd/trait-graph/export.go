// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/trait-graph/internal/evaluate"
	"github.com/pdiddy/trait-graph/internal/snapshot"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write a graph snapshot to YAML, JSON, or SQLite",
	Long: `Export builds the graph and writes its nodes, edges, and size counters
to output-dir/trait-graph.{yaml,json,db}. Snapshots can be evaluated later
with evaluate --snapshot. With --evaluate the evaluation report for the
configured mode is stored alongside the graph.`,
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	p, err := runPipeline(cmd)
	if err != nil {
		return err
	}

	s := snapshot.New(p.graph)
	if withEval, _ := cmd.Flags().GetBool("evaluate"); withEval {
		report := evaluate.Evaluate(p.graph, evaluate.GroundTruth(p.corpus.People), p.cfg.Evaluation.Mode)
		s.Evaluation = &report
	}

	path, err := s.Write(p.cfg.Export.OutputDir, p.cfg.Export.Format)
	if err != nil {
		return err
	}
	logger.Info("snapshot written",
		zap.String("run_id", s.RunID),
		zap.String("path", path),
		zap.Int("nodes", len(s.Nodes)),
		zap.Int("edges", len(s.Edges)))
	fmt.Printf("Exported to %s\n", path)
	return nil
}

func init() {
	exportCmd.Flags().String("format", "yaml", "export format: yaml, json, or sqlite")
	exportCmd.Flags().String("output-dir", "output", "directory for snapshot files")
	exportCmd.Flags().Bool("evaluate", false, "store the evaluation report in the snapshot")

	_ = viper.BindPFlag("export.format", exportCmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("export.output_dir", exportCmd.Flags().Lookup("output-dir"))

	rootCmd.AddCommand(exportCmd)
}
