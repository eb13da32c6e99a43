// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/trait-graph/internal/corpus"
	"github.com/pdiddy/trait-graph/internal/extract"
	"github.com/pdiddy/trait-graph/internal/graph"
	"github.com/pdiddy/trait-graph/pkg/types"
)

// loadConfig merges defaults, the config file, environment, and flags into
// a validated pipeline configuration.
func loadConfig(cmd *cobra.Command) (types.PipelineConfig, error) {
	cfg := types.DefaultConfig()
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if noRel, _ := cmd.Flags().GetBool("no-relations"); noRel {
		cfg.Extraction.InferRelations = false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// pipeline holds the loaded corpus and the graph built from it.
type pipeline struct {
	cfg    types.PipelineConfig
	corpus *corpus.Corpus
	graph  *graph.Graph
}

// runPipeline loads the configured corpus and builds its graph.
func runPipeline(cmd *cobra.Command) (*pipeline, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	c, err := corpus.Load(cfg.Corpus.Path)
	if err != nil {
		return nil, err
	}
	logger.Debug("corpus loaded",
		zap.String("path", cfg.Corpus.Path),
		zap.Int("people", len(c.People)),
		zap.Int("texts", len(c.Texts)))

	ex := extract.New(&c.Registry, extract.WithRelations(cfg.Extraction.InferRelations))
	g := graph.NewBuilder(ex, graph.WithLogger(logger)).Build(c.Texts)

	return &pipeline{cfg: cfg, corpus: c, graph: g}, nil
}
