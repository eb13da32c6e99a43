// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the trait-graph CLI. It builds the
// entity/trait graph from a corpus, evaluates trait predictions against the
// registry's ground truth, and exports graph snapshots.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pdiddy/trait-graph/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is configured in PersistentPreRunE; it discards until then.
var logger = zap.NewNop()

// rootCmd is the base command for the trait-graph CLI.
var rootCmd = &cobra.Command{
	Use:   "trait-graph",
	Short: "Build and evaluate a personality-trait knowledge graph",
	Long: `trait-graph extracts people, organizations, locations, and Big Five
personality traits from a text corpus, assembles them into a graph, and
scores the extracted traits against the registry's trait profiles.

Each stage is a subcommand: build, evaluate, export, and summary. Without
--corpus the built-in corpus is used.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		l, err := newLogger(verbose)
		if err != nil {
			return fmt.Errorf("creating logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./trait-graph.yaml or ~/.config/trait-graph/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log per-text extraction details")
	rootCmd.PersistentFlags().String("corpus", "", "corpus YAML file (default: built-in corpus)")
	rootCmd.PersistentFlags().Bool("no-relations", false, "skip works_at and attended_event_at inference")

	_ = viper.BindPFlag("corpus.path", rootCmd.PersistentFlags().Lookup("corpus"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("trait-graph")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "trait-graph"))
		}
	}

	setDefaults(types.DefaultConfig())

	viper.SetEnvPrefix("TRAIT_GRAPH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setDefaults registers every config key so that environment overrides are
// seen by viper.Unmarshal.
func setDefaults(d types.PipelineConfig) {
	viper.SetDefault("corpus.path", d.Corpus.Path)
	viper.SetDefault("extraction.infer_relations", d.Extraction.InferRelations)
	viper.SetDefault("evaluation.mode", string(d.Evaluation.Mode))
	viper.SetDefault("export.output_dir", d.Export.OutputDir)
	viper.SetDefault("export.format", string(d.Export.Format))
	viper.SetDefault("report.precision", d.Report.Precision)
}

// newLogger returns a console logger on stderr. Debug level is enabled
// with verbose.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = true
	cfg.OutputPaths = []string{"stderr"}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	return cfg.Build()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
