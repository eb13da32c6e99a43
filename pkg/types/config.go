// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// CorpusConfig selects the input corpus.
type CorpusConfig struct {
	// Path is a YAML corpus file. Empty selects the built-in corpus.
	Path string `json:"path" mapstructure:"path" yaml:"path"`
}

// ExtractionConfig holds settings for the extraction stage.
type ExtractionConfig struct {
	// InferRelations enables works_at and attended_event_at inference (default true).
	InferRelations bool `json:"infer_relations" mapstructure:"infer_relations" yaml:"infer_relations"`
}

// EvaluationConfig holds settings for the trait evaluation stage.
type EvaluationConfig struct {
	// Mode is detailed or aggregated (default detailed).
	Mode EvaluationMode `json:"mode" mapstructure:"mode" yaml:"mode"`
}

// ExportFormat selects the graph snapshot file format.
type ExportFormat string

const (
	ExportYAML   ExportFormat = "yaml"
	ExportJSON   ExportFormat = "json"
	ExportSQLite ExportFormat = "sqlite"
)

// ExportConfig holds settings for graph snapshot export.
type ExportConfig struct {
	// OutputDir is the directory snapshot files are written to (default "output").
	OutputDir string `json:"output_dir" mapstructure:"output_dir" yaml:"output_dir"`

	// Format is yaml, json, or sqlite (default yaml).
	Format ExportFormat `json:"format" mapstructure:"format" yaml:"format"`
}

// ReportConfig controls how metrics are printed.
type ReportConfig struct {
	// Precision is the number of decimal digits shown for metrics (default 3).
	Precision int `json:"precision" mapstructure:"precision" yaml:"precision"`
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	Corpus     CorpusConfig     `json:"corpus" mapstructure:"corpus" yaml:"corpus"`
	Extraction ExtractionConfig `json:"extraction" mapstructure:"extraction" yaml:"extraction"`
	Evaluation EvaluationConfig `json:"evaluation" mapstructure:"evaluation" yaml:"evaluation"`
	Export     ExportConfig     `json:"export" mapstructure:"export" yaml:"export"`
	Report     ReportConfig     `json:"report" mapstructure:"report" yaml:"report"`
}

// DefaultConfig returns the pipeline configuration used when no config file
// or flag overrides a setting.
func DefaultConfig() PipelineConfig {
	return PipelineConfig{
		Extraction: ExtractionConfig{InferRelations: true},
		Evaluation: EvaluationConfig{Mode: ModeDetailed},
		Export:     ExportConfig{OutputDir: "output", Format: ExportYAML},
		Report:     ReportConfig{Precision: 3},
	}
}

// Validate checks enumerated settings.
func (c PipelineConfig) Validate() error {
	switch c.Evaluation.Mode {
	case ModeDetailed, ModeAggregated:
	default:
		return fmt.Errorf("unsupported evaluation mode %q: use detailed or aggregated", c.Evaluation.Mode)
	}
	switch c.Export.Format {
	case ExportYAML, ExportJSON, ExportSQLite:
	default:
		return fmt.Errorf("unsupported export format %q: use yaml, json, or sqlite", c.Export.Format)
	}
	if c.Report.Precision < 0 || c.Report.Precision > 10 {
		return fmt.Errorf("report precision %d out of range [0,10]", c.Report.Precision)
	}
	return nil
}
