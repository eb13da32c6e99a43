// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// EvaluationMode selects how per-person trait scores are reduced.
type EvaluationMode string

const (
	// ModeDetailed reports every person plus the macro average.
	ModeDetailed EvaluationMode = "detailed"

	// ModeAggregated pools counts across people before computing metrics.
	ModeAggregated EvaluationMode = "aggregated"
)

// Counts holds true-positive, false-positive, and false-negative tallies.
type Counts struct {
	TP int `json:"tp" yaml:"tp"`
	FP int `json:"fp" yaml:"fp"`
	FN int `json:"fn" yaml:"fn"`
}

// Add returns the element-wise sum of c and o.
func (c Counts) Add(o Counts) Counts {
	return Counts{TP: c.TP + o.TP, FP: c.FP + o.FP, FN: c.FN + o.FN}
}

// Metrics holds precision, recall, and F1, each in [0, 1].
type Metrics struct {
	Precision float64 `json:"precision" yaml:"precision"`
	Recall    float64 `json:"recall" yaml:"recall"`
	F1        float64 `json:"f1" yaml:"f1"`
}

// PersonResult is the trait evaluation for one ground-truth person.
type PersonResult struct {
	Person string `json:"person" yaml:"person"`
	Counts `yaml:",inline"`
	Metrics `yaml:",inline"`

	// Expected and Predicted are sorted trait node identifiers.
	Expected  []string `json:"ground_truth" yaml:"ground_truth"`
	Predicted []string `json:"predicted" yaml:"predicted"`
}

// Aggregate is the micro-averaged result over all people.
type Aggregate struct {
	Counts  `yaml:",inline"`
	Metrics `yaml:",inline"`
}

// EvaluationReport is the output of one evaluation call.
type EvaluationReport struct {
	Mode EvaluationMode `json:"mode" yaml:"mode"`

	// People holds one result per ground-truth person, in registry order.
	People []PersonResult `json:"people,omitempty" yaml:"people,omitempty"`

	// MacroAverage is set in detailed mode when People is non-empty.
	MacroAverage *Metrics `json:"macro_avg,omitempty" yaml:"macro_avg,omitempty"`

	// Aggregated is set in aggregated mode.
	Aggregated *Aggregate `json:"aggregated,omitempty" yaml:"aggregated,omitempty"`

	// Empty is true when the evaluated graph had no nodes.
	Empty bool `json:"empty,omitempty" yaml:"empty,omitempty"`

	// Error records why no evaluation was possible. Empty on success.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}
