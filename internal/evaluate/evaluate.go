// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package evaluate scores the trait nodes attached to each person in a graph
// against a ground-truth trait table.
//
// One pure function, Score, produces per-person TP/FP/FN. Two independent
// reducers sit on top of it: MacroAverage (mean of per-person ratios, used
// by detailed mode) and MicroAverage (ratios of pooled counts, used by
// aggregated mode).
package evaluate

import (
	"errors"
	"sort"

	"github.com/pdiddy/trait-graph/internal/graph"
	"github.com/pdiddy/trait-graph/internal/traits"
	"github.com/pdiddy/trait-graph/pkg/types"
)

// ErrNoGraph is reported when evaluation is asked to score a nil graph.
var ErrNoGraph = errors.New("no graph to evaluate")

// Truth is one person's expected trait node identifiers.
type Truth struct {
	Person string
	Traits []string
}

// GroundTruth derives the expected trait sets from the registry people.
// Only categories at medium or high level are expected; people without a
// trait table are not ground-truth people.
func GroundTruth(people []types.KnownEntity) []Truth {
	var out []Truth
	for _, p := range people {
		if !p.HasProfile() {
			continue
		}
		t := Truth{Person: p.Name, Traits: []string{}}
		for c, lvl := range p.Traits {
			cat, ok := traits.Canonical(string(c))
			if !ok || !lvl.Expressed() {
				continue
			}
			t.Traits = append(t.Traits, traits.NodeID(cat))
		}
		sort.Strings(t.Traits)
		t.Traits = dedupe(t.Traits)
		out = append(out, t)
	}
	return out
}

// Predicted returns the sorted trait node neighbors of person. A person with
// no node has no predictions.
func Predicted(g *graph.Graph, person string) []string {
	if g == nil || !g.HasNode(person) {
		return []string{}
	}
	out := g.NeighborsOfType(person, types.NodeTrait)
	if out == nil {
		out = []string{}
	}
	return out
}

// Score computes one result per ground-truth person, in truth order.
func Score(g *graph.Graph, truth []Truth) []types.PersonResult {
	results := make([]types.PersonResult, 0, len(truth))
	for _, t := range truth {
		expected := append([]string{}, t.Traits...)
		predicted := Predicted(g, t.Person)
		c := compare(expected, predicted)
		results = append(results, types.PersonResult{
			Person:    t.Person,
			Counts:    c,
			Metrics:   Compute(c),
			Expected:  expected,
			Predicted: predicted,
		})
	}
	return results
}

// Compute derives precision, recall, and F1 from counts. Each ratio is 0
// when its denominator is 0.
func Compute(c types.Counts) types.Metrics {
	var m types.Metrics
	if d := c.TP + c.FP; d > 0 {
		m.Precision = float64(c.TP) / float64(d)
	}
	if d := c.TP + c.FN; d > 0 {
		m.Recall = float64(c.TP) / float64(d)
	}
	if s := m.Precision + m.Recall; s > 0 {
		m.F1 = 2 * m.Precision * m.Recall / s
	}
	return m
}

// MacroAverage is the unweighted mean of each metric across results. It
// returns zero metrics for no results.
func MacroAverage(results []types.PersonResult) types.Metrics {
	if len(results) == 0 {
		return types.Metrics{}
	}
	var sum types.Metrics
	for _, r := range results {
		sum.Precision += r.Precision
		sum.Recall += r.Recall
		sum.F1 += r.F1
	}
	n := float64(len(results))
	return types.Metrics{
		Precision: sum.Precision / n,
		Recall:    sum.Recall / n,
		F1:        sum.F1 / n,
	}
}

// MicroAverage pools counts across results, then computes the metrics once.
func MicroAverage(results []types.PersonResult) types.Aggregate {
	var total types.Counts
	for _, r := range results {
		total = total.Add(r.Counts)
	}
	return types.Aggregate{Counts: total, Metrics: Compute(total)}
}

// Evaluate runs one evaluation in the given mode. A nil graph yields a
// report carrying ErrNoGraph and no results; a graph with no nodes is
// scored normally (every person all zero) and flagged Empty. Unknown modes
// are treated as detailed.
func Evaluate(g *graph.Graph, truth []Truth, mode types.EvaluationMode) types.EvaluationReport {
	if mode != types.ModeAggregated {
		mode = types.ModeDetailed
	}
	report := types.EvaluationReport{Mode: mode}
	if g == nil {
		report.Error = ErrNoGraph.Error()
		return report
	}
	report.Empty = g.NodeCount() == 0
	report.People = Score(g, truth)

	switch mode {
	case types.ModeAggregated:
		agg := MicroAverage(report.People)
		report.Aggregated = &agg
	default:
		if len(report.People) > 0 {
			macro := MacroAverage(report.People)
			report.MacroAverage = &macro
		}
	}
	return report
}

// Detailed is Evaluate in detailed mode.
func Detailed(g *graph.Graph, truth []Truth) types.EvaluationReport {
	return Evaluate(g, truth, types.ModeDetailed)
}

// Aggregated is Evaluate in aggregated mode.
func Aggregated(g *graph.Graph, truth []Truth) types.EvaluationReport {
	return Evaluate(g, truth, types.ModeAggregated)
}

// compare counts the overlap between two sorted, duplicate-free id lists.
func compare(expected, predicted []string) types.Counts {
	want := make(map[string]bool, len(expected))
	for _, id := range expected {
		want[id] = true
	}
	var c types.Counts
	for _, id := range predicted {
		if want[id] {
			c.TP++
			delete(want, id)
		} else {
			c.FP++
		}
	}
	c.FN = len(want)
	return c
}

func dedupe(sorted []string) []string {
	out := sorted[:0]
	for i, s := range sorted {
		if i == 0 || s != sorted[i-1] {
			out = append(out, s)
		}
	}
	return out
}
