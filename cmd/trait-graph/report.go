// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pdiddy/trait-graph/internal/graph"
	"github.com/pdiddy/trait-graph/pkg/types"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A"))
	labelStyle = lipgloss.NewStyle().Width(24)
	headStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#9E9E9E"))
)

// round rounds v half away from zero to digits decimal places.
func round(v float64, digits int) float64 {
	p := math.Pow(10, float64(digits))
	return math.Round(v*p) / p
}

func roundMetrics(m types.Metrics, digits int) types.Metrics {
	return types.Metrics{
		Precision: round(m.Precision, digits),
		Recall:    round(m.Recall, digits),
		F1:        round(m.F1, digits),
	}
}

// roundReport returns a copy of r with every metric rounded for display.
func roundReport(r types.EvaluationReport, digits int) types.EvaluationReport {
	people := make([]types.PersonResult, len(r.People))
	for i, p := range r.People {
		p.Metrics = roundMetrics(p.Metrics, digits)
		people[i] = p
	}
	r.People = people
	if r.MacroAverage != nil {
		m := roundMetrics(*r.MacroAverage, digits)
		r.MacroAverage = &m
	}
	if r.Aggregated != nil {
		a := *r.Aggregated
		a.Metrics = roundMetrics(a.Metrics, digits)
		r.Aggregated = &a
	}
	return r
}

func row(w io.Writer, label string, value any) {
	fmt.Fprintf(w, "  %s %v\n", labelStyle.Render(label), value)
}

func renderStats(w io.Writer, s graph.Stats) {
	fmt.Fprintln(w, titleStyle.Render("Graph"))
	row(w, "Entities", s.Nodes)
	row(w, "Relationships", s.Edges)
	row(w, "Entity types", s.EntityTypes)
	row(w, "Relationship types", s.RelationshipTypes)
	fmt.Fprintln(w)
}

func renderSummary(w io.Writer, s graph.Summary) {
	fmt.Fprintln(w, titleStyle.Render("Entity breakdown"))
	for _, tc := range s.Entities {
		row(w, tc.Type, tc.Count)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, titleStyle.Render("Relationship types"))
	if len(s.Relationships) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("  none"))
	}
	for _, tc := range s.Relationships {
		row(w, tc.Type, tc.Count)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, titleStyle.Render("Personality analysis"))
	if len(s.Personality) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("  no traits extracted"))
	}
	for _, pt := range s.Personality {
		row(w, pt.Person, strings.Join(pt.Traits, ", "))
	}
}

func renderQuality(w io.Writer, q graph.Quality, digits int) {
	renderStats(w, q.Stats)
	f := "%." + fmt.Sprint(digits) + "f"
	fmt.Fprintln(w, titleStyle.Render("Quality"))
	row(w, "Person coverage", fmt.Sprintf(f, q.PersonCoverage))
	row(w, "Trait assignment rate", fmt.Sprintf(f, q.TraitAssignmentRate))
	row(w, "Relationship density", fmt.Sprintf(f, q.Density))
	row(w, "Traits extracted", q.TraitsExtracted)
	row(w, "People with traits", q.PeopleWithTraits)
}

func renderEvaluation(w io.Writer, r types.EvaluationReport, digits int) {
	f := "%." + fmt.Sprint(digits) + "f"
	metric := func(v float64) string { return fmt.Sprintf(f, v) }

	fmt.Fprintln(w, titleStyle.Render("Trait evaluation ("+string(r.Mode)+")"))
	if r.Empty {
		fmt.Fprintln(w, mutedStyle.Render("  graph is empty; every person scores zero"))
	}

	switch r.Mode {
	case types.ModeAggregated:
		if r.Aggregated == nil {
			return
		}
		a := r.Aggregated
		row(w, "True positives", a.TP)
		row(w, "False positives", a.FP)
		row(w, "False negatives", a.FN)
		row(w, "Precision", metric(a.Precision))
		row(w, "Recall", metric(a.Recall))
		row(w, "F1", metric(a.F1))

	default:
		fmt.Fprintln(w, headStyle.Render(fmt.Sprintf("  %-20s  %3s  %3s  %3s  %9s  %9s  %9s",
			"Person", "TP", "FP", "FN", "Precision", "Recall", "F1")))
		fmt.Fprintln(w, "  "+strings.Repeat("-", 68))
		for _, p := range r.People {
			name := p.Person
			if len(name) > 20 {
				name = name[:17] + "..."
			}
			fmt.Fprintf(w, "  %-20s  %3d  %3d  %3d  %9s  %9s  %9s\n",
				name, p.TP, p.FP, p.FN, metric(p.Precision), metric(p.Recall), metric(p.F1))
		}
		if r.MacroAverage != nil {
			m := r.MacroAverage
			fmt.Fprintln(w, "  "+strings.Repeat("-", 68))
			fmt.Fprintf(w, "  %-20s  %3s  %3s  %3s  %9s  %9s  %9s\n",
				"Macro average", "", "", "", metric(m.Precision), metric(m.Recall), metric(m.F1))
		}
	}
}
