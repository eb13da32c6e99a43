// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package graph

import (
	"errors"

	"github.com/pdiddy/trait-graph/pkg/types"
)

// ErrEmptyGraph is returned by Quality for a graph with no nodes.
var ErrEmptyGraph = errors.New("graph is empty")

// Stats holds the graph-size counters shown in reports.
type Stats struct {
	Nodes             int `json:"total_entities" yaml:"total_entities"`
	Edges             int `json:"total_relationships" yaml:"total_relationships"`
	EntityTypes       int `json:"entity_types" yaml:"entity_types"`
	RelationshipTypes int `json:"relationship_types" yaml:"relationship_types"`
}

// Stats counts nodes, edges, and the distinct node and edge types present.
func (g *Graph) Stats() Stats {
	nodeTypes := make(map[types.NodeType]struct{})
	for _, n := range g.nodes {
		nodeTypes[n.Type] = struct{}{}
	}
	edgeTypes := make(map[types.EdgeType]struct{})
	for _, e := range g.edges {
		if e.Type != "" {
			edgeTypes[e.Type] = struct{}{}
		}
	}
	return Stats{
		Nodes:             g.NodeCount(),
		Edges:             g.EdgeCount(),
		EntityTypes:       len(nodeTypes),
		RelationshipTypes: len(edgeTypes),
	}
}

// Quality holds coverage and density measures of a built graph.
type Quality struct {
	Stats `yaml:",inline"`

	// PersonCoverage is person nodes over known people.
	PersonCoverage float64 `json:"person_coverage" yaml:"person_coverage"`

	// TraitAssignmentRate is people with at least one trait over person nodes.
	TraitAssignmentRate float64 `json:"trait_assignment_rate" yaml:"trait_assignment_rate"`

	// Density is 2E / N(N-1).
	Density float64 `json:"relationship_density" yaml:"relationship_density"`

	TraitsExtracted  int `json:"traits_extracted" yaml:"traits_extracted"`
	PeopleWithTraits int `json:"people_with_traits" yaml:"people_with_traits"`
}

// Quality computes coverage measures against knownPeople, the number of
// people in the registry. It returns ErrEmptyGraph when g has no nodes.
func (g *Graph) Quality(knownPeople int) (Quality, error) {
	if g.NodeCount() == 0 {
		return Quality{}, ErrEmptyGraph
	}

	q := Quality{Stats: g.Stats()}

	people := g.NodesOfType(types.NodePerson)
	for _, p := range people {
		if len(g.NeighborsOfType(p.ID, types.NodeTrait)) > 0 {
			q.PeopleWithTraits++
		}
	}
	q.TraitsExtracted = len(g.NodesOfType(types.NodeTrait))

	if knownPeople > 0 {
		q.PersonCoverage = float64(len(people)) / float64(knownPeople)
	}
	if len(people) > 0 {
		q.TraitAssignmentRate = float64(q.PeopleWithTraits) / float64(len(people))
	}
	if n := g.NodeCount(); n > 1 {
		q.Density = 2 * float64(g.EdgeCount()) / float64(n*(n-1))
	}
	return q, nil
}

// TypeCount pairs a node or edge type with how often it occurs.
type TypeCount struct {
	Type  string `json:"type" yaml:"type"`
	Count int    `json:"count" yaml:"count"`
}

// PersonTraits lists the trait labels attached to one person.
type PersonTraits struct {
	Person string   `json:"person" yaml:"person"`
	Traits []string `json:"traits" yaml:"traits"`
}

// Summary is the breakdown used by the text rendering of a graph.
type Summary struct {
	Entities      []TypeCount    `json:"entities" yaml:"entities"`
	Relationships []TypeCount    `json:"relationships" yaml:"relationships"`
	Personality   []PersonTraits `json:"personality" yaml:"personality"`
}

// Summarize counts nodes per type and edges per type, each in order of first
// appearance, and lists the trait labels of every person that has any.
func (g *Graph) Summarize() Summary {
	var s Summary

	nodeIdx := make(map[string]int)
	for _, id := range g.nodeOrder {
		t := string(g.nodes[id].Type)
		if t == "" {
			t = "unknown"
		}
		s.Entities = countInto(s.Entities, nodeIdx, t)
	}

	edgeIdx := make(map[string]int)
	for _, k := range g.edgeOrder {
		t := string(g.edges[k].Type)
		if t == "" {
			t = "unknown"
		}
		s.Relationships = countInto(s.Relationships, edgeIdx, t)
	}

	for _, p := range g.NodesOfType(types.NodePerson) {
		var labels []string
		for _, id := range g.NeighborsOfType(p.ID, types.NodeTrait) {
			labels = append(labels, g.nodes[id].Label)
		}
		if len(labels) > 0 {
			s.Personality = append(s.Personality, PersonTraits{Person: p.ID, Traits: labels})
		}
	}
	return s
}

func countInto(counts []TypeCount, idx map[string]int, t string) []TypeCount {
	if i, ok := idx[t]; ok {
		counts[i].Count++
		return counts
	}
	idx[t] = len(counts)
	return append(counts, TypeCount{Type: t, Count: 1})
}
