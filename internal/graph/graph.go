// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package graph holds the in-memory entity/trait graph and the Builder that
// folds extraction records into it.
package graph

import (
	"sort"

	"github.com/pdiddy/trait-graph/pkg/types"
)

// Node is a graph vertex. ID is the surface name for people, organizations,
// and locations, and trait_<category> for trait nodes.
type Node struct {
	ID    string         `json:"id" yaml:"id"`
	Type  types.NodeType `json:"type" yaml:"type"`
	Label string         `json:"label" yaml:"label"`
}

// Edge connects two nodes. Edges are undirected: From/To record the
// orientation of the most recent write. Confidence is set only on
// has_trait edges.
type Edge struct {
	From       string           `json:"from" yaml:"from"`
	To         string           `json:"to" yaml:"to"`
	Type       types.EdgeType   `json:"type" yaml:"type"`
	Confidence types.Confidence `json:"confidence,omitempty" yaml:"confidence,omitempty"`
}

// pair is the unordered endpoint key of an edge, with a <= b.
type pair struct{ a, b string }

func makePair(u, v string) pair {
	if v < u {
		u, v = v, u
	}
	return pair{u, v}
}

// Graph is an undirected graph with at most one edge per node pair. It only
// grows: there are no removal operations. A Graph is not safe for concurrent
// mutation.
type Graph struct {
	nodes     map[string]*Node
	nodeOrder []string
	edges     map[pair]*Edge
	edgeOrder []pair
	adj       map[string]map[string]struct{}
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[string]*Node),
		edges: make(map[pair]*Edge),
		adj:   make(map[string]map[string]struct{}),
	}
}

// AddNode inserts a node and reports whether it was new. Re-adding an
// existing id never overwrites a Type or Label that is already set.
func (g *Graph) AddNode(id string, typ types.NodeType, label string) bool {
	if n, ok := g.nodes[id]; ok {
		if n.Type == "" {
			n.Type = typ
		}
		if n.Label == "" {
			n.Label = label
		}
		return false
	}
	g.nodes[id] = &Node{ID: id, Type: typ, Label: label}
	g.nodeOrder = append(g.nodeOrder, id)
	g.adj[id] = make(map[string]struct{})
	return true
}

// AddEdge inserts or updates the edge between e.From and e.To. It returns
// false, leaving the graph untouched, when either endpoint is not already a
// node or both endpoints are the same. Writing an existing pair replaces its
// attributes, so the last write wins.
func (g *Graph) AddEdge(e Edge) bool {
	if e.From == e.To || !g.HasNode(e.From) || !g.HasNode(e.To) {
		return false
	}
	k := makePair(e.From, e.To)
	if _, ok := g.edges[k]; !ok {
		g.edgeOrder = append(g.edgeOrder, k)
	}
	edge := e
	g.edges[k] = &edge
	g.adj[e.From][e.To] = struct{}{}
	g.adj[e.To][e.From] = struct{}{}
	return true
}

// HasNode reports whether id is a node.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Node returns a copy of the node with the given id.
func (g *Graph) Node(id string) (Node, bool) {
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, false
	}
	return *n, true
}

// Edge returns a copy of the edge between u and v in either orientation.
func (g *Graph) Edge(u, v string) (Edge, bool) {
	e, ok := g.edges[makePair(u, v)]
	if !ok {
		return Edge{}, false
	}
	return *e, true
}

// Neighbors returns the ids adjacent to id, sorted. Unknown ids have none.
func (g *Graph) Neighbors(id string) []string {
	adj := g.adj[id]
	out := make([]string, 0, len(adj))
	for n := range adj {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// NeighborsOfType returns the neighbors of id whose node type is typ, sorted.
func (g *Graph) NeighborsOfType(id string, typ types.NodeType) []string {
	var out []string
	for _, n := range g.Neighbors(id) {
		if g.nodes[n].Type == typ {
			out = append(out, n)
		}
	}
	return out
}

// Nodes returns copies of all nodes in insertion order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodeOrder))
	for i, id := range g.nodeOrder {
		out[i] = *g.nodes[id]
	}
	return out
}

// NodesOfType returns copies of the nodes of one type in insertion order.
func (g *Graph) NodesOfType(typ types.NodeType) []Node {
	var out []Node
	for _, id := range g.nodeOrder {
		if n := g.nodes[id]; n.Type == typ {
			out = append(out, *n)
		}
	}
	return out
}

// Edges returns copies of all edges in first-insertion order.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edgeOrder))
	for i, k := range g.edgeOrder {
		out[i] = *g.edges[k]
	}
	return out
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}
