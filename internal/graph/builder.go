// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package graph

import (
	"go.uber.org/zap"

	"github.com/pdiddy/trait-graph/internal/extract"
	"github.com/pdiddy/trait-graph/internal/traits"
	"github.com/pdiddy/trait-graph/pkg/types"
)

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithLogger sets the logger used for build progress. The default discards.
func WithLogger(l *zap.Logger) BuilderOption {
	return func(b *Builder) {
		if l != nil {
			b.log = l
		}
	}
}

// Builder owns one cumulative graph and folds extraction records into it in
// the order they are applied.
type Builder struct {
	ex      *extract.Extractor
	g       *Graph
	log     *zap.Logger
	skipped int
}

// NewBuilder returns a Builder with an empty graph. ex is used by Build and
// may be nil when only Apply is called.
func NewBuilder(ex *extract.Extractor, opts ...BuilderOption) *Builder {
	b := &Builder{ex: ex, g: New(), log: zap.NewNop()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Graph returns the graph being built.
func (b *Builder) Graph() *Graph {
	return b.g
}

// Skipped returns how many edges were dropped because an endpoint was not a
// node when the edge was applied.
func (b *Builder) Skipped() int {
	return b.skipped
}

// Build extracts each text in order and applies the resulting records. It
// returns the cumulative graph; an empty text list leaves it empty.
func (b *Builder) Build(texts []string) *Graph {
	b.log.Info("building graph", zap.Int("texts", len(texts)))
	for i, text := range texts {
		rec := b.ex.Extract(text)
		b.log.Debug("processing text",
			zap.Int("index", i+1),
			zap.Int("people", len(rec.People)),
			zap.Int("traits", len(rec.Traits)),
			zap.Int("relations", len(rec.Relations)))
		b.Apply(rec)
	}
	b.log.Info("graph built",
		zap.Int("nodes", b.g.NodeCount()),
		zap.Int("edges", b.g.EdgeCount()),
		zap.Int("skipped_edges", b.skipped))
	return b.g
}

// Apply folds one record into the graph. All of the record's nodes are
// staged before any of its edges; an edge whose endpoint is still missing
// after that is skipped rather than creating the node.
func (b *Builder) Apply(rec types.ExtractionRecord) {
	for _, p := range rec.People {
		b.g.AddNode(p, types.NodePerson, p)
	}
	for _, o := range rec.Organizations {
		b.g.AddNode(o, types.NodeOrganization, o)
	}
	for _, l := range rec.Locations {
		b.g.AddNode(l, types.NodeLocation, l)
	}
	for _, m := range rec.Traits {
		if !traits.IsCategory(string(m.Category)) {
			continue
		}
		b.g.AddNode(traits.NodeID(m.Category), types.NodeTrait, traits.Label(m.Category))
	}

	for _, m := range rec.Traits {
		if !traits.IsCategory(string(m.Category)) {
			continue
		}
		id := traits.NodeID(m.Category)
		for _, person := range m.RelatedPeople {
			b.addEdge(Edge{From: person, To: id, Type: types.EdgeHasTrait, Confidence: m.Confidence})
		}
	}
	for _, r := range rec.Relations {
		b.addEdge(Edge{From: r.From, To: r.To, Type: r.Type})
	}
}

func (b *Builder) addEdge(e Edge) {
	if b.g.AddEdge(e) {
		return
	}
	b.skipped++
	b.log.Debug("skipping edge with missing endpoint",
		zap.String("from", e.From),
		zap.String("to", e.To),
		zap.String("type", string(e.Type)))
}
