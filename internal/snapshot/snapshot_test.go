// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package snapshot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/trait-graph/internal/graph"
	"github.com/pdiddy/trait-graph/pkg/types"
)

// --- test helpers ---

func sampleGraph() *graph.Graph {
	g := graph.New()
	g.AddNode("Sarah Chen", types.NodePerson, "Sarah Chen")
	g.AddNode("TechInnovate Inc", types.NodeOrganization, "TechInnovate Inc")
	g.AddNode("trait_conscientiousness", types.NodeTrait, "Conscientiousness")
	g.AddNode("San Francisco", types.NodeLocation, "San Francisco")
	g.AddEdge(graph.Edge{From: "Sarah Chen", To: "trait_conscientiousness", Type: types.EdgeHasTrait, Confidence: types.ConfidenceHigh})
	g.AddEdge(graph.Edge{From: "Sarah Chen", To: "TechInnovate Inc", Type: types.EdgeWorksAt})
	return g
}

func assertSameGraph(t *testing.T, want, got *graph.Graph) {
	t.Helper()
	assert.Equal(t, want.Nodes(), got.Nodes())
	assert.Equal(t, want.Edges(), got.Edges())
	assert.Equal(t, want.Stats(), got.Stats())
}

// --- New ---

func TestNew(t *testing.T) {
	g := sampleGraph()
	s := New(g)

	_, err := uuid.Parse(s.RunID)
	assert.NoError(t, err)
	assert.False(t, s.CreatedAt.IsZero())
	assert.Len(t, s.Nodes, 4)
	assert.Len(t, s.Edges, 2)
	assert.Equal(t, graph.Stats{Nodes: 4, Edges: 2, EntityTypes: 4, RelationshipTypes: 2}, s.Stats)

	other := New(g)
	assert.NotEqual(t, s.RunID, other.RunID)
}

func TestNewDoesNotAliasGraph(t *testing.T) {
	g := sampleGraph()
	s := New(g)
	g.AddNode("Alex Kim", types.NodePerson, "Alex Kim")

	assert.Len(t, s.Nodes, 4)
	assert.False(t, s.Graph().HasNode("Alex Kim"))
}

func TestGraphRoundTrip(t *testing.T) {
	g := sampleGraph()
	assertSameGraph(t, g, New(g).Graph())
}

// --- file formats ---

func TestWriteFormats(t *testing.T) {
	tests := []struct {
		format types.ExportFormat
		file   string
	}{
		{types.ExportYAML, "trait-graph.yaml"},
		{types.ExportJSON, "trait-graph.json"},
		{types.ExportSQLite, "trait-graph.db"},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			dir := filepath.Join(t.TempDir(), "out")
			g := sampleGraph()
			s := New(g)

			path, err := s.Write(dir, tt.format)
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(dir, tt.file), path)

			loaded, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, s.RunID, loaded.RunID)
			assert.True(t, s.CreatedAt.Equal(loaded.CreatedAt))
			assert.Equal(t, s.Stats, loaded.Stats)
			assertSameGraph(t, g, loaded.Graph())
		})
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	_, err := New(sampleGraph()).Write(t.TempDir(), "csv")
	assert.Error(t, err)
}

func TestWriteSQLiteReplacesExisting(t *testing.T) {
	dir := t.TempDir()

	first := New(sampleGraph())
	_, err := first.Write(dir, types.ExportSQLite)
	require.NoError(t, err)

	g := graph.New()
	g.AddNode("Alex Kim", types.NodePerson, "Alex Kim")
	second := New(g)
	path, err := second.Write(dir, types.ExportSQLite)
	require.NoError(t, err)

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, second.RunID, loaded.RunID)
	require.Len(t, loaded.Nodes, 1)
	assert.Equal(t, "Alex Kim", loaded.Nodes[0].ID)
	assert.Empty(t, loaded.Edges)
}

func TestEvaluationIsCarried(t *testing.T) {
	macro := types.Metrics{Precision: 1, Recall: 0.5, F1: 2.0 / 3.0}
	report := &types.EvaluationReport{
		Mode: types.ModeDetailed,
		People: []types.PersonResult{{
			Person:    "Sarah Chen",
			Counts:    types.Counts{TP: 1, FN: 1},
			Metrics:   macro,
			Expected:  []string{"trait_conscientiousness", "trait_openness"},
			Predicted: []string{"trait_conscientiousness"},
		}},
		MacroAverage: &macro,
	}

	for _, format := range []types.ExportFormat{types.ExportYAML, types.ExportJSON, types.ExportSQLite} {
		t.Run(string(format), func(t *testing.T) {
			s := New(sampleGraph())
			s.Evaluation = report

			path, err := s.Write(t.TempDir(), format)
			require.NoError(t, err)
			loaded, err := Load(path)
			require.NoError(t, err)
			require.NotNil(t, loaded.Evaluation)
			assert.Equal(t, report.People[0].Counts, loaded.Evaluation.People[0].Counts)
			assert.Equal(t, report.People[0].Predicted, loaded.Evaluation.People[0].Predicted)
			require.NotNil(t, loaded.Evaluation.MacroAverage)
			assert.InDelta(t, macro.F1, loaded.Evaluation.MacroAverage.F1, 1e-12)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)
}
