// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package snapshot writes a built graph to disk for downstream tools and
// reads it back. A snapshot is a flat copy of the nodes and edges plus
// the run metadata; writing one never touches the source graph.
package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/trait-graph/internal/graph"
	"github.com/pdiddy/trait-graph/pkg/types"
)

const baseName = "trait-graph"

// Snapshot is the serialized form of one graph build.
type Snapshot struct {
	RunID     string       `json:"run_id" yaml:"run_id"`
	CreatedAt time.Time    `json:"created_at" yaml:"created_at"`
	Stats     graph.Stats  `json:"stats" yaml:"stats"`
	Nodes     []graph.Node `json:"nodes" yaml:"nodes"`
	Edges     []graph.Edge `json:"edges" yaml:"edges"`

	// Evaluation is attached by callers that scored the graph before export.
	Evaluation *types.EvaluationReport `json:"evaluation,omitempty" yaml:"evaluation,omitempty"`
}

// New copies g into a snapshot with a fresh run id.
func New(g *graph.Graph) *Snapshot {
	return &Snapshot{
		RunID:     uuid.New().String(),
		CreatedAt: time.Now().UTC(),
		Stats:     g.Stats(),
		Nodes:     g.Nodes(),
		Edges:     g.Edges(),
	}
}

// Graph rebuilds an in-memory graph from the snapshot. Nodes are inserted
// before edges, in their stored order.
func (s *Snapshot) Graph() *graph.Graph {
	g := graph.New()
	for _, n := range s.Nodes {
		g.AddNode(n.ID, n.Type, n.Label)
	}
	for _, e := range s.Edges {
		g.AddEdge(e)
	}
	return g
}

// WriteYAML saves the snapshot as YAML at path.
func (s *Snapshot) WriteYAML(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// WriteJSON saves the snapshot as indented JSON at path.
func (s *Snapshot) WriteJSON(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Write saves the snapshot into dir in the given format and returns the
// path written. dir is created if missing.
func (s *Snapshot) Write(dir string, format types.ExportFormat) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	path := filepath.Join(dir, baseName+"."+extension(format))

	var err error
	switch format {
	case types.ExportYAML:
		err = s.WriteYAML(path)
	case types.ExportJSON:
		err = s.WriteJSON(path)
	case types.ExportSQLite:
		// SQLite snapshots replace any earlier file rather than merging into it.
		if rmErr := os.Remove(path); rmErr != nil && !os.IsNotExist(rmErr) {
			return "", fmt.Errorf("removing old snapshot: %w", rmErr)
		}
		err = s.WriteSQLite(path)
	default:
		return "", fmt.Errorf("unknown export format %q", format)
	}
	if err != nil {
		return "", err
	}
	return path, nil
}

// Load reads a snapshot written by WriteYAML, WriteJSON, or WriteSQLite,
// choosing the decoder by file extension.
func Load(path string) (*Snapshot, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return ReadSQLite(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading snapshot %s: %w", path, err)
	}

	var s Snapshot
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &s)
	} else {
		err = yaml.Unmarshal(data, &s)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing snapshot %s: %w", path, err)
	}
	return &s, nil
}

func extension(f types.ExportFormat) string {
	switch f {
	case types.ExportSQLite:
		return "db"
	default:
		return string(f)
	}
}
