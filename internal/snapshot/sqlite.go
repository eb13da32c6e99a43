// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package snapshot

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/trait-graph/internal/graph"
	"github.com/pdiddy/trait-graph/pkg/types"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS meta (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS nodes (
		seq INTEGER NOT NULL,
		id TEXT PRIMARY KEY,
		type TEXT NOT NULL,
		label TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS edges (
		seq INTEGER NOT NULL,
		from_id TEXT NOT NULL REFERENCES nodes(id),
		to_id TEXT NOT NULL REFERENCES nodes(id),
		type TEXT NOT NULL,
		confidence TEXT,
		PRIMARY KEY (from_id, to_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_nodes_type ON nodes(type)`,
	`CREATE INDEX IF NOT EXISTS idx_edges_type ON edges(type)`,
}

func openDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return db, nil
}

// WriteSQLite stores the snapshot in a SQLite database at path, in the
// tables meta, nodes, and edges.
func (s *Snapshot) WriteSQLite(path string) error {
	db, err := openDB(path)
	if err != nil {
		return err
	}
	defer db.Close()

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	meta := map[string]string{
		"run_id":     s.RunID,
		"created_at": s.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if s.Evaluation != nil {
		data, err := json.Marshal(s.Evaluation)
		if err != nil {
			return fmt.Errorf("marshaling evaluation: %w", err)
		}
		meta["evaluation"] = string(data)
	}
	for k, v := range meta {
		if _, err := tx.Exec(
			`INSERT INTO meta (key, value) VALUES (?, ?)
			 ON CONFLICT(key) DO UPDATE SET value=excluded.value`, k, v,
		); err != nil {
			return fmt.Errorf("writing meta %s: %w", k, err)
		}
	}

	nodeStmt, err := tx.Prepare(`INSERT OR REPLACE INTO nodes (seq, id, type, label) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing node insert: %w", err)
	}
	defer nodeStmt.Close()
	for i, n := range s.Nodes {
		if _, err := nodeStmt.Exec(i, n.ID, string(n.Type), n.Label); err != nil {
			return fmt.Errorf("inserting node %s: %w", n.ID, err)
		}
	}

	edgeStmt, err := tx.Prepare(`INSERT OR REPLACE INTO edges (seq, from_id, to_id, type, confidence) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing edge insert: %w", err)
	}
	defer edgeStmt.Close()
	for i, e := range s.Edges {
		if _, err := edgeStmt.Exec(i, e.From, e.To, string(e.Type), string(e.Confidence)); err != nil {
			return fmt.Errorf("inserting edge %s-%s: %w", e.From, e.To, err)
		}
	}

	return tx.Commit()
}

// ReadSQLite loads a snapshot written by WriteSQLite. Stats are recomputed
// from the stored nodes and edges.
func ReadSQLite(path string) (*Snapshot, error) {
	db, err := openDB(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var s Snapshot
	rows, err := db.Query(`SELECT key, value FROM meta`)
	if err != nil {
		return nil, fmt.Errorf("querying meta: %w", err)
	}
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning meta: %w", err)
		}
		switch k {
		case "run_id":
			s.RunID = v
		case "created_at":
			if t, err := time.Parse(time.RFC3339Nano, v); err == nil {
				s.CreatedAt = t
			}
		case "evaluation":
			var r types.EvaluationReport
			if err := json.Unmarshal([]byte(v), &r); err != nil {
				rows.Close()
				return nil, fmt.Errorf("parsing evaluation: %w", err)
			}
			s.Evaluation = &r
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading meta: %w", err)
	}

	s.Nodes, err = readNodes(db)
	if err != nil {
		return nil, err
	}
	s.Edges, err = readEdges(db)
	if err != nil {
		return nil, err
	}
	s.Stats = s.Graph().Stats()
	return &s, nil
}

func readNodes(db *sql.DB) ([]graph.Node, error) {
	rows, err := db.Query(`SELECT id, type, label FROM nodes ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("querying nodes: %w", err)
	}
	defer rows.Close()

	var out []graph.Node
	for rows.Next() {
		var n graph.Node
		var typ string
		var label sql.NullString
		if err := rows.Scan(&n.ID, &typ, &label); err != nil {
			return nil, fmt.Errorf("scanning node: %w", err)
		}
		n.Type = types.NodeType(typ)
		n.Label = label.String
		out = append(out, n)
	}
	return out, rows.Err()
}

func readEdges(db *sql.DB) ([]graph.Edge, error) {
	rows, err := db.Query(`SELECT from_id, to_id, type, confidence FROM edges ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("querying edges: %w", err)
	}
	defer rows.Close()

	var out []graph.Edge
	for rows.Next() {
		var e graph.Edge
		var typ string
		var conf sql.NullString
		if err := rows.Scan(&e.From, &e.To, &typ, &conf); err != nil {
			return nil, fmt.Errorf("scanning edge: %w", err)
		}
		e.Type = types.EdgeType(typ)
		e.Confidence = types.Confidence(conf.String)
		out = append(out, e)
	}
	return out, rows.Err()
}
