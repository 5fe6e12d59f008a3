// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog records parse runs in a local SQLite database so repeat
// digitization batches can be compared and audited.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/meshintel/manual-parser/pkg/types"
)

const dbFile = "catalog.db"

// Run is one recorded parse of a manual.
type Run struct {
	RowID      int64
	ManualID   string
	Key        string
	SourcePDF  string
	OutputPath string
	Version    string
	ParsedAt   time.Time
	Themes     int
	Criteria   int
	Tasks      int
}

// Store manages the parse-run catalog database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// NewStore opens or creates the catalog database at
// catalogDir/catalog.db, creating the schema if needed.
func NewStore(cfg types.CatalogConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.CatalogDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating catalog directory: %w", err)
	}

	dbPath := filepath.Join(cfg.CatalogDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening catalog database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating catalog schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			manual_id TEXT NOT NULL,
			manual_key TEXT NOT NULL,
			source_pdf TEXT NOT NULL,
			output_path TEXT NOT NULL,
			version TEXT NOT NULL,
			parsed_at TEXT NOT NULL,
			themes INTEGER NOT NULL,
			criteria INTEGER NOT NULL,
			tasks INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_manual_key ON runs(manual_key)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record inserts one parse run.
func (s *Store) Record(ctx context.Context, run Run) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (manual_id, manual_key, source_pdf, output_path, version, parsed_at, themes, criteria, tasks)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ManualID, run.Key, run.SourcePDF, run.OutputPath, run.Version,
		run.ParsedAt.UTC().Format(time.RFC3339), run.Themes, run.Criteria, run.Tasks)
	if err != nil {
		return fmt.Errorf("recording run for %s: %w", run.Key, err)
	}
	return nil
}

// List returns the most recent runs, newest first.
func (s *Store) List(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT rowid, manual_id, manual_key, source_pdf, output_path, version, parsed_at, themes, criteria, tasks
		 FROM runs ORDER BY parsed_at DESC, rowid DESC LIMIT ?`, s.maxResults)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()
	return scanRuns(rows)
}

// Show returns the latest run for a manual key, or nil when the manual
// has never been parsed.
func (s *Store) Show(ctx context.Context, key string) (*Run, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT rowid, manual_id, manual_key, source_pdf, output_path, version, parsed_at, themes, criteria, tasks
		 FROM runs WHERE manual_key = ? ORDER BY parsed_at DESC, rowid DESC LIMIT 1`, key)
	if err != nil {
		return nil, fmt.Errorf("querying runs for %s: %w", key, err)
	}
	defer rows.Close()

	runs, err := scanRuns(rows)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[0], nil
}

func scanRuns(rows *sql.Rows) ([]Run, error) {
	var runs []Run
	for rows.Next() {
		var r Run
		var parsedAt string
		if err := rows.Scan(&r.RowID, &r.ManualID, &r.Key, &r.SourcePDF, &r.OutputPath,
			&r.Version, &parsedAt, &r.Themes, &r.Criteria, &r.Tasks); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		t, err := time.Parse(time.RFC3339, parsedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing run timestamp %q: %w", parsedAt, err)
		}
		r.ParsedAt = t
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
