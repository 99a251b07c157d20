// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists a record of completed extraction runs.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/tablegrab/pkg/types"
)

const dbFile = "history.db"

// Store manages the run-history SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// DefaultDBPath returns the history database location under the user data
// directory.
func DefaultDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "tablegrab", dbFile), nil
}

// Open opens or creates the history database and its schema. An empty path
// means the default location.
func Open(cfg types.HistoryConfig) (*Store, error) {
	path := cfg.DBPath
	if path == "" {
		var err error
		path, err = DefaultDBPath()
		if err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	stmt := `CREATE TABLE IF NOT EXISTS runs (
		rowid INTEGER PRIMARY KEY AUTOINCREMENT,
		source_url TEXT NOT NULL,
		pages TEXT NOT NULL,
		output_path TEXT NOT NULL,
		tables INTEGER NOT NULL,
		rows INTEGER NOT NULL,
		header_rows INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL,
		started_at TEXT NOT NULL
	)`
	if _, err := s.db.Exec(stmt); err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Record inserts one completed run.
func (s *Store) Record(run types.Run) error {
	_, err := s.db.Exec(
		`INSERT INTO runs (source_url, pages, output_path, tables, rows, header_rows, duration_ms, started_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.SourceURL, run.Pages, run.OutputPath, run.Tables, run.Rows,
		run.HeaderRows, run.Duration.Milliseconds(), run.StartedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording run: %w", err)
	}
	return nil
}

// Recent returns the latest runs, newest first. A non-positive limit uses
// the store's configured maximum.
func (s *Store) Recent(limit int) ([]types.Run, error) {
	if limit <= 0 {
		limit = s.maxResults
	}

	rows, err := s.db.Query(
		`SELECT source_url, pages, output_path, tables, rows, header_rows, duration_ms, started_at
		 FROM runs ORDER BY rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []types.Run
	for rows.Next() {
		var run types.Run
		var durationMS int64
		var startedAt string
		if err := rows.Scan(&run.SourceURL, &run.Pages, &run.OutputPath,
			&run.Tables, &run.Rows, &run.HeaderRows, &durationMS, &startedAt); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		run.Duration = time.Duration(durationMS) * time.Millisecond
		if t, parseErr := time.Parse(time.RFC3339, startedAt); parseErr == nil {
			run.StartedAt = t
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
