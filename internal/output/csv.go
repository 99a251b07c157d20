// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output writes normalized tables to CSV with an optional YAML
// manifest sidecar.
package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pdiddy/tablegrab/internal/table"
)

// Write concatenates tables into one CSV file at path, creating parent
// directories as needed. The first table's labels become the file's header
// lines; every table's data rows follow, fitted to the header width. It
// returns the number of data rows written.
//
// When the tables disagree on header level count, a single CSV header cannot
// represent the multi-level labels, so all labels collapse to one flattened
// line joined with sep.
func Write(path string, tables []*table.NormalizedTable, sep string) (int, error) {
	if len(tables) == 0 {
		return 0, fmt.Errorf("no tables to write")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("creating output directory: %w", err)
		}
	}

	tables = reconcileLevels(tables, sep)
	first := tables[0]
	width := first.Columns()

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	for _, level := range first.Labels {
		if err := w.Write(fitRecord(level, width)); err != nil {
			return 0, fmt.Errorf("writing header: %w", err)
		}
	}

	rows := 0
	for _, t := range tables {
		for _, row := range t.Rows {
			record := make([]string, len(row))
			for i, c := range row {
				record[i] = c.String()
			}
			if err := w.Write(fitRecord(record, width)); err != nil {
				return rows, fmt.Errorf("writing row: %w", err)
			}
			rows++
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return rows, fmt.Errorf("flushing CSV: %w", err)
	}
	return rows, nil
}

// reconcileLevels flattens all tables when their label level counts differ,
// since one CSV header block can only carry a single level structure.
func reconcileLevels(tables []*table.NormalizedTable, sep string) []*table.NormalizedTable {
	levels := len(tables[0].Labels)
	mismatch := false
	for _, t := range tables[1:] {
		if len(t.Labels) != levels {
			mismatch = true
			break
		}
	}
	if !mismatch {
		return tables
	}

	flat := make([]*table.NormalizedTable, len(tables))
	for i, t := range tables {
		flat[i] = t.Flattened(sep)
	}
	return flat
}

// fitRecord truncates or right-pads a record to exactly width fields.
func fitRecord(record []string, width int) []string {
	if len(record) == width {
		return record
	}
	if len(record) > width {
		return record[:width]
	}
	out := make([]string, width)
	copy(out, record)
	return out
}
