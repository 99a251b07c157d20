// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/tablegrab/internal/table"
	"github.com/pdiddy/tablegrab/pkg/types"
)

// TableSummary describes one extracted table in the manifest.
type TableSummary struct {
	// Page is the PDF page the table came from.
	Page int `yaml:"page"`

	// Rows is the table's data row count after header removal.
	Rows int `yaml:"rows"`

	// Columns is the table's column count.
	Columns int `yaml:"columns"`
}

// Manifest is the YAML sidecar written next to the CSV, recording where the
// data came from and what was extracted.
type Manifest struct {
	Run    types.Run      `yaml:"run"`
	Tables []TableSummary `yaml:"tables"`
}

// ManifestPath derives the sidecar location for a CSV output path.
func ManifestPath(csvPath string) string {
	return csvPath + ".manifest.yaml"
}

// Summarize builds manifest table entries from normalized tables.
func Summarize(tables []*table.NormalizedTable) []TableSummary {
	summaries := make([]TableSummary, len(tables))
	for i, t := range tables {
		summaries[i] = TableSummary{
			Page:    t.Page,
			Rows:    len(t.Rows),
			Columns: t.Columns(),
		}
	}
	return summaries
}

// WriteManifest writes the sidecar for the CSV at csvPath.
func WriteManifest(csvPath string, run types.Run, tables []TableSummary) error {
	data, err := yaml.Marshal(Manifest{Run: run, Tables: tables})
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	if err := os.WriteFile(ManifestPath(csvPath), data, 0o644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}
