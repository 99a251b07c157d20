// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/tablegrab/internal/table"
	"github.com/pdiddy/tablegrab/pkg/types"
)

func dataRow(values ...string) []table.Cell {
	row := make([]table.Cell, len(values))
	for i, v := range values {
		row[i] = table.FromString(v)
	}
	return row
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	require.NoError(t, err)
	return records
}

func TestWriteFlatHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	tables := []*table.NormalizedTable{{
		Labels: [][]string{{"name", "qty"}},
		Flat:   true,
		Rows:   [][]table.Cell{dataRow("widget", "3"), dataRow("gadget", "5")},
	}}

	rows, err := Write(path, tables, " | ")
	require.NoError(t, err)
	assert.Equal(t, 2, rows)

	records := readCSV(t, path)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"name", "qty"}, records[0])
	assert.Equal(t, []string{"widget", "3"}, records[1])
}

func TestWriteMultiLevelHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	tables := []*table.NormalizedTable{{
		Labels: [][]string{{"A", "A"}, {"x", "y"}},
		Rows:   [][]table.Cell{dataRow("1", "2")},
	}}

	rows, err := Write(path, tables, " | ")
	require.NoError(t, err)
	assert.Equal(t, 1, rows)

	records := readCSV(t, path)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"A", "A"}, records[0])
	assert.Equal(t, []string{"x", "y"}, records[1])
	assert.Equal(t, []string{"1", "2"}, records[2])
}

func TestWriteConcatenatesTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	tables := []*table.NormalizedTable{
		{
			Labels: [][]string{{"a", "b"}},
			Flat:   true,
			Rows:   [][]table.Cell{dataRow("1", "2")},
		},
		{
			Labels: [][]string{{"a", "b"}},
			Flat:   true,
			Rows:   [][]table.Cell{dataRow("3", "4"), dataRow("5", "6")},
		},
	}

	rows, err := Write(path, tables, " | ")
	require.NoError(t, err)
	assert.Equal(t, 3, rows)

	records := readCSV(t, path)
	// 1 header line + 3 data rows.
	require.Len(t, records, 4)
}

func TestWriteFlattensOnLevelMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	tables := []*table.NormalizedTable{
		{
			Labels: [][]string{{"A", "B"}, {"x", "y"}},
			Rows:   [][]table.Cell{dataRow("1", "2")},
		},
		{
			Labels: [][]string{{"p", "q"}},
			Flat:   true,
			Rows:   [][]table.Cell{dataRow("3", "4")},
		},
	}

	rows, err := Write(path, tables, " - ")
	require.NoError(t, err)
	assert.Equal(t, 2, rows)

	records := readCSV(t, path)
	// Multi-level header collapsed to a single flattened line.
	require.Len(t, records, 3)
	assert.Equal(t, []string{"A - x", "B - y"}, records[0])
}

func TestWriteFitsRaggedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	tables := []*table.NormalizedTable{{
		Labels: [][]string{{"a", "b", "c"}},
		Flat:   true,
		Rows: [][]table.Cell{
			dataRow("1"),
			dataRow("1", "2", "3", "4"),
		},
	}}

	_, err := Write(path, tables, " | ")
	require.NoError(t, err)

	records := readCSV(t, path)
	for _, rec := range records {
		assert.Len(t, rec, 3)
	}
}

func TestWriteCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deep", "out.csv")
	tables := []*table.NormalizedTable{{
		Rows: [][]table.Cell{dataRow("1")},
	}}

	_, err := Write(path, tables, " | ")
	require.NoError(t, err)
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestWriteManifest(t *testing.T) {
	csvPath := filepath.Join(t.TempDir(), "out.csv")
	run := types.Run{
		SourceURL:  "https://example.com/report.pdf",
		Pages:      "1,2",
		OutputPath: csvPath,
		Tables:     2,
		Rows:       7,
	}
	summaries := []TableSummary{{Page: 1, Rows: 3, Columns: 2}, {Page: 2, Rows: 4, Columns: 2}}

	require.NoError(t, WriteManifest(csvPath, run, summaries))

	data, err := os.ReadFile(ManifestPath(csvPath))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(ManifestPath(csvPath), ".manifest.yaml"))

	var m Manifest
	require.NoError(t, yaml.Unmarshal(data, &m))
	assert.Equal(t, run.SourceURL, m.Run.SourceURL)
	require.Len(t, m.Tables, 2)
	assert.Equal(t, 4, m.Tables[1].Rows)
}
