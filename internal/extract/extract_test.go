// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"errors"
	"testing"

	"github.com/pdiddy/tablegrab/internal/pagespec"
	"github.com/pdiddy/tablegrab/internal/table"
	"github.com/pdiddy/tablegrab/pkg/types"
)

// fakeDocument serves synthetic fragments keyed by page number.
type fakeDocument struct {
	pages map[int][]Fragment
}

func (d *fakeDocument) PageCount() int { return len(d.pages) }

func (d *fakeDocument) PageFragments(page int) ([]Fragment, error) {
	return d.pages[page], nil
}

func (d *fakeDocument) Close() error { return nil }

func fakeOpener(doc *fakeDocument) Opener {
	return func(string) (Document, error) { return doc, nil }
}

// tablePage lays out a simple 2x3 grid: header row at y=700, data at y=680.
func tablePage() []Fragment {
	return []Fragment{
		{Text: "Name", X: 50, Y: 700},
		{Text: "Qty", X: 200, Y: 700},
		{Text: "Price", X: 300, Y: 700},
		{Text: "Widget", X: 50, Y: 680},
		{Text: "3", X: 200, Y: 680},
		{Text: "9.99", X: 300, Y: 680},
	}
}

// prosePage is a single column of text, not a table.
func prosePage() []Fragment {
	return []Fragment{
		{Text: "Introduction", X: 50, Y: 700},
		{Text: "This page is prose.", X: 50, Y: 680},
	}
}

func TestTablesRecoversGrid(t *testing.T) {
	doc := &fakeDocument{pages: map[int][]Fragment{1: tablePage()}}
	e := NewWithOpener(types.ExtractConfig{}, fakeOpener(doc))

	var out bytes.Buffer
	tables, err := e.Tables("ignored.pdf", pagespec.PageSet{All: true}, &out)
	if err != nil {
		t.Fatalf("Tables failed: %v", err)
	}
	if len(tables) != 1 {
		t.Fatalf("expected 1 table, got %d", len(tables))
	}

	got := tables[0]
	if got.Page != 1 {
		t.Errorf("table page = %d, want 1", got.Page)
	}
	if got.RowCount() != 2 || got.Columns() != 3 {
		t.Fatalf("table shape = %dx%d, want 2x3", got.RowCount(), got.Columns())
	}
	if got.Rows[0][0].String() != "Name" || got.Rows[1][2].String() != "9.99" {
		t.Errorf("unexpected cells: %v", got.Rows)
	}
	if got.Rows[1][1].Kind != table.KindNumber {
		t.Errorf("expected numeric cell, got kind %v", got.Rows[1][1].Kind)
	}
}

func TestTablesSkipsProsePages(t *testing.T) {
	doc := &fakeDocument{pages: map[int][]Fragment{
		1: prosePage(),
		2: tablePage(),
	}}
	e := NewWithOpener(types.ExtractConfig{}, fakeOpener(doc))

	var out bytes.Buffer
	tables, err := e.Tables("ignored.pdf", pagespec.PageSet{All: true}, &out)
	if err != nil {
		t.Fatalf("Tables failed: %v", err)
	}
	if len(tables) != 1 || tables[0].Page != 2 {
		t.Fatalf("expected only the table on page 2, got %d tables", len(tables))
	}
}

func TestTablesNoTablesError(t *testing.T) {
	doc := &fakeDocument{pages: map[int][]Fragment{1: prosePage()}}
	e := NewWithOpener(types.ExtractConfig{}, fakeOpener(doc))

	var out bytes.Buffer
	_, err := e.Tables("ignored.pdf", pagespec.PageSet{All: true}, &out)
	if !errors.Is(err, ErrNoTables) {
		t.Fatalf("expected ErrNoTables, got %v", err)
	}
}

func TestTablesRespectsPageSelection(t *testing.T) {
	doc := &fakeDocument{pages: map[int][]Fragment{
		1: tablePage(),
		2: tablePage(),
	}}
	e := NewWithOpener(types.ExtractConfig{}, fakeOpener(doc))

	var out bytes.Buffer
	tables, err := e.Tables("ignored.pdf", pagespec.PageSet{Pages: []int{2}}, &out)
	if err != nil {
		t.Fatalf("Tables failed: %v", err)
	}
	if len(tables) != 1 || tables[0].Page != 2 {
		t.Fatalf("expected the page 2 table only, got %+v", tables)
	}
}

func TestClusterRows(t *testing.T) {
	fragments := []Fragment{
		{Text: "b", X: 100, Y: 500.5},
		{Text: "a", X: 50, Y: 500},   // same row as "b" within tolerance
		{Text: "c", X: 50, Y: 700},   // visually above, higher Y
		{Text: " ", X: 200, Y: 500},  // blank, dropped
	}

	rows := clusterRows(fragments, 2.0)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	// Top row first (largest Y), fragments in X order.
	if rows[0][0].Text != "c" {
		t.Errorf("top row = %v", rows[0])
	}
	if rows[1][0].Text != "a" || rows[1][1].Text != "b" {
		t.Errorf("bottom row out of order: %v", rows[1])
	}
}

func TestColumnBoundaries(t *testing.T) {
	fragments := []Fragment{
		{Text: "x", X: 50, Y: 700},
		{Text: "y", X: 52, Y: 680}, // jitter, merges into the first column
		{Text: "z", X: 200, Y: 700},
	}

	got := columnBoundaries(fragments, 10.0)
	if len(got) != 2 {
		t.Fatalf("expected 2 boundaries, got %v", got)
	}
	if got[0] != 50 || got[1] != 200 {
		t.Errorf("boundaries = %v, want [50 200]", got)
	}
}

func TestRowCellsMergesSameColumnFragments(t *testing.T) {
	boundaries := []float64{50, 200}
	row := []Fragment{
		{Text: "Hello", X: 50},
		{Text: "World", X: 120}, // still left of the second boundary
		{Text: "42", X: 200},
	}

	cells := rowCells(row, boundaries)
	if cells[0].String() != "Hello World" {
		t.Errorf("cell 0 = %q, want %q", cells[0].String(), "Hello World")
	}
	if cells[1].Kind != table.KindNumber {
		t.Errorf("cell 1 kind = %v, want number", cells[1].Kind)
	}
}
