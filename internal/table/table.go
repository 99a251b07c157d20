// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package table models extracted tables and normalizes multi-row headers.
package table

import (
	"strconv"
	"strings"
)

// CellKind discriminates the cell sum type.
type CellKind int

const (
	// KindEmpty marks an absent or blank cell.
	KindEmpty CellKind = iota

	// KindText marks a textual cell.
	KindText

	// KindNumber marks a cell whose content parses as a number.
	KindNumber
)

// Cell is one value in an extracted table. Extraction produces loosely typed
// cells (absent, text, or numeric); they are rendered to strings only at the
// header-cleaning and CSV-writing boundaries.
type Cell struct {
	Kind   CellKind
	Text   string
	Number float64
}

// Empty returns the empty cell.
func Empty() Cell {
	return Cell{Kind: KindEmpty}
}

// Text returns a text cell, or the empty cell for a blank string.
func Text(s string) Cell {
	if strings.TrimSpace(s) == "" {
		return Empty()
	}
	return Cell{Kind: KindText, Text: s}
}

// Number returns a numeric cell. The original text is retained so CSV output
// reproduces the source formatting.
func Number(text string, v float64) Cell {
	return Cell{Kind: KindNumber, Text: text, Number: v}
}

// FromString classifies raw extracted text into a Cell.
func FromString(s string) Cell {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Empty()
	}
	if v, err := strconv.ParseFloat(strings.ReplaceAll(trimmed, ",", ""), 64); err == nil {
		return Number(trimmed, v)
	}
	return Cell{Kind: KindText, Text: trimmed}
}

// String renders the cell for output. Empty cells render as "".
func (c Cell) String() string {
	if c.Kind == KindEmpty {
		return ""
	}
	return c.Text
}

// IsEmpty reports whether the cell holds no value.
func (c Cell) IsEmpty() bool {
	return c.Kind == KindEmpty
}

// Table is an ordered sequence of rows of cells. Rows may be ragged; the
// column count of a table is the width of its widest row.
type Table struct {
	// Page is the 1-based PDF page the table was recovered from, when known.
	Page int

	Rows [][]Cell
}

// Columns returns the width of the widest row.
func (t *Table) Columns() int {
	cols := 0
	for _, row := range t.Rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	return cols
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}
