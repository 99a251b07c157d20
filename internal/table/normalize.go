// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package table

import (
	"fmt"
	"strings"
)

// DefaultSeparator joins header levels when flattening.
const DefaultSeparator = " | "

// HeaderSpec configures multi-row header handling.
type HeaderSpec struct {
	// HeaderRows is the number of leading rows treated as column labels.
	// Zero or negative means no header handling.
	HeaderRows int

	// Flatten joins the levels of each column into a single label.
	Flatten bool

	// Separator joins non-empty label fragments when flattening.
	// Empty means DefaultSeparator.
	Separator string
}

func (s HeaderSpec) separator() string {
	if s.Separator == "" {
		return DefaultSeparator
	}
	return s.Separator
}

// NormalizedTable is a table whose header rows have been lifted into labels.
// Labels holds one slice per header level; when Flat is true there is exactly
// one level. Every level has length equal to the data column count.
type NormalizedTable struct {
	Labels [][]string
	Flat   bool
	Rows   [][]Cell
	Page   int
}

// Columns returns the label width, or the widest data row when no labels exist.
func (n *NormalizedTable) Columns() int {
	if len(n.Labels) > 0 {
		return len(n.Labels[0])
	}
	cols := 0
	for _, row := range n.Rows {
		if len(row) > cols {
			cols = len(row)
		}
	}
	return cols
}

// Flattened returns the table with its labels collapsed to a single level.
// Already-flat tables come back unchanged.
func (n *NormalizedTable) Flattened(sep string) *NormalizedTable {
	if n.Flat || len(n.Labels) <= 1 {
		flat := *n
		flat.Flat = true
		return &flat
	}
	return &NormalizedTable{
		Labels: [][]string{flattenLevels(n.Labels, n.Columns(), sep)},
		Flat:   true,
		Rows:   n.Rows,
		Page:   n.Page,
	}
}

// Normalize lifts the first spec.HeaderRows rows of t into column labels and
// returns the remaining rows as data. When spec.HeaderRows is zero or the
// table is too short, the table passes through unchanged with no labels.
func Normalize(t *Table, spec HeaderSpec) *NormalizedTable {
	if spec.HeaderRows <= 0 || len(t.Rows) < spec.HeaderRows {
		return &NormalizedTable{Rows: t.Rows, Page: t.Page}
	}

	ncols := t.Columns()
	levels := make([][]string, spec.HeaderRows)
	for i := 0; i < spec.HeaderRows; i++ {
		cleaned := cleanHeaderRow(t.Rows[i])
		fillRight(cleaned)
		levels[i] = fitWidth(cleaned, ncols)
	}

	data := t.Rows[spec.HeaderRows:]

	if spec.Flatten {
		return &NormalizedTable{
			Labels: [][]string{flattenLevels(levels, ncols, spec.separator())},
			Flat:   true,
			Rows:   data,
			Page:   t.Page,
		}
	}
	return &NormalizedTable{Labels: levels, Rows: data, Page: t.Page}
}

// cleanHeaderRow stringifies header cells, turning nil-like tokens into "".
// The literal strings "nan" and "none" (any case) come from upstream
// extractors that render missing values as text.
func cleanHeaderRow(row []Cell) []string {
	out := make([]string, len(row))
	for i, c := range row {
		s := strings.TrimSpace(c.String())
		switch strings.ToLower(s) {
		case "nan", "none":
			s = ""
		}
		out[i] = s
	}
	return out
}

// fillRight propagates the last non-empty label into immediately following
// empty cells, recovering labels that visually spanned several columns.
func fillRight(labels []string) {
	last := ""
	for i, s := range labels {
		if s == "" {
			labels[i] = last
		} else {
			last = s
		}
	}
}

// fitWidth truncates or right-pads labels to exactly ncols entries.
func fitWidth(labels []string, ncols int) []string {
	if len(labels) >= ncols {
		return labels[:ncols]
	}
	out := make([]string, ncols)
	copy(out, labels)
	return out
}

// flattenLevels joins the non-empty fragment from each level top to bottom.
// A column empty at every level gets a synthetic col_<index> label.
func flattenLevels(levels [][]string, ncols int, sep string) []string {
	flat := make([]string, ncols)
	for col := 0; col < ncols; col++ {
		var parts []string
		for _, level := range levels {
			if col < len(level) && level[col] != "" {
				parts = append(parts, level[col])
			}
		}
		if len(parts) == 0 {
			flat[col] = fmt.Sprintf("col_%d", col)
		} else {
			flat[col] = strings.Join(parts, sep)
		}
	}
	return flat
}
