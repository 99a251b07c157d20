// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"sort"
	"strings"

	"github.com/pdiddy/tablegrab/internal/table"
)

// clusterRows groups fragments whose baselines sit within tolerance of each
// other into rows, ordered top to bottom. PDF Y coordinates grow upward, so
// visual order is descending Y. Blank fragments are discarded.
func clusterRows(fragments []Fragment, tolerance float64) [][]Fragment {
	type cluster struct {
		y     float64
		frags []Fragment
	}
	var clusters []cluster

	for _, f := range fragments {
		if strings.TrimSpace(f.Text) == "" {
			continue
		}

		placed := false
		for i := range clusters {
			if abs(clusters[i].y-f.Y) < tolerance {
				clusters[i].frags = append(clusters[i].frags, f)
				placed = true
				break
			}
		}
		if !placed {
			clusters = append(clusters, cluster{y: f.Y, frags: []Fragment{f}})
		}
	}

	sort.SliceStable(clusters, func(i, j int) bool { return clusters[i].y > clusters[j].y })

	rows := make([][]Fragment, len(clusters))
	for i, c := range clusters {
		row := c.frags
		sort.SliceStable(row, func(a, b int) bool { return row[a].X < row[b].X })
		rows[i] = row
	}
	return rows
}

// columnBoundaries derives column left edges by clustering fragment start
// positions across the whole page. Edges closer than minGap to the previous
// boundary merge into it; the survivors are the column starts, ascending.
func columnBoundaries(fragments []Fragment, minGap float64) []float64 {
	var edges []float64
	for _, f := range fragments {
		if strings.TrimSpace(f.Text) == "" {
			continue
		}
		edges = append(edges, f.X)
	}
	if len(edges) == 0 {
		return nil
	}
	sort.Float64s(edges)

	boundaries := []float64{edges[0]}
	for _, x := range edges[1:] {
		if x-boundaries[len(boundaries)-1] >= minGap {
			boundaries = append(boundaries, x)
		}
	}
	return boundaries
}

// rowCells distributes a row's fragments into the column intervals defined by
// boundaries and classifies each assembled cell. Fragments landing in the
// same column concatenate in X order with a single space.
func rowCells(row []Fragment, boundaries []float64) []table.Cell {
	texts := make([]string, len(boundaries))
	for _, f := range row {
		col := columnIndex(f.X, boundaries)
		if texts[col] == "" {
			texts[col] = strings.TrimSpace(f.Text)
		} else {
			texts[col] += " " + strings.TrimSpace(f.Text)
		}
	}

	cells := make([]table.Cell, len(boundaries))
	for i, s := range texts {
		cells[i] = table.FromString(s)
	}
	return cells
}

// columnIndex finds the interval containing x: the last boundary at or
// before x, clamped to the first column for fragments left of all boundaries.
func columnIndex(x float64, boundaries []float64) int {
	idx := sort.SearchFloat64s(boundaries, x)
	if idx < len(boundaries) && boundaries[idx] == x {
		return idx
	}
	if idx == 0 {
		return 0
	}
	return idx - 1
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
