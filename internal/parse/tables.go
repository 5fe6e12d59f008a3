// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package parse

import (
	"sort"
	"strings"

	"github.com/meshintel/manual-parser/internal/pdftext"
)

// Expected column headers of the per-task scoring tables. The manuals use
// these names on every table page; anything else is not treated as a table.
const (
	ColPoint         = "Point"
	ColDescription   = "Beskrivelse"
	ColDocumentation = "Dokumentationskrav"
)

var knownColumns = []string{ColPoint, ColDescription, ColDocumentation}

// Positional tolerances, in PDF points. Fragments closer than yTolerance
// vertically belong to the same row; gaps wider than cellGap horizontally
// start a new cell; xAlignTolerance is the slack when matching body cells
// to header column positions.
const (
	yTolerance      = 3.0
	cellGap         = 12.0
	xAlignTolerance = 3.0
)

// Table is a detected scoring table: header titles left to right and the
// body rows beneath them, one cell string per column.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Column returns the non-empty cells of the named column, or nil when the
// column is missing from the table.
func (t *Table) Column(name string) []string {
	idx := -1
	for i, c := range t.Columns {
		if strings.EqualFold(c, name) {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil
	}
	var cells []string
	for _, row := range t.Rows {
		if idx < len(row) && row[idx] != "" {
			cells = append(cells, row[idx])
		}
	}
	return cells
}

// cell is an intermediate positioned cell built from merged fragments.
type cell struct {
	x    float64
	text string
}

// ExtractTable clusters a page's positioned text runs into a grid and
// returns it when the grid carries the expected scoring-table headers.
// Pages without a recognizable table return nil.
func ExtractTable(frags []pdftext.Fragment) *Table {
	rows := clusterRows(frags)
	if len(rows) < 2 {
		return nil
	}

	headerIdx := -1
	for i, row := range rows {
		if countKnownHeaders(row) >= 2 {
			headerIdx = i
			break
		}
	}
	if headerIdx == -1 {
		return nil
	}

	header := rows[headerIdx]
	t := &Table{Columns: make([]string, len(header))}
	for i, c := range header {
		t.Columns[i] = c.text
	}

	for _, row := range rows[headerIdx+1:] {
		cells := make([]string, len(header))
		for _, c := range row {
			cells[columnIndex(header, c.x)] = strings.TrimSpace(c.text)
		}
		t.Rows = append(t.Rows, cells)
	}
	return t
}

// clusterRows groups fragments into rows by Y position and merges each
// row's fragments into cells by X gaps. Rows come back in reading order
// (PDF Y grows upward, so descending Y).
func clusterRows(frags []pdftext.Fragment) [][]cell {
	sorted := make([]pdftext.Fragment, len(frags))
	copy(sorted, frags)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var rows [][]pdftext.Fragment
	for _, f := range sorted {
		if strings.TrimSpace(f.S) == "" {
			continue
		}
		if n := len(rows); n > 0 && rows[n-1][0].Y-f.Y <= yTolerance {
			rows[n-1] = append(rows[n-1], f)
			continue
		}
		rows = append(rows, []pdftext.Fragment{f})
	}

	out := make([][]cell, 0, len(rows))
	for _, row := range rows {
		sort.SliceStable(row, func(i, j int) bool { return row[i].X < row[j].X })
		var cells []cell
		var cur *cell
		var lastEnd float64
		for _, f := range row {
			if cur != nil && f.X-lastEnd <= cellGap {
				cur.text += f.S
			} else {
				cells = append(cells, cell{x: f.X})
				cur = &cells[len(cells)-1]
				cur.text = f.S
			}
			lastEnd = f.X + f.W
		}
		for i := range cells {
			cells[i].text = strings.TrimSpace(cells[i].text)
		}
		out = append(out, cells)
	}
	return out
}

func countKnownHeaders(row []cell) int {
	n := 0
	for _, c := range row {
		for _, k := range knownColumns {
			if strings.EqualFold(strings.TrimSpace(c.text), k) {
				n++
				break
			}
		}
	}
	return n
}

// columnIndex assigns a cell to the rightmost header column starting at or
// left of the cell, with a small tolerance for ragged alignment.
func columnIndex(header []cell, x float64) int {
	idx := 0
	for i, h := range header {
		if h.x <= x+xAlignTolerance {
			idx = i
		}
	}
	return idx
}

// TaskDetails is the table content that overrides the hardcoded task-item
// defaults: the scoring option texts in level order and the documentation
// requirement. Missing columns leave the corresponding field empty.
type TaskDetails struct {
	Options       []string
	Documentation string
}

// Details extracts the task enrichment from the table.
func (t *Table) Details() TaskDetails {
	var d TaskDetails
	d.Options = t.Column(ColDescription)
	if docs := t.Column(ColDocumentation); len(docs) > 0 {
		d.Documentation = strings.Join(docs, " ")
	}
	return d
}
