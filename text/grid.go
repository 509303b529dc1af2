// Package text assembles positioned fragments of decoded text into a single
// reading-order string.
package text

import (
	"sort"
	"strings"
)

// A Grid accumulates decoded fragments keyed by integer page position,
// line (y) first, then offset within the line (x). It is built during
// interpretation of one page and consumed once by Assemble.
type Grid map[int]map[int]string

func New() Grid {
	return make(Grid)
}

// Upsert merges s into the cell at (x, y). A fragment landing on an occupied
// cell is prepended, so within one cell later-emitted glyphs come first.
func (g Grid) Upsert(x, y int, s string) {
	row, ok := g[y]
	if !ok {
		row = make(map[int]string)
		g[y] = row
	}
	row[x] = s + row[x]
}

// Assemble concatenates the grid's cells in reading order: rows by
// descending y (top of the region first), cells within a row by descending x.
// The result depends only on the grid's contents, not insertion order.
func (g Grid) Assemble() string {
	ys := make([]int, 0, len(g))
	for y := range g {
		ys = append(ys, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ys)))

	var b strings.Builder
	for _, y := range ys {
		row := g[y]
		xs := make([]int, 0, len(row))
		for x := range row {
			xs = append(xs, x)
		}
		sort.Sort(sort.Reverse(sort.IntSlice(xs)))

		for _, x := range xs {
			b.WriteString(row[x])
		}
	}

	return b.String()
}
