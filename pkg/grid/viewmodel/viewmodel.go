// Package viewmodel derives the column-grouped view that rendering layers
// consume. The index owns no state of its own; it is rebuilt from the grid
// sequence after every mutation.
package viewmodel

import (
	"sort"

	"tableflip.dev/gridform/pkg/grid"
)

// Column holds one main index's cells, ordered by sub ascending.
type Column struct {
	Main  int
	Cells []grid.Cell
}

// Index is the derived view: columns ordered by main ascending.
type Index struct {
	Columns []Column
}

// Build partitions the cell sequence by main. The input does not need to be
// sorted or contiguous; holes show up as nil slots in Padded.
func Build(cells []grid.Cell) *Index {
	byMain := make(map[int][]grid.Cell, len(cells))
	for _, c := range cells {
		byMain[c.Coord.Main] = append(byMain[c.Coord.Main], c)
	}

	ix := &Index{Columns: make([]Column, 0, len(byMain))}
	for main, group := range byMain {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Coord.Sub < group[j].Coord.Sub
		})
		ix.Columns = append(ix.Columns, Column{Main: main, Cells: group})
	}
	sort.Slice(ix.Columns, func(i, j int) bool {
		return ix.Columns[i].Main < ix.Columns[j].Main
	})
	return ix
}

// Column returns the partition for the given main index.
func (ix *Index) Column(main int) (Column, bool) {
	for _, col := range ix.Columns {
		if col.Main == main {
			return col, true
		}
	}
	return Column{}, false
}

// Rows returns the height of the tallest column.
func (ix *Index) Rows() int {
	rows := 0
	for _, col := range ix.Columns {
		if n := col.MaxSub() + 1; n > rows {
			rows = n
		}
	}
	return rows
}

// MaxSub returns the greatest sub index present in the column, or -1 for an
// empty column.
func (c Column) MaxSub() int {
	max := -1
	for _, cell := range c.Cells {
		if cell.Coord.Sub > max {
			max = cell.Coord.Sub
		}
	}
	return max
}

// Padded returns the column as a dense sequence of length MaxSub+1, with nil
// at any sub that has no cell. Renderers use this so a momentarily
// non-contiguous column still lays out sanely.
func (c Column) Padded() []*grid.Cell {
	out := make([]*grid.Cell, c.MaxSub()+1)
	for i := range c.Cells {
		cell := c.Cells[i]
		if cell.Coord.Sub >= 0 && cell.Coord.Sub < len(out) {
			out[cell.Coord.Sub] = &cell
		}
	}
	return out
}
