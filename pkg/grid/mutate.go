package grid

import (
	"fmt"
	"sort"
)

// AddBelow splices a new row into the source cell's column directly below
// it. The source cell's affordance is consumed and every following row in
// the column shifts down one sub index.
func (g *Grid) AddBelow(at Coordinate) error {
	pos, ok := g.FindIndex(at)
	if !ok {
		return fmt.Errorf("grid: add below %s: %w", at, ErrNoCell)
	}
	g.cells[pos].ShowBelow = false

	// Shift the tail of the column down first so the new coordinate is free.
	for i := pos + 1; i < len(g.cells) && g.cells[i].Coord.Main == at.Main; i++ {
		g.cells[i].Coord.Sub++
	}
	g.InsertAt(pos+1, NewCell(Coordinate{Main: at.Main, Sub: at.Sub + 1}, true, true))
	return nil
}

// AddRight creates the cell one column to the right of the source cell, at
// the same sub level. If that coordinate is already occupied only the source
// affordance is consumed; existing mains are never renumbered. The insert
// must land adjacent to existing structure: a cell floating above a hole
// would make the snapshot unloadable, so that case is refused with
// ErrColumnGap and nothing changes.
func (g *Grid) AddRight(at Coordinate) error {
	pos, ok := g.FindIndex(at)
	if !ok {
		return fmt.Errorf("grid: add right %s: %w", at, ErrNoCell)
	}

	target := Coordinate{Main: at.Main + 1, Sub: at.Sub}
	if _, exists := g.FindIndex(target); exists {
		g.cells[pos].ShowRight = false
		return nil
	}
	if target.Sub > 0 {
		if _, ok := g.FindIndex(Coordinate{Main: target.Main, Sub: target.Sub - 1}); !ok {
			return fmt.Errorf("grid: add right %s: %w", at, ErrColumnGap)
		}
	}
	g.cells[pos].ShowRight = false

	slot := sort.Search(len(g.cells), func(i int) bool {
		return target.Less(g.cells[i].Coord)
	})
	g.InsertAt(slot, NewCell(target, true, true))

	// The new cell sits to the lower right of the cell directly above it in
	// the touched column; that cell's add-below affordance is now redundant.
	if above, ok := g.FindIndex(Coordinate{Main: target.Main, Sub: target.Sub - 1}); ok {
		g.cells[above].ShowBelow = false
	}
	return nil
}

// Remove deletes the cell at the coordinate. Removing a column's top row
// (sub 0) removes the whole column; any other row is removed in place.
func (g *Grid) Remove(at Coordinate) error {
	if _, ok := g.FindIndex(at); !ok {
		return fmt.Errorf("grid: remove %s: %w", at, ErrNoCell)
	}
	if at.Sub == 0 {
		g.removeColumn(at.Main)
		return nil
	}
	g.removeRow(at)
	return nil
}

func (g *Grid) removeRow(at Coordinate) {
	pos, _ := g.FindIndex(at)
	g.RemoveAt(pos)
	g.renumberColumn(at.Main)
}

// renumberColumn reassigns contiguous sub indices within one column and
// moves the add-below affordance to the column's last row.
func (g *Grid) renumberColumn(main int) {
	start, ok := g.FindIndex(Coordinate{Main: main, Sub: 0})
	if !ok {
		return
	}
	last := start
	sub := 0
	for i := start; i < len(g.cells) && g.cells[i].Coord.Main == main; i++ {
		g.cells[i].Coord.Sub = sub
		g.cells[i].ShowBelow = false
		sub++
		last = i
	}
	g.cells[last].ShowBelow = true
}

func (g *Grid) removeColumn(main int) {
	if g.cells[0].Coord.Main == g.cells[len(g.cells)-1].Coord.Main {
		// Last remaining column; collapse to the minimal grid.
		g.reset()
		return
	}
	kept := make([]Cell, 0, len(g.cells))
	for _, c := range g.cells {
		if c.Coord.Main != main {
			kept = append(kept, c)
		}
	}
	g.cells = kept
	g.renumberMains()
}

// renumberMains rebuilds every surviving column with consecutive main
// indices starting at 1. Labels survive; the affordances are recomputed so
// each column offers add-right on its first row and add-below on its last.
func (g *Grid) renumberMains() {
	next := make([]Cell, 0, len(g.cells))
	main := 0
	prev := 0
	for i, c := range g.cells {
		if c.Coord.Main != prev {
			prev = c.Coord.Main
			main++
		}
		cell := NewCell(Coordinate{Main: main, Sub: c.Coord.Sub}, c.Coord.Sub == 0, false)
		cell.Label = c.Label
		if i+1 == len(g.cells) || g.cells[i+1].Coord.Main != c.Coord.Main {
			cell.ShowBelow = true
		}
		next = append(next, cell)
	}
	g.cells = next
}
