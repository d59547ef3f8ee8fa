package grid

import (
	"fmt"
	"sort"
)

// Grid is the single source of truth for the cell sequence. The sequence is
// always sorted by coordinate ascending and holds exactly one cell per
// coordinate; the smallest possible grid is one cell at 1.0 with both
// affordances showing.
type Grid struct {
	cells []Cell
}

// New returns the minimal grid.
func New() *Grid {
	g := &Grid{}
	g.reset()
	return g
}

func (g *Grid) reset() {
	g.cells = []Cell{NewCell(Coordinate{Main: 1, Sub: 0}, true, true)}
}

// Len returns the number of cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Cell returns the cell at the given position in sequence order.
func (g *Grid) Cell(pos int) Cell {
	return g.cells[pos]
}

// InsertAt splices the cell in at pos. The caller guarantees pos is the
// correct sorted slot for the cell's coordinate.
func (g *Grid) InsertAt(pos int, c Cell) {
	g.cells = append(g.cells, Cell{})
	copy(g.cells[pos+1:], g.cells[pos:])
	g.cells[pos] = c
}

// RemoveAt deletes the cell at pos. The caller re-establishes contiguity
// afterward via renumbering.
func (g *Grid) RemoveAt(pos int) {
	g.cells = append(g.cells[:pos], g.cells[pos+1:]...)
}

// FindIndex locates the cell with the given coordinate.
func (g *Grid) FindIndex(coord Coordinate) (int, bool) {
	pos := sort.Search(len(g.cells), func(i int) bool {
		return !g.cells[i].Coord.Less(coord)
	})
	if pos < len(g.cells) && g.cells[pos].Coord == coord {
		return pos, true
	}
	return 0, false
}

// SetLabel updates the label on the cell at the coordinate.
func (g *Grid) SetLabel(at Coordinate, label string) error {
	pos, ok := g.FindIndex(at)
	if !ok {
		return fmt.Errorf("grid: label %s: %w", at, ErrNoCell)
	}
	g.cells[pos].Label = label
	return nil
}

// Snapshot exports a copy of the current sequence in order.
func (g *Grid) Snapshot() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// ReplaceAll swaps in a whole new sequence, as loaded from persistence. The
// incoming cells are sorted and validated first; on failure the previous
// contents are left untouched.
func (g *Grid) ReplaceAll(cells []Cell) error {
	next := make([]Cell, len(cells))
	copy(next, cells)
	sort.SliceStable(next, func(i, j int) bool {
		return next[i].Coord.Less(next[j].Coord)
	})
	if err := validate(next); err != nil {
		return err
	}
	g.cells = next
	return nil
}

// validate checks a sorted sequence for contiguous mains starting at 1,
// contiguous subs starting at 0 within each main, and duplicate coordinates.
func validate(cells []Cell) error {
	if len(cells) == 0 {
		return fmt.Errorf("grid: empty snapshot: %w", ErrMalformedSnapshot)
	}
	wantMain := 1
	wantSub := 0
	for _, c := range cells {
		if !c.Coord.Valid() {
			return fmt.Errorf("grid: cell %s out of range: %w", c.Coord, ErrMalformedSnapshot)
		}
		switch {
		case c.Coord.Main == wantMain && c.Coord.Sub == wantSub:
			wantSub++
		case c.Coord.Main == wantMain+1 && c.Coord.Sub == 0:
			wantMain++
			wantSub = 1
		default:
			return fmt.Errorf("grid: unexpected cell %s: %w", c.Coord, ErrMalformedSnapshot)
		}
	}
	return nil
}
