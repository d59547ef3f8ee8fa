package grid

// Cell is one named position in the grid. ShowRight and ShowBelow record
// whether the cell still offers its "create the next column" and "create the
// next row" affordances; triggering an affordance consumes it.
type Cell struct {
	Coord     Coordinate
	Label     string
	ShowRight bool
	ShowBelow bool
}

// NewCell constructs a cell at the given coordinate with explicit affordance
// flags. Every freshly inserted cell goes through here.
func NewCell(coord Coordinate, showRight, showBelow bool) Cell {
	return Cell{Coord: coord, ShowRight: showRight, ShowBelow: showBelow}
}
