// Package process defines the persisted form of a grid: a named process
// record carrying the full cell snapshot in wire shape.
package process

import (
	"time"

	"tableflip.dev/gridform/pkg/grid"
)

// GridItem is the wire form of one cell. Name carries the canonical
// "main.sub" coordinate string; GridName carries the cell's label.
type GridItem struct {
	Name      string `json:"name"`
	ShowRight bool   `json:"showRight"`
	ShowBelow bool   `json:"showBelow"`
	GridName  string `json:"gridname"`
}

// Process is a named, identified grid snapshot. ID is assigned by
// persistence on first save and reused for idempotent updates.
type Process struct {
	ID          string     `json:"id,omitempty"`
	Name        string     `json:"process_name"`
	Description string     `json:"description,omitempty"`
	Grid        []GridItem `json:"grid_data"`
	CreatedAt   time.Time  `json:"created_at,omitempty"`
	UpdatedAt   time.Time  `json:"updated_at,omitempty"`
	Active      bool       `json:"is_active"`
}

// Summary is the listing row for a process: everything but the cells.
type Summary struct {
	ID          string    `json:"id"`
	Name        string    `json:"process_name"`
	Description string    `json:"description,omitempty"`
	GridCount   int       `json:"grid_count"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
	Active      bool      `json:"is_active"`
}

// New creates an active process holding the minimal grid.
func New(name string) *Process {
	return &Process{
		Name:   name,
		Grid:   FromCells(grid.New().Snapshot()),
		Active: true,
	}
}

// FromCells converts an ordered cell sequence into wire items.
func FromCells(cells []grid.Cell) []GridItem {
	items := make([]GridItem, 0, len(cells))
	for _, c := range cells {
		items = append(items, GridItem{
			Name:      c.Coord.String(),
			ShowRight: c.ShowRight,
			ShowBelow: c.ShowBelow,
			GridName:  c.Label,
		})
	}
	return items
}

// Cells decodes the wire items back into cells. A coordinate that fails to
// parse aborts the decode; contiguity is the grid's job to check on replace.
func (p *Process) Cells() ([]grid.Cell, error) {
	cells := make([]grid.Cell, 0, len(p.Grid))
	for _, item := range p.Grid {
		coord, err := grid.ParseCoordinate(item.Name)
		if err != nil {
			return nil, err
		}
		cell := grid.NewCell(coord, item.ShowRight, item.ShowBelow)
		cell.Label = item.GridName
		cells = append(cells, cell)
	}
	return cells, nil
}

// Restore rehydrates a grid from the stored snapshot. The returned grid is
// fully validated; a snapshot that violates the grid contract fails with
// grid.ErrMalformedSnapshot and nothing is rehydrated.
func (p *Process) Restore() (*grid.Grid, error) {
	cells, err := p.Cells()
	if err != nil {
		return nil, err
	}
	g := grid.New()
	if err := g.ReplaceAll(cells); err != nil {
		return nil, err
	}
	return g, nil
}

// SetGrid replaces the stored snapshot with the grid's current sequence.
func (p *Process) SetGrid(g *grid.Grid) {
	p.Grid = FromCells(g.Snapshot())
}

// Summarize returns the listing row for this process.
func (p *Process) Summarize() Summary {
	return Summary{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		GridCount:   len(p.Grid),
		CreatedAt:   p.CreatedAt,
		Active:      p.Active,
	}
}
