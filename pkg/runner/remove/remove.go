package remove

import (
	"context"
	"errors"

	"tableflip.dev/gridform/pkg/grid"
	"tableflip.dev/gridform/pkg/grid/viewmodel"
	"tableflip.dev/gridform/pkg/printers"
	"tableflip.dev/gridform/pkg/store"
)

// Remove deletes a cell, renumbers the grid back into canonical shape, and
// saves the snapshot. Removing a column's top row removes the whole column.
type Remove struct {
	ID   string
	Name string
	At   grid.Coordinate

	Persistence store.Persistence
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not remove, no persistence")
	}

	p, err := n.Persistence.Get(ctx, n.ID, n.Name)
	if err != nil {
		return err
	}

	g, err := p.Restore()
	if err != nil {
		return err
	}

	if err := g.Remove(n.At); err != nil {
		return err
	}

	p.SetGrid(g)
	saved, err := n.Persistence.Save(ctx, p)
	if err != nil {
		return err
	}

	cells, err := saved.Cells()
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Title(saved.Name)
	pp.Grid(viewmodel.Build(cells))
	return nil
}
