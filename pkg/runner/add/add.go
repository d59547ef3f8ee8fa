package add

import (
	"context"
	"errors"

	"tableflip.dev/gridform/pkg/grid"
	"tableflip.dev/gridform/pkg/grid/viewmodel"
	"tableflip.dev/gridform/pkg/printers"
	"tableflip.dev/gridform/pkg/store"
)

// Add inserts a cell below or to the right of an existing one, then saves
// the whole snapshot back.
type Add struct {
	ID    string
	Name  string
	At    grid.Coordinate
	Right bool
	Label string

	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}

	p, err := n.Persistence.Get(ctx, n.ID, n.Name)
	if err != nil {
		return err
	}

	g, err := p.Restore()
	if err != nil {
		return err
	}

	target := grid.Coordinate{Main: n.At.Main, Sub: n.At.Sub + 1}
	if n.Right {
		target = grid.Coordinate{Main: n.At.Main + 1, Sub: n.At.Sub}
	}
	_, occupied := g.FindIndex(target)

	if n.Right {
		err = g.AddRight(n.At)
	} else {
		err = g.AddBelow(n.At)
	}
	if err != nil {
		return err
	}

	// Label the new cell, if one was actually created. Add right onto an
	// occupied coordinate only consumes the affordance.
	if n.Right && occupied {
		n.Label = ""
	}
	if n.Label != "" {
		if err := g.SetLabel(target, n.Label); err != nil {
			return err
		}
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
