package create

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/gridform/pkg/grid/viewmodel"
	"tableflip.dev/gridform/pkg/printers"
	"tableflip.dev/gridform/pkg/process"
	"tableflip.dev/gridform/pkg/store"
)

type Create struct {
	Name        string
	Description string
	ShowID      bool

	Persistence store.Persistence
}

func (n *Create) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not create, no persistence")
	}

	// Saving is an upsert by name, so creating over an existing process
	// would wipe its grid back to the minimal cell. Refuse instead.
	if _, err := n.Persistence.Get(ctx, "", n.Name); err == nil {
		return fmt.Errorf("process %q already exists", n.Name)
	} else if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	p := process.New(n.Name)
	p.Description = n.Description

	saved, err := n.Persistence.Save(ctx, p)
	if err != nil {
		return err
	}

	cells, err := saved.Cells()
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	if n.ShowID {
		pp.Title(saved.Name + " (" + saved.ID + ")")
	} else {
		pp.Title(saved.Name)
	}
	pp.Grid(viewmodel.Build(cells))
	return nil
}
