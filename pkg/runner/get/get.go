package get

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"tableflip.dev/gridform/pkg/grid/viewmodel"
	"tableflip.dev/gridform/pkg/printers"
	"tableflip.dev/gridform/pkg/store"
)

type Get struct {
	ID     string
	Name   string
	ShowID bool
	JSON   bool

	Persistence store.Persistence
}

func (n *Get) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get, no persistence")
	}

	p, err := n.Persistence.Get(ctx, n.ID, n.Name)
	if err != nil {
		return err
	}

	if n.JSON {
		b, err := json.MarshalIndent(p, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	}

	cells, err := p.Cells()
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	if n.ShowID {
		pp.Title(p.Name + " (" + p.ID + ")")
	} else {
		pp.Title(p.Name)
	}
	pp.Grid(viewmodel.Build(cells))
	return nil
}
