package search

import (
	"context"
	"errors"

	"tableflip.dev/gridform/pkg/printers"
	"tableflip.dev/gridform/pkg/store"
)

type Search struct {
	Term   string
	ShowID bool

	Persistence store.Persistence
}

func (n *Search) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not search, no persistence")
	}

	all, err := n.Persistence.Search(ctx, n.Term)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.TitleWithCount(n.Term, len(all))
	pp.Processes(all)
	return nil
}
