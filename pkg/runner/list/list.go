package list

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"tableflip.dev/gridform/pkg/printers"
	"tableflip.dev/gridform/pkg/store"
)

type List struct {
	Skip       int
	Limit      int
	ActiveOnly bool
	ShowID     bool
	JSON       bool

	Persistence store.Persistence
}

func (n *List) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not list, no persistence")
	}

	all, err := n.Persistence.List(ctx, store.ListOptions{
		Skip:       n.Skip,
		Limit:      n.Limit,
		ActiveOnly: n.ActiveOnly,
	})
	if err != nil {
		return err
	}

	if n.JSON {
		b, err := json.MarshalIndent(all, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(b))
		return nil
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.TitleWithCount("Processes", len(all))
	pp.Processes(all)
	return nil
}
