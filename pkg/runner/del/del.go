package del

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/gridform/pkg/store"
)

// Delete deactivates a process, or erases it for good with Hard.
type Delete struct {
	ID   string
	Name string
	Hard bool

	Persistence store.Persistence
}

func (n *Delete) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not delete, no persistence")
	}

	p, err := n.Persistence.Get(ctx, n.ID, n.Name)
	if err != nil {
		return err
	}

	if err := n.Persistence.Delete(ctx, p.ID, n.Hard); err != nil {
		return err
	}

	action := "deactivated"
	if n.Hard {
		action = "deleted"
	}
	fmt.Printf("%s %s\n", p.Name, action)
	return nil
}
