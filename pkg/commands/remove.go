package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/gridform/pkg/commands/options"
	"tableflip.dev/gridform/pkg/runner/remove"
	"tableflip.dev/gridform/pkg/store"
)

func addRemove(topLevel *cobra.Command) {
	po := &options.ProcessOptions{}
	co := &options.CoordinateOptions{}

	cmd := &cobra.Command{
		Use:   "remove COORDINATE",
		Short: "Remove a cell from a process grid.",
		Long: "Remove the cell at the coordinate. Removing a column's top row " +
			"(sub 0) removes the whole column and renumbers the rest.",
		Example: `
gridform remove 1.2 -p onboarding
gridform remove 2.0 -p onboarding
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("expected exactly one coordinate, like 1.2")
			}
			co.AtString = args[0]
			_, err := co.GetAt()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			at, err := co.GetAt()
			if err != nil {
				return err
			}
			p, err := store.Open(nil)
			if err != nil {
				return err
			}
			s := remove.Remove{
				ID:          po.ID,
				Name:        po.Name,
				At:          at,
				Persistence: p,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddProcessArgs(cmd, po)

	topLevel.AddCommand(cmd)
}
