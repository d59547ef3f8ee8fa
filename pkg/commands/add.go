package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/gridform/pkg/commands/options"
	"tableflip.dev/gridform/pkg/runner/add"
	"tableflip.dev/gridform/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a cell to a process grid",
		Example: `
gridform add below 1.0 -p onboarding
gridform add right 1.0 -p onboarding --label review
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addAddBelow(cmd)
	addAddRight(cmd)

	topLevel.AddCommand(cmd)
}

func addAddBelow(topLevel *cobra.Command) {
	addAddDirection(topLevel, "below", false,
		"Insert a new row directly below the cell; rows underneath shift down.")
}

func addAddRight(topLevel *cobra.Command) {
	addAddDirection(topLevel, "right", true,
		"Create the column to the right of the cell at the same row level.")
}

func addAddDirection(topLevel *cobra.Command, noun string, right bool, long string) {
	po := &options.ProcessOptions{}
	co := &options.CoordinateOptions{}
	label := ""

	cmd := &cobra.Command{
		Use:   noun + " COORDINATE",
		Short: "Add a cell " + noun + " the given coordinate.",
		Long:  long,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("expected exactly one coordinate, like 1.0")
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
			s := add.Add{
				ID:          po.ID,
				Name:        po.Name,
				At:          at,
				Right:       right,
				Label:       label,
				Persistence: p,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddProcessArgs(cmd, po)
	cmd.Flags().StringVar(&label, "label", "",
		"Label for the new cell.")

	topLevel.AddCommand(cmd)
}
