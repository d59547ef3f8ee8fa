package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/gridform/pkg/commands/options"
)

var (
	oo = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "gridform",
		Short: "Process grids on the command line.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addNew(topLevel)
	addAdd(topLevel)
	addRemove(topLevel)
	addGet(topLevel)
	addList(topLevel)
	addSearch(topLevel)
	addDelete(topLevel)
	addUI(topLevel)
	addVersion(topLevel)
}
