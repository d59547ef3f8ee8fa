package options

import (
	"github.com/spf13/cobra"
)

// ProcessOptions selects the process a command operates on, by name or by
// stored identifier.
type ProcessOptions struct {
	ID   string
	Name string
}

// AddProcessArgs wires process selection flags on the provided command.
func AddProcessArgs(cmd *cobra.Command, o *ProcessOptions) {
	cmd.Flags().StringVarP(&o.Name, "process", "p", "",
		"Specify the process by name.")
	cmd.Flags().StringVar(&o.ID, "id", "",
		"Specify the process by id.")
}
