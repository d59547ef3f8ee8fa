package options

import (
	"github.com/spf13/cobra"
)

// ListOptions
type ListOptions struct {
	Skip  int
	Limit int
	All   bool
}

func AddListArgs(cmd *cobra.Command, o *ListOptions) {
	cmd.Flags().IntVar(&o.Skip, "skip", 0,
		"Skip the first N processes.")
	cmd.Flags().IntVar(&o.Limit, "limit", 100,
		"Limit the number of processes listed.")
	cmd.Flags().BoolVar(&o.All, "all", false,
		"Include deactivated processes.")
}
