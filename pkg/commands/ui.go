package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/gridform/pkg/commands/options"
	"tableflip.dev/gridform/pkg/runner/ui"
	"tableflip.dev/gridform/pkg/store"
)

func addUI(topLevel *cobra.Command) {
	po := &options.ProcessOptions{}

	cmd := &cobra.Command{
		Use:   "ui [NAME]",
		Short: "Edit a process grid interactively.",
		Example: `
gridform ui onboarding
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				po.Name = strings.Join(args, " ")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Open(nil)
			if err != nil {
				return err
			}
			s := ui.UI{
				ID:          po.ID,
				Name:        po.Name,
				Persistence: p,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddProcessArgs(cmd, po)

	topLevel.AddCommand(cmd)
}
