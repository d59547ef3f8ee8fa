package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/gridform/pkg/commands/options"
	"tableflip.dev/gridform/pkg/runner/del"
	"tableflip.dev/gridform/pkg/store"
)

func addDelete(topLevel *cobra.Command) {
	po := &options.ProcessOptions{}
	hard := false

	cmd := &cobra.Command{
		Use:   "delete [NAME]",
		Short: "Deactivate a process, or erase it with --hard.",
		Example: `
gridform delete onboarding
gridform delete onboarding --hard
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
			s := del.Delete{
				ID:          po.ID,
				Name:        po.Name,
				Hard:        hard,
				Persistence: p,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddProcessArgs(cmd, po)
	cmd.Flags().BoolVar(&hard, "hard", false,
		"Erase the process instead of deactivating it.")

	topLevel.AddCommand(cmd)
}
