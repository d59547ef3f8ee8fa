package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/gridform/pkg/commands/options"
	"tableflip.dev/gridform/pkg/runner/get"
	"tableflip.dev/gridform/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	po := &options.ProcessOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "get [NAME]",
		Short: "Show a process grid.",
		Example: `
gridform get onboarding
gridform get --id 7f9c35f2 --json
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
			s := get.Get{
				ID:          po.ID,
				Name:        po.Name,
				ShowID:      io.ShowID,
				JSON:        oo.JSON,
				Persistence: p,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddProcessArgs(cmd, po)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
