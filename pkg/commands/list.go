package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/gridform/pkg/commands/options"
	"tableflip.dev/gridform/pkg/runner/list"
	"tableflip.dev/gridform/pkg/store"
)

func addList(topLevel *cobra.Command) {
	lo := &options.ListOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List processes.",
		Example: `
gridform list
gridform list --all --limit 20
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Open(nil)
			if err != nil {
				return err
			}
			s := list.List{
				Skip:        lo.Skip,
				Limit:       lo.Limit,
				ActiveOnly:  !lo.All,
				ShowID:      io.ShowID,
				JSON:        oo.JSON,
				Persistence: p,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddListArgs(cmd, lo)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
