package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/gridform/pkg/commands/options"
	"tableflip.dev/gridform/pkg/runner/search"
	"tableflip.dev/gridform/pkg/store"
)

func addSearch(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "search TERM",
		Short: "Search processes by name, description, or grid content.",
		Example: `
gridform search intake
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Open(nil)
			if err != nil {
				return err
			}
			s := search.Search{
				Term:        strings.Join(args, " "),
				ShowID:      io.ShowID,
				Persistence: p,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
