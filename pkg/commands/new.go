package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/gridform/pkg/commands/options"
	"tableflip.dev/gridform/pkg/runner/create"
	"tableflip.dev/gridform/pkg/store"
)

func addNew(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	description := ""

	cmd := &cobra.Command{
		Use:   "new NAME",
		Short: "Create a process with the minimal grid.",
		Example: `
gridform new onboarding
gridform new "order intake" -d "order entry flow"
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Open(nil)
			if err != nil {
				return err
			}
			s := create.Create{
				Name:        strings.Join(args, " "),
				Description: description,
				ShowID:      io.ShowID,
				Persistence: p,
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "",
		"Describe the process.")
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
