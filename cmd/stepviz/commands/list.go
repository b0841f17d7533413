package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepviz/render"
)

func newListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), render.Algorithms(a.reg.List()))

			return err
		},
	}
}
