package commands

import (
	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/menu"
)

func newMenuCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer a.close()

			sess := a.open(cmd.ErrOrStderr())
			return menu.New(sess, a.cats, a.format, cmd.InOrStdin(), cmd.OutOrStdout()).Run()
		},
	}
}
