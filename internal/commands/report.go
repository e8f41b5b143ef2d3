package commands

import (
	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/report"
)

func newReportCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print income, expenses and savings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer a.close()

			sess := a.open(cmd.ErrOrStderr())
			return report.WriteTable(cmd.OutOrStdout(), sess.Report(), sess.Totals(), a.format)
		},
	}
}
