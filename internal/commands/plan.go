package commands

import (
	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/report"
)

func newPlanCommand(opts *rootOptions) *cobra.Command {
	var price, months string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Work out the monthly saving needed to buy an item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer a.close()

			sess := a.open(cmd.ErrOrStderr())
			goal, err := sess.Plan(price, months)
			if err != nil {
				return err
			}
			return report.WriteGoal(cmd.OutOrStdout(), goal, a.format)
		},
	}

	cmd.Flags().StringVar(&price, "price", "", "item price (required)")
	cmd.Flags().StringVar(&months, "months", "", "months until the purchase (required)")
	_ = cmd.MarkFlagRequired("price")
	_ = cmd.MarkFlagRequired("months")

	return cmd
}
