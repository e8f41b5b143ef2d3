package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/report"
)

func newAddCommand(opts *rootOptions) *cobra.Command {
	var category, amount, description string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append a record and print the updated totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(opts)
			if err != nil {
				return err
			}
			defer a.close()

			sess := a.open(cmd.ErrOrStderr())
			rec, err := sess.Add(category, amount, description)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Added %s %s\n", rec.Category, a.format.Amount(rec.Amount))
			if !a.cats.CountsTowardSavings(rec.Category) {
				fmt.Fprintf(out, "Note: %s is not counted in expenses or savings.\n", rec.Category)
			}
			return report.WriteTable(out, sess.Report(), sess.Totals(), a.format)
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "category, e.g. Income, Fixed or Variable (required)")
	cmd.Flags().StringVar(&amount, "amount", "", "amount (required)")
	cmd.Flags().StringVar(&description, "description", "", "free-text description")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
