package cmd

import (
	"github.com/spf13/cobra"
)

func newSumCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "sum [numbers...]",
		Short: "Sum the numbers matching the rule",
		Long: `Adds up every number that satisfies the rule given with --where.
No match gives 0.

Examples:
  etkit sum 1 2 3 4
  etkit sum --where even 1 2 3 4
  seq 1 100 | etkit sum -w "gt:10,odd"
  etkit sum --decimal 0.1 0.2`,
		RunE: opts.runAggregation("sum"),
	}
}
