package cmd

import (
	"github.com/spf13/cobra"
)

func newAvgCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "avg [numbers...]",
		Short: "Average the numbers matching the rule",
		Long: `Averages every number that satisfies the rule given with --where.
Integer input uses integer division. When nothing matches there is no
average and the value is reported as none.

Examples:
  etkit avg 1 2 3 4
  etkit avg --where positive -- -5 10 20
  etkit avg --decimal --precision 2 1 2 2`,
		RunE: opts.runAggregation("avg"),
	}
}
