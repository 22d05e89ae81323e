package cmd

import (
	"github.com/spf13/cobra"
)

func newUniqueCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "unique [numbers...]",
		Short: "Report whether exactly one number matches the rule",
		Long: `Checks whether exactly one number satisfies the rule given with --where.

Examples:
  etkit unique --where zero 0 1 2
  etkit unique --where "eq:7" 7 7`,
		RunE: opts.runAggregation("unique"),
	}
}
