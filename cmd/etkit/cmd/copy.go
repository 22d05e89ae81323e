package cmd

import (
	"github.com/spf13/cobra"
)

func newCopyCmd(opts *options) *cobra.Command {
	copyCmd := &cobra.Command{
		Use:   "copy [numbers...]",
		Short: "Copy the numbers matching the rule",
		Long: `Copies every number that satisfies the rule given with --where, in input order.

With --capacity the matches are collected into a fixed buffer of that size.
More matches than the buffer holds is an error and nothing is printed.

Examples:
  etkit copy --where odd 1 2 3 4 5
  etkit copy --where even --capacity 2 2 4 6`,
		RunE: opts.runAggregation("copy"),
	}

	copyCmd.Flags().IntVar(&opts.capacity, "capacity", 0, "fixed buffer size (0: unbounded, negative is rejected)")

	return copyCmd
}
