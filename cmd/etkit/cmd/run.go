package cmd

import (
	"github.com/spf13/cobra"

	etkerrors "github.com/msto63/etkit/core/errors"
	"github.com/msto63/etkit/core/log"
	"github.com/msto63/etkit/internal/report"
)

// runAggregation is the shared RunE of the aggregation subcommands
func (o *options) runAggregation(op string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if o.capacity < 0 {
			return etkerrors.InvalidArgument(etkerrors.ModuleCLI, op, "capacity", "capacity >= 0")
		}

		tokens, err := readTokens(args, cmd.InOrStdin())
		if err != nil {
			return err
		}

		logger := o.logger.WithFields(log.Fields{
			"operation": op,
			"rule":      o.rule.String(),
		})
		logger.Trace("input read", log.Int("tokens", len(tokens)), log.Bool("from_stdin", len(args) == 0))

		timer := logger.StartTimer(op).WithField("input", len(tokens))

		result, err := aggregate(op, tokens, o.rule, o.decimal, o.precision, o.capacity)
		if err != nil {
			timer.StopWithError(err)
			return err
		}
		timer.WithField("matched", result.Matched).WithField("mode", result.Mode).Stop()

		result.RunID = o.runID
		result.Rule = o.rule.String()
		return report.NewRenderer(cmd.OutOrStdout(), o.format).Render(result)
	}
}
