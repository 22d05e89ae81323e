package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/etkit/core/config"
	"github.com/msto63/etkit/core/log"
	"github.com/msto63/etkit/internal/report"
	"github.com/msto63/etkit/internal/rule"
)

const appName = "etkit"

// options carries flags and the state prepared before a subcommand runs
type options struct {
	cfgFile   string
	verbose   bool
	logLevel  string
	logFormat string

	where     string
	decimal   bool
	output    string
	precision int
	capacity  int

	cfg    *config.Config
	logger *log.Logger
	runID  string
	rule   *rule.Rule
	format report.Format
}

func newRootCmd() (*cobra.Command, *options) {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "Conditional aggregation over numbers",
		Long: `etkit sums, averages, matches and copies the numbers that satisfy a rule.

Numbers are taken from the arguments or, when none are given, from stdin.
Integers, floats and exact decimals (--decimal) are supported.

Rules:
  all, even, odd, positive, negative, zero, nonzero
  eq:N, ne:N, gt:N, ge:N, lt:N, le:N, between:A:B
  not:<rule>, @name (from the [rules] table of the config file)
  terms joined by "," must all hold`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: opts.setup,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (default: etkit.toml or etkit.yaml in ., ./config, ~/.config/etkit)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output (debug logging)")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level: trace, debug, info, warn, error")
	flags.StringVar(&opts.logFormat, "log-format", "auto", "log format: auto, console, text, logfmt, json")
	flags.StringVarP(&opts.where, "where", "w", "all", "rule selecting the numbers to aggregate")
	flags.BoolVar(&opts.decimal, "decimal", false, "treat numbers as exact decimals")
	flags.StringVarP(&opts.output, "output", "o", "text", "output format: text, json, yaml")
	flags.IntVar(&opts.precision, "precision", -1, "decimal places for float and decimal results (-1: exact)")

	rootCmd.AddCommand(
		newSumCmd(opts),
		newAvgCmd(opts),
		newUniqueCmd(opts),
		newCopyCmd(opts),
		newVersionCmd(),
	)

	return rootCmd, opts
}

// Execute runs the etkit command line
func Execute() error {
	rootCmd, opts := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		if opts.logger != nil {
			opts.logger.LogError(err)
		}
		printError(rootCmd, err)
		return err
	}
	return nil
}

// setup loads the configuration and prepares logger, rule and output format.
// Flags given on the command line win over the configuration file.
func (o *options) setup(cmd *cobra.Command, args []string) error {
	var err error
	if o.cfgFile != "" {
		o.cfg, err = config.LoadWithOptions(o.cfgFile, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: appName,
		})
	} else {
		o.cfg, err = config.Discover(config.DefaultDiscoveryOptions(appName))
	}
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	resolve := func(flag, key string, value *string) {
		if !flags.Changed(flag) {
			*value = o.cfg.GetString(key, *value)
		}
	}
	resolve("log-level", "log.level", &o.logLevel)
	resolve("log-format", "log.format", &o.logFormat)
	resolve("output", "output.format", &o.output)
	resolve("where", "defaults.where", &o.where)
	if !flags.Changed("precision") {
		o.precision = o.cfg.GetInt("output.precision", o.precision)
	}

	level, err := log.ParseLevel(o.logLevel)
	if err != nil {
		return err
	}
	if o.verbose && level > log.LevelDebug {
		level = log.LevelDebug
	}
	logFormat, err := log.ParseFormat(o.logFormat)
	if err != nil {
		return err
	}

	o.runID = uuid.NewString()
	o.logger = log.NewWithConfig(log.Config{
		Level:  level,
		Format: logFormat,
		Output: cmd.ErrOrStderr(),
		Name:   appName,
	}).WithCorrelationID(o.runID)

	if o.format, err = report.ParseFormat(o.output); err != nil {
		return err
	}

	if o.rule, err = rule.NewRegistry(o.cfg.GetStringMap("rules")).Parse(o.where); err != nil {
		return err
	}

	if o.logger.IsLevelEnabled(log.LevelDebug) {
		o.logger.Debug("configuration loaded", log.Fields{
			"config":      o.cfg.FilePath(),
			"rule":        o.rule.String(),
			"named_rules": o.cfg.Keys("rules"),
			"output":      string(o.format),
		}, log.Bool("decimal", o.decimal))
	}
	return nil
}

func printError(cmd *cobra.Command, err error) {
	out := cmd.ErrOrStderr()
	if out == nil {
		out = os.Stderr
	}
	fmt.Fprintf(out, "Error: %v\n", err)
}
