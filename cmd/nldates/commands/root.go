// Package commands implements the nldates command line.
package commands

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/teranos/nldates/am"
	"github.com/teranos/nldates/errors"
	"github.com/teranos/nldates/logger"
	"github.com/teranos/nldates/temporal"
)

// skipResolver marks commands that run without an initialized resolver
const skipResolver = "skip-resolver"

// activeConfig is the configuration loaded for the running command
var activeConfig *am.Config

// NewRootCmd builds the nldates command tree
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "nldates",
		Short: "Resolve natural-language date phrases",
		Long: `nldates - Natural language date resolver.

Turns phrases like "tomorrow", "in 3 days", "next monday at 9am" or
"2024-06-12" into instants and formats them for notes and scripts.

Available commands:
  parse     - Resolve a phrase and print the formatted date
  now       - Print the current date and time
  today     - Print today's date
  time      - Print the current time
  weekstart - Show the effective first day of the week
  repl      - Resolve phrases line by line from stdin
  am        - Manage nldates configuration ("I am")

Examples:
  nldates parse tomorrow
  nldates parse "next week" --week-start monday
  nldates parse "in 2 hours" --auto --json
  nldates am where`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}

	root.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	root.PersistentFlags().Bool("json", false, "Output as JSON")
	root.PersistentFlags().String("locale", "", "Locale tag overriding locale.tag (e.g. en-GB, de_DE.UTF-8)")
	root.PersistentFlags().String("config", "", "Read configuration from this file instead of the cascade")

	root.AddCommand(
		newParseCmd(),
		newNowCmd(),
		newTodayCmd(),
		newTimeCmd(),
		newWeekStartCmd(),
		newReplCmd(),
		newAmCmd(),
		newVersionCmd(),
	)
	return root
}

// setup loads configuration, configures logging and installs the resolver
// environment before any subcommand runs
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	verbosity, _ := cmd.Flags().GetCount("verbose")
	if cfg.Log.Verbosity > verbosity {
		verbosity = cfg.Log.Verbosity
	}
	if err := logger.InitializeWithVerbosity(cfg.Log.JSON, verbosity); err != nil {
		return errors.Wrap(err, "failed to initialize logger")
	}

	ctx := logger.WithTraceID(cmd.Context(), uuid.NewString())
	ctx = logger.WithComponent(ctx, "cli")
	cmd.SetContext(ctx)

	if cmd.Annotations[skipResolver] == "true" {
		return nil
	}

	if err := temporal.Reinitialize(cfg.LocaleConfig()); err != nil {
		return err
	}

	logger.LoggerFromContext(ctx).Debugw("command started",
		logger.FieldOperation, cmd.CommandPath(),
		logger.FieldLocale, cfg.Locale.Tag)
	return nil
}

// loadConfig reads --config or the cascade and applies --locale
func loadConfig(cmd *cobra.Command) (*am.Config, error) {
	var (
		cfg *am.Config
		err error
	)
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		cfg, err = am.LoadFromFile(path)
	} else {
		cfg, err = am.Load()
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}

	// Copy so flag overrides never leak into the cached config
	local := *cfg
	if tag, _ := cmd.Flags().GetString("locale"); tag != "" {
		local.Locale.Tag = tag
	}
	activeConfig = &local
	return activeConfig, nil
}
