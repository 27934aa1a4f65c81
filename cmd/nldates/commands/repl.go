package commands

import (
	"bufio"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"

	"github.com/teranos/nldates/am"
	"github.com/teranos/nldates/dates"
	"github.com/teranos/nldates/display"
	"github.com/teranos/nldates/logger"
	"github.com/teranos/nldates/temporal"
)

func newReplCmd() *cobra.Command {
	var (
		pf    parserFlags
		watch bool
	)

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Resolve phrases line by line from stdin",
		Long: `Read one phrase per line and print the resolved date. Phrases naming a
time of day use parser.datetime_format. An unparseable line prints
"Invalid date" with the reason and the loop continues. "quit" or EOF ends it.

With --watch, saved edits to the config files apply from the next line on.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parser, err := pf.newParser(cmd, activeConfig)
			if err != nil {
				return err
			}
			ref, err := pf.reference(parser)
			if err != nil {
				return err
			}

			var current atomic.Pointer[dates.Parser]
			current.Store(parser)

			if watch {
				stop, err := watchConfig(cmd, &pf, &current)
				if err != nil {
					return err
				}
				defer stop()
			}
			return runRepl(cmd, &current, ref)
		},
	}

	pf.register(cmd)
	cmd.Flags().BoolVar(&watch, "watch", false, "Reload configuration when config files change")
	return cmd
}

func runRepl(cmd *cobra.Command, current *atomic.Pointer[dates.Parser], ref time.Time) error {
	out := cmd.OutOrStdout()
	asJSON := display.ShouldOutputJSON(cmd)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}

		res, err := current.Load().ParseAuto(line, ref)
		if err != nil {
			return err
		}

		switch {
		case asJSON:
			if err := display.OutputJSON(out, newParseOutput(line, res.FormattedString, res)); err != nil {
				return err
			}
		case res.Valid:
			fmt.Fprintln(out, res.FormattedString)
		default:
			fmt.Fprintf(out, "%s: %v\n", dates.InvalidDate, res.Reason)
		}
	}
	return scanner.Err()
}

// watchConfig swaps in a new parser and resolver environment whenever a
// config file changes. The returned func stops the watcher.
func watchConfig(cmd *cobra.Command, pf *parserFlags, current *atomic.Pointer[dates.Parser]) (func(), error) {
	log := logger.LoggerFromContext(cmd.Context())

	var opts []am.WatcherOption
	paths := am.ConfigPaths()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		paths = []string{path}
		opts = append(opts, am.WithLoader(func() (*am.Config, error) { return am.LoadFromFile(path) }))
	}
	if len(paths) == 0 {
		log.Warnw("No config files to watch, --watch has no effect")
		return func() {}, nil
	}

	cw, err := am.NewConfigWatcher(paths, opts...)
	if err != nil {
		return nil, err
	}

	localeFlag, _ := cmd.Flags().GetString("locale")
	cw.OnReload(func(cfg *am.Config) error {
		local := *cfg
		if localeFlag != "" {
			local.Locale.Tag = localeFlag
		}
		if err := temporal.Reinitialize(local.LocaleConfig()); err != nil {
			return err
		}
		parser, err := pf.newParser(cmd, &local)
		if err != nil {
			return err
		}
		current.Store(parser)
		log.Infow("Parser reloaded",
			logger.FieldWeekStart, local.Parser.WeekStart,
			logger.FieldFormat, local.Parser.Format)
		return nil
	})
	cw.Start()

	return func() {
		if err := cw.Stop(); err != nil {
			log.Warnw("Failed to stop config watcher", logger.FieldError, err)
		}
	}, nil
}
