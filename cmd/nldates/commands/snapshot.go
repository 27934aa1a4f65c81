package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/teranos/nldates/dates"
	"github.com/teranos/nldates/display"
)

// snapshotCmd builds a command printing the reference instant itself
func snapshotCmd(use, short string, render func(*dates.Parser, time.Time) string) *cobra.Command {
	var pf parserFlags

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parser, err := pf.newParser(cmd, activeConfig)
			if err != nil {
				return err
			}
			ref, err := pf.reference(parser)
			if err != nil {
				return err
			}

			text := render(parser, ref)
			if display.ShouldOutputJSON(cmd) {
				return display.OutputJSON(cmd.OutOrStdout(), map[string]string{"text": text})
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
	pf.register(cmd)
	return cmd
}

func newNowCmd() *cobra.Command {
	return snapshotCmd("now", "Print the current date and time", (*dates.Parser).Now)
}

func newTodayCmd() *cobra.Command {
	return snapshotCmd("today", "Print today's date", (*dates.Parser).Today)
}

func newTimeCmd() *cobra.Command {
	return snapshotCmd("time", "Print the current time", (*dates.Parser).CurrentTime)
}
