package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teranos/nldates/display"
	"github.com/teranos/nldates/temporal"
)

type weekStartOutput struct {
	Policy    temporal.WeekStartPolicy `json:"policy"`
	Locale    string                   `json:"locale"`
	WeekStart string                   `json:"week_start"`
}

func newWeekStartCmd() *cobra.Command {
	var (
		policy string
		list   bool
	)

	cmd := &cobra.Command{
		Use:   "weekstart",
		Short: "Show the effective first day of the week",
		Long: `Show which weekday starts the week for "this week", "next week" and
"last week". locale-default follows the locale (the fw Unicode extension,
then the region).

Examples:
  nldates weekstart
  nldates weekstart --locale en-GB
  nldates weekstart --list`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := temporal.NewEnvironment(activeConfig.LocaleConfig())
			if err != nil {
				return err
			}
			tag := env.Locale().String()

			policies := []temporal.WeekStartPolicy{temporal.WeekStartPolicy(policy)}
			if policy == "" {
				policies[0] = temporal.WeekStartPolicy(activeConfig.Parser.WeekStart)
			}
			if list {
				policies = temporal.Policies()
			}

			outputs := make([]weekStartOutput, 0, len(policies))
			for _, p := range policies {
				parsed, err := temporal.ParseWeekStartPolicy(string(p))
				if err != nil {
					return err
				}
				day, err := temporal.ResolveWeekStart(parsed, tag)
				if err != nil {
					return err
				}
				outputs = append(outputs, weekStartOutput{
					Policy:    parsed,
					Locale:    tag,
					WeekStart: strings.ToLower(day.String()),
				})
			}

			if display.ShouldOutputJSON(cmd) {
				if list {
					return display.OutputJSON(cmd.OutOrStdout(), outputs)
				}
				return display.OutputJSON(cmd.OutOrStdout(), outputs[0])
			}
			if !list {
				fmt.Fprintln(cmd.OutOrStdout(), outputs[0].WeekStart)
				return nil
			}
			for _, out := range outputs {
				fmt.Fprintf(cmd.OutOrStdout(), "%-15s %s\n", out.Policy, out.WeekStart)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&policy, "week-start", "", "Week-start policy to resolve (default parser.week_start)")
	cmd.Flags().BoolVar(&list, "list", false, "Resolve every policy for the active locale")
	return cmd
}
