package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teranos/nldates/dates"
	"github.com/teranos/nldates/display"
	"github.com/teranos/nldates/logger"
	"github.com/teranos/nldates/temporal"
)

// parseOutput is the JSON shape of one resolved phrase
type parseOutput struct {
	Phrase string `json:"phrase"`
	Text   string `json:"text,omitempty"`
	dates.Result
	Interpretation *temporal.Interpretation `json:"interpretation,omitempty"`
	Error          string                   `json:"error,omitempty"`
}

func newParseOutput(phrase, text string, res dates.Result) parseOutput {
	out := parseOutput{Phrase: phrase, Text: text, Result: res}
	if res.Reason != nil {
		out.Error = res.Reason.Error()
	}
	if interp, ok := temporal.Classify(phrase); ok && res.Valid {
		out.Interpretation = &interp
	}
	return out
}

func newParseCmd() *cobra.Command {
	var (
		pf       parserFlags
		timeOnly bool
		auto     bool
		mode     string
	)

	cmd := &cobra.Command{
		Use:   "parse <phrase...>",
		Short: "Resolve a phrase and print the formatted date",
		Long: `Resolve a natural-language phrase and print it with the configured format.

Arguments are joined with spaces, so quoting is optional. An unparseable
phrase prints the reason to stderr and exits non-zero.

Examples:
  nldates parse tomorrow
  nldates parse next friday --ref 2024-06-12
  nldates parse "in 2 hours" --auto
  nldates parse "next week" --week-start monday
  nldates parse "friday" --mode link     # [friday](2024-06-14)`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			phrase := strings.Join(args, " ")

			parser, err := pf.newParser(cmd, activeConfig)
			if err != nil {
				return err
			}
			ref, err := pf.reference(parser)
			if err != nil {
				return err
			}

			var (
				text string
				res  dates.Result
			)
			switch {
			case cmd.Flags().Changed("mode"):
				m, err := dates.ParseMode(mode)
				if err != nil {
					return err
				}
				text, res, err = parser.Insert(phrase, m, ref)
				if err != nil {
					return err
				}
			case auto:
				if res, err = parser.ParseAuto(phrase, ref); err != nil {
					return err
				}
				text = res.FormattedString
			case timeOnly:
				if res, err = parser.ParseAt(phrase, parser.Options().TimeFormat, ref); err != nil {
					return err
				}
				text = res.FormattedString
			default:
				if res, err = parser.ParseAt(phrase, parser.Options().Format, ref); err != nil {
					return err
				}
				text = linkedText(parser, res)
			}

			logger.LoggerFromContext(cmd.Context()).Debugw("phrase resolved",
				logger.FieldPhrase, phrase,
				logger.FieldRule, res.Rule,
				"valid", res.Valid)

			if display.ShouldOutputJSON(cmd) {
				if err := display.OutputJSON(cmd.OutOrStdout(), newParseOutput(phrase, text, res)); err != nil {
					return err
				}
			} else if res.Valid {
				fmt.Fprintln(cmd.OutOrStdout(), text)
			}

			if !res.Valid {
				return res.Reason
			}
			return nil
		},
	}

	pf.register(cmd)
	cmd.Flags().BoolVar(&timeOnly, "time", false, "Format with parser.time_format")
	cmd.Flags().BoolVar(&auto, "auto", false, "Use parser.datetime_format when the phrase names a time of day")
	cmd.Flags().StringVar(&mode, "mode", "", "Print the text an editor would insert: replace, link, clean, time")
	cmd.MarkFlagsMutuallyExclusive("time", "auto", "mode")
	return cmd
}

// linkedText applies the link option to a plain date result
func linkedText(p *dates.Parser, res dates.Result) string {
	if res.Valid && p.Options().Link {
		return "[[" + res.FormattedString + "]]"
	}
	return res.FormattedString
}
