package commands

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/teranos/nldates/am"
	"github.com/teranos/nldates/dates"
	"github.com/teranos/nldates/errors"
	"github.com/teranos/nldates/temporal"
)

// parserFlags are the overrides every resolving command accepts
type parserFlags struct {
	weekStart string
	format    string
	ref       string
	link      bool
}

func (f *parserFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.weekStart, "week-start", "", "Week-start policy: sunday..saturday or locale-default")
	cmd.Flags().StringVar(&f.format, "format", "", "Output pattern overriding parser.format")
	cmd.Flags().StringVar(&f.ref, "ref", "", "Reference instant as any phrase nldates understands (default now)")
	cmd.Flags().BoolVar(&f.link, "link", false, "Wrap dates in [[wikilinks]]")
}

// newParser builds a facade parser from cfg with the flag overrides applied
func (f *parserFlags) newParser(cmd *cobra.Command, cfg *am.Config) (*dates.Parser, error) {
	opts := cfg.DateOptions()
	if f.weekStart != "" {
		opts.WeekStart = temporal.WeekStartPolicy(f.weekStart)
	}
	if f.format != "" {
		opts.Format = f.format
	}
	if cmd.Flags().Changed("link") {
		opts.Link = f.link
	}
	return dates.New(opts)
}

// reference resolves --ref. "2024-06-12", "2024-06-12T09:00:00+02:00" and
// "last friday" are all accepted; empty means now.
func (f *parserFlags) reference(p *dates.Parser) (time.Time, error) {
	if strings.TrimSpace(f.ref) == "" {
		return time.Time{}, nil
	}
	res, err := temporal.Resolve(f.ref, time.Time{}, p.Options().WeekStart)
	if err != nil {
		return time.Time{}, err
	}
	if !res.Valid() {
		return time.Time{}, errors.Wrap(res.Reason, "--ref")
	}
	return res.Time, nil
}
