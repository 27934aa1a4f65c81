// Package dates is the integration facade over the resolver: it resolves a
// phrase, formats the instant with the configured pattern and produces the
// strings an editor would insert.
package dates

import (
	"time"

	"go.uber.org/zap"

	"github.com/teranos/nldates/errors"
	"github.com/teranos/nldates/format"
	"github.com/teranos/nldates/logger"
	"github.com/teranos/nldates/temporal"
)

// InvalidDate is the formatted string of an unparseable phrase
const InvalidDate = "Invalid date"

// timeNow is a variable that can be mocked for testing
var timeNow = time.Now

// Options are the user-facing settings the facade formats with.
type Options struct {
	Format         string
	TimeFormat     string
	DateTimeFormat string
	Separator      string
	WeekStart      temporal.WeekStartPolicy
	Syntax         format.Syntax
	// Link wraps inserted dates in [[wikilink]] brackets
	Link bool
	// Environment resolves without the process-wide environment when set
	Environment *temporal.Environment
}

// DefaultOptions returns the settings a fresh install starts with
func DefaultOptions() Options {
	return Options{
		Format:         format.DefaultDateFormat,
		TimeFormat:     format.DefaultTimeFormat,
		DateTimeFormat: format.DefaultDateTimeFormat,
		Separator:      " ",
		WeekStart:      temporal.WeekStartLocaleDefault,
		Syntax:         format.SyntaxMoment,
	}
}

// Result mirrors what an editor integration consumes: the formatted string,
// the instant and whether the phrase resolved.
type Result struct {
	FormattedString string        `json:"formatted"`
	Date            time.Time     `json:"date"`
	Valid           bool          `json:"valid"`
	Rule            string        `json:"rule,omitempty"`
	Kind            temporal.Kind `json:"kind"`
	// Reason explains an invalid result
	Reason error `json:"-"`
}

// Parser resolves and formats phrases with fixed options.
type Parser struct {
	opts      Options
	formatter format.Formatter
	logger    *zap.SugaredLogger
}

// New validates the options and returns a Parser.
func New(opts Options) (*Parser, error) {
	policy, err := temporal.ParseWeekStartPolicy(string(opts.WeekStart))
	if err != nil {
		return nil, errors.Wrap(err, "parser.week_start")
	}
	opts.WeekStart = policy

	syntax, err := format.ParseSyntax(string(opts.Syntax))
	if err != nil {
		return nil, errors.Wrap(err, "parser.format_syntax")
	}
	opts.Syntax = syntax

	defaults := DefaultOptions()
	if opts.Format == "" {
		opts.Format = defaults.Format
	}
	if opts.TimeFormat == "" {
		opts.TimeFormat = defaults.TimeFormat
	}
	if opts.DateTimeFormat == "" {
		opts.DateTimeFormat = defaults.DateTimeFormat
	}

	return &Parser{
		opts:      opts,
		formatter: format.New(syntax),
		logger:    logger.ComponentLogger("dates"),
	}, nil
}

// Options returns the validated options
func (p *Parser) Options() Options {
	return p.opts
}

// Parse resolves phrase against the current time and formats it with pattern.
func (p *Parser) Parse(phrase, pattern string) (Result, error) {
	return p.ParseAt(phrase, pattern, time.Time{})
}

// ParseAt resolves phrase against ref (zero means now). An unparseable phrase
// yields Valid=false and the "Invalid date" string, not an error.
func (p *Parser) ParseAt(phrase, pattern string, ref time.Time) (Result, error) {
	res, err := p.resolve(phrase, ref)
	if err != nil {
		return Result{}, err
	}
	return p.render(phrase, pattern, res), nil
}

// ParseDate formats with the date format
func (p *Parser) ParseDate(phrase string) (Result, error) {
	return p.Parse(phrase, p.opts.Format)
}

// ParseTime formats with the time format
func (p *Parser) ParseTime(phrase string) (Result, error) {
	return p.Parse(phrase, p.opts.TimeFormat)
}

// ParseAuto formats with the date-time format when the phrase names a time
// of day ("tomorrow at 3pm", "in 2 hours") and the date format otherwise.
func (p *Parser) ParseAuto(phrase string, ref time.Time) (Result, error) {
	res, err := p.resolve(phrase, ref)
	if err != nil {
		return Result{}, err
	}
	pattern := p.opts.Format
	if carriesClock(phrase) {
		pattern = p.opts.DateTimeFormat
	}
	return p.render(phrase, pattern, res), nil
}

func (p *Parser) resolve(phrase string, ref time.Time) (temporal.Result, error) {
	req := temporal.Request{Phrase: phrase, Reference: ref, WeekStart: p.opts.WeekStart}
	if p.opts.Environment != nil {
		return p.opts.Environment.Resolve(req)
	}
	return temporal.ResolveRequest(req)
}

func (p *Parser) render(phrase, pattern string, res temporal.Result) Result {
	if res.Unparseable {
		p.logger.Debugw("phrase can't be parsed",
			logger.FieldPhrase, phrase,
			logger.FieldError, res.Reason)
		return Result{FormattedString: InvalidDate, Kind: res.Kind, Rule: res.Rule, Reason: res.Reason}
	}
	return Result{
		FormattedString: p.formatter.Format(res.Time, pattern),
		Date:            res.Time,
		Valid:           true,
		Rule:            res.Rule,
		Kind:            res.Kind,
	}
}

// carriesClock reports whether a phrase resolves to a time of day rather
// than midnight.
func carriesClock(phrase string) bool {
	interp, ok := temporal.Classify(phrase)
	if !ok {
		return false
	}
	switch interp.Kind {
	case temporal.KindClock, temporal.KindDateAtClock:
		return true
	case temporal.KindRelative:
		return interp.Unit == temporal.UnitHour || interp.Unit == temporal.UnitMinute
	case temporal.KindInstant:
		return len(interp.Literal) > len("2006-01-02")
	}
	return false
}
