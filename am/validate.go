package am

import (
	"strings"

	"github.com/teranos/nldates/errors"
	"github.com/teranos/nldates/format"
	"github.com/teranos/nldates/locale"
	"github.com/teranos/nldates/temporal"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if _, err := temporal.ParseWeekStartPolicy(c.Parser.WeekStart); err != nil {
		return errors.Wrap(err, "parser.week_start")
	}

	if _, err := format.ParseSyntax(c.Parser.FormatSyntax); err != nil {
		return errors.Wrap(err, "parser.format_syntax")
	}

	// Empty patterns fall back to defaults; whitespace-only ones would render nothing
	for key, pattern := range map[string]string{
		"parser.format":          c.Parser.Format,
		"parser.time_format":     c.Parser.TimeFormat,
		"parser.datetime_format": c.Parser.DateTimeFormat,
	} {
		if pattern != "" && strings.TrimSpace(pattern) == "" {
			return errors.NewInvalidConfigurationError("%s cannot be blank", key)
		}
	}

	// Empty tag = detect from environment
	if strings.TrimSpace(c.Locale.Tag) != "" {
		if _, err := locale.Parse(c.Locale.Tag); err != nil {
			return errors.Wrap(err, "locale.tag")
		}
	}

	if c.Log.Verbosity < 0 {
		return errors.NewInvalidConfigurationError("log.verbosity must be >= 0, got %d", c.Log.Verbosity)
	}

	return nil
}
