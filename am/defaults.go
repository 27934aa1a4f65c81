package am

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/teranos/nldates/dates"
	"github.com/teranos/nldates/format"
	"github.com/teranos/nldates/temporal"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Parser defaults mirror a fresh install of the editor plugin
	v.SetDefault("parser.format", format.DefaultDateFormat)
	v.SetDefault("parser.time_format", format.DefaultTimeFormat)
	v.SetDefault("parser.datetime_format", format.DefaultDateTimeFormat)
	v.SetDefault("parser.separator", " ")
	v.SetDefault("parser.week_start", string(temporal.WeekStartLocaleDefault))
	v.SetDefault("parser.format_syntax", string(format.SyntaxMoment))
	v.SetDefault("parser.link", false)

	// Empty tag means detect from the environment
	v.SetDefault("locale.tag", "")

	v.SetDefault("log.json", false)
	v.SetDefault("log.verbosity", 0)
}

// BindEnvVars binds short environment variable aliases next to the
// NLDATES_SECTION_KEY names AutomaticEnv already understands.
// An alias must never equal NLDATES_<SECTION>: AutomaticEnv reads that
// variable as the whole section and shadows every key in it.
func BindEnvVars(v *viper.Viper) {
	v.BindEnv("parser.week_start", EnvPrefix+"_PARSER_WEEK_START", EnvPrefix+"_WEEK_START")
	v.BindEnv("parser.format", EnvPrefix+"_PARSER_FORMAT", EnvPrefix+"_FORMAT")
	v.BindEnv("locale.tag", EnvPrefix+"_LOCALE_TAG", EnvPrefix+"_LANG")
}

// DateOptions converts the parser settings into facade options
func (c *Config) DateOptions() dates.Options {
	return dates.Options{
		Format:         c.Parser.Format,
		TimeFormat:     c.Parser.TimeFormat,
		DateTimeFormat: c.Parser.DateTimeFormat,
		Separator:      c.Parser.Separator,
		WeekStart:      temporal.WeekStartPolicy(c.Parser.WeekStart),
		Syntax:         format.Syntax(c.Parser.FormatSyntax),
		Link:           c.Parser.Link,
	}
}

// LocaleConfig returns the resolver's locale configuration
func (c *Config) LocaleConfig() temporal.LocaleConfig {
	return temporal.LocaleConfig{Tag: c.Locale.Tag}
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf("Config{Parser: {Format: %s, WeekStart: %s, Syntax: %s}, Locale: %q}",
		c.Parser.Format, c.Parser.WeekStart, c.Parser.FormatSyntax, c.Locale.Tag)
}
