// Package am ("I am") holds the nldates configuration: the date
// parser settings, the locale and logging. Values cascade from built-in
// defaults through system, user and project TOML files to NLDATES_*
// environment variables.
package am

// Config represents the nldates configuration
type Config struct {
	Parser ParserConfig `mapstructure:"parser" toml:"parser" json:"parser" yaml:"parser"`
	Locale LocaleConfig `mapstructure:"locale" toml:"locale" json:"locale" yaml:"locale"`
	Log    LogConfig    `mapstructure:"log" toml:"log" json:"log" yaml:"log"`
}

// ParserConfig configures how phrases are resolved and rendered
type ParserConfig struct {
	Format         string `mapstructure:"format" toml:"format" json:"format" yaml:"format"`                               // Date pattern (default: YYYY-MM-DD)
	TimeFormat     string `mapstructure:"time_format" toml:"time_format" json:"time_format" yaml:"time_format"`           // Time pattern (default: HH:mm)
	DateTimeFormat string `mapstructure:"datetime_format" toml:"datetime_format" json:"datetime_format" yaml:"datetime_format"` // Pattern for phrases with a time of day
	Separator      string `mapstructure:"separator" toml:"separator" json:"separator" yaml:"separator"`                   // Between date and time in "now"
	WeekStart      string `mapstructure:"week_start" toml:"week_start" json:"week_start" yaml:"week_start"`               // sunday..saturday or locale-default
	FormatSyntax   string `mapstructure:"format_syntax" toml:"format_syntax" json:"format_syntax" yaml:"format_syntax"`   // moment or strftime
	Link           bool   `mapstructure:"link" toml:"link" json:"link" yaml:"link"`                                       // Wrap inserted dates in [[ ]]
}

// LocaleConfig selects the locale behind the locale-default week start
type LocaleConfig struct {
	Tag string `mapstructure:"tag" toml:"tag" json:"tag" yaml:"tag"` // BCP 47 or POSIX name; empty = detect from LC_ALL/LC_TIME/LANG
}

// LogConfig configures logger output
type LogConfig struct {
	JSON      bool `mapstructure:"json" toml:"json" json:"json" yaml:"json"`                     // JSON lines instead of console output
	Verbosity int  `mapstructure:"verbosity" toml:"verbosity" json:"verbosity" yaml:"verbosity"` // 0 warn, 1 info, 2+ debug
}

// File system constants
const (
	DefaultDirPermissions  = 0755 // Standard directory permissions (rwxr-xr-x)
	DefaultFilePermissions = 0644 // Standard file permissions (rw-r--r--)
)

// Config file names searched by the cascade
const (
	UserConfigDir     = ".nldates"
	ConfigFileName    = "config.toml"
	ProjectConfigName = "nldates.toml"
	EnvPrefix         = "NLDATES"
)
