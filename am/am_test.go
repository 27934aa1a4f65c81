package am

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/nldates/dates"
	"github.com/teranos/nldates/errors"
	"github.com/teranos/nldates/format"
	"github.com/teranos/nldates/temporal"
)

// isolate points HOME, the working directory and the system config at an
// empty temp dir and resets cached state
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	original := systemConfigPath
	systemConfigPath = filepath.Join(dir, "etc", ConfigFileName)
	Reset()
	t.Cleanup(func() {
		systemConfigPath = original
		Reset()
	})
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), DefaultDirPermissions))
	require.NoError(t, os.WriteFile(path, []byte(content), DefaultFilePermissions))
}

func TestLoad_Defaults(t *testing.T) {
	// Create isolated viper instance without loading user/system config
	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadWithViper(v)
	if err != nil {
		t.Fatalf("LoadWithViper() failed: %v", err)
	}

	if cfg.Parser.Format != "YYYY-MM-DD" {
		t.Errorf("expected default format 'YYYY-MM-DD', got %q", cfg.Parser.Format)
	}
	if cfg.Parser.TimeFormat != "HH:mm" {
		t.Errorf("expected default time format 'HH:mm', got %q", cfg.Parser.TimeFormat)
	}
	if cfg.Parser.Separator != " " {
		t.Errorf("expected default separator ' ', got %q", cfg.Parser.Separator)
	}
	if cfg.Parser.WeekStart != "locale-default" {
		t.Errorf("expected default week start 'locale-default', got %q", cfg.Parser.WeekStart)
	}
	if cfg.Locale.Tag != "" {
		t.Errorf("expected empty locale tag, got %q", cfg.Locale.Tag)
	}
	assert.NoError(t, cfg.Validate())
}

func TestSetDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	tests := []struct {
		key      string
		expected interface{}
	}{
		{"parser.format", "YYYY-MM-DD"},
		{"parser.time_format", "HH:mm"},
		{"parser.datetime_format", "YYYY-MM-DD HH:mm"},
		{"parser.separator", " "},
		{"parser.week_start", "locale-default"},
		{"parser.format_syntax", "moment"},
		{"parser.link", false},
		{"locale.tag", ""},
		{"log.json", false},
		{"log.verbosity", 0},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.expected, v.Get(tt.key))
		})
	}
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{Parser: ParserConfig{WeekStart: "monday", FormatSyntax: "moment"}}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "zero config is valid", mutate: func(c *Config) { *c = Config{} }},
		{name: "explicit weekday", mutate: func(c *Config) {}},
		{name: "locale default", mutate: func(c *Config) { c.Parser.WeekStart = "locale-default" }},
		{name: "strftime syntax", mutate: func(c *Config) { c.Parser.FormatSyntax = "strftime" }},
		{name: "posix locale", mutate: func(c *Config) { c.Locale.Tag = "de_DE.UTF-8" }},
		{name: "unknown week start", mutate: func(c *Config) { c.Parser.WeekStart = "funday" }, wantErr: "parser.week_start"},
		{name: "unknown syntax", mutate: func(c *Config) { c.Parser.FormatSyntax = "luxon" }, wantErr: "parser.format_syntax"},
		{name: "blank format", mutate: func(c *Config) { c.Parser.Format = "   " }, wantErr: "parser.format cannot be blank"},
		{name: "bad locale", mutate: func(c *Config) { c.Locale.Tag = "not a locale!" }, wantErr: "locale.tag"},
		{name: "negative verbosity", mutate: func(c *Config) { c.Log.Verbosity = -1 }, wantErr: "log.verbosity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.True(t, errors.IsInvalidConfiguration(err))
		})
	}
}

func TestFindProjectConfig(t *testing.T) {
	tmpDir := isolate(t)

	t.Run("walks up to the nearest file", func(t *testing.T) {
		subDir := filepath.Join(tmpDir, "project", "a", "b")
		require.NoError(t, os.MkdirAll(subDir, DefaultDirPermissions))
		writeFile(t, filepath.Join(tmpDir, "project", ProjectConfigName), "")
		t.Chdir(subDir)

		result := findProjectConfig()
		if !filepath.IsAbs(result) {
			t.Errorf("expected absolute path, got %q", result)
		}
		assert.Equal(t, filepath.Join(tmpDir, "project", ProjectConfigName), result)
	})

	t.Run("no config found", func(t *testing.T) {
		subDir := filepath.Join(tmpDir, "elsewhere")
		require.NoError(t, os.MkdirAll(subDir, DefaultDirPermissions))
		t.Chdir(subDir)

		if result := findProjectConfig(); result != "" {
			t.Errorf("expected empty string, got %s", result)
		}
	})
}

func TestLoadCascade(t *testing.T) {
	dir := isolate(t)

	writeFile(t, systemConfigPath, `
[parser]
format = "DD.MM.YYYY"
week_start = "monday"
`)
	writeFile(t, filepath.Join(dir, UserConfigDir, ConfigFileName), `
[parser]
week_start = "sunday"
link = true
`)
	project := filepath.Join(dir, "work")
	writeFile(t, filepath.Join(project, ProjectConfigName), `
[locale]
tag = "de-DE"
`)
	t.Chdir(project)
	t.Setenv("NLDATES_PARSER_SEPARATOR", " | ")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "DD.MM.YYYY", cfg.Parser.Format, "system file")
	assert.Equal(t, "sunday", cfg.Parser.WeekStart, "user file beats system")
	assert.True(t, cfg.Parser.Link)
	assert.Equal(t, "de-DE", cfg.Locale.Tag, "project file")
	assert.Equal(t, " | ", cfg.Parser.Separator, "environment")
	assert.Equal(t, "HH:mm", cfg.Parser.TimeFormat, "default")

	assert.Equal(t, SourceSystem, ConfigSources["parser.format"].Source)
	assert.Equal(t, SourceUser, ConfigSources["parser.week_start"].Source)
	assert.Equal(t, SourceProject, ConfigSources["locale.tag"].Source)
	assert.Len(t, ConfigPaths(), 3)

	// cached until Reset
	again, err := Load()
	require.NoError(t, err)
	assert.Same(t, cfg, again)
}

func TestEnvironmentBeatsFiles(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, UserConfigDir, ConfigFileName), `
[parser]
week_start = "sunday"
`)
	t.Setenv("NLDATES_WEEK_START", "tuesday")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "tuesday", cfg.Parser.WeekStart)
	assert.Equal(t, "tuesday", GetString("parser.week_start"))
}

func TestLocaleEnvironmentAliases(t *testing.T) {
	tests := []struct {
		name string
		env  string
	}{
		{"short alias", "NLDATES_LANG"},
		{"full key", "NLDATES_LOCALE_TAG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			t.Setenv(tt.env, "en-GB")

			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, "en-GB", cfg.Locale.Tag)
			assert.Equal(t, "en-GB", GetString("locale.tag"))
			assert.Equal(t, "en-GB", cfg.LocaleConfig().Tag)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.toml")
	writeFile(t, path, `
[parser]
format_syntax = "strftime"
format = "%Y-%m-%d"
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "strftime", cfg.Parser.FormatSyntax)
	assert.Equal(t, "%Y-%m-%d", cfg.Parser.Format)
	assert.Equal(t, "HH:mm", cfg.Parser.TimeFormat)

	_, err = LoadFromFile(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}

func TestDateOptions(t *testing.T) {
	cfg := Config{Parser: ParserConfig{
		Format:       "%d/%m/%Y",
		TimeFormat:   "%H:%M",
		Separator:    "T",
		WeekStart:    "monday",
		FormatSyntax: "strftime",
		Link:         true,
	}}

	opts := cfg.DateOptions()
	assert.Equal(t, temporal.WeekStartMonday, opts.WeekStart)
	assert.Equal(t, format.SyntaxStrftime, opts.Syntax)
	assert.True(t, opts.Link)

	_, err := dates.New(opts)
	assert.NoError(t, err)

	assert.Equal(t, temporal.LocaleConfig{Tag: ""}, cfg.LocaleConfig())
}

func TestGetters(t *testing.T) {
	isolate(t)

	assert.Equal(t, "YYYY-MM-DD", GetString("parser.format"))
	assert.False(t, GetBool("parser.link"))
	assert.Equal(t, "HH:mm", Get("parser.time_format"))
	assert.True(t, IsSet("parser.separator"))
	assert.Contains(t, Keys(), "parser.week_start")
}
