package am

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/viper"

	"github.com/teranos/nldates/errors"
)

var (
	mu            sync.Mutex
	globalConfig  *Config
	viperInstance *viper.Viper

	// ConfigSources records, for every key a file set, which file won.
	// Keys absent from the map come from defaults or the environment.
	ConfigSources = map[string]SourceInfo{}
)

// systemConfigPath is the lowest-precedence config file
var systemConfigPath = "/etc/nldates/" + ConfigFileName

// Load reads the nldates configuration using Viper
func Load() (*Config, error) {
	mu.Lock()
	defer mu.Unlock()

	if globalConfig != nil {
		return globalConfig, nil
	}

	config, err := LoadWithViper(initViper())
	if err != nil {
		return nil, err
	}

	globalConfig = config
	return globalConfig, nil
}

// GetViper returns the Viper instance for advanced configuration access
func GetViper() *viper.Viper {
	mu.Lock()
	defer mu.Unlock()
	return initViper()
}

// LoadWithViper loads configuration using a provided Viper instance
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	return &config, nil
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	// Set defaults but don't bind environment variables for this specific load
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal config from %s", configPath)
	}

	return &config, nil
}

// Reset clears the cached configuration (useful for testing)
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	globalConfig = nil
	viperInstance = nil
	ConfigSources = map[string]SourceInfo{}
}

// initViper initializes Viper with configuration sources and defaults.
// Callers hold mu.
func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	// NLDATES_PARSER_WEEK_START overrides parser.week_start
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	BindEnvVars(v)

	SetDefaults(v)

	// Merge configs in precedence order: system -> user -> project; env vars stay on top
	mergeConfigFiles(v)

	viperInstance = v
	return v
}

// findProjectConfig searches for nldates.toml by walking up the directory tree
// Returns the path to the first config file found, or empty string if none found
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		candidate := filepath.Join(dir, ProjectConfigName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}

	return ""
}

// candidateSource pairs a config file path with its cascade level
type candidateSource struct {
	path   string
	source ConfigSource
}

// configCandidates lists config files in precedence order, lowest first,
// whether or not they exist
func configCandidates() []candidateSource {
	candidates := []candidateSource{{systemConfigPath, SourceSystem}}

	if homeDir, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, candidateSource{
			filepath.Join(homeDir, UserConfigDir, ConfigFileName), SourceUser,
		})
	}

	if projectConfig := findProjectConfig(); projectConfig != "" {
		candidates = append(candidates, candidateSource{projectConfig, SourceProject})
	}
	return candidates
}

// ConfigPaths returns the config files that exist, lowest precedence first
func ConfigPaths() []string {
	var paths []string
	for _, c := range configCandidates() {
		if _, err := os.Stat(c.path); err == nil {
			paths = append(paths, c.path)
		}
	}
	return paths
}

// mergeConfigFiles merges configuration files in precedence order and
// records which file supplied each key.
// Precedence (lowest to highest): system < user < project < env vars
func mergeConfigFiles(v *viper.Viper) {
	for _, candidate := range configCandidates() {
		if _, err := os.Stat(candidate.path); err != nil {
			continue
		}

		tempViper := viper.New()
		tempViper.SetConfigFile(candidate.path)
		tempViper.SetConfigType("toml")

		if err := tempViper.ReadInConfig(); err != nil {
			continue
		}

		if err := v.MergeConfigMap(tempViper.AllSettings()); err != nil {
			continue
		}
		for _, key := range tempViper.AllKeys() {
			ConfigSources[key] = SourceInfo{Source: candidate.source, Path: candidate.path}
		}
	}
}

// Keys returns every known configuration key, sorted
func Keys() []string {
	keys := GetViper().AllKeys()
	sort.Strings(keys)
	return keys
}

// Get returns a configuration value using dot notation
func Get(key string) interface{} {
	return GetViper().Get(key)
}

// GetString returns a configuration value as string using dot notation
func GetString(key string) string {
	return GetViper().GetString(key)
}

// GetBool returns a configuration value as bool using dot notation
func GetBool(key string) bool {
	return GetViper().GetBool(key)
}

// IsSet reports whether a key has a value from any source, defaults included
func IsSet(key string) bool {
	return GetViper().IsSet(key)
}
