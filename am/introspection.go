package am

import (
	"os"
	"sort"
	"strings"

	"github.com/teranos/nldates/errors"
)

// ConfigSource represents where a configuration value came from
type ConfigSource string

const (
	SourceDefault     ConfigSource = "default"
	SourceSystem      ConfigSource = "system"      // /etc/nldates/config.toml
	SourceUser        ConfigSource = "user"        // ~/.nldates/config.toml
	SourceProject     ConfigSource = "project"     // nearest nldates.toml
	SourceEnvironment ConfigSource = "environment" // NLDATES_* env vars
)

// SettingInfo contains metadata about a configuration setting
type SettingInfo struct {
	Key        string       `json:"key"`
	Value      interface{}  `json:"value"`
	Source     ConfigSource `json:"source"`
	SourcePath string       `json:"source_path,omitempty"` // File path or env var name
}

// ConfigIntrospection provides metadata about the active configuration
type ConfigIntrospection struct {
	ConfigFiles []string      `json:"config_files"` // Files merged, lowest precedence first
	Settings    []SettingInfo `json:"settings"`     // All settings with sources
}

// SourceInfo tracks where a configuration value originated
type SourceInfo struct {
	Source ConfigSource // The type of config source (default, system, user, project)
	Path   string       // File path or environment variable name
}

// GetConfigIntrospection returns every effective setting with the source
// that supplied it
func GetConfigIntrospection() (*ConfigIntrospection, error) {
	if _, err := Load(); err != nil {
		return nil, errors.Wrap(err, "failed to load config for introspection")
	}

	v := GetViper()

	mu.Lock()
	sources := make(map[string]SourceInfo, len(ConfigSources))
	for k, s := range ConfigSources {
		sources[k] = s
	}
	mu.Unlock()

	introspection := &ConfigIntrospection{
		ConfigFiles: ConfigPaths(),
		Settings:    make([]SettingInfo, 0),
	}
	flattenSettingsWithSources(v.AllSettings(), "", introspection, sources)

	return introspection, nil
}

// flattenSettingsWithSources flattens settings and assigns sources from sourceMap
func flattenSettingsWithSources(settings map[string]interface{}, prefix string, introspection *ConfigIntrospection, sourceMap map[string]SourceInfo) {
	// Sort keys for deterministic iteration
	keys := make([]string, 0, len(settings))
	for k := range settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := settings[key]
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		if nestedMap, ok := value.(map[string]interface{}); ok {
			flattenSettingsWithSources(nestedMap, fullKey, introspection, sourceMap)
			continue
		}

		sourceInfo := SourceInfo{Source: SourceDefault, Path: "built-in default"}
		if si, ok := sourceMap[fullKey]; ok {
			sourceInfo = si
		}

		// Environment wins over every file
		if envKey, ok := envOverride(fullKey); ok {
			sourceInfo = SourceInfo{Source: SourceEnvironment, Path: envKey}
		}

		introspection.Settings = append(introspection.Settings, SettingInfo{
			Key:        fullKey,
			Value:      value,
			Source:     sourceInfo.Source,
			SourcePath: sourceInfo.Path,
		})
	}
}

// envAliases mirrors the short names bound in BindEnvVars
var envAliases = map[string]string{
	"parser.week_start": EnvPrefix + "_WEEK_START",
	"parser.format":     EnvPrefix + "_FORMAT",
	"locale.tag":        EnvPrefix + "_LANG",
}

// envOverride returns the environment variable currently overriding key
func envOverride(key string) (string, bool) {
	envKey := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
	if _, ok := os.LookupEnv(envKey); ok {
		return envKey, true
	}
	if alias, ok := envAliases[key]; ok {
		if _, ok := os.LookupEnv(alias); ok {
			return alias, true
		}
	}
	return "", false
}
