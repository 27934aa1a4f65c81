package commands

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/teranos/nldates/am"
	"github.com/teranos/nldates/display"
	"github.com/teranos/nldates/errors"
)

func newAmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "am",
		Short: "Manage nldates configuration",
		Long: `am - Manage nldates configuration ("I am")

Display and check the settings the resolver and formatter run with.

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (NLDATES_* prefix, plus NLDATES_WEEK_START,
   NLDATES_FORMAT and NLDATES_LANG)
3. Project config (nearest nldates.toml, searching up directories)
4. User config (~/.nldates/config.toml)
5. System config (/etc/nldates/config.toml)
6. Default values

Examples:
  nldates am show                    # Show current configuration
  nldates am show --format json      # Show configuration in JSON format
  nldates am get parser.week_start   # Get specific config value
  nldates am validate --strict       # Fail on unknown keys too`,
		Annotations: map[string]string{skipResolver: "true"},
	}

	cmd.AddCommand(newAmShowCmd(), newAmGetCmd(), newAmValidateCmd(), newAmWhereCmd())
	for _, sub := range cmd.Commands() {
		sub.Annotations = map[string]string{skipResolver: "true"}
	}
	return cmd
}

func newAmShowCmd() *cobra.Command {
	var configFormat string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the current nldates configuration merged from all sources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			switch configFormat {
			case "json":
				data, err := json.MarshalIndent(activeConfig, "", "  ")
				if err != nil {
					return errors.Wrap(err, "failed to marshal config to JSON")
				}
				fmt.Fprintln(out, string(data))

			case "yaml":
				data, err := yaml.Marshal(activeConfig)
				if err != nil {
					return errors.Wrap(err, "failed to marshal config to YAML")
				}
				fmt.Fprintf(out, "# nldates configuration\n%s", string(data))

			case "toml":
				data, err := toml.Marshal(activeConfig)
				if err != nil {
					return errors.Wrap(err, "failed to marshal config to TOML")
				}
				fmt.Fprintf(out, "# nldates configuration\n%s", string(data))

			default:
				return errors.Newf("unsupported format: %s (supported: toml, json, yaml)", configFormat)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configFormat, "format", "toml", "Output format: toml, json, yaml")
	return cmd
}

func newAmGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a specific configuration value",
		Long:  "Get a specific configuration value using dot notation (e.g., parser.format, locale.tag)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if !am.IsSet(key) {
				return errors.Newf("configuration key %q not found", key)
			}
			fmt.Fprintln(cmd.OutOrStdout(), am.Get(key))
			return nil
		},
	}
}

func newAmValidateCmd() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate current configuration",
		Long: `Validate the merged configuration and report keys the config files set
that nldates does not know (typos such as "weekstart").`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if err := activeConfig.Validate(); err != nil {
				return errors.Wrap(err, "configuration validation failed")
			}

			unknown, err := am.CheckFiles()
			if err != nil {
				return err
			}
			paths := make([]string, 0, len(unknown))
			for path := range unknown {
				paths = append(paths, path)
			}
			sort.Strings(paths)
			for _, path := range paths {
				fmt.Fprintf(out, "⚠ %s: unknown keys %s\n", path, strings.Join(unknown[path], ", "))
			}
			if strict && len(paths) > 0 {
				return errors.Newf("configuration has unknown keys in %d file(s)", len(paths))
			}

			fmt.Fprintln(out, "✓ Configuration is valid")
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Treat unknown keys as errors")
	return cmd
}

func newAmWhereCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "where",
		Short: "Show where configuration is loaded from",
		Long: `Show the configuration cascade and which source supplied each setting.

Lists all configuration sources in order of precedence.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			intro, err := am.GetConfigIntrospection()
			if err != nil {
				return errors.Wrap(err, "failed to get config introspection")
			}
			if display.ShouldOutputJSON(cmd) {
				return display.OutputJSON(cmd.OutOrStdout(), intro)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Configuration cascade (later overrides earlier):")
			fmt.Fprintln(out, "  1. [DEFAULT]  Built-in defaults")
			fmt.Fprintln(out, "  2. [SYSTEM]   /etc/nldates/config.toml")
			fmt.Fprintln(out, "  3. [USER]     ~/.nldates/config.toml")
			fmt.Fprintln(out, "  4. [PROJECT]  ./nldates.toml (searches up directories)")
			fmt.Fprintln(out, "  5. [ENV]      NLDATES_* environment variables")
			fmt.Fprintln(out)

			// Group settings by the file or variable that supplied them
			type group struct {
				path     string
				settings []am.SettingInfo
			}
			bySource := make(map[am.ConfigSource][]*group)
			index := make(map[string]*group)
			for _, setting := range intro.Settings {
				key := string(setting.Source) + "|" + setting.SourcePath
				g, ok := index[key]
				if !ok {
					g = &group{path: setting.SourcePath}
					index[key] = g
					bySource[setting.Source] = append(bySource[setting.Source], g)
				}
				g.settings = append(g.settings, setting)
			}

			fmt.Fprintln(out, "Active configuration:")
			for _, source := range []am.ConfigSource{
				am.SourceDefault,
				am.SourceSystem,
				am.SourceUser,
				am.SourceProject,
				am.SourceEnvironment,
			} {
				for _, g := range bySource[source] {
					switch source {
					case am.SourceDefault:
						fmt.Fprintf(out, "\n%s: %d settings\n", source, len(g.settings))
					default:
						fmt.Fprintf(out, "\n%s: %d settings from %s\n", source, len(g.settings), g.path)
					}
					for _, setting := range g.settings {
						valueStr := fmt.Sprintf("%v", setting.Value)
						if len(valueStr) > 50 {
							valueStr = valueStr[:47] + "..."
						}
						fmt.Fprintf(out, "  %s = %s\n", setting.Key, valueStr)
					}
				}
			}
			return nil
		},
	}
}
