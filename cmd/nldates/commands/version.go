package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/teranos/nldates/errors"
	"github.com/teranos/nldates/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Show nldates version information",
		Long:        `Display version, build time, commit hash, and platform information for the nldates binary.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipResolver: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOutput, _ := cmd.Flags().GetBool("json")
			info := version.Get()
			out := cmd.OutOrStdout()

			if jsonOutput {
				output, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return errors.Wrap(err, "error formatting JSON")
				}
				fmt.Fprintln(out, string(output))
				return nil
			}

			fmt.Fprintln(out, info.String())
			fmt.Fprintf(out, "Grammar: %s (%d rules)\n", info.Grammar, info.Rules)
			fmt.Fprintf(out, "Platform: %s\n", info.Platform)
			fmt.Fprintf(out, "Go: %s\n", info.GoVersion)
			return nil
		},
	}
}
