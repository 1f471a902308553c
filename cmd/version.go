// File: cmd/version.go
package cmd

import (
	"fmt"
	"strings"

	"codepack/pkg/consolidate"
	"codepack/pkg/version"

	"github.com/spf13/cobra"
)

// versionCmd prints the build information of codepack followed by the
// built-in output settings. The --short flag prints the bare version number.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the version of codepack",
	Long:  `Display the current version and built-in output settings of the codepack CLI tool.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		short, err := cmd.Flags().GetBool("short")
		if err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}

		v := version.Get()
		if short {
			fmt.Fprintln(cmd.OutOrStdout(), v.Version)
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), v.String())
		fmt.Fprintln(cmd.OutOrStdout(), describeDefaults(consolidate.DefaultConfig("", "")))
		return nil
	},
}

// describeDefaults summarizes the output naming, ceiling and selected extensions of cfg.
func describeDefaults(cfg consolidate.Config) string {
	return fmt.Sprintf("output %s (split at %.1f KB), extensions %s",
		consolidate.PartPath(cfg, 1),
		float64(cfg.MaxPartSize)/1024,
		strings.Join(cfg.AllowedExtensions, " "))
}

func init() {
	versionCmd.Flags().BoolP("short", "s", false, "Print the version number only")
	RootCmd.AddCommand(versionCmd)
}
