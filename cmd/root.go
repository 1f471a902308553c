package cmd

import (
	"codepack/pkg/consolidate"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// logger is shared by all commands; Execute replaces the no-op default.
var logger = zap.NewNop()

// RootCmd is the base command when called without any subcommands.
// Run with no arguments it consolidates the directory holding the executable.
var RootCmd = &cobra.Command{
	Use:   "codepack",
	Short: "codepack packs a source tree into compact text files for LLM input",
	Long: `codepack walks the directory it is installed in, strips comments and blank
lines from source files and concatenates them into size-bounded parts
(consolidated_code.txt, consolidated_code_part2.txt, ...) in the current directory.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return consolidate.Execute(logger)
	},
}

// Execute runs the root command with the given logger.
func Execute(l *zap.Logger) error {
	if l != nil {
		logger = l
	}
	return RootCmd.Execute()
}
