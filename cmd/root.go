package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "ctxpack",
	Short: "ctxpack packs project files into bounded context bundles",
	Long: `ctxpack aggregates a selected set of project files into one or more
export artifacts sized for an LLM context window, a review bundle, or an
archival snapshot. Output is deterministic and no file is ever split
across artifacts.`,
	SilenceUsage: true,
}

// log is the logger shared by all subcommands, set by Execute.
var log = zap.NewNop()

// Execute runs the root command with the given logger.
func Execute(logger *zap.Logger) error {
	if logger != nil {
		log = logger
	}
	return RootCmd.Execute()
}
