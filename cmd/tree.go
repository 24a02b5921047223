package cmd

import (
	"fmt"

	"ctxpack/pkg/export"
	"ctxpack/pkg/scan"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var treeCmd = &cobra.Command{
	Use:   "tree [root]",
	Short: "Print the directory tree for the files an export would include",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTree,
}

func init() {
	treeCmd.Flags().StringArray("ignore", nil, "Additional ignore patterns")
	treeCmd.Flags().String("global-ignore", "", "Path to a global ignore file")

	RootCmd.AddCommand(treeCmd)
}

func runTree(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}

	extraPatterns, _ := cmd.Flags().GetStringArray("ignore")
	matcher, err := buildIgnore(cmd, root, extraPatterns)
	if err != nil {
		return err
	}

	scanner := scan.New(root, matcher, 0, log)
	paths, err := scanner.Collect()
	if err != nil {
		return fmt.Errorf("failed to collect files: %w", err)
	}
	if len(paths) == 0 {
		log.Warn("No files matched", zap.String("root", root))
		return nil
	}

	fmt.Print(export.RenderTree(export.CanonicalOrder(paths)))
	return nil
}
