package cmd

import (
	"fmt"

	"ctxpack/pkg/version"

	"github.com/spf13/cobra"
)

// versionCmd displays the current version of the ctxpack CLI.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the version of ctxpack",
	Long:  `Display the current version information of the ctxpack CLI tool.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		short, err := cmd.Flags().GetBool("short")
		if err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}

		v := version.Get()
		if short {
			fmt.Println(v.Version)
		} else {
			fmt.Println(v.String())
		}
		return nil
	},
}

func init() {
	versionCmd.Flags().BoolP("short", "s", false, "Print the version number only")

	RootCmd.AddCommand(versionCmd)
}
