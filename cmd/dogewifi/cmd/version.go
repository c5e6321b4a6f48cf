package cmd

import (
	"github.com/dogeorg/dogewifi/pkg/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Get dogewifi version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printJSON(version.Get())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
