package cmd

import (
	"github.com/spf13/cobra"
)

var iwconfigCmd = &cobra.Command{
	Use:   "iwconfig [interface]",
	Short: "Show the wireless state of one interface, or all of them",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			all, err := wt.Iwconfig.StatusAll(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(all)
		}
		status, err := wt.Iwconfig.Status(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(status)
	},
}

func init() {
	rootCmd.AddCommand(iwconfigCmd)
}
