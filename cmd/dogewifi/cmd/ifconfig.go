package cmd

import (
	dogewifi "github.com/dogeorg/dogewifi/pkg"
	"github.com/spf13/cobra"
)

var ifconfigUp dogewifi.IfconfigUpOptions

var ifconfigCmd = &cobra.Command{
	Use:   "ifconfig",
	Short: "Query and configure network interfaces",
}

var ifconfigStatusCmd = &cobra.Command{
	Use:   "status [interface]",
	Short: "Show one interface, or all of them",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			all, err := wt.Ifconfig.StatusAll(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(all)
		}
		status, err := wt.Ifconfig.Status(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(status)
	},
}

var ifconfigUpCmd = &cobra.Command{
	Use:   "up <interface>",
	Short: "Bring an interface up, optionally with an IPv4 address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ifconfigUp.Interface = args[0]
		return wt.Ifconfig.Up(cmd.Context(), ifconfigUp)
	},
}

var ifconfigDownCmd = &cobra.Command{
	Use:   "down <interface>",
	Short: "Take an interface down",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wt.Ifconfig.Down(cmd.Context(), args[0])
	},
}

func init() {
	ifconfigUpCmd.Flags().StringVar(&ifconfigUp.IPv4Address, "ip", "", "IPv4 address")
	ifconfigUpCmd.Flags().StringVar(&ifconfigUp.IPv4SubnetMask, "netmask", "", "IPv4 subnet mask")
	ifconfigUpCmd.Flags().StringVar(&ifconfigUp.IPv4Broadcast, "broadcast", "", "IPv4 broadcast address")

	ifconfigCmd.AddCommand(ifconfigStatusCmd, ifconfigUpCmd, ifconfigDownCmd)
	rootCmd.AddCommand(ifconfigCmd)
}
