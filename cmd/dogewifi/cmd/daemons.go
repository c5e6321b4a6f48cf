package cmd

import (
	"context"

	dogewifi "github.com/dogeorg/dogewifi/pkg"
	"github.com/spf13/cobra"
)

var (
	supplicantEnable dogewifi.WpaSupplicantEnableOptions
	supplicantManual dogewifi.WpaSupplicantManualOptions
	hostapdOpts      dogewifi.HostapdOptions
	hostapdWpa       int
	hostapdExtra     []string
	udhcpdOpts       dogewifi.UdhcpdOptions
	udhcpdExtra      []string
)

type disabler interface {
	Disable(ctx context.Context, iface string) error
}

// disableCommand stops the daemon d() on an interface. d is resolved at run
// time, once the tools exist.
func disableCommand(d func() disabler) *cobra.Command {
	return &cobra.Command{
		Use:   "disable <interface>",
		Short: "Stop the daemon running on an interface",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return d().Disable(cmd.Context(), args[0])
		},
	}
}

var supplicantCmd = &cobra.Command{
	Use:   "wpa-supplicant",
	Short: "Start and stop wpa_supplicant",
}

var supplicantEnableCmd = &cobra.Command{
	Use:   "enable <interface>",
	Short: "Connect to one network; omit --passphrase for an open network",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		supplicantEnable.Interface = args[0]
		return wt.WpaSupplicant.Enable(cmd.Context(), supplicantEnable)
	},
}

var supplicantManualCmd = &cobra.Command{
	Use:   "manual <interface>",
	Short: "Start with no networks, for use with wpa_cli",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		supplicantManual.Interface = args[0]
		return wt.WpaSupplicant.Manual(cmd.Context(), supplicantManual)
	},
}

var hostapdCmd = &cobra.Command{
	Use:   "hostapd",
	Short: "Start and stop an access point",
}

var hostapdEnableCmd = &cobra.Command{
	Use:   "enable <interface>",
	Short: "Start hostapd on an interface",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		extra, err := parseSettings(hostapdExtra)
		if err != nil {
			return err
		}
		hostapdOpts.Interface = args[0]
		hostapdOpts.Extra = extra
		if cmd.Flags().Changed("wpa") {
			hostapdOpts.Wpa = dogewifi.Ptr(hostapdWpa)
		}
		return wt.Hostapd.Enable(cmd.Context(), hostapdOpts)
	},
}

var udhcpcCmd = &cobra.Command{
	Use:   "udhcpc",
	Short: "Start and stop the DHCP client",
}

var udhcpcEnableCmd = &cobra.Command{
	Use:   "enable <interface>",
	Short: "Obtain a lease on an interface",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return wt.Udhcpc.Enable(cmd.Context(), dogewifi.UdhcpcOptions{Interface: args[0]})
	},
}

var udhcpdCmd = &cobra.Command{
	Use:   "udhcpd",
	Short: "Start and stop the DHCP server",
}

var udhcpdEnableCmd = &cobra.Command{
	Use:   "enable <interface>",
	Short: "Serve leases on an interface",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		extra, err := parseSettings(udhcpdExtra)
		if err != nil {
			return err
		}
		udhcpdOpts.Interface = args[0]
		udhcpdOpts.Extra = extra
		return wt.Udhcpd.Enable(cmd.Context(), udhcpdOpts)
	},
}

func init() {
	supplicantEnableCmd.Flags().StringVar(&supplicantEnable.SSID, "ssid", "", "network name")
	supplicantEnableCmd.Flags().StringVar(&supplicantEnable.Passphrase, "passphrase", "", "WPA passphrase")
	supplicantEnableCmd.Flags().StringVar(&supplicantEnable.Driver, "driver", "nl80211", "wpa_supplicant driver")
	supplicantEnableCmd.MarkFlagRequired("ssid")
	supplicantManualCmd.Flags().StringSliceVar(&supplicantManual.Drivers, "driver", []string{"nl80211", "wext"}, "drivers to try, in order")
	supplicantCmd.AddCommand(supplicantEnableCmd, supplicantManualCmd,
		disableCommand(func() disabler { return wt.WpaSupplicant }))

	hostapdEnableCmd.Flags().IntVar(&hostapdOpts.Channel, "channel", 6, "channel")
	hostapdEnableCmd.Flags().StringVar(&hostapdOpts.Driver, "driver", "nl80211", "hostapd driver")
	hostapdEnableCmd.Flags().StringVar(&hostapdOpts.HwMode, "hw-mode", "g", "hw_mode")
	hostapdEnableCmd.Flags().StringVar(&hostapdOpts.SSID, "ssid", "", "network name")
	hostapdEnableCmd.Flags().IntVar(&hostapdWpa, "wpa", 2, "wpa mode bitmask")
	hostapdEnableCmd.Flags().StringVar(&hostapdOpts.WpaPassphrase, "passphrase", "", "WPA passphrase")
	hostapdEnableCmd.Flags().StringArrayVar(&hostapdExtra, "set", nil, "extra key=value line, repeatable")
	hostapdEnableCmd.MarkFlagRequired("ssid")
	hostapdCmd.AddCommand(hostapdEnableCmd,
		disableCommand(func() disabler { return wt.Hostapd }))

	udhcpcCmd.AddCommand(udhcpcEnableCmd,
		disableCommand(func() disabler { return wt.Udhcpc }))

	udhcpdEnableCmd.Flags().StringVar(&udhcpdOpts.Start, "start", "", "first leased address")
	udhcpdEnableCmd.Flags().StringVar(&udhcpdOpts.End, "end", "", "last leased address")
	udhcpdEnableCmd.Flags().StringVar(&udhcpdOpts.Option.Router, "router", "", "router option")
	udhcpdEnableCmd.Flags().StringVar(&udhcpdOpts.Option.Subnet, "subnet", "", "subnet option")
	udhcpdEnableCmd.Flags().StringSliceVar(&udhcpdOpts.Option.DNS, "dns", nil, "dns servers")
	udhcpdEnableCmd.Flags().StringArrayVar(&udhcpdExtra, "set", nil, "extra key=value line, repeatable")
	udhcpdCmd.AddCommand(udhcpdEnableCmd,
		disableCommand(func() disabler { return wt.Udhcpd }))

	rootCmd.AddCommand(supplicantCmd, hostapdCmd, udhcpcCmd, udhcpdCmd)
}
