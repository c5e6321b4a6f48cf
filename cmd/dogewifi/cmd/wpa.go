package cmd

import (
	"context"

	dogewifi "github.com/dogeorg/dogewifi/pkg"
	"github.com/spf13/cobra"
)

var wpaIface string

var wpaCmd = &cobra.Command{
	Use:   "wpa",
	Short: "Control a running wpa_supplicant through wpa_cli",
}

// wpaCommand builds a subcommand for a wpa_cli call that answers with a
// single result token.
func wpaCommand(use, short string, nargs int, call func(ctx context.Context, args []string) (dogewifi.CommandResult, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(nargs),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := call(cmd.Context(), args)
			if err != nil {
				return err
			}
			return printJSON(result)
		},
	}
}

func init() {
	wpaCmd.PersistentFlags().StringVarP(&wpaIface, "interface", "i", "wlan0", "wireless interface")

	wpaCmd.AddCommand(
		&cobra.Command{
			Use:   "status",
			Short: "Show the supplicant status",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				status, err := wt.WpaCli.Status(cmd.Context(), wpaIface)
				if err != nil {
					return err
				}
				return printJSON(status)
			},
		},
		&cobra.Command{
			Use:   "list-networks",
			Short: "List the configured networks",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				networks, err := wt.WpaCli.ListNetworks(cmd.Context(), wpaIface)
				if err != nil {
					return err
				}
				return printJSON(networks)
			},
		},
		&cobra.Command{
			Use:   "scan-results",
			Short: "Show the results of the last scan",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				results, err := wt.WpaCli.ScanResults(cmd.Context(), wpaIface)
				if err != nil {
					return err
				}
				return printJSON(results)
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Show the wpa_cli version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				v, err := wt.WpaCli.Version(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(map[string]string{"version": v.String()})
			},
		},
		wpaCommand("bssid <network-id> <bssid>", "Pin a network to one access point", 2,
			func(ctx context.Context, args []string) (dogewifi.CommandResult, error) {
				return wt.WpaCli.Bssid(ctx, wpaIface, args[1], args[0])
			}),
		wpaCommand("reassociate", "Reconnect to the current network", 0,
			func(ctx context.Context, args []string) (dogewifi.CommandResult, error) {
				return wt.WpaCli.Reassociate(ctx, wpaIface)
			}),
		wpaCommand("set <variable> <value>", "Set a global supplicant variable", 2,
			func(ctx context.Context, args []string) (dogewifi.CommandResult, error) {
				return wt.WpaCli.Set(ctx, wpaIface, args[0], args[1])
			}),
		wpaCommand("add-network", "Add an empty network and print its id", 0,
			func(ctx context.Context, args []string) (dogewifi.CommandResult, error) {
				return wt.WpaCli.AddNetwork(ctx, wpaIface)
			}),
		wpaCommand("set-network <network-id> <variable> <value>", "Set a network variable; quote string values", 3,
			func(ctx context.Context, args []string) (dogewifi.CommandResult, error) {
				return wt.WpaCli.SetNetwork(ctx, wpaIface, args[0], args[1], args[2])
			}),
		wpaCommand("enable-network <network-id>", "Enable a network", 1,
			func(ctx context.Context, args []string) (dogewifi.CommandResult, error) {
				return wt.WpaCli.EnableNetwork(ctx, wpaIface, args[0])
			}),
		wpaCommand("disable-network <network-id>", "Disable a network", 1,
			func(ctx context.Context, args []string) (dogewifi.CommandResult, error) {
				return wt.WpaCli.DisableNetwork(ctx, wpaIface, args[0])
			}),
		wpaCommand("remove-network <network-id>", "Remove a network", 1,
			func(ctx context.Context, args []string) (dogewifi.CommandResult, error) {
				return wt.WpaCli.RemoveNetwork(ctx, wpaIface, args[0])
			}),
		wpaCommand("select-network <network-id>", "Select a network, disabling the others", 1,
			func(ctx context.Context, args []string) (dogewifi.CommandResult, error) {
				return wt.WpaCli.SelectNetwork(ctx, wpaIface, args[0])
			}),
		wpaCommand("scan", "Start a scan", 0,
			func(ctx context.Context, args []string) (dogewifi.CommandResult, error) {
				return wt.WpaCli.Scan(ctx, wpaIface)
			}),
		wpaCommand("save-config", "Write the current networks to the config file", 0,
			func(ctx context.Context, args []string) (dogewifi.CommandResult, error) {
				return wt.WpaCli.SaveConfig(ctx, wpaIface)
			}),
	)
	rootCmd.AddCommand(wpaCmd)
}
