package cmd

import (
	"errors"

	dogewifi "github.com/dogeorg/dogewifi/pkg"
	"github.com/dogeorg/dogewifi/pkg/system"
	"github.com/spf13/cobra"
)

var (
	scanOpts   dogewifi.ScanOptions
	scanAll    bool
	scanIwlist bool
	scanLister dogewifi.InterfaceLister = system.InterfaceLister{}
)

var scanCmd = &cobra.Command{
	Use:   "scan [interface]",
	Short: "Scan for access points with iw, or iwlist with --iwlist",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var s dogewifi.Iw = wt.Iw
		if scanIwlist {
			s = wt.Iwlist
		}

		if !scanAll {
			if len(args) == 0 {
				return errors.New("name an interface or pass --all")
			}
			scanOpts.Interface = args[0]
			networks, err := s.Scan(cmd.Context(), scanOpts)
			if err != nil {
				return err
			}
			return printJSON(networks)
		}

		ifaces, err := scanLister.WirelessInterfaces()
		if err != nil {
			return err
		}
		log := config.Log("scan")
		out := map[string][]dogewifi.Network{}
		for _, iface := range ifaces {
			opts := scanOpts
			opts.Interface = iface
			networks, err := s.Scan(cmd.Context(), opts)
			if err != nil {
				log.WithError(err).WithField("interface", iface).Warn("scan failed")
				continue
			}
			out[iface] = networks
		}
		return printJSON(out)
	},
}

func init() {
	scanCmd.Flags().BoolVar(&scanAll, "all", false, "scan every wireless interface")
	scanCmd.Flags().BoolVar(&scanIwlist, "iwlist", false, "scan with iwlist instead of iw")
	scanCmd.Flags().BoolVar(&scanOpts.ShowHidden, "show-hidden", false, "include networks without an SSID")
	scanCmd.Flags().StringVar(&scanOpts.SSID, "essid", "", "scan for one SSID (iwlist only)")
	rootCmd.AddCommand(scanCmd)
}
