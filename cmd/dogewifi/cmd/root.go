package cmd

import (
	"context"
	"os"
	"time"

	dogewifi "github.com/dogeorg/dogewifi/pkg"
	"github.com/dogeorg/dogewifi/pkg/system"
	"github.com/dogeorg/dogewifi/pkg/tools"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	confDir string
	timeout time.Duration

	config dogewifi.Config
	wt     tools.Tools
)

var rootCmd = &cobra.Command{
	Use:           "dogewifi",
	Short:         "dogewifi drives the Linux wireless tools and reports their state as JSON",
	Long:          `dogewifi wraps ifconfig, iw, iwlist, iwconfig, wpa_cli, wpa_supplicant, hostapd, udhcpc and udhcpd.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config = dogewifi.DefaultConfig()
		config.Verbose = verbose
		config.Timeout = timeout
		if confDir != "" {
			config.ConfDir = confDir
		}
		config.Logger = logrus.NewEntry(system.NewLogger(verbose))

		wt = tools.New(config, system.NewExecutor(config), system.NewProcessKiller(config))
	},
}

func Execute() {
	err := rootCmd.ExecuteContext(context.Background())
	if err != nil {
		config.Log("dogewifi").WithError(err).Error("command failed")
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every command run")
	rootCmd.PersistentFlags().StringVar(&confDir, "conf-dir", "", "directory for staged daemon configs (default $TMPDIR)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "timeout for each command, 0 for none")
}
