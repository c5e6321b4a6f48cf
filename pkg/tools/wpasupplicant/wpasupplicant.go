package tools_wpasupplicant

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	dogewifi "github.com/dogeorg/dogewifi/pkg"
	tools_conffile "github.com/dogeorg/dogewifi/pkg/tools/conffile"
	tools_daemon "github.com/dogeorg/dogewifi/pkg/tools/daemon"
	tools_parse "github.com/dogeorg/dogewifi/pkg/tools/parse"
	"github.com/sirupsen/logrus"
)

var _ dogewifi.WpaSupplicant = &WpaSupplicant{}

// RunDir holds the control sockets and pid files of supplicants started
// with Manual.
const RunDir = "/run/wpa_supplicant"

type WpaSupplicant struct {
	exec       dogewifi.Executor
	killer     dogewifi.ProcessKiller
	bin        string
	passphrase string
	confDir    string
	log        *logrus.Entry
}

func New(config dogewifi.Config, exec dogewifi.Executor, killer dogewifi.ProcessKiller) WpaSupplicant {
	return WpaSupplicant{
		exec:       exec,
		killer:     killer,
		bin:        config.Paths.WpaSupplicant,
		passphrase: config.Paths.WpaPassphrase,
		confDir:    config.ConfDir,
		log:        config.Log("wpa_supplicant"),
	}
}

// OpenNetwork is the config block for a network without a passphrase.
func OpenNetwork(ssid string) []string {
	return []string{
		"network={",
		fmt.Sprintf("\tssid=%q", ssid),
		"\tkey_mgmt=NONE",
		"}",
	}
}

// networkConf returns the single network block for options. Protected
// networks get theirs from wpa_passphrase.
func (t WpaSupplicant) networkConf(ctx context.Context, options dogewifi.WpaSupplicantEnableOptions) ([]string, error) {
	if options.Passphrase == "" {
		return OpenNetwork(options.SSID), nil
	}
	out, err := tools_parse.Run(ctx, t.exec, t.passphrase, options.SSID, options.Passphrase)
	if err != nil {
		return nil, err
	}
	if !strings.Contains(out, "network={") {
		return nil, fmt.Errorf("wpa_passphrase: %s", tools_parse.FirstLine(out))
	}
	return strings.Split(out, "\n"), nil
}

// Enable connects iface to one network, then forks the supplicant into
// the background.
func (t WpaSupplicant) Enable(ctx context.Context, options dogewifi.WpaSupplicantEnableOptions) error {
	if options.Interface == "" {
		return errors.New("wpa_supplicant: no interface given")
	}
	lines, err := t.networkConf(ctx, options)
	if err != nil {
		return err
	}

	conf := tools_conffile.Path(t.confDir, options.Interface, "wpa_supplicant")
	args := []string{"-i", options.Interface, "-B"}
	if options.Driver != "" {
		args = append(args, "-D", options.Driver)
	}
	args = append(args, "-c", conf)

	log := t.log.WithFields(logrus.Fields{"interface": options.Interface, "ssid": options.SSID})
	return tools_daemon.StartWithConf(ctx, t.exec, log, conf, lines, t.bin, args...)
}

// Manual starts a supplicant with no networks and a control socket under
// RunDir, to be configured through wpa_cli.
func (t WpaSupplicant) Manual(ctx context.Context, options dogewifi.WpaSupplicantManualOptions) error {
	if options.Interface == "" {
		return errors.New("wpa_supplicant: no interface given")
	}
	args := []string{
		"-i", options.Interface,
		"-s", "-B",
		"-P", filepath.Join(RunDir, options.Interface+".pid"),
	}
	if len(options.Drivers) > 0 {
		args = append(args, "-D", strings.Join(options.Drivers, ","))
	}
	args = append(args, "-C", RunDir)
	return tools_daemon.Start(ctx, t.exec, t.log.WithField("interface", options.Interface), t.bin, args...)
}

// Disable stops every supplicant bound to iface, however it was started.
func (t WpaSupplicant) Disable(ctx context.Context, iface string) error {
	pattern := regexp.MustCompile(regexp.QuoteMeta(t.bin+" -i "+iface+" ") + "|" + regexp.QuoteMeta(t.bin+" -i "+iface) + "$")
	tools_daemon.Stop(ctx, t.killer, t.log.WithField("interface", iface), pattern)
	return nil
}
