package tools_hostapd

import (
	"context"
	"errors"

	dogewifi "github.com/dogeorg/dogewifi/pkg"
	tools_conffile "github.com/dogeorg/dogewifi/pkg/tools/conffile"
	tools_daemon "github.com/dogeorg/dogewifi/pkg/tools/daemon"
	"github.com/sirupsen/logrus"
)

var _ dogewifi.Hostapd = &Hostapd{}

type Hostapd struct {
	exec    dogewifi.Executor
	killer  dogewifi.ProcessKiller
	bin     string
	confDir string
	log     *logrus.Entry
}

func New(config dogewifi.Config, exec dogewifi.Executor, killer dogewifi.ProcessKiller) Hostapd {
	return Hostapd{
		exec:    exec,
		killer:  killer,
		bin:     config.Paths.Hostapd,
		confDir: config.ConfDir,
		log:     config.Log("hostapd"),
	}
}

func (t Hostapd) conf(iface string) string {
	return tools_conffile.Path(t.confDir, iface, "hostapd")
}

// Conf is the hostapd.conf tree for options, in field order. Unset
// options are left out so hostapd falls back to its own defaults.
func Conf(options dogewifi.HostapdOptions) tools_conffile.Value {
	entries := []tools_conffile.Entry{
		tools_conffile.E("interface", tools_conffile.String(options.Interface)),
	}
	if options.Channel != 0 {
		entries = append(entries, tools_conffile.E("channel", tools_conffile.Int(options.Channel)))
	}
	for _, kv := range []struct{ key, value string }{
		{"driver", options.Driver},
		{"hw_mode", options.HwMode},
		{"ssid", options.SSID},
	} {
		if kv.value != "" {
			entries = append(entries, tools_conffile.E(kv.key, tools_conffile.String(kv.value)))
		}
	}
	if options.Wpa != nil {
		entries = append(entries, tools_conffile.E("wpa", tools_conffile.Int(*options.Wpa)))
	}
	if options.WpaPassphrase != "" {
		entries = append(entries, tools_conffile.E("wpa_passphrase", tools_conffile.String(options.WpaPassphrase)))
	}
	for _, s := range options.Extra {
		entries = append(entries, tools_conffile.E(s.Key, tools_conffile.String(s.Value)))
	}
	return tools_conffile.Map(entries...)
}

// Enable starts an access point with `hostapd -B <conf>`.
func (t Hostapd) Enable(ctx context.Context, options dogewifi.HostapdOptions) error {
	if options.Interface == "" {
		return errors.New("hostapd: no interface given")
	}
	conf := t.conf(options.Interface)
	lines := tools_conffile.Render(Conf(options), "=")
	return tools_daemon.StartWithConf(ctx, t.exec, t.log.WithField("interface", options.Interface), conf, lines, t.bin, "-B", conf)
}

func (t Hostapd) Disable(ctx context.Context, iface string) error {
	tools_daemon.Stop(ctx, t.killer, t.log.WithField("interface", iface), tools_daemon.Anchored(t.bin+" -B "+t.conf(iface)))
	return nil
}
