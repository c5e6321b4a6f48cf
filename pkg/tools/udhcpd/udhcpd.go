package tools_udhcpd

import (
	"context"
	"errors"

	dogewifi "github.com/dogeorg/dogewifi/pkg"
	tools_conffile "github.com/dogeorg/dogewifi/pkg/tools/conffile"
	tools_daemon "github.com/dogeorg/dogewifi/pkg/tools/daemon"
	"github.com/sirupsen/logrus"
)

var _ dogewifi.Udhcpd = &Udhcpd{}

// Udhcpd runs the busybox DHCP server.
type Udhcpd struct {
	exec    dogewifi.Executor
	killer  dogewifi.ProcessKiller
	bin     string
	confDir string
	log     *logrus.Entry
}

func New(config dogewifi.Config, exec dogewifi.Executor, killer dogewifi.ProcessKiller) Udhcpd {
	return Udhcpd{
		exec:    exec,
		killer:  killer,
		bin:     config.Paths.Udhcpd,
		confDir: config.ConfDir,
		log:     config.Log("udhcpd"),
	}
}

func (t Udhcpd) conf(iface string) string {
	return tools_conffile.Path(t.confDir, iface, "udhcpd")
}

// Conf is the udhcpd.conf tree for options. Unset option values are left
// out; every DNS server gets its own `option dns` line.
func Conf(options dogewifi.UdhcpdOptions) tools_conffile.Value {
	entries := []tools_conffile.Entry{
		tools_conffile.E("interface", tools_conffile.String(options.Interface)),
	}
	if options.Start != "" {
		entries = append(entries, tools_conffile.E("start", tools_conffile.String(options.Start)))
	}
	if options.End != "" {
		entries = append(entries, tools_conffile.E("end", tools_conffile.String(options.End)))
	}

	var opts []tools_conffile.Entry
	if options.Option.Router != "" {
		opts = append(opts, tools_conffile.E("router", tools_conffile.String(options.Option.Router)))
	}
	if options.Option.Subnet != "" {
		opts = append(opts, tools_conffile.E("subnet", tools_conffile.String(options.Option.Subnet)))
	}
	if len(options.Option.DNS) > 0 {
		opts = append(opts, tools_conffile.E("dns", tools_conffile.List(options.Option.DNS...)))
	}
	if len(opts) > 0 {
		entries = append(entries, tools_conffile.E("option", tools_conffile.Map(opts...)))
	}

	for _, s := range options.Extra {
		entries = append(entries, tools_conffile.E(s.Key, tools_conffile.String(s.Value)))
	}
	return tools_conffile.Map(entries...)
}

// Enable starts `udhcpd <conf>`, which daemonizes by default.
func (t Udhcpd) Enable(ctx context.Context, options dogewifi.UdhcpdOptions) error {
	if options.Interface == "" {
		return errors.New("udhcpd: no interface given")
	}
	conf := t.conf(options.Interface)
	lines := tools_conffile.Render(Conf(options), " ")
	return tools_daemon.StartWithConf(ctx, t.exec, t.log.WithField("interface", options.Interface), conf, lines, t.bin, conf)
}

func (t Udhcpd) Disable(ctx context.Context, iface string) error {
	tools_daemon.Stop(ctx, t.killer, t.log.WithField("interface", iface), tools_daemon.Anchored(t.bin+" "+t.conf(iface)))
	return nil
}
