package tools_udhcpc

import (
	"context"
	"errors"

	dogewifi "github.com/dogeorg/dogewifi/pkg"
	tools_daemon "github.com/dogeorg/dogewifi/pkg/tools/daemon"
	"github.com/sirupsen/logrus"
)

var _ dogewifi.Udhcpc = &Udhcpc{}

// Udhcpc runs the busybox DHCP client.
type Udhcpc struct {
	exec   dogewifi.Executor
	killer dogewifi.ProcessKiller
	bin    string
	log    *logrus.Entry
}

func New(config dogewifi.Config, exec dogewifi.Executor, killer dogewifi.ProcessKiller) Udhcpc {
	return Udhcpc{
		exec:   exec,
		killer: killer,
		bin:    config.Paths.Udhcpc,
		log:    config.Log("udhcpc"),
	}
}

// Enable runs `udhcpc -i <iface> -n`, which exits with an error if no lease
// could be obtained.
func (t Udhcpc) Enable(ctx context.Context, options dogewifi.UdhcpcOptions) error {
	if options.Interface == "" {
		return errors.New("udhcpc: no interface given")
	}
	return tools_daemon.Start(ctx, t.exec, t.log.WithField("interface", options.Interface), t.bin, "-i", options.Interface, "-n")
}

func (t Udhcpc) Disable(ctx context.Context, iface string) error {
	tools_daemon.Stop(ctx, t.killer, t.log.WithField("interface", iface), tools_daemon.Anchored(t.bin+" -i "+iface))
	return nil
}
