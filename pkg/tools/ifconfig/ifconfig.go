package tools_ifconfig

import (
	"context"
	"errors"
	"fmt"

	dogewifi "github.com/dogeorg/dogewifi/pkg"
	tools_parse "github.com/dogeorg/dogewifi/pkg/tools/parse"
	"github.com/sirupsen/logrus"
)

var _ dogewifi.Ifconfig = &Ifconfig{}

type Ifconfig struct {
	exec dogewifi.Executor
	bin  string
	log  *logrus.Entry
}

func New(config dogewifi.Config, exec dogewifi.Executor) Ifconfig {
	return Ifconfig{
		exec: exec,
		bin:  config.Paths.Ifconfig,
		log:  config.Log("ifconfig"),
	}
}

func (t Ifconfig) Status(ctx context.Context, iface string) (dogewifi.InterfaceStatus, error) {
	out, err := tools_parse.Run(ctx, t.exec, t.bin, iface)
	if err != nil {
		return dogewifi.InterfaceStatus{}, err
	}
	status := ParseStatus(out)
	if status.Interface == "" {
		return dogewifi.InterfaceStatus{}, fmt.Errorf("ifconfig %s: no interface in output", iface)
	}
	return status, nil
}

func (t Ifconfig) StatusAll(ctx context.Context) ([]dogewifi.InterfaceStatus, error) {
	out, err := tools_parse.Run(ctx, t.exec, t.bin, "-a")
	if err != nil {
		return nil, err
	}
	return ParseStatusAll(out), nil
}

func (t Ifconfig) Down(ctx context.Context, iface string) error {
	_, err := tools_parse.Run(ctx, t.exec, t.bin, iface, "down")
	return err
}

// Up brings an interface up with a static IPv4 configuration.
func (t Ifconfig) Up(ctx context.Context, options dogewifi.IfconfigUpOptions) error {
	if options.Interface == "" {
		return errors.New("ifconfig up: no interface given")
	}
	args := []string{options.Interface}
	if options.IPv4Address != "" {
		args = append(args, options.IPv4Address)
	}
	if options.IPv4SubnetMask != "" {
		args = append(args, "netmask", options.IPv4SubnetMask)
	}
	if options.IPv4Broadcast != "" {
		args = append(args, "broadcast", options.IPv4Broadcast)
	}
	args = append(args, "up")

	t.log.WithField("interface", options.Interface).Info("bringing interface up")
	_, err := tools_parse.Run(ctx, t.exec, t.bin, args...)
	return err
}
