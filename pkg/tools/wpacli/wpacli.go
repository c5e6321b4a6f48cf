package tools_wpacli

import (
	"context"

	"github.com/Masterminds/semver"
	dogewifi "github.com/dogeorg/dogewifi/pkg"
	tools_parse "github.com/dogeorg/dogewifi/pkg/tools/parse"
	"github.com/sirupsen/logrus"
)

var _ dogewifi.WpaCli = &WpaCli{}

// WpaCli talks to a running wpa_supplicant through `wpa_cli -i <iface>`.
// Values are passed to wpa_cli verbatim without a shell, so string network
// variables such as ssid and psk need their own double quotes.
type WpaCli struct {
	exec dogewifi.Executor
	bin  string
	log  *logrus.Entry
}

func New(config dogewifi.Config, exec dogewifi.Executor) WpaCli {
	return WpaCli{
		exec: exec,
		bin:  config.Paths.WpaCli,
		log:  config.Log("wpa_cli"),
	}
}

func (t WpaCli) run(ctx context.Context, iface string, args ...string) (string, error) {
	return tools_parse.Run(ctx, t.exec, t.bin, append([]string{"-i", iface}, args...)...)
}

// table keeps trailing tabs, which mark an empty last column.
func (t WpaCli) table(ctx context.Context, iface string, args ...string) (string, error) {
	return tools_parse.RunRaw(ctx, t.exec, t.bin, append([]string{"-i", iface}, args...)...)
}

// command runs a wpa_cli command whose output is a single OK/FAIL style
// token.
func (t WpaCli) command(ctx context.Context, iface string, args ...string) (dogewifi.CommandResult, error) {
	out, err := t.run(ctx, iface, args...)
	if err != nil {
		return dogewifi.CommandResult{}, err
	}

	cmdline := dogewifi.CommandLine(t.bin, append([]string{"-i", iface}, args...)...)
	result, err := tools_parse.ClassifyCommand(cmdline, out)
	if err != nil {
		t.log.WithField("command", cmdline).Warn("wpa_cli rejected command")
		return result, err
	}
	return result, nil
}

func (t WpaCli) Status(ctx context.Context, iface string) (dogewifi.WpaStatus, error) {
	out, err := t.run(ctx, iface, "status")
	if err != nil {
		return dogewifi.WpaStatus{}, err
	}
	return ParseStatus(out)
}

// Bssid pins network ssid (a network id) to the access point ap.
func (t WpaCli) Bssid(ctx context.Context, iface, ap, ssid string) (dogewifi.CommandResult, error) {
	return t.command(ctx, iface, "bssid", ssid, ap)
}

func (t WpaCli) Reassociate(ctx context.Context, iface string) (dogewifi.CommandResult, error) {
	return t.command(ctx, iface, "reassociate")
}

func (t WpaCli) Set(ctx context.Context, iface, variable, value string) (dogewifi.CommandResult, error) {
	return t.command(ctx, iface, "set", variable, value)
}

func (t WpaCli) ListNetworks(ctx context.Context, iface string) ([]dogewifi.WpaNetworkEntry, error) {
	out, err := t.table(ctx, iface, "list_networks")
	if err != nil {
		return nil, err
	}
	return ParseListNetworks(out), nil
}

// AddNetwork returns the id of the new network in Result.
func (t WpaCli) AddNetwork(ctx context.Context, iface string) (dogewifi.CommandResult, error) {
	return t.command(ctx, iface, "add_network")
}

func (t WpaCli) SetNetwork(ctx context.Context, iface, id, variable, value string) (dogewifi.CommandResult, error) {
	return t.command(ctx, iface, "set_network", id, variable, value)
}

func (t WpaCli) EnableNetwork(ctx context.Context, iface, id string) (dogewifi.CommandResult, error) {
	return t.command(ctx, iface, "enable_network", id)
}

func (t WpaCli) DisableNetwork(ctx context.Context, iface, id string) (dogewifi.CommandResult, error) {
	return t.command(ctx, iface, "disable_network", id)
}

func (t WpaCli) RemoveNetwork(ctx context.Context, iface, id string) (dogewifi.CommandResult, error) {
	return t.command(ctx, iface, "remove_network", id)
}

func (t WpaCli) SelectNetwork(ctx context.Context, iface, id string) (dogewifi.CommandResult, error) {
	return t.command(ctx, iface, "select_network", id)
}

// Scan only triggers a scan; read the networks with ScanResults once
// wpa_supplicant reports CTRL-EVENT-SCAN-RESULTS.
func (t WpaCli) Scan(ctx context.Context, iface string) (dogewifi.CommandResult, error) {
	return t.command(ctx, iface, "scan")
}

func (t WpaCli) ScanResults(ctx context.Context, iface string) ([]dogewifi.WpaScanResult, error) {
	out, err := t.table(ctx, iface, "scan_results")
	if err != nil {
		return nil, err
	}
	return ParseScanResults(out)
}

func (t WpaCli) SaveConfig(ctx context.Context, iface string) (dogewifi.CommandResult, error) {
	return t.command(ctx, iface, "save_config")
}

// Version reports the wpa_cli release, which also tells which control
// commands the local wpa_supplicant understands.
func (t WpaCli) Version(ctx context.Context) (*semver.Version, error) {
	out, err := tools_parse.Run(ctx, t.exec, t.bin, "-v")
	if err != nil {
		return nil, err
	}
	return ParseVersion(out)
}
