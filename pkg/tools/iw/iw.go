package tools_iw

import (
	"context"
	"errors"
	"regexp"

	dogewifi "github.com/dogeorg/dogewifi/pkg"
	tools_parse "github.com/dogeorg/dogewifi/pkg/tools/parse"
	"github.com/sirupsen/logrus"
)

var _ dogewifi.Iw = &IWScanner{}

type IWScanner struct {
	exec dogewifi.Executor
	bin  string
	log  *logrus.Entry
}

func New(config dogewifi.Config, exec dogewifi.Executor) IWScanner {
	return IWScanner{
		exec: exec,
		bin:  config.Paths.Iw,
		log:  config.Log("iw"),
	}
}

func (s IWScanner) Scan(ctx context.Context, options dogewifi.ScanOptions) ([]dogewifi.Network, error) {
	if options.Interface == "" {
		return nil, errors.New("iw scan: no interface given")
	}

	out, err := tools_parse.Run(ctx, s.exec, s.bin, "dev", options.Interface, "scan")
	if err != nil {
		return nil, err
	}

	networks, err := ParseScan(out, options.ShowHidden)
	if err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{
		"interface": options.Interface,
		"networks":  len(networks),
	}).Debug("scan complete")
	return networks, nil
}

var (
	bssRE = regexp.MustCompile(`(?m)^BSS [0-9A-Fa-f]{2}:`)

	addressField  = tools_parse.NewField("address", `BSS ([0-9A-Fa-f:-]{17})\(on`)
	freqField     = tools_parse.NewField("frequency", `freq: ([0-9]+)`)
	signalField   = tools_parse.NewField("signal", `signal: (-?[0-9]+)(?:\.[0-9]+)? dBm`)
	lastSeenField = tools_parse.NewField("last_seen_ms", `last seen: ([0-9]+) ms ago`)
	nullSSID      = tools_parse.NewField("ssid", `(?m)^\s*SSID: \\x00`)
	ssidField     = tools_parse.NewField("ssid", `(?m)^\s*SSID: ([^\n]*)`)
	dsChannel     = tools_parse.NewField("channel", `DS Parameter set: channel ([0-9]+)`)
	htChannel     = tools_parse.NewField("channel", `\* primary channel: ([0-9]+)`)
	rsnMarker     = tools_parse.NewField("security", `RSN:[\s*]+Version: 1`)
	wpaMarker     = tools_parse.NewField("security", `WPA:[\s*]+Version: 1`)
	privacyMarker = tools_parse.NewField("security", `capability: ESS Privacy`)
	essMarker     = tools_parse.NewField("security", `capability: ESS`)
)

// ParseScan parses `iw dev <iface> scan`. A BSS whose SSID is blank or a
// NUL escape is hidden and only kept when showHidden is set.
func ParseScan(output string, showHidden bool) ([]dogewifi.Network, error) {
	var networks []dogewifi.Network

	for _, section := range tools_parse.SplitAt(output, bssRE) {
		network, err := parseBSS(section)
		if err != nil {
			return nil, err
		}
		if network.IsEmpty() {
			continue
		}
		if network.SSID == nil && !showHidden {
			continue
		}
		networks = append(networks, network)
	}

	dogewifi.SortBySignal(networks)
	return networks, nil
}

func parseBSS(section string) (dogewifi.Network, error) {
	network := dogewifi.Network{
		Address: addressField.Lower(section),
	}
	if !nullSSID.Present(section) {
		network.SSID = ssidField.NonEmpty(section)
	}

	err := tools_parse.Ints{
		{Field: freqField, Into: &network.Frequency},
		{Field: signalField, Into: &network.Signal},
		{Field: lastSeenField, Into: &network.LastSeenMs},
		{Field: dsChannel, Into: &network.Channel},
	}.Extract(section)
	if err != nil {
		return dogewifi.Network{}, err
	}
	if network.Channel == nil {
		if network.Channel, err = htChannel.Int(section); err != nil {
			return dogewifi.Network{}, err
		}
	}

	switch {
	case rsnMarker.Present(section):
		network.Security = dogewifi.Ptr(dogewifi.SecurityWPA2)
	case wpaMarker.Present(section):
		network.Security = dogewifi.Ptr(dogewifi.SecurityWPA)
	case privacyMarker.Present(section):
		network.Security = dogewifi.Ptr(dogewifi.SecurityWEP)
	case essMarker.Present(section):
		network.Security = dogewifi.Ptr(dogewifi.SecurityOpen)
	}

	return network, nil
}
