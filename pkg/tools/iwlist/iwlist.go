package tools_iwlist

import (
	"context"
	"errors"
	"regexp"

	dogewifi "github.com/dogeorg/dogewifi/pkg"
	tools_parse "github.com/dogeorg/dogewifi/pkg/tools/parse"
	"github.com/sirupsen/logrus"
)

var _ dogewifi.Iwlist = &IWListScanner{}

type IWListScanner struct {
	exec dogewifi.Executor
	bin  string
	log  *logrus.Entry
}

func New(config dogewifi.Config, exec dogewifi.Executor) IWListScanner {
	return IWListScanner{
		exec: exec,
		bin:  config.Paths.Iwlist,
		log:  config.Log("iwlist"),
	}
}

func (s IWListScanner) Scan(ctx context.Context, options dogewifi.ScanOptions) ([]dogewifi.Network, error) {
	if options.Interface == "" {
		return nil, errors.New("iwlist scan: no interface given")
	}
	args := []string{options.Interface, "scan"}
	if options.SSID != "" {
		args = append(args, "essid", options.SSID)
	}

	out, err := tools_parse.Run(ctx, s.exec, s.bin, args...)
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
	cellRE = regexp.MustCompile(`Cell [0-9]+ -`)

	addressField   = tools_parse.NewField("address", `Address\s*[:|=]\s*([A-Fa-f0-9:]{17})`)
	channelField   = tools_parse.NewField("channel", `Channel\s*[:|=]?\s*([0-9]+)`)
	frequencyField = tools_parse.NewField("frequency", `Frequency\s*[:|=]\s*([0-9.]+)\s*GHz`)
	modeField      = tools_parse.NewField("mode", `Mode\s*[:|=]\s*([^\s]+)`)
	qualityField   = tools_parse.NewField("quality", `Quality\s*[:|=]\s*([0-9]+)`)
	signalField    = tools_parse.NewField("signal", `Signal level\s*[:|=]\s*(-?[0-9]+)`)
	noiseField     = tools_parse.NewField("noise", `Noise level\s*[:|=]\s*(-?[0-9]+)`)
	essidField     = tools_parse.NewField("ssid", `ESSID\s*[:|=]\s*"([^"]+)"`)
	wpa2Marker     = tools_parse.NewField("security", `WPA2\s+Version`)
	wpaMarker      = tools_parse.NewField("security", `WPA\s+Version`)
	encryptionOn   = tools_parse.NewField("security", `Encryption key\s*[:|=]\s*on`)
	encryptionOff  = tools_parse.NewField("security", `Encryption key\s*[:|=]\s*off`)
)

// ParseScan parses `iwlist <iface> scan`. Cells without an ESSID are only
// kept when showHidden is set. Networks are ordered by descending signal.
func ParseScan(output string, showHidden bool) ([]dogewifi.Network, error) {
	var networks []dogewifi.Network

	for _, cell := range cellRE.Split(output, -1) {
		network, err := parseCell(cell)
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

func parseCell(cell string) (dogewifi.Network, error) {
	network := dogewifi.Network{
		Address: addressField.Lower(cell),
		Mode:    modeField.Lower(cell),
		SSID:    essidField.String(cell),
	}

	err := tools_parse.Ints{
		{Field: channelField, Into: &network.Channel},
		{Field: frequencyField, Into: &network.Frequency, GHz: true},
		{Field: qualityField, Into: &network.Quality},
		{Field: signalField, Into: &network.Signal},
		{Field: noiseField, Into: &network.Noise},
	}.Extract(cell)
	if err != nil {
		return dogewifi.Network{}, err
	}

	switch {
	case wpa2Marker.Present(cell):
		network.Security = dogewifi.Ptr(dogewifi.SecurityWPA2)
	case wpaMarker.Present(cell):
		network.Security = dogewifi.Ptr(dogewifi.SecurityWPA)
	case encryptionOn.Present(cell):
		network.Security = dogewifi.Ptr(dogewifi.SecurityWEP)
	case encryptionOff.Present(cell):
		network.Security = dogewifi.Ptr(dogewifi.SecurityOpen)
	}

	return network, nil
}
