package tools_iwconfig

import (
	"context"
	"strings"

	dogewifi "github.com/dogeorg/dogewifi/pkg"
	tools_parse "github.com/dogeorg/dogewifi/pkg/tools/parse"
	"github.com/sirupsen/logrus"
)

var _ dogewifi.Iwconfig = &Iwconfig{}

type Iwconfig struct {
	exec dogewifi.Executor
	bin  string
	log  *logrus.Entry
}

func New(config dogewifi.Config, exec dogewifi.Executor) Iwconfig {
	return Iwconfig{
		exec: exec,
		bin:  config.Paths.Iwconfig,
		log:  config.Log("iwconfig"),
	}
}

func (t Iwconfig) Status(ctx context.Context, iface string) (dogewifi.IwconfigStatus, error) {
	out, err := tools_parse.Run(ctx, t.exec, t.bin, iface)
	if err != nil {
		return dogewifi.IwconfigStatus{}, err
	}
	status, err := ParseStatus(out)
	if err != nil {
		return dogewifi.IwconfigStatus{}, err
	}
	t.log.WithFields(logrus.Fields{
		"interface":    iface,
		"unassociated": status.Unassociated != nil,
	}).Debug("status read")
	return status, nil
}

func (t Iwconfig) StatusAll(ctx context.Context) ([]dogewifi.IwconfigStatus, error) {
	out, err := tools_parse.Run(ctx, t.exec, t.bin)
	if err != nil {
		return nil, err
	}
	statuses, err := ParseStatusAll(out)
	if err != nil {
		return nil, err
	}
	t.log.WithField("interfaces", len(statuses)).Debug("status read")
	return statuses, nil
}

var (
	nameField         = tools_parse.NewField("interface", `^([^\s]+)`)
	accessPointField  = tools_parse.NewField("access_point", `Access Point:\s*([A-Fa-f0-9:]{17})`)
	frequencyField    = tools_parse.NewField("frequency", `Frequency[:|=]\s*([0-9.]+)`)
	ieeeField         = tools_parse.NewField("ieee", `IEEE\s*([^\s]+)`)
	modeField         = tools_parse.NewField("mode", `Mode[:|=]\s*([^\s]+)`)
	noiseField        = tools_parse.NewField("noise", `Noise level[:|=]\s*(-?[0-9]+)`)
	qualityField      = tools_parse.NewField("quality", `Link Quality[:|=]\s*([0-9]+)`)
	sensitivityField  = tools_parse.NewField("sensitivity", `Sensitivity[:|=]\s*([0-9]+)`)
	signalField       = tools_parse.NewField("signal", `Signal level[:|=]\s*(-?[0-9]+)`)
	essidField        = tools_parse.NewField("ssid", `ESSID[:|=]\s*"([^"]+)"`)
	unassociatedField = tools_parse.NewField("unassociated", `unassociated`)
)

// ParseStatus parses the block printed by `iwconfig <interface>`.
// Frequencies are reported in GHz and returned in MHz.
func ParseStatus(block string) (dogewifi.IwconfigStatus, error) {
	block = strings.TrimSpace(block)
	name, _ := nameField.Find(block)

	status := dogewifi.IwconfigStatus{
		Interface:    name,
		AccessPoint:  accessPointField.Lower(block),
		IEEE:         ieeeField.Lower(block),
		Mode:         modeField.Lower(block),
		SSID:         essidField.String(block),
		Unassociated: unassociatedField.Flag(block),
	}

	err := tools_parse.Ints{
		{Field: frequencyField, Into: &status.Frequency, GHz: true},
		{Field: noiseField, Into: &status.Noise},
		{Field: qualityField, Into: &status.Quality},
		{Field: sensitivityField, Into: &status.Sensitivity},
		{Field: signalField, Into: &status.Signal},
	}.Extract(block)
	if err != nil {
		return dogewifi.IwconfigStatus{}, err
	}
	return status, nil
}

// ParseStatusAll parses plain `iwconfig`, one record per blank-line block.
func ParseStatusAll(stdout string) ([]dogewifi.IwconfigStatus, error) {
	blocks := tools_parse.SplitBlocks(stdout)
	statuses := make([]dogewifi.IwconfigStatus, 0, len(blocks))
	for _, block := range blocks {
		status, err := ParseStatus(block)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}
