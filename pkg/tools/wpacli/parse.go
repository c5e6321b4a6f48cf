package tools_wpacli

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver"
	dogewifi "github.com/dogeorg/dogewifi/pkg"
	tools_parse "github.com/dogeorg/dogewifi/pkg/tools/parse"
)

// Keys are anchored to the start of a line, so ssid= never matches inside
// bssid=, address= never inside p2p_device_address=, id= never inside ssid=.
var (
	bssidField          = tools_parse.NewField("bssid", `(?m)^bssid=([A-Fa-f0-9:]{17})`)
	freqField           = tools_parse.NewField("freq", `(?m)^freq=([0-9]+)`)
	modeField           = tools_parse.NewField("mode", `(?m)^mode=([^\s]+)`)
	keyMgmtField        = tools_parse.NewField("key_mgmt", `(?m)^key_mgmt=([^\s]+)`)
	ssidField           = tools_parse.NewField("ssid", `(?m)^ssid=([^\n]+)`)
	pairwiseCipherField = tools_parse.NewField("pairwise_cipher", `(?m)^pairwise_cipher=([^\n]+)`)
	groupCipherField    = tools_parse.NewField("group_cipher", `(?m)^group_cipher=([^\n]+)`)
	p2pAddressField     = tools_parse.NewField("p2p_device_address", `(?m)^p2p_device_address=([A-Fa-f0-9:]{17})`)
	wpaStateField       = tools_parse.NewField("wpa_state", `(?m)^wpa_state=([^\s]+)`)
	ipAddressField      = tools_parse.NewField("ip_address", `(?m)^ip_address=([^\n]+)`)
	addressField        = tools_parse.NewField("address", `(?m)^address=([A-Fa-f0-9:]{17})`)
	uuidField           = tools_parse.NewField("uuid", `(?m)^uuid=([^\n]+)`)
	idField             = tools_parse.NewField("id", `(?m)^id=([0-9]+)`)
)

// ParseStatus parses the key=value dump of `wpa_cli status`. Keys missing
// from the dump are left unset.
func ParseStatus(stdout string) (dogewifi.WpaStatus, error) {
	block := strings.ReplaceAll(strings.TrimSpace(stdout), "\r\n", "\n")

	status := dogewifi.WpaStatus{
		BSSID:            bssidField.Lower(block),
		Mode:             modeField.String(block),
		KeyMgmt:          keyMgmtField.Lower(block),
		SSID:             ssidField.String(block),
		PairwiseCipher:   pairwiseCipherField.String(block),
		GroupCipher:      groupCipherField.String(block),
		P2PDeviceAddress: p2pAddressField.String(block),
		WpaState:         wpaStateField.String(block),
		IP:               ipAddressField.String(block),
		MAC:              addressField.Lower(block),
		UUID:             uuidField.String(block),
	}

	err := tools_parse.Ints{
		{Field: freqField, Into: &status.Frequency},
		{Field: idField, Into: &status.ID},
	}.Extract(block)
	if err != nil {
		return dogewifi.WpaStatus{}, err
	}
	return status, nil
}

var (
	scanBSSIDField  = tools_parse.NewField("bssid", `([A-Fa-f0-9:]{17})\t`)
	scanFreqField   = tools_parse.NewField("frequency", `\t([0-9]+)\t+`)
	scanSignalField = tools_parse.NewField("signal_level", `(-[0-9]+)\t`)
	scanFlagsField  = tools_parse.NewField("flags", `\t(\[.+\])\t`)
	scanSSIDField   = tools_parse.NewField("ssid", `\t([^\t]{1,32})$`)
)

// ParseScanResults parses the `bssid\tfrequency\tsignal\tflags\tssid`
// table of `wpa_cli scan_results`. Lines yielding no field produce no row.
func ParseScanResults(stdout string) ([]dogewifi.WpaScanResult, error) {
	var results []dogewifi.WpaScanResult

	for _, line := range tools_parse.SplitTable(stdout) {
		line = strings.TrimRight(line, "\r")
		result := dogewifi.WpaScanResult{
			BSSID: scanBSSIDField.Lower(line),
			Flags: scanFlagsField.String(line),
			SSID:  scanSSIDField.String(line),
		}
		err := tools_parse.Ints{
			{Field: scanFreqField, Into: &result.Frequency},
			{Field: scanSignalField, Into: &result.SignalLevel},
		}.Extract(line)
		if err != nil {
			return nil, err
		}

		if result.IsEmpty() {
			continue
		}
		results = append(results, result)
	}

	return results, nil
}

// ParseListNetworks parses the `network id / ssid / bssid / flags` table of
// `wpa_cli list_networks`. The header line is always dropped.
func ParseListNetworks(stdout string) []dogewifi.WpaNetworkEntry {
	rows := tools_parse.SplitTable(stdout)
	networks := make([]dogewifi.WpaNetworkEntry, 0, len(rows))

	for _, row := range rows {
		columns := strings.Split(strings.TrimRight(row, "\r"), "\t")
		entry := dogewifi.WpaNetworkEntry{NetworkID: columns[0]}
		for i, into := range []**string{&entry.SSID, &entry.BSSID, &entry.Flags} {
			if i+1 < len(columns) {
				*into = dogewifi.Ptr(columns[i+1])
			}
		}
		networks = append(networks, entry)
	}
	return networks
}

var versionRE = regexp.MustCompile(`wpa_cli v([0-9]+(?:\.[0-9]+){1,2})`)

// ParseVersion reads the banner of `wpa_cli -v`, e.g. "wpa_cli v2.10".
func ParseVersion(stdout string) (*semver.Version, error) {
	m := versionRE.FindStringSubmatch(stdout)
	if m == nil {
		return nil, fmt.Errorf("no wpa_cli version in %q", tools_parse.FirstLine(stdout))
	}
	return semver.NewVersion(m[1])
}
