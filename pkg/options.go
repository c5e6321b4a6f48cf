package dogewifi

// Setting is an extra configuration key passed through verbatim, in order.
type Setting struct {
	Key   string
	Value string
}

type IfconfigUpOptions struct {
	Interface      string
	IPv4Address    string
	IPv4Broadcast  string
	IPv4SubnetMask string
}

// ScanOptions drives both the iw and the iwlist scans. SSID is only
// understood by iwlist.
type ScanOptions struct {
	Interface  string
	ShowHidden bool
	SSID       string
}

// HostapdOptions become the lines of a hostapd.conf, in field order followed
// by Extra. Empty strings, a zero Channel and a nil Wpa are left out.
type HostapdOptions struct {
	Interface     string
	Channel       int
	Driver        string
	HwMode        string
	SSID          string
	Wpa           *int
	WpaPassphrase string
	Extra         []Setting
}

type UdhcpcOptions struct {
	Interface string
}

// UdhcpdOptions become the lines of a udhcpd.conf. DNS servers expand to one
// `option dns` line each.
type UdhcpdOptions struct {
	Interface string
	Start     string
	End       string
	Option    UdhcpdOption
	Extra     []Setting
}

type UdhcpdOption struct {
	Router string
	Subnet string
	DNS    []string
}

// WpaSupplicantEnableOptions configure a single-network supplicant. An empty
// Passphrase configures an open network.
type WpaSupplicantEnableOptions struct {
	Interface  string
	SSID       string
	Passphrase string
	Driver     string
}

// WpaSupplicantManualOptions start a supplicant with only a control socket,
// to be driven through wpa_cli.
type WpaSupplicantManualOptions struct {
	Interface string
	Drivers   []string
}
