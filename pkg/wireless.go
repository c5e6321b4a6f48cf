package dogewifi

import "sort"

// InterfaceStatus is one interface block of `ifconfig` output.
// Flags are either nil or true, never an explicit false.
type InterfaceStatus struct {
	Interface      string  `json:"interface"`
	Link           *string `json:"link,omitempty"`
	Address        *string `json:"address,omitempty"`
	IPv6Address    *string `json:"ipv6_address,omitempty"`
	IPv4Address    *string `json:"ipv4_address,omitempty"`
	IPv4Broadcast  *string `json:"ipv4_broadcast,omitempty"`
	IPv4SubnetMask *string `json:"ipv4_subnet_mask,omitempty"`
	Up             *bool   `json:"up,omitempty"`
	Broadcast      *bool   `json:"broadcast,omitempty"`
	Running        *bool   `json:"running,omitempty"`
	Multicast      *bool   `json:"multicast,omitempty"`
	Loopback       *bool   `json:"loopback,omitempty"`
}

// Network is a single access point found by `iw` or `iwlist`.
type Network struct {
	Address    *string `json:"address,omitempty"`
	Frequency  *int    `json:"frequency,omitempty"`
	Signal     *int    `json:"signal,omitempty"`
	SSID       *string `json:"ssid,omitempty"`
	Channel    *int    `json:"channel,omitempty"`
	Security   *string `json:"security,omitempty"`
	Mode       *string `json:"mode,omitempty"`
	Quality    *int    `json:"quality,omitempty"`
	Noise      *int    `json:"noise,omitempty"`
	LastSeenMs *int    `json:"last_seen_ms,omitempty"`
}

// IsEmpty reports whether nothing at all was extracted for the network.
func (n Network) IsEmpty() bool {
	return n == Network{}
}

// SortBySignal orders networks strongest first, networks without a signal
// reading last. Equal signals keep the order the tool reported.
func SortBySignal(networks []Network) {
	sort.SliceStable(networks, func(i, j int) bool {
		a, b := networks[i].Signal, networks[j].Signal
		if a == nil || b == nil {
			return a != nil
		}
		return *a > *b
	})
}

// Security classifications reported for scanned networks.
const (
	SecurityWPA2 = "wpa2"
	SecurityWPA  = "wpa"
	SecurityWEP  = "wep"
	SecurityOpen = "open"
)

// IwconfigStatus is one interface block of `iwconfig` output.
type IwconfigStatus struct {
	Interface    string  `json:"interface"`
	AccessPoint  *string `json:"access_point,omitempty"`
	Frequency    *int    `json:"frequency,omitempty"`
	IEEE         *string `json:"ieee,omitempty"`
	Mode         *string `json:"mode,omitempty"`
	Noise        *int    `json:"noise,omitempty"`
	Quality      *int    `json:"quality,omitempty"`
	Sensitivity  *int    `json:"sensitivity,omitempty"`
	Signal       *int    `json:"signal,omitempty"`
	SSID         *string `json:"ssid,omitempty"`
	Unassociated *bool   `json:"unassociated,omitempty"`
}

// WpaStatus is the parsed `wpa_cli status` dump.
type WpaStatus struct {
	BSSID            *string `json:"bssid,omitempty"`
	Frequency        *int    `json:"frequency,omitempty"`
	Mode             *string `json:"mode,omitempty"`
	KeyMgmt          *string `json:"key_mgmt,omitempty"`
	SSID             *string `json:"ssid,omitempty"`
	PairwiseCipher   *string `json:"pairwise_cipher,omitempty"`
	GroupCipher      *string `json:"group_cipher,omitempty"`
	P2PDeviceAddress *string `json:"p2p_device_address,omitempty"`
	WpaState         *string `json:"wpa_state,omitempty"`
	IP               *string `json:"ip,omitempty"`
	MAC              *string `json:"mac,omitempty"`
	UUID             *string `json:"uuid,omitempty"`
	ID               *int    `json:"id,omitempty"`
}

// WpaScanResult is one row of `wpa_cli scan_results`.
type WpaScanResult struct {
	BSSID       *string `json:"bssid,omitempty"`
	Frequency   *int    `json:"frequency,omitempty"`
	SignalLevel *int    `json:"signalLevel,omitempty"`
	Flags       *string `json:"flags,omitempty"`
	SSID        *string `json:"ssid,omitempty"`
}

func (r WpaScanResult) IsEmpty() bool {
	return r == WpaScanResult{}
}

// WpaNetworkEntry is one row of `wpa_cli list_networks`. Columns missing
// from a short row stay nil; a column present but empty is "".
type WpaNetworkEntry struct {
	NetworkID string  `json:"network_id"`
	SSID      *string `json:"ssid,omitempty"`
	BSSID     *string `json:"bssid,omitempty"`
	Flags     *string `json:"flags,omitempty"`
}

// CommandResult carries the first token printed by a wpa_cli command:
// OK, FAIL, or the id returned by add_network.
type CommandResult struct {
	Result string `json:"result"`
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}
