package dogewifi

import "context"

// Every tool wrapper runs one command per call and parses its stdout.
// The deferred variant of any of these is obtained with Async/AsyncErr.

type Ifconfig interface {
	Status(ctx context.Context, iface string) (InterfaceStatus, error)
	StatusAll(ctx context.Context) ([]InterfaceStatus, error)
	Up(ctx context.Context, options IfconfigUpOptions) error
	Down(ctx context.Context, iface string) error
}

type Iw interface {
	Scan(ctx context.Context, options ScanOptions) ([]Network, error)
}

type Iwlist interface {
	Scan(ctx context.Context, options ScanOptions) ([]Network, error)
}

type Iwconfig interface {
	Status(ctx context.Context, iface string) (IwconfigStatus, error)
	StatusAll(ctx context.Context) ([]IwconfigStatus, error)
}

type WpaCli interface {
	Status(ctx context.Context, iface string) (WpaStatus, error)
	Bssid(ctx context.Context, iface, ap, ssid string) (CommandResult, error)
	Reassociate(ctx context.Context, iface string) (CommandResult, error)
	Set(ctx context.Context, iface, variable, value string) (CommandResult, error)
	ListNetworks(ctx context.Context, iface string) ([]WpaNetworkEntry, error)
	AddNetwork(ctx context.Context, iface string) (CommandResult, error)
	SetNetwork(ctx context.Context, iface, id, variable, value string) (CommandResult, error)
	EnableNetwork(ctx context.Context, iface, id string) (CommandResult, error)
	DisableNetwork(ctx context.Context, iface, id string) (CommandResult, error)
	RemoveNetwork(ctx context.Context, iface, id string) (CommandResult, error)
	SelectNetwork(ctx context.Context, iface, id string) (CommandResult, error)
	Scan(ctx context.Context, iface string) (CommandResult, error)
	ScanResults(ctx context.Context, iface string) ([]WpaScanResult, error)
	SaveConfig(ctx context.Context, iface string) (CommandResult, error)
}

type WpaSupplicant interface {
	Enable(ctx context.Context, options WpaSupplicantEnableOptions) error
	Manual(ctx context.Context, options WpaSupplicantManualOptions) error
	Disable(ctx context.Context, iface string) error
}

type Hostapd interface {
	Enable(ctx context.Context, options HostapdOptions) error
	Disable(ctx context.Context, iface string) error
}

type Udhcpc interface {
	Enable(ctx context.Context, options UdhcpcOptions) error
	Disable(ctx context.Context, iface string) error
}

type Udhcpd interface {
	Enable(ctx context.Context, options UdhcpdOptions) error
	Disable(ctx context.Context, iface string) error
}
