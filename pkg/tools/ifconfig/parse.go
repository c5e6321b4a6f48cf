package tools_ifconfig

import (
	"strings"

	dogewifi "github.com/dogeorg/dogewifi/pkg"
	tools_parse "github.com/dogeorg/dogewifi/pkg/tools/parse"
)

var (
	nameField     = tools_parse.NewField("interface", `^([^\s]+)`)
	linkField     = tools_parse.NewField("link", `Link encap:\s*([^\s]+)`)
	hwaddrField   = tools_parse.NewField("address", `HWaddr\s+([^\s]+)`)
	inet6Field    = tools_parse.NewField("ipv6_address", `inet6\s+addr:\s*([^\s]+)`)
	inetField     = tools_parse.NewField("ipv4_address", `inet\s+addr:\s*([^\s]+)`)
	bcastField    = tools_parse.NewField("ipv4_broadcast", `Bcast:\s*([^\s]+)`)
	maskField     = tools_parse.NewField("ipv4_subnet_mask", `Mask:\s*([^\s]+)`)
	upFlag        = tools_parse.NewField("up", `UP`)
	broadcastFlag = tools_parse.NewField("broadcast", `BROADCAST`)
	runningFlag   = tools_parse.NewField("running", `RUNNING`)
	multicastFlag = tools_parse.NewField("multicast", `MULTICAST`)
	loopbackFlag  = tools_parse.NewField("loopback", `LOOPBACK`)
)

// net-tools 2.x layout, consulted only where the classic markers are missing.
var (
	etherField    = tools_parse.NewField("address", `\bether\s+([0-9A-Fa-f:]{17})`)
	newInet6Field = tools_parse.NewField("ipv6_address", `inet6\s+([0-9A-Fa-f:]*:[0-9A-Fa-f:]*)`)
	newInetField  = tools_parse.NewField("ipv4_address", `\binet\s+([0-9]+\.[0-9]+\.[0-9]+\.[0-9]+)`)
	newBcastField = tools_parse.NewField("ipv4_broadcast", `\bbroadcast\s+([0-9]+\.[0-9]+\.[0-9]+\.[0-9]+)`)
	newMaskField  = tools_parse.NewField("ipv4_subnet_mask", `\bnetmask\s+([0-9]+\.[0-9]+\.[0-9]+\.[0-9]+)`)
	newLinkField  = tools_parse.NewField("link", `\((Ethernet|Local Loopback|UNSPEC)\)`)
)

// ParseStatus parses the block printed by `ifconfig <interface>`. A blank
// block has no interface name and yields a record with Interface "".
func ParseStatus(block string) dogewifi.InterfaceStatus {
	block = strings.TrimSpace(block)

	name, _ := nameField.Find(block)
	parsed := dogewifi.InterfaceStatus{
		Interface: strings.TrimSuffix(name, ":"),
		Link:      linkField.Lower(block),
		Address:   hwaddrField.Lower(block),
		// IPv6 is probed first; the IPv4 marker cannot match an inet6 line.
		IPv6Address:    inet6Field.String(block),
		IPv4Address:    inetField.String(block),
		IPv4Broadcast:  bcastField.String(block),
		IPv4SubnetMask: maskField.String(block),
		Up:             upFlag.Flag(block),
		Broadcast:      broadcastFlag.Flag(block),
		Running:        runningFlag.Flag(block),
		Multicast:      multicastFlag.Flag(block),
		Loopback:       loopbackFlag.Flag(block),
	}

	if parsed.Link == nil {
		if l := newLinkField.Lower(block); l != nil {
			// "Local Loopback" reads as "local", as with Link encap.
			parsed.Link = dogewifi.Ptr(strings.Fields(*l)[0])
		}
	}
	if parsed.Address == nil {
		parsed.Address = etherField.Lower(block)
	}
	if parsed.IPv6Address == nil {
		parsed.IPv6Address = newInet6Field.String(block)
	}
	if parsed.IPv4Address == nil {
		parsed.IPv4Address = newInetField.String(block)
	}
	if parsed.IPv4Broadcast == nil {
		parsed.IPv4Broadcast = newBcastField.String(block)
	}
	if parsed.IPv4SubnetMask == nil {
		parsed.IPv4SubnetMask = newMaskField.String(block)
	}

	return parsed
}

// ParseStatusAll parses `ifconfig -a`, one record per blank-line block.
func ParseStatusAll(stdout string) []dogewifi.InterfaceStatus {
	blocks := tools_parse.SplitBlocks(stdout)
	statuses := make([]dogewifi.InterfaceStatus, 0, len(blocks))
	for _, block := range blocks {
		statuses = append(statuses, ParseStatus(block))
	}
	return statuses
}
