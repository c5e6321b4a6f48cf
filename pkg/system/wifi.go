package system

import (
	dogewifi "github.com/dogeorg/dogewifi/pkg"
	"github.com/mdlayher/wifi"
)

var _ dogewifi.InterfaceLister = &InterfaceLister{}

// InterfaceLister asks nl80211 for the wireless interfaces.
type InterfaceLister struct{}

func (t InterfaceLister) WirelessInterfaces() ([]string, error) {
	c, err := wifi.New()
	if err != nil {
		return nil, err
	}
	defer c.Close()

	ifis, err := c.Interfaces()
	if err != nil {
		return nil, err
	}

	names := []string{}
	for _, ifi := range ifis {
		// P2P devices and the like have no netdev.
		if ifi.Name == "" {
			continue
		}
		names = append(names, ifi.Name)
	}
	return names, nil
}
