// Package tools bundles one of every wrapper around a shared executor,
// process killer and config.
package tools

import (
	dogewifi "github.com/dogeorg/dogewifi/pkg"
	tools_hostapd "github.com/dogeorg/dogewifi/pkg/tools/hostapd"
	tools_ifconfig "github.com/dogeorg/dogewifi/pkg/tools/ifconfig"
	tools_iw "github.com/dogeorg/dogewifi/pkg/tools/iw"
	tools_iwconfig "github.com/dogeorg/dogewifi/pkg/tools/iwconfig"
	tools_iwlist "github.com/dogeorg/dogewifi/pkg/tools/iwlist"
	tools_udhcpc "github.com/dogeorg/dogewifi/pkg/tools/udhcpc"
	tools_udhcpd "github.com/dogeorg/dogewifi/pkg/tools/udhcpd"
	tools_wpacli "github.com/dogeorg/dogewifi/pkg/tools/wpacli"
	tools_wpasupplicant "github.com/dogeorg/dogewifi/pkg/tools/wpasupplicant"
)

type Tools struct {
	Ifconfig      tools_ifconfig.Ifconfig
	Iw            tools_iw.IWScanner
	Iwlist        tools_iwlist.IWListScanner
	Iwconfig      tools_iwconfig.Iwconfig
	WpaCli        tools_wpacli.WpaCli
	WpaSupplicant tools_wpasupplicant.WpaSupplicant
	Hostapd       tools_hostapd.Hostapd
	Udhcpc        tools_udhcpc.Udhcpc
	Udhcpd        tools_udhcpd.Udhcpd
}

func New(config dogewifi.Config, exec dogewifi.Executor, killer dogewifi.ProcessKiller) Tools {
	return Tools{
		Ifconfig:      tools_ifconfig.New(config, exec),
		Iw:            tools_iw.New(config, exec),
		Iwlist:        tools_iwlist.New(config, exec),
		Iwconfig:      tools_iwconfig.New(config, exec),
		WpaCli:        tools_wpacli.New(config, exec),
		WpaSupplicant: tools_wpasupplicant.New(config, exec, killer),
		Hostapd:       tools_hostapd.New(config, exec, killer),
		Udhcpc:        tools_udhcpc.New(config, exec, killer),
		Udhcpd:        tools_udhcpd.New(config, exec, killer),
	}
}
