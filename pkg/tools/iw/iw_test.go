package tools_iw

import (
	"context"
	"errors"
	"reflect"
	"testing"

	dogewifi "github.com/dogeorg/dogewifi/pkg"
	"github.com/dogeorg/dogewifi/pkg/system/fake"
)

const iwScan = `BSS 14:91:82:c7:76:b9(on wlan0)
	TSF: 11138149185 usec (0d, 03:05:38)
	freq: 2412
	beacon interval: 100 TUs
	capability: ESS Privacy ShortSlotTime (0x0411)
	signal: -67.00 dBm
	last seen: 1840 ms ago
	Information elements from Probe Response frame:
	SSID: Home
	Supported rates: 1.0* 2.0* 5.5* 11.0* 6.0 9.0 12.0 18.0
	DS Parameter set: channel 1
	RSN:	 * Version: 1
		 * Group cipher: CCMP
		 * Pairwise ciphers: CCMP
		 * Authentication suites: PSK
BSS 00:0b:81:ab:14:22(on wlan0) -- associated
	freq: 5180
	capability: ESS Privacy (0x0011)
	signal: -51.00 dBm
	last seen: 20 ms ago
	SSID: Office
	HT operation:
		 * primary channel: 36
	WPA:	 * Version: 1
		 * Group cipher: TKIP
BSS 2c:f5:d3:02:ea:d9(on wlan0)
	freq: 2437
	capability: ESS ShortSlotTime (0x0401)
	signal: -80.00 dBm
	last seen: 3100 ms ago
	SSID:
	DS Parameter set: channel 6
BSS 2c:f5:d3:02:ea:da(on wlan0)
	freq: 2437
	capability: ESS Privacy ShortSlotTime (0x0411)
	signal: -75.00 dBm
	last seen: 3100 ms ago
	SSID: \x00\x00\x00\x00
	DS Parameter set: channel 6
`

func TestParseScan(t *testing.T) {
	got, err := ParseScan(iwScan, false)
	if err != nil {
		t.Fatalf("ParseScan() error = %v", err)
	}

	want := []dogewifi.Network{
		{
			Address:    dogewifi.Ptr("00:0b:81:ab:14:22"),
			Frequency:  dogewifi.Ptr(5180),
			Signal:     dogewifi.Ptr(-51),
			LastSeenMs: dogewifi.Ptr(20),
			SSID:       dogewifi.Ptr("Office"),
			Channel:    dogewifi.Ptr(36),
			Security:   dogewifi.Ptr("wpa"),
		},
		{
			Address:    dogewifi.Ptr("14:91:82:c7:76:b9"),
			Frequency:  dogewifi.Ptr(2412),
			Signal:     dogewifi.Ptr(-67),
			LastSeenMs: dogewifi.Ptr(1840),
			SSID:       dogewifi.Ptr("Home"),
			Channel:    dogewifi.Ptr(1),
			Security:   dogewifi.Ptr("wpa2"),
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseScan() = %+v, want %+v", got, want)
	}
}

func TestParseScanShowHidden(t *testing.T) {
	got, err := ParseScan(iwScan, true)
	if err != nil {
		t.Fatalf("ParseScan() error = %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("ParseScan(showHidden) returned %d networks, want 4", len(got))
	}

	tests := []struct {
		address  string
		security string
	}{
		{"2c:f5:d3:02:ea:da", dogewifi.SecurityWEP},
		{"2c:f5:d3:02:ea:d9", dogewifi.SecurityOpen},
	}
	for i, tt := range tests {
		n := got[2+i]
		if n.Address == nil || *n.Address != tt.address {
			t.Errorf("network %d address = %v, want %s", 2+i, n.Address, tt.address)
		}
		if n.SSID != nil {
			t.Errorf("network %d SSID = %q, want absent", 2+i, *n.SSID)
		}
		if n.Security == nil || *n.Security != tt.security {
			t.Errorf("network %d security = %v, want %s", 2+i, n.Security, tt.security)
		}
	}
}

func TestScanProcessFailure(t *testing.T) {
	exec := fake.NewExecutor().Fail("iw dev wlan0 scan", 240, "command failed: Device or resource busy (-16)")
	scanner := New(dogewifi.DefaultConfig(), exec)

	_, err := scanner.Scan(context.Background(), dogewifi.ScanOptions{Interface: "wlan0"})
	if !errors.Is(err, dogewifi.ErrProcessFailed) {
		t.Errorf("Scan() error = %v, want ErrProcessFailed", err)
	}
}

func TestScanRequiresInterface(t *testing.T) {
	scanner := New(dogewifi.DefaultConfig(), fake.NewExecutor())
	if _, err := scanner.Scan(context.Background(), dogewifi.ScanOptions{}); err == nil {
		t.Error("Scan() without interface error = nil")
	}
}
