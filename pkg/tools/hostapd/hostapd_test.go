package tools_hostapd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	dogewifi "github.com/dogeorg/dogewifi/pkg"
	"github.com/dogeorg/dogewifi/pkg/system/fake"
	tools_conffile "github.com/dogeorg/dogewifi/pkg/tools/conffile"
)

func testConfig(t *testing.T) dogewifi.Config {
	config := dogewifi.DefaultConfig()
	config.ConfDir = t.TempDir()
	return config
}

func TestConf(t *testing.T) {
	options := dogewifi.HostapdOptions{
		Interface:     "wlan0",
		Channel:       6,
		Driver:        "rtl871xdrv",
		HwMode:        "g",
		SSID:          "RaspberryPi",
		Wpa:           dogewifi.Ptr(2),
		WpaPassphrase: "too many secrets",
		Extra:         []dogewifi.Setting{{Key: "ieee80211n", Value: "1"}},
	}

	want := []string{
		"interface=wlan0",
		"channel=6",
		"driver=rtl871xdrv",
		"hw_mode=g",
		"ssid=RaspberryPi",
		"wpa=2",
		"wpa_passphrase=too many secrets",
		"ieee80211n=1",
	}
	if got := tools_conffile.Render(Conf(options), "="); !reflect.DeepEqual(got, want) {
		t.Errorf("Conf() = %q, want %q", got, want)
	}

	options.Wpa = nil
	options.WpaPassphrase = ""
	options.Extra = nil
	if got := tools_conffile.Render(Conf(options), "="); len(got) != 5 {
		t.Errorf("open Conf() = %q, want 5 lines", got)
	}
}

func TestConfLeavesOutUnset(t *testing.T) {
	tests := []struct {
		name    string
		options dogewifi.HostapdOptions
		want    []string
	}{
		{
			name:    "interface and ssid only",
			options: dogewifi.HostapdOptions{Interface: "wlan0", SSID: "x"},
			want:    []string{"interface=wlan0", "ssid=x"},
		},
		{
			name:    "zero value",
			options: dogewifi.HostapdOptions{Interface: "wlan0"},
			want:    []string{"interface=wlan0"},
		},
		{
			name:    "wpa 0 is kept",
			options: dogewifi.HostapdOptions{Interface: "wlan0", Channel: 11, Wpa: dogewifi.Ptr(0)},
			want:    []string{"interface=wlan0", "channel=11", "wpa=0"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tools_conffile.Render(Conf(tt.options), "="); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Conf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEnable(t *testing.T) {
	config := testConfig(t)
	conf := filepath.Join(config.ConfDir, "wlan0-hostapd.conf")
	cmdline := "hostapd -B " + conf

	var staged string
	exec := fake.NewExecutor().Stdout(cmdline, "")
	exec.OnExec = func(call fake.Call) {
		b, _ := os.ReadFile(conf)
		staged = string(b)
	}

	h := New(config, exec, &fake.Killer{})
	err := h.Enable(context.Background(), dogewifi.HostapdOptions{
		Interface: "wlan0", Channel: 6, Driver: "nl80211", HwMode: "g", SSID: "ap",
	})
	if err != nil {
		t.Fatalf("Enable() error = %v", err)
	}

	if got := exec.CommandLines(); !reflect.DeepEqual(got, []string{cmdline}) {
		t.Errorf("commands = %q", got)
	}
	if staged != "interface=wlan0\nchannel=6\ndriver=nl80211\nhw_mode=g\nssid=ap\n" {
		t.Errorf("staged config = %q", staged)
	}
	if _, err := os.Stat(conf); !os.IsNotExist(err) {
		t.Errorf("config left behind: %v", err)
	}
}

func TestEnableFailure(t *testing.T) {
	config := testConfig(t)
	conf := filepath.Join(config.ConfDir, "wlan0-hostapd.conf")
	exec := fake.NewExecutor().Fail("hostapd -B "+conf, 1, "Could not set channel")

	h := New(config, exec, &fake.Killer{})
	err := h.Enable(context.Background(), dogewifi.HostapdOptions{Interface: "wlan0"})
	if !errors.Is(err, dogewifi.ErrProcessFailed) {
		t.Errorf("Enable() error = %v, want ErrProcessFailed", err)
	}
	if _, err := os.Stat(conf); !os.IsNotExist(err) {
		t.Errorf("config left behind after failure: %v", err)
	}
}

func TestDisable(t *testing.T) {
	config := testConfig(t)
	conf := filepath.Join(config.ConfDir, "wlan0-hostapd.conf")
	killer := &fake.Killer{Cmdlines: []string{
		"hostapd -B " + conf,
		"hostapd -B " + filepath.Join(config.ConfDir, "wlan1-hostapd.conf"),
		"sh -c hostapd -B " + conf,
	}}

	h := New(config, fake.NewExecutor(), killer)
	if err := h.Disable(context.Background(), "wlan0"); err != nil {
		t.Fatalf("Disable() error = %v", err)
	}
	if got := killer.Killed(); !reflect.DeepEqual(got, []string{"hostapd -B " + conf}) {
		t.Errorf("killed = %q", got)
	}

	if err := h.Disable(context.Background(), "wlan0"); err != nil {
		t.Errorf("Disable() with nothing running error = %v", err)
	}

	killer.Err = errors.New("permission denied")
	if err := h.Disable(context.Background(), "wlan1"); err != nil {
		t.Errorf("Disable() with failing killer error = %v", err)
	}
}
