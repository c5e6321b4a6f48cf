package tools_conffile

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name string
		root Value
		sep  string
		want []string
	}{
		{
			name: "entry order is kept",
			root: Map(
				E("ssid", String("Fake-Wifi")),
				E("channel", Int(6)),
				E("driver", String("nl80211")),
				E("hw_mode", String("g")),
			),
			sep:  "=",
			want: []string{"ssid=Fake-Wifi", "channel=6", "driver=nl80211", "hw_mode=g"},
		},
		{
			name: "lists repeat the key path",
			root: Map(
				E("interface", String("wlan0")),
				E("option", Map(
					E("router", String("192.168.10.1")),
					E("dns", List("8.8.8.8", "8.8.4.4")),
				)),
			),
			sep: " ",
			want: []string{
				"interface wlan0",
				"option router 192.168.10.1",
				"option dns 8.8.8.8",
				"option dns 8.8.4.4",
			},
		},
		{
			name: "empty list emits nothing",
			root: Map(E("dns", List())),
			sep:  " ",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.root, tt.sep); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFlattenPathsAreIndependent(t *testing.T) {
	lines := Flatten(Map(
		E("a", Map(E("b", String("1")), E("c", String("2")))),
		E("d", String("3")),
	))

	want := []Line{
		{Path: []string{"a", "b"}, Value: "1"},
		{Path: []string{"a", "c"}, Value: "2"},
		{Path: []string{"d"}, Value: "3"},
	}
	if !reflect.DeepEqual(lines, want) {
		t.Errorf("Flatten() = %+v, want %+v", lines, want)
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := Path(dir, "wlan0", "udhcpd")
	if path != filepath.Join(dir, "wlan0-udhcpd.conf") {
		t.Fatalf("Path() = %s", path)
	}

	if err := WriteFile(path, []string{"interface wlan0", "start 192.168.10.100"}); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "interface wlan0\nstart 192.168.10.100\n" {
		t.Errorf("content = %q", b)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("mode = %v, want 0600", info.Mode().Perm())
	}
}
