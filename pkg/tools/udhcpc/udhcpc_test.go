package tools_udhcpc

import (
	"context"
	"errors"
	"reflect"
	"testing"

	dogewifi "github.com/dogeorg/dogewifi/pkg"
	"github.com/dogeorg/dogewifi/pkg/system/fake"
)

func TestEnable(t *testing.T) {
	exec := fake.NewExecutor().
		Stdout("udhcpc -i wlan0 -n", "udhcpc: lease of 192.168.10.123 obtained, lease time 86400\n").
		Fail("udhcpc -i wlan1 -n", 1, "udhcpc: no lease, failing")
	c := New(dogewifi.DefaultConfig(), exec, &fake.Killer{})

	if err := c.Enable(context.Background(), dogewifi.UdhcpcOptions{Interface: "wlan0"}); err != nil {
		t.Errorf("Enable(wlan0) error = %v", err)
	}

	err := c.Enable(context.Background(), dogewifi.UdhcpcOptions{Interface: "wlan1"})
	var perr *dogewifi.ProcessError
	if !errors.As(err, &perr) || perr.ExitCode != 1 {
		t.Errorf("Enable(wlan1) error = %v, want exit 1", err)
	}
}

func TestDisable(t *testing.T) {
	killer := &fake.Killer{Cmdlines: []string{
		"udhcpc -i wlan0 -n",
		"udhcpc -i wlan1 -n",
		"udhcpd /tmp/wlan0-udhcpd.conf",
	}}
	c := New(dogewifi.DefaultConfig(), fake.NewExecutor(), killer)

	if err := c.Disable(context.Background(), "wlan0"); err != nil {
		t.Fatalf("Disable() error = %v", err)
	}
	if got := killer.Killed(); !reflect.DeepEqual(got, []string{"udhcpc -i wlan0 -n"}) {
		t.Errorf("killed = %q", got)
	}
	if got := killer.Patterns(); !reflect.DeepEqual(got, []string{`^udhcpc -i wlan0`}) {
		t.Errorf("patterns = %q", got)
	}
}
