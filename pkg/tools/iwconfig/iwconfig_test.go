package tools_iwconfig

import (
	"context"
	"reflect"
	"testing"

	dogewifi "github.com/dogeorg/dogewifi/pkg"
	"github.com/dogeorg/dogewifi/pkg/system/fake"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

const iwconfigAll = `wlan0     IEEE 802.11bg  ESSID:"RaspberryPi"  Nickname:"<WIFI@REALTEK>"
          Mode:Managed  Frequency:2.437 GHz  Access Point: 00:0B:81:95:12:21
          Bit Rate:54 Mb/s   Sensitivity:0/0
          Retry:off   RTS thr:off   Fragment thr:off
          Power Management:off
          Link Quality=18/100  Signal level=11/100  Noise level=0/100
          Rx invalid nwid:0  Rx invalid crypt:0  Rx invalid frag:0
          Tx excessive retries:0  Invalid misc:0   Missed beacon:0

wlan1     unassociated  ESSID:""
          Mode:Managed  Frequency=2.412 GHz  Access Point: Not-Associated
          Sensitivity:0/0
          Retry:off   RTS thr:off   Fragment thr:off
          Power Management:off
          Link Quality:0  Signal level:0  Noise level:0
`

func TestParseStatusAll(t *testing.T) {
	got, err := ParseStatusAll(iwconfigAll)
	if err != nil {
		t.Fatalf("ParseStatusAll() error = %v", err)
	}

	want := []dogewifi.IwconfigStatus{
		{
			Interface:   "wlan0",
			AccessPoint: dogewifi.Ptr("00:0b:81:95:12:21"),
			Frequency:   dogewifi.Ptr(2437),
			IEEE:        dogewifi.Ptr("802.11bg"),
			Mode:        dogewifi.Ptr("managed"),
			Noise:       dogewifi.Ptr(0),
			Quality:     dogewifi.Ptr(18),
			Sensitivity: dogewifi.Ptr(0),
			Signal:      dogewifi.Ptr(11),
			SSID:        dogewifi.Ptr("RaspberryPi"),
		},
		{
			Interface:    "wlan1",
			Frequency:    dogewifi.Ptr(2412),
			Mode:         dogewifi.Ptr("managed"),
			Noise:        dogewifi.Ptr(0),
			Quality:      dogewifi.Ptr(0),
			Sensitivity:  dogewifi.Ptr(0),
			Signal:       dogewifi.Ptr(0),
			Unassociated: dogewifi.Ptr(true),
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseStatusAll() = %+v, want %+v", got, want)
	}
}

func TestStatus(t *testing.T) {
	exec := fake.NewExecutor().Stdout("iwconfig wlan0", `wlan0     IEEE 802.11bgn  ESSID:"Home"
          Mode:Managed  Frequency:5.18 GHz  Access Point: 2C:F5:D3:02:EA:D9
          Link Quality=70/70  Signal level=-40 dBm`)
	iw := New(dogewifi.DefaultConfig(), exec)

	got, err := iw.Status(context.Background(), "wlan0")
	if err != nil {
		t.Fatalf("Status() error = %v", err)
	}
	if got.Signal == nil || *got.Signal != -40 {
		t.Errorf("Signal = %v, want -40", got.Signal)
	}
	if got.Frequency == nil || *got.Frequency != 5180 {
		t.Errorf("Frequency = %v, want 5180", got.Frequency)
	}
	if got.Unassociated != nil {
		t.Errorf("Unassociated = %v, want absent", *got.Unassociated)
	}
}

func TestStatusLogsTool(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	config := dogewifi.DefaultConfig()
	config.Logger = logrus.NewEntry(logger)

	exec := fake.NewExecutor().Stdout("iwconfig wlan0", "wlan0     unassociated  ESSID:off/any\n          Mode:Managed")
	if _, err := New(config, exec).Status(context.Background(), "wlan0"); err != nil {
		t.Fatalf("Status() error = %v", err)
	}

	entry := hook.LastEntry()
	if entry == nil {
		t.Fatal("no log entry")
	}
	if entry.Data["tool"] != "iwconfig" || entry.Data["interface"] != "wlan0" || entry.Data["unassociated"] != true {
		t.Errorf("log fields = %v", entry.Data)
	}
}
