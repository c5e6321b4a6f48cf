package dogewifi

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// ToolPaths holds the binary used for each wrapped tool. Bare names are
// resolved through PATH.
type ToolPaths struct {
	Ifconfig      string
	Iw            string
	Iwconfig      string
	Iwlist        string
	WpaCli        string
	WpaPassphrase string
	WpaSupplicant string
	Hostapd       string
	Udhcpc        string
	Udhcpd        string
}

func DefaultToolPaths() ToolPaths {
	return ToolPaths{
		Ifconfig:      "ifconfig",
		Iw:            "iw",
		Iwconfig:      "iwconfig",
		Iwlist:        "iwlist",
		WpaCli:        "wpa_cli",
		WpaPassphrase: "wpa_passphrase",
		WpaSupplicant: "wpa_supplicant",
		Hostapd:       "hostapd",
		Udhcpc:        "udhcpc",
		Udhcpd:        "udhcpd",
	}
}

type Config struct {
	Paths ToolPaths
	// Directory where hostapd, udhcpd and wpa_supplicant config files are
	// staged before the daemon reads them.
	ConfDir string
	// Per-command timeout. Zero means no timeout beyond the caller's context.
	Timeout time.Duration
	Verbose bool
	Logger  *logrus.Entry
}

func DefaultConfig() Config {
	return Config{
		Paths:   DefaultToolPaths(),
		ConfDir: os.TempDir(),
		Timeout: 30 * time.Second,
		Logger:  logrus.NewEntry(logrus.StandardLogger()),
	}
}

// Log returns the configured logger tagged with the tool name.
func (c Config) Log(tool string) *logrus.Entry {
	l := c.Logger
	if l == nil {
		l = logrus.NewEntry(logrus.StandardLogger())
	}
	return l.WithField("tool", tool)
}
