// Package tools_daemon holds the start/stop plumbing shared by the
// hostapd, udhcpc, udhcpd and wpa_supplicant wrappers.
package tools_daemon

import (
	"context"
	"os"
	"regexp"

	dogewifi "github.com/dogeorg/dogewifi/pkg"
	tools_conffile "github.com/dogeorg/dogewifi/pkg/tools/conffile"
	tools_parse "github.com/dogeorg/dogewifi/pkg/tools/parse"
	"github.com/sirupsen/logrus"
)

// StartWithConf stages lines in conf, runs the daemon and removes conf
// again. The daemon forks (-B) and has read its config by the time the
// launcher exits. Nothing is run when the file cannot be written.
func StartWithConf(ctx context.Context, exec dogewifi.Executor, log *logrus.Entry, conf string, lines []string, name string, args ...string) error {
	if err := tools_conffile.WriteFile(conf, lines); err != nil {
		return err
	}
	defer func() {
		if err := os.Remove(conf); err != nil && !os.IsNotExist(err) {
			log.WithError(err).WithField("conf", conf).Warn("failed to remove staged config")
		}
	}()

	return Start(ctx, exec, log, name, args...)
}

func Start(ctx context.Context, exec dogewifi.Executor, log *logrus.Entry, name string, args ...string) error {
	if _, err := tools_parse.Run(ctx, exec, name, args...); err != nil {
		return err
	}
	log.WithField("cmd", dogewifi.CommandLine(name, args...)).Info("started")
	return nil
}

// Stop kills whatever matches pattern. Finding nothing to kill, or failing
// to kill, is logged and never returned.
func Stop(ctx context.Context, killer dogewifi.ProcessKiller, log *logrus.Entry, pattern *regexp.Regexp) {
	n, err := killer.KillMatching(ctx, pattern)
	if err != nil {
		log.WithError(err).WithField("pattern", pattern.String()).Warn("failed to stop")
		return
	}
	log.WithFields(logrus.Fields{"pattern": pattern.String(), "killed": n}).Info("stopped")
}

// Anchored matches command lines starting with the literal prefix.
func Anchored(prefix string) *regexp.Regexp {
	return regexp.MustCompile("^" + regexp.QuoteMeta(prefix))
}
