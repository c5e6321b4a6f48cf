package system

import (
	"context"
	"regexp"

	dogewifi "github.com/dogeorg/dogewifi/pkg"
	"github.com/shirou/gopsutil/v4/process"
	"github.com/sirupsen/logrus"
)

var _ dogewifi.ProcessKiller = &ProcessKiller{}

// ProcessKiller walks the process table the way `pgrep -f` does and sends
// SIGTERM to every match, like a plain `kill`, so daemons can remove their
// pid files and control sockets.
type ProcessKiller struct {
	log *logrus.Entry
}

func NewProcessKiller(config dogewifi.Config) ProcessKiller {
	return ProcessKiller{log: config.Log("kill")}
}

func (t ProcessKiller) KillMatching(ctx context.Context, cmdline *regexp.Regexp) (int, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return 0, err
	}

	killed := 0
	var firstErr error
	for _, p := range procs {
		c, err := p.CmdlineWithContext(ctx)
		// Processes exit while we walk the table; kernel threads have no cmdline.
		if err != nil || c == "" || !cmdline.MatchString(c) {
			continue
		}
		if err := p.TerminateWithContext(ctx); err != nil {
			t.log.WithError(err).WithFields(logrus.Fields{"pid": p.Pid, "cmdline": c}).Warn("kill failed")
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		t.log.WithFields(logrus.Fields{"pid": p.Pid, "cmdline": c}).Debug("killed")
		killed++
	}
	return killed, firstErr
}
