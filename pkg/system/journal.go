package system

import (
	"fmt"
	"os"
	"strings"

	"github.com/coreos/go-systemd/v22/journal"
	"github.com/sirupsen/logrus"
)

// NewLogger logs text to stderr and, when running under systemd, to the
// journal as well.
func NewLogger(verbose bool) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	l.SetLevel(logrus.InfoLevel)
	if verbose {
		l.SetLevel(logrus.DebugLevel)
	}
	if journal.Enabled() {
		l.AddHook(JournalHook{})
	}
	return l
}

// JournalHook forwards log entries to journald.
type JournalHook struct{}

func (h JournalHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h JournalHook) Fire(e *logrus.Entry) error {
	return journal.Send(e.Message, journalPriority(e.Level), journalVars(e.Data))
}

func journalPriority(level logrus.Level) journal.Priority {
	switch level {
	case logrus.PanicLevel:
		return journal.PriEmerg
	case logrus.FatalLevel:
		return journal.PriCrit
	case logrus.ErrorLevel:
		return journal.PriErr
	case logrus.WarnLevel:
		return journal.PriWarning
	case logrus.InfoLevel:
		return journal.PriInfo
	default:
		return journal.PriDebug
	}
}

// journalVars maps logrus fields to journal variables: upper case, with
// anything outside [A-Z0-9_] replaced by an underscore. Journal variables
// may not start with an underscore.
func journalVars(fields logrus.Fields) map[string]string {
	vars := make(map[string]string, len(fields))
	for k, v := range fields {
		name := strings.Map(func(r rune) rune {
			switch {
			case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
				return r
			case r >= 'a' && r <= 'z':
				return r - 'a' + 'A'
			default:
				return '_'
			}
		}, k)
		name = strings.TrimLeft(name, "_")
		if name == "" {
			continue
		}
		if err, ok := v.(error); ok {
			vars[name] = err.Error()
			continue
		}
		vars[name] = fmt.Sprint(v)
	}
	return vars
}
