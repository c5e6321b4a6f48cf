package dogewifi

import (
	"context"
	"regexp"
	"strings"
)

// CommandOutput is everything a finished process left behind.
type CommandOutput struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// runs a single command to completion. A nonzero exit is reported
// through CommandOutput.ExitCode, not as an error; the error is reserved
// for processes that could not be run at all or were cancelled.
type Executor interface {
	Exec(ctx context.Context, name string, args ...string) (CommandOutput, error)
}

// kills every process whose full command line matches, returning how
// many were signalled. No match is not an error.
type ProcessKiller interface {
	KillMatching(ctx context.Context, cmdline *regexp.Regexp) (int, error)
}

// lists the names of wireless (nl80211) interfaces.
type InterfaceLister interface {
	WirelessInterfaces() ([]string, error)
}

// CommandLine renders name and args the way they would be typed.
func CommandLine(name string, args ...string) string {
	return strings.Join(append([]string{name}, args...), " ")
}
